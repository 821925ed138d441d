package errors

import "fmt"

var (
	ErrWorkerPanic       = fmt.Errorf("worker panic")
	ErrInvalidPayload    = fmt.Errorf("invalid event payload")
	ErrMalformedDecision = fmt.Errorf("reasoning output is not a valid decision")
	ErrEmptyCompletion   = fmt.Errorf("reasoning service returned no content")
	ErrUnknownEvent      = fmt.Errorf("unknown client event")
)
