package server

import (
	"encoding/json"
	"fmt"

	"chatitude/errors"

	"github.com/go-playground/validator/v10"
)

// Client-initiated events. Server-initiated ones are named by the domain
// events themselves.
const (
	eventUserJoin      = "user:join"
	eventUserAll       = "user:all"
	eventMessageAll    = "message:all"
	eventMessageSend   = "message:send"
	eventMessageUpdate = "message:update"
)

// frame is one message on the wire, in either direction.
type frame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// outboundFrame carries a still-unmarshalled payload toward one connection.
type outboundFrame struct {
	Event string `json:"event"`
	Data  any    `json:"data,omitempty"`
}

type joinPayload struct {
	ID   string `json:"id"`
	Name string `json:"name" validate:"required"`
	UUID string `json:"uuid"`
}

type sendPayload struct {
	SenderName  string `json:"senderName" validate:"required"`
	Text        string `json:"text" validate:"required"`
	Type        string `json:"type"`
	Sender      string `json:"sender"`
	SenderID    string `json:"senderId"`
	ID          string `json:"id" validate:"required"`
	ClientMsgID int64  `json:"clientMsgId"`
}

type updatePayload struct {
	ID   string `json:"id" validate:"required"`
	Text string `json:"text" validate:"required"`
}

var validate = validator.New()

// decodePayload unmarshals and validates a client payload in one fallible
// step, so handlers only ever see well-formed intents.
func decodePayload[T any](raw json.RawMessage) (T, error) {
	var payload T
	if err := json.Unmarshal(raw, &payload); err != nil {
		return payload, fmt.Errorf("%w: %v", errors.ErrInvalidPayload, err)
	}
	if err := validate.Struct(payload); err != nil {
		return payload, fmt.Errorf("%w: %v", errors.ErrInvalidPayload, err)
	}
	return payload, nil
}
