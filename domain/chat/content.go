package chat

import (
	"encoding/base64"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// DetectContentType infers the content type of a message body when the
// client did not declare one. Only data-URL payloads are sniffed; anything
// else is plain text.
func DetectContentType(text string) ContentType {
	if !strings.HasPrefix(text, "data:") {
		return ContentText
	}
	comma := strings.IndexByte(text, ',')
	if comma < 0 {
		return ContentText
	}
	raw, err := base64.StdEncoding.DecodeString(text[comma+1:])
	if err != nil {
		return ContentText
	}
	if strings.HasPrefix(mimetype.Detect(raw).String(), "image/") {
		return ContentImage
	}
	return ContentText
}
