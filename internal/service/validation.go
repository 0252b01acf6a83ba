package service

import (
	"fmt"
	"unicode/utf8"

	"github.com/popeskul/moments-broadcast/internal/client"
)

// ValidateRequest checks a broadcast request before anything is persisted.
// It returns a *ValidationError listing every problem found.
func ValidateRequest(req BroadcastRequest, maxMessageLength int, countryCode string) error {
	var fields []string

	switch n := utf8.RuneCountInString(req.Message); {
	case n == 0:
		fields = append(fields, "message: must not be empty")
	case n > maxMessageLength:
		fields = append(fields, fmt.Sprintf("message: must be at most %d characters, got %d", maxMessageLength, n))
	}

	if len(req.Recipients) == 0 {
		fields = append(fields, "recipients: must not be empty")
	}
	for i, r := range req.Recipients {
		if !client.IsValidPhone(client.NormalizePhone(r, countryCode)) {
			fields = append(fields, fmt.Sprintf("recipients[%d]: invalid phone number %q", i, r))
		}
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
