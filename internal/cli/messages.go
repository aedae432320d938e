package cli

import (
	"errors"

	"github.com/emizen/notesapp/internal/common"
)

// userMessage maps service errors onto the messages shown in the REPL.
// Validation errors carry their own rule text; anything unexpected becomes a
// generic retryable failure so storage problems are never mistaken for bad
// input.
func userMessage(err error) string {
	var ve *common.ValidationError
	switch {
	case errors.As(err, &ve):
		return ve.Error()
	case errors.Is(err, common.ErrDuplicateEmail):
		return "User with this email already exists"
	case errors.Is(err, common.ErrInvalidCredentials):
		return "Invalid credentials"
	case errors.Is(err, common.ErrNotFound):
		return "Not found"
	default:
		return "Something went wrong, please try again"
	}
}
