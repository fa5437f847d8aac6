package mail

import (
	"context"
	"errors"
)

// Common errors returned by Mailer implementations.
var (
	// ErrSendFailed is returned when the transport rejected or failed to
	// deliver a message. It wraps transport-specific detail.
	ErrSendFailed = errors.New("failed to send email")

	// ErrInvalidRecipient is returned when the recipient address is
	// missing or malformed.
	ErrInvalidRecipient = errors.New("invalid recipient address")
)

// Mailer sends a single plain-text email. Implementations must be safe
// for concurrent use; the reminder scheduler dispatches to independent
// recipients in parallel.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}
