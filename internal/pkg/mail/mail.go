package mail

import (
	"context"
	"io"
)

// Message is one outgoing email. Header values are single-line; line
// breaks in them are dropped when the message is encoded.
type Message struct {
	// From is an optional explicit sender; the implementation default is used when empty.
	From string
	// To lists primary recipients. At least one of To, Cc or Bcc is required.
	To []string
	// Cc lists carbon copy recipients.
	Cc []string
	// Bcc lists blind carbon copy recipients.
	Bcc []string
	// ReplyTo is the address replies should go to, when it differs from From.
	ReplyTo string
	// Subject is the email subject line. Non-ASCII text is allowed.
	Subject string
	// TextBody is the plain-text body.
	TextBody string
	// HTMLBody is the optional HTML body.
	HTMLBody string
}

// Mail delivers messages through an outgoing relay.
type Mail interface {
	io.Closer
	// Send delivers msg, blocking until the relay accepts or rejects it or
	// ctx ends.
	Send(ctx context.Context, msg Message) error
}
