package mail

import (
	"context"
	"net/mail"
	"sync"

	"github.com/aussiebroadwan/campus/pkg/slogx"
)

// Console logs messages instead of sending them. It keeps what it sent so
// tests and the CLI can inspect it.
type Console struct {
	From          mail.Address
	SubjectPrefix string

	mu   sync.Mutex
	sent []Message
}

var _ Sender = (*Console)(nil)

func NewConsole(from mail.Address, subjectPrefix string) *Console {
	return &Console{From: from, SubjectPrefix: subjectPrefix}
}

func (c *Console) Send(ctx context.Context, msg Message) error {
	if !msg.HasRecipients() {
		return ErrNoRecipients
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	slogx.FromContext(ctx).Info("Email (console)",
		"from", c.From.String(),
		"to", joinAddresses(msg.To),
		"bcc", joinAddresses(msg.Bcc),
		"subject", c.SubjectPrefix+msg.Subject,
		"body", msg.Text,
	)

	c.mu.Lock()
	c.sent = append(c.sent, msg)
	c.mu.Unlock()
	return nil
}

// Sent returns a copy of every message sent so far.
func (c *Console) Sent() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Message(nil), c.sent...)
}
