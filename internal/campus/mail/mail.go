// Package mail sends notification emails through SendGrid, or logs them when
// no API key is configured.
package mail

import (
	"context"
	"errors"
	"net/mail"
	"strings"
)

var ErrNoRecipients = errors.New("mail: message has no recipients")

type Message struct {
	To      []mail.Address
	Bcc     []mail.Address
	Subject string
	Text    string
	HTML    string
}

func (m Message) HasRecipients() bool { return len(m.To)+len(m.Bcc) > 0 }
func (m Message) HasContent() bool    { return m.Text != "" || m.HTML != "" }

// Sender delivers a message. Send blocks until the provider accepted or
// rejected it.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Addresses turns plain addresses into mail.Address values, skipping blanks
// and duplicates.
func Addresses(emails ...string) []mail.Address {
	seen := make(map[string]struct{}, len(emails))
	out := make([]mail.Address, 0, len(emails))
	for _, e := range emails {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, mail.Address{Address: e})
	}
	return out
}

func joinAddresses(addrs []mail.Address) string {
	parts := make([]string, 0, len(addrs))
	for _, a := range addrs {
		parts = append(parts, a.String())
	}
	return strings.Join(parts, ", ")
}
