package mail

import (
	"context"
	"fmt"
	"net/http"
	"net/mail"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/aussiebroadwan/campus/pkg/slogx"
)

const (
	sendgridHost     = "https://api.sendgrid.com"
	sendgridEndpoint = "/v3/mail/send"
)

type SendGridConfig struct {
	APIKey        string
	From          mail.Address
	SubjectPrefix string

	// Host overrides the API host.
	Host string
}

type SendGrid struct {
	key        string
	host       string
	from       *sgmail.Email
	subjPrefix string
}

var _ Sender = (*SendGrid)(nil)

func NewSendGrid(cfg SendGridConfig) *SendGrid {
	host := cfg.Host
	if host == "" {
		host = sendgridHost
	}
	return &SendGrid{
		key:        cfg.APIKey,
		host:       host,
		from:       sgmail.NewEmail(cfg.From.Name, cfg.From.Address),
		subjPrefix: cfg.SubjectPrefix,
	}
}

func (s *SendGrid) Send(ctx context.Context, msg Message) error {
	if !msg.HasRecipients() {
		return ErrNoRecipients
	}

	req := sendgrid.GetRequest(s.key, sendgridEndpoint, s.host)
	req.Method = http.MethodPost
	req.Body = sgmail.GetRequestBody(s.prepare(msg))

	res, err := sendgrid.MakeRequestRetryWithContext(ctx, req)
	if err != nil {
		return fmt.Errorf("mail: sendgrid request: %w", err)
	}
	if res.StatusCode >= http.StatusBadRequest {
		slogx.FromContext(ctx).Error("SendGrid rejected message",
			"status", res.StatusCode, "body", res.Body)
		return fmt.Errorf("mail: sendgrid status %d", res.StatusCode)
	}
	return nil
}

func (s *SendGrid) prepare(msg Message) *sgmail.SGMailV3 {
	p := sgmail.NewPersonalization()
	p.Subject = s.subjPrefix + msg.Subject
	// SendGrid needs at least one To and rejects an address repeated within
	// a personalization. Bcc-only mail is addressed to the sender.
	seen := make(map[string]struct{}, len(msg.To)+len(msg.Bcc)+1)
	for _, to := range msg.To {
		seen[strings.ToLower(to.Address)] = struct{}{}
		p.AddTos(sgmail.NewEmail(to.Name, to.Address))
	}
	if len(msg.To) == 0 {
		seen[strings.ToLower(s.from.Address)] = struct{}{}
		p.AddTos(s.from)
	}
	for _, bcc := range msg.Bcc {
		key := strings.ToLower(bcc.Address)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		p.AddBCCs(sgmail.NewEmail(bcc.Name, bcc.Address))
	}

	m := sgmail.NewV3Mail()
	m.SetFrom(s.from)
	m.AddPersonalizations(p)
	if msg.Text != "" {
		m.AddContent(sgmail.NewContent("text/plain", msg.Text))
	}
	if msg.HTML != "" {
		m.AddContent(sgmail.NewContent("text/html", msg.HTML))
	}
	return m
}
