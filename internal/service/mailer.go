package service

import (
	"fmt"
	"net/http"
	"stepup_backend/internal/config"
	"stepup_backend/pkg/logger"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
)

const (
	sendgridHost     = "https://api.sendgrid.com"
	sendgridEndpoint = "/v3/mail/send"
)

// Mailer delivers a single HTML email. Implementations must return an
// error on failure so the nudge batch can record it per recipient.
type Mailer interface {
	Send(toName, toAddress, subject, htmlBody string) error
}

type SendgridMailer struct {
	key  string
	from *sgmail.Email
}

func NewSendgridMailer(cfg *config.MailConfig) *SendgridMailer {
	return &SendgridMailer{
		key:  cfg.SendgridAPIKey,
		from: sgmail.NewEmail(cfg.FromName, cfg.FromAddress),
	}
}

func (m *SendgridMailer) Send(toName, toAddress, subject, htmlBody string) error {
	p := sgmail.NewPersonalization()
	p.Subject = subject
	p.AddTos(sgmail.NewEmail(toName, toAddress))

	msg := sgmail.NewV3Mail()
	msg.SetFrom(m.from)
	msg.AddPersonalizations(p)
	msg.AddContent(sgmail.NewContent("text/html", htmlBody))

	req := sendgrid.GetRequest(m.key, sendgridEndpoint, sendgridHost)
	req.Method = http.MethodPost
	req.Body = sgmail.GetRequestBody(msg)

	res, err := sendgrid.API(req)
	if err != nil {
		return err
	}
	if res.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("sendgrid status %d: %s", res.StatusCode, res.Body)
	}
	return nil
}

// ConsoleMailer logs instead of sending. Used in development so the
// batch endpoint works without a SendGrid key.
type ConsoleMailer struct{}

func (m *ConsoleMailer) Send(toName, toAddress, subject, htmlBody string) error {
	logger.Log.Info("console mailer",
		zap.String("to", toAddress),
		zap.String("subject", subject),
		zap.Int("html_bytes", len(htmlBody)),
	)
	return nil
}

// NewMailer picks the backend from config. Console mode wins; a
// missing API key also falls back to console so dev setups never
// hit the network by accident.
func NewMailer(cfg *config.MailConfig) Mailer {
	if cfg.Console || cfg.SendgridAPIKey == "" {
		return &ConsoleMailer{}
	}
	return NewSendgridMailer(cfg)
}
