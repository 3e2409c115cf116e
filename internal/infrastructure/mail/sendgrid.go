// Package mail provides the outbound reminder transports: SendGrid for real
// delivery and a console sender for development.
package mail

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendGridSender delivers plain-text mail through the SendGrid v3 API.
type SendGridSender struct {
	client *sendgrid.Client
	from   *sgmail.Email
}

// NewSendGridSender builds a sender using the given API key. appName becomes
// the display name on the From address.
func NewSendGridSender(apiKey, appName, fromAddr string) *SendGridSender {
	return &SendGridSender{
		client: sendgrid.NewSendClient(apiKey),
		from:   sgmail.NewEmail(appName, fromAddr),
	}
}

func (s *SendGridSender) Send(_ context.Context, to, subject, text string) error {
	msg := sgmail.NewSingleEmail(s.from, subject, sgmail.NewEmail("", to), text, "")

	res, err := s.client.Send(msg)
	if err != nil {
		return fmt.Errorf("sendgrid: %w", err)
	}
	if res.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("sendgrid: status %d: %s", res.StatusCode, res.Body)
	}
	return nil
}
