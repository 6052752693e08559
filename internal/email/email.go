package email

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/sirupsen/logrus"
)

// Sender delivers transactional mail. Injected so the usecases never
// touch a mail client singleton.
type Sender interface {
	SendPasswordReset(to, token, frontendURL string) error
	SendPasswordResetSuccess(to string) error
}

type SendGridSender struct {
	client *sendgrid.Client
	from   string
	log    *logrus.Logger
}

func NewSendGridSender(apiKey, from string, log *logrus.Logger) *SendGridSender {
	return &SendGridSender{
		client: sendgrid.NewSendClient(apiKey),
		from:   from,
		log:    log,
	}
}

func (s *SendGridSender) SendPasswordReset(to, token, frontendURL string) error {
	resetURL := fmt.Sprintf("%s/reset-password?token=%s", frontendURL, token)

	body := fmt.Sprintf(
		"You requested a password reset for your dating app account.\n\n"+
			"Open this link to reset your password:\n%s\n\n"+
			"This link will expire in 15 minutes.\n"+
			"If you didn't request this password reset, please ignore this email.\n",
		resetURL,
	)

	return s.send(to, "Password Reset Request - Dating App", body)
}

func (s *SendGridSender) SendPasswordResetSuccess(to string) error {
	body := "Your password has been successfully reset.\n\n" +
		"If you didn't make this change, please contact support immediately.\n"

	return s.send(to, "Password Reset Successful - Dating App", body)
}

func (s *SendGridSender) send(to, subject, body string) error {
	message := mail.NewSingleEmail(
		mail.NewEmail("", s.from),
		subject,
		mail.NewEmail("", to),
		body,
		"",
	)

	resp, err := s.client.Send(message)
	if err != nil {
		return fmt.Errorf("sendgrid send: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid send: status %d", resp.StatusCode)
	}

	s.log.WithField("to", to).Info("email sent")
	return nil
}

// NoopSender drops mail on the floor. Used when no SendGrid key is
// configured, so local and test runs never reach the network.
type NoopSender struct{}

func (NoopSender) SendPasswordReset(string, string, string) error { return nil }

func (NoopSender) SendPasswordResetSuccess(string) error { return nil }
