package email

import (
	"context"
	"fmt"
	"log"

	sendgridgo "github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Service delivers transactional mail. The auth flows only ever send one
// shape of message: a subject line and a short HTML body to a single
// recipient.
type Service interface {
	SendEmail(ctx context.Context, to, subject, htmlBody string) error
}

type SendGridClient struct {
	client     *sendgridgo.Client
	sender     string
	senderName string
	logger     *log.Logger
}

func NewSendGridClient(apiKey, sender, senderName string, logger *log.Logger) *SendGridClient {
	return &SendGridClient{
		client:     sendgridgo.NewSendClient(apiKey),
		sender:     sender,
		senderName: senderName,
		logger:     logger,
	}
}

func (c *SendGridClient) SendEmail(ctx context.Context, to, subject, htmlBody string) error {
	from := mail.NewEmail(c.senderName, c.sender)
	recipient := mail.NewEmail(to, to)
	message := mail.NewSingleEmail(from, subject, recipient, "", htmlBody)

	resp, err := c.client.SendWithContext(ctx, message)
	if err != nil {
		if c.logger != nil {
			c.logger.Printf("[Email] send error to=%s: %v", to, err)
		}
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if c.logger != nil {
			c.logger.Printf("[Email] send rejected to=%s status=%d body=%q", to, resp.StatusCode, resp.Body)
		}
		return fmt.Errorf("sendgrid status %d", resp.StatusCode)
	}
	return nil
}

// LogSender is the no-credentials fallback: it writes the mail to the log
// instead of delivering it. Useful in development where the OTP has to be
// readable somewhere.
type LogSender struct {
	logger *log.Logger
}

func NewLogSender(logger *log.Logger) *LogSender {
	if logger == nil {
		logger = log.Default()
	}
	return &LogSender{logger: logger}
}

func (s *LogSender) SendEmail(_ context.Context, to, subject, htmlBody string) error {
	s.logger.Printf("[Email] (log only) to=%s subject=%q body=%q", to, subject, htmlBody)
	return nil
}
