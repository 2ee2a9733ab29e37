package email

import (
	"context"
	"fmt"

	"gopkg.in/mail.v2"
)

type Client struct {
	smtpHost string
	smtpPort int
	username string
	password string
	from     string
}

func NewClient(smtpHost string, smtpPort int, username, password, from string) *Client {
	return &Client{
		smtpHost: smtpHost,
		smtpPort: smtpPort,
		username: username,
		password: password,
		from:     from,
	}
}

// Send e-mails a plain text message. The SMTP dialer takes no context,
// so ctx is only checked before dialing.
func (c *Client) Send(ctx context.Context, to, subject, msg string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	message := c.message(to, subject, msg)
	dialer := mail.NewDialer(c.smtpHost, c.smtpPort, c.username, c.password)

	if err := dialer.DialAndSend(message); err != nil {
		return fmt.Errorf("send email: %w", err)
	}

	return nil
}

func (c *Client) message(to, subject, msg string) *mail.Message {
	message := mail.NewMessage()

	message.SetHeader("From", c.from)
	message.SetHeader("To", to)
	message.SetHeader("Subject", subject)

	message.SetBody("text/plain", msg)

	return message
}
