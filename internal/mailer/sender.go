package mailer

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
)

// Sender delivers a single plain-text message.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Message is a plain-text email. From, To and ReplyTo are RFC 5322 address
// strings, e.g. `Sterling Legal Website <info@sterlinglegal.com>`.
type Message struct {
	From     string            `json:"from"`
	To       string            `json:"to"`
	ReplyTo  string            `json:"reply_to,omitempty"`
	Subject  string            `json:"subject"`
	TextBody string            `json:"-"`
	Tag      string            `json:"tag,omitempty"`
	Headers  map[string]string `json:"headers,omitempty"`
}

// Validate checks that the message is deliverable and that no header value
// contains a line break.
func (m Message) Validate() error {
	if m.To == "" {
		return fmt.Errorf("%w: recipient is required", ErrInvalidMessage)
	}
	if m.From == "" {
		return fmt.Errorf("%w: sender is required", ErrInvalidMessage)
	}
	if m.Subject == "" {
		return fmt.Errorf("%w: subject is required", ErrInvalidMessage)
	}
	if m.TextBody == "" {
		return fmt.Errorf("%w: body is required", ErrInvalidMessage)
	}
	for _, addr := range []string{m.From, m.To} {
		if _, err := mail.ParseAddress(addr); err != nil {
			return fmt.Errorf("%w: bad address %q: %v", ErrInvalidMessage, addr, err)
		}
	}
	if m.ReplyTo != "" {
		if _, err := mail.ParseAddress(m.ReplyTo); err != nil {
			return fmt.Errorf("%w: bad reply-to: %v", ErrInvalidMessage, err)
		}
	}

	headers := []string{m.From, m.To, m.ReplyTo, m.Subject, m.Tag}
	for k, v := range m.Headers {
		headers = append(headers, k, v)
	}
	for _, h := range headers {
		if strings.ContainsAny(h, "\r\n") {
			return fmt.Errorf("%w: header contains a line break", ErrInvalidMessage)
		}
	}
	return nil
}
