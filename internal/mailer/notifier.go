package mailer

import (
	"context"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"github.com/sterlinglegal/backend/internal/model"
)

const (
	notificationTag = "contact-form"
	timestampLayout = "2006-01-02 15:04:05"
)

// Result is the outcome of a notification attempt. A failed Result never
// changes the response sent to the visitor.
type Result struct {
	Delivered bool
	Err       error
}

// Notifier emails the firm's inbox whenever a submission is stored.
type Notifier struct {
	sender  Sender
	cfg     Config
	log     *slog.Logger
	timeout time.Duration
}

// NewNotifier creates a Notifier delivering through sender.
func NewNotifier(sender Sender, cfg Config, log *slog.Logger) *Notifier {
	if log == nil {
		log = slog.Default()
	}
	return &Notifier{
		sender:  sender,
		cfg:     cfg,
		log:     log.With("component", "notifier"),
		timeout: cfg.Timeout,
	}
}

// Notify makes exactly one delivery attempt for sub. Failures, including a
// panicking sender, are logged and reported in the Result only.
func (n *Notifier) Notify(ctx context.Context, sub *model.Submission) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = Result{Err: fmt.Errorf("%w: panic: %v", ErrFailedToSend, r)}
		}
		if res.Err != nil {
			n.log.WarnContext(ctx, "contact notification failed", "error", res.Err)
		}
	}()

	if n.sender == nil {
		return Result{Err: fmt.Errorf("%w: no sender configured", ErrInvalidConfig)}
	}

	if n.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, n.timeout)
		defer cancel()
	}

	if err := n.sender.Send(ctx, n.Compose(sub)); err != nil {
		return Result{Err: err}
	}
	return Result{Delivered: true}
}

// Compose builds the admin notification for sub.
func (n *Notifier) Compose(sub *model.Submission) Message {
	from := mail.Address{Name: n.cfg.FromName, Address: n.cfg.AdminEmail}
	return Message{
		From:     from.String(),
		To:       n.cfg.AdminEmail,
		ReplyTo:  ReplyTo(sub.Name, sub.Email),
		Subject:  n.cfg.Subject,
		TextBody: notificationBody(sub),
		Tag:      notificationTag,
		Headers:  map[string]string{"X-Mailer": "sterling-legal-backend"},
	}
}

func notificationBody(sub *model.Submission) string {
	submittedAt := sub.SubmittedAt
	if submittedAt.IsZero() {
		submittedAt = time.Now()
	}

	var b strings.Builder
	b.WriteString("You have received a new message from the contact form.\n\n")
	fmt.Fprintf(&b, "Name: %s\n", sub.Name)
	fmt.Fprintf(&b, "Email: %s\n", sub.Email)
	fmt.Fprintf(&b, "Phone: %s\n\n", sub.PhoneOr("Not provided"))
	fmt.Fprintf(&b, "Message:\n%s\n\n", sub.Message)
	b.WriteString("---\n")
	fmt.Fprintf(&b, "Submitted at: %s\n", submittedAt.Format(timestampLayout))
	fmt.Fprintf(&b, "IP Address: %s\n", sub.IPAddressOr("N/A"))
	return b.String()
}
