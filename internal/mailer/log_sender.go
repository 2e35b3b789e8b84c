package mailer

import (
	"context"
	"log/slog"
)

// LogSender only logs the envelope; the body goes out at debug level.
// It is the default so a fresh checkout runs without mail credentials.
type LogSender struct {
	log *slog.Logger
}

func NewLogSender(log *slog.Logger) *LogSender {
	if log == nil {
		log = slog.Default()
	}
	return &LogSender{log: log.With("component", "mailer")}
}

func (l *LogSender) Send(ctx context.Context, msg Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}
	l.log.InfoContext(ctx, "email not sent (log driver)",
		"to", msg.To,
		"reply_to", msg.ReplyTo,
		"subject", msg.Subject,
	)
	l.log.DebugContext(ctx, "email body", "body", msg.TextBody)
	return nil
}
