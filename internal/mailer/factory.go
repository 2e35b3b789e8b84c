package mailer

import (
	"fmt"
	"log/slog"
	"net/mail"
)

// NewSender picks the transport named by cfg.Driver.
func NewSender(cfg Config, log *slog.Logger) (Sender, error) {
	if _, err := mail.ParseAddress(cfg.AdminEmail); err != nil {
		return nil, fmt.Errorf("%w: ADMIN_EMAIL must be a valid email address", ErrInvalidConfig)
	}

	switch cfg.Driver {
	case DriverPostmark:
		return NewPostmarkSender(cfg)
	case DriverDev:
		if cfg.OutputDir == "" {
			return nil, fmt.Errorf("%w: MAIL_OUTPUT_DIR is required for the dev driver", ErrInvalidConfig)
		}
		return NewDevSender(cfg.OutputDir), nil
	case DriverLog, "":
		return NewLogSender(log), nil
	default:
		return nil, fmt.Errorf("%w: unknown MAIL_DRIVER %q", ErrInvalidConfig, cfg.Driver)
	}
}
