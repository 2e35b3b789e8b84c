package service

import (
	"context"

	"github.com/sterlinglegal/backend/internal/mailer"
	"github.com/sterlinglegal/backend/internal/model"
)

// ContactService defines the business logic for contact form submissions.
type ContactService interface {
	// Submit stores a validated submission and then notifies the firm.
	// The returned error matches repository.ErrUnavailable or
	// repository.ErrInsertFailed; the Result reports the notification only
	// and is zero when nothing was stored.
	Submit(ctx context.Context, sub *model.Submission) (mailer.Result, error)
}

// Notifier sends the admin notification for a stored submission.
type Notifier interface {
	Notify(ctx context.Context, sub *model.Submission) mailer.Result
}
