package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/sterlinglegal/backend/internal/model"
)

const insertSubmissionSQL = `INSERT INTO contact_submissions
	(name, email, phone, message, ip_address, user_agent, submitted_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, submitted_at`

// PgSubmissionRepository is the PostgreSQL implementation of SubmissionRepository.
type PgSubmissionRepository struct {
	db      rowQuerier
	timeout time.Duration
	log     *slog.Logger
	now     func() time.Time
}

// NewPgSubmissionRepository creates a PgSubmissionRepository. Every insert is
// bounded by timeout when it is positive.
func NewPgSubmissionRepository(db rowQuerier, timeout time.Duration, log *slog.Logger) *PgSubmissionRepository {
	if log == nil {
		log = slog.Default()
	}
	return &PgSubmissionRepository{db: db, timeout: timeout, log: log, now: time.Now}
}

var _ SubmissionRepository = (*PgSubmissionRepository)(nil)

// Insert writes one contact_submissions row. Empty optional values are bound
// as NULL. The driver error is logged and replaced by ErrInsertFailed.
func (r *PgSubmissionRepository) Insert(ctx context.Context, sub *model.Submission) error {
	if sub.SubmittedAt.IsZero() {
		sub.SubmittedAt = r.now().UTC()
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	err := r.db.QueryRow(ctx, insertSubmissionSQL,
		sub.Name,
		sub.Email,
		nullable(sub.Phone),
		sub.Message,
		nullable(sub.IPAddress),
		sub.UserAgent,
		sub.SubmittedAt,
	).Scan(&sub.ID, &sub.SubmittedAt)
	if err != nil {
		r.log.ErrorContext(ctx, "contact submission insert failed",
			"error", err,
			"sqlstate", pgCode(err),
		)
		return ErrInsertFailed
	}
	return nil
}

func nullable(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
