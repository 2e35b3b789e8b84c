package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/sterlinglegal/backend/internal/model"
)

// DB は DB 接続の生存確認を行うインターフェース
type DB interface {
	Ping(ctx context.Context) error
}

// SubmissionRepository persists contact form submissions.
type SubmissionRepository interface {
	// Insert stores sub and fills in sub.ID and sub.SubmittedAt.
	Insert(ctx context.Context, sub *model.Submission) error
}

// SubmissionStore hands out a SubmissionRepository once a connection exists.
// Errors match ErrUnavailable.
type SubmissionStore interface {
	Submissions(ctx context.Context) (SubmissionRepository, error)
}

// rowQuerier is the part of *pgxpool.Pool the repositories use.
type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
