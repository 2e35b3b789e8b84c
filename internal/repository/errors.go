package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrUnavailable is returned when no database connection can be established.
	ErrUnavailable = errors.New("database unavailable")

	// ErrInsertFailed hides the driver error of a failed insert from callers.
	ErrInsertFailed = errors.New("insert failed")
)

// pgCode returns the SQLSTATE of a PostgreSQL error, or "".
func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
