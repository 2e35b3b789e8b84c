package repository

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Gateway owns the process-wide connection pool. The pool is created on
// first use and reused afterwards; a failed attempt leaves nothing cached,
// so the next request tries again.
type Gateway struct {
	cfg  Config
	log  *slog.Logger
	dial func(ctx context.Context, cfg Config) (*pgxpool.Pool, error)

	mu   sync.Mutex
	pool *pgxpool.Pool
}

// NewGateway creates a Gateway. No connection is made until it is needed.
func NewGateway(cfg Config, log *slog.Logger) *Gateway {
	if log == nil {
		log = slog.Default()
	}
	return &Gateway{cfg: cfg, log: log, dial: NewPool}
}

var (
	_ SubmissionStore = (*Gateway)(nil)
	_ DB              = (*Gateway)(nil)
)

// Pool returns the shared pool, connecting if necessary.
func (g *Gateway) Pool(ctx context.Context) (*pgxpool.Pool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.pool != nil {
		return g.pool, nil
	}

	pool, err := g.dial(ctx, g.cfg)
	if err != nil {
		g.log.ErrorContext(ctx, "database connection failed", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	g.pool = pool
	return pool, nil
}

// Submissions implements SubmissionStore.
func (g *Gateway) Submissions(ctx context.Context) (SubmissionRepository, error) {
	pool, err := g.Pool(ctx)
	if err != nil {
		return nil, err
	}
	return NewPgSubmissionRepository(pool, g.cfg.QueryTimeout, g.log), nil
}

// Ping connects if necessary and checks the connection is alive.
func (g *Gateway) Ping(ctx context.Context) error {
	pool, err := g.Pool(ctx)
	if err != nil {
		return err
	}
	return pool.Ping(ctx)
}

// Close releases the pool, if one was opened.
func (g *Gateway) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.pool != nil {
		g.pool.Close()
		g.pool = nil
	}
}
