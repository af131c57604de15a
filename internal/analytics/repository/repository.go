package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"
)

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Summary aggregates the tenant's active pipeline.
type Summary struct {
	TotalLeads     int64
	PipelineBudget float64
	DueWithin24h   int64
	ByStatus       map[string]int64
	BySource       map[string]int64
}

// Soft-deleted leads never count toward the dashboard; closed leads are
// excluded from the due counter because they carry no follow-up obligation.
const (
	summaryQuery = `
		SELECT
			count(*),
			coalesce(sum(budget), 0),
			count(*) FILTER (
				WHERE status <> 'closed' AND next_followup <= now() + interval '24 hours'
			)
		FROM leads
		WHERE user_id = $1 AND deleted_at IS NULL`

	byStatusQuery = `
		SELECT status, count(*)
		FROM leads
		WHERE user_id = $1 AND deleted_at IS NULL
		GROUP BY status`

	bySourceQuery = `
		SELECT source, count(*)
		FROM leads
		WHERE user_id = $1 AND deleted_at IS NULL
		GROUP BY source`
)

// Summary runs the three aggregate queries concurrently; the pool hands
// each its own connection.
func (r *Repository) Summary(ctx context.Context, userID uuid.UUID) (Summary, error) {
	var summary Summary

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return r.pool.QueryRow(gctx, summaryQuery, userID).Scan(
			&summary.TotalLeads, &summary.PipelineBudget, &summary.DueWithin24h,
		)
	})
	g.Go(func() error {
		counts, err := r.countBy(gctx, byStatusQuery, userID)
		summary.ByStatus = counts
		return err
	})
	g.Go(func() error {
		counts, err := r.countBy(gctx, bySourceQuery, userID)
		summary.BySource = counts
		return err
	})

	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	return summary, nil
}

func (r *Repository) countBy(ctx context.Context, query string, userID uuid.UUID) (map[string]int64, error) {
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var key string
		var count int64
		if err := rows.Scan(&key, &count); err != nil {
			return nil, err
		}
		counts[key] = count
	}

	return counts, rows.Err()
}
