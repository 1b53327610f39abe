package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/dkenzhe/college-bot/internal/models"
)

// StatsRepository counts records across the college schema.
type StatsRepository struct {
	db *sqlx.DB
}

// NewStatsRepository constructs a StatsRepository.
func NewStatsRepository(db *sqlx.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// Collect runs one count per table. Counts are read independently; the view
// is a snapshot, not a transaction.
func (r *StatsRepository) Collect(ctx context.Context) (*models.Stats, error) {
	stats := &models.Stats{}
	counts := []struct {
		query string
		dest  *int
	}{
		{`SELECT COUNT(*) FROM students`, &stats.Students},
		{`SELECT COUNT(*) FROM teachers`, &stats.Teachers},
		{`SELECT COUNT(*) FROM groups`, &stats.Groups},
		{`SELECT COUNT(*) FROM departments`, &stats.Departments},
		{`SELECT COUNT(*) FROM grades`, &stats.Grades},
	}
	for _, c := range counts {
		if err := r.db.GetContext(ctx, c.dest, c.query); err != nil {
			return nil, fmt.Errorf("collect stats: %w", err)
		}
	}
	return stats, nil
}
