package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/fpdual/dual-admin/internal/core/domain"
)

type DashboardRepository struct {
	db *sqlx.DB
}

func NewDashboardRepository(db *sqlx.DB) *DashboardRepository {
	return &DashboardRepository{db: db}
}

func (r *DashboardRepository) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	var stats domain.DashboardStats

	counts := []struct {
		dst   *int
		query string
	}{
		{&stats.Users, `SELECT COUNT(*) FROM users WHERE active = 1`},
		{&stats.Students, `SELECT COUNT(*) FROM students WHERE active = 1`},
		{&stats.Activities, `SELECT COUNT(*) FROM activities WHERE date >= date('now', '-30 days')`},
		{&stats.Companies, `SELECT COUNT(*) FROM companies WHERE active = 1`},
	}
	for _, c := range counts {
		if err := r.db.GetContext(ctx, c.dst, c.query); err != nil {
			return nil, fmt.Errorf("dashboard stats: %w", err)
		}
	}
	return &stats, nil
}
