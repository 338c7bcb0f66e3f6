package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/fpdual/dual-admin/internal/core/domain"
)

type GroupRepository struct {
	db *sqlx.DB
}

func NewGroupRepository(db *sqlx.DB) *GroupRepository {
	return &GroupRepository{db: db}
}

func (r *GroupRepository) List(ctx context.Context) ([]domain.Group, error) {
	groups := []domain.Group{}
	err := r.db.SelectContext(ctx, &groups, `
		SELECT g.id, g.name, g.academic_year_id, g.active, g.created_at,
		       ay.name AS academic_year_name,
		       COUNT(s.id) AS student_count
		FROM groups g
		JOIN academic_years ay ON g.academic_year_id = ay.id
		LEFT JOIN students s ON s.group_id = g.id
		GROUP BY g.id
		ORDER BY g.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	return groups, nil
}

func (r *GroupRepository) FindByID(ctx context.Context, id int64) (*domain.Group, error) {
	var g domain.Group
	err := r.db.GetContext(ctx, &g,
		`SELECT id, name, academic_year_id, active, created_at FROM groups WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrGroupNotFound
		}
		return nil, fmt.Errorf("find group: %w", err)
	}
	return &g, nil
}

func (r *GroupRepository) Create(ctx context.Context, name string, academicYearID int64) (*domain.Group, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO groups (name, academic_year_id) VALUES (?, ?)`, name, academicYearID)
	if err != nil {
		return nil, fmt.Errorf("insert group: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("insert group id: %w", err)
	}
	return r.FindByID(ctx, id)
}

func (r *GroupRepository) Rename(ctx context.Context, id int64, name string) (*domain.Group, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE groups SET name = ? WHERE id = ?`, name, id)
	if err != nil {
		return nil, fmt.Errorf("rename group: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, domain.ErrGroupNotFound
	}
	return r.FindByID(ctx, id)
}

func (r *GroupRepository) ToggleActive(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `UPDATE groups SET active = NOT active WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("toggle group: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrGroupNotFound
	}
	return nil
}

func (r *GroupRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM groups WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete group: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrGroupNotFound
	}
	return nil
}

func (r *GroupRepository) CountStudents(ctx context.Context, groupID int64) (int, error) {
	var n int
	err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM students WHERE group_id = ?`, groupID)
	if err != nil {
		return 0, fmt.Errorf("count students: %w", err)
	}
	return n, nil
}
