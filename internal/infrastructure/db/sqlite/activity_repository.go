package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/fpdual/dual-admin/internal/core/domain"
)

const activityColumns = `a.id, a.student_id, a.description, a.date, a.hours, a.status, a.comments, a.created_at`

type ActivityRepository struct {
	db *sqlx.DB
}

func NewActivityRepository(db *sqlx.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

func (r *ActivityRepository) List(ctx context.Context) ([]domain.Activity, error) {
	activities := []domain.Activity{}
	err := r.db.SelectContext(ctx, &activities, `
		SELECT `+activityColumns+`, s.full_name AS student_name
		FROM activities a
		JOIN students s ON a.student_id = s.id
		ORDER BY a.date DESC, a.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	return activities, nil
}

func (r *ActivityRepository) FindByID(ctx context.Context, id int64) (*domain.Activity, error) {
	var a domain.Activity
	err := r.db.GetContext(ctx, &a, `
		SELECT `+activityColumns+`, s.full_name AS student_name
		FROM activities a
		JOIN students s ON a.student_id = s.id
		WHERE a.id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrActivityNotFound
		}
		return nil, fmt.Errorf("find activity: %w", err)
	}
	return &a, nil
}

func (r *ActivityRepository) Create(ctx context.Context, activity *domain.Activity) (*domain.Activity, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO activities (student_id, description, date, hours, status, comments)
		VALUES (?, ?, ?, ?, ?, ?)`,
		activity.StudentID, activity.Description, activity.Date,
		activity.Hours, activity.Status, activity.Comments)
	if err != nil {
		return nil, fmt.Errorf("insert activity: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("insert activity id: %w", err)
	}
	return r.FindByID(ctx, id)
}

func (r *ActivityRepository) UpdateStatus(ctx context.Context, id int64, status domain.ActivityStatus, comments *string) (*domain.Activity, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE activities SET status = ?, comments = ? WHERE id = ?`, status, comments, id)
	if err != nil {
		return nil, fmt.Errorf("update activity status: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, domain.ErrActivityNotFound
	}
	return r.FindByID(ctx, id)
}
