package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/fpdual/dual-admin/internal/core/domain"
)

const studentColumns = `s.id, s.cial, s.dni, s.nuss, s.full_name, s.email, s.phone, s.group_id, s.active, s.created_at`

type StudentRepository struct {
	db *sqlx.DB
}

func NewStudentRepository(db *sqlx.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

func (r *StudentRepository) ListCurrent(ctx context.Context) ([]domain.Student, error) {
	students := []domain.Student{}
	err := r.db.SelectContext(ctx, &students, `
		SELECT `+studentColumns+`, g.name AS group_name
		FROM students s
		JOIN groups g ON s.group_id = g.id
		JOIN academic_years ay ON g.academic_year_id = ay.id
		WHERE ay.active = 1`)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	return students, nil
}

func (r *StudentRepository) FindByID(ctx context.Context, id int64) (*domain.Student, error) {
	var s domain.Student
	err := r.db.GetContext(ctx, &s, `
		SELECT `+studentColumns+`, g.name AS group_name
		FROM students s
		JOIN groups g ON s.group_id = g.id
		WHERE s.id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrStudentNotFound
		}
		return nil, fmt.Errorf("find student: %w", err)
	}
	return &s, nil
}

func (r *StudentRepository) Create(ctx context.Context, student *domain.Student) (*domain.Student, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO students (cial, dni, nuss, full_name, email, phone, group_id)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		student.CIAL, student.DNI, student.NUSS, student.FullName,
		student.Email, student.Phone, student.GroupID)
	if err != nil {
		return nil, fmt.Errorf("insert student: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("insert student id: %w", err)
	}
	return r.FindByID(ctx, id)
}

func (r *StudentRepository) Update(ctx context.Context, student *domain.Student) (*domain.Student, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE students SET cial = ?, dni = ?, nuss = ?, full_name = ?, email = ?, phone = ?, group_id = ?
		WHERE id = ?`,
		student.CIAL, student.DNI, student.NUSS, student.FullName,
		student.Email, student.Phone, student.GroupID, student.ID)
	if err != nil {
		return nil, fmt.Errorf("update student: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, domain.ErrStudentNotFound
	}
	return r.FindByID(ctx, student.ID)
}

func (r *StudentRepository) ToggleActive(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `UPDATE students SET active = NOT active WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("toggle student: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrStudentNotFound
	}
	return nil
}
