package ports

import (
	"context"
	"time"

	"github.com/fpdual/dual-admin/internal/core/domain"
)

type ActivityRepository interface {
	// List returns all activities joined with the student's full name,
	// most recent first.
	List(ctx context.Context) ([]domain.Activity, error)
	FindByID(ctx context.Context, id int64) (*domain.Activity, error)
	Create(ctx context.Context, activity *domain.Activity) (*domain.Activity, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ActivityStatus, comments *string) (*domain.Activity, error)
}

type ActivityService interface {
	List(ctx context.Context) ([]domain.Activity, error)
	// Log records a new activity for a student; it always starts pending.
	Log(ctx context.Context, studentID int64, description string, date time.Time, hours int) (*domain.Activity, error)
	// Review moves an activity to approved or rejected, with optional
	// reviewer comments.
	Review(ctx context.Context, id int64, status domain.ActivityStatus, comments *string) (*domain.Activity, error)
}

type DashboardRepository interface {
	// Stats counts active users, active students, active companies and
	// activities logged in the last 30 days.
	Stats(ctx context.Context) (*domain.DashboardStats, error)
}
