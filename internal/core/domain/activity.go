package domain

import "time"

// ActivityStatus is the review state of a logged activity.
type ActivityStatus string

const (
	ActivityPending  ActivityStatus = "pending"
	ActivityApproved ActivityStatus = "approved"
	ActivityRejected ActivityStatus = "rejected"
)

// ValidActivityStatus reports whether s is a known review state.
func ValidActivityStatus(s ActivityStatus) bool {
	return s == ActivityPending || s == ActivityApproved || s == ActivityRejected
}

// Activity is a unit of work a student performed at a company, logged by
// a tutor and reviewed by the training center.
type Activity struct {
	ID          int64          `json:"id" db:"id"`
	StudentID   int64          `json:"student_id" db:"student_id"`
	Description string         `json:"description" db:"description"`
	Date        time.Time      `json:"date" db:"date"`
	Hours       int            `json:"hours" db:"hours"`
	Status      ActivityStatus `json:"status" db:"status"`
	Comments    *string        `json:"comments" db:"comments"`
	CreatedAt   time.Time      `json:"created_at" db:"created_at"`

	// StudentName is populated by joined list queries only.
	StudentName string `json:"student_name,omitempty" db:"student_name"`
}

// DashboardStats is the aggregate snapshot shown on the landing page.
type DashboardStats struct {
	Users      int `json:"users"`
	Students   int `json:"students"`
	Activities int `json:"activities"`
	Companies  int `json:"companies"`
}
