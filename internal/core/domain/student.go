package domain

import "time"

// Student is an enrolled trainee assigned to a group.
type Student struct {
	ID        int64     `json:"id" db:"id"`
	CIAL      string    `json:"cial" db:"cial"`
	DNI       string    `json:"dni" db:"dni"`
	NUSS      string    `json:"nuss" db:"nuss"`
	FullName  string    `json:"full_name" db:"full_name"`
	Email     string    `json:"email" db:"email"`
	Phone     string    `json:"phone" db:"phone"`
	GroupID   int64     `json:"group_id" db:"group_id"`
	Active    bool      `json:"active" db:"active"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	// GroupName is populated by joined list queries only.
	GroupName string `json:"group_name,omitempty" db:"group_name"`
}
