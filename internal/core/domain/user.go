package domain

import "time"

const (
	RoleAdmin        = "admin"
	RoleCenterTutor  = "center_tutor"
	RoleCompanyTutor = "company_tutor"
)

// ValidRole reports whether role is one of the three program roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleCenterTutor || role == RoleCompanyTutor
}

// User models an authenticated actor in the system.
type User struct {
	ID                 int64     `json:"id" db:"id"`
	Username           string    `json:"username" db:"username"`
	PasswordHash       string    `json:"-" db:"password"`
	Role               string    `json:"role" db:"role"`
	Active             bool      `json:"active" db:"active"`
	Email              string    `json:"email" db:"email"`
	Phone              string    `json:"phone" db:"phone"`
	FullName           string    `json:"full_name" db:"full_name"`
	Department         string    `json:"department" db:"department"`
	MustChangePassword bool      `json:"must_change_password" db:"must_change_password"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
}

// Claims is the decoded content of a verified token: just enough to
// identify the subject and gate role checks. Reconstructed on every
// request, never stored server-side.
type Claims struct {
	UserID int64
	Role   string
}

// IsAdmin reports whether the claims belong to an administrator.
func (c Claims) IsAdmin() bool { return c.Role == RoleAdmin }
