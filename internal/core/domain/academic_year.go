package domain

import "time"

// AcademicYear is one school year of the program. At most one year is
// active at a time; groups hang off a year.
type AcademicYear struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	StartDate time.Time `json:"start_date" db:"start_date"`
	EndDate   time.Time `json:"end_date" db:"end_date"`
	Active    bool      `json:"active" db:"active"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Group is a class of students within an academic year. Its name is
// unique per year.
type Group struct {
	ID             int64     `json:"id" db:"id"`
	Name           string    `json:"name" db:"name"`
	AcademicYearID int64     `json:"academic_year_id" db:"academic_year_id"`
	Active         bool      `json:"active" db:"active"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`

	// List projections, populated by joined queries only.
	AcademicYearName string `json:"academic_year_name,omitempty" db:"academic_year_name"`
	StudentCount     int    `json:"student_count" db:"student_count"`
}
