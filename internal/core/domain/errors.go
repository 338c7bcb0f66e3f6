package domain

import "errors"

var (
	// ErrInvalidCredentials covers both unknown identifiers and wrong
	// passwords so responses cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken marks a presented token that failed verification.
	ErrInvalidToken = errors.New("invalid token")

	ErrForbidden = errors.New("access forbidden")

	ErrUserNotFound         = errors.New("user not found")
	ErrUserExists           = errors.New("user already exists")
	ErrAcademicYearNotFound = errors.New("academic year not found")
	ErrNoActiveAcademicYear = errors.New("no active academic year found")
	ErrGroupNotFound        = errors.New("group not found")
	ErrStudentNotFound      = errors.New("student not found")
	ErrCompanyNotFound      = errors.New("company not found")
	ErrWorkCenterNotFound   = errors.New("work center not found")
	ErrActivityNotFound     = errors.New("activity not found")

	// ErrHasGroups and ErrHasStudents are referential refusals: a record
	// that still has dependents cannot be deleted.
	ErrHasGroups   = errors.New("academic year has associated groups")
	ErrHasStudents = errors.New("group has associated students")

	ErrInvalidStatus = errors.New("invalid activity status")
	ErrInvalidRole   = errors.New("invalid role")
)
