package services

import "errors"

var (
	// ErrNotFound is returned when a referenced user, course, material,
	// skill or enrollment does not exist. User-correctable.
	ErrNotFound = errors.New("not found")

	// ErrInvalidOperation is returned when a caller attempts a semantically
	// disallowed mutation, e.g. deleting a course with active enrollments.
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrIntegrity signals missing seed/reference data. Not user-correctable;
	// indicates a deployment or seeding defect.
	ErrIntegrity = errors.New("integrity fault")
)
