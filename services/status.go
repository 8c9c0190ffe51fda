package services

import (
	"context"
	"errors"
	"fmt"
)

// Course status seed names
const (
	StatusInProgress = "IN_PROGRESS"
	StatusCompleted  = "COMPLETED"
)

// EnrollmentState is the caller-facing enrollment state of a (user, course) pair.
type EnrollmentState string

const (
	StateNotEnrolled EnrollmentState = "NOT_ENROLLED"
	StateInProgress  EnrollmentState = "IN_PROGRESS"
	StateCompleted   EnrollmentState = "COMPLETED"
)

// StatusSet holds the seeded course status ids, resolved once at startup.
type StatusSet struct {
	InProgressID uint
	CompletedID  uint
}

// ResolveStatusSet looks up the seeded course statuses by name. A missing row
// means the database was not seeded and is reported as an integrity fault.
func ResolveStatusSet(ctx context.Context, store Store) (StatusSet, error) {
	var set StatusSet

	inProgress, err := store.StatusByName(ctx, StatusInProgress)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return set, fmt.Errorf("%w: course status %q missing, check seed data", ErrIntegrity, StatusInProgress)
		}
		return set, err
	}

	completed, err := store.StatusByName(ctx, StatusCompleted)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return set, fmt.Errorf("%w: course status %q missing, check seed data", ErrIntegrity, StatusCompleted)
		}
		return set, err
	}

	set.InProgressID = inProgress.ID
	set.CompletedID = completed.ID
	return set, nil
}
