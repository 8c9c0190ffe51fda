package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"eduportal/models"
	"eduportal/models/portal"
)

// CompletionNotifier receives a callback after a course completion has been
// committed. Implementations must not block the caller; failures are theirs
// to log.
type CompletionNotifier interface {
	CourseCompleted(user models.User, course portal.Course)
}

// EnrollmentService orchestrates enrollment creation/re-activation, material
// completion side effects and the completion transition. All reads and writes
// go through the injected Store; every state change is committed in a single
// Atomic call per save point.
type EnrollmentService struct {
	store    Store
	statuses StatusSet
	notifier CompletionNotifier
}

func NewEnrollmentService(store Store, statuses StatusSet) *EnrollmentService {
	return &EnrollmentService{store: store, statuses: statuses}
}

// SetNotifier attaches an optional completion notifier.
func (s *EnrollmentService) SetNotifier(n CompletionNotifier) {
	s.notifier = n
}

// Enroll creates the enrollment for (user, course) or refreshes an existing
// one. Re-enrolling into a completed course is a silent no-op. An existing
// in-progress enrollment gets its progress recomputed, which picks up
// changes to the course's material set since the last touch.
func (s *EnrollmentService) Enroll(ctx context.Context, userID, courseID uint) error {
	if _, err := s.store.UserByID(ctx, userID); err != nil {
		return err
	}

	course, err := s.store.CourseWithLinks(ctx, courseID)
	if err != nil {
		return err
	}

	enrollment, err := s.store.Enrollment(ctx, userID, courseID)
	switch {
	case err == nil:
		if enrollment.StatusID == s.statuses.CompletedID {
			return nil
		}

		percent, err := s.computeProgress(ctx, userID, &course)
		if err != nil {
			return err
		}

		enrollment.StatusID = s.statuses.InProgressID
		enrollment.ProgressPercent = percent
		return s.store.Atomic(ctx, func(tx Store) error {
			return tx.SaveEnrollment(ctx, &enrollment)
		})

	case errors.Is(err, ErrNotFound):
		percent, err := s.computeProgress(ctx, userID, &course)
		if err != nil {
			return err
		}

		newEnrollment := portal.Enrollment{
			UserID:          userID,
			CourseID:        courseID,
			StatusID:        s.statuses.InProgressID,
			ProgressPercent: percent,
		}
		return s.store.Atomic(ctx, func(tx Store) error {
			return tx.CreateEnrollment(ctx, &newEnrollment)
		})

	default:
		return err
	}
}

// MarkMaterialComplete records that the user completed the material, then
// recomputes progress for every course that actively links it. Courses the
// user is not enrolled in are skipped. Each affected course gets its own
// save cycle; a course reaching 100% transitions to COMPLETED and awards its
// skills within that course's commit.
func (s *EnrollmentService) MarkMaterialComplete(ctx context.Context, userID, materialID uint) error {
	user, err := s.store.UserByID(ctx, userID)
	if err != nil {
		return err
	}

	material, err := s.store.MaterialWithLinks(ctx, materialID)
	if err != nil {
		return err
	}

	if _, err := s.store.Completion(ctx, userID, materialID); err != nil {
		if !errors.Is(err, ErrNotFound) {
			return err
		}
		completion := portal.MaterialCompletion{UserID: userID, MaterialID: materialID}
		if err := s.store.Atomic(ctx, func(tx Store) error {
			return tx.CreateCompletion(ctx, &completion)
		}); err != nil {
			return err
		}
	}

	for _, courseID := range material.ActiveCourseIDs() {
		enrollment, err := s.store.Enrollment(ctx, userID, courseID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				continue
			}
			return err
		}

		if enrollment.StatusID == s.statuses.CompletedID {
			continue
		}

		if err := s.recalculateAndMaybeComplete(ctx, user, courseID, &enrollment); err != nil {
			return err
		}
	}

	return nil
}

// CompleteCourse is the explicit completion path: the enrollment is forced to
// COMPLETED with 100% progress regardless of the computed percent, and the
// course's skills are awarded, all in a single commit. Completing an already
// completed course is a no-op without a save.
func (s *EnrollmentService) CompleteCourse(ctx context.Context, userID, courseID uint) error {
	enrollment, err := s.store.Enrollment(ctx, userID, courseID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return fmt.Errorf("%w: enrollment for user %d and course %d", ErrNotFound, userID, courseID)
		}
		return err
	}

	if enrollment.StatusID == s.statuses.CompletedID {
		return nil
	}

	user, err := s.store.UserByID(ctx, userID)
	if err != nil {
		return err
	}

	course, err := s.store.CourseWithLinks(ctx, courseID)
	if err != nil {
		return err
	}

	enrollment.StatusID = s.statuses.CompletedID
	enrollment.ProgressPercent = MaxProgressPercent

	err = s.store.Atomic(ctx, func(tx Store) error {
		if err := tx.SaveEnrollment(ctx, &enrollment); err != nil {
			return err
		}
		if err := s.AwardCourseSkills(ctx, tx, userID, course.CourseSkills); err != nil {
			return err
		}
		return s.issueCertificate(ctx, tx, userID, courseID)
	})
	if err != nil {
		return err
	}

	s.notifyCompleted(user, course)
	return nil
}

// GetStatus reports the enrollment state for (user, course).
func (s *EnrollmentService) GetStatus(ctx context.Context, userID, courseID uint) (EnrollmentState, error) {
	enrollment, err := s.store.Enrollment(ctx, userID, courseID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return StateNotEnrolled, nil
		}
		return StateNotEnrolled, err
	}

	if enrollment.StatusID == s.statuses.CompletedID {
		return StateCompleted, nil
	}
	return StateInProgress, nil
}

// GetCompletedMaterialIDs returns the ids of all materials the user has completed.
func (s *EnrollmentService) GetCompletedMaterialIDs(ctx context.Context, userID uint) ([]uint, error) {
	return s.store.CompletedMaterialIDs(ctx, userID)
}

// AwardCourseSkills grants one skill-level per ACTIVE course-skill link to
// the user: a first grant creates a level-1 award, every further grant
// increments the level. Skills whose row no longer exists are skipped
// silently. Writes are queued on tx; the caller owns the commit.
func (s *EnrollmentService) AwardCourseSkills(ctx context.Context, tx Store, userID uint, skillLinks []portal.CourseSkill) error {
	skillIDs := activeSkillIDs(skillLinks)
	// Stable order keeps award processing deterministic.
	sort.Slice(skillIDs, func(i, j int) bool { return skillIDs[i] < skillIDs[j] })

	for _, skillID := range skillIDs {
		if _, err := tx.SkillByID(ctx, skillID); err != nil {
			if errors.Is(err, ErrNotFound) {
				continue
			}
			return err
		}

		award, err := tx.SkillAward(ctx, userID, skillID)
		switch {
		case err == nil:
			award.Level++
			if err := tx.SaveSkillAward(ctx, &award); err != nil {
				return err
			}
		case errors.Is(err, ErrNotFound):
			newAward := portal.SkillAward{UserID: userID, SkillID: skillID, Level: 1}
			if err := tx.CreateSkillAward(ctx, &newAward); err != nil {
				return err
			}
		default:
			return err
		}
	}

	return nil
}

// RefreshInProgressEnrollments recomputes progress for every in-progress
// enrollment, completing those whose recompute reaches 100%. Used by the
// nightly scheduler to pick up course material set changes.
func (s *EnrollmentService) RefreshInProgressEnrollments(ctx context.Context) (int, error) {
	enrollments, err := s.store.EnrollmentsByStatus(ctx, s.statuses.InProgressID)
	if err != nil {
		return 0, err
	}

	updated := 0
	for i := range enrollments {
		user, err := s.store.UserByID(ctx, enrollments[i].UserID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				continue
			}
			return updated, err
		}

		course, err := s.store.CourseWithLinks(ctx, enrollments[i].CourseID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				continue
			}
			return updated, err
		}

		percent, err := s.computeProgress(ctx, user.ID, &course)
		if err != nil {
			return updated, err
		}
		if percent == enrollments[i].ProgressPercent {
			continue
		}

		if err := s.recalculateAndMaybeComplete(ctx, user, course.ID, &enrollments[i]); err != nil {
			return updated, err
		}
		updated++
	}

	return updated, nil
}

func (s *EnrollmentService) recalculateAndMaybeComplete(ctx context.Context, user models.User, courseID uint, enrollment *portal.Enrollment) error {
	course, err := s.store.CourseWithLinks(ctx, courseID)
	if err != nil {
		return err
	}

	percent, err := s.computeProgress(ctx, user.ID, &course)
	if err != nil {
		return err
	}
	enrollment.ProgressPercent = percent

	if percent >= MaxProgressPercent && enrollment.StatusID != s.statuses.CompletedID {
		enrollment.StatusID = s.statuses.CompletedID

		err := s.store.Atomic(ctx, func(tx Store) error {
			if err := tx.SaveEnrollment(ctx, enrollment); err != nil {
				return err
			}
			if err := s.AwardCourseSkills(ctx, tx, user.ID, course.CourseSkills); err != nil {
				return err
			}
			return s.issueCertificate(ctx, tx, user.ID, courseID)
		})
		if err != nil {
			return err
		}

		s.notifyCompleted(user, course)
		return nil
	}

	return s.store.Atomic(ctx, func(tx Store) error {
		return tx.SaveEnrollment(ctx, enrollment)
	})
}

func (s *EnrollmentService) computeProgress(ctx context.Context, userID uint, course *portal.Course) (int, error) {
	activeIDs := course.ActiveMaterialIDs()
	if len(activeIDs) == 0 {
		return MinProgressPercent, nil
	}

	completedIDs, err := s.store.CompletedMaterialIDs(ctx, userID)
	if err != nil {
		return 0, err
	}

	return ComputeProgressPercent(activeIDs, completedIDs), nil
}

func (s *EnrollmentService) issueCertificate(ctx context.Context, tx Store, userID, courseID uint) error {
	certificate := portal.Certificate{
		UserID:            userID,
		CourseID:          courseID,
		CertificateNumber: uuid.NewString(),
		IssuedAt:          time.Now().UTC(),
	}
	return tx.CreateCertificate(ctx, &certificate)
}

func (s *EnrollmentService) notifyCompleted(user models.User, course portal.Course) {
	if s.notifier == nil {
		return
	}
	s.notifier.CourseCompleted(user, course)
}

func activeSkillIDs(links []portal.CourseSkill) []uint {
	seen := make(map[uint]bool, len(links))
	ids := make([]uint, 0, len(links))
	for _, link := range links {
		if link.RecordStatus != portal.RecordActive || seen[link.SkillID] {
			continue
		}
		seen[link.SkillID] = true
		ids = append(ids, link.SkillID)
	}
	return ids
}
