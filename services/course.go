package services

import (
	"context"
	"fmt"

	"eduportal/models/portal"
)

// CourseService owns course curation, including the material and skill link
// edits that run through the link reconciler.
type CourseService struct {
	store Store
}

func NewCourseService(store Store) *CourseService {
	return &CourseService{store: store}
}

func (s *CourseService) GetAll(ctx context.Context) ([]portal.Course, error) {
	return s.store.CoursesAll(ctx)
}

func (s *CourseService) GetDetails(ctx context.Context, courseID uint) (portal.Course, error) {
	return s.store.CourseWithLinks(ctx, courseID)
}

func (s *CourseService) Create(ctx context.Context, course *portal.Course) error {
	course.RecordStatus = portal.RecordActive
	return s.store.Atomic(ctx, func(tx Store) error {
		return tx.CreateCourse(ctx, course)
	})
}

func (s *CourseService) Update(ctx context.Context, courseID uint, title, description string) (portal.Course, error) {
	course, err := s.store.CourseByID(ctx, courseID)
	if err != nil {
		return portal.Course{}, err
	}

	if title != "" {
		course.Title = title
	}
	if description != "" {
		course.Description = description
	}

	err = s.store.Atomic(ctx, func(tx Store) error {
		return tx.SaveCourse(ctx, &course)
	})
	return course, err
}

// Delete retires a course. A course with enrollments cannot be deleted.
func (s *CourseService) Delete(ctx context.Context, courseID uint) error {
	course, err := s.store.CourseByID(ctx, courseID)
	if err != nil {
		return err
	}

	inUse, err := s.store.AnyEnrollmentByCourse(ctx, courseID)
	if err != nil {
		return err
	}
	if inUse {
		return fmt.Errorf("%w: course %d has enrollments (in progress or completed)", ErrInvalidOperation, courseID)
	}

	course.RecordStatus = portal.RecordRetired
	return s.store.Atomic(ctx, func(tx Store) error {
		return tx.SaveCourse(ctx, &course)
	})
}

// UpdateCourseMaterials converges the course's material links to exactly the
// given material id set. Every referenced material must exist; retired links
// are kept for history.
func (s *CourseService) UpdateCourseMaterials(ctx context.Context, courseID uint, materialIDs []uint) error {
	course, err := s.store.CourseWithLinks(ctx, courseID)
	if err != nil {
		return err
	}

	for _, materialID := range materialIDs {
		if _, err := s.store.MaterialByID(ctx, materialID); err != nil {
			return err
		}
	}

	links := ReconcileLinks(course.CourseMaterials, materialIDs, CourseMaterialLinkFuncs(courseID))

	return s.store.Atomic(ctx, func(tx Store) error {
		return tx.SaveCourseMaterialLinks(ctx, links)
	})
}

// UpdateCourseSkills converges the course's skill links to exactly the given
// skill id set.
func (s *CourseService) UpdateCourseSkills(ctx context.Context, courseID uint, skillIDs []uint) error {
	course, err := s.store.CourseWithLinks(ctx, courseID)
	if err != nil {
		return err
	}

	for _, skillID := range skillIDs {
		if _, err := s.store.SkillByID(ctx, skillID); err != nil {
			return err
		}
	}

	links := ReconcileLinks(course.CourseSkills, skillIDs, CourseSkillLinkFuncs(courseID))

	return s.store.Atomic(ctx, func(tx Store) error {
		return tx.SaveCourseSkillLinks(ctx, links)
	})
}

// ActiveMaterialIDs lists the material ids actively linked to the course.
func (s *CourseService) ActiveMaterialIDs(ctx context.Context, courseID uint) ([]uint, error) {
	course, err := s.store.CourseWithLinks(ctx, courseID)
	if err != nil {
		return nil, err
	}
	return course.ActiveMaterialIDs(), nil
}
