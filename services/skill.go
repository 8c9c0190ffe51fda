package services

import (
	"context"
	"fmt"

	"eduportal/models/portal"
)

// SkillService owns the skill catalog and the skill-side course link edits.
type SkillService struct {
	store Store
}

func NewSkillService(store Store) *SkillService {
	return &SkillService{store: store}
}

func (s *SkillService) GetAll(ctx context.Context) ([]portal.Skill, error) {
	return s.store.SkillsAll(ctx)
}

func (s *SkillService) GetDetails(ctx context.Context, skillID uint) (portal.Skill, error) {
	return s.store.SkillByID(ctx, skillID)
}

func (s *SkillService) Create(ctx context.Context, skill *portal.Skill) error {
	skill.RecordStatus = portal.RecordActive
	return s.store.Atomic(ctx, func(tx Store) error {
		return tx.CreateSkill(ctx, skill)
	})
}

func (s *SkillService) Update(ctx context.Context, skillID uint, name, description string) (portal.Skill, error) {
	skill, err := s.store.SkillByID(ctx, skillID)
	if err != nil {
		return portal.Skill{}, err
	}

	if name != "" {
		skill.Name = name
	}
	if description != "" {
		skill.Description = description
	}

	err = s.store.Atomic(ctx, func(tx Store) error {
		return tx.SaveSkill(ctx, &skill)
	})
	return skill, err
}

// Delete retires a skill. A skill someone has already been awarded cannot be
// deleted.
func (s *SkillService) Delete(ctx context.Context, skillID uint) error {
	skill, err := s.store.SkillByID(ctx, skillID)
	if err != nil {
		return err
	}

	inUse, err := s.store.AnyAwardBySkill(ctx, skillID)
	if err != nil {
		return err
	}
	if inUse {
		return fmt.Errorf("%w: skill %d has been awarded to users", ErrInvalidOperation, skillID)
	}

	skill.RecordStatus = portal.RecordRetired
	return s.store.Atomic(ctx, func(tx Store) error {
		return tx.SaveSkill(ctx, &skill)
	})
}

// GetAssignedCourseIDs lists the courses that actively grant the skill.
func (s *SkillService) GetAssignedCourseIDs(ctx context.Context, skillID uint) ([]uint, error) {
	links, err := s.store.CourseSkillLinksBySkill(ctx, skillID)
	if err != nil {
		return nil, err
	}

	seen := make(map[uint]bool, len(links))
	ids := make([]uint, 0, len(links))
	for _, link := range links {
		if link.RecordStatus != portal.RecordActive || seen[link.CourseID] {
			continue
		}
		seen[link.CourseID] = true
		ids = append(ids, link.CourseID)
	}
	return ids, nil
}

// UpdateSkillCourses converges the skill's course links to exactly the given
// course id set, keyed from the skill side.
func (s *SkillService) UpdateSkillCourses(ctx context.Context, skillID uint, courseIDs []uint) error {
	if _, err := s.store.SkillByID(ctx, skillID); err != nil {
		return err
	}

	for _, courseID := range courseIDs {
		if _, err := s.store.CourseByID(ctx, courseID); err != nil {
			return err
		}
	}

	existing, err := s.store.CourseSkillLinksBySkill(ctx, skillID)
	if err != nil {
		return err
	}

	links := ReconcileLinks(existing, courseIDs, SkillCourseLinkFuncs(skillID))

	return s.store.Atomic(ctx, func(tx Store) error {
		return tx.SaveCourseSkillLinks(ctx, links)
	})
}
