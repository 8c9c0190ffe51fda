package services

import (
	"context"

	"eduportal/models/portal"
)

// UserProfile summarizes a learner's standing.
type UserProfile struct {
	UserID            uint   `json:"user_id"`
	Name              string `json:"name"`
	Email             string `json:"email"`
	CoursesInProgress int    `json:"courses_in_progress"`
	CoursesCompleted  int    `json:"courses_completed"`
	SkillCount        int    `json:"skill_count"`
}

// UserCourseItem is one course row on a learner's profile.
type UserCourseItem struct {
	CourseID        uint   `json:"course_id"`
	CourseTitle     string `json:"course_title"`
	ProgressPercent int    `json:"progress_percent"`
}

// UserSkillItem is one earned skill row on a learner's profile.
type UserSkillItem struct {
	SkillID   uint   `json:"skill_id"`
	SkillName string `json:"skill_name"`
	Level     int    `json:"level"`
}

// ProfileService assembles learner-facing profile views from enrollments and
// skill awards.
type ProfileService struct {
	store    Store
	statuses StatusSet
}

func NewProfileService(store Store, statuses StatusSet) *ProfileService {
	return &ProfileService{store: store, statuses: statuses}
}

func (s *ProfileService) GetProfile(ctx context.Context, userID uint) (UserProfile, error) {
	user, err := s.store.UserByID(ctx, userID)
	if err != nil {
		return UserProfile{}, err
	}

	enrollments, err := s.store.EnrollmentsByUser(ctx, userID)
	if err != nil {
		return UserProfile{}, err
	}

	awards, err := s.store.SkillAwardsByUser(ctx, userID)
	if err != nil {
		return UserProfile{}, err
	}

	profile := UserProfile{
		UserID:     user.ID,
		Name:       user.Name,
		Email:      user.Email,
		SkillCount: len(awards),
	}
	for _, e := range enrollments {
		if e.StatusID == s.statuses.CompletedID {
			profile.CoursesCompleted++
		} else {
			profile.CoursesInProgress++
		}
	}

	return profile, nil
}

func (s *ProfileService) GetCoursesInProgress(ctx context.Context, userID uint) ([]UserCourseItem, error) {
	return s.courseItems(ctx, userID, false)
}

func (s *ProfileService) GetCompletedCourses(ctx context.Context, userID uint) ([]UserCourseItem, error) {
	return s.courseItems(ctx, userID, true)
}

func (s *ProfileService) GetSkills(ctx context.Context, userID uint) ([]UserSkillItem, error) {
	awards, err := s.store.SkillAwardsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(awards) == 0 {
		return []UserSkillItem{}, nil
	}

	skillIDs := make([]uint, 0, len(awards))
	for _, award := range awards {
		skillIDs = append(skillIDs, award.SkillID)
	}

	skills, err := s.store.SkillsByIDs(ctx, skillIDs)
	if err != nil {
		return nil, err
	}
	nameByID := make(map[uint]string, len(skills))
	for _, skill := range skills {
		nameByID[skill.ID] = skill.Name
	}

	items := make([]UserSkillItem, 0, len(awards))
	for _, award := range awards {
		items = append(items, UserSkillItem{
			SkillID:   award.SkillID,
			SkillName: nameByID[award.SkillID],
			Level:     award.Level,
		})
	}
	return items, nil
}

func (s *ProfileService) courseItems(ctx context.Context, userID uint, completed bool) ([]UserCourseItem, error) {
	enrollments, err := s.store.EnrollmentsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	matching := make([]portal.Enrollment, 0, len(enrollments))
	for _, e := range enrollments {
		if (e.StatusID == s.statuses.CompletedID) == completed {
			matching = append(matching, e)
		}
	}
	if len(matching) == 0 {
		return []UserCourseItem{}, nil
	}

	courseIDs := make([]uint, 0, len(matching))
	for _, e := range matching {
		courseIDs = append(courseIDs, e.CourseID)
	}

	courses, err := s.store.CoursesByIDs(ctx, courseIDs)
	if err != nil {
		return nil, err
	}
	titleByID := make(map[uint]string, len(courses))
	for _, course := range courses {
		titleByID[course.ID] = course.Title
	}

	items := make([]UserCourseItem, 0, len(matching))
	for _, e := range matching {
		items = append(items, UserCourseItem{
			CourseID:        e.CourseID,
			CourseTitle:     titleByID[e.CourseID],
			ProgressPercent: e.ProgressPercent,
		})
	}
	return items, nil
}
