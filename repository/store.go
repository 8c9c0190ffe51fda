package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"eduportal/models"
	"eduportal/models/portal"
	"eduportal/services"
)

// GormStore implements services.Store on top of GORM. Not-found lookups are
// mapped to services.ErrNotFound at this boundary so the services never see
// gorm errors.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func notFound(err error, what string, id any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %s %v", services.ErrNotFound, what, id)
	}
	return err
}

func (s *GormStore) UserByID(ctx context.Context, id uint) (models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("id = ? AND is_deleted = ?", id, false).First(&user).Error
	return user, notFound(err, "user", id)
}

func (s *GormStore) CourseByID(ctx context.Context, id uint) (portal.Course, error) {
	var course portal.Course
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&course).Error
	return course, notFound(err, "course", id)
}

func (s *GormStore) CourseWithLinks(ctx context.Context, id uint) (portal.Course, error) {
	var course portal.Course
	err := s.db.WithContext(ctx).
		Preload("CourseMaterials").
		Preload("CourseSkills").
		Where("id = ?", id).First(&course).Error
	return course, notFound(err, "course", id)
}

func (s *GormStore) CoursesAll(ctx context.Context) ([]portal.Course, error) {
	var courses []portal.Course
	err := s.db.WithContext(ctx).
		Where("record_status = ?", portal.RecordActive).
		Order("id asc").Find(&courses).Error
	return courses, err
}

func (s *GormStore) CoursesByIDs(ctx context.Context, ids []uint) ([]portal.Course, error) {
	var courses []portal.Course
	if len(ids) == 0 {
		return courses, nil
	}
	err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&courses).Error
	return courses, err
}

func (s *GormStore) MaterialByID(ctx context.Context, id uint) (portal.Material, error) {
	var material portal.Material
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&material).Error
	return material, notFound(err, "material", id)
}

func (s *GormStore) MaterialWithLinks(ctx context.Context, id uint) (portal.Material, error) {
	var material portal.Material
	err := s.db.WithContext(ctx).
		Preload("CourseMaterials").
		Where("id = ?", id).First(&material).Error
	return material, notFound(err, "material", id)
}

func (s *GormStore) MaterialsAll(ctx context.Context) ([]portal.Material, error) {
	var materials []portal.Material
	err := s.db.WithContext(ctx).
		Where("record_status = ?", portal.RecordActive).
		Order("id asc").Find(&materials).Error
	return materials, err
}

func (s *GormStore) SkillByID(ctx context.Context, id uint) (portal.Skill, error) {
	var skill portal.Skill
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&skill).Error
	return skill, notFound(err, "skill", id)
}

func (s *GormStore) SkillsAll(ctx context.Context) ([]portal.Skill, error) {
	var skills []portal.Skill
	err := s.db.WithContext(ctx).
		Where("record_status = ?", portal.RecordActive).
		Order("id asc").Find(&skills).Error
	return skills, err
}

func (s *GormStore) SkillsByIDs(ctx context.Context, ids []uint) ([]portal.Skill, error) {
	var skills []portal.Skill
	if len(ids) == 0 {
		return skills, nil
	}
	err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&skills).Error
	return skills, err
}

func (s *GormStore) BookFormats(ctx context.Context) ([]portal.BookFormat, error) {
	var formats []portal.BookFormat
	err := s.db.WithContext(ctx).Order("id asc").Find(&formats).Error
	return formats, err
}

func (s *GormStore) StatusByName(ctx context.Context, name string) (portal.CourseStatus, error) {
	var status portal.CourseStatus
	err := s.db.WithContext(ctx).Where("name = ?", name).First(&status).Error
	return status, notFound(err, "course status", name)
}

func (s *GormStore) Enrollment(ctx context.Context, userID, courseID uint) (portal.Enrollment, error) {
	var enrollment portal.Enrollment
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		First(&enrollment).Error
	return enrollment, notFound(err, "enrollment for user/course", fmt.Sprintf("%d/%d", userID, courseID))
}

func (s *GormStore) EnrollmentsByUser(ctx context.Context, userID uint) ([]portal.Enrollment, error) {
	var enrollments []portal.Enrollment
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("course_id asc").Find(&enrollments).Error
	return enrollments, err
}

func (s *GormStore) EnrollmentsByStatus(ctx context.Context, statusID uint) ([]portal.Enrollment, error) {
	var enrollments []portal.Enrollment
	err := s.db.WithContext(ctx).
		Where("status_id = ?", statusID).
		Order("id asc").Find(&enrollments).Error
	return enrollments, err
}

func (s *GormStore) AnyEnrollmentByCourse(ctx context.Context, courseID uint) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&portal.Enrollment{}).
		Where("course_id = ?", courseID).Count(&count).Error
	return count > 0, err
}

func (s *GormStore) Completion(ctx context.Context, userID, materialID uint) (portal.MaterialCompletion, error) {
	var completion portal.MaterialCompletion
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND material_id = ?", userID, materialID).
		First(&completion).Error
	return completion, notFound(err, "completion for user/material", fmt.Sprintf("%d/%d", userID, materialID))
}

func (s *GormStore) CompletedMaterialIDs(ctx context.Context, userID uint) ([]uint, error) {
	var ids []uint
	err := s.db.WithContext(ctx).Model(&portal.MaterialCompletion{}).
		Where("user_id = ?", userID).
		Pluck("material_id", &ids).Error
	return ids, err
}

func (s *GormStore) AnyCompletionByMaterial(ctx context.Context, materialID uint) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&portal.MaterialCompletion{}).
		Where("material_id = ?", materialID).Count(&count).Error
	return count > 0, err
}

func (s *GormStore) SkillAward(ctx context.Context, userID, skillID uint) (portal.SkillAward, error) {
	var award portal.SkillAward
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND skill_id = ?", userID, skillID).
		First(&award).Error
	return award, notFound(err, "skill award for user/skill", fmt.Sprintf("%d/%d", userID, skillID))
}

func (s *GormStore) SkillAwardsByUser(ctx context.Context, userID uint) ([]portal.SkillAward, error) {
	var awards []portal.SkillAward
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("skill_id asc").Find(&awards).Error
	return awards, err
}

func (s *GormStore) AnyAwardBySkill(ctx context.Context, skillID uint) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&portal.SkillAward{}).
		Where("skill_id = ?", skillID).Count(&count).Error
	return count > 0, err
}

func (s *GormStore) CourseSkillLinksBySkill(ctx context.Context, skillID uint) ([]portal.CourseSkill, error) {
	var links []portal.CourseSkill
	err := s.db.WithContext(ctx).
		Where("skill_id = ?", skillID).
		Order("course_id asc").Find(&links).Error
	return links, err
}

func (s *GormStore) CreateCourse(ctx context.Context, course *portal.Course) error {
	return s.db.WithContext(ctx).Create(course).Error
}

func (s *GormStore) SaveCourse(ctx context.Context, course *portal.Course) error {
	return s.db.WithContext(ctx).Save(course).Error
}

func (s *GormStore) CreateMaterial(ctx context.Context, material *portal.Material) error {
	return s.db.WithContext(ctx).Create(material).Error
}

func (s *GormStore) SaveMaterial(ctx context.Context, material *portal.Material) error {
	return s.db.WithContext(ctx).Save(material).Error
}

func (s *GormStore) CreateSkill(ctx context.Context, skill *portal.Skill) error {
	return s.db.WithContext(ctx).Create(skill).Error
}

func (s *GormStore) SaveSkill(ctx context.Context, skill *portal.Skill) error {
	return s.db.WithContext(ctx).Save(skill).Error
}

func (s *GormStore) SaveCourseMaterialLinks(ctx context.Context, links []portal.CourseMaterial) error {
	for i := range links {
		if err := s.db.WithContext(ctx).Save(&links[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

func (s *GormStore) SaveCourseSkillLinks(ctx context.Context, links []portal.CourseSkill) error {
	for i := range links {
		if err := s.db.WithContext(ctx).Save(&links[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

func (s *GormStore) CreateEnrollment(ctx context.Context, enrollment *portal.Enrollment) error {
	return s.db.WithContext(ctx).Create(enrollment).Error
}

func (s *GormStore) SaveEnrollment(ctx context.Context, enrollment *portal.Enrollment) error {
	return s.db.WithContext(ctx).Save(enrollment).Error
}

func (s *GormStore) CreateCompletion(ctx context.Context, completion *portal.MaterialCompletion) error {
	return s.db.WithContext(ctx).Create(completion).Error
}

func (s *GormStore) CreateSkillAward(ctx context.Context, award *portal.SkillAward) error {
	return s.db.WithContext(ctx).Create(award).Error
}

func (s *GormStore) SaveSkillAward(ctx context.Context, award *portal.SkillAward) error {
	return s.db.WithContext(ctx).Save(award).Error
}

func (s *GormStore) CreateCertificate(ctx context.Context, certificate *portal.Certificate) error {
	return s.db.WithContext(ctx).Create(certificate).Error
}

// Atomic runs fn against a transaction-scoped store. The transaction commits
// when fn returns nil and rolls back otherwise, so each service save point
// is all-or-nothing.
func (s *GormStore) Atomic(ctx context.Context, fn func(tx services.Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})
}
