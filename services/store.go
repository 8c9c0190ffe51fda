package services

import (
	"context"

	"eduportal/models"
	"eduportal/models/portal"
)

// Store is the persistence gateway the services are written against.
// Implementations map their own not-found conditions to ErrNotFound.
// Writes issued inside Atomic are committed together or not at all;
// cancellation before the commit leaves no visible change.
type Store interface {
	// Reads
	UserByID(ctx context.Context, id uint) (models.User, error)
	CourseByID(ctx context.Context, id uint) (portal.Course, error)
	CourseWithLinks(ctx context.Context, id uint) (portal.Course, error)
	CoursesAll(ctx context.Context) ([]portal.Course, error)
	CoursesByIDs(ctx context.Context, ids []uint) ([]portal.Course, error)
	MaterialByID(ctx context.Context, id uint) (portal.Material, error)
	MaterialWithLinks(ctx context.Context, id uint) (portal.Material, error)
	MaterialsAll(ctx context.Context) ([]portal.Material, error)
	SkillByID(ctx context.Context, id uint) (portal.Skill, error)
	SkillsAll(ctx context.Context) ([]portal.Skill, error)
	SkillsByIDs(ctx context.Context, ids []uint) ([]portal.Skill, error)
	BookFormats(ctx context.Context) ([]portal.BookFormat, error)
	StatusByName(ctx context.Context, name string) (portal.CourseStatus, error)

	Enrollment(ctx context.Context, userID, courseID uint) (portal.Enrollment, error)
	EnrollmentsByUser(ctx context.Context, userID uint) ([]portal.Enrollment, error)
	EnrollmentsByStatus(ctx context.Context, statusID uint) ([]portal.Enrollment, error)
	AnyEnrollmentByCourse(ctx context.Context, courseID uint) (bool, error)
	Completion(ctx context.Context, userID, materialID uint) (portal.MaterialCompletion, error)
	CompletedMaterialIDs(ctx context.Context, userID uint) ([]uint, error)
	AnyCompletionByMaterial(ctx context.Context, materialID uint) (bool, error)
	SkillAward(ctx context.Context, userID, skillID uint) (portal.SkillAward, error)
	SkillAwardsByUser(ctx context.Context, userID uint) ([]portal.SkillAward, error)
	AnyAwardBySkill(ctx context.Context, skillID uint) (bool, error)
	CourseSkillLinksBySkill(ctx context.Context, skillID uint) ([]portal.CourseSkill, error)

	// Writes
	CreateCourse(ctx context.Context, course *portal.Course) error
	SaveCourse(ctx context.Context, course *portal.Course) error
	CreateMaterial(ctx context.Context, material *portal.Material) error
	SaveMaterial(ctx context.Context, material *portal.Material) error
	CreateSkill(ctx context.Context, skill *portal.Skill) error
	SaveSkill(ctx context.Context, skill *portal.Skill) error
	SaveCourseMaterialLinks(ctx context.Context, links []portal.CourseMaterial) error
	SaveCourseSkillLinks(ctx context.Context, links []portal.CourseSkill) error
	CreateEnrollment(ctx context.Context, enrollment *portal.Enrollment) error
	SaveEnrollment(ctx context.Context, enrollment *portal.Enrollment) error
	CreateCompletion(ctx context.Context, completion *portal.MaterialCompletion) error
	CreateSkillAward(ctx context.Context, award *portal.SkillAward) error
	SaveSkillAward(ctx context.Context, award *portal.SkillAward) error
	CreateCertificate(ctx context.Context, certificate *portal.Certificate) error

	// Atomic runs fn against a transactional view of the store and commits
	// once fn returns nil. This is the single save point of each operation.
	Atomic(ctx context.Context, fn func(tx Store) error) error
}
