package portal

import "gorm.io/gorm"

// CourseMaterial links a course to a material. At most one row exists per
// (course, material) pair; retired rows are re-activated, never re-created.
type CourseMaterial struct {
	gorm.Model
	CourseID     uint   `json:"course_id" gorm:"uniqueIndex:idx_course_material;not null"`
	MaterialID   uint   `json:"material_id" gorm:"uniqueIndex:idx_course_material;not null"`
	RecordStatus string `json:"record_status" gorm:"default:'ACTIVE'"`
}

// CourseSkill links a course to a skill it grants on completion
type CourseSkill struct {
	gorm.Model
	CourseID     uint   `json:"course_id" gorm:"uniqueIndex:idx_course_skill;not null"`
	SkillID      uint   `json:"skill_id" gorm:"uniqueIndex:idx_course_skill;not null"`
	RecordStatus string `json:"record_status" gorm:"default:'ACTIVE'"`
}
