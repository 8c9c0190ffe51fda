package portal

import "gorm.io/gorm"

// CourseStatus is a seeded lookup table for enrollment states. Missing seed
// rows are a deployment defect, detected at startup.
type CourseStatus struct {
	gorm.Model
	Name string `json:"name" gorm:"unique;not null"` // IN_PROGRESS, COMPLETED
}

// Enrollment tracks a user's enrollment in a course with progress.
// Exactly one row exists per (user, course) pair; a COMPLETED enrollment
// never moves back to IN_PROGRESS.
type Enrollment struct {
	gorm.Model
	UserID          uint `json:"user_id" gorm:"uniqueIndex:idx_enrollment;not null"`
	CourseID        uint `json:"course_id" gorm:"uniqueIndex:idx_enrollment;not null"`
	StatusID        uint `json:"status_id" gorm:"index;not null"`
	ProgressPercent int  `json:"progress_percent" gorm:"default:0"` // 0-100
}

// MaterialCompletion records that a user completed a material.
// Created at most once per (user, material) pair.
type MaterialCompletion struct {
	gorm.Model
	UserID     uint `json:"user_id" gorm:"uniqueIndex:idx_completion;not null"`
	MaterialID uint `json:"material_id" gorm:"uniqueIndex:idx_completion;not null"`
}

// SkillAward tracks a user's accumulated level for one skill. Level starts at
// 1 and is incremented each time the user completes another course granting
// the same skill.
type SkillAward struct {
	gorm.Model
	UserID  uint `json:"user_id" gorm:"uniqueIndex:idx_skill_award;not null"`
	SkillID uint `json:"skill_id" gorm:"uniqueIndex:idx_skill_award;not null"`
	Level   int  `json:"level" gorm:"default:1"`
}
