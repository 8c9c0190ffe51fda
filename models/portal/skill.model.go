package portal

import "gorm.io/gorm"

// Skill represents a named skill earned by completing courses
type Skill struct {
	gorm.Model
	Name         string `json:"name" gorm:"unique;not null"`
	Description  string `json:"description"`
	RecordStatus string `json:"record_status" gorm:"default:'ACTIVE'"`
}
