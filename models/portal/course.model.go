package portal

import "gorm.io/gorm"

// Course represents a learning course curated by admins
type Course struct {
	gorm.Model
	Title        string `json:"title"`
	Description  string `json:"description"`
	RecordStatus string `json:"record_status" gorm:"default:'ACTIVE'"`

	CourseMaterials []CourseMaterial `json:"course_materials,omitempty" gorm:"foreignKey:CourseID"`
	CourseSkills    []CourseSkill    `json:"course_skills,omitempty" gorm:"foreignKey:CourseID"`
}

// ActiveMaterialIDs returns the distinct material ids linked to the course
// through an ACTIVE link.
func (c *Course) ActiveMaterialIDs() []uint {
	seen := make(map[uint]bool, len(c.CourseMaterials))
	ids := make([]uint, 0, len(c.CourseMaterials))
	for _, link := range c.CourseMaterials {
		if link.RecordStatus != RecordActive || seen[link.MaterialID] {
			continue
		}
		seen[link.MaterialID] = true
		ids = append(ids, link.MaterialID)
	}
	return ids
}

// ActiveSkillIDs returns the distinct skill ids linked to the course
// through an ACTIVE link.
func (c *Course) ActiveSkillIDs() []uint {
	seen := make(map[uint]bool, len(c.CourseSkills))
	ids := make([]uint, 0, len(c.CourseSkills))
	for _, link := range c.CourseSkills {
		if link.RecordStatus != RecordActive || seen[link.SkillID] {
			continue
		}
		seen[link.SkillID] = true
		ids = append(ids, link.SkillID)
	}
	return ids
}
