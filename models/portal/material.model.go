package portal

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Material types
const (
	MaterialVideo   = "VIDEO"
	MaterialBook    = "BOOK"
	MaterialArticle = "ARTICLE"
)

// Material represents a learning material. The type-specific fields are kept
// flat with MaterialType as the discriminator; only the fields matching the
// type are populated.
type Material struct {
	gorm.Model
	Title        string `json:"title"`
	Description  string `json:"description"`
	MaterialType string `json:"material_type" gorm:"not null"` // VIDEO, BOOK, ARTICLE
	RecordStatus string `json:"record_status" gorm:"default:'ACTIVE'"`

	// VIDEO
	DurationSec int `json:"duration_sec,omitempty" gorm:"default:0"`
	WidthPx     int `json:"width_px,omitempty" gorm:"default:0"`
	HeightPx    int `json:"height_px,omitempty" gorm:"default:0"`

	// BOOK
	Authors         string `json:"authors,omitempty"`
	Pages           int    `json:"pages,omitempty" gorm:"default:0"`
	FormatID        *uint  `json:"format_id,omitempty"`
	PublicationYear int    `json:"publication_year,omitempty" gorm:"default:0"`

	// ARTICLE
	PublishedAt *datatypes.Date `json:"published_at,omitempty"`
	SourceURL   string          `json:"source_url,omitempty"`

	CourseMaterials []CourseMaterial `json:"course_materials,omitempty" gorm:"foreignKey:MaterialID"`
}

// ActiveCourseIDs returns the distinct course ids that actively link this material.
func (m *Material) ActiveCourseIDs() []uint {
	seen := make(map[uint]bool, len(m.CourseMaterials))
	ids := make([]uint, 0, len(m.CourseMaterials))
	for _, link := range m.CourseMaterials {
		if link.RecordStatus != RecordActive || seen[link.CourseID] {
			continue
		}
		seen[link.CourseID] = true
		ids = append(ids, link.CourseID)
	}
	return ids
}

// BookFormat is a seeded lookup table for book materials
type BookFormat struct {
	gorm.Model
	Name string `json:"name" gorm:"unique;not null"` // Pdf, Epub, Txt
}
