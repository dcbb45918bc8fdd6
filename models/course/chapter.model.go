package course

import "gorm.io/gorm"

// Chapter represents a section within a course; chapters keep a contiguous
// zero-based position within the owning course
type Chapter struct {
	gorm.Model
	CourseID    uint     `json:"course_id" gorm:"index;not null"`
	Title       string   `json:"title" gorm:"not null"`
	Description string   `json:"description" gorm:"type:text"`
	Position    int      `json:"position" gorm:"default:0"`
	IsPublished bool     `json:"is_published" gorm:"default:false"`
	Lessons     []Lesson `json:"lessons,omitempty" gorm:"foreignKey:ChapterID"`
}
