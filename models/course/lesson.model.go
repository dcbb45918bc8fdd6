package course

import "gorm.io/gorm"

// Lesson represents a single unit of content within a chapter; lessons keep a
// contiguous zero-based position within the owning chapter
type Lesson struct {
	gorm.Model
	ChapterID   uint       `json:"chapter_id" gorm:"index;not null"`
	Title       string     `json:"title" gorm:"not null"`
	Content     string     `json:"content" gorm:"type:text"`
	VideoURL    string     `json:"video_url"`
	Position    int        `json:"position" gorm:"default:0"`
	IsPublished bool       `json:"is_published" gorm:"default:false"`
	IsFree      bool       `json:"is_free" gorm:"default:false"` // free preview, viewable without enrollment
	Resources   []Resource `json:"resources,omitempty" gorm:"foreignKey:LessonID"`
}
