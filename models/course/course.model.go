package course

import "gorm.io/gorm"

// Course represents a learning course made of ordered chapters
type Course struct {
	gorm.Model
	Title       string    `json:"title" gorm:"not null"`
	Slug        string    `json:"slug" gorm:"uniqueIndex;not null"` // derived from title
	Description string    `json:"description" gorm:"type:text"`
	ImageURL    string    `json:"image_url"`
	Price       int       `json:"price" gorm:"default:0"` // minor units (cents)
	IsPublished bool      `json:"is_published" gorm:"default:false"`
	Chapters    []Chapter `json:"chapters,omitempty" gorm:"foreignKey:CourseID"`
}
