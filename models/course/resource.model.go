package course

import "gorm.io/gorm"

const (
	ResourceTypePDF   = "PDF"
	ResourceTypeLink  = "LINK"
	ResourceTypeFile  = "FILE"
	ResourceTypeVideo = "VIDEO"
)

// Resource is a downloadable attachment or external link on a lesson
type Resource struct {
	gorm.Model
	LessonID uint   `json:"lesson_id" gorm:"index;not null"`
	Title    string `json:"title" gorm:"not null"`
	URL      string `json:"url" gorm:"not null"`
	Type     string `json:"type" gorm:"default:'LINK'"` // PDF, LINK, FILE, VIDEO
}

// ValidResourceType reports whether t is one of the closed resource type set.
func ValidResourceType(t string) bool {
	switch t {
	case ResourceTypePDF, ResourceTypeLink, ResourceTypeFile, ResourceTypeVideo:
		return true
	}
	return false
}
