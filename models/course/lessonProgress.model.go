package course

import (
	"time"

	"gorm.io/gorm"
)

// LessonProgress tracks a user's completion of a single lesson; unique per
// (user, lesson) pair. CompletedAt is stamped iff IsCompleted is set.
type LessonProgress struct {
	gorm.Model
	UserID      uint       `json:"user_id" gorm:"uniqueIndex:idx_progress_user_lesson;not null"`
	LessonID    uint       `json:"lesson_id" gorm:"uniqueIndex:idx_progress_user_lesson;not null"`
	IsCompleted bool       `json:"is_completed" gorm:"default:false"`
	CompletedAt *time.Time `json:"completed_at"`
}
