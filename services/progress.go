package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"stagingcourse/apperror"
	"stagingcourse/models"
	courseModels "stagingcourse/models/course"
)

// ProgressInput is the body of the lesson progress endpoint.
type ProgressInput struct {
	IsCompleted bool `json:"is_completed"`
}

// CourseProgressSummary is the per-course completion snapshot shown on the
// student dashboard.
type CourseProgressSummary struct {
	CourseID         uint    `json:"course_id"`
	CompletedLessons int64   `json:"completed_lessons"`
	TotalLessons     int64   `json:"total_lessons"`
	Percent          float64 `json:"percent"`
}

// ToggleLessonProgress upserts the (user, lesson) progress row, stamping
// CompletedAt when completing and clearing it when un-completing.
func ToggleLessonProgress(db *gorm.DB, actor models.User, lessonID uint, isCompleted bool) (*courseModels.LessonProgress, *apperror.Error) {
	if gateErr := requireActor(actor); gateErr != nil {
		return nil, gateErr
	}

	var lesson courseModels.Lesson
	if err := db.First(&lesson, lessonID).Error; err != nil {
		return nil, apperror.NotFound("Lesson not found!")
	}

	var completedAt *time.Time
	if isCompleted {
		now := time.Now()
		completedAt = &now
	}

	var progress courseModels.LessonProgress
	err := db.Where("user_id = ? AND lesson_id = ?", actor.ID, lesson.ID).First(&progress).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		progress = courseModels.LessonProgress{
			UserID:      actor.ID,
			LessonID:    lesson.ID,
			IsCompleted: isCompleted,
			CompletedAt: completedAt,
		}
		if err := db.Create(&progress).Error; err != nil {
			return nil, apperror.Internal("Failed to save progress!", err)
		}
	case err != nil:
		return nil, apperror.Internal("Failed to load progress!", err)
	default:
		progress.IsCompleted = isCompleted
		progress.CompletedAt = completedAt
		if err := db.Save(&progress).Error; err != nil {
			return nil, apperror.Internal("Failed to save progress!", err)
		}
	}

	return &progress, nil
}

// CourseProgress computes the actor's completion counts over the published
// lessons of a course.
func CourseProgress(db *gorm.DB, actor models.User, courseID uint) (*CourseProgressSummary, *apperror.Error) {
	if gateErr := requireActor(actor); gateErr != nil {
		return nil, gateErr
	}

	var course courseModels.Course
	if err := db.First(&course, courseID).Error; err != nil {
		return nil, apperror.NotFound("Course not found!")
	}

	var total int64
	if err := db.Model(&courseModels.Lesson{}).
		Joins("JOIN chapters ON chapters.id = lessons.chapter_id").
		Where("chapters.course_id = ? AND lessons.is_published = ?", course.ID, true).
		Count(&total).Error; err != nil {
		return nil, apperror.Internal("Failed to compute progress!", err)
	}

	var completed int64
	if err := db.Model(&courseModels.LessonProgress{}).
		Joins("JOIN lessons ON lessons.id = lesson_progresses.lesson_id").
		Joins("JOIN chapters ON chapters.id = lessons.chapter_id").
		Where("lesson_progresses.user_id = ? AND lesson_progresses.is_completed = ?", actor.ID, true).
		Where("chapters.course_id = ? AND lessons.is_published = ?", course.ID, true).
		Count(&completed).Error; err != nil {
		return nil, apperror.Internal("Failed to compute progress!", err)
	}

	summary := &CourseProgressSummary{
		CourseID:         course.ID,
		CompletedLessons: completed,
		TotalLessons:     total,
	}
	if total > 0 {
		summary.Percent = float64(completed) / float64(total) * 100
	}
	return summary, nil
}
