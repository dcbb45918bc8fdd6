package services

import (
	"gorm.io/gorm"

	"stagingcourse/apperror"
	"stagingcourse/models"
	courseModels "stagingcourse/models/course"
)

type CreateChapterInput struct {
	CourseID    uint   `json:"course_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type UpdateChapterInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// CreateChapter appends a chapter at the end of the course's chapter list.
func CreateChapter(db *gorm.DB, actor models.User, in CreateChapterInput) (*courseModels.Chapter, *apperror.Error) {
	if gateErr := requireAdmin(actor); gateErr != nil {
		return nil, gateErr
	}

	var course courseModels.Course
	if err := db.First(&course, in.CourseID).Error; err != nil {
		return nil, apperror.NotFound("Course not found!")
	}

	var chapter courseModels.Chapter
	err := db.Transaction(func(tx *gorm.DB) error {
		position, err := nextPosition(tx, &courseModels.Chapter{}, "course_id", course.ID)
		if err != nil {
			return err
		}
		chapter = courseModels.Chapter{
			CourseID:    course.ID,
			Title:       in.Title,
			Description: in.Description,
			Position:    position,
		}
		return tx.Create(&chapter).Error
	})
	if err != nil {
		return nil, apperror.Internal("Failed to create chapter!", err)
	}

	return &chapter, nil
}

func UpdateChapter(db *gorm.DB, actor models.User, chapterID uint, in UpdateChapterInput) (*courseModels.Chapter, *apperror.Error) {
	if gateErr := requireAdmin(actor); gateErr != nil {
		return nil, gateErr
	}

	var chapter courseModels.Chapter
	if err := db.First(&chapter, chapterID).Error; err != nil {
		return nil, apperror.NotFound("Chapter not found!")
	}

	if in.Title != nil {
		chapter.Title = *in.Title
	}
	if in.Description != nil {
		chapter.Description = *in.Description
	}

	if err := db.Save(&chapter).Error; err != nil {
		return nil, apperror.Internal("Failed to update chapter!", err)
	}

	return &chapter, nil
}

// DeleteChapter removes the chapter with its lessons, then renumbers the
// remaining chapters of the course so positions stay contiguous from 0. The
// whole cycle runs in one transaction.
func DeleteChapter(db *gorm.DB, actor models.User, chapterID uint) *apperror.Error {
	if gateErr := requireAdmin(actor); gateErr != nil {
		return gateErr
	}

	var chapter courseModels.Chapter
	if err := db.First(&chapter, chapterID).Error; err != nil {
		return apperror.NotFound("Chapter not found!")
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		var lessonIDs []uint
		if err := tx.Model(&courseModels.Lesson{}).Where("chapter_id = ?", chapter.ID).Pluck("id", &lessonIDs).Error; err != nil {
			return err
		}
		if len(lessonIDs) > 0 {
			if err := tx.Unscoped().Where("lesson_id IN ?", lessonIDs).Delete(&courseModels.Resource{}).Error; err != nil {
				return err
			}
			if err := tx.Unscoped().Where("lesson_id IN ?", lessonIDs).Delete(&courseModels.LessonProgress{}).Error; err != nil {
				return err
			}
			if err := tx.Unscoped().Where("chapter_id = ?", chapter.ID).Delete(&courseModels.Lesson{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Unscoped().Delete(&courseModels.Chapter{}, chapter.ID).Error; err != nil {
			return err
		}
		return renumberChapters(tx, chapter.CourseID)
	})
	if err != nil {
		return apperror.Internal("Failed to delete chapter!", err)
	}

	return nil
}

// ReorderChapters assigns position = index for the supplied ordering, which
// must be an exact permutation of the course's current chapter ids.
func ReorderChapters(db *gorm.DB, actor models.User, courseID uint, orderedIDs []uint) *apperror.Error {
	if gateErr := requireAdmin(actor); gateErr != nil {
		return gateErr
	}

	var course courseModels.Course
	if err := db.First(&course, courseID).Error; err != nil {
		return apperror.NotFound("Course not found!")
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		var current []uint
		if err := tx.Model(&courseModels.Chapter{}).Where("course_id = ?", course.ID).Order("position asc").Pluck("id", &current).Error; err != nil {
			return err
		}
		if vErr := validateReorder(current, orderedIDs); vErr != nil {
			return vErr
		}
		for i, id := range orderedIDs {
			if err := tx.Model(&courseModels.Chapter{}).Where("id = ?", id).Update("position", i).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return asAppError(err, "Failed to reorder chapters!")
	}

	return nil
}

// PublishChapter requires at least one published lesson in the chapter.
func PublishChapter(db *gorm.DB, actor models.User, chapterID uint) *apperror.Error {
	if gateErr := requireAdmin(actor); gateErr != nil {
		return gateErr
	}

	var chapter courseModels.Chapter
	if err := db.Preload("Lessons", "is_published = ?", true).First(&chapter, chapterID).Error; err != nil {
		return apperror.NotFound("Chapter not found!")
	}

	if len(chapter.Lessons) == 0 {
		return apperror.PreconditionFailed("Cannot publish chapter without published lessons!")
	}

	if err := db.Model(&courseModels.Chapter{}).Where("id = ?", chapter.ID).Update("is_published", true).Error; err != nil {
		return apperror.Internal("Failed to publish chapter!", err)
	}

	return nil
}

func UnpublishChapter(db *gorm.DB, actor models.User, chapterID uint) *apperror.Error {
	if gateErr := requireAdmin(actor); gateErr != nil {
		return gateErr
	}

	var chapter courseModels.Chapter
	if err := db.First(&chapter, chapterID).Error; err != nil {
		return apperror.NotFound("Chapter not found!")
	}

	if err := db.Model(&chapter).Update("is_published", false).Error; err != nil {
		return apperror.Internal("Failed to unpublish chapter!", err)
	}

	return nil
}
