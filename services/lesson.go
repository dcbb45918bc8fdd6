package services

import (
	"gorm.io/gorm"

	"stagingcourse/apperror"
	"stagingcourse/models"
	courseModels "stagingcourse/models/course"
)

type CreateLessonInput struct {
	ChapterID uint   `json:"chapter_id"`
	Title     string `json:"title"`
}

type UpdateLessonInput struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	VideoURL *string `json:"video_url"`
	IsFree   *bool   `json:"is_free"`
}

// CreateLesson appends a lesson at the end of the chapter's lesson list.
func CreateLesson(db *gorm.DB, actor models.User, in CreateLessonInput) (*courseModels.Lesson, *apperror.Error) {
	if gateErr := requireAdmin(actor); gateErr != nil {
		return nil, gateErr
	}

	var chapter courseModels.Chapter
	if err := db.First(&chapter, in.ChapterID).Error; err != nil {
		return nil, apperror.NotFound("Chapter not found!")
	}

	var lesson courseModels.Lesson
	err := db.Transaction(func(tx *gorm.DB) error {
		position, err := nextPosition(tx, &courseModels.Lesson{}, "chapter_id", chapter.ID)
		if err != nil {
			return err
		}
		lesson = courseModels.Lesson{
			ChapterID: chapter.ID,
			Title:     in.Title,
			Position:  position,
		}
		return tx.Create(&lesson).Error
	})
	if err != nil {
		return nil, apperror.Internal("Failed to create lesson!", err)
	}

	return &lesson, nil
}

func UpdateLesson(db *gorm.DB, actor models.User, lessonID uint, in UpdateLessonInput) (*courseModels.Lesson, *apperror.Error) {
	if gateErr := requireAdmin(actor); gateErr != nil {
		return nil, gateErr
	}

	var lesson courseModels.Lesson
	if err := db.First(&lesson, lessonID).Error; err != nil {
		return nil, apperror.NotFound("Lesson not found!")
	}

	if in.Title != nil {
		lesson.Title = *in.Title
	}
	if in.Content != nil {
		lesson.Content = *in.Content
	}
	if in.VideoURL != nil {
		lesson.VideoURL = *in.VideoURL
	}
	if in.IsFree != nil {
		lesson.IsFree = *in.IsFree
	}

	if err := db.Save(&lesson).Error; err != nil {
		return nil, apperror.Internal("Failed to update lesson!", err)
	}

	return &lesson, nil
}

// DeleteLesson removes the lesson with its resources and progress rows, then
// renumbers the remaining lessons of the chapter in one transaction.
func DeleteLesson(db *gorm.DB, actor models.User, lessonID uint) *apperror.Error {
	if gateErr := requireAdmin(actor); gateErr != nil {
		return gateErr
	}

	var lesson courseModels.Lesson
	if err := db.First(&lesson, lessonID).Error; err != nil {
		return apperror.NotFound("Lesson not found!")
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("lesson_id = ?", lesson.ID).Delete(&courseModels.Resource{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("lesson_id = ?", lesson.ID).Delete(&courseModels.LessonProgress{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Delete(&courseModels.Lesson{}, lesson.ID).Error; err != nil {
			return err
		}
		return renumberLessons(tx, lesson.ChapterID)
	})
	if err != nil {
		return apperror.Internal("Failed to delete lesson!", err)
	}

	return nil
}

// ReorderLessons assigns position = index for the supplied ordering, which
// must be an exact permutation of the chapter's current lesson ids.
func ReorderLessons(db *gorm.DB, actor models.User, chapterID uint, orderedIDs []uint) *apperror.Error {
	if gateErr := requireAdmin(actor); gateErr != nil {
		return gateErr
	}

	var chapter courseModels.Chapter
	if err := db.First(&chapter, chapterID).Error; err != nil {
		return apperror.NotFound("Chapter not found!")
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		var current []uint
		if err := tx.Model(&courseModels.Lesson{}).Where("chapter_id = ?", chapter.ID).Order("position asc").Pluck("id", &current).Error; err != nil {
			return err
		}
		if vErr := validateReorder(current, orderedIDs); vErr != nil {
			return vErr
		}
		for i, id := range orderedIDs {
			if err := tx.Model(&courseModels.Lesson{}).Where("id = ?", id).Update("position", i).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return asAppError(err, "Failed to reorder lessons!")
	}

	return nil
}

// PublishLesson requires a title plus either body content or a video.
func PublishLesson(db *gorm.DB, actor models.User, lessonID uint) *apperror.Error {
	if gateErr := requireAdmin(actor); gateErr != nil {
		return gateErr
	}

	var lesson courseModels.Lesson
	if err := db.First(&lesson, lessonID).Error; err != nil {
		return apperror.NotFound("Lesson not found!")
	}

	if lesson.Title == "" || (lesson.Content == "" && lesson.VideoURL == "") {
		return apperror.PreconditionFailed("Lesson must have a title and content or video!")
	}

	if err := db.Model(&lesson).Update("is_published", true).Error; err != nil {
		return apperror.Internal("Failed to publish lesson!", err)
	}

	return nil
}

func UnpublishLesson(db *gorm.DB, actor models.User, lessonID uint) *apperror.Error {
	if gateErr := requireAdmin(actor); gateErr != nil {
		return gateErr
	}

	var lesson courseModels.Lesson
	if err := db.First(&lesson, lessonID).Error; err != nil {
		return apperror.NotFound("Lesson not found!")
	}

	if err := db.Model(&lesson).Update("is_published", false).Error; err != nil {
		return apperror.Internal("Failed to unpublish lesson!", err)
	}

	return nil
}
