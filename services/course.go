package services

import (
	"errors"

	"gorm.io/gorm"

	"stagingcourse/apperror"
	"stagingcourse/models"
	courseModels "stagingcourse/models/course"
	"stagingcourse/utils"
)

type CreateCourseInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	Price       int    `json:"price"`
}

type UpdateCourseInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
	Price       *int    `json:"price"`
}

func CreateCourse(db *gorm.DB, actor models.User, in CreateCourseInput) (*courseModels.Course, *apperror.Error) {
	if gateErr := requireAdmin(actor); gateErr != nil {
		return nil, gateErr
	}

	slug := utils.Slugify(in.Title)

	var existing courseModels.Course
	if err := db.Where("slug = ?", slug).First(&existing).Error; err == nil {
		return nil, apperror.Conflict("A course with this title already exists!")
	}

	course := courseModels.Course{
		Title:       in.Title,
		Slug:        slug,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		Price:       in.Price,
	}
	if err := db.Create(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.Conflict("A course with this title already exists!")
		}
		return nil, apperror.Internal("Failed to create course!", err)
	}

	return &course, nil
}

func UpdateCourse(db *gorm.DB, actor models.User, courseID uint, in UpdateCourseInput) (*courseModels.Course, *apperror.Error) {
	if gateErr := requireAdmin(actor); gateErr != nil {
		return nil, gateErr
	}

	var course courseModels.Course
	if err := db.First(&course, courseID).Error; err != nil {
		return nil, apperror.NotFound("Course not found!")
	}

	if in.Title != nil && *in.Title != course.Title {
		slug := utils.Slugify(*in.Title)
		var existing courseModels.Course
		if err := db.Where("slug = ? AND id <> ?", slug, course.ID).First(&existing).Error; err == nil {
			return nil, apperror.Conflict("A course with this title already exists!")
		}
		course.Title = *in.Title
		course.Slug = slug
	}
	if in.Description != nil {
		course.Description = *in.Description
	}
	if in.ImageURL != nil {
		course.ImageURL = *in.ImageURL
	}
	if in.Price != nil {
		course.Price = *in.Price
	}

	if err := db.Save(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.Conflict("A course with this title already exists!")
		}
		return nil, apperror.Internal("Failed to update course!", err)
	}

	return &course, nil
}

// DeleteCourse removes the course with all chapters, lessons, resources,
// enrollments and progress rows in one transaction. Rows are hard deleted so
// the slug and enrollment pairs become reusable.
func DeleteCourse(db *gorm.DB, actor models.User, courseID uint) *apperror.Error {
	if gateErr := requireAdmin(actor); gateErr != nil {
		return gateErr
	}

	var course courseModels.Course
	if err := db.First(&course, courseID).Error; err != nil {
		return apperror.NotFound("Course not found!")
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		var chapterIDs []uint
		if err := tx.Model(&courseModels.Chapter{}).Where("course_id = ?", course.ID).Pluck("id", &chapterIDs).Error; err != nil {
			return err
		}
		if len(chapterIDs) > 0 {
			var lessonIDs []uint
			if err := tx.Model(&courseModels.Lesson{}).Where("chapter_id IN ?", chapterIDs).Pluck("id", &lessonIDs).Error; err != nil {
				return err
			}
			if len(lessonIDs) > 0 {
				if err := tx.Unscoped().Where("lesson_id IN ?", lessonIDs).Delete(&courseModels.Resource{}).Error; err != nil {
					return err
				}
				if err := tx.Unscoped().Where("lesson_id IN ?", lessonIDs).Delete(&courseModels.LessonProgress{}).Error; err != nil {
					return err
				}
				if err := tx.Unscoped().Where("chapter_id IN ?", chapterIDs).Delete(&courseModels.Lesson{}).Error; err != nil {
					return err
				}
			}
			if err := tx.Unscoped().Where("course_id = ?", course.ID).Delete(&courseModels.Chapter{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Unscoped().Where("course_id = ?", course.ID).Delete(&courseModels.Enrollment{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&courseModels.Course{}, course.ID).Error
	})
	if err != nil {
		return apperror.Internal("Failed to delete course!", err)
	}

	return nil
}

// PublishCourse marks the course live. The completeness precondition is
// evaluated against a fresh nested fetch: at least one published chapter must
// contain at least one published lesson.
func PublishCourse(db *gorm.DB, actor models.User, courseID uint) *apperror.Error {
	if gateErr := requireAdmin(actor); gateErr != nil {
		return gateErr
	}

	var course courseModels.Course
	err := db.
		Preload("Chapters", "is_published = ?", true).
		Preload("Chapters.Lessons", "is_published = ?", true).
		First(&course, courseID).Error
	if err != nil {
		return apperror.NotFound("Course not found!")
	}

	hasPublishedChapter := false
	for _, chapter := range course.Chapters {
		if len(chapter.Lessons) > 0 {
			hasPublishedChapter = true
			break
		}
	}
	if !hasPublishedChapter {
		return apperror.PreconditionFailed("Cannot publish course without at least one published chapter with lessons!")
	}

	if err := db.Model(&courseModels.Course{}).Where("id = ?", course.ID).Update("is_published", true).Error; err != nil {
		return apperror.Internal("Failed to publish course!", err)
	}

	course.IsPublished = true
	go utils.NotifyCoursePublished(course)

	return nil
}

// UnpublishCourse takes the course offline; always permitted.
func UnpublishCourse(db *gorm.DB, actor models.User, courseID uint) *apperror.Error {
	if gateErr := requireAdmin(actor); gateErr != nil {
		return gateErr
	}

	var course courseModels.Course
	if err := db.First(&course, courseID).Error; err != nil {
		return apperror.NotFound("Course not found!")
	}

	if err := db.Model(&course).Update("is_published", false).Error; err != nil {
		return apperror.Internal("Failed to unpublish course!", err)
	}

	return nil
}

// ListCourses returns every course for the admin overview, newest first.
func ListCourses(db *gorm.DB, actor models.User) ([]courseModels.Course, *apperror.Error) {
	if gateErr := requireAdmin(actor); gateErr != nil {
		return nil, gateErr
	}

	var courses []courseModels.Course
	if err := db.Order("created_at desc").Find(&courses).Error; err != nil {
		return nil, apperror.Internal("Failed to fetch courses!", err)
	}
	return courses, nil
}

// GetCourse returns a course with its full chapter/lesson/resource tree in
// position order, for the admin editing view.
func GetCourse(db *gorm.DB, actor models.User, courseID uint) (*courseModels.Course, *apperror.Error) {
	if gateErr := requireAdmin(actor); gateErr != nil {
		return nil, gateErr
	}

	var course courseModels.Course
	err := db.
		Preload("Chapters", func(db *gorm.DB) *gorm.DB { return db.Order("position asc") }).
		Preload("Chapters.Lessons", func(db *gorm.DB) *gorm.DB { return db.Order("position asc") }).
		Preload("Chapters.Lessons.Resources").
		First(&course, courseID).Error
	if err != nil {
		return nil, apperror.NotFound("Course not found!")
	}
	return &course, nil
}

// ListPublishedCourses backs the public marketing catalogue.
func ListPublishedCourses(db *gorm.DB) ([]courseModels.Course, *apperror.Error) {
	var courses []courseModels.Course
	if err := db.Where("is_published = ?", true).Order("created_at desc").Find(&courses).Error; err != nil {
		return nil, apperror.Internal("Failed to fetch courses!", err)
	}
	return courses, nil
}

// GetCourseBySlug returns a published course with its published chapters and
// lessons for the public course page.
func GetCourseBySlug(db *gorm.DB, slug string) (*courseModels.Course, *apperror.Error) {
	var course courseModels.Course
	err := db.
		Where("slug = ? AND is_published = ?", slug, true).
		Preload("Chapters", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_published = ?", true).Order("position asc")
		}).
		Preload("Chapters.Lessons", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_published = ?", true).Order("position asc")
		}).
		First(&course).Error
	if err != nil {
		return nil, apperror.NotFound("Course not found!")
	}
	return &course, nil
}

// GetLearnCourse returns a published course with its published chapters,
// lessons and lesson resources for an enrolled student.
func GetLearnCourse(db *gorm.DB, courseID uint) (*courseModels.Course, *apperror.Error) {
	var course courseModels.Course
	err := db.
		Where("id = ? AND is_published = ?", courseID, true).
		Preload("Chapters", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_published = ?", true).Order("position asc")
		}).
		Preload("Chapters.Lessons", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_published = ?", true).Order("position asc")
		}).
		Preload("Chapters.Lessons.Resources").
		First(&course).Error
	if err != nil {
		return nil, apperror.NotFound("Course not found!")
	}
	return &course, nil
}
