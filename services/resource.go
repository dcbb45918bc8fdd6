package services

import (
	"gorm.io/gorm"

	"stagingcourse/apperror"
	"stagingcourse/models"
	courseModels "stagingcourse/models/course"
)

type CreateResourceInput struct {
	LessonID uint   `json:"lesson_id"`
	Title    string `json:"title"`
	URL      string `json:"url"`
	Type     string `json:"type"`
}

func CreateResource(db *gorm.DB, actor models.User, in CreateResourceInput) (*courseModels.Resource, *apperror.Error) {
	if gateErr := requireAdmin(actor); gateErr != nil {
		return nil, gateErr
	}

	if !courseModels.ValidResourceType(in.Type) {
		return nil, apperror.Validation("Invalid resource type!")
	}

	var lesson courseModels.Lesson
	if err := db.First(&lesson, in.LessonID).Error; err != nil {
		return nil, apperror.NotFound("Lesson not found!")
	}

	resource := courseModels.Resource{
		LessonID: lesson.ID,
		Title:    in.Title,
		URL:      in.URL,
		Type:     in.Type,
	}
	if err := db.Create(&resource).Error; err != nil {
		return nil, apperror.Internal("Failed to create resource!", err)
	}

	return &resource, nil
}

func DeleteResource(db *gorm.DB, actor models.User, resourceID uint) *apperror.Error {
	if gateErr := requireAdmin(actor); gateErr != nil {
		return gateErr
	}

	var resource courseModels.Resource
	if err := db.First(&resource, resourceID).Error; err != nil {
		return apperror.NotFound("Resource not found!")
	}

	if err := db.Unscoped().Delete(&resource).Error; err != nil {
		return apperror.Internal("Failed to delete resource!", err)
	}

	return nil
}
