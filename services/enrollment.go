package services

import (
	"errors"

	"gorm.io/gorm"

	"stagingcourse/apperror"
	"stagingcourse/models"
	courseModels "stagingcourse/models/course"
	"stagingcourse/utils"
)

// EnrollInCourse is the self-service enrollment. The course must be
// published and free; priced courses require the (out of scope) payment flow.
func EnrollInCourse(db *gorm.DB, actor models.User, courseID uint) (*courseModels.Enrollment, *apperror.Error) {
	if gateErr := requireActor(actor); gateErr != nil {
		return nil, gateErr
	}

	var course courseModels.Course
	if err := db.Where("id = ? AND is_published = ?", courseID, true).First(&course).Error; err != nil {
		return nil, apperror.NotFound("Course not found!")
	}

	if course.Price > 0 {
		return nil, apperror.PreconditionFailed("Payment required for this course!")
	}

	var existing courseModels.Enrollment
	if err := db.Where("user_id = ? AND course_id = ?", actor.ID, course.ID).First(&existing).Error; err == nil {
		return nil, apperror.Conflict("Already enrolled in this course!")
	}

	enrollment := courseModels.Enrollment{
		UserID:           actor.ID,
		CourseID:         course.ID,
		PurchaseType:     courseModels.PurchaseTypeOneTime,
		EnrollmentMethod: courseModels.EnrollmentMethodPurchase,
	}
	if err := db.Create(&enrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.Conflict("Already enrolled in this course!")
		}
		return nil, apperror.Internal("Failed to enroll in course!", err)
	}

	go utils.SendEnrollmentEmail(actor.Email, actor.Name, course.Title)

	return &enrollment, nil
}

// AdminEnrollUser assigns a student to a course regardless of publish state
// or price, recording who did it.
func AdminEnrollUser(db *gorm.DB, actor models.User, userID, courseID uint) (*courseModels.Enrollment, *apperror.Error) {
	if gateErr := requireAdmin(actor); gateErr != nil {
		return nil, gateErr
	}

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return nil, apperror.NotFound("User not found!")
	}

	var course courseModels.Course
	if err := db.First(&course, courseID).Error; err != nil {
		return nil, apperror.NotFound("Course not found!")
	}

	var existing courseModels.Enrollment
	if err := db.Where("user_id = ? AND course_id = ?", user.ID, course.ID).First(&existing).Error; err == nil {
		return nil, apperror.Conflict("User is already enrolled in this course!")
	}

	enrolledBy := actor.ID
	enrollment := courseModels.Enrollment{
		UserID:           user.ID,
		CourseID:         course.ID,
		PurchaseType:     courseModels.PurchaseTypeOneTime,
		EnrollmentMethod: courseModels.EnrollmentMethodManual,
		EnrolledByID:     &enrolledBy,
	}
	if err := db.Create(&enrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.Conflict("User is already enrolled in this course!")
		}
		return nil, apperror.Internal("Failed to enroll user!", err)
	}

	go utils.SendEnrollmentEmail(user.Email, user.Name, course.Title)

	return &enrollment, nil
}

func AdminUnenrollUser(db *gorm.DB, actor models.User, userID, courseID uint) *apperror.Error {
	if gateErr := requireAdmin(actor); gateErr != nil {
		return gateErr
	}

	var enrollment courseModels.Enrollment
	if err := db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&enrollment).Error; err != nil {
		return apperror.NotFound("Enrollment not found!")
	}

	// hard delete so the pair can be re-enrolled later
	if err := db.Unscoped().Delete(&enrollment).Error; err != nil {
		return apperror.Internal("Failed to unenroll user!", err)
	}

	return nil
}

// ListUserEnrollments returns the actor's own enrollments with their courses.
func ListUserEnrollments(db *gorm.DB, actor models.User) ([]courseModels.Enrollment, *apperror.Error) {
	if gateErr := requireActor(actor); gateErr != nil {
		return nil, gateErr
	}

	var enrollments []courseModels.Enrollment
	if err := db.Where("user_id = ?", actor.ID).Preload("Course").Order("created_at desc").Find(&enrollments).Error; err != nil {
		return nil, apperror.Internal("Failed to fetch enrollments!", err)
	}
	return enrollments, nil
}

// ListCourseEnrollments returns every enrollment of a course for the admin view.
func ListCourseEnrollments(db *gorm.DB, actor models.User, courseID uint) ([]courseModels.Enrollment, *apperror.Error) {
	if gateErr := requireAdmin(actor); gateErr != nil {
		return nil, gateErr
	}

	var course courseModels.Course
	if err := db.First(&course, courseID).Error; err != nil {
		return nil, apperror.NotFound("Course not found!")
	}

	var enrollments []courseModels.Enrollment
	if err := db.Where("course_id = ?", course.ID).Order("created_at desc").Find(&enrollments).Error; err != nil {
		return nil, apperror.Internal("Failed to fetch enrollments!", err)
	}
	return enrollments, nil
}

// IsEnrolled reports whether the user has an enrollment for the course.
func IsEnrolled(db *gorm.DB, userID, courseID uint) bool {
	var enrollment courseModels.Enrollment
	return db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&enrollment).Error == nil
}
