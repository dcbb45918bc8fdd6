package course

import (
	"time"

	"gorm.io/gorm"
)

const (
	PurchaseTypeOneTime = "ONE_TIME"

	// EnrollmentMethodPurchase is a self-service enrollment by the student;
	// EnrollmentMethodManual is assigned by an administrator.
	EnrollmentMethodPurchase = "PURCHASE"
	EnrollmentMethodManual   = "MANUAL"
)

// Enrollment links a user to a course; unique per (user, course) pair
type Enrollment struct {
	gorm.Model
	UserID           uint       `json:"user_id" gorm:"uniqueIndex:idx_enrollment_user_course;not null"`
	CourseID         uint       `json:"course_id" gorm:"uniqueIndex:idx_enrollment_user_course;not null"`
	PurchaseType     string     `json:"purchase_type" gorm:"default:'ONE_TIME'"`
	EnrollmentMethod string     `json:"enrollment_method" gorm:"default:'PURCHASE'"` // PURCHASE, MANUAL
	EnrolledByID     *uint      `json:"enrolled_by_id"`                              // admin who assigned a MANUAL enrollment
	CompletedAt      *time.Time `json:"completed_at"`                                // stamped by the progress scheduler
	Course           *Course    `json:"course,omitempty" gorm:"foreignKey:CourseID"`
}
