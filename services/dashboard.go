package services

import (
	"gorm.io/gorm"

	"stagingcourse/apperror"
	"stagingcourse/models"
	courseModels "stagingcourse/models/course"
)

// DashboardStats summarizes the platform for the admin overview page.
type DashboardStats struct {
	TotalCourses         int64 `json:"total_courses"`
	PublishedCourses     int64 `json:"published_courses"`
	TotalStudents        int64 `json:"total_students"`
	TotalEnrollments     int64 `json:"total_enrollments"`
	CompletedEnrollments int64 `json:"completed_enrollments"`
}

func GetDashboardStats(db *gorm.DB, actor models.User) (*DashboardStats, *apperror.Error) {
	if gateErr := requireAdmin(actor); gateErr != nil {
		return nil, gateErr
	}

	stats := &DashboardStats{}
	counts := []struct {
		dest  *int64
		query *gorm.DB
	}{
		{&stats.TotalCourses, db.Model(&courseModels.Course{})},
		{&stats.PublishedCourses, db.Model(&courseModels.Course{}).Where("is_published = ?", true)},
		{&stats.TotalStudents, db.Model(&models.User{}).Where("role = ?", models.RoleUser)},
		{&stats.TotalEnrollments, db.Model(&courseModels.Enrollment{})},
		{&stats.CompletedEnrollments, db.Model(&courseModels.Enrollment{}).Where("completed_at IS NOT NULL")},
	}
	for _, c := range counts {
		if err := c.query.Count(c.dest).Error; err != nil {
			return nil, apperror.Internal("Failed to compute dashboard stats!", err)
		}
	}

	return stats, nil
}
