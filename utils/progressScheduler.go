package utils

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"stagingcourse/database"
	courseModels "stagingcourse/models/course"
)

func logScheduler(message string) {
	log.Printf("[PROGRESS-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// completeFinishedEnrollments stamps CompletedAt on enrollments whose user has
// completed every published lesson of the course. Runs outside the request
// path so lesson completion stays a single cheap upsert.
func completeFinishedEnrollments() {
	db := database.Database.Db
	now := time.Now()

	var enrollments []courseModels.Enrollment
	if err := db.Where("completed_at IS NULL").Find(&enrollments).Error; err != nil {
		logScheduler("Error fetching open enrollments: " + err.Error())
		return
	}

	for _, enrollment := range enrollments {
		var total int64
		if err := db.Model(&courseModels.Lesson{}).
			Joins("JOIN chapters ON chapters.id = lessons.chapter_id").
			Where("chapters.course_id = ? AND lessons.is_published = ?", enrollment.CourseID, true).
			Count(&total).Error; err != nil {
			logScheduler("Error counting lessons: " + err.Error())
			continue
		}
		if total == 0 {
			continue
		}

		var completed int64
		if err := db.Model(&courseModels.LessonProgress{}).
			Joins("JOIN lessons ON lessons.id = lesson_progresses.lesson_id").
			Joins("JOIN chapters ON chapters.id = lessons.chapter_id").
			Where("lesson_progresses.user_id = ? AND lesson_progresses.is_completed = ?", enrollment.UserID, true).
			Where("chapters.course_id = ? AND lessons.is_published = ?", enrollment.CourseID, true).
			Count(&completed).Error; err != nil {
			logScheduler("Error counting completed lessons: " + err.Error())
			continue
		}

		if completed < total {
			continue
		}

		if err := db.Model(&courseModels.Enrollment{}).
			Where("id = ?", enrollment.ID).
			Update("completed_at", &now).Error; err != nil {
			logScheduler("Error completing enrollment: " + err.Error())
			continue
		}
		logScheduler(fmt.Sprintf("Enrollment completed: user=%d course=%d", enrollment.UserID, enrollment.CourseID))
	}
}

// StartProgressScheduler runs the enrollment completion sweep hourly
func StartProgressScheduler() *cron.Cron {
	c := cron.New()
	if _, err := c.AddFunc("@hourly", completeFinishedEnrollments); err != nil {
		log.Fatalf("Failed to register progress scheduler: %v", err)
	}
	c.Start()
	logScheduler("Scheduler started (hourly sweep)")
	return c
}
