package utils

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"stagingcourse/database"
	"stagingcourse/models"
	courseModels "stagingcourse/models/course"
)

func TestCompleteFinishedEnrollments(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:schedtest?mode=memory&cache=shared"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	database.Database = database.DbInstance{Db: db}

	finisher := models.User{Email: "done@example.com", HashedPassword: "x", Role: models.RoleUser, IsActive: true}
	straggler := models.User{Email: "open@example.com", HashedPassword: "x", Role: models.RoleUser, IsActive: true}
	course := courseModels.Course{Title: "Go Basics", Slug: "go-basics", IsPublished: true}
	for _, row := range []interface{}{&finisher, &straggler, &course} {
		if err := db.Create(row).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	chapter := courseModels.Chapter{CourseID: course.ID, Title: "Intro", IsPublished: true}
	if err := db.Create(&chapter).Error; err != nil {
		t.Fatalf("seed chapter: %v", err)
	}
	lesson := courseModels.Lesson{ChapterID: chapter.ID, Title: "Hello", Content: "x", IsPublished: true}
	draft := courseModels.Lesson{ChapterID: chapter.ID, Title: "Draft", Position: 1}
	if err := db.Create(&lesson).Error; err != nil {
		t.Fatalf("seed lesson: %v", err)
	}
	if err := db.Create(&draft).Error; err != nil {
		t.Fatalf("seed draft lesson: %v", err)
	}

	rows := []interface{}{
		&courseModels.Enrollment{UserID: finisher.ID, CourseID: course.ID},
		&courseModels.Enrollment{UserID: straggler.ID, CourseID: course.ID},
		&courseModels.LessonProgress{UserID: finisher.ID, LessonID: lesson.ID, IsCompleted: true},
	}
	for _, row := range rows {
		if err := db.Create(row).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	completeFinishedEnrollments()

	var done courseModels.Enrollment
	if err := db.Where("user_id = ?", finisher.ID).First(&done).Error; err != nil {
		t.Fatalf("load enrollment: %v", err)
	}
	if done.CompletedAt == nil {
		t.Fatal("expected completed enrollment to be stamped")
	}

	var open courseModels.Enrollment
	if err := db.Where("user_id = ?", straggler.ID).First(&open).Error; err != nil {
		t.Fatalf("load enrollment: %v", err)
	}
	if open.CompletedAt != nil {
		t.Fatal("expected open enrollment to stay unstamped")
	}
}
