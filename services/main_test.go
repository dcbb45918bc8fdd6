package services

import (
	"fmt"
	"os"
	"testing"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"stagingcourse/config"
	"stagingcourse/database"
	"stagingcourse/models"
	courseModels "stagingcourse/models/course"
)

func TestMain(m *testing.M) {
	config.LoadConfig()
	// keep hashing fast in tests
	config.AppConfig.BcryptCost = bcrypt.MinCost
	os.Exit(m.Run())
}

var testDBSeq int

// testDB opens a fresh in-memory database with the production schema. Each
// call gets its own database so tests stay independent.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	testDBSeq++
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", testDBSeq)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}

func createAdmin(t *testing.T, db *gorm.DB) models.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("admin-password"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	admin := models.User{
		Name:           "Admin",
		Email:          fmt.Sprintf("admin%d@example.com", testDBSeq),
		HashedPassword: string(hashed),
		Role:           models.RoleAdmin,
		IsActive:       true,
	}
	if err := db.Create(&admin).Error; err != nil {
		t.Fatalf("create admin: %v", err)
	}
	return admin
}

func createStudent(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("student-password"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	student := models.User{
		Name:           "Student",
		Email:          email,
		HashedPassword: string(hashed),
		Role:           models.RoleUser,
		IsActive:       true,
	}
	if err := db.Create(&student).Error; err != nil {
		t.Fatalf("create student: %v", err)
	}
	return student
}

func createCourse(t *testing.T, db *gorm.DB, admin models.User, title string) *courseModels.Course {
	t.Helper()

	course, appErr := CreateCourse(db, admin, CreateCourseInput{Title: title})
	if appErr != nil {
		t.Fatalf("create course %q: %v", title, appErr)
	}
	return course
}

func createChapter(t *testing.T, db *gorm.DB, admin models.User, courseID uint, title string) *courseModels.Chapter {
	t.Helper()

	chapter, appErr := CreateChapter(db, admin, CreateChapterInput{CourseID: courseID, Title: title})
	if appErr != nil {
		t.Fatalf("create chapter %q: %v", title, appErr)
	}
	return chapter
}

func createLesson(t *testing.T, db *gorm.DB, admin models.User, chapterID uint, title string) *courseModels.Lesson {
	t.Helper()

	lesson, appErr := CreateLesson(db, admin, CreateLessonInput{ChapterID: chapterID, Title: title})
	if appErr != nil {
		t.Fatalf("create lesson %q: %v", title, appErr)
	}
	return lesson
}

// publishLesson fills in content so the lesson satisfies the publish
// precondition, then publishes it.
func publishLesson(t *testing.T, db *gorm.DB, admin models.User, lessonID uint) {
	t.Helper()

	content := "Some lesson content."
	if _, appErr := UpdateLesson(db, admin, lessonID, UpdateLessonInput{Content: &content}); appErr != nil {
		t.Fatalf("update lesson: %v", appErr)
	}
	if appErr := PublishLesson(db, admin, lessonID); appErr != nil {
		t.Fatalf("publish lesson: %v", appErr)
	}
}

func chapterPositions(t *testing.T, db *gorm.DB, courseID uint) map[string]int {
	t.Helper()

	var chapters []courseModels.Chapter
	if err := db.Where("course_id = ?", courseID).Order("position asc").Find(&chapters).Error; err != nil {
		t.Fatalf("load chapters: %v", err)
	}
	positions := make(map[string]int, len(chapters))
	for _, chapter := range chapters {
		positions[chapter.Title] = chapter.Position
	}
	return positions
}
