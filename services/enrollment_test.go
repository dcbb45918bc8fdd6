package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"stagingcourse/apperror"
	"stagingcourse/models"
	courseModels "stagingcourse/models/course"
)

// publishCourse builds the minimal published tree for a course so students
// can enroll.
func publishCourse(t *testing.T, db *gorm.DB, admin models.User, courseID uint) *courseModels.Lesson {
	t.Helper()

	chapter := createChapter(t, db, admin, courseID, "Intro")
	lesson := createLesson(t, db, admin, chapter.ID, "Hello")
	publishLesson(t, db, admin, lesson.ID)
	require.Nil(t, PublishChapter(db, admin, chapter.ID))
	require.Nil(t, PublishCourse(db, admin, courseID))
	return lesson
}

func TestEnrollInCourse(t *testing.T) {
	db := testDB(t)
	admin := createAdmin(t, db)
	student := createStudent(t, db, "student@example.com")
	course := createCourse(t, db, admin, "Go Basics")
	publishCourse(t, db, admin, course.ID)

	enrollment, appErr := EnrollInCourse(db, student, course.ID)
	require.Nil(t, appErr)
	assert.Equal(t, courseModels.EnrollmentMethodPurchase, enrollment.EnrollmentMethod)
	assert.Nil(t, enrollment.EnrolledByID)

	// second attempt conflicts
	_, appErr = EnrollInCourse(db, student, course.ID)
	require.NotNil(t, appErr)
	assert.Equal(t, apperror.CodeConflict, appErr.Code)
}

func TestEnrollInCourseRejectsUnpublished(t *testing.T) {
	db := testDB(t)
	admin := createAdmin(t, db)
	student := createStudent(t, db, "student@example.com")
	course := createCourse(t, db, admin, "Go Basics")

	_, appErr := EnrollInCourse(db, student, course.ID)
	require.NotNil(t, appErr)
	assert.Equal(t, apperror.CodeNotFound, appErr.Code)
}

func TestEnrollInCourseRejectsPricedCourse(t *testing.T) {
	db := testDB(t)
	admin := createAdmin(t, db)
	student := createStudent(t, db, "student@example.com")

	course, appErr := CreateCourse(db, admin, CreateCourseInput{Title: "Paid Course", Price: 4999})
	require.Nil(t, appErr)
	publishCourse(t, db, admin, course.ID)

	_, appErr = EnrollInCourse(db, student, course.ID)
	require.NotNil(t, appErr)
	assert.Equal(t, apperror.CodePreconditionFailed, appErr.Code)
}

func TestAdminEnrollUser(t *testing.T) {
	db := testDB(t)
	admin := createAdmin(t, db)
	student := createStudent(t, db, "student@example.com")

	// manual enrollment works on unpublished priced courses
	course, appErr := CreateCourse(db, admin, CreateCourseInput{Title: "Paid Course", Price: 4999})
	require.Nil(t, appErr)

	enrollment, appErr := AdminEnrollUser(db, admin, student.ID, course.ID)
	require.Nil(t, appErr)
	assert.Equal(t, courseModels.EnrollmentMethodManual, enrollment.EnrollmentMethod)
	require.NotNil(t, enrollment.EnrolledByID)
	assert.Equal(t, admin.ID, *enrollment.EnrolledByID)

	_, appErr = AdminEnrollUser(db, admin, student.ID, course.ID)
	require.NotNil(t, appErr)
	assert.Equal(t, apperror.CodeConflict, appErr.Code)

	// students cannot use the admin path
	_, appErr = AdminEnrollUser(db, student, student.ID, course.ID)
	require.NotNil(t, appErr)
	assert.Equal(t, apperror.CodeForbidden, appErr.Code)
}

func TestAdminUnenrollUserFreesThePair(t *testing.T) {
	db := testDB(t)
	admin := createAdmin(t, db)
	student := createStudent(t, db, "student@example.com")
	course := createCourse(t, db, admin, "Go Basics")

	_, appErr := AdminEnrollUser(db, admin, student.ID, course.ID)
	require.Nil(t, appErr)

	require.Nil(t, AdminUnenrollUser(db, admin, student.ID, course.ID))
	assert.False(t, IsEnrolled(db, student.ID, course.ID))

	// the pair can be enrolled again
	_, appErr = AdminEnrollUser(db, admin, student.ID, course.ID)
	assert.Nil(t, appErr)
}

func TestListUserEnrollmentsIncludesCourse(t *testing.T) {
	db := testDB(t)
	admin := createAdmin(t, db)
	student := createStudent(t, db, "student@example.com")
	course := createCourse(t, db, admin, "Go Basics")

	_, appErr := AdminEnrollUser(db, admin, student.ID, course.ID)
	require.Nil(t, appErr)

	enrollments, appErr := ListUserEnrollments(db, student)
	require.Nil(t, appErr)
	require.Len(t, enrollments, 1)
	require.NotNil(t, enrollments[0].Course)
	assert.Equal(t, "Go Basics", enrollments[0].Course.Title)
}

func TestToggleLessonProgress(t *testing.T) {
	db := testDB(t)
	admin := createAdmin(t, db)
	student := createStudent(t, db, "student@example.com")
	course := createCourse(t, db, admin, "Go Basics")
	lesson := publishCourse(t, db, admin, course.ID)

	progress, appErr := ToggleLessonProgress(db, student, lesson.ID, true)
	require.Nil(t, appErr)
	assert.True(t, progress.IsCompleted)
	require.NotNil(t, progress.CompletedAt)

	// un-completing clears the timestamp on the same row
	progress, appErr = ToggleLessonProgress(db, student, lesson.ID, false)
	require.Nil(t, appErr)
	assert.False(t, progress.IsCompleted)
	assert.Nil(t, progress.CompletedAt)

	var count int64
	require.NoError(t, db.Model(&courseModels.LessonProgress{}).Where("user_id = ?", student.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCourseProgressCountsPublishedLessons(t *testing.T) {
	db := testDB(t)
	admin := createAdmin(t, db)
	student := createStudent(t, db, "student@example.com")
	course := createCourse(t, db, admin, "Go Basics")
	published := publishCourse(t, db, admin, course.ID)

	// a draft lesson in the same chapter does not count toward the total
	draft := createLesson(t, db, admin, published.ChapterID, "Draft")

	_, appErr := ToggleLessonProgress(db, student, published.ID, true)
	require.Nil(t, appErr)
	_, appErr = ToggleLessonProgress(db, student, draft.ID, true)
	require.Nil(t, appErr)

	summary, appErr := CourseProgress(db, student, course.ID)
	require.Nil(t, appErr)
	assert.EqualValues(t, 1, summary.TotalLessons)
	assert.EqualValues(t, 1, summary.CompletedLessons)
	assert.Equal(t, float64(100), summary.Percent)
}
