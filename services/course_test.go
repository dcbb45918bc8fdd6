package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stagingcourse/apperror"
	courseModels "stagingcourse/models/course"
)

func TestCreateCourseSlugsTitle(t *testing.T) {
	db := testDB(t)
	admin := createAdmin(t, db)

	course := createCourse(t, db, admin, "  Advanced Go: Concurrency & Channels  ")
	assert.Equal(t, "advanced-go-concurrency-channels", course.Slug)
	assert.False(t, course.IsPublished)
}

func TestCreateCourseRejectsDuplicateTitle(t *testing.T) {
	db := testDB(t)
	admin := createAdmin(t, db)

	createCourse(t, db, admin, "Go Basics")

	// a different title that slugs to the same value still conflicts
	_, appErr := CreateCourse(db, admin, CreateCourseInput{Title: "Go   Basics!"})
	require.NotNil(t, appErr)
	assert.Equal(t, apperror.CodeConflict, appErr.Code)
}

func TestUpdateCourseReslugsOnTitleChange(t *testing.T) {
	db := testDB(t)
	admin := createAdmin(t, db)
	course := createCourse(t, db, admin, "Go Basics")

	title := "Go Fundamentals"
	updated, appErr := UpdateCourse(db, admin, course.ID, UpdateCourseInput{Title: &title})
	require.Nil(t, appErr)
	assert.Equal(t, "go-fundamentals", updated.Slug)
}

func TestPublishCourseRequiresPublishedContent(t *testing.T) {
	db := testDB(t)
	admin := createAdmin(t, db)
	course := createCourse(t, db, admin, "Go Basics")

	// empty course
	appErr := PublishCourse(db, admin, course.ID)
	require.NotNil(t, appErr)
	assert.Equal(t, apperror.CodePreconditionFailed, appErr.Code)

	chapter := createChapter(t, db, admin, course.ID, "Intro")
	lesson := createLesson(t, db, admin, chapter.ID, "Hello")
	publishLesson(t, db, admin, lesson.ID)

	// published lesson inside an unpublished chapter is not visible
	appErr = PublishCourse(db, admin, course.ID)
	require.NotNil(t, appErr)
	assert.Equal(t, apperror.CodePreconditionFailed, appErr.Code)

	require.Nil(t, PublishChapter(db, admin, chapter.ID))
	require.Nil(t, PublishCourse(db, admin, course.ID))

	var reloaded courseModels.Course
	require.NoError(t, db.First(&reloaded, course.ID).Error)
	assert.True(t, reloaded.IsPublished)
}

func TestUnpublishCourseAlwaysAllowed(t *testing.T) {
	db := testDB(t)
	admin := createAdmin(t, db)
	course := createCourse(t, db, admin, "Go Basics")

	require.Nil(t, UnpublishCourse(db, admin, course.ID))

	var reloaded courseModels.Course
	require.NoError(t, db.First(&reloaded, course.ID).Error)
	assert.False(t, reloaded.IsPublished)
}

func TestDeleteCourseCascades(t *testing.T) {
	db := testDB(t)
	admin := createAdmin(t, db)
	student := createStudent(t, db, "student@example.com")

	course := createCourse(t, db, admin, "Go Basics")
	chapter := createChapter(t, db, admin, course.ID, "Intro")
	lesson := createLesson(t, db, admin, chapter.ID, "Hello")

	_, appErr := AdminEnrollUser(db, admin, student.ID, course.ID)
	require.Nil(t, appErr)
	_, appErr = ToggleLessonProgress(db, student, lesson.ID, true)
	require.Nil(t, appErr)

	require.Nil(t, DeleteCourse(db, admin, course.ID))

	for _, model := range []interface{}{
		&courseModels.Chapter{},
		&courseModels.Lesson{},
		&courseModels.Enrollment{},
		&courseModels.LessonProgress{},
	} {
		var count int64
		require.NoError(t, db.Model(model).Count(&count).Error)
		assert.Zero(t, count)
	}

	// the slug is free again
	_, appErr = CreateCourse(db, admin, CreateCourseInput{Title: "Go Basics"})
	assert.Nil(t, appErr)
}

func TestPublicCatalogueOnlyShowsPublished(t *testing.T) {
	db := testDB(t)
	admin := createAdmin(t, db)

	draft := createCourse(t, db, admin, "Draft Course")
	live := createCourse(t, db, admin, "Live Course")
	chapter := createChapter(t, db, admin, live.ID, "Intro")
	lesson := createLesson(t, db, admin, chapter.ID, "Hello")
	publishLesson(t, db, admin, lesson.ID)
	require.Nil(t, PublishChapter(db, admin, chapter.ID))
	require.Nil(t, PublishCourse(db, admin, live.ID))

	courses, appErr := ListPublishedCourses(db)
	require.Nil(t, appErr)
	require.Len(t, courses, 1)
	assert.Equal(t, live.ID, courses[0].ID)

	_, appErr = GetCourseBySlug(db, draft.Slug)
	require.NotNil(t, appErr)
	assert.Equal(t, apperror.CodeNotFound, appErr.Code)

	fetched, appErr := GetCourseBySlug(db, live.Slug)
	require.Nil(t, appErr)
	require.Len(t, fetched.Chapters, 1)
	require.Len(t, fetched.Chapters[0].Lessons, 1)
}
