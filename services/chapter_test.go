package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stagingcourse/apperror"
	"stagingcourse/models"
	courseModels "stagingcourse/models/course"
)

func TestCreateChapterAppendsPositions(t *testing.T) {
	db := testDB(t)
	admin := createAdmin(t, db)
	course := createCourse(t, db, admin, "Go Basics")

	first := createChapter(t, db, admin, course.ID, "Intro")
	second := createChapter(t, db, admin, course.ID, "Setup")
	third := createChapter(t, db, admin, course.ID, "Advanced")

	assert.Equal(t, 0, first.Position)
	assert.Equal(t, 1, second.Position)
	assert.Equal(t, 2, third.Position)
}

func TestCreateChapterRequiresAdmin(t *testing.T) {
	db := testDB(t)
	admin := createAdmin(t, db)
	student := createStudent(t, db, "student@example.com")
	course := createCourse(t, db, admin, "Go Basics")

	_, appErr := CreateChapter(db, student, CreateChapterInput{CourseID: course.ID, Title: "Intro"})
	require.NotNil(t, appErr)
	assert.Equal(t, apperror.CodeForbidden, appErr.Code)

	_, appErr = CreateChapter(db, models.User{}, CreateChapterInput{CourseID: course.ID, Title: "Intro"})
	require.NotNil(t, appErr)
	assert.Equal(t, apperror.CodeUnauthenticated, appErr.Code)
}

func TestDeleteChapterRenumbersSiblings(t *testing.T) {
	db := testDB(t)
	admin := createAdmin(t, db)
	course := createCourse(t, db, admin, "Go Basics")

	createChapter(t, db, admin, course.ID, "Intro")
	setup := createChapter(t, db, admin, course.ID, "Setup")
	createChapter(t, db, admin, course.ID, "Advanced")

	require.Nil(t, DeleteChapter(db, admin, setup.ID))

	positions := chapterPositions(t, db, course.ID)
	assert.Equal(t, map[string]int{"Intro": 0, "Advanced": 1}, positions)
}

func TestDeleteChapterRemovesLessons(t *testing.T) {
	db := testDB(t)
	admin := createAdmin(t, db)
	course := createCourse(t, db, admin, "Go Basics")
	chapter := createChapter(t, db, admin, course.ID, "Intro")
	lesson := createLesson(t, db, admin, chapter.ID, "Hello")

	student := createStudent(t, db, "student@example.com")
	_, appErr := ToggleLessonProgress(db, student, lesson.ID, true)
	require.Nil(t, appErr)

	require.Nil(t, DeleteChapter(db, admin, chapter.ID))

	var lessonCount int64
	db.Model(&courseModels.Lesson{}).Where("chapter_id = ?", chapter.ID).Count(&lessonCount)
	assert.Zero(t, lessonCount)

	var progressCount int64
	db.Model(&courseModels.LessonProgress{}).Where("lesson_id = ?", lesson.ID).Count(&progressCount)
	assert.Zero(t, progressCount)
}

func TestReorderChapters(t *testing.T) {
	db := testDB(t)
	admin := createAdmin(t, db)
	course := createCourse(t, db, admin, "Go Basics")

	a := createChapter(t, db, admin, course.ID, "A")
	b := createChapter(t, db, admin, course.ID, "B")
	c := createChapter(t, db, admin, course.ID, "C")

	require.Nil(t, ReorderChapters(db, admin, course.ID, []uint{b.ID, a.ID, c.ID}))

	positions := chapterPositions(t, db, course.ID)
	assert.Equal(t, map[string]int{"B": 0, "A": 1, "C": 2}, positions)
}

func TestReorderChaptersRejectsBadOrderings(t *testing.T) {
	db := testDB(t)
	admin := createAdmin(t, db)
	course := createCourse(t, db, admin, "Go Basics")

	a := createChapter(t, db, admin, course.ID, "A")
	b := createChapter(t, db, admin, course.ID, "B")

	other := createCourse(t, db, admin, "Other Course")
	foreign := createChapter(t, db, admin, other.ID, "Foreign")

	tests := []struct {
		name    string
		ordered []uint
	}{
		{"missing id", []uint{a.ID}},
		{"unknown id", []uint{a.ID, foreign.ID}},
		{"duplicate id", []uint{a.ID, a.ID}},
		{"extra id", []uint{a.ID, b.ID, foreign.ID}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			appErr := ReorderChapters(db, admin, course.ID, tc.ordered)
			require.NotNil(t, appErr)
			assert.Equal(t, apperror.CodeValidation, appErr.Code)
		})
	}

	// a failed reorder must leave positions untouched
	positions := chapterPositions(t, db, course.ID)
	assert.Equal(t, map[string]int{"A": 0, "B": 1}, positions)
}

func TestPublishChapterRequiresPublishedLesson(t *testing.T) {
	db := testDB(t)
	admin := createAdmin(t, db)
	course := createCourse(t, db, admin, "Go Basics")
	chapter := createChapter(t, db, admin, course.ID, "Intro")

	appErr := PublishChapter(db, admin, chapter.ID)
	require.NotNil(t, appErr)
	assert.Equal(t, apperror.CodePreconditionFailed, appErr.Code)

	lesson := createLesson(t, db, admin, chapter.ID, "Hello")

	// an unpublished lesson is not enough
	appErr = PublishChapter(db, admin, chapter.ID)
	require.NotNil(t, appErr)
	assert.Equal(t, apperror.CodePreconditionFailed, appErr.Code)

	publishLesson(t, db, admin, lesson.ID)
	require.Nil(t, PublishChapter(db, admin, chapter.ID))

	var reloaded courseModels.Chapter
	require.NoError(t, db.First(&reloaded, chapter.ID).Error)
	assert.True(t, reloaded.IsPublished)
}
