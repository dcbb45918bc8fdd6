package controllers

import (
	"github.com/gofiber/fiber/v2"

	"stagingcourse/database"
	"stagingcourse/middleware"
	"stagingcourse/services"
)

// AdminCreateLesson appends a new lesson to a chapter
func AdminCreateLesson(c *fiber.Ctx) error {
	actor, authErr := middleware.CurrentUser(c)
	if authErr != nil {
		return middleware.ErrorResponse(c, authErr)
	}

	chapterID, paramErr := c.ParamsInt("chapter_id")
	if paramErr != nil || chapterID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid chapter id!", nil)
	}

	reqData, ok := c.Locals("validatedLesson").(*services.CreateLessonInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}
	reqData.ChapterID = uint(chapterID)

	lesson, err := services.CreateLesson(database.Database.Db, actor, *reqData)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Lesson created successfully!", lesson)
}

// AdminUpdateLesson updates lesson fields
func AdminUpdateLesson(c *fiber.Ctx) error {
	actor, authErr := middleware.CurrentUser(c)
	if authErr != nil {
		return middleware.ErrorResponse(c, authErr)
	}

	lessonID, paramErr := c.ParamsInt("lesson_id")
	if paramErr != nil || lessonID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid lesson id!", nil)
	}

	reqData, ok := c.Locals("validatedLessonUpdate").(*services.UpdateLessonInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	lesson, err := services.UpdateLesson(database.Database.Db, actor, uint(lessonID), *reqData)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson updated successfully!", lesson)
}

// AdminDeleteLesson removes a lesson and renumbers the remaining ones
func AdminDeleteLesson(c *fiber.Ctx) error {
	actor, authErr := middleware.CurrentUser(c)
	if authErr != nil {
		return middleware.ErrorResponse(c, authErr)
	}

	lessonID, paramErr := c.ParamsInt("lesson_id")
	if paramErr != nil || lessonID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid lesson id!", nil)
	}

	if err := services.DeleteLesson(database.Database.Db, actor, uint(lessonID)); err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson deleted successfully!", nil)
}

// AdminReorderLessons applies a caller-supplied full ordering of lesson ids
func AdminReorderLessons(c *fiber.Ctx) error {
	actor, authErr := middleware.CurrentUser(c)
	if authErr != nil {
		return middleware.ErrorResponse(c, authErr)
	}

	chapterID, paramErr := c.ParamsInt("chapter_id")
	if paramErr != nil || chapterID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid chapter id!", nil)
	}

	reqData, ok := c.Locals("validatedReorder").(*services.ReorderInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if err := services.ReorderLessons(database.Database.Db, actor, uint(chapterID), reqData.OrderedIDs); err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lessons reordered successfully!", nil)
}

// AdminPublishLesson marks a lesson live
func AdminPublishLesson(c *fiber.Ctx) error {
	actor, authErr := middleware.CurrentUser(c)
	if authErr != nil {
		return middleware.ErrorResponse(c, authErr)
	}

	lessonID, paramErr := c.ParamsInt("lesson_id")
	if paramErr != nil || lessonID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid lesson id!", nil)
	}

	if err := services.PublishLesson(database.Database.Db, actor, uint(lessonID)); err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson published successfully!", nil)
}

// AdminUnpublishLesson takes a lesson offline
func AdminUnpublishLesson(c *fiber.Ctx) error {
	actor, authErr := middleware.CurrentUser(c)
	if authErr != nil {
		return middleware.ErrorResponse(c, authErr)
	}

	lessonID, paramErr := c.ParamsInt("lesson_id")
	if paramErr != nil || lessonID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid lesson id!", nil)
	}

	if err := services.UnpublishLesson(database.Database.Db, actor, uint(lessonID)); err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson unpublished successfully!", nil)
}

// AdminCreateResource attaches a resource to a lesson
func AdminCreateResource(c *fiber.Ctx) error {
	actor, authErr := middleware.CurrentUser(c)
	if authErr != nil {
		return middleware.ErrorResponse(c, authErr)
	}

	lessonID, paramErr := c.ParamsInt("lesson_id")
	if paramErr != nil || lessonID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid lesson id!", nil)
	}

	reqData, ok := c.Locals("validatedResource").(*services.CreateResourceInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}
	reqData.LessonID = uint(lessonID)

	resource, err := services.CreateResource(database.Database.Db, actor, *reqData)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Resource created successfully!", resource)
}

// AdminDeleteResource removes a lesson resource
func AdminDeleteResource(c *fiber.Ctx) error {
	actor, authErr := middleware.CurrentUser(c)
	if authErr != nil {
		return middleware.ErrorResponse(c, authErr)
	}

	resourceID, paramErr := c.ParamsInt("resource_id")
	if paramErr != nil || resourceID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid resource id!", nil)
	}

	if err := services.DeleteResource(database.Database.Db, actor, uint(resourceID)); err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Resource deleted successfully!", nil)
}
