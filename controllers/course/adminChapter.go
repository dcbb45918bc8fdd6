package controllers

import (
	"github.com/gofiber/fiber/v2"

	"stagingcourse/database"
	"stagingcourse/middleware"
	"stagingcourse/services"
)

// AdminCreateChapter appends a new chapter to a course
func AdminCreateChapter(c *fiber.Ctx) error {
	actor, authErr := middleware.CurrentUser(c)
	if authErr != nil {
		return middleware.ErrorResponse(c, authErr)
	}

	courseID, paramErr := c.ParamsInt("course_id")
	if paramErr != nil || courseID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	reqData, ok := c.Locals("validatedChapter").(*services.CreateChapterInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}
	reqData.CourseID = uint(courseID)

	chapter, err := services.CreateChapter(database.Database.Db, actor, *reqData)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Chapter created successfully!", chapter)
}

// AdminUpdateChapter updates chapter title/description
func AdminUpdateChapter(c *fiber.Ctx) error {
	actor, authErr := middleware.CurrentUser(c)
	if authErr != nil {
		return middleware.ErrorResponse(c, authErr)
	}

	chapterID, paramErr := c.ParamsInt("chapter_id")
	if paramErr != nil || chapterID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid chapter id!", nil)
	}

	reqData, ok := c.Locals("validatedChapterUpdate").(*services.UpdateChapterInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	chapter, err := services.UpdateChapter(database.Database.Db, actor, uint(chapterID), *reqData)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Chapter updated successfully!", chapter)
}

// AdminDeleteChapter removes a chapter and renumbers the remaining ones
func AdminDeleteChapter(c *fiber.Ctx) error {
	actor, authErr := middleware.CurrentUser(c)
	if authErr != nil {
		return middleware.ErrorResponse(c, authErr)
	}

	chapterID, paramErr := c.ParamsInt("chapter_id")
	if paramErr != nil || chapterID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid chapter id!", nil)
	}

	if err := services.DeleteChapter(database.Database.Db, actor, uint(chapterID)); err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Chapter deleted successfully!", nil)
}

// AdminReorderChapters applies a caller-supplied full ordering of chapter ids
func AdminReorderChapters(c *fiber.Ctx) error {
	actor, authErr := middleware.CurrentUser(c)
	if authErr != nil {
		return middleware.ErrorResponse(c, authErr)
	}

	courseID, paramErr := c.ParamsInt("course_id")
	if paramErr != nil || courseID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	reqData, ok := c.Locals("validatedReorder").(*services.ReorderInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if err := services.ReorderChapters(database.Database.Db, actor, uint(courseID), reqData.OrderedIDs); err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Chapters reordered successfully!", nil)
}

// AdminPublishChapter marks a chapter live
func AdminPublishChapter(c *fiber.Ctx) error {
	actor, authErr := middleware.CurrentUser(c)
	if authErr != nil {
		return middleware.ErrorResponse(c, authErr)
	}

	chapterID, paramErr := c.ParamsInt("chapter_id")
	if paramErr != nil || chapterID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid chapter id!", nil)
	}

	if err := services.PublishChapter(database.Database.Db, actor, uint(chapterID)); err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Chapter published successfully!", nil)
}

// AdminUnpublishChapter takes a chapter offline
func AdminUnpublishChapter(c *fiber.Ctx) error {
	actor, authErr := middleware.CurrentUser(c)
	if authErr != nil {
		return middleware.ErrorResponse(c, authErr)
	}

	chapterID, paramErr := c.ParamsInt("chapter_id")
	if paramErr != nil || chapterID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid chapter id!", nil)
	}

	if err := services.UnpublishChapter(database.Database.Db, actor, uint(chapterID)); err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Chapter unpublished successfully!", nil)
}
