package controllers

import (
	"github.com/gofiber/fiber/v2"

	"stagingcourse/database"
	"stagingcourse/middleware"
	"stagingcourse/services"
)

// AdminCreateCourse creates a new draft course
func AdminCreateCourse(c *fiber.Ctx) error {
	actor, authErr := middleware.CurrentUser(c)
	if authErr != nil {
		return middleware.ErrorResponse(c, authErr)
	}

	reqData, ok := c.Locals("validatedCourse").(*services.CreateCourseInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course, err := services.CreateCourse(database.Database.Db, actor, *reqData)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// AdminUpdateCourse updates course fields; a changed title re-derives the slug
func AdminUpdateCourse(c *fiber.Ctx) error {
	actor, authErr := middleware.CurrentUser(c)
	if authErr != nil {
		return middleware.ErrorResponse(c, authErr)
	}

	courseID, paramErr := c.ParamsInt("id")
	if paramErr != nil || courseID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	reqData, ok := c.Locals("validatedCourseUpdate").(*services.UpdateCourseInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course, err := services.UpdateCourse(database.Database.Db, actor, uint(courseID), *reqData)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

// AdminDeleteCourse removes a course and everything beneath it
func AdminDeleteCourse(c *fiber.Ctx) error {
	actor, authErr := middleware.CurrentUser(c)
	if authErr != nil {
		return middleware.ErrorResponse(c, authErr)
	}

	courseID, paramErr := c.ParamsInt("id")
	if paramErr != nil || courseID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	if err := services.DeleteCourse(database.Database.Db, actor, uint(courseID)); err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}

// AdminPublishCourse marks a course live once its content is complete
func AdminPublishCourse(c *fiber.Ctx) error {
	actor, authErr := middleware.CurrentUser(c)
	if authErr != nil {
		return middleware.ErrorResponse(c, authErr)
	}

	courseID, paramErr := c.ParamsInt("id")
	if paramErr != nil || courseID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	if err := services.PublishCourse(database.Database.Db, actor, uint(courseID)); err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course published successfully!", nil)
}

// AdminUnpublishCourse takes a course offline
func AdminUnpublishCourse(c *fiber.Ctx) error {
	actor, authErr := middleware.CurrentUser(c)
	if authErr != nil {
		return middleware.ErrorResponse(c, authErr)
	}

	courseID, paramErr := c.ParamsInt("id")
	if paramErr != nil || courseID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	if err := services.UnpublishCourse(database.Database.Db, actor, uint(courseID)); err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course unpublished successfully!", nil)
}

// AdminListCourses lists every course, drafts included
func AdminListCourses(c *fiber.Ctx) error {
	actor, authErr := middleware.CurrentUser(c)
	if authErr != nil {
		return middleware.ErrorResponse(c, authErr)
	}

	courses, err := services.ListCourses(database.Database.Db, actor)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
	})
}

// AdminGetCourse returns one course with its full chapter/lesson tree
func AdminGetCourse(c *fiber.Ctx) error {
	actor, authErr := middleware.CurrentUser(c)
	if authErr != nil {
		return middleware.ErrorResponse(c, authErr)
	}

	courseID, paramErr := c.ParamsInt("id")
	if paramErr != nil || courseID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	course, err := services.GetCourse(database.Database.Db, actor, uint(courseID))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", course)
}
