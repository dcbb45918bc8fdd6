package controllers

import (
	"github.com/gofiber/fiber/v2"

	"stagingcourse/database"
	"stagingcourse/middleware"
	"stagingcourse/services"
)

// ListCourses is the public marketing catalogue of published courses
func ListCourses(c *fiber.Ctx) error {
	courses, err := services.ListPublishedCourses(database.Database.Db)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
	})
}

// GetCourseBySlug is the public course detail page with published chapters
// and lessons
func GetCourseBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if slug == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course slug!", nil)
	}

	course, err := services.GetCourseBySlug(database.Database.Db, slug)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", course)
}

// GetLearnCourse returns the course tree for an enrolled student, including
// lesson content
func GetLearnCourse(c *fiber.Ctx) error {
	actor, authErr := middleware.CurrentUser(c)
	if authErr != nil {
		return middleware.ErrorResponse(c, authErr)
	}

	courseID, paramErr := c.ParamsInt("course_id")
	if paramErr != nil || courseID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	if !services.IsEnrolled(database.Database.Db, actor.ID, uint(courseID)) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You are not enrolled in this course!", nil)
	}

	course, err := services.GetLearnCourse(database.Database.Db, uint(courseID))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", course)
}
