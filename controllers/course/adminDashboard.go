package controllers

import (
	"github.com/gofiber/fiber/v2"

	"stagingcourse/database"
	"stagingcourse/middleware"
	"stagingcourse/services"
)

// AdminDashboardStats returns platform-wide counts for the admin overview
func AdminDashboardStats(c *fiber.Ctx) error {
	actor, authErr := middleware.CurrentUser(c)
	if authErr != nil {
		return middleware.ErrorResponse(c, authErr)
	}

	stats, err := services.GetDashboardStats(database.Database.Db, actor)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard stats fetched successfully!", stats)
}

// AdminCourseEnrollments lists enrollments of one course
func AdminCourseEnrollments(c *fiber.Ctx) error {
	actor, authErr := middleware.CurrentUser(c)
	if authErr != nil {
		return middleware.ErrorResponse(c, authErr)
	}

	courseID, paramErr := c.ParamsInt("id")
	if paramErr != nil || courseID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	enrollments, err := services.ListCourseEnrollments(database.Database.Db, actor, uint(courseID))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
		"enrollments": enrollments,
	})
}
