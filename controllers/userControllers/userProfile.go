package userController

import (
	"github.com/gofiber/fiber/v2"

	"stagingcourse/database"
	"stagingcourse/middleware"
	"stagingcourse/services"
)

// GetMyProfile returns the logged-in user's account details
func GetMyProfile(c *fiber.Ctx) error {
	actor, authErr := middleware.CurrentUser(c)
	if authErr != nil {
		return middleware.ErrorResponse(c, authErr)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully!", actor)
}

// UpdateMyProfile lets a user change their own name and phone
func UpdateMyProfile(c *fiber.Ctx) error {
	actor, authErr := middleware.CurrentUser(c)
	if authErr != nil {
		return middleware.ErrorResponse(c, authErr)
	}

	reqData, ok := c.Locals("validatedProfile").(*services.UpdateProfileInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request payload!", nil)
	}

	user, err := services.UpdateProfile(database.Database.Db, actor, *reqData)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated successfully!", user)
}
