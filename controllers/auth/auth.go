package authController

import (
	"github.com/gofiber/fiber/v2"

	"stagingcourse/database"
	"stagingcourse/middleware"
	"stagingcourse/services"
)

// Register creates a self-service student account
func Register(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRegister").(*services.RegisterInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	user, err := services.RegisterUser(database.Database.Db, *reqData)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully.", user)
}

// Login verifies credentials and issues a JWT
func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*services.LoginInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	user, err := services.AuthenticateUser(database.Database.Db, reqData.Email, reqData.Password)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	token, signErr := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	if signErr != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful!", fiber.Map{
		"token": token,
		"user":  user,
	})
}
