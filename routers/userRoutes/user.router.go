package userRoutes

import (
	userController "stagingcourse/controllers/userControllers"
	"stagingcourse/middleware"
	userValidator "stagingcourse/validators/userValidator"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	// Self-service profile
	profileGroup := app.Group("/user", middleware.JWTMiddleware)
	profileGroup.Get("/profile", userController.GetMyProfile)
	profileGroup.Put("/profile", userValidator.UpdateProfile(), userController.UpdateMyProfile)

	// Admin user management
	adminGroup := app.Group("/admin/user", middleware.JWTMiddleware)
	adminGroup.Post("/create", userValidator.CreateUser(), userController.AdminCreateUser)
	adminGroup.Get("/list", userController.AdminListUsers)
	adminGroup.Get("/:id", userController.AdminGetUser)
	adminGroup.Put("/:id", userValidator.UpdateUser(), userController.AdminUpdateUser)
	adminGroup.Delete("/:id", userController.AdminDeleteUser)
	adminGroup.Patch("/:id/password", userValidator.ResetPassword(), userController.AdminResetUserPassword)
	adminGroup.Post("/:id/enroll/:course_id", userController.AdminEnrollUser)
	adminGroup.Delete("/:id/enroll/:course_id", userController.AdminUnenrollUser)
}
