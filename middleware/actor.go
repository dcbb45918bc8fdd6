package middleware

import (
	"github.com/gofiber/fiber/v2"

	"stagingcourse/apperror"
	"stagingcourse/database"
	"stagingcourse/models"
)

// CurrentUser resolves the authenticated actor for the request. Controllers
// call this once and pass the user explicitly into service operations.
func CurrentUser(c *fiber.Ctx) (models.User, *apperror.Error) {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return models.User{}, apperror.Unauthenticated("Unauthorized!")
	}

	var user models.User
	if err := database.Database.Db.First(&user, userID).Error; err != nil {
		return models.User{}, apperror.Unauthenticated("User not found!")
	}

	if !user.IsActive {
		return models.User{}, apperror.Forbidden("Account is deactivated!")
	}

	return user, nil
}
