package middleware

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"stagingcourse/apperror"
)

// JsonResponse writes the uniform {status, message, data} envelope
func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

// ValidationErrorResponse writes per-field validation errors
func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Validation failed!", errors)
}

// ErrorResponse translates a service error into the response envelope.
// Internal faults are logged here; business-rule errors pass straight through
// with their user-presentable message.
func ErrorResponse(c *fiber.Ctx, err *apperror.Error) error {
	if err.IsInternal() {
		log.Printf("[%s %s] %v", c.Method(), c.Path(), err)
	}
	return JsonResponse(c, err.Status, false, err.Message, nil)
}
