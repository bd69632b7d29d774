// error_utils.go
package utils

import (
	"log"

	"course-marketplace/src/apperrors"
	"course-marketplace/src/models"

	"github.com/gofiber/fiber/v2"
)

func HandleError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Status:  status,
		Message: message,
	})
}

// HandleServiceError แปลง error จาก service เป็น response
func HandleServiceError(c *fiber.Ctx, err error) error {
	status := apperrors.StatusFromError(err)
	if status == fiber.StatusInternalServerError {
		log.Printf("❌ %s %s: %v", c.Method(), c.Path(), err)
	}
	return HandleError(c, status, apperrors.Message(err))
}
