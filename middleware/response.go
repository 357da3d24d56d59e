package middleware

import "github.com/gofiber/fiber/v2"

// JsonResponse writes a success payload with the given status code
func JsonResponse(c *fiber.Ctx, statusCode int, data fiber.Map) error {
	return c.Status(statusCode).JSON(data)
}

// ErrorResponse writes a failure body of the form {"errors": "..."}
func ErrorResponse(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"errors": message,
	})
}

// ValidationErrorResponse writes field-level validation errors
func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"errors": errors,
	})
}
