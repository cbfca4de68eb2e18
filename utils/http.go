// utils/http.go - HTTP response helpers
package utils

import (
	"log"

	"taskhub/services"

	"github.com/gofiber/fiber/v2"
)

// Success sends a JSON success response with the given fields merged in.
func Success(c *fiber.Ctx, status int, data fiber.Map) error {
	response := fiber.Map{"success": true}
	for k, v := range data {
		response[k] = v
	}
	return c.Status(status).JSON(response)
}

// Error renders a service error with the status its kind maps to. Internal
// causes are logged and hidden from the caller.
func Error(c *fiber.Ctx, err error) error {
	message := err.Error()
	if services.KindOf(err) == services.KindInternal {
		log.Printf("internal error on %s %s: %v", c.Method(), c.Path(), err)
		message = "Internal Server Error"
	}
	return c.Status(StatusOf(err)).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}

// StatusOf maps an error kind to its HTTP status.
func StatusOf(err error) int {
	switch services.KindOf(err) {
	case services.KindBadRequest, services.KindValidation:
		return fiber.StatusBadRequest
	case services.KindForbidden:
		return fiber.StatusForbidden
	case services.KindNotFound, services.KindNoResults:
		return fiber.StatusNotFound
	case services.KindDuplicate:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}
