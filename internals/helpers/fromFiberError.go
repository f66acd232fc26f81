package helper

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

// FromFiberError dipakai sebagai fiber ErrorHandler: *fiber.Error (404 route, 401 middleware,
// body terlalu besar, dst) dirender dengan envelope yang sama. Error lain jadi 500 tanpa detail.
func FromFiberError(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonError(c, fe.Code, fe.Message)
	}
	log.Printf("[ERROR] %s %s: %v", c.Method(), c.OriginalURL(), err)
	return JsonError(c, fiber.StatusInternalServerError, "Internal server error, contact support.")
}
