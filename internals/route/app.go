package routes

import (
	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"

	helper "schoolku_backend/internals/helpers"
)

// NewApp: fiber app dengan codec sonic dan error envelope standar.
func NewApp() *fiber.App {
	return fiber.New(fiber.Config{
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ProxyHeader:           fiber.HeaderXForwardedFor,
		ErrorHandler:          helper.FromFiberError,
	})
}
