package controller

import (
	"github.com/gofiber/fiber/v2"

	"schoolku_backend/internals/features/users/auth/service"
	helper "schoolku_backend/internals/helpers"
	"schoolku_backend/internals/helpers/apperr"
)

type AuthController struct {
	Service *service.AuthService
}

func NewAuthController(svc *service.AuthService) *AuthController {
	return &AuthController{Service: svc}
}

// POST /api/auth/login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var input struct {
		Identifier string `json:"identifier"`
		Password   string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return apperr.Respond(c, apperr.Validation("login", apperr.InvalidInputf("Invalid login payload.")))
	}

	out, err := ac.Service.Login(c.UserContext(), input.Identifier, input.Password)
	if err != nil {
		return apperr.Respond(c, err)
	}
	return helper.JsonOK(c, "Login successful", out)
}
