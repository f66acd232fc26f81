package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"schoolku_backend/internals/features/crud"
	"schoolku_backend/internals/features/users/user/model"
	"schoolku_backend/internals/features/users/user/service"
)

// UserRoutes menerima storage dari luar karena login memakai storage yang sama.
func UserRoutes(r fiber.Router, store crud.Storage[model.UserModel, uuid.UUID]) {
	svc := service.NewUserService(store)
	crud.Mount(r, "/users", crud.NewController(svc, service.Definition))
}
