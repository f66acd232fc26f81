package details

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/crud"
	authRoute "schoolku_backend/internals/features/users/auth/route"
	userModel "schoolku_backend/internals/features/users/user/model"
)

func AuthRoutes(r fiber.Router, db *gorm.DB, users crud.Storage[userModel.UserModel, uuid.UUID], secret string, ttl time.Duration) {
	authRoute.AuthRoutes(r, db, users, secret, ttl)
}
