// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/crud"
	controller "schoolku_backend/internals/features/users/auth/controller"
	authRepo "schoolku_backend/internals/features/users/auth/repository"
	"schoolku_backend/internals/features/users/auth/service"
	userModel "schoolku_backend/internals/features/users/user/model"
	rateLimiter "schoolku_backend/internals/middlewares"
)

// Base: /api/auth (public)
func AuthRoutes(r fiber.Router, db *gorm.DB, users crud.Storage[userModel.UserModel, uuid.UUID], secret string, ttl time.Duration) {
	svc := service.NewAuthService(authRepo.NewUserFinder(db, users), secret, ttl)
	authController := controller.NewAuthController(svc)

	baseAuth := r.Group("/auth")
	baseAuth.Post("/login", rateLimiter.LoginRateLimiter(), authController.Login)
}
