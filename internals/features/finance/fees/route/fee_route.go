// file: internals/features/finance/fees/route/fee_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/crud"
	"schoolku_backend/internals/features/finance/fees/service"
)

func FeeRoutes(r fiber.Router, db *gorm.DB) {
	svc := service.NewFeeService(crud.NewStorage(db, service.Definition))
	crud.Mount(r, "/fees", crud.NewController(svc, service.Definition))
}
