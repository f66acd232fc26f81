package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	feeRoute "schoolku_backend/internals/features/finance/fees/route"
)

// /api/fees
func FinanceRoutes(r fiber.Router, db *gorm.DB) {
	feeRoute.FeeRoutes(r, db)
}
