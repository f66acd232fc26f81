// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/crud"
	userService "schoolku_backend/internals/features/users/user/service"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
	routeDetails "schoolku_backend/internals/route/details"
)

var startTime time.Time

type Options struct {
	JWTSecret    string
	JWTTTL       time.Duration
	AuthRequired bool
}

// SetupRoutes memasang semua route. db nil = storage in-memory.
func SetupRoutes(app *fiber.App, db *gorm.DB, o Options) {
	startTime = time.Now()

	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app, db)

	// users dipakai bersama oleh /users dan /auth/login (penting untuk mode memory)
	users := crud.NewStorage(db, userService.Definition)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	public := app.Group("/api")
	routeDetails.AuthRoutes(public, db, users, o.JWTSecret, o.JWTTTL)

	// ===================== PRIVATE =====================
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:   o.JWTSecret,
			Optional: !o.AuthRequired,
		}),
	)

	log.Println("[INFO] Mounting School routes...")
	routeDetails.SchoolRoutes(private, db)

	log.Println("[INFO] Mounting Finance routes...")
	routeDetails.FinanceRoutes(private, db)

	log.Println("[INFO] Mounting User routes...")
	routeDetails.UserRoutes(private, db, users)
}
