// file: internals/features/school/classrooms/route/classroom_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/crud"
	"schoolku_backend/internals/features/school/classrooms/service"
)

// ClassroomRoutes: CRUD classroom di /classroom.
// db nil → storage in-memory.
func ClassroomRoutes(r fiber.Router, db *gorm.DB) {
	svc := service.NewClassroomService(crud.NewStorage(db, service.Definition))
	crud.Mount(r, "/classroom", crud.NewController(svc, service.Definition))
}
