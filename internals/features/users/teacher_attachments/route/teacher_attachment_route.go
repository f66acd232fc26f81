// file: internals/features/users/teacher_attachments/route/teacher_attachment_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/crud"
	"schoolku_backend/internals/features/users/teacher_attachments/service"
)

func TeacherAttachmentRoutes(r fiber.Router, db *gorm.DB) {
	svc := service.NewTeacherAttachmentService(crud.NewStorage(db, service.Definition))
	crud.Mount(r, "/teacherattachments", crud.NewController(svc, service.Definition))
}
