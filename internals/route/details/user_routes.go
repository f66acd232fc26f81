package details

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/crud"
	teacherAttachmentRoute "schoolku_backend/internals/features/users/teacher_attachments/route"
	userModel "schoolku_backend/internals/features/users/user/model"
	userRoute "schoolku_backend/internals/features/users/user/route"
)

// /api/users, /api/teacherattachments
func UserRoutes(r fiber.Router, db *gorm.DB, users crud.Storage[userModel.UserModel, uuid.UUID]) {
	userRoute.UserRoutes(r, users)
	teacherAttachmentRoute.TeacherAttachmentRoutes(r, db)
}
