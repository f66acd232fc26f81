package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	calendarRoute "schoolku_backend/internals/features/school/calendar_entries/route"
	classroomRoute "schoolku_backend/internals/features/school/classrooms/route"
)

// /api/classroom, /api/calendarentries
func SchoolRoutes(r fiber.Router, db *gorm.DB) {
	classroomRoute.ClassroomRoutes(r, db)
	calendarRoute.CalendarEntryRoutes(r, db)
}
