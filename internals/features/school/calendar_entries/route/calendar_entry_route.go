// file: internals/features/school/calendar_entries/route/calendar_entry_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/crud"
	"schoolku_backend/internals/features/school/calendar_entries/service"
)

func CalendarEntryRoutes(r fiber.Router, db *gorm.DB) {
	svc := service.NewCalendarEntryService(crud.NewStorage(db, service.Definition))
	crud.Mount(r, "/calendarentries", crud.NewController(svc, service.Definition))
}
