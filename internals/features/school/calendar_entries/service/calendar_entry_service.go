// file: internals/features/school/calendar_entries/service/calendar_entry_service.go
package service

import (
	"slices"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/crud"
	"schoolku_backend/internals/features/school/calendar_entries/model"
)

// maksimal pengingat: 4 minggu sebelum start
const maxReminderMinutes = 4 * 7 * 24 * 60

var Definition = crud.Definition[model.CalendarEntryModel, uuid.UUID]{
	Name:      "calendar entry",
	Audit:     func(m *model.CalendarEntryModel) *crud.Audit { return &m.Audit },
	KeyOf:     func(m *model.CalendarEntryModel) uuid.UUID { return m.CalendarEntryID },
	NewKey:    func(m *model.CalendarEntryModel) { crud.AssignUUID(&m.CalendarEntryID) },
	KeyParams: "/:id",
	ParseKey:  crud.ParseUUIDParam("id"),
	KeyWhere:  crud.WhereUUID("calendar_entry_id"),
	Check:     checkCalendarEntry,
	Clone:     cloneCalendarEntry,
	SortColumns: map[string]string{
		"label":        "calendar_entry_label",
		"start_date":   "calendar_entry_start_date",
		"created_date": "calendar_entry_created_date",
	},
	DefaultSort: "start_date",
}

func NewCalendarEntryService(store crud.Storage[model.CalendarEntryModel, uuid.UUID]) *crud.Service[model.CalendarEntryModel, uuid.UUID] {
	return crud.NewService(Definition, store, nil)
}

func cloneCalendarEntry(m *model.CalendarEntryModel) {
	m.CalendarEntryDescription = crud.ClonePtr(m.CalendarEntryDescription)
	m.CalendarEntryRepeatUntil = crud.ClonePtr(m.CalendarEntryRepeatUntil)
	m.CalendarEntryReminderMinutes = slices.Clone(m.CalendarEntryReminderMinutes)
}

func checkCalendarEntry(m *model.CalendarEntryModel) map[string]string {
	fields := map[string]string{}

	if !m.CalendarEntryStartDate.IsZero() && !m.CalendarEntryEndDate.IsZero() &&
		m.CalendarEntryEndDate.Before(m.CalendarEntryStartDate) {
		fields["calendar_entry_end_date"] = "must not be before start date"
	}
	if m.CalendarEntryRepeatUntil != nil && m.CalendarEntryRepeatUntil.Before(m.CalendarEntryEndDate) {
		fields["calendar_entry_repeat_until"] = "must not be before end date"
	}
	if m.CalendarEntryRemindMe && len(m.CalendarEntryReminderMinutes) == 0 {
		fields["calendar_entry_reminder_minutes"] = "is required when remind me is set"
	}
	for _, v := range m.CalendarEntryReminderMinutes {
		if v < 0 || v > maxReminderMinutes {
			fields["calendar_entry_reminder_minutes"] = "must be between 0 and 40320"
			break
		}
	}
	return fields
}
