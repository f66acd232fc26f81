// file: internals/features/school/calendar_entries/model/calendar_entry_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"schoolku_backend/internals/features/crud"
)

// CalendarEntryModel merepresentasikan tabel calendar_entries
type CalendarEntryModel struct {
	CalendarEntryID uuid.UUID `json:"calendar_entry_id" gorm:"type:uuid;primaryKey;column:calendar_entry_id"`

	CalendarEntryLabel       string  `json:"calendar_entry_label" gorm:"type:varchar(200);not null;column:calendar_entry_label" validate:"required,max=200"`
	CalendarEntryDescription *string `json:"calendar_entry_description,omitempty" gorm:"type:text;column:calendar_entry_description" validate:"omitempty,max=2000"`

	CalendarEntryStartDate   time.Time  `json:"calendar_entry_start_date" gorm:"type:timestamptz;not null;column:calendar_entry_start_date" validate:"required"`
	CalendarEntryEndDate     time.Time  `json:"calendar_entry_end_date" gorm:"type:timestamptz;not null;column:calendar_entry_end_date" validate:"required"`
	CalendarEntryRepeatUntil *time.Time `json:"calendar_entry_repeat_until,omitempty" gorm:"type:timestamptz;column:calendar_entry_repeat_until"`

	// menit sebelum start, mis. {1440, 60}
	CalendarEntryRemindMe        bool          `json:"calendar_entry_remind_me" gorm:"not null;default:false;column:calendar_entry_remind_me"`
	CalendarEntryReminderMinutes pq.Int64Array `json:"calendar_entry_reminder_minutes,omitempty" gorm:"type:int[];column:calendar_entry_reminder_minutes"`

	crud.Audit `gorm:"embedded;embeddedPrefix:calendar_entry_"`
}

func (CalendarEntryModel) TableName() string { return "calendar_entries" }
