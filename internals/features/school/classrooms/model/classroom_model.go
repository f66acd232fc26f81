// file: internals/features/school/classrooms/model/classroom_model.go
package model

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"schoolku_backend/internals/features/crud"
)

type ClassroomStatus string

const (
	ClassroomAvailable   ClassroomStatus = "available"
	ClassroomOccupied    ClassroomStatus = "occupied"
	ClassroomMaintenance ClassroomStatus = "maintenance"
)

// ClassroomModel merepresentasikan tabel classrooms
type ClassroomModel struct {
	ClassroomID uuid.UUID `json:"classroom_id" gorm:"type:uuid;primaryKey;column:classroom_id"`

	ClassroomName     string          `json:"classroom_name" gorm:"type:varchar(120);not null;column:classroom_name" validate:"required,max=120"`
	ClassroomSlug     string          `json:"classroom_slug" gorm:"type:varchar(120);not null;column:classroom_slug" validate:"omitempty,max=120"`
	ClassroomLocation *string         `json:"classroom_location,omitempty" gorm:"type:text;column:classroom_location" validate:"omitempty,max=500"`
	ClassroomCapacity *int            `json:"classroom_capacity,omitempty" gorm:"column:classroom_capacity" validate:"omitempty,min=0"`
	ClassroomStatus   ClassroomStatus `json:"classroom_status" gorm:"type:varchar(16);not null;default:'available';column:classroom_status" validate:"omitempty,oneof=available occupied maintenance"`

	// array string bebas, mis. ["projector","ac"]
	ClassroomFeatures datatypes.JSON `json:"classroom_features" gorm:"type:jsonb;not null;default:'[]';column:classroom_features"`

	crud.Audit `gorm:"embedded;embeddedPrefix:classroom_"`
}

// TableName mengikat model ke tabel classrooms
func (ClassroomModel) TableName() string { return "classrooms" }
