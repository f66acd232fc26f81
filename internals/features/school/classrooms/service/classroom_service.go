// file: internals/features/school/classrooms/service/classroom_service.go
package service

import (
	"context"
	"encoding/json"
	"slices"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"schoolku_backend/internals/features/crud"
	"schoolku_backend/internals/features/school/classrooms/model"
	helper "schoolku_backend/internals/helpers"
)

const slugMaxLen = 120

// Definition menjelaskan classroom ke service/controller generic.
var Definition = crud.Definition[model.ClassroomModel, uuid.UUID]{
	Name:      "classroom",
	Audit:     func(m *model.ClassroomModel) *crud.Audit { return &m.Audit },
	KeyOf:     func(m *model.ClassroomModel) uuid.UUID { return m.ClassroomID },
	NewKey:    func(m *model.ClassroomModel) { crud.AssignUUID(&m.ClassroomID) },
	KeyParams: "/:id",
	ParseKey:  crud.ParseUUIDParam("id"),
	KeyWhere:  crud.WhereUUID("classroom_id"),
	Check:     checkClassroom,
	Prepare:   prepareClassroom,
	Clone:     cloneClassroom,
	SortColumns: map[string]string{
		"name":         "classroom_name",
		"created_date": "classroom_created_date",
		"updated_date": "classroom_updated_date",
	},
	DefaultSort: "created_date",
}

func cloneClassroom(m *model.ClassroomModel) {
	m.ClassroomLocation = crud.ClonePtr(m.ClassroomLocation)
	m.ClassroomCapacity = crud.ClonePtr(m.ClassroomCapacity)
	m.ClassroomFeatures = slices.Clone(m.ClassroomFeatures)
}

func NewClassroomService(store crud.Storage[model.ClassroomModel, uuid.UUID]) *crud.Service[model.ClassroomModel, uuid.UUID] {
	return crud.NewService(Definition, store, nil)
}

// features wajib array JSON (kalau dikirim)
func checkClassroom(m *model.ClassroomModel) map[string]string {
	if len(m.ClassroomFeatures) == 0 {
		return nil
	}
	var arr []any
	if err := json.Unmarshal(m.ClassroomFeatures, &arr); err != nil {
		return map[string]string{"classroom_features": "must be a JSON array"}
	}
	return nil
}

func prepareClassroom(_ context.Context, m *model.ClassroomModel, _ *model.ClassroomModel) error {
	if m.ClassroomSlug == "" {
		m.ClassroomSlug = helper.Slugify(m.ClassroomName, slugMaxLen)
	} else {
		m.ClassroomSlug = helper.Slugify(m.ClassroomSlug, slugMaxLen)
	}
	if m.ClassroomStatus == "" {
		m.ClassroomStatus = model.ClassroomAvailable
	}
	if len(m.ClassroomFeatures) == 0 {
		m.ClassroomFeatures = datatypes.JSON("[]")
	}
	return nil
}
