package crud_test

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/crud"
	helper "schoolku_backend/internals/helpers"
)

// widget: entity minimal untuk menguji service/controller generic.
type widget struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name" validate:"required,max=20"`
	Note string    `json:"note,omitempty"`

	crud.Audit
}

var widgetDef = crud.Definition[widget, uuid.UUID]{
	Name:      "widget",
	Audit:     func(w *widget) *crud.Audit { return &w.Audit },
	KeyOf:     func(w *widget) uuid.UUID { return w.ID },
	NewKey:    func(w *widget) { crud.AssignUUID(&w.ID) },
	KeyParams: "/:id",
	ParseKey:  crud.ParseUUIDParam("id"),
	KeyWhere:  crud.WhereUUID("id"),
	Check: func(w *widget) map[string]string {
		if strings.Contains(w.Name, "!") {
			return map[string]string{"name": "must not contain !"}
		}
		return nil
	},
	SortColumns: map[string]string{"created_date": "created_date"},
	DefaultSort: "created_date",
}

var (
	fixedNow = time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	actorA   = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	actorB   = uuid.MustParse("22222222-2222-2222-2222-222222222222")
)

func newWidgetService(store crud.Storage[widget, uuid.UUID]) *crud.Service[widget, uuid.UUID] {
	if store == nil {
		store = crud.NewMemoryStorage(widgetDef)
	}
	return crud.NewService(widgetDef, store, nil).WithClock(func() time.Time { return fixedNow })
}

func ctxAs(actor uuid.UUID) context.Context {
	return crud.WithActor(context.Background(), actor)
}

// failingStorage: setiap operasi gagal dengan err (driver down, dsb).
type failingStorage struct{ err error }

func (f failingStorage) Create(context.Context, *widget) error { return f.err }
func (f failingStorage) RetrieveByID(context.Context, uuid.UUID) (widget, error) {
	return widget{}, f.err
}
func (f failingStorage) RetrieveAll(context.Context, helper.Params) ([]widget, int64, error) {
	return nil, 0, f.err
}
func (f failingStorage) Update(context.Context, *widget) error   { return f.err }
func (f failingStorage) Delete(context.Context, uuid.UUID) error { return f.err }

var _ crud.Storage[widget, uuid.UUID] = failingStorage{}

var errDriverDown = errors.New("driver: connection refused")
