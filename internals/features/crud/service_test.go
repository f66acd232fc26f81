package crud_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/crud"
	helper "schoolku_backend/internals/helpers"
	"schoolku_backend/internals/helpers/apperr"
)

// ---- Create ----------------------------------------------------------------

func TestService_Create_StampsAudit(t *testing.T) {
	svc := newWidgetService(nil)

	got, err := svc.Create(ctxAs(actorA), widget{Name: "Room A"})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.Equal(t, actorA, got.CreatedBy)
	assert.Equal(t, got.CreatedBy, got.UpdatedBy)
	assert.Equal(t, fixedNow, got.CreatedDate)
	assert.Equal(t, got.CreatedDate, got.UpdatedDate)
	assert.False(t, got.IsLocked)
}

func TestService_Create_ActorFromBodyWhenNoToken(t *testing.T) {
	svc := newWidgetService(nil)

	in := widget{Name: "Room A"}
	in.CreatedBy = actorB
	got, err := svc.Create(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, actorB, got.CreatedBy)
	assert.Equal(t, actorB, got.UpdatedBy)
}

func TestService_Create_MissingActor(t *testing.T) {
	svc := newWidgetService(nil)

	_, err := svc.Create(context.Background(), widget{Name: "Room A"})

	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.CategoryValidation, apperr.KindInvalidInput))
	e, _ := apperr.As(err)
	assert.Contains(t, e.Cause.Fields, "created_by")
}

func TestService_Create_InvalidInput(t *testing.T) {
	svc := newWidgetService(nil)

	_, err := svc.Create(ctxAs(actorA), widget{Name: "this name is far too long"})
	require.Error(t, err)
	e, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.KindInvalidInput, e.Kind())
	assert.Equal(t, "must be at most 20", e.Cause.Fields["name"])

	_, err = svc.Create(ctxAs(actorA), widget{Name: "bad!"})
	e, _ = apperr.As(err)
	require.NotNil(t, e)
	assert.Equal(t, "must not contain !", e.Cause.Fields["name"])
}

func TestService_Create_Duplicate(t *testing.T) {
	svc := newWidgetService(nil)
	id := uuid.New()

	_, err := svc.Create(ctxAs(actorA), widget{ID: id, Name: "Room A"})
	require.NoError(t, err)

	_, err = svc.Create(ctxAs(actorA), widget{ID: id, Name: "Room B"})

	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.CategoryValidation, apperr.KindAlreadyExists))
}

func TestService_Create_StorageFailure(t *testing.T) {
	svc := newWidgetService(failingStorage{err: errDriverDown})

	_, err := svc.Create(ctxAs(actorA), widget{Name: "Room A"})

	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.CategoryDependency, apperr.KindFailed))
	assert.ErrorIs(t, err, errDriverDown)
}

func TestService_Create_PrepareFailureIsService(t *testing.T) {
	def := widgetDef
	def.Prepare = func(context.Context, *widget, *widget) error { return errors.New("hash failed") }
	svc := crud.NewService(def, crud.NewMemoryStorage(def), nil)

	_, err := svc.Create(ctxAs(actorA), widget{Name: "Room A"})

	require.Error(t, err)
	e, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.CategoryService, e.Category)
	assert.Equal(t, "Widget service error occurred, contact support.", e.Message)
}

func TestService_Create_PrepareClassifiedPassesThrough(t *testing.T) {
	def := widgetDef
	def.Prepare = func(context.Context, *widget, *widget) error {
		return apperr.Validation("widget", apperr.InvalidInputf("nope"))
	}
	svc := crud.NewService(def, crud.NewMemoryStorage(def), nil)

	_, err := svc.Create(ctxAs(actorA), widget{Name: "Room A"})

	assert.True(t, apperr.Is(err, apperr.CategoryValidation, apperr.KindInvalidInput))
}

// ---- Retrieve --------------------------------------------------------------

func TestService_RetrieveByID_NotFound(t *testing.T) {
	svc := newWidgetService(nil)

	_, err := svc.RetrieveByID(context.Background(), uuid.New())

	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.CategoryValidation, apperr.KindNotFound))
}

func TestService_RetrieveByID_Idempotent(t *testing.T) {
	svc := newWidgetService(nil)
	created, err := svc.Create(ctxAs(actorA), widget{Name: "Room A"})
	require.NoError(t, err)

	first, err := svc.RetrieveByID(context.Background(), created.ID)
	require.NoError(t, err)
	second, err := svc.RetrieveByID(context.Background(), created.ID)
	require.NoError(t, err)

	assert.Equal(t, created, first)
	assert.Equal(t, first, second)
}

func TestService_RetrieveByID_Locked(t *testing.T) {
	svc := newWidgetService(nil)
	created, err := svc.Create(ctxAs(actorA), widget{Name: "Room A"})
	require.NoError(t, err)
	_, err = svc.SetLocked(ctxAs(actorA), created.ID, true)
	require.NoError(t, err)

	_, err = svc.RetrieveByID(context.Background(), created.ID)

	assert.True(t, apperr.Is(err, apperr.CategoryDependency, apperr.KindLocked))
}

func TestService_RetrieveAll_Pages(t *testing.T) {
	svc := newWidgetService(nil)
	for _, n := range []string{"a", "b", "c"} {
		_, err := svc.Create(ctxAs(actorA), widget{Name: n})
		require.NoError(t, err)
	}

	rows, total, err := svc.RetrieveAll(context.Background(), helper.Params{Page: 2, PerPage: 2, SortOrder: "asc"})

	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, rows, 1)
	assert.Equal(t, "c", rows[0].Name)

	rows, _, err = svc.RetrieveAll(context.Background(), helper.Params{Page: 1, PerPage: 2, SortOrder: "desc"})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "c", rows[0].Name)
}

func TestService_RetrieveAll_StorageFailure(t *testing.T) {
	svc := newWidgetService(failingStorage{err: context.DeadlineExceeded})

	_, _, err := svc.RetrieveAll(context.Background(), helper.Params{Page: 1, PerPage: 10})

	assert.True(t, apperr.Is(err, apperr.CategoryDependency, apperr.KindFailed))
}

// ---- Modify ----------------------------------------------------------------

func TestService_Modify_KeepsCreatorAdvancesUpdater(t *testing.T) {
	store := crud.NewMemoryStorage(widgetDef)
	svc := newWidgetService(store)
	created, err := svc.Create(ctxAs(actorA), widget{Name: "Room A"})
	require.NoError(t, err)

	later := fixedNow.Add(time.Hour)
	svc.WithClock(func() time.Time { return later })

	got, err := svc.Modify(ctxAs(actorB), widget{ID: created.ID, Name: "Room A2"})

	require.NoError(t, err)
	assert.Equal(t, "Room A2", got.Name)
	assert.Equal(t, actorA, got.CreatedBy)
	assert.Equal(t, fixedNow, got.CreatedDate)
	assert.Equal(t, actorB, got.UpdatedBy)
	assert.Equal(t, later, got.UpdatedDate)

	stored, err := store.RetrieveByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Room A2", stored.Name)
}

func TestService_Modify_CannotChangeCreator(t *testing.T) {
	svc := newWidgetService(nil)
	created, err := svc.Create(ctxAs(actorA), widget{Name: "Room A"})
	require.NoError(t, err)

	in := widget{ID: created.ID, Name: "Room A"}
	in.CreatedBy = actorB
	_, err = svc.Modify(ctxAs(actorB), in)

	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.CategoryValidation, apperr.KindInvalidInput))
}

func TestService_Modify_CannotUnlockThroughBody(t *testing.T) {
	svc := newWidgetService(nil)
	created, err := svc.Create(ctxAs(actorA), widget{Name: "Room A"})
	require.NoError(t, err)

	in := widget{ID: created.ID, Name: "Room A"}
	in.IsLocked = true
	got, err := svc.Modify(ctxAs(actorA), in)

	require.NoError(t, err)
	assert.False(t, got.IsLocked)
}

func TestService_Create_IgnoresLockAndDeletedFromBody(t *testing.T) {
	svc := newWidgetService(nil)
	in := widget{Name: "Room A"}
	in.IsLocked = true
	in.DeletedAt = gorm.DeletedAt{Time: fixedNow, Valid: true}

	created, err := svc.Create(ctxAs(actorA), in)
	require.NoError(t, err)
	assert.False(t, created.IsLocked)
	assert.False(t, created.DeletedAt.Valid)

	got, err := svc.RetrieveByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.False(t, got.IsLocked)
}

func TestService_Modify_NotFoundAndMissingUpdater(t *testing.T) {
	svc := newWidgetService(nil)

	_, err := svc.Modify(ctxAs(actorA), widget{ID: uuid.New(), Name: "x"})
	assert.True(t, apperr.Is(err, apperr.CategoryValidation, apperr.KindNotFound))

	created, err := svc.Create(ctxAs(actorA), widget{Name: "Room A"})
	require.NoError(t, err)
	_, err = svc.Modify(context.Background(), widget{ID: created.ID, Name: "Room B"})
	assert.True(t, apperr.Is(err, apperr.CategoryValidation, apperr.KindInvalidInput))
}

func TestService_Modify_MissingID(t *testing.T) {
	svc := newWidgetService(nil)

	_, err := svc.Modify(ctxAs(actorA), widget{Name: "x"})

	e, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.KindInvalidInput, e.Kind())
	assert.Contains(t, e.Cause.Fields, "id")
}

// ---- Delete / lock ---------------------------------------------------------

func TestService_Delete_ReturnsPriorState(t *testing.T) {
	svc := newWidgetService(nil)
	created, err := svc.Create(ctxAs(actorA), widget{Name: "Room A"})
	require.NoError(t, err)

	deleted, err := svc.Delete(ctxAs(actorA), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, deleted)

	_, err = svc.RetrieveByID(context.Background(), created.ID)
	assert.True(t, apperr.Is(err, apperr.CategoryValidation, apperr.KindNotFound))
}

func TestService_Delete_Locked(t *testing.T) {
	svc := newWidgetService(nil)
	created, err := svc.Create(ctxAs(actorA), widget{Name: "Room A"})
	require.NoError(t, err)
	_, err = svc.SetLocked(ctxAs(actorA), created.ID, true)
	require.NoError(t, err)

	_, err = svc.Delete(ctxAs(actorA), created.ID)

	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.CategoryDependency, apperr.KindLocked))
}

// row lock NOWAIT gagal di DB → Locked juga
type lockBusyStorage struct {
	*crud.MemoryStorage[widget, uuid.UUID]
}

func (s lockBusyStorage) Delete(context.Context, uuid.UUID) error {
	return &pgconn.PgError{Code: "55P03"}
}

func TestService_Delete_RowLockBusy(t *testing.T) {
	store := lockBusyStorage{crud.NewMemoryStorage(widgetDef)}
	svc := newWidgetService(store)
	created, err := svc.Create(ctxAs(actorA), widget{Name: "Room A"})
	require.NoError(t, err)

	_, err = svc.Delete(ctxAs(actorA), created.ID)

	assert.True(t, apperr.Is(err, apperr.CategoryDependency, apperr.KindLocked))
}

func TestService_SetLocked_RoundTrip(t *testing.T) {
	svc := newWidgetService(nil)
	created, err := svc.Create(ctxAs(actorA), widget{Name: "Room A"})
	require.NoError(t, err)

	locked, err := svc.SetLocked(ctxAs(actorB), created.ID, true)
	require.NoError(t, err)
	assert.True(t, locked.IsLocked)
	assert.Equal(t, actorB, locked.UpdatedBy)

	unlocked, err := svc.SetLocked(ctxAs(actorA), created.ID, false)
	require.NoError(t, err)
	assert.False(t, unlocked.IsLocked)

	_, err = svc.Delete(ctxAs(actorA), created.ID)
	assert.NoError(t, err)

	_, err = svc.SetLocked(ctxAs(actorA), created.ID, true)
	assert.True(t, apperr.Is(err, apperr.CategoryValidation, apperr.KindNotFound))
}

func TestService_SetLocked_RequiresActor(t *testing.T) {
	svc := newWidgetService(nil)
	created, err := svc.Create(ctxAs(actorA), widget{Name: "Room A"})
	require.NoError(t, err)

	_, err = svc.SetLocked(context.Background(), created.ID, true)

	e, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.CategoryValidation, e.Category)
	assert.Equal(t, "is required", e.Cause.Fields["updated_by"])

	got, err := svc.RetrieveByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.False(t, got.IsLocked)
	assert.Equal(t, actorA, got.UpdatedBy)
}

func TestService_Present(t *testing.T) {
	def := widgetDef
	def.Present = func(w *widget) { w.Note = "" }
	svc := crud.NewService(def, crud.NewMemoryStorage(def), nil)

	got, err := svc.Create(ctxAs(actorA), widget{Name: "Room A", Note: "secret"})
	require.NoError(t, err)
	assert.Empty(t, got.Note)
}

func TestActorFrom(t *testing.T) {
	_, ok := crud.ActorFrom(context.Background())
	assert.False(t, ok)

	_, ok = crud.ActorFrom(crud.WithActor(context.Background(), uuid.Nil))
	assert.False(t, ok)

	id, ok := crud.ActorFrom(ctxAs(actorA))
	assert.True(t, ok)
	assert.Equal(t, actorA, id)
}
