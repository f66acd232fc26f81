// file: internals/features/crud/service.go
package crud

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	helper "schoolku_backend/internals/helpers"
	"schoolku_backend/internals/helpers/apperr"
)

// Service sequences validation and persistence for one entity type.
// Every error it returns is an *apperr.Error.
type Service[T any, K comparable] struct {
	def      Definition[T, K]
	store    Storage[T, K]
	validate *validator.Validate
	now      func() time.Time
}

func NewService[T any, K comparable](def Definition[T, K], store Storage[T, K], v *validator.Validate) *Service[T, K] {
	if v == nil {
		v = NewValidator()
	}
	return &Service[T, K]{
		def:      def,
		store:    store,
		validate: v,
		// presisi postgres = mikrodetik; dipotong supaya hasil baca ulang identik
		now: func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
	}
}

// WithClock swaps the time source (tests).
func (s *Service[T, K]) WithClock(now func() time.Time) *Service[T, K] {
	s.now = now
	return s
}

func (s *Service[T, K]) Definition() Definition[T, K] { return s.def }

func (s *Service[T, K]) Create(ctx context.Context, row T) (T, error) {
	var zero T

	if s.def.NewKey != nil {
		s.def.NewKey(&row)
	}

	actor := s.def.Audit(&row).CreatedBy
	if id, ok := ActorFrom(ctx); ok {
		actor = id
	}
	s.def.Audit(&row).stampCreated(actor, s.now())

	if err := s.validateOnCreate(ctx, &row); err != nil {
		return zero, err
	}
	if err := s.prepare(ctx, &row, nil); err != nil {
		return zero, err
	}
	if err := s.store.Create(ctx, &row); err != nil {
		return zero, apperr.FromStorage(s.def.Name, s.def.KeyOf(&row), err)
	}
	return s.def.present(row), nil
}

func (s *Service[T, K]) RetrieveByID(ctx context.Context, key K) (T, error) {
	row, err := s.validateOnRetrieveOrDelete(ctx, key)
	if err != nil {
		return row, err
	}
	return s.def.present(row), nil
}

func (s *Service[T, K]) RetrieveAll(ctx context.Context, p helper.Params) ([]T, int64, error) {
	rows, total, err := s.store.RetrieveAll(ctx, p)
	if err != nil {
		return nil, 0, apperr.FromStorage(s.def.Name, "*", err)
	}
	for i := range rows {
		rows[i] = s.def.present(rows[i])
	}
	return rows, total, nil
}

func (s *Service[T, K]) Modify(ctx context.Context, row T) (T, error) {
	var zero T

	stored, err := s.validateOnModify(ctx, &row)
	if err != nil {
		return zero, err
	}

	in, was := s.def.Audit(&row), s.def.Audit(&stored)
	actor := in.UpdatedBy
	if id, ok := ActorFrom(ctx); ok {
		actor = id
	}
	if actor == uuid.Nil {
		return zero, apperr.Validation(s.def.Name,
			apperr.InvalidInput(s.def.Name, map[string]string{"updated_by": "is required"}))
	}

	// creator & lock hanya dari storage
	in.CreatedBy = was.CreatedBy
	in.CreatedDate = was.CreatedDate
	in.IsLocked = was.IsLocked
	in.DeletedAt = was.DeletedAt
	in.stampUpdated(actor, s.now())

	if err := s.prepare(ctx, &row, &stored); err != nil {
		return zero, err
	}
	if err := s.store.Update(ctx, &row); err != nil {
		return zero, apperr.FromStorage(s.def.Name, s.def.KeyOf(&row), err)
	}
	return s.def.present(row), nil
}

// Delete returns the entity as it was before removal.
func (s *Service[T, K]) Delete(ctx context.Context, key K) (T, error) {
	row, err := s.validateOnRetrieveOrDelete(ctx, key)
	if err != nil {
		return row, err
	}
	if err := s.store.Delete(ctx, key); err != nil {
		var zero T
		return zero, apperr.FromStorage(s.def.Name, key, err)
	}
	return s.def.present(row), nil
}

// SetLocked toggles the administrative lock. Locked rows can still be unlocked.
// The actor must come from the request context.
func (s *Service[T, K]) SetLocked(ctx context.Context, key K, locked bool) (T, error) {
	var zero T

	// lock/unlock tanpa JWT tidak punya sumber actor lain
	actor, ok := ActorFrom(ctx)
	if !ok {
		return zero, apperr.Validation(s.def.Name,
			apperr.InvalidInput(s.def.Name, map[string]string{"updated_by": "is required"}))
	}

	row, err := s.store.RetrieveByID(ctx, key)
	if err != nil {
		return zero, apperr.FromStorage(s.def.Name, key, err)
	}

	a := s.def.Audit(&row)
	a.IsLocked = locked
	a.stampUpdated(actor, s.now())

	if err := s.store.Update(ctx, &row); err != nil {
		return zero, apperr.FromStorage(s.def.Name, key, err)
	}
	return s.def.present(row), nil
}

func (s *Service[T, K]) prepare(ctx context.Context, row *T, stored *T) error {
	if s.def.Prepare == nil {
		return nil
	}
	if err := s.def.Prepare(ctx, row, stored); err != nil {
		return apperr.Service(s.def.Name, err)
	}
	return nil
}
