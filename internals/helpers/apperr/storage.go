// file: internals/helpers/apperr/storage.go
package apperr

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// SQLSTATE yang punya arti khusus buat taxonomy.
const (
	pgUniqueViolation      = "23505"
	pgForeignKeyViolation  = "23503"
	pgCheckViolation       = "23514"
	pgNotNullViolation     = "23502"
	pgLockNotAvailable     = "55P03"
	pgSerializationFailure = "40001"
)

// FromStorage reclassifies a raw persistence failure into the taxonomy.
// Already classified errors pass through untouched.
func FromStorage(entity string, id any, err error) error {
	if err == nil {
		return nil
	}
	if e, ok := As(err); ok {
		return e
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Validation(entity, NotFound(entity, id))
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return Validation(entity, AlreadyExists(entity, id, err))
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return Dependency(entity, Failed(err))
	}

	switch sqlState(err) {
	case pgUniqueViolation:
		return Validation(entity, AlreadyExists(entity, id, err))
	case pgForeignKeyViolation, pgCheckViolation, pgNotNullViolation:
		c := InvalidInputf("Invalid %s reference or constraint: %v.", entity, id)
		c.Err = err
		return Validation(entity, c)
	case pgLockNotAvailable, pgSerializationFailure:
		return Dependency(entity, Locked(entity, id, err))
	}

	return Dependency(entity, Failed(err))
}

// sqlState mengambil kode SQLSTATE dari pgx maupun lib/pq.
func sqlState(err error) string {
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return pgxErr.Code
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}
