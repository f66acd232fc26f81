// file: internals/features/crud/keys.go
package crud

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ParseUUIDParam membaca satu path param sebagai UUID.
func ParseUUIDParam(name string) func(param func(string) string) (uuid.UUID, error) {
	return func(param func(string) string) (uuid.UUID, error) {
		raw := strings.TrimSpace(param(name))
		id, err := uuid.Parse(raw)
		if err != nil {
			return uuid.Nil, fmt.Errorf("%s %q is not a uuid", name, raw)
		}
		return id, nil
	}
}

// WhereUUID: "column = ?" untuk key tunggal.
func WhereUUID(column string) func(uuid.UUID) (string, []any) {
	return func(id uuid.UUID) (string, []any) {
		return column + " = ?", []any{id}
	}
}

// AssignUUID mengisi key kosong dengan uuid baru.
func AssignUUID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}
