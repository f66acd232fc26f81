// file: internals/features/crud/definition.go
package crud

import (
	"context"
)

// Definition describes one entity type to the generic service, storage and controller.
type Definition[T any, K comparable] struct {
	// Name dipakai di pesan error ("classroom", "calendar entry", ...).
	Name string

	Audit func(*T) *Audit
	KeyOf func(*T) K

	// NewKey assigns a fresh key when the client sent none. nil = key wajib dari client.
	NewKey func(*T)

	// KeyParams: suffix path untuk satu entity, mis. "/:id".
	KeyParams string
	ParseKey  func(param func(string) string) (K, error)
	KeyWhere  func(K) (string, []any)

	// Check: aturan tambahan di luar tag `validate` (json field → pesan).
	Check func(*T) map[string]string

	// Prepare runs right before persisting. stored is nil on create.
	// Unclassified errors become service failures.
	Prepare func(ctx context.Context, row *T, stored *T) error

	// Clone menyalin field slice/pointer (datatypes.JSON, pq arrays, *string) supaya
	// MemoryStorage tidak berbagi backing array dengan caller. nil = copy nilai biasa.
	Clone func(*T)

	// Present membersihkan field rahasia sebelum entity keluar dari service.
	Present func(*T)

	SortColumns map[string]string
	DefaultSort string
}

func (d Definition[T, K]) present(row T) T {
	if d.Present != nil {
		d.Present(&row)
	}
	return row
}
