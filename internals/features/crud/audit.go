// file: internals/features/crud/audit.go
package crud

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Audit di-embed (anonymous) ke setiap model, dengan embeddedPrefix per tabel:
//
//	crud.Audit `gorm:"embedded;embeddedPrefix:classroom_"`
type Audit struct {
	CreatedBy   uuid.UUID `json:"created_by" gorm:"type:uuid;column:created_by;not null"`
	CreatedDate time.Time `json:"created_date" gorm:"column:created_date;not null"`
	UpdatedBy   uuid.UUID `json:"updated_by" gorm:"type:uuid;column:updated_by;not null"`
	UpdatedDate time.Time `json:"updated_date" gorm:"column:updated_date;not null"`

	IsLocked bool `json:"is_locked" gorm:"column:is_locked;not null;default:false"`

	DeletedAt gorm.DeletedAt `json:"-" gorm:"column:deleted_at;index"`
}

// stampCreated: lock & soft-delete state never come from the request body.
func (a *Audit) stampCreated(actor uuid.UUID, at time.Time) {
	a.IsLocked = false
	a.DeletedAt = gorm.DeletedAt{}
	a.CreatedBy = actor
	a.CreatedDate = at
	a.UpdatedBy = actor
	a.UpdatedDate = at
}

func (a *Audit) stampUpdated(actor uuid.UUID, at time.Time) {
	a.UpdatedBy = actor
	a.UpdatedDate = at
}

/* =======================================================
   ACTOR (user yang sedang request)
   ======================================================= */

type actorKey struct{}

// WithActor attaches the acting user id used for audit stamping.
func WithActor(ctx context.Context, userID uuid.UUID) context.Context {
	if userID == uuid.Nil {
		return ctx
	}
	return context.WithValue(ctx, actorKey{}, userID)
}

func ActorFrom(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(actorKey{}).(uuid.UUID)
	return id, ok && id != uuid.Nil
}
