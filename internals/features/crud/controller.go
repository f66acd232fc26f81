// file: internals/features/crud/controller.go
package crud

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	helper "schoolku_backend/internals/helpers"
	"schoolku_backend/internals/helpers/apperr"
)

// Servicer is what the controller needs from a service.
type Servicer[T any, K comparable] interface {
	Create(ctx context.Context, row T) (T, error)
	RetrieveByID(ctx context.Context, key K) (T, error)
	RetrieveAll(ctx context.Context, p helper.Params) ([]T, int64, error)
	Modify(ctx context.Context, row T) (T, error)
	Delete(ctx context.Context, key K) (T, error)
	SetLocked(ctx context.Context, key K, locked bool) (T, error)
}

/* =======================================================
   CONTROLLER
   ======================================================= */

type Controller[T any, K comparable] struct {
	Service Servicer[T, K]
	Def     Definition[T, K]
}

func NewController[T any, K comparable](svc Servicer[T, K], def Definition[T, K]) *Controller[T, K] {
	return &Controller[T, K]{Service: svc, Def: def}
}

// reqCtx: context request + actor dari JWT (Locals "user_id")
func reqCtx(c *fiber.Ctx) context.Context {
	ctx := c.UserContext()
	if ctx == nil {
		ctx = context.Background()
	}
	if s, ok := c.Locals("user_id").(string); ok {
		if id, err := uuid.Parse(strings.TrimSpace(s)); err == nil {
			ctx = WithActor(ctx, id)
		}
	}
	return ctx
}

func (ctl *Controller[T, K]) badPayload() error {
	return apperr.Validation(ctl.Def.Name,
		apperr.InvalidInputf("Invalid %s payload.", ctl.Def.Name))
}

func (ctl *Controller[T, K]) parseKey(c *fiber.Ctx) (K, error) {
	key, err := ctl.Def.ParseKey(func(name string) string { return c.Params(name) })
	if err != nil {
		return key, apperr.Validation(ctl.Def.Name,
			apperr.InvalidInputf("Invalid %s id: %v.", ctl.Def.Name, err))
	}
	return key, nil
}

/* =======================================================
   ROUTES
   ======================================================= */

// POST /
func (ctl *Controller[T, K]) Create(c *fiber.Ctx) error {
	var row T
	if err := c.BodyParser(&row); err != nil {
		return apperr.Respond(c, ctl.badPayload())
	}

	out, err := ctl.Service.Create(reqCtx(c), row)
	if err != nil {
		return apperr.Respond(c, err)
	}
	return helper.JsonOK(c, "Created", out)
}

// GET /
func (ctl *Controller[T, K]) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, ctl.Def.DefaultSort, "desc", helper.AdminOpts)

	rows, total, err := ctl.Service.RetrieveAll(reqCtx(c), p)
	if err != nil {
		return apperr.Respond(c, err)
	}
	if rows == nil {
		rows = []T{}
	}
	return helper.JsonList(c, "ok", rows, helper.BuildMeta(total, p))
}

// GET /:id
func (ctl *Controller[T, K]) GetByID(c *fiber.Ctx) error {
	key, err := ctl.parseKey(c)
	if err != nil {
		return apperr.Respond(c, err)
	}

	out, err := ctl.Service.RetrieveByID(reqCtx(c), key)
	if err != nil {
		return apperr.Respond(c, err)
	}
	return helper.JsonOK(c, "OK", out)
}

// PUT /
func (ctl *Controller[T, K]) Modify(c *fiber.Ctx) error {
	var row T
	if err := c.BodyParser(&row); err != nil {
		return apperr.Respond(c, ctl.badPayload())
	}

	out, err := ctl.Service.Modify(reqCtx(c), row)
	if err != nil {
		return apperr.Respond(c, err)
	}
	return helper.JsonUpdated(c, "Updated", out)
}

// DELETE /:id
func (ctl *Controller[T, K]) Delete(c *fiber.Ctx) error {
	key, err := ctl.parseKey(c)
	if err != nil {
		return apperr.Respond(c, err)
	}

	out, err := ctl.Service.Delete(reqCtx(c), key)
	if err != nil {
		return apperr.Respond(c, err)
	}
	return helper.JsonDeleted(c, "Deleted", out)
}

// POST /:id/lock
func (ctl *Controller[T, K]) Lock(c *fiber.Ctx) error { return ctl.setLocked(c, true) }

// POST /:id/unlock
func (ctl *Controller[T, K]) Unlock(c *fiber.Ctx) error { return ctl.setLocked(c, false) }

func (ctl *Controller[T, K]) setLocked(c *fiber.Ctx, locked bool) error {
	key, err := ctl.parseKey(c)
	if err != nil {
		return apperr.Respond(c, err)
	}

	out, err := ctl.Service.SetLocked(reqCtx(c), key, locked)
	if err != nil {
		return apperr.Respond(c, err)
	}
	msg := "Unlocked"
	if locked {
		msg = "Locked"
	}
	return helper.JsonUpdated(c, msg, out)
}

// Mount registers the standard entity routes under path.
func Mount[T any, K comparable](r fiber.Router, path string, ctl *Controller[T, K]) fiber.Router {
	g := r.Group(path)

	g.Post("/", ctl.Create)
	g.Get("/", ctl.List)
	g.Put("/", ctl.Modify)

	g.Get(ctl.Def.KeyParams, ctl.GetByID)
	g.Delete(ctl.Def.KeyParams, ctl.Delete)
	g.Post(ctl.Def.KeyParams+"/lock", ctl.Lock)
	g.Post(ctl.Def.KeyParams+"/unlock", ctl.Unlock)

	return g
}
