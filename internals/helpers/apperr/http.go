// file: internals/helpers/apperr/http.go
package apperr

import (
	"github.com/gofiber/fiber/v2"

	helper "schoolku_backend/internals/helpers"
)

// Outcome is the HTTP translation of a failure.
type Outcome struct {
	Status  int
	Message string
	Fields  map[string]string
}

type messageSource int

const (
	innerMessage messageSource = iota
	outerMessage
)

// rule: anyKind = berlaku untuk semua kind dalam category tsb.
type rule struct {
	category Category
	kind     Kind
	anyKind  bool
	status   int
	source   messageSource
}

// rules dievaluasi berurutan; pasangan (category, kind) harus di atas fallback category-only.
var rules = []rule{
	{category: CategoryValidation, kind: KindAlreadyExists, status: fiber.StatusConflict, source: innerMessage},
	{category: CategoryValidation, kind: KindNotFound, status: fiber.StatusNotFound, source: innerMessage},
	{category: CategoryDependency, kind: KindLocked, status: fiber.StatusLocked, source: innerMessage},

	{category: CategoryValidation, anyKind: true, status: fiber.StatusBadRequest, source: innerMessage},
	{category: CategoryDependency, anyKind: true, status: fiber.StatusInternalServerError, source: outerMessage},
	{category: CategoryService, anyKind: true, status: fiber.StatusInternalServerError, source: outerMessage},
}

const unclassifiedMessage = "Internal server error, contact support."

// Resolve maps an error to its HTTP outcome. Errors outside the taxonomy
// are treated as service failures.
func Resolve(err error) Outcome {
	e, ok := As(err)
	if !ok {
		return Outcome{Status: fiber.StatusInternalServerError, Message: unclassifiedMessage}
	}
	for _, r := range rules {
		if r.category != e.Category {
			continue
		}
		if !r.anyKind && r.kind != e.Kind() {
			continue
		}
		out := Outcome{Status: r.status, Message: e.Message}
		if r.source == innerMessage {
			out.Message = e.InnerMessage()
			if e.Cause != nil {
				out.Fields = e.Cause.Fields
			}
		}
		return out
	}
	return Outcome{Status: fiber.StatusInternalServerError, Message: e.Message}
}

// Respond writes the error envelope for err.
func Respond(c *fiber.Ctx, err error) error {
	out := Resolve(err)
	if len(out.Fields) > 0 {
		return helper.JsonErrorWithDetails(c, out.Status, out.Message, out.Fields)
	}
	return helper.JsonError(c, out.Status, out.Message)
}
