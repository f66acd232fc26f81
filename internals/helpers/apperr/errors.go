// file: internals/helpers/apperr/errors.go
package apperr

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

/* =======================================================
   TAXONOMY
   ======================================================= */

// Category = klasifikasi luar (dibaca pertama oleh controller).
type Category int

const (
	CategoryService Category = iota
	CategoryValidation
	CategoryDependency
)

func (c Category) String() string {
	switch c {
	case CategoryValidation:
		return "validation"
	case CategoryDependency:
		return "dependency"
	default:
		return "service"
	}
}

// Kind = alasan paling spesifik (inner cause).
type Kind int

const (
	KindUnknown Kind = iota
	KindInvalidInput
	KindNotFound
	KindAlreadyExists
	KindLocked
	KindFailed
)

func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid_input"
	case KindNotFound:
		return "not_found"
	case KindAlreadyExists:
		return "already_exists"
	case KindLocked:
		return "locked"
	case KindFailed:
		return "failed"
	default:
		return "unknown"
	}
}

/* =======================================================
   INNER CAUSE
   ======================================================= */

// Cause is the single inner reason carried by an *Error.
type Cause struct {
	Kind    Kind
	Message string
	// Fields holds per-field problems for InvalidInput (json name → rule).
	Fields map[string]string
	Err    error
}

func (c *Cause) Error() string { return c.Message }
func (c *Cause) Unwrap() error { return c.Err }

// InvalidInput builds a cause listing field problems in a stable order.
func InvalidInput(entity string, fields map[string]string) *Cause {
	return &Cause{
		Kind:    KindInvalidInput,
		Message: fmt.Sprintf("Invalid %s. %s", entity, describeFields(fields)),
		Fields:  fields,
	}
}

// InvalidInputf is InvalidInput without field details.
func InvalidInputf(format string, args ...any) *Cause {
	return &Cause{Kind: KindInvalidInput, Message: fmt.Sprintf(format, args...)}
}

func NotFound(entity string, id any) *Cause {
	return &Cause{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("Couldn't find %s with id: %v.", entity, id),
	}
}

func AlreadyExists(entity string, id any, err error) *Cause {
	return &Cause{
		Kind:    KindAlreadyExists,
		Message: fmt.Sprintf("%s with the same id already exists: %v.", capitalize(entity), id),
		Err:     err,
	}
}

func Locked(entity string, id any, err error) *Cause {
	return &Cause{
		Kind:    KindLocked,
		Message: fmt.Sprintf("Locked %s record exception, please try again later: %v.", entity, id),
		Err:     err,
	}
}

// Failed wraps a raw collaborator failure (storage, driver, context).
func Failed(err error) *Cause {
	msg := "collaborator failure"
	if err != nil {
		msg = err.Error()
	}
	return &Cause{Kind: KindFailed, Message: msg, Err: err}
}

func unknown(err error) *Cause {
	msg := "unexpected failure"
	if err != nil {
		msg = err.Error()
	}
	return &Cause{Kind: KindUnknown, Message: msg, Err: err}
}

/* =======================================================
   OUTER ERROR
   ======================================================= */

// Error is the outer, categorised failure. It owns exactly one Cause.
type Error struct {
	Category Category
	Entity   string
	Message  string
	Cause    *Cause
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error {
	if e.Cause == nil {
		return nil
	}
	return e.Cause
}

// Kind returns the inner cause kind (KindUnknown when absent).
func (e *Error) Kind() Kind {
	if e.Cause == nil {
		return KindUnknown
	}
	return e.Cause.Kind
}

// InnerMessage returns the inner cause message, falling back to the outer one.
func (e *Error) InnerMessage() string {
	if e.Cause == nil || strings.TrimSpace(e.Cause.Message) == "" {
		return e.Message
	}
	return e.Cause.Message
}

func Validation(entity string, cause *Cause) *Error {
	return &Error{
		Category: CategoryValidation,
		Entity:   entity,
		Message:  fmt.Sprintf("%s validation error occurred, please try again.", capitalize(entity)),
		Cause:    cause,
	}
}

func Dependency(entity string, cause *Cause) *Error {
	return &Error{
		Category: CategoryDependency,
		Entity:   entity,
		Message:  fmt.Sprintf("%s dependency error occurred, contact support.", capitalize(entity)),
		Cause:    cause,
	}
}

// Service wraps an unclassified failure. An err that is already an *Error is returned as is.
func Service(entity string, err error) *Error {
	if e, ok := As(err); ok {
		return e
	}
	return &Error{
		Category: CategoryService,
		Entity:   entity,
		Message:  fmt.Sprintf("%s service error occurred, contact support.", capitalize(entity)),
		Cause:    unknown(err),
	}
}

/* =======================================================
   HELPERS
   ======================================================= */

// As reports whether err is (or wraps) an *Error.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// Is reports whether err is classified with the given category and kind.
func Is(err error, cat Category, kind Kind) bool {
	e, ok := As(err)
	return ok && e.Category == cat && e.Kind() == kind
}

func describeFields(fields map[string]string) string {
	if len(fields) == 0 {
		return "Please check your input and try again."
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+" "+fields[k])
	}
	return strings.Join(parts, "; ") + "."
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
