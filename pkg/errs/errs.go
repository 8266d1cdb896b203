// Package errs carries the domain error taxonomy shared by the dao, service and
// handler layers. Only the HTTP layer turns a Kind into a status code.
package errs

import "errors"

type Kind uint8

const (
	Internal Kind = iota
	Validation
	Unauthorized
	NotFound
	Conflict
)

func (k Kind) String() string {
	switch k {
	case Validation:
		return "validation"
	case Unauthorized:
		return "unauthorized"
	case NotFound:
		return "not_found"
	case Conflict:
		return "conflict"
	default:
		return "internal"
	}
}

type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

func ValidationError(msg string) *Error { return New(Validation, msg) }

func UnauthorizedError(msg string) *Error { return New(Unauthorized, msg) }

func NotFoundError(msg string) *Error { return New(NotFound, msg) }

func ConflictError(msg string) *Error { return New(Conflict, msg) }

// KindOf reports the Kind of the first *Error in err's chain, Internal otherwise.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}
