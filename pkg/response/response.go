package response

import (
	"errors"
)

// Error is an error carrying the HTTP status it should be rendered with.
// Module-level sentinel errors are declared with NewError and mapped onto
// responses by pkg/handlerUtil.
type Error struct {
	Code int
	Err  error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Is(target error) bool {
	var t *Error
	ok := errors.As(target, &t)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.Err.Error() == t.Err.Error()
}

func NewError(code int, err string) error {
	return &Error{code, errors.New(err)}
}
