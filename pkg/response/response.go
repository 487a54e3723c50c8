package response

import "errors"

// Error is a sentinel carrying the HTTP status an API error maps to.
// Two errors match when both the status and the message agree, which is
// what lets errors.Is work across wrapped copies of the same sentinel.
type Error struct {
	Code int
	Err  error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code && e.Err.Error() == t.Err.Error()
}

func NewError(code int, msg string) error {
	return &Error{Code: code, Err: errors.New(msg)}
}
