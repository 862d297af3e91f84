package models

// AuthResult is the tagged outcome type returned by the auth service: a
// success carrying data, a failure carrying a user-facing message plus
// optional per-field errors and a machine error code, or a cancellation.
// Exactly one variant is populated; Data is nil unless Ok() reports true.
type AuthResult[T any] struct {
	Data         *T
	ErrorMessage string
	FieldErrors  map[string]string
	ErrorCode    string

	ok        bool
	cancelled bool
}

// Success wraps data in a successful result.
func Success[T any](data T) AuthResult[T] {
	return AuthResult[T]{Data: &data, ok: true}
}

// Failure builds a failed result. fieldErrors and code may be empty.
func Failure[T any](message string, fieldErrors map[string]string, code string) AuthResult[T] {
	return AuthResult[T]{ErrorMessage: message, FieldErrors: fieldErrors, ErrorCode: code}
}

// Cancelled builds the cancellation outcome. It is neither a success nor a
// failure; callers should not show an error for it.
func Cancelled[T any]() AuthResult[T] {
	return AuthResult[T]{cancelled: true}
}

// Ok reports whether the result is a success.
func (r AuthResult[T]) Ok() bool { return r.ok }

// IsCancelled reports whether the operation was cancelled by the caller.
func (r AuthResult[T]) IsCancelled() bool { return r.cancelled }
