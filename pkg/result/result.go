// Package result provides a tagged-union outcome type used across the
// domain and application layers in place of errors for expected
// failure paths. A Result is either a success carrying a value or a
// failure carrying a typed *Error; infrastructure problems keep using
// plain Go errors.
package result

// Unit is the payload of a success that carries no value.
type Unit struct{}

// Result holds either a value or an *Error, never both. Fields are
// unexported so callers go through the accessors or Match.
type Result[T any] struct {
	value T
	err   *Error
	ok    bool
}

// Ok wraps a success value.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value, ok: true}
}

// Empty is a success with no payload.
func Empty() Result[Unit] {
	return Ok(Unit{})
}

// Err wraps a typed failure. A nil error is a programmer error: a
// failure without a cause must not be constructible.
func Err[T any](e *Error) Result[T] {
	if e == nil {
		panic("result: Err called with nil *Error")
	}
	return Result[T]{err: e}
}

// ErrOf rewraps the failure of one Result into a Result of another
// payload type. Panics if r is a success.
func ErrOf[T, U any](r Result[U]) Result[T] {
	return Err[T](r.Err())
}

func (r Result[T]) IsSuccess() bool { return r.ok }
func (r Result[T]) IsFailure() bool { return !r.ok }

// Value returns the success payload. Panics on a failure so the
// undefined value can never leak into the success path; branch with
// Match or IsSuccess first.
func (r Result[T]) Value() T {
	if !r.ok {
		panic("result: Value called on failure: " + r.err.Error())
	}
	return r.value
}

// Err returns the failure payload. Panics on a success.
func (r Result[T]) Err() *Error {
	if r.ok {
		panic("result: Err called on success")
	}
	return r.err
}

// Match dispatches exhaustively over the two variants.
func Match[T, U any](r Result[T], onOk func(T) U, onErr func(*Error) U) U {
	if r.ok {
		return onOk(r.value)
	}
	return onErr(r.err)
}

// Map transforms a success value, passing failures through unchanged.
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	if !r.ok {
		return Err[U](r.err)
	}
	return Ok(fn(r.value))
}

// FlatMap chains Result-returning operations.
func FlatMap[T, U any](r Result[T], fn func(T) Result[U]) Result[U] {
	if !r.ok {
		return Err[U](r.err)
	}
	return fn(r.value)
}
