package apperror

import "github.com/samber/mo"

// Result and Future re-export the mo containers so callers of this package
// rarely need a second import. The container API itself (Map, MapErr,
// FlatMap, Match, IsOk/IsError, OrElse, ...) is mo's, not reimplemented
// here.
type (
	Result[T any] = mo.Result[T]
	Future[T any] = mo.Future[T]
)

// Ok wraps a success value.
func Ok[T any](value T) Result[T] { return mo.Ok(value) }

// Err wraps a failure.
func Err[T any](err error) Result[T] { return mo.Err[T](err) }

// TryCatch runs fn inside a scoped failure boundary and never re-raises:
// a returned error or a panic becomes Err(FromUnknown(x)), a normal return
// becomes Ok(value).
func TryCatch[T any](fn func() (T, error)) Result[T] {
	return TryCatchWith(fn, FromUnknown)
}

// TryCatchWith is TryCatch with a caller-supplied failure mapper. The mapper
// receives either the returned error or the recovered panic value.
func TryCatchWith[T any](fn func() (T, error), mapErr func(any) *Error) (res Result[T]) {
	defer func() {
		if r := recover(); r != nil {
			res = mo.Err[T](mapErr(r))
		}
	}()

	v, err := fn()
	if err != nil {
		return mo.Err[T](mapErr(err))
	}

	return mo.Ok(v)
}

// TryCatchAsync runs fn on its own goroutine behind the same boundary as
// TryCatch and returns a future that settles once fn returns or panics.
// No cancellation is layered on top; cancellation, if needed, belongs to
// the operation itself and surfaces as its failure.
func TryCatchAsync[T any](fn func() (T, error)) *Future[T] {
	return TryCatchAsyncWith(fn, FromUnknown)
}

// TryCatchAsyncWith is TryCatchAsync with a caller-supplied failure mapper.
func TryCatchAsyncWith[T any](fn func() (T, error), mapErr func(any) *Error) *Future[T] {
	return mo.NewFuture(func(resolve func(T), reject func(error)) {
		defer func() {
			if r := recover(); r != nil {
				reject(mapErr(r))
			}
		}()

		v, err := fn()
		if err != nil {
			reject(mapErr(err))
			return
		}

		resolve(v)
	})
}

// WrapErr adds context to a failed Result: the failure is replaced with
// Wrap(failure, message); a success passes through untouched.
func WrapErr[T any](r Result[T], message string) Result[T] {
	return r.MapErr(func(err error) (T, error) {
		var zero T
		return zero, Wrap(err, message)
	})
}

// WrapErrAsync adds context to a future's eventual failure; a resolved value
// passes through untouched.
func WrapErrAsync[T any](f *Future[T], message string) *Future[T] {
	return f.Catch(func(err error) (T, error) {
		var zero T
		return zero, Wrap(err, message)
	})
}
