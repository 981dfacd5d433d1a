package apperror_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/next-trace/scg-apperror/apperror"
)

func TestFromUnknown_PlainValue(t *testing.T) {
	t.Parallel()

	e := apperror.FromUnknown("plain string")
	require.Equal(t, apperror.KindUnexpected, e.Kind())
	require.Equal(t, "plain string", e.Message())

	e = apperror.FromUnknown(42)
	require.Equal(t, apperror.KindUnexpected, e.Kind())
	require.Equal(t, "42", e.Message())
}

func TestFromUnknown_IdentityOnOwnType(t *testing.T) {
	t.Parallel()

	orig := apperror.NotFound("User", "123")
	require.Same(t, orig, apperror.FromUnknown(orig))
}

func TestFromUnknown_ForeignError(t *testing.T) {
	t.Parallel()

	plain := errors.New("boom")
	e := apperror.FromUnknown(plain)
	require.Equal(t, apperror.KindUnexpected, e.Kind())
	require.Equal(t, "boom", e.Message())
	require.Nil(t, e.Unwrap())
}

func TestFromUnknown_PreservesForeignCause(t *testing.T) {
	t.Parallel()

	root := errors.New("connection reset")
	foreign := fmt.Errorf("dial failed: %w", root)

	e := apperror.FromUnknown(foreign)
	require.Equal(t, "dial failed: connection reset", e.Message())

	cause, ok := e.Unwrap().(*apperror.Error)
	require.True(t, ok)
	require.Equal(t, apperror.KindUnexpected, cause.Kind())
	require.Equal(t, "connection reset", cause.Message())
}

func TestTryCatch_Ok(t *testing.T) {
	t.Parallel()

	res := apperror.TryCatch(func() (int, error) { return 42, nil })
	require.True(t, res.IsOk())
	require.Equal(t, 42, res.MustGet())
}

func TestTryCatch_Error(t *testing.T) {
	t.Parallel()

	failure := errors.New("nope")
	res := apperror.TryCatch(func() (int, error) { return 0, failure })

	require.True(t, res.IsError())
	require.True(t, apperror.Is(res.Error(), apperror.KindUnexpected))
	require.Equal(t, "nope", res.Error().(*apperror.Error).Message())
}

func TestTryCatch_ContainsPanic(t *testing.T) {
	t.Parallel()

	res := apperror.TryCatch(func() (int, error) { panic("kaboom") })

	require.True(t, res.IsError())

	e, ok := res.Error().(*apperror.Error)
	require.True(t, ok)
	require.Equal(t, apperror.KindUnexpected, e.Kind())
	require.Equal(t, "kaboom", e.Message())
}

func TestTryCatch_PanicWithTypedError(t *testing.T) {
	t.Parallel()

	thrown := apperror.Validation("email", "must not be empty")
	res := apperror.TryCatch(func() (string, error) { panic(thrown) })

	require.True(t, res.IsError())
	require.Same(t, thrown, res.Error())
}

func TestTryCatchWith_CustomMapper(t *testing.T) {
	t.Parallel()

	res := apperror.TryCatchWith(
		func() (int, error) { return 0, errors.New("gateway unreachable") },
		func(v any) *apperror.Error {
			return apperror.Network("https://gw.internal", 0, apperror.WithField("raw", fmt.Sprint(v)))
		},
	)

	require.True(t, res.IsError())
	require.True(t, apperror.Is(res.Error(), apperror.KindNetwork))
}

func TestWrapErr(t *testing.T) {
	t.Parallel()

	// A failure gains a context head.
	failed := apperror.Err[int](apperror.Database("SELECT", "Timeout"))
	wrapped := apperror.WrapErr(failed, "failed to get user")

	require.True(t, wrapped.IsError())
	require.Equal(t, "[AppError] failed to get user -> [DatabaseError] SELECT: Timeout",
		wrapped.Error().(*apperror.Error).Chain())

	// A success passes through unchanged.
	ok := apperror.WrapErr(apperror.Ok(7), "ignored")
	require.True(t, ok.IsOk())
	require.Equal(t, 7, ok.MustGet())
}

func TestTryCatchAsync_Resolves(t *testing.T) {
	t.Parallel()

	v, err := apperror.TryCatchAsync(func() (string, error) { return "done", nil }).Collect()
	require.NoError(t, err)
	require.Equal(t, "done", v)
}

func TestTryCatchAsync_RejectsOnErrorAndPanic(t *testing.T) {
	t.Parallel()

	_, err := apperror.TryCatchAsync(func() (int, error) { return 0, errors.New("late failure") }).Collect()
	require.True(t, apperror.Is(err, apperror.KindUnexpected))

	_, err = apperror.TryCatchAsync(func() (int, error) { panic("async kaboom") }).Collect()
	require.Equal(t, "async kaboom", err.(*apperror.Error).Message())
}

func TestWrapErrAsync(t *testing.T) {
	t.Parallel()

	f := apperror.TryCatchAsync(func() (int, error) {
		return 0, apperror.Database("SELECT", "Connection refused")
	})

	_, err := apperror.WrapErrAsync(f, "failed to load user profile").Collect()

	require.True(t, apperror.Is(err, apperror.KindApp))
	require.True(t, apperror.Is(err, apperror.KindDatabase))
	require.Equal(t, "failed to load user profile", err.(*apperror.Error).Message())
}

func TestResultContainerInterop(t *testing.T) {
	t.Parallel()

	// The re-exported container keeps its own combinators usable on our
	// results.
	res := apperror.TryCatch(func() (int, error) { return 2, nil }).
		Map(func(v int) (int, error) { return v * 21, nil })

	require.Equal(t, 42, res.MustGet())

	get := func() (int, error) { return 0, apperror.Timeout("fetch", 0) }
	out := apperror.WrapErr(apperror.TryCatch(get), "handler failed").
		Match(
			func(v int) (int, error) { return v, nil },
			func(err error) (int, error) { return -1, nil },
		)

	require.Equal(t, -1, out.MustGet())
}
