// SPDX-License-Identifier: MIT

package result_test

import (
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/katalvlaran/pjplot/result"
	"github.com/stretchr/testify/require"
)

func TestOkNeverFaults(t *testing.T) {
	r := result.Ok([]int{1, 2, 3})
	require.True(t, r.IsOk())
	require.False(t, r.IsFailure())
	require.NoError(t, r.Err())

	v, ok := r.Value()
	require.True(t, ok)
	require.Equal(t, []int{1, 2, 3}, v)

	_, bad := r.Failure()
	require.False(t, bad)

	require.NotPanics(t, func() { v = r.Unwrap() })
	require.Equal(t, []int{1, 2, 3}, v)
	require.Equal(t, "Ok([1 2 3])", r.String())
}

func TestFailureEscalatesOnlyOnUnwrap(t *testing.T) {
	const msg = "background colour 42 is outside the enumeration"
	r := result.Fail[string](msg)

	// Checked access never faults.
	require.NotPanics(t, func() {
		require.True(t, r.IsFailure())
		_, ok := r.Value()
		require.False(t, ok)
		f, bad := r.Failure()
		require.True(t, bad)
		require.Equal(t, msg, f.Message())
		require.EqualError(t, r.Err(), msg)
		require.Equal(t, "fallback", r.UnwrapOr("fallback"))
	})

	// Unchecked access faults with the original message.
	require.PanicsWithError(t, msg, func() { _ = r.Unwrap() })

	var payload any
	func() {
		defer func() { payload = recover() }()
		_ = r.Unwrap()
	}()
	esc, ok := payload.(*result.EscalationError)
	require.True(t, ok)
	require.Equal(t, msg, esc.Message)
	require.True(t, errors.Is(esc, result.ErrUnwrapFailure))
}

func TestZeroResultIsFailure(t *testing.T) {
	var r result.Result[int]
	require.True(t, r.IsFailure())
	require.Panics(t, func() { _ = r.Unwrap() })
}

func TestFailf(t *testing.T) {
	r := result.Failf[int]("bad value %d", 7)
	require.EqualError(t, r.Err(), "bad value 7")
	require.Equal(t, "Failure(bad value 7)", r.String())
}

func TestMapAndThen(t *testing.T) {
	parse := func(s string) result.Result[int] {
		n, err := strconv.Atoi(s)
		if err != nil {
			return result.Failf[int]("parse %q: %v", s, err)
		}
		return result.Ok(n)
	}

	doubled := result.Map(parse("21"), func(n int) int { return n * 2 })
	require.Equal(t, 42, doubled.Unwrap())

	failed := result.Map(parse("x"), func(n int) string { return fmt.Sprint(n) })
	require.True(t, failed.IsFailure())
	f, _ := failed.Failure()
	require.Contains(t, f.Message(), `parse "x"`)

	chained := result.AndThen(result.Ok("5"), parse)
	require.Equal(t, 5, chained.Unwrap())

	stopped := result.AndThen(result.Fail[string]("upstream"), parse)
	require.EqualError(t, stopped.Err(), "upstream")
}
