// Package assert holds the hard checks. A failed check records a failure and
// stops the test body; statements after it do not run.
package assert

import (
	"cmp"
	"runtime"

	"squall/internal/check"
	"squall/pkg/squall/core"
)

// True checks that cond holds.
func True(t core.T, cond bool, format string, args ...any) bool {
	return check.True(check.Hard, t, cond, format, args...)
}

// False checks that cond does not hold.
func False(t core.T, cond bool, format string, args ...any) bool {
	return check.False(check.Hard, t, cond, format, args...)
}

func Eq[V comparable](t core.T, a, b V, format string, args ...any) bool {
	return check.Eq(check.Hard, t, a, b, format, args...)
}

func Ne[V comparable](t core.T, a, b V, format string, args ...any) bool {
	return check.Ne(check.Hard, t, a, b, format, args...)
}

// Lt checks a < b.
func Lt[V cmp.Ordered](t core.T, a, b V, format string, args ...any) bool {
	return check.Lt(check.Hard, t, a, b, format, args...)
}

func Le[V cmp.Ordered](t core.T, a, b V, format string, args ...any) bool {
	return check.Le(check.Hard, t, a, b, format, args...)
}

func Gt[V cmp.Ordered](t core.T, a, b V, format string, args ...any) bool {
	return check.Gt(check.Hard, t, a, b, format, args...)
}

func Ge[V cmp.Ordered](t core.T, a, b V, format string, args ...any) bool {
	return check.Ge(check.Hard, t, a, b, format, args...)
}

func StrEq(t core.T, a, b string, format string, args ...any) bool {
	return check.StrEq(check.Hard, t, a, b, format, args...)
}

func StrNe(t core.T, a, b string, format string, args ...any) bool {
	return check.StrNe(check.Hard, t, a, b, format, args...)
}

// StrCaseEq compares a and b ignoring case.
func StrCaseEq(t core.T, a, b string, format string, args ...any) bool {
	return check.StrCaseEq(check.Hard, t, a, b, format, args...)
}

func StrCaseNe(t core.T, a, b string, format string, args ...any) bool {
	return check.StrCaseNe(check.Hard, t, a, b, format, args...)
}

// Fail records an unconditional failure and stops the test body.
func Fail(t core.T, format string, args ...any) {
	check.Fail(check.Hard, t, format, args...)
}

// Succeed marks an explicit success and ends the test body.
func Succeed(t core.T) {
	check.Succeed(t)
	runtime.Goexit()
}
