// Package expect holds the soft checks. A failed check fails the test but the
// body keeps running. Every check returns whether it held.
package expect

import (
	"cmp"

	"squall/internal/check"
	"squall/pkg/squall/core"
)

func True(t core.T, cond bool, format string, args ...any) bool {
	return check.True(check.Soft, t, cond, format, args...)
}

func False(t core.T, cond bool, format string, args ...any) bool {
	return check.False(check.Soft, t, cond, format, args...)
}

func Eq[V comparable](t core.T, a, b V, format string, args ...any) bool {
	return check.Eq(check.Soft, t, a, b, format, args...)
}

func Ne[V comparable](t core.T, a, b V, format string, args ...any) bool {
	return check.Ne(check.Soft, t, a, b, format, args...)
}

func Lt[V cmp.Ordered](t core.T, a, b V, format string, args ...any) bool {
	return check.Lt(check.Soft, t, a, b, format, args...)
}

func Le[V cmp.Ordered](t core.T, a, b V, format string, args ...any) bool {
	return check.Le(check.Soft, t, a, b, format, args...)
}

func Gt[V cmp.Ordered](t core.T, a, b V, format string, args ...any) bool {
	return check.Gt(check.Soft, t, a, b, format, args...)
}

func Ge[V cmp.Ordered](t core.T, a, b V, format string, args ...any) bool {
	return check.Ge(check.Soft, t, a, b, format, args...)
}

func StrEq(t core.T, a, b string, format string, args ...any) bool {
	return check.StrEq(check.Soft, t, a, b, format, args...)
}

func StrNe(t core.T, a, b string, format string, args ...any) bool {
	return check.StrNe(check.Soft, t, a, b, format, args...)
}

func StrCaseEq(t core.T, a, b string, format string, args ...any) bool {
	return check.StrCaseEq(check.Soft, t, a, b, format, args...)
}

func StrCaseNe(t core.T, a, b string, format string, args ...any) bool {
	return check.StrCaseNe(check.Soft, t, a, b, format, args...)
}

// Fail records an unconditional soft error.
func Fail(t core.T, format string, args ...any) {
	check.Fail(check.Soft, t, format, args...)
}
