// Package check implements the comparisons behind the assert and expect
// packages.
package check

import (
	"cmp"
	"fmt"
	"runtime"
	"strconv"
	"strings"

	"squall/pkg/squall/core"
)

type Tier int

const (
	// Hard checks stop the test body on failure.
	Hard Tier = iota
	// Soft checks record the failure and let the body continue.
	Soft
)

func (t Tier) String() string {
	switch t {
	case Hard:
		return "assert"
	case Soft:
		return "expect"
	default:
		return "check"
	}
}

// Frames between report and the user's call site: the check function and the
// exported assert/expect wrapper.
const wrapperDepth = 2

// caller returns the location skip frames above the function calling it.
func caller(skip int) (string, int) {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return "???", 0
	}
	return file, line
}

func (tier Tier) report(t core.T, expression, format string, args ...any) {
	file, line := caller(wrapperDepth + 1)
	if tier == Hard {
		t.Failure(expression, file, line, format, args...)
		return
	}
	t.SoftError(expression, file, line, format, args...)
}

// Expression renders the text reported for a failed check, e.g.
// assert.Eq(1, 2).
func Expression(tier Tier, variant string, operands ...any) string {
	parts := make([]string, len(operands))
	for i, op := range operands {
		parts[i] = operand(op)
	}
	return fmt.Sprintf("%s.%s(%s)", tier, variant, strings.Join(parts, ", "))
}

func operand(v any) string {
	if s, ok := v.(string); ok {
		return strconv.Quote(s)
	}
	return fmt.Sprintf("%v", v)
}

func True(tier Tier, t core.T, cond bool, format string, args ...any) bool {
	if !cond {
		tier.report(t, Expression(tier, "True", cond), format, args...)
	}
	return cond
}

func False(tier Tier, t core.T, cond bool, format string, args ...any) bool {
	if cond {
		tier.report(t, Expression(tier, "False", cond), format, args...)
	}
	return !cond
}

func Eq[V comparable](tier Tier, t core.T, a, b V, format string, args ...any) bool {
	ok := a == b
	if !ok {
		tier.report(t, Expression(tier, "Eq", a, b), format, args...)
	}
	return ok
}

func Ne[V comparable](tier Tier, t core.T, a, b V, format string, args ...any) bool {
	ok := a != b
	if !ok {
		tier.report(t, Expression(tier, "Ne", a, b), format, args...)
	}
	return ok
}

func Lt[V cmp.Ordered](tier Tier, t core.T, a, b V, format string, args ...any) bool {
	ok := cmp.Less(a, b)
	if !ok {
		tier.report(t, Expression(tier, "Lt", a, b), format, args...)
	}
	return ok
}

func Le[V cmp.Ordered](tier Tier, t core.T, a, b V, format string, args ...any) bool {
	ok := cmp.Compare(a, b) <= 0
	if !ok {
		tier.report(t, Expression(tier, "Le", a, b), format, args...)
	}
	return ok
}

func Gt[V cmp.Ordered](tier Tier, t core.T, a, b V, format string, args ...any) bool {
	ok := cmp.Compare(a, b) > 0
	if !ok {
		tier.report(t, Expression(tier, "Gt", a, b), format, args...)
	}
	return ok
}

func Ge[V cmp.Ordered](tier Tier, t core.T, a, b V, format string, args ...any) bool {
	ok := cmp.Compare(a, b) >= 0
	if !ok {
		tier.report(t, Expression(tier, "Ge", a, b), format, args...)
	}
	return ok
}

func StrEq(tier Tier, t core.T, a, b string, format string, args ...any) bool {
	ok := a == b
	if !ok {
		tier.report(t, Expression(tier, "StrEq", a, b), format, args...)
	}
	return ok
}

func StrNe(tier Tier, t core.T, a, b string, format string, args ...any) bool {
	ok := a != b
	if !ok {
		tier.report(t, Expression(tier, "StrNe", a, b), format, args...)
	}
	return ok
}

// StrCaseEq compares under Unicode case folding.
func StrCaseEq(tier Tier, t core.T, a, b string, format string, args ...any) bool {
	ok := strings.EqualFold(a, b)
	if !ok {
		tier.report(t, Expression(tier, "StrCaseEq", a, b), format, args...)
	}
	return ok
}

func StrCaseNe(tier Tier, t core.T, a, b string, format string, args ...any) bool {
	ok := !strings.EqualFold(a, b)
	if !ok {
		tier.report(t, Expression(tier, "StrCaseNe", a, b), format, args...)
	}
	return ok
}

// Fail reports an unconditional failure with an empty expression.
func Fail(tier Tier, t core.T, format string, args ...any) {
	tier.report(t, "", format, args...)
}

// Succeed marks the call site as an explicit success.
func Succeed(t core.T) {
	file, line := caller(wrapperDepth)
	t.Success(file, line)
}
