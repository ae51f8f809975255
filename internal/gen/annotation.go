// Package gen implements squall-gen, which turns annotated functions into
// an init file registering them.
//
// A plain test is declared with
//
//	//squall:test Math Add
//	func testAdd(t squall.T) { ... }
//
// and a fixture test with
//
//	//squall:fixture numbers Sum
//	func testSum(t squall.T, values []int) { ... }
//
// where numbers is a squall.Fixture value of the same package.
package gen

import (
	"fmt"
	"strings"
)

const directivePrefix = "//squall:"

type Kind int

const (
	KindTest Kind = iota
	KindFixture
)

func (k Kind) String() string {
	switch k {
	case KindTest:
		return "test"
	case KindFixture:
		return "fixture"
	default:
		return "unknown"
	}
}

// Number of parameters the annotated function must take.
func (k Kind) arity() int {
	if k == KindFixture {
		return 2
	}
	return 1
}

// Annotation is one annotated function found in a source file.
type Annotation struct {
	Kind Kind
	// Namespace for tests, name of the fixture variable for fixture tests.
	Target string
	Name   string
	Func   string
	File   string
	Line   int
}

func (a Annotation) String() string {
	return fmt.Sprintf("%s %s.%s (%s:%d)", a.Kind, a.Target, a.Name, a.File, a.Line)
}

// Returns ok=false when text is not a squall directive at all.
func parseDirective(text string) (kind Kind, args []string, ok bool, err error) {
	if !strings.HasPrefix(text, directivePrefix) {
		return 0, nil, false, nil
	}

	fields := strings.Fields(strings.TrimPrefix(text, directivePrefix))
	if len(fields) == 0 {
		return 0, nil, true, fmt.Errorf("empty squall directive")
	}

	switch fields[0] {
	case "test":
		kind = KindTest
	case "fixture":
		kind = KindFixture
	default:
		return 0, nil, true, fmt.Errorf("unknown squall directive '%s'", fields[0])
	}

	args = fields[1:]
	if len(args) != 2 {
		return 0, nil, true, fmt.Errorf("squall:%s expects 2 arguments, got %d", kind, len(args))
	}

	return kind, args, true, nil
}
