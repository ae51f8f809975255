package core

import "fmt"

// PlainBody is the body of a test that takes no fixture state.
type PlainBody func(T)

// FixtureBody is the body of a fixture test. The state argument is whatever
// the descriptor's Setup function returned.
type FixtureBody func(T, any)

// Body is the behavior of a test. It is implemented only by PlainBody and
// FixtureBody, so a descriptor carries at most one of the two.
type Body interface {
	isBody()
}

func (PlainBody) isBody()   {}
func (FixtureBody) isBody() {}

type SetupFunction = func() any
type TeardownFunction = func(any)

// Descriptor describes one discoverable test unit. Descriptors are built once
// at registration time and never modified afterwards.
type Descriptor struct {
	// Namespace or fixture name.
	Namespace string
	Name      string

	// Source location of the test definition, for diagnostics.
	File string
	Line int

	// Body is nil when no test function was bound; the runner reports that
	// as a configuration failure.
	Body Body

	// Optional fixture lifecycle.
	Setup    SetupFunction
	Teardown TeardownFunction
}

// FullName returns "<namespace>.<name>".
func (d *Descriptor) FullName() string {
	return fmt.Sprintf("%s.%s", d.Namespace, d.Name)
}

// Location returns "<file>:<line>".
func (d *Descriptor) Location() string {
	return fmt.Sprintf("%s:%d", d.File, d.Line)
}

// IsFixture reports whether the descriptor is bound to a fixture body.
func (d *Descriptor) IsFixture() bool {
	_, ok := d.Body.(FixtureBody)
	return ok
}
