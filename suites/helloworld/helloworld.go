// Package helloworld is an example squall suite. Linking it into a binary is
// enough to register its tests.
package helloworld

import (
	"strings"

	"squall/pkg/squall"
	"squall/pkg/squall/assert"
	"squall/pkg/squall/expect"
)

var (
	_ = squall.Test("HelloWorld", "Greeting", func(t squall.T) {
		greeting := "Hello, World!"

		t.Logger().Infof("Checking greeting '%s'", greeting)
		assert.True(t, strings.HasPrefix(greeting, "Hello"), "greeting should start with Hello")
		expect.StrCaseEq(t, greeting, "hello, world!", "greeting should match ignoring case")
	})

	_ = squall.Test("HelloWorld", "Arithmetic", func(t squall.T) {
		assert.Eq(t, 4, 2+2, "")
		expect.Lt(t, 1, 2, "one is less than two")
		expect.Ge(t, 2.5, 2.5, "")
	})

	// Both tests fail on purpose to show what failures look like.
	_ = squall.Test("HelloWorld", "HardFailure", func(t squall.T) {
		t.Logger().Info("This message is shown with --show-logs")
		assert.Eq(t, 1, 2, "this assertion stops the test")
		t.Logger().Error("This message is never logged")
	})

	_ = squall.Test("HelloWorld", "SoftFailure", func(t squall.T) {
		expect.StrEq(t, "gale", "squall", "this expectation does not stop the test")
		t.Logger().Info("Still running after the soft failure")
	})
)
