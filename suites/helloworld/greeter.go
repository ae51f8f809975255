package helloworld

import (
	"fmt"
	"strings"

	"squall/pkg/squall"
	"squall/pkg/squall/assert"
	"squall/pkg/squall/expect"
)

//go:generate go run squall/cmd/squall-gen

type greeter struct {
	prefix  string
	greeted []string
}

func (g *greeter) greet(name string) string {
	g.greeted = append(g.greeted, name)
	return fmt.Sprintf("%s, %s!", g.prefix, name)
}

var greeterFixture = squall.Fixture[*greeter]{
	Name: "Greeter",
	Setup: func() *greeter {
		return &greeter{prefix: "Hello"}
	},
	Teardown: func(g *greeter) {
		g.greeted = nil
	},
}

//squall:fixture greeterFixture Greets
func testGreets(t squall.T, g *greeter) {
	assert.StrEq(t, g.greet("squall"), "Hello, squall!", "")
	expect.Eq(t, len(g.greeted), 1, "greeter should remember one name")
}

//squall:fixture greeterFixture FreshState
func testFreshState(t squall.T, g *greeter) {
	assert.Eq(t, len(g.greeted), 0, "every test gets its own greeter")
}

//squall:test Greeter Shout
func testShout(t squall.T) {
	shout := strings.ToUpper("hello")
	expect.StrCaseNe(t, shout, "goodbye", "")
	assert.Succeed(t)
}
