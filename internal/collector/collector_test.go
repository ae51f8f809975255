package collector

import (
	"testing"

	"squall/internal/registry"
	"squall/pkg/squall/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func body(core.T) {}

func TestCollectTestsKeepsEverything(t *testing.T) {
	r := registry.New(4)
	r.Register(core.Descriptor{Namespace: "A", Name: "one", File: "a.go", Line: 1, Body: core.PlainBody(body)})
	r.Register(core.Descriptor{Namespace: "A", Name: "one", File: "a.go", Line: 9, Body: core.PlainBody(body)})
	r.Register(core.Descriptor{Namespace: "B", Name: "bad name", File: "b.go", Line: 2})

	tests, warnings := CollectTests(r)

	require.Len(t, tests, 3)
	assert.True(t, r.Frozen())

	var messages []string
	for _, w := range warnings {
		messages = append(messages, w.String())
	}
	assert.Equal(t, []string{
		"A.one (a.go:9): name is not unique, first registered at a.go:1",
		"B.bad name (b.go:2): test name 'bad name' is invalid, must match ^[a-zA-Z0-9_]+$",
		"B.bad name (b.go:2): no test function bound",
	}, messages)
}

func TestCheckCleanRegistry(t *testing.T) {
	warnings := Check([]core.Descriptor{
		{Namespace: "A", Name: "one", Body: core.PlainBody(body)},
		{Namespace: "A", Name: "two", Body: core.FixtureBody(func(core.T, any) {})},
	})
	assert.Empty(t, warnings)
}

func TestCheckEmptyNamespace(t *testing.T) {
	warnings := Check([]core.Descriptor{{Name: "one", Body: core.PlainBody(body)}})
	require.Len(t, warnings, 1)
	assert.Equal(t, "namespace name must not be empty", warnings[0].Message)
}
