// Package collector takes the registry snapshot for a run and checks the
// descriptors for mistakes worth a warning. It never drops or reorders
// descriptors: what was registered is what runs.
package collector

import (
	"fmt"

	"squall/internal/registry"
	"squall/pkg/squall/core"
)

// Warning is a non-fatal problem found in a registered descriptor.
type Warning struct {
	Descriptor core.Descriptor
	Message    string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s (%s): %s", w.Descriptor.FullName(), w.Descriptor.Location(), w.Message)
}

// CollectTests freezes the registry and returns its descriptors in
// registration order along with any warnings.
func CollectTests(r *registry.Registry) ([]core.Descriptor, []Warning) {
	tests := r.Snapshot()
	return tests, Check(tests)
}

// Check inspects descriptors for duplicate names, invalid names and unbound
// bodies.
func Check(tests []core.Descriptor) []Warning {
	warnings := make([]Warning, 0)
	seen := make(map[string]core.Descriptor)

	for _, test := range tests {
		if err := core.ValidateEntityName(test.Namespace, "namespace"); err != nil {
			warnings = append(warnings, Warning{Descriptor: test, Message: err.Error()})
		}

		if err := core.ValidateEntityName(test.Name, "test"); err != nil {
			warnings = append(warnings, Warning{Descriptor: test, Message: err.Error()})
		}

		if test.Body == nil {
			warnings = append(warnings, Warning{Descriptor: test, Message: "no test function bound"})
		}

		if first, exists := seen[test.FullName()]; exists {
			warnings = append(warnings, Warning{
				Descriptor: test,
				Message:    fmt.Sprintf("name is not unique, first registered at %s", first.Location()),
			})
			continue
		}

		seen[test.FullName()] = test
	}

	return warnings
}
