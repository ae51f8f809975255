package core

import (
	"fmt"
	"regexp"
)

var entityNameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// ValidateEntityName checks that a namespace or test name is usable as an
// identifier in listings and reports. Names MUST be accepted by the regular
// expression `^[a-zA-Z0-9_]+$`.
func ValidateEntityName(name string, kind string) error {
	if name == "" {
		return fmt.Errorf("%s name must not be empty", kind)
	}

	if !entityNameRegex.MatchString(name) {
		return fmt.Errorf("%s name '%s' is invalid, must match %s", kind, name, entityNameRegex.String())
	}

	return nil
}
