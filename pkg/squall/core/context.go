package core

import (
	"context"
	"io"
)

type SuiteContext interface {
	Named

	LoggerProvider

	// Returns the registered tests in registration order. The registry is
	// frozen by this call.
	Tests() []Descriptor

	// Returns whether the suite has Azure DevOps integration enabled
	AzureDevops() bool

	// Returns the path of the configuration file, or an empty string when
	// none was given.
	ConfigFile() string

	// Returns the writer reports and listings are printed to.
	Output() io.Writer

	// Returns a context for the suite.
	Context() context.Context
}
