package reporter

import "squall/pkg/squall/core"

// SilentReporter prints nothing; the outcome of a run is only visible in its
// exit status.
type SilentReporter struct {
	core.BaseReporter
}

func NewSilentReporter() *SilentReporter {
	return &SilentReporter{}
}
