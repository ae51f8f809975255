package runner

import (
	"fmt"

	"squall/pkg/squall/core"
)

type runnerError struct {
	err        error
	descriptor *core.Descriptor
}

func (re *runnerError) Error() string {
	return fmt.Sprintf("error in test '%s': %v", re.descriptor.FullName(), re.err)
}

func (re *runnerError) Unwrap() error {
	return re.err
}

type setupError struct {
	runnerError
}

func newSetupError(d *core.Descriptor, err error) *setupError {
	return &setupError{
		runnerError: runnerError{
			err:        err,
			descriptor: d,
		},
	}
}

func (se *setupError) Error() string {
	return fmt.Sprintf("setup error in test '%s': %v", se.descriptor.FullName(), se.err)
}

type teardownError struct {
	runnerError
}

func newTeardownError(d *core.Descriptor, err error) *teardownError {
	return &teardownError{
		runnerError: runnerError{
			err:        err,
			descriptor: d,
		},
	}
}

func (te *teardownError) Error() string {
	return fmt.Sprintf("teardown error in test '%s': %v", te.descriptor.FullName(), te.err)
}
