package suite

import (
	"fmt"
	"os"

	"squall/internal/devops"
)

// Main parses os.Args, runs the selected command and exits the process with
// its status.
func (s *Suite) Main() {
	if err := s.ParseArgs(os.Args[1:], os.Exit); err != nil {
		s.reportExitStatus(fmt.Errorf("failed to parse command line: %w", err))
	}
	s.reportExitStatus(s.Run())
}

// Exit the program and report the exit status
func (s *Suite) reportExitStatus(err error) {
	os.Exit(s.exitStatus(err))
}

func (s *Suite) exitStatus(err error) int {
	if err == nil {
		s.Log.Infof("Suite '%s' run completed", s.name)
		return 0
	}

	if s.global.AzureDevops {
		devops.NewPrinter(s.out).LogError("Suite '%s' run failed: %s", s.name, err)
	}

	s.Log.WithError(err).Errorf("Suite '%s' failed", s.name)
	return 1
}
