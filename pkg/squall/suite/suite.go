package suite

import (
	"context"
	"io"

	"squall/internal/cli"
	"squall/internal/collector"
	"squall/internal/devops"
	"squall/internal/registry"
	"squall/pkg/squall/core"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"
)

type Suite struct {
	name     string
	registry *registry.Registry
	ctx      *kong.Context
	global   cli.GlobalOpts
	out      io.Writer
	Log      *logrus.Logger
}

// New creates a suite over the tests in reg that prints to out. The suite
// uses default options until ParseArgs is called.
func New(name string, reg *registry.Registry, out io.Writer) *Suite {
	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)
	logger.SetFormatter(&logrus.TextFormatter{
		ForceColors: true,
	})

	return &Suite{
		name:     name,
		registry: reg,
		out:      out,
		Log:      logger,
	}
}

// ParseArgs parses the command line of the suite binary. exit is called when
// kong would terminate the process, e.g. after printing help.
func (s *Suite) ParseArgs(args []string, exit func(int)) error {
	ctx, global, err := cli.ParseCommandLine(s.name, args, s.out, exit)
	if err != nil {
		return err
	}

	s.ctx = ctx
	s.global = global
	s.Log.SetLevel(global.Verbosity)
	s.Log.Debugf("Created suite '%s'", s.name)
	return nil
}

// Run the selected command
func (s *Suite) Run() error {
	if s.ctx == nil {
		s.Log.Fatalf("Suite '%s' not initialized", s.name)
	}

	s.Log.Infof("Running suite '%s' - %d tests registered.", s.name, s.registry.Len())
	s.ctx.BindTo(s, (*core.SuiteContext)(nil))
	return s.ctx.Run()
}

// Returns the name of the suite
func (s *Suite) Name() string {
	return s.name
}

func (s *Suite) Logger() *logrus.Logger {
	return s.Log
}

// Tests freezes the registry and logs a warning for every suspicious
// descriptor.
func (s *Suite) Tests() []core.Descriptor {
	tests, warnings := collector.CollectTests(s.registry)
	for _, warning := range warnings {
		s.Log.Warn(warning.String())
		if s.global.AzureDevops {
			devops.NewPrinter(s.out).LogWarning("%s", warning.String())
		}
	}
	return tests
}

func (s *Suite) AzureDevops() bool {
	return s.global.AzureDevops
}

func (s *Suite) ConfigFile() string {
	return s.global.Config
}

func (s *Suite) Output() io.Writer {
	return s.out
}

func (s *Suite) Context() context.Context {
	return context.Background()
}
