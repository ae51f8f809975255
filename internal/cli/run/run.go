package run

import (
	"squall/internal/config"
	"squall/pkg/squall/core"

	"golang.org/x/term"
)

type RunCmd struct {
	Reporter string `help:"Reporter to use: console or silent" env:"SQUALL_REPORTER"`
	NoColor  bool   `help:"Disable colored output"`
	NoTimer  bool   `help:"Do not measure test durations"`
	ShowLogs bool   `help:"Print the captured log of failed tests"`
}

func (cmd *RunCmd) Run(suite core.SuiteContext) error {
	cfg, err := cmd.resolveConfig(suite)
	if err != nil {
		return err
	}

	suite.Logger().Debugf("Resolved configuration: %+v", cfg)

	rep := BuildReporter(cfg, suite.Output())
	_, summary := Execute(suite, rep)
	return summary.ExitError()
}

// Precedence: flags and environment, then the configuration file, then
// defaults.
func (cmd *RunCmd) resolveConfig(suite core.SuiteContext) (config.Config, error) {
	cfg := config.Default(isTerminal(suite))

	if path := suite.ConfigFile(); path != "" {
		file, err := config.Load(path)
		if err != nil {
			return config.Config{}, err
		}
		cfg = cfg.Apply(file)
	}

	if cmd.Reporter != "" {
		cfg.Reporter = config.ReporterKind(cmd.Reporter)
	}
	if cmd.NoColor {
		cfg.Color = false
	}
	if cmd.NoTimer {
		cfg.Timer = false
	}
	if cmd.ShowLogs {
		cfg.ShowLogs = true
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	return cfg, nil
}

func isTerminal(suite core.SuiteContext) bool {
	f, ok := suite.Output().(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
