package cli

import (
	"io"

	"squall/internal/cli/list"
	"squall/internal/cli/run"

	"github.com/alecthomas/kong"
	log "github.com/sirupsen/logrus"
)

type GlobalOpts struct {
	Verbosity   log.Level `short:"v" help:"Set log level" default:"warn"`
	AzureDevops bool      `short:"a" help:"Enable Azure DevOps integration" env:"TF_BUILD"`
	Config      string    `short:"c" help:"Path to a YAML configuration file" env:"SQUALL_CONFIG" type:"path"`
}

type cli struct {
	Global GlobalOpts   `embed:""`
	Run    run.RunCmd   `cmd:"" default:"withargs" help:"Run all registered tests (default)"`
	List   list.ListCmd `cmd:"" help:"List registered tests"`
}

// ParseCommandLine parses args for the suite binary called name. Help and
// usage errors are written to out; exit is called where kong would exit the
// process.
func ParseCommandLine(name string, args []string, out io.Writer, exit func(int)) (*kong.Context, GlobalOpts, error) {
	cli := cli{}
	parser, err := kong.New(&cli,
		kong.Name(name),
		kong.Description("Runs the tests registered in this binary."),
		kong.Writers(out, out),
		kong.Exit(exit),
		kong.UsageOnError(),
	)
	if err != nil {
		return nil, GlobalOpts{}, err
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return nil, cli.Global, err
	}

	return ctx, cli.Global, nil
}
