// squall-gen writes an init file registering the annotated test functions of
// a package. Typical use is a go:generate line in the package:
//
//	//go:generate go run squall/cmd/squall-gen
package main

import (
	"context"

	"squall/internal/gen"

	"github.com/alecthomas/kong"
	log "github.com/sirupsen/logrus"
)

type cli struct {
	Verbosity log.Level `short:"v" help:"Set log level" default:"info"`
	Dir       string    `arg:"" optional:"" help:"Package directory to scan" default:"." type:"existingdir"`
	Include   []string  `short:"i" help:"Glob of files to scan, relative to the package directory" default:"*.go"`
	Exclude   []string  `short:"e" help:"Glob of files to skip"`
	Output    string    `short:"o" help:"Name of the generated file" default:"${output}"`
	Import    string    `help:"Import path of the squall package" default:"${import}"`
	Workers   int       `short:"w" help:"Number of files parsed in parallel (0 = GOMAXPROCS)" default:"0"`
}

func main() {
	var cli cli
	ctx := kong.Parse(&cli,
		kong.Name("squall-gen"),
		kong.Description("Generates the registration file for squall tests."),
		kong.UsageOnError(),
		kong.Vars{
			"output": gen.DefaultOutput,
			"import": gen.DefaultImportPath,
		},
	)

	logger := log.New()
	logger.SetLevel(cli.Verbosity)
	logger.SetFormatter(&log.TextFormatter{
		ForceColors: true,
	})

	_, err := gen.Generate(context.Background(), gen.Options{
		Dir:        cli.Dir,
		Include:    cli.Include,
		Exclude:    cli.Exclude,
		Output:     cli.Output,
		ImportPath: cli.Import,
		Workers:    cli.Workers,
	}, logger)
	ctx.FatalIfErrorf(err)
}
