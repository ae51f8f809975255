// Package config resolves how a run reports its results, from defaults, an
// optional YAML file and command line overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

type ReporterKind string

const (
	ReporterConsole ReporterKind = "console"
	ReporterSilent  ReporterKind = "silent"
)

// File mirrors the YAML configuration file. Unset keys leave the current
// value untouched.
type File struct {
	Reporter ReporterKind `yaml:"reporter"`
	Color    *bool        `yaml:"color"`
	Timer    *bool        `yaml:"timer"`
	ShowLogs *bool        `yaml:"show_logs"`
}

type Config struct {
	Reporter ReporterKind
	Color    bool
	Timer    bool
	ShowLogs bool
}

// Default returns the configuration used when nothing else is specified.
// Color is enabled when output goes to a terminal.
func Default(colorTerminal bool) Config {
	return Config{
		Reporter: ReporterConsole,
		Color:    colorTerminal,
		Timer:    true,
		ShowLogs: false,
	}
}

// Load reads and parses the configuration file at path.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	f, err := Parse(data)
	if err != nil {
		return File{}, fmt.Errorf("failed to parse config file '%s': %w", path, err)
	}

	return f, nil
}

// Parse decodes a YAML configuration document. Unknown keys are rejected.
func Parse(data []byte) (File, error) {
	var f File

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return File{}, err
	}

	return f, nil
}

// Apply returns c overridden by the keys set in f.
func (c Config) Apply(f File) Config {
	if f.Reporter != "" {
		c.Reporter = f.Reporter
	}
	if f.Color != nil {
		c.Color = *f.Color
	}
	if f.Timer != nil {
		c.Timer = *f.Timer
	}
	if f.ShowLogs != nil {
		c.ShowLogs = *f.ShowLogs
	}
	return c
}

func (c Config) Validate() error {
	switch c.Reporter {
	case ReporterConsole, ReporterSilent:
		return nil
	default:
		return fmt.Errorf("unknown reporter '%s', expected '%s' or '%s'", c.Reporter, ReporterConsole, ReporterSilent)
	}
}
