package gen

import (
	"bytes"
	"context"
	"fmt"
	"go/format"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"text/template"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultOutput     = "zz_squall_tests.go"
	DefaultImportPath = "squall/pkg/squall"
)

type Options struct {
	// Package directory to scan.
	Dir string
	// Patterns matched against file names relative to Dir.
	Include []string
	Exclude []string
	// Name of the generated file, written to Dir.
	Output string
	// Import path of the squall package in the generated file. It is
	// imported under the name squall whatever its package name is.
	ImportPath string
	Workers    int
}

func (o Options) withDefaults() Options {
	if o.Dir == "" {
		o.Dir = "."
	}
	if len(o.Include) == 0 {
		o.Include = []string{"*.go"}
	}
	if o.Output == "" {
		o.Output = DefaultOutput
	}
	if o.ImportPath == "" {
		o.ImportPath = DefaultImportPath
	}
	if o.Workers <= 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	return o
}

// Result describes a generated registration file.
type Result struct {
	Package     string
	Output      string
	Files       []string
	Annotations []Annotation
}

// Generate scans opts.Dir and writes the registration file. Nothing is
// written when no annotated function is found.
func Generate(ctx context.Context, opts Options, log *logrus.Logger) (*Result, error) {
	opts = opts.withDefaults()

	files, err := collectFiles(opts, log)
	if err != nil {
		return nil, err
	}

	sources, err := parseFiles(ctx, opts, files)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Output: filepath.Join(opts.Dir, opts.Output),
		Files:  files,
	}

	for _, src := range sources {
		if src == nil {
			continue
		}
		if result.Package == "" {
			result.Package = src.Package
		} else if src.Package != result.Package {
			return nil, fmt.Errorf("%s: package %s does not match package %s of the other files", src.Path, src.Package, result.Package)
		}
		result.Annotations = append(result.Annotations, src.Annotations...)
		log.Debugf("%s: %d annotated functions", src.Path, len(src.Annotations))
	}

	if len(result.Annotations) == 0 {
		log.Warnf("No annotated functions found in %s", opts.Dir)
		return result, nil
	}

	code, err := Render(result.Package, opts.ImportPath, result.Annotations)
	if err != nil {
		return nil, err
	}

	if err := os.WriteFile(result.Output, code, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", result.Output, err)
	}

	log.Infof("Wrote %d registrations to %s", len(result.Annotations), result.Output)
	return result, nil
}

// Returns the sorted file names in opts.Dir selected by the include and
// exclude patterns. Test files and the output file are never selected.
func collectFiles(opts Options, log *logrus.Logger) ([]string, error) {
	fsys := os.DirFS(opts.Dir)

	selected := make(map[string]bool)
	for _, pattern := range opts.Include {
		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("invalid include pattern '%s': %w", pattern, err)
		}
		for _, match := range matches {
			selected[match] = true
		}
	}

	var files []string
	for name := range selected {
		switch {
		case path.Dir(name) != ".":
			log.Debugf("Skipping %s: not in the package directory", name)
			continue
		case path.Ext(name) != ".go", name == opts.Output:
			continue
		case strings.HasSuffix(name, "_test.go"):
			log.Debugf("Skipping %s: test file", name)
			continue
		case matchesAny(name, opts.Exclude):
			log.Debugf("Skipping %s: excluded", name)
			continue
		}
		files = append(files, name)
	}

	slices.Sort(files)
	return files, nil
}

func matchesAny(name string, patterns []string) bool {
	for _, pattern := range patterns {
		if matched, err := doublestar.Match(pattern, name); err == nil && matched {
			return true
		}
	}
	return false
}

// Results keep the order of files.
func parseFiles(ctx context.Context, opts Options, files []string) ([]*SourceFile, error) {
	sources := make([]*SourceFile, len(files))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)

	for i, name := range files {
		i, name := i, name
		g.Go(func() error {
			src, err := fs.ReadFile(os.DirFS(opts.Dir), name)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", name, err)
			}
			if isGenerated(src) {
				return nil
			}

			file, err := ParseFile(gCtx, name, src)
			if err != nil {
				return err
			}
			sources[i] = file
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return sources, nil
}

var fileTemplate = template.Must(template.New("registrations").Parse(`// Code generated by squall-gen. DO NOT EDIT.

package {{ .Package }}

import squall "{{ .ImportPath }}"

func init() {
{{- range .Annotations }}
{{- if eq .Kind.String "fixture" }}
	squall.TestFAt({{ .Target }}, {{ printf "%q" .Name }}, {{ printf "%q" .File }}, {{ .Line }}, {{ .Func }})
{{- else }}
	squall.TestAt({{ printf "%q" .Target }}, {{ printf "%q" .Name }}, {{ printf "%q" .File }}, {{ .Line }}, {{ .Func }})
{{- end }}
{{- end }}
}
`))

// Render returns the formatted source of a registration file.
func Render(pkg, importPath string, annotations []Annotation) ([]byte, error) {
	var buf bytes.Buffer
	err := fileTemplate.Execute(&buf, struct {
		Package     string
		ImportPath  string
		Annotations []Annotation
	}{pkg, importPath, annotations})
	if err != nil {
		return nil, fmt.Errorf("failed to render registrations: %w", err)
	}

	code, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("generated code is not valid Go: %w", err)
	}
	return code, nil
}
