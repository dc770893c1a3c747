package validate

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Conventional locations, matching the boilerplate's repository layout.
const (
	DefaultSchemaDir     = "tools/schema"
	DefaultResourceDir   = "assets/resource"
	DefaultInterfaceFile = "assets/interface.json"

	// RootSchemaName is the schema every resource file validates against.
	RootSchemaName = "pipeline.schema.json"
	// InterfaceSchemaName validates interface descriptor files when present.
	InterfaceSchemaName = "interface.schema.json"
)

// Options configures a validation run. Zero values select the conventional
// defaults above.
type Options struct {
	SchemaDir      string
	ResourceDirs   []string
	ExcludeDirs    []string
	InterfaceFiles []string

	// Out receives the human-readable report and the per-error annotations;
	// defaults to os.Stdout. Logger receives recoverable-skip warnings;
	// defaults to slog.Default().
	Out    io.Writer
	Logger *slog.Logger
}

// Runner validates resource trees and interface files against the schemas in
// a directory. A run proceeds through schema loading, resource validation,
// and interface validation; only a root schema failure aborts it.
type Runner struct {
	opts     Options
	out      io.Writer
	logger   *slog.Logger
	excludes []string
}

// NewRunner returns a Runner with defaults applied.
func NewRunner(opts Options) *Runner {
	if opts.SchemaDir == "" {
		opts.SchemaDir = DefaultSchemaDir
	}
	if opts.ResourceDirs == nil {
		opts.ResourceDirs = []string{DefaultResourceDir}
	}
	if opts.InterfaceFiles == nil {
		opts.InterfaceFiles = []string{DefaultInterfaceFile}
	}
	r := &Runner{opts: opts, out: opts.Out, logger: opts.Logger}
	if r.out == nil {
		r.out = os.Stdout
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	for _, d := range opts.ExcludeDirs {
		if abs, err := filepath.Abs(d); err == nil {
			r.excludes = append(r.excludes, abs)
		}
	}
	return r
}

// Run executes the full validation sequence and returns the aggregated
// summary. The returned error is non-nil only for the fatal case: the root
// schema is missing, unparseable, or fails to compile. Every other problem
// is either a logged skip or a per-file report.
func (r *Runner) Run() (*Summary, error) {
	sum := &Summary{}

	fmt.Fprintln(r.out, "Loading schemas...")
	reg, err := LoadRegistry(r.opts.SchemaDir, r.logger)
	if err != nil {
		return nil, fmt.Errorf("loading schemas from %s: %w", r.opts.SchemaDir, err)
	}
	r.logger.Debug("schema registry built", "dir", r.opts.SchemaDir, "schemas", reg.Len())

	rootURI, err := FileURI(filepath.Join(r.opts.SchemaDir, RootSchemaName))
	if err != nil {
		return nil, fmt.Errorf("resolving root schema path: %w", err)
	}
	pipeline, err := NewValidator(rootURI, reg)
	if err != nil {
		return nil, fmt.Errorf("loading root schema: %w", err)
	}

	fmt.Fprintln(r.out, "Validating pipeline resources...")
	r.validateResources(sum, pipeline)

	fmt.Fprintln(r.out, "\nValidating interface files...")
	r.validateInterfaces(sum, reg)

	if sum.OK() {
		fmt.Fprintln(r.out, "\n✅ All validations passed!")
	} else {
		fmt.Fprintln(r.out, "\n❌ Some validations failed!")
	}
	return sum, nil
}

func (r *Runner) validateResources(sum *Summary, v *Validator) {
	for _, dir := range r.opts.ResourceDirs {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			r.logger.Warn("resource directory does not exist, skipping", "dir", dir)
			continue
		}
		_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				r.logger.Warn("failed to visit path, skipping", "path", path, "error", err)
				return nil
			}
			if d.IsDir() {
				return nil
			}
			if ext := filepath.Ext(path); ext != ".json" && ext != ".jsonc" {
				return nil
			}
			if r.isExcluded(path) {
				return nil
			}
			rep := r.validateFile(path, v)
			r.printReport(rep)
			sum.Reports = append(sum.Reports, rep)
			return nil
		})
	}
}

func (r *Runner) validateInterfaces(sum *Summary, reg *Registry) {
	schemaPath := filepath.Join(r.opts.SchemaDir, InterfaceSchemaName)
	if _, err := os.Stat(schemaPath); err != nil {
		r.logger.Warn("interface schema not found, skipping interface validation", "path", schemaPath)
		return
	}
	uri, err := FileURI(schemaPath)
	if err != nil {
		r.logger.Warn("failed to resolve interface schema path, skipping", "path", schemaPath, "error", err)
		return
	}
	iface, err := NewValidator(uri, reg)
	if err != nil {
		// The registry already warned if the schema failed to parse; an
		// unusable interface schema downgrades the phase to a skip.
		r.logger.Warn("interface schema failed to load, skipping interface validation", "error", err)
		return
	}
	for _, file := range r.opts.InterfaceFiles {
		if _, err := os.Stat(file); err != nil {
			r.logger.Warn("interface file does not exist, skipping", "file", file)
			continue
		}
		rep := r.validateFile(file, iface)
		r.printReport(rep)
		sum.Reports = append(sum.Reports, rep)
	}
}

// validateFile never lets a failure escape: load errors and panics while
// handling one file become a single synthetic issue so one bad file cannot
// abort the run.
func (r *Runner) validateFile(path string, v *Validator) (rep Report) {
	rep = Report{File: path}
	defer func() {
		if p := recover(); p != nil {
			rep.Issues = Issues{{Code: CodeLoadFailure, Message: fmt.Sprintf("unexpected failure: %v", p)}}
		}
	}()
	doc, err := LoadFile(path)
	if err != nil {
		rep.Issues = Issues{{Code: CodeLoadFailure, Message: err.Error()}}
		return rep
	}
	rep.Issues = v.Validate(doc)
	return rep
}

func (r *Runner) printReport(rep Report) {
	if rep.OK() {
		fmt.Fprintf(r.out, "✓ %s\n", rep.File)
		return
	}
	fmt.Fprintf(r.out, "\n❌ Validation failed for %s:\n", rep.File)
	fmt.Fprintf(r.out, "   Found %d error(s):\n", len(rep.Issues))
	shown := rep.Issues
	if len(shown) > maxAnnotatedIssues {
		shown = shown[:maxAnnotatedIssues]
	}
	for _, iss := range shown {
		line, _ := FindLineNumber(rep.File, iss.Path)
		fmt.Fprintln(r.out, Annotation(rep.File, line, iss))
	}
}

// isExcluded reports whether the resolved path lies under any excluded
// directory.
func (r *Runner) isExcluded(path string) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	for _, ex := range r.excludes {
		rel, err := filepath.Rel(ex, abs)
		if err != nil {
			continue
		}
		if rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))) {
			return true
		}
	}
	return false
}
