// Command validate-schema checks JSONC resource trees and interface files
// against the repository's JSON Schemas. Exit code 0 means every file
// validated; 1 means a validation failure or a fatal schema load error;
// 2 means a usage error.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/MaaXYZ/MaaPracticeBoilerplate/validate"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// stringList is a repeatable flag value.
type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ",") }

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("validate-schema", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		schemaDir      = fs.String("schema-dir", "", "directory containing schema files (default "+validate.DefaultSchemaDir+")")
		configPath     = fs.String("config", "", "optional YAML config file; explicit flags take precedence")
		resourceDirs   stringList
		excludeDirs    stringList
		interfaceFiles stringList
	)
	fs.Var(&resourceDirs, "resource-dir", "resource directory to validate, repeatable (default "+validate.DefaultResourceDir+")")
	fs.Var(&excludeDirs, "exclude-dir", "directory to exclude from validation, repeatable")
	fs.Var(&interfaceFiles, "interface-file", "interface file to validate, repeatable (default "+validate.DefaultInterfaceFile+")")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintf(stderr, "error: unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
		fs.Usage()
		return 2
	}

	var cfg config
	if *configPath != "" {
		c, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "error loading config: %v\n", err)
			return 2
		}
		cfg = c
	}

	opts := validate.Options{
		SchemaDir:      firstNonEmpty(*schemaDir, cfg.SchemaDir),
		ResourceDirs:   firstNonEmptyList(resourceDirs, cfg.ResourceDirs),
		ExcludeDirs:    firstNonEmptyList(excludeDirs, cfg.ExcludeDirs),
		InterfaceFiles: firstNonEmptyList(interfaceFiles, cfg.InterfaceFiles),
		Out:            stdout,
		Logger:         slog.New(slog.NewTextHandler(stderr, nil)),
	}

	sum, err := validate.NewRunner(opts).Run()
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	if !sum.OK() {
		return 1
	}
	return 0
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstNonEmptyList(lists ...[]string) []string {
	for _, l := range lists {
		if len(l) > 0 {
			return l
		}
	}
	return nil
}
