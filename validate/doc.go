package validate

// Package validate checks JSONC resource trees against JSON Schema documents.
//
// It provides:
//
// - Comment stripping that preserves line counts (StripComments)
// - JSONC file loading with parser-reported line/column on failure (LoadFile)
// - A schema registry keyed by multiple equivalent URI forms (LoadRegistry)
// - Draft selection and $ref resolution bound to the registry (NewValidator)
// - A best-effort source-line locator for diagnostics (FindLineNumber)
// - A runner that walks resource trees and interface files (Runner)
//
// Design policy:
// - Keep only public APIs in this package; the comment scanner lives under
//   internal/jsonc.
// - Errors local to one file never escape that file's handling; only a root
//   schema failure aborts a run.
// - The registry is built once per run and read-only afterwards; $ref targets
//   resolve against it and never against the network.
//
// Typical usage:
//
//	sum, err := validate.NewRunner(validate.Options{
//		SchemaDir:    "tools/schema",
//		ResourceDirs: []string{"assets/resource"},
//	}).Run()
