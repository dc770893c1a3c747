package validate

import (
	"log/slog"
	"net/url"
	"path"
	"path/filepath"
)

// Registry maps schema URIs to decoded schema documents. Each schema file is
// stored once and indexed under multiple equivalent URI forms; the registry
// is append-only during construction and read-only afterwards, so concurrent
// lookups are race-free.
type Registry struct {
	docs map[string]any
	n    int // number of schema files, not aliases
}

// LoadRegistry loads every *.json file directly under dir (non-recursive)
// and registers each parsed document under its canonical file URI plus the
// ./<name> and /<name> alias forms. All three forms share one document
// value. Schemas that fail to parse are skipped with a warning; missing
// $ref targets then surface when a validator is built, not here.
func LoadRegistry(dir string, logger *slog.Logger) (*Registry, error) {
	if logger == nil {
		logger = slog.Default()
	}
	matches, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, err
	}
	reg := &Registry{docs: make(map[string]any)}
	for _, p := range matches {
		doc, err := LoadFile(p)
		if err != nil {
			logger.Warn("failed to load schema, skipping", "file", p, "error", err)
			continue
		}
		uri, err := FileURI(p)
		if err != nil {
			logger.Warn("failed to resolve schema path, skipping", "file", p, "error", err)
			continue
		}
		name := filepath.Base(p)
		reg.docs[uri] = doc
		reg.docs["./"+name] = doc
		reg.docs["/"+name] = doc
		reg.n++
	}
	return reg, nil
}

// Lookup returns the document registered under uri. Matching is exact and
// case-sensitive.
func (r *Registry) Lookup(uri string) (any, bool) {
	doc, ok := r.docs[uri]
	return doc, ok
}

// Resolve looks uri up exactly, then falls back to the basename alias forms.
// The fallback lets a relative $ref that was resolved against a file base
// URI (for example ./task.schema.json becoming file:///some/dir/
// task.schema.json) still hit the registry entry for that schema.
func (r *Registry) Resolve(uri string) (any, bool) {
	if doc, ok := r.docs[uri]; ok {
		return doc, true
	}
	u, err := url.Parse(uri)
	if err != nil {
		return nil, false
	}
	name := path.Base(u.Path)
	if name == "" || name == "." || name == "/" {
		return nil, false
	}
	if doc, ok := r.docs["/"+name]; ok {
		return doc, true
	}
	if doc, ok := r.docs["./"+name]; ok {
		return doc, true
	}
	return nil, false
}

// Len reports the number of schema files registered (aliases not counted).
func (r *Registry) Len() int { return r.n }

// FileURI returns the canonical file URI for path.
func FileURI(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", err
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}
	return u.String(), nil
}
