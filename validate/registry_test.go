package validate

import (
	"reflect"
	"testing"
)

const stringSchema = `{"$schema": "https://json-schema.org/draft/2020-12/schema", "type": "string"}`

func TestLoadRegistry_Aliases(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "task.schema.json", stringSchema)
	reg, err := LoadRegistry(dir, nil)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if reg.Len() != 1 {
		t.Fatalf("expected 1 schema, got %d", reg.Len())
	}

	uri, err := FileURI(path)
	if err != nil {
		t.Fatalf("FileURI: %v", err)
	}
	byURI, ok := reg.Lookup(uri)
	if !ok {
		t.Fatalf("lookup by file URI %q failed", uri)
	}
	byRel, ok := reg.Lookup("./task.schema.json")
	if !ok {
		t.Fatalf("lookup by ./name failed")
	}
	byAbs, ok := reg.Lookup("/task.schema.json")
	if !ok {
		t.Fatalf("lookup by /name failed")
	}
	if !reflect.DeepEqual(byURI, byRel) || !reflect.DeepEqual(byRel, byAbs) {
		t.Fatalf("alias lookups returned different content")
	}
	// Aliases share one document value, they do not duplicate it.
	if reflect.ValueOf(byURI).Pointer() != reflect.ValueOf(byRel).Pointer() ||
		reflect.ValueOf(byRel).Pointer() != reflect.ValueOf(byAbs).Pointer() {
		t.Fatalf("alias lookups returned distinct document instances")
	}
}

func TestLoadRegistry_SkipsUnparseableSchema(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bad.schema.json", `{"type": `)
	writeFile(t, dir, "good.schema.json", stringSchema)
	reg, err := LoadRegistry(dir, nil)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if reg.Len() != 1 {
		t.Fatalf("expected bad schema to be skipped, got %d schemas", reg.Len())
	}
	if _, ok := reg.Lookup("./good.schema.json"); !ok {
		t.Fatalf("good schema missing from registry")
	}
	if _, ok := reg.Lookup("./bad.schema.json"); ok {
		t.Fatalf("bad schema should not be registered")
	}
}

func TestLoadRegistry_NonRecursive(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "top.schema.json", stringSchema)
	writeFile(t, dir, "nested/inner.schema.json", stringSchema)
	reg, err := LoadRegistry(dir, nil)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if reg.Len() != 1 {
		t.Fatalf("expected only top-level schemas, got %d", reg.Len())
	}
}

func TestRegistry_ResolveBasenameFallback(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "task.schema.json", stringSchema)
	reg, err := LoadRegistry(dir, nil)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	// A ref resolved against a different base still finds the schema.
	if _, ok := reg.Resolve("file:///somewhere/else/task.schema.json"); !ok {
		t.Fatalf("basename fallback failed")
	}
	if _, ok := reg.Resolve("file:///somewhere/else/unknown.schema.json"); ok {
		t.Fatalf("unknown schema should not resolve")
	}
}

func TestRegistry_LookupIsCaseSensitive(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Task.schema.json", stringSchema)
	reg, err := LoadRegistry(dir, nil)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if _, ok := reg.Lookup("./Task.schema.json"); !ok {
		t.Fatalf("exact-case lookup failed")
	}
	if _, ok := reg.Lookup("./task.schema.json"); ok {
		t.Fatalf("lookup should be case-sensitive")
	}
}

func TestLoadRegistry_MissingDirIsEmpty(t *testing.T) {
	reg, err := LoadRegistry("/definitely/not/a/dir", nil)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if reg.Len() != 0 {
		t.Fatalf("expected empty registry, got %d", reg.Len())
	}
}
