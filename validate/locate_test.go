package validate

import "testing"

func TestFindLineNumber(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "tasks.jsonc", `{
	// mentions "NoSmallGlobe" in a comment
	"Other": "a string that mentions NoSmallGlobe",
	"NoSmallGlobe": {
		"recognition": "TemplateMatch"
	}
}`)

	line, ok := FindLineNumber(path, []string{"NoSmallGlobe", "recognition"})
	if !ok {
		t.Fatalf("expected to locate key")
	}
	if line != 4 {
		t.Fatalf("expected line 4, got %d", line)
	}
}

func TestFindLineNumber_OnlyFirstSegment(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "tasks.json", `{
	"Task": {
		"recognition": "x"
	}
}`)
	line, ok := FindLineNumber(path, []string{"Task", "recognition"})
	if !ok || line != 2 {
		t.Fatalf("expected line of top-level key (2), got %d ok=%v", line, ok)
	}
}

func TestFindLineNumber_KeyWithSpaceBeforeColon(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "tasks.json", "{\n\"Task\" : {}\n}")
	line, ok := FindLineNumber(path, []string{"Task"})
	if !ok || line != 2 {
		t.Fatalf("expected line 2, got %d ok=%v", line, ok)
	}
}

func TestFindLineNumber_NotFound(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "tasks.json", `{"Task": {}}`)

	if _, ok := FindLineNumber(path, []string{"Missing"}); ok {
		t.Fatalf("expected miss for absent key")
	}
	if _, ok := FindLineNumber(path, nil); ok {
		t.Fatalf("expected miss for empty path")
	}
	if _, ok := FindLineNumber(dir+"/nope.json", []string{"Task"}); ok {
		t.Fatalf("expected miss for unreadable file")
	}
}

func TestFindLineNumber_RegexMetacharactersInKey(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "tasks.json", "{\n\"a.b*c\": 1\n}")
	line, ok := FindLineNumber(path, []string{"a.b*c"})
	if !ok || line != 2 {
		t.Fatalf("expected line 2 for quoted metacharacter key, got %d ok=%v", line, ok)
	}
}
