package validate

import (
	"bufio"
	"bytes"
	"os"
	"regexp"
)

// FindLineNumber returns the 1-based line of the first path segment (the
// top-level key) in the original, still-commented source file. Only lines
// where the quoted key is followed by a colon match, which guards against
// comments or string values that merely mention the key. Nested segments are
// deliberately not located; this is a best-effort diagnostic aid, not a
// source map.
func FindLineNumber(path string, segments []string) (int, bool) {
	if len(segments) == 0 || segments[0] == "" {
		return 0, false
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, false
	}
	pat, err := regexp.Compile(`"` + regexp.QuoteMeta(segments[0]) + `"\s*:`)
	if err != nil {
		return 0, false
	}
	sc := bufio.NewScanner(bytes.NewReader(raw))
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for n := 1; sc.Scan(); n++ {
		if pat.Match(sc.Bytes()) {
			return n, true
		}
	}
	return 0, false
}
