package validate

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeSchemaViolation = "schema_violation"
	CodeLoadFailure     = "load_failure"
)

// Issue represents a single validation entry.
type Issue struct {
	Path    []string // Instance location segments from the document root.
	Code    string   // One of the codes listed above.
	Message string
	// SchemaLocation records the sub-schema location that rejected the value,
	// when known.
	SchemaLocation string
}

// Pointer renders the instance location as a JSON-pointer-like path,
// "/" for the document root.
func (i Issue) Pointer() string {
	if len(i.Path) == 0 {
		return "/"
	}
	return "/" + strings.Join(i.Path, "/")
}

// Issues is a collection of validation errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. schema_violation at /path
		fmt.Fprintf(b, "%s at %s", it.Code, it.Pointer())
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}
