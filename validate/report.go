package validate

import (
	"fmt"
	"strings"
)

// maxAnnotatedIssues caps the number of annotated errors emitted per file.
const maxAnnotatedIssues = 10

// Report is the validation outcome for one file.
type Report struct {
	File   string
	Issues Issues
}

// OK reports whether the file validated cleanly.
func (r Report) OK() bool { return len(r.Issues) == 0 }

// Summary aggregates the per-file reports of one run.
type Summary struct {
	Reports []Report
}

// OK reports overall success: every recorded report has no issues.
func (s *Summary) OK() bool {
	for _, r := range s.Reports {
		if !r.OK() {
			return false
		}
	}
	return true
}

// Annotation formats a GitHub Actions error annotation for one issue. The
// line clause is omitted when line is zero (no source line could be
// located). Schema violations carry the instance pointer; load failures
// carry the message alone.
func Annotation(file string, line int, iss Issue) string {
	var b strings.Builder
	b.WriteString("::error file=")
	b.WriteString(file)
	if line > 0 {
		fmt.Fprintf(&b, ",line=%d", line)
	}
	if iss.Code == CodeSchemaViolation {
		fmt.Fprintf(&b, ",title=Schema Validation Error::%s: %s", iss.Pointer(), iss.Message)
	} else {
		fmt.Fprintf(&b, ",title=Validation Error::%s", iss.Message)
	}
	return b.String()
}
