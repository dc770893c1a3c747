// Package jsonc removes comments from JSON-with-comments text.
package jsonc

import "strings"

// scanState tracks the scanner position relative to string literals so that
// comment markers inside strings are never touched.
type scanState int

const (
	stateNormal scanState = iota
	stateString
	stateEscape
)

// Strip removes // and /* */ comments from text. The output has exactly as
// many newline characters as the input: a line comment keeps its terminating
// newline, and every newline inside a block comment is re-emitted. Later
// line lookups against the original file therefore stay valid.
//
// Block comments do not nest. An unterminated block comment or string
// literal runs to the end of the input; the malformed result is left for the
// JSON parser to reject.
func Strip(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	st := stateNormal
	i := 0
	for i < len(text) {
		c := text[i]
		switch st {
		case stateNormal:
			switch {
			case c == '"':
				b.WriteByte(c)
				st = stateString
				i++
			case c == '/' && i+1 < len(text) && text[i+1] == '/':
				for i < len(text) && text[i] != '\n' {
					i++
				}
				if i < len(text) {
					b.WriteByte('\n')
					i++
				}
			case c == '/' && i+1 < len(text) && text[i+1] == '*':
				i += 2
				for i+1 < len(text) && !(text[i] == '*' && text[i+1] == '/') {
					if text[i] == '\n' {
						b.WriteByte('\n')
					}
					i++
				}
				// A trailing lone character before EOF cannot close the
				// comment; it is consumed along with the terminator.
				i += 2
			default:
				b.WriteByte(c)
				i++
			}
		case stateString:
			b.WriteByte(c)
			switch c {
			case '\\':
				st = stateEscape
			case '"':
				st = stateNormal
			}
			i++
		case stateEscape:
			// Single-character lookahead only: this keeps \" from closing
			// the string, it does not validate the escape itself.
			b.WriteByte(c)
			st = stateString
			i++
		}
	}
	return b.String()
}
