package validate

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
)

// DecodeError reports a JSONC file that failed to parse after comment
// stripping. Line and Col are 1-based positions in the stripped text (which
// shares line numbering with the original) and are zero when the parser did
// not report an offset.
type DecodeError struct {
	Path string
	Line int
	Col  int
	// DumpPath is the debug copy of the stripped text, empty when the dump
	// could not be written. Best effort only.
	DumpPath string
	Err      error
}

func (e *DecodeError) Error() string {
	msg := fmt.Sprintf("decoding %s: %v", e.Path, e.Err)
	if e.Line > 0 {
		msg = fmt.Sprintf("decoding %s:%d:%d: %v", e.Path, e.Line, e.Col, e.Err)
	}
	if e.DumpPath != "" {
		msg += fmt.Sprintf(" (stripped content saved to %s)", e.DumpPath)
	}
	return msg
}

func (e *DecodeError) Unwrap() error { return e.Err }

// LoadFile reads a JSON or JSONC file, strips comments, and decodes it.
// Numbers decode as json.Number so schema constraints see exact decimal
// text. Parse failures return a *DecodeError carrying the parser position
// and, when possible, the path of a debug dump of the stripped text.
func LoadFile(path string) (any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	stripped := StripComments(string(raw))

	dec := json.NewDecoder(strings.NewReader(stripped))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, newDecodeError(path, stripped, err, dec.InputOffset())
	}
	if dec.More() {
		err := fmt.Errorf("unexpected trailing data after top-level value")
		return nil, newDecodeError(path, stripped, err, dec.InputOffset())
	}
	return doc, nil
}

func newDecodeError(path, stripped string, err error, fallbackOffset int64) *DecodeError {
	de := &DecodeError{Path: path, Err: err}
	offset := fallbackOffset
	var syn *json.SyntaxError
	if errors.As(err, &syn) {
		offset = syn.Offset
	}
	de.Line, de.Col = lineCol(stripped, offset)
	de.DumpPath = dumpStripped(path, stripped)
	return de
}

// lineCol converts a byte offset into 1-based line and column numbers.
func lineCol(text string, offset int64) (int, int) {
	if offset < 0 {
		return 0, 0
	}
	if offset > int64(len(text)) {
		offset = int64(len(text))
	}
	head := text[:offset]
	line := strings.Count(head, "\n") + 1
	col := int(offset) - strings.LastIndexByte(head, '\n')
	return line, col
}

// dumpStripped writes the stripped text next to the temp dir so a human can
// inspect exactly what the parser saw. Failure to write is ignored.
func dumpStripped(path, stripped string) string {
	dump := filepath.Join(os.TempDir(), "debug_"+filepath.Base(path))
	if err := os.WriteFile(dump, []byte(stripped), 0o644); err != nil {
		return ""
	}
	return dump
}
