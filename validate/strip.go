package validate

import "github.com/MaaXYZ/MaaPracticeBoilerplate/internal/jsonc"

// StripComments is a thin wrapper that removes // and /* */ comments from
// JSONC text. The implementation delegates to internal/jsonc.
//
// The output always contains exactly as many newline characters as the
// input, and comment markers inside string literals are left untouched.
func StripComments(text string) string {
	return jsonc.Strip(text)
}
