package validate

import (
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// SelectDraft returns the JSON Schema dialect for a schema document based on
// its $schema value. Matching is by substring against known dialect URI
// fragments rather than full URI equality, deliberately tolerating minor
// vendor variation. Documents without a usable $schema default to 2020-12.
func SelectDraft(doc any) *jsonschema.Draft {
	obj, ok := doc.(map[string]any)
	if !ok {
		return jsonschema.Draft2020
	}
	uri, ok := obj["$schema"].(string)
	if !ok {
		return jsonschema.Draft2020
	}
	switch {
	case strings.Contains(uri, "draft-07"), strings.Contains(uri, "draft/07"):
		return jsonschema.Draft7
	case strings.Contains(uri, "2020-12"):
		return jsonschema.Draft2020
	default:
		return jsonschema.Draft2020
	}
}
