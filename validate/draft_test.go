package validate

import (
	"testing"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

func TestSelectDraft(t *testing.T) {
	cases := []struct {
		name string
		doc  any
		want *jsonschema.Draft
	}{
		{
			name: "draft-07",
			doc:  map[string]any{"$schema": "http://json-schema.org/draft-07/schema#"},
			want: jsonschema.Draft7,
		},
		{
			name: "draft/07 vendor variant",
			doc:  map[string]any{"$schema": "https://vendor.example/draft/07/schema"},
			want: jsonschema.Draft7,
		},
		{
			name: "2020-12",
			doc:  map[string]any{"$schema": "https://json-schema.org/draft/2020-12/schema"},
			want: jsonschema.Draft2020,
		},
		{
			name: "missing $schema defaults to 2020-12",
			doc:  map[string]any{"type": "object"},
			want: jsonschema.Draft2020,
		},
		{
			name: "unknown dialect defaults to 2020-12",
			doc:  map[string]any{"$schema": "https://vendor.example/custom"},
			want: jsonschema.Draft2020,
		},
		{
			name: "non-string $schema defaults to 2020-12",
			doc:  map[string]any{"$schema": 42},
			want: jsonschema.Draft2020,
		},
		{
			name: "non-object schema defaults to 2020-12",
			doc:  true,
			want: jsonschema.Draft2020,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := SelectDraft(c.doc); got != c.want {
				t.Fatalf("SelectDraft(%v) = %v, want %v", c.doc, got, c.want)
			}
		})
	}
}
