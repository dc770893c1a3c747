package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// registryLoader resolves $ref targets from the registry only. Every URL the
// registry cannot serve is refused, so schema resolution never touches the
// filesystem or the network during compilation and validation.
type registryLoader struct {
	reg *Registry
}

func (l registryLoader) Load(rawURL string) (any, error) {
	if doc, ok := l.reg.Resolve(rawURL); ok {
		return doc, nil
	}
	return nil, fmt.Errorf("schema %q is not in the registry (remote retrieval is disabled)", rawURL)
}

// Validator checks documents against a compiled root schema. References are
// resolved lazily through the registry the validator was built with.
type Validator struct {
	schema  *jsonschema.Schema
	printer *message.Printer
}

// NewValidator compiles the schema registered under rootURI. The compiler's
// default draft comes from the root document's $schema value; documents that
// declare a standard dialect URI are additionally bound by the compiler's
// own dialect handling.
func NewValidator(rootURI string, reg *Registry) (*Validator, error) {
	root, ok := reg.Resolve(rootURI)
	if !ok {
		return nil, fmt.Errorf("root schema %q is not in the registry", rootURI)
	}
	c := jsonschema.NewCompiler()
	c.DefaultDraft(SelectDraft(root))
	c.UseLoader(registryLoader{reg: reg})
	schema, err := c.Compile(rootURI)
	if err != nil {
		return nil, fmt.Errorf("compiling schema %q: %w", rootURI, err)
	}
	return &Validator{
		schema:  schema,
		printer: message.NewPrinter(language.English),
	}, nil
}

// Validate applies the schema to doc and returns one Issue per leaf
// violation. A nil result means the document is valid.
func (v *Validator) Validate(doc any) Issues {
	err := v.schema.Validate(doc)
	if err == nil {
		return nil
	}
	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return Issues{{Code: CodeSchemaViolation, Message: err.Error()}}
	}
	return v.collect(nil, verr)
}

// collect flattens the validator's cause tree into leaf issues.
func (v *Validator) collect(iss Issues, e *jsonschema.ValidationError) Issues {
	if len(e.Causes) == 0 {
		iss = AppendIssues(iss, Issue{
			Code:           CodeSchemaViolation,
			Path:           e.InstanceLocation,
			Message:        e.ErrorKind.LocalizedString(v.printer),
			SchemaLocation: schemaLocation(e),
		})
		return iss
	}
	for _, cause := range e.Causes {
		iss = v.collect(iss, cause)
	}
	return iss
}

func schemaLocation(e *jsonschema.ValidationError) string {
	kp := e.ErrorKind.KeywordPath()
	if len(kp) == 0 {
		return e.SchemaURL
	}
	return e.SchemaURL + "/" + strings.Join(kp, "/")
}
