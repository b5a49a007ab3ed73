package editor

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ValueSchema validates literal values of complex data types against a JSON
// schema document. Validation happens eagerly, on every value update.
type ValueSchema struct {
	schema *gojsonschema.Schema
	source string
}

// NewValueSchema compiles a JSON schema document into a ValueSchema.
func NewValueSchema(document string) (*ValueSchema, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(document))
	if err != nil {
		return nil, fmt.Errorf("failed to compile value schema: %w", err)
	}

	return &ValueSchema{
		schema: schema,
		source: document,
	}, nil
}

// MustValueSchema is like NewValueSchema but panics on a malformed document.
// Intended for registry literals known at compile time.
func MustValueSchema(document string) *ValueSchema {
	s, err := NewValueSchema(document)
	if err != nil {
		panic(err)
	}
	return s
}

// Source returns the schema document the ValueSchema was compiled from.
func (s *ValueSchema) Source() string {
	return s.source
}

// Validate checks a candidate literal value against the schema.
func (s *ValueSchema) Validate(value any) error {
	result, err := s.schema.Validate(gojsonschema.NewGoLoader(value))
	if err != nil {
		return err
	}

	if !result.Valid() {
		reasons := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			reasons = append(reasons, desc.String())
		}

		return fmt.Errorf("schema validation failed: %s", strings.Join(reasons, "; "))
	}

	return nil
}
