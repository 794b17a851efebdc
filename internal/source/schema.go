package source

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed todos.schema.json
var defaultSchema []byte

const defaultSchemaURL = "todos.schema.json"

// ErrSchema marks payloads rejected by the collection schema.
var ErrSchema = errors.New("payload does not match todo schema")

// Validator checks raw JSON payloads against a compiled schema.
type Validator struct {
	schema *jsonschema.Schema
}

// NewValidator compiles schemaFile, or the built-in schema when it is empty.
func NewValidator(schemaFile string) (*Validator, error) {
	compiler := jsonschema.NewCompiler()
	url := schemaFile
	if url == "" {
		url = defaultSchemaURL
		if err := compiler.AddResource(url, bytes.NewReader(defaultSchema)); err != nil {
			return nil, fmt.Errorf("add schema: %w", err)
		}
	}
	schema, err := compiler.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return &Validator{schema: schema}, nil
}

// Validate reports ErrSchema, wrapping the first failure, when b does not
// conform. Malformed JSON is reported as a plain decode error.
func (v *Validator) Validate(b []byte) error {
	var doc any
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}
	if err := v.schema.Validate(doc); err != nil {
		var ve *jsonschema.ValidationError
		if errors.As(err, &ve) {
			leaf := firstLeaf(ve)
			return fmt.Errorf("%w: %s: %s", ErrSchema, leaf.InstanceLocation, leaf.Message)
		}
		return fmt.Errorf("%w: %v", ErrSchema, err)
	}
	return nil
}

func firstLeaf(ve *jsonschema.ValidationError) *jsonschema.ValidationError {
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	return ve
}
