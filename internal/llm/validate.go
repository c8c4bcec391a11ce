package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// schemaCache caches compiled JSON schemas by name.
var schemaCache sync.Map // map[string]*jsonschema.Schema

var errMissingSchema = errors.New("request has no output schema")

// validateContent parses raw as JSON and checks it against schema.
func validateContent(schema *Schema, raw json.RawMessage) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &ErrMalformedOutput{Content: raw, Err: err}
	}

	compiled, err := getCompiledSchema(schema)
	if err != nil {
		// A schema that does not compile is a programming error, but it
		// still has to surface as a typed failure.
		return &ErrSchemaViolation{Schema: schema.Name, Content: raw, Err: err}
	}

	if err := compiled.Validate(parsed); err != nil {
		return &ErrSchemaViolation{Schema: schema.Name, Content: raw, Err: err}
	}
	return nil
}

// getCompiledSchema returns a cached compiled schema or compiles and caches it.
func getCompiledSchema(schema *Schema) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(schema.Name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// jsonschema wants a value decoded by encoding/json, not a Go map with
	// typed slices, so round-trip the definition.
	defBytes, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	schemaURL := fmt.Sprintf("schema://%s.json", schema.Name)
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}

	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(schema.Name, compiled)
	return compiled, nil
}

// SchemaJSON renders the schema definition for prompt-embedded instructions.
func SchemaJSON(schema *Schema) string {
	b, err := json.MarshalIndent(schema.Definition, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(b)
}

// checkRequest rejects requests no provider can serve.
func checkRequest(req Request) error {
	if strings.TrimSpace(req.Prompt) == "" {
		return errors.New("request prompt is empty")
	}
	if req.Schema == nil {
		return errMissingSchema
	}
	return nil
}
