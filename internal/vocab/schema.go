package vocab

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// sourceSchema describes the structural shape of a vocabulary source
// document: an object with a "words" array of objects. Field-level
// validation (id/german/english present and non-empty) happens per
// record so that a document with a few bad entries still contributes
// its valid ones.
var sourceSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"words": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "object"},
		},
	},
	"required": []any{"words"},
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// validateSource checks a raw source document against sourceSchema.
func validateSource(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := getCompiledSchema()
	if err != nil {
		return fmt.Errorf("compile source schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

func getCompiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value (any), not
		// raw bytes. Marshal then unmarshal to get a clean representation.
		defBytes, err := json.Marshal(sourceSchema)
		if err != nil {
			compileErr = err
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = err
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://vocabulary-source.json", defParsed); err != nil {
			compileErr = err
			return
		}
		compiledSchema, compileErr = c.Compile("schema://vocabulary-source.json")
	})
	return compiledSchema, compileErr
}
