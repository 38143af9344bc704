package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "schema://winterarc-catalog.json"

var pair = map[string]any{
	"type":     "array",
	"items":    map[string]any{"type": "integer", "minimum": 0},
	"minItems": 2,
	"maxItems": 2,
}

var identifier = map[string]any{
	"type":    "string",
	"pattern": "^[a-z][a-z0-9_]*$",
}

// documentSchema describes the catalog document shape. Cross references
// (muscles, uniqueness) are checked separately in validate.go.
var documentSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"version": map[string]any{
			"type":    "string",
			"pattern": `^v\d+\.\d+\.\d+$`,
		},
		"workouts": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"type": identifier,
					"groups": map[string]any{
						"type":     "array",
						"minItems": 1,
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"name":    identifier,
								"muscles": map[string]any{"type": "array", "items": identifier},
							},
							"required":             []any{"name"},
							"additionalProperties": false,
						},
					},
				},
				"required":             []any{"type", "groups"},
				"additionalProperties": false,
			},
		},
		"schemes": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"goal":      identifier,
					"rep_range": pair,
					"ratio":     pair,
					"rest":      pair,
				},
				"required":             []any{"goal", "rep_range", "ratio", "rest"},
				"additionalProperties": false,
			},
		},
		"tempos": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type":    "string",
				"pattern": `^\d+ \d+ \d+$`,
			},
		},
		"exercises": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"name":        identifier,
					"type":        map[string]any{"enum": []any{"compound", "accessory"}},
					"environment": map[string]any{"enum": []any{"gym", "home", "both"}},
					"muscles":     map[string]any{"type": "array", "minItems": 1, "items": identifier},
					"unit":        map[string]any{"enum": []any{"reps", "seconds"}},
					"description": map[string]any{"type": "string", "minLength": 1},
				},
				"required":             []any{"name", "type", "muscles", "unit", "description"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"version", "workouts", "schemes", "tempos", "exercises"},
	"additionalProperties": false,
}

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// compiledSchema compiles documentSchema once and caches it.
func compiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		def, err := toJSONValue(documentSchema)
		if err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}

// validateShape checks a decoded YAML document against documentSchema.
func validateShape(raw any) error {
	sch, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile catalog schema: %w", err)
	}
	inst, err := toJSONValue(raw)
	if err != nil {
		return fmt.Errorf("normalize catalog: %w", err)
	}
	if err := sch.Validate(inst); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// toJSONValue round-trips v through JSON so the validator sees the value
// types it expects (json.Number, []any, map[string]any).
func toJSONValue(v any) (any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return jsonschema.UnmarshalJSON(bytes.NewReader(b))
}
