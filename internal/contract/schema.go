package contract

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildContractInfoJSONSchema returns a JSON-Schema (draft 2020-12
// subset) describing the serialized ContractInfo. It is used to check
// the record before it is persisted alongside the extraction job.
func BuildContractInfoJSONSchema() map[string]any {
	position := map[string]any{"type": "integer", "minimum": 0.0}
	dateRef := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"date":          map[string]any{"type": "string", "pattern": `^\d{4}-\d{2}-\d{2}$`},
			"original_text": map[string]any{"type": "string", "minLength": 1},
			"position":      position,
		},
		"required": []string{"date", "original_text", "position"},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"parties": map[string]any{
				"type":     "array",
				"maxItems": 10,
				"items": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"properties": map[string]any{
						"name":     map[string]any{"type": "string", "minLength": 1},
						"type":     map[string]any{"type": "string"},
						"position": position,
					},
					"required": []string{"name", "type", "position"},
				},
			},
			"dates": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties": map[string]any{
					"contract_date":   dateRef,
					"effective_date":  dateRef,
					"expiration_date": dateRef,
					"all_dates":       map[string]any{"type": "array", "items": dateRef},
				},
			},
			"amounts": map[string]any{
				"type":     "array",
				"maxItems": 5,
				"items": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"properties": map[string]any{
						"value":         map[string]any{"type": "number"},
						"original_text": map[string]any{"type": "string", "minLength": 1},
						"currency":      map[string]any{"type": "string", "enum": []string{"JPY", "USD", "EUR", "UNKNOWN"}},
						"position":      position,
					},
					"required": []string{"value", "original_text", "currency", "position"},
				},
			},
			"key_terms": map[string]any{
				"type":     "array",
				"maxItems": 20,
				"items": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"properties": map[string]any{
						"keyword":    map[string]any{"type": "string", "minLength": 1},
						"text":       map[string]any{"type": "string"},
						"importance": map[string]any{"type": "string", "enum": []string{"high", "medium"}},
					},
					"required": []string{"keyword", "text", "importance"},
				},
			},
			"clauses": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"properties": map[string]any{
						"type":    map[string]any{"type": "string"},
						"content": map[string]any{"type": "string", "maxLength": 500},
						"keyword": map[string]any{"type": "string"},
					},
					"required": []string{"type", "content", "keyword"},
				},
			},
		},
		"required": []string{"parties", "dates", "amounts", "key_terms", "clauses"},
	}
}

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
