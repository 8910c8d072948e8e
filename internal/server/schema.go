package server

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/petarmilev/invoice-recon/constants"
)

// BuildCreateDocumentSchema returns a JSON-Schema (draft 2020-12 subset) for
// the create-document payload. Submitted documents pass through human review
// in the client, so the schema is the last line of defence against malformed
// or out-of-range values reaching the database.
func BuildCreateDocumentSchema() map[string]any {
	item := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"name":        map[string]any{"type": "string", "minLength": 1},
			"qty":         map[string]any{"type": "number", "minimum": 0},
			"unit_price":  map[string]any{"type": "number", "minimum": 0},
			"vat_percent": map[string]any{"type": "number", "minimum": 0, "maximum": 100},
		},
		"required": []string{"name", "qty", "unit_price"},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": true,
		"properties": map[string]any{
			"type":       map[string]any{"type": "string", "enum": []string{"ORDER", "INVOICE"}},
			"doc_number": map[string]any{"type": "string"},
			"doc_date":   map[string]any{"type": "string"},
			"due_date":   map[string]any{"type": "string"},
			"supplier":   map[string]any{"type": "string"},
			"currency":   map[string]any{"type": "string", "enum": constants.CurrencyCodes()},
			"items": map[string]any{
				"type":  "array",
				"items": item,
			},
		},
		"required": []string{"type", "currency"},
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
