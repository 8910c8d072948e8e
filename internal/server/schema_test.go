package server

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDocumentSchema(t *testing.T) {
	schema := BuildCreateDocumentSchema()

	marshal := func(v any) []byte {
		b, err := json.Marshal(v)
		require.NoError(t, err)
		return b
	}

	t.Run("valid payload", func(t *testing.T) {
		payload := marshal(map[string]any{
			"type":     "ORDER",
			"currency": "MKD",
			"supplier": "ДООЕЛ Велес Трејд",
			"items": []map[string]any{
				{"name": "Box", "qty": 2, "unit_price": 100, "vat_percent": 18},
			},
		})
		assert.NoError(t, ValidateJSONAgainstSchema(schema, payload))
	})

	t.Run("unknown document type", func(t *testing.T) {
		payload := marshal(map[string]any{"type": "RECEIPT", "currency": "MKD"})
		assert.Error(t, ValidateJSONAgainstSchema(schema, payload))
	})

	t.Run("unknown currency", func(t *testing.T) {
		payload := marshal(map[string]any{"type": "ORDER", "currency": "JPY"})
		assert.Error(t, ValidateJSONAgainstSchema(schema, payload))
	})

	t.Run("negative quantity", func(t *testing.T) {
		payload := marshal(map[string]any{
			"type":     "INVOICE",
			"currency": "EUR",
			"items": []map[string]any{
				{"name": "Box", "qty": -1, "unit_price": 100},
			},
		})
		assert.Error(t, ValidateJSONAgainstSchema(schema, payload))
	})

	t.Run("vat percent above hundred", func(t *testing.T) {
		payload := marshal(map[string]any{
			"type":     "INVOICE",
			"currency": "EUR",
			"items": []map[string]any{
				{"name": "Box", "qty": 1, "unit_price": 100, "vat_percent": 120},
			},
		})
		assert.Error(t, ValidateJSONAgainstSchema(schema, payload))
	})

	t.Run("item without a name", func(t *testing.T) {
		payload := marshal(map[string]any{
			"type":     "ORDER",
			"currency": "USD",
			"items": []map[string]any{
				{"qty": 1, "unit_price": 100},
			},
		})
		assert.Error(t, ValidateJSONAgainstSchema(schema, payload))
	})
}
