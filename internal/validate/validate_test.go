package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequiredFieldsAllPresent(t *testing.T) {
	payload := map[string]any{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "secret",
	}
	err := RequiredFields(payload, "username", "email", "password")
	assert.NoError(t, err)
}

func TestRequiredFieldsReportsFirstMissingInOrder(t *testing.T) {
	payload := map[string]any{
		"password": "secret",
	}
	err := RequiredFields(payload, "username", "email", "password")
	require.Error(t, err)

	var missing *MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "username", missing.Field)
	assert.Equal(t, "Missing or empty username", err.Error())
}

func TestRequiredFieldsEmptyValues(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{"nil", nil},
		{"empty string", ""},
		{"zero number", float64(0)},
		{"false", false},
		{"empty array", []any{}},
		{"empty object", map[string]any{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := map[string]any{"field": tt.value}
			err := RequiredFields(payload, "field")
			require.Error(t, err)

			var missing *MissingFieldError
			require.ErrorAs(t, err, &missing)
			assert.Equal(t, "field", missing.Field)
		})
	}
}

func TestRequiredFieldsNonEmptyValues(t *testing.T) {
	payload := map[string]any{
		"title": "Beach house",
		"price": float64(250000),
		"rooms": float64(3),
	}
	assert.NoError(t, RequiredFields(payload, "title", "price", "rooms"))
}
