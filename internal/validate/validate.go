// Package validate holds the request payload checks shared by the
// entity services. Payloads arrive as generic JSON objects because the
// partial-update endpoints accept arbitrary subsets of fields.
package validate

import "fmt"

// MissingFieldError identifies the first required field that is absent
// or empty in a payload.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("Missing or empty %s", e.Field)
}

// RequiredFields checks each field in order and fails on the first one
// that is absent from the payload or carries an empty value.
func RequiredFields(payload map[string]any, fields ...string) error {
	for _, field := range fields {
		value, ok := payload[field]
		if !ok || isEmpty(value) {
			return &MissingFieldError{Field: field}
		}
	}
	return nil
}

// isEmpty mirrors JSON falsiness: null, empty string, zero number,
// false, and zero-length arrays or objects all count as empty.
func isEmpty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case bool:
		return !v
	case float64:
		return v == 0
	case int:
		return v == 0
	case []any:
		return len(v) == 0
	case map[string]any:
		return len(v) == 0
	default:
		return false
	}
}
