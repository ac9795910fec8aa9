package service

import (
	"fmt"
	"strconv"
)

// Payload values come out of generic JSON objects, so every field is
// an `any` that is usually a string or a float64. These helpers coerce
// them into the column types without being strict about the source type.
// There is no field-level type validation: a value that cannot be
// coerced (e.g. a non-numeric string for a numeric column) falls back
// to the zero value and is stored as such.

func asString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

func asFloat(value any) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case string:
		f, _ := strconv.ParseFloat(v, 64)
		return f
	default:
		return 0
	}
}

func asInt(value any) int {
	switch v := value.(type) {
	case float64:
		return int(v)
	case int:
		return v
	case string:
		i, _ := strconv.Atoi(v)
		return i
	default:
		return 0
	}
}

func asUint(value any) uint {
	i := asInt(value)
	if i < 0 {
		return 0
	}
	return uint(i)
}
