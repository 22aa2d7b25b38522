package host

import (
	"fmt"
	"strconv"
)

// Type-coercing accessors over the record's attribute map. Inventory data
// arrives from YAML and JSON decoding where numeric types vary (float64,
// int, or string), so these handle coercion and return the caller's default
// on any mismatch. Code that needs a hard failure on bad data uses the
// extract package instead.

// GetString returns the string at path, or defaultVal when the path is
// absent, nil, or not a string.
func (r *Record) GetString(path string, defaultVal string) string {
	val, ok := r.Lookup(path)
	if !ok || val == nil {
		return defaultVal
	}

	str, ok := val.(string)
	if !ok {
		return defaultVal
	}
	return str
}

// GetInt returns the integer at path with type coercion from int, int64,
// float64, and numeric strings. Returns defaultVal when the path is absent
// or the value cannot be converted.
func (r *Record) GetInt(path string, defaultVal int) int {
	val, ok := r.Lookup(path)
	if !ok || val == nil {
		return defaultVal
	}

	switch v := val.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
		return defaultVal
	default:
		return defaultVal
	}
}

// GetBool returns the boolean at path, or defaultVal when the path is
// absent, nil, or not a boolean.
func (r *Record) GetBool(path string, defaultVal bool) bool {
	val, ok := r.Lookup(path)
	if !ok || val == nil {
		return defaultVal
	}

	b, ok := val.(bool)
	if !ok {
		return defaultVal
	}
	return b
}

// GetFloat returns the float at path with type coercion from float64,
// float32, int, int64, and numeric strings. Returns defaultVal when the
// path is absent or the value cannot be converted.
func (r *Record) GetFloat(path string, defaultVal float64) float64 {
	val, ok := r.Lookup(path)
	if !ok || val == nil {
		return defaultVal
	}

	switch v := val.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			return parsed
		}
		return defaultVal
	default:
		return defaultVal
	}
}

// GetStringSlice returns the string list at path. It handles []string,
// []any (converting each element to a string), and a bare string (wrapped
// in a one-element slice). Returns nil when the path is absent or the value
// cannot be converted.
func (r *Record) GetStringSlice(path string) []string {
	val, ok := r.Lookup(path)
	if !ok || val == nil {
		return nil
	}

	if slice, ok := val.([]string); ok {
		return slice
	}

	if slice, ok := val.([]any); ok {
		result := make([]string, 0, len(slice))
		for _, item := range slice {
			if item == nil {
				continue
			}
			result = append(result, fmt.Sprintf("%v", item))
		}
		return result
	}

	if str, ok := val.(string); ok {
		return []string{str}
	}

	return nil
}

// GetMap returns the nested attribute map at path, or nil when the path is
// absent or the value is not a map.
func (r *Record) GetMap(path string) map[string]any {
	val, ok := r.Lookup(path)
	if !ok || val == nil {
		return nil
	}

	nested, ok := val.(map[string]any)
	if !ok {
		return nil
	}
	return nested
}
