package util

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/MarcelRaschke/ccxt/common/number"
)

// SafeValue returns the raw value of the key or nil. A nil map is accepted.
func SafeValue(m map[string]interface{}, key string) interface{} {
	if m == nil {
		return nil
	}
	return m[key]
}

// SafeString returns the value of the key coerced to a string, or the
// default when the key is absent, nil or not representable.
func SafeString(m map[string]interface{}, key string, def string) string {
	switch v := SafeValue(m, key).(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case float64:
		return number.NumberToString(v)
	case float32:
		return number.NumberToString(float64(v))
	case int:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return def
	}
}

// SafeStringLower is SafeString lowercased. The default is returned as-is.
func SafeStringLower(m map[string]interface{}, key string, def string) string {
	if s := SafeString(m, key, ""); len(s) > 0 {
		return strings.ToLower(s)
	}
	return def
}

// SafeStringUpper is SafeString uppercased. The default is returned as-is.
func SafeStringUpper(m map[string]interface{}, key string, def string) string {
	if s := SafeString(m, key, ""); len(s) > 0 {
		return strings.ToUpper(s)
	}
	return def
}

// SafeFloat returns the value of the key coerced to a float64, or the
// default when the key is absent or not numeric.
func SafeFloat(m map[string]interface{}, key string, def float64) float64 {
	switch v := SafeValue(m, key).(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return f
		}
		return def
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return f
		}
		return def
	default:
		return def
	}
}

// SafeInteger returns the value of the key coerced to an int64, truncating
// fractional values, or the default when the key is absent or not numeric.
func SafeInteger(m map[string]interface{}, key string, def int64) int64 {
	switch v := SafeValue(m, key).(type) {
	case int:
		return int64(v)
	case int64:
		return v
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return n
		}
		if f, err := v.Float64(); err == nil {
			return int64(f)
		}
		return def
	case float64:
		return int64(v)
	case float32:
		return int64(v)
	case string:
		s := strings.TrimSpace(v)
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return int64(f)
		}
		return def
	default:
		return def
	}
}

// SafeTimestamp returns the value of the key as a millisecond timestamp,
// accepting integer milliseconds or fractional seconds written with a
// decimal point, or the default.
func SafeTimestamp(m map[string]interface{}, key string, def int64) int64 {
	var s string
	switch v := SafeValue(m, key).(type) {
	case string:
		s = strings.TrimSpace(v)
	case json.Number:
		s = v.String()
	default:
		return SafeInteger(m, key, def)
	}
	if strings.ContainsRune(s, '.') {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return int64(math.Round(f * 1000))
		}
		return def
	}
	return SafeInteger(m, key, def)
}

// SafeBool returns the value of the key as a bool or the default.
func SafeBool(m map[string]interface{}, key string, def bool) bool {
	if v, ok := SafeValue(m, key).(bool); ok {
		return v
	}
	return def
}

// SafeMap returns the value of the key as a nested map or nil.
func SafeMap(m map[string]interface{}, key string) map[string]interface{} {
	if v, ok := SafeValue(m, key).(map[string]interface{}); ok {
		return v
	}
	return nil
}

// SafeList returns the value of the key as a list or nil.
func SafeList(m map[string]interface{}, key string) []interface{} {
	if v, ok := SafeValue(m, key).([]interface{}); ok {
		return v
	}
	return nil
}
