package rankings

import (
	"strconv"
	"strings"
)

// Record is a loosely-shaped input row as decoded from upstream JSON.
// Upstream field names drift between API versions, so consumers resolve
// values through an ordered list of candidate keys rather than a fixed schema.
type Record map[string]any

// value returns the first non-nil value among the candidate keys.
func (r Record) value(keys ...string) (any, bool) {
	for _, k := range keys {
		if v, ok := r[k]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// str resolves a trimmed string value. Numeric values are rendered in their
// shortest decimal form so IDs survive JSON's float64 decoding.
func (r Record) str(keys ...string) string {
	v, ok := r.value(keys...)
	if !ok {
		return ""
	}
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case bool:
		return strconv.FormatBool(t)
	}
	return ""
}

// num resolves a numeric value, accepting JSON numbers and numeric strings.
func (r Record) num(keys ...string) (float64, bool) {
	v, ok := r.value(keys...)
	if !ok {
		return 0, false
	}
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// boolean resolves a flag using loose truthiness: absent, nil, false, zero,
// and empty-string values are all false.
func (r Record) boolean(keys ...string) bool {
	v, ok := r.value(keys...)
	if !ok {
		return false
	}
	switch t := v.(type) {
	case bool:
		return t
	case float64:
		return t != 0
	case int:
		return t != 0
	case string:
		return t != ""
	}
	return false
}
