package constraint

import (
	"encoding/json"
	"reflect"
	"sort"
	"strings"

	"github.com/ohler55/ojg/jp"

	"github.com/getfaked/faked/pkg/callspec"
)

// jsonPath accepts structured values satisfying every JSONPath condition.
type jsonPath struct {
	conditions map[string]any
}

// JSONPath returns a constraint over structured argument values. Each map
// entry pairs a JSONPath expression with its expected value, or with an
// existence check of the form map[string]any{"exists": true/false}. All
// conditions must hold.
//
// String and []byte arguments are parsed as JSON documents; other values are
// normalized through JSON marshaling so structs and maps match uniformly.
func JSONPath(conditions map[string]any) callspec.Constraint {
	return jsonPath{conditions: conditions}
}

func (c jsonPath) Matches(value any) bool {
	if len(c.conditions) == 0 {
		return false
	}

	data, ok := normalizeJSON(value)
	if !ok {
		return false
	}

	for path, expected := range c.conditions {
		if !matchSinglePath(path, expected, data) {
			return false
		}
	}
	return true
}

func (c jsonPath) String() string {
	// Deterministic rendering: paths in sorted order.
	paths := make([]string, 0, len(c.conditions))
	for path := range c.conditions {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return "<jsonpath " + strings.Join(paths, " ") + ">"
}

// normalizeJSON converts an argument value into the generic JSON data model
// (maps, slices, float64, string, bool, nil).
func normalizeJSON(value any) (any, bool) {
	var raw []byte
	switch v := value.(type) {
	case nil:
		return nil, false
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return nil, false
		}
		raw = encoded
	}

	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		// Not valid JSON - no match rather than an error.
		return nil, false
	}
	return data, true
}

// matchSinglePath evaluates one JSONPath condition against the data.
func matchSinglePath(path string, expected any, data any) bool {
	x, err := jp.ParseString(path)
	if err != nil {
		// Invalid JSONPath expression - treat as no match.
		return false
	}

	results := x.Get(data)

	if len(results) == 0 {
		// Nothing found only satisfies a non-existence check.
		return isExistenceCheck(expected) && !getExistsValue(expected)
	}

	if isExistenceCheck(expected) {
		return getExistsValue(expected)
	}

	// Wildcard paths can return multiple results; any match suffices.
	for _, result := range results {
		if valuesEqual(result, expected) {
			return true
		}
	}
	return false
}

// isExistenceCheck determines if the expected value is an existence check
// object: a map with a single "exists" key.
func isExistenceCheck(expected any) bool {
	m, ok := expected.(map[string]any)
	if !ok {
		return false
	}
	_, hasExists := m["exists"]
	return hasExists && len(m) == 1
}

// getExistsValue extracts the boolean value from an existence check.
func getExistsValue(expected any) bool {
	m, ok := expected.(map[string]any)
	if !ok {
		return false
	}
	b, ok := m["exists"].(bool)
	return ok && b
}

// valuesEqual compares two values for equality, handling the numeric type
// coercion JSON introduces (all numbers decode as float64).
func valuesEqual(actual, expected any) bool {
	if actual == nil && expected == nil {
		return true
	}
	if actual == nil || expected == nil {
		return false
	}

	if reflect.DeepEqual(actual, expected) {
		return true
	}

	actualNum, actualIsNum := toFloat64(actual)
	expectedNum, expectedIsNum := toFloat64(expected)
	if actualIsNum && expectedIsNum {
		return actualNum == expectedNum
	}

	return false
}

// toFloat64 attempts to convert a value to float64.
func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case int16:
		return float64(n), true
	case int8:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint8:
		return float64(n), true
	default:
		return 0, false
	}
}
