package indicator

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Options is the parameter bag passed to Compute. Keys are the parameter names
// declared by Params(); values are whatever a JSON or YAML decoder produced.
// Accessors never fail: a missing or unusable value yields the default.
type Options map[string]any

// Int returns the named parameter as an int.
func (o Options) Int(name string, def int) int {
	v, ok := o[name]
	if !ok {
		return def
	}

	f, ok := toFloat(v)
	if !ok || !isInt(f) {
		return def
	}

	return int(f)
}

// Float returns the named parameter as a float64.
func (o Options) Float(name string, def float64) float64 {
	v, ok := o[name]
	if !ok {
		return def
	}

	f, ok := toFloat(v)
	if !ok {
		return def
	}

	return f
}

// Bool returns the named parameter as a bool.
func (o Options) Bool(name string, def bool) bool {
	switch v := o[name].(type) {
	case bool:
		return v
	case string:
		b, err := strconv.ParseBool(v)
		if err != nil {
			return def
		}

		return b
	default:
		return def
	}
}

// Ints returns the named parameter as a list of ints. Lists containing a
// non-integer element fall back to the default.
func (o Options) Ints(name string, def []int) []int {
	v, ok := o[name]
	if !ok {
		return def
	}

	var items []any

	switch list := v.(type) {
	case []int:
		return list
	case []any:
		items = list
	case string:
		for _, part := range strings.Split(list, ",") {
			items = append(items, strings.TrimSpace(part))
		}
	default:
		return def
	}

	out := make([]int, 0, len(items))

	for _, item := range items {
		f, ok := toFloat(item)
		if !ok || !isInt(f) {
			return def
		}

		out = append(out, int(f))
	}

	return out
}

// Merge returns a new bag with override's keys layered over o.
func (o Options) Merge(override Options) Options {
	merged := make(Options, len(o)+len(override))
	for k, v := range o {
		merged[k] = v
	}

	for k, v := range override {
		merged[k] = v
	}

	return merged
}

// isInt reports whether f is a whole number within the int32 range.
func isInt(f float64) bool {
	return f == math.Trunc(f) && math.Abs(f) <= math.MaxInt32
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, !math.IsNaN(n) && !math.IsInf(n, 0)
	case json.Number:
		f, err := n.Float64()

		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)

		return f, err == nil && !math.IsNaN(f) && !math.IsInf(f, 0)
	default:
		return 0, false
	}
}
