package indicator

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/rxtech-lab/argo-indicators/internal/types"
)

// Result maps result keys (display names, optionally suffixed with a
// component) to series aligned with the input candles.
type Result map[string]types.Series

// Keys returns the result keys in sorted order.
func (r Result) Keys() []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}

// Round returns a copy with every defined value rounded half away from zero
// to places decimal places. A negative places value returns an unrounded copy.
func (r Result) Round(places int32) Result {
	out := make(Result, len(r))

	for key, series := range r {
		rounded := types.NewSeries(len(series))

		for i := range series {
			v, ok := series.At(i)
			if !ok {
				continue
			}

			if places >= 0 {
				v = decimal.NewFromFloat(v).Round(places).InexactFloat64()
			}

			rounded.Set(i, v)
		}

		out[key] = rounded
	}

	return out
}
