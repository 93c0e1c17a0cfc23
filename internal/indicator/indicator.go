package indicator

import (
	"github.com/rxtech-lab/argo-indicators/internal/types"
)

// Indicator defines the methods every technical indicator must implement.
//
// Compute is a pure function of its arguments: the returned series always has
// len(candles) entries, and indices without enough history are None.
type Indicator interface {
	// Name returns the stable catalog key of the indicator
	Name() types.IndicatorType
	// Title returns a human-readable name
	Title() string
	// Group returns the UI grouping of the indicator
	Group() types.IndicatorGroup
	// Params returns the parameters Compute reads from the option bag
	Params() []Param
	// Compute calculates the primary output series
	Compute(candles []types.Candle, opts Options) types.Series
}

// MultiOutput is implemented by indicators that produce several named series.
// The map always contains the series Compute returns under one of its keys.
type MultiOutput interface {
	Components(candles []types.Candle, opts Options) map[string]types.Series
}

// Param declares one entry of an indicator's parameter bag.
type Param struct {
	Name    string          `json:"name"`
	Type    types.ParamType `json:"type"`
	Default any             `json:"default"`
}

func intParam(name string, def int) Param {
	return Param{Name: name, Type: types.ParamTypeInt, Default: def}
}

func floatParam(name string, def float64) Param {
	return Param{Name: name, Type: types.ParamTypeFloat, Default: def}
}

func intListParam(name string, def []int) Param {
	return Param{Name: name, Type: types.ParamTypeIntList, Default: def}
}

// DefaultOptions builds an option bag holding every declared default of ind.
func DefaultOptions(ind Indicator) Options {
	opts := make(Options)
	for _, p := range ind.Params() {
		opts[p.Name] = p.Default
	}

	return opts
}

// validPeriod reports whether a lookback window fits inside n candles.
func validPeriod(period, n int) bool {
	return period > 0 && period <= n
}
