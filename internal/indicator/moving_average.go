package indicator

import (
	"math"

	"github.com/rxtech-lab/argo-indicators/internal/types"
)

// SMAValues computes the simple moving average of a plain value sequence.
func SMAValues(values []float64, period int) types.Series {
	return smaOf(types.FromValues(values), period)
}

// EMAValues computes the SMA-seeded exponential moving average of a plain
// value sequence.
func EMAValues(values []float64, period int) types.Series {
	return emaOf(types.FromValues(values), period)
}

// WMAValues computes the weighted moving average of a plain value sequence.
func WMAValues(values []float64, period int) types.Series {
	return wmaOf(types.FromValues(values), period)
}

// SMA represents the Simple Moving Average of close prices.
type SMA struct {
	period int
}

// NewSMA creates a new SMA indicator with default configuration.
func NewSMA() Indicator {
	return &SMA{
		period: 20, // Default period
	}
}

func (s *SMA) Name() types.IndicatorType { return types.IndicatorTypeSMA }
func (s *SMA) Title() string { return "Simple Moving Average" }
func (s *SMA) Group() types.IndicatorGroup { return types.IndicatorGroupTrend }

func (s *SMA) Params() []Param {
	return []Param{intParam("period", s.period)}
}

// Compute returns the mean close over the trailing window.
func (s *SMA) Compute(candles []types.Candle, opts Options) types.Series {
	period := opts.Int("period", s.period)
	if !validPeriod(period, len(candles)) {
		return types.NewSeries(len(candles))
	}

	return SMAValues(types.Closes(candles), period)
}

// EMA represents the Exponential Moving Average of close prices.
type EMA struct {
	period int
}

// NewEMA creates a new EMA indicator with default configuration.
func NewEMA() Indicator {
	return &EMA{
		period: 14, // Default period
	}
}

func (e *EMA) Name() types.IndicatorType { return types.IndicatorTypeEMA }
func (e *EMA) Title() string { return "Exponential Moving Average" }
func (e *EMA) Group() types.IndicatorGroup { return types.IndicatorGroupTrend }

func (e *EMA) Params() []Param {
	return []Param{intParam("period", e.period)}
}

// Compute seeds with the SMA of the first full window and then applies
// ema[i] = close[i]*k + ema[i-1]*(1-k).
func (e *EMA) Compute(candles []types.Candle, opts Options) types.Series {
	period := opts.Int("period", e.period)
	if !validPeriod(period, len(candles)) {
		return types.NewSeries(len(candles))
	}

	return EMAValues(types.Closes(candles), period)
}

// WMA represents the linearly Weighted Moving Average of close prices.
type WMA struct {
	period int
}

// NewWMA creates a new WMA indicator with default configuration.
func NewWMA() Indicator {
	return &WMA{
		period: 14, // Default period
	}
}

func (w *WMA) Name() types.IndicatorType { return types.IndicatorTypeWMA }
func (w *WMA) Title() string { return "Weighted Moving Average" }
func (w *WMA) Group() types.IndicatorGroup { return types.IndicatorGroupTrend }

func (w *WMA) Params() []Param {
	return []Param{intParam("period", w.period)}
}

func (w *WMA) Compute(candles []types.Candle, opts Options) types.Series {
	period := opts.Int("period", w.period)
	if !validPeriod(period, len(candles)) {
		return types.NewSeries(len(candles))
	}

	return WMAValues(types.Closes(candles), period)
}

// HMA represents the Hull Moving Average.
type HMA struct {
	period int
}

// NewHMA creates a new HMA indicator with default configuration.
func NewHMA() Indicator {
	return &HMA{
		period: 10, // Default period
	}
}

func (h *HMA) Name() types.IndicatorType { return types.IndicatorTypeHMA }
func (h *HMA) Title() string { return "Hull Moving Average" }
func (h *HMA) Group() types.IndicatorGroup { return types.IndicatorGroupTrend }

func (h *HMA) Params() []Param {
	return []Param{intParam("period", h.period)}
}

// Compute smooths 2*WMA(period/2) - WMA(period) with WMA(round(sqrt(period))).
func (h *HMA) Compute(candles []types.Candle, opts Options) types.Series {
	period := opts.Int("period", h.period)
	if !validPeriod(period, len(candles)) || period < 2 {
		return types.NewSeries(len(candles))
	}

	closes := closeSeries(candles)
	half := wmaOf(closes, period/2)
	full := wmaOf(closes, period)
	diff := combine(half, full, func(x, y float64) float64 { return 2*x - y })

	return wmaOf(diff, int(math.Round(math.Sqrt(float64(period)))))
}

// DEMA represents the Double Exponential Moving Average, 2*EMA1 - EMA2.
type DEMA struct {
	period int
}

// NewDEMA creates a new DEMA indicator with default configuration.
func NewDEMA() Indicator {
	return &DEMA{
		period: 10, // Default period
	}
}

func (d *DEMA) Name() types.IndicatorType { return types.IndicatorTypeDEMA }
func (d *DEMA) Title() string { return "Double Exponential Moving Average" }
func (d *DEMA) Group() types.IndicatorGroup { return types.IndicatorGroupTrend }

func (d *DEMA) Params() []Param {
	return []Param{intParam("period", d.period)}
}

func (d *DEMA) Compute(candles []types.Candle, opts Options) types.Series {
	period := opts.Int("period", d.period)
	if !validPeriod(period, len(candles)) {
		return types.NewSeries(len(candles))
	}

	ema1 := emaOf(closeSeries(candles), period)
	ema2 := emaOf(ema1, period)

	return combine(ema1, ema2, func(e1, e2 float64) float64 { return 2*e1 - e2 })
}

// TEMA represents the Triple Exponential Moving Average, 3*EMA1 - 3*EMA2 + EMA3.
type TEMA struct {
	period int
}

// NewTEMA creates a new TEMA indicator with default configuration.
func NewTEMA() Indicator {
	return &TEMA{
		period: 10, // Default period
	}
}

func (t *TEMA) Name() types.IndicatorType { return types.IndicatorTypeTEMA }
func (t *TEMA) Title() string { return "Triple Exponential Moving Average" }
func (t *TEMA) Group() types.IndicatorGroup { return types.IndicatorGroupTrend }

func (t *TEMA) Params() []Param {
	return []Param{intParam("period", t.period)}
}

func (t *TEMA) Compute(candles []types.Candle, opts Options) types.Series {
	period := opts.Int("period", t.period)
	if !validPeriod(period, len(candles)) {
		return types.NewSeries(len(candles))
	}

	ema1, ema2, ema3 := tripleEMA(closeSeries(candles), period)
	partial := combine(ema1, ema2, func(e1, e2 float64) float64 { return 3*e1 - 3*e2 })

	return combine(partial, ema3, func(p, e3 float64) float64 { return p + e3 })
}

// tripleEMA chains EMA three times over s.
func tripleEMA(s types.Series, period int) (types.Series, types.Series, types.Series) {
	ema1 := emaOf(s, period)
	ema2 := emaOf(ema1, period)
	ema3 := emaOf(ema2, period)

	return ema1, ema2, ema3
}
