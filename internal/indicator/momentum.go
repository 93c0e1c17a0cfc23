package indicator

import (
	"github.com/rxtech-lab/argo-indicators/internal/types"
)

// Momentum represents the price difference over a lookback period.
type Momentum struct {
	period int
}

// NewMomentum creates a new Momentum indicator with default configuration.
func NewMomentum() Indicator {
	return &Momentum{
		period: 10, // Default period
	}
}

// Name returns the name of the indicator.
func (m *Momentum) Name() types.IndicatorType { return types.IndicatorTypeMomentum }

func (m *Momentum) Title() string { return "Momentum" }

func (m *Momentum) Group() types.IndicatorGroup { return types.IndicatorGroupMomentum }

func (m *Momentum) Params() []Param {
	return []Param{intParam("period", m.period)}
}

// Compute returns close[i] - close[i-period].
func (m *Momentum) Compute(candles []types.Candle, opts Options) types.Series {
	period := opts.Int("period", m.period)
	out := types.NewSeries(len(candles))

	if !validPeriod(period, len(candles)) {
		return out
	}

	for i := period; i < len(candles); i++ {
		out.Set(i, candles[i].Close-candles[i-period].Close)
	}

	return out
}

// RateOfChange represents the percent price change over a lookback period.
type RateOfChange struct {
	period int
}

// NewRateOfChange creates a new ROC indicator with default configuration.
func NewRateOfChange() Indicator {
	return &RateOfChange{
		period: 12, // Default period
	}
}

// Name returns the name of the indicator.
func (r *RateOfChange) Name() types.IndicatorType { return types.IndicatorTypeRateOfChange }

func (r *RateOfChange) Title() string { return "Rate of Change" }

func (r *RateOfChange) Group() types.IndicatorGroup { return types.IndicatorGroupMomentum }

func (r *RateOfChange) Params() []Param {
	return []Param{intParam("period", r.period)}
}

// Compute returns 100*(close[i]-close[i-period])/close[i-period]; a zero base is None.
func (r *RateOfChange) Compute(candles []types.Candle, opts Options) types.Series {
	period := opts.Int("period", r.period)
	out := types.NewSeries(len(candles))

	if !validPeriod(period, len(candles)) {
		return out
	}

	for i := period; i < len(candles); i++ {
		base := candles[i-period].Close
		if base == 0 {
			continue
		}

		out.Set(i, 100*(candles[i].Close-base)/base)
	}

	return out
}

// TRIX represents the percent rate of change of a triple smoothed EMA.
type TRIX struct {
	period int
}

// NewTRIX creates a new TRIX indicator with default configuration.
func NewTRIX() Indicator {
	return &TRIX{
		period: 15, // Default period
	}
}

// Name returns the name of the indicator.
func (t *TRIX) Name() types.IndicatorType { return types.IndicatorTypeTRIX }

func (t *TRIX) Title() string { return "TRIX" }

func (t *TRIX) Group() types.IndicatorGroup { return types.IndicatorGroupMomentum }

func (t *TRIX) Params() []Param {
	return []Param{intParam("period", t.period)}
}

func (t *TRIX) Compute(candles []types.Candle, opts Options) types.Series {
	period := opts.Int("period", t.period)
	out := types.NewSeries(len(candles))

	if !validPeriod(period, len(candles)) {
		return out
	}

	_, _, ema3 := tripleEMA(closeSeries(candles), period)

	for i := 1; i < len(ema3); i++ {
		prev, okPrev := ema3.At(i - 1)
		cur, okCur := ema3.At(i)

		if okPrev && okCur && prev != 0 {
			out.Set(i, 100*(cur-prev)/prev)
		}
	}

	return out
}

// DetrendedPriceOscillator represents close minus its simple moving average.
type DetrendedPriceOscillator struct {
	period int
}

// NewDetrendedPriceOscillator creates a new DPO indicator with default configuration.
func NewDetrendedPriceOscillator() Indicator {
	return &DetrendedPriceOscillator{
		period: 20, // Default period
	}
}

// Name returns the name of the indicator.
func (d *DetrendedPriceOscillator) Name() types.IndicatorType {
	return types.IndicatorTypeDetrendedPriceOscillator
}

func (d *DetrendedPriceOscillator) Title() string { return "Detrended Price Oscillator" }

func (d *DetrendedPriceOscillator) Group() types.IndicatorGroup {
	return types.IndicatorGroupOscillator
}

func (d *DetrendedPriceOscillator) Params() []Param {
	return []Param{intParam("period", d.period)}
}

func (d *DetrendedPriceOscillator) Compute(candles []types.Candle, opts Options) types.Series {
	period := opts.Int("period", d.period)
	if !validPeriod(period, len(candles)) {
		return types.NewSeries(len(candles))
	}

	closes := closeSeries(candles)

	return combine(closes, smaOf(closes, period), func(c, sma float64) float64 { return c - sma })
}

// MACD represents the Moving Average Convergence Divergence indicator.
type MACD struct {
	shortPeriod  int
	longPeriod   int
	signalPeriod int
}

// NewMACD creates a new MACD indicator with the classic 12/26/9 configuration.
func NewMACD() Indicator {
	return &MACD{
		shortPeriod:  12,
		longPeriod:   26,
		signalPeriod: 9,
	}
}

// Name returns the name of the indicator.
func (m *MACD) Name() types.IndicatorType { return types.IndicatorTypeMACD }

func (m *MACD) Title() string { return "Moving Average Convergence Divergence" }

func (m *MACD) Group() types.IndicatorGroup { return types.IndicatorGroupTrend }

func (m *MACD) Params() []Param {
	return []Param{
		intParam("short_period", m.shortPeriod),
		intParam("long_period", m.longPeriod),
		intParam("signal_period", m.signalPeriod),
	}
}

// Compute returns the MACD line, EMA(short) - EMA(long).
func (m *MACD) Compute(candles []types.Candle, opts Options) types.Series {
	return macdLine(closeSeries(candles),
		opts.Int("short_period", m.shortPeriod),
		opts.Int("long_period", m.longPeriod))
}

// Components returns the MACD line, its signal EMA and the histogram.
func (m *MACD) Components(candles []types.Candle, opts Options) map[string]types.Series {
	line := m.Compute(candles, opts)
	signal := emaOf(line, opts.Int("signal_period", m.signalPeriod))

	return map[string]types.Series{
		"macd":      line,
		"signal":    signal,
		"histogram": combine(line, signal, func(l, s float64) float64 { return l - s }),
	}
}

func macdLine(closes types.Series, short, long int) types.Series {
	if !validPeriod(short, len(closes)) || !validPeriod(long, len(closes)) {
		return types.NewSeries(len(closes))
	}

	return combine(emaOf(closes, short), emaOf(closes, long), func(s, l float64) float64 { return s - l })
}

// SchaffTrendCycle represents the stochastic of the MACD line, smoothed twice.
type SchaffTrendCycle struct {
	shortPeriod int
	longPeriod  int
	cyclePeriod int
	fastK       int
	fastD       int
}

// NewSchaffTrendCycle creates a new Schaff Trend Cycle indicator with default configuration.
func NewSchaffTrendCycle() Indicator {
	return &SchaffTrendCycle{
		shortPeriod: 23,
		longPeriod:  50,
		cyclePeriod: 10,
		fastK:       1,
		fastD:       1,
	}
}

// Name returns the name of the indicator.
func (s *SchaffTrendCycle) Name() types.IndicatorType { return types.IndicatorTypeSchaffTrendCycle }

func (s *SchaffTrendCycle) Title() string { return "Schaff Trend Cycle" }

func (s *SchaffTrendCycle) Group() types.IndicatorGroup { return types.IndicatorGroupOscillator }

func (s *SchaffTrendCycle) Params() []Param {
	return []Param{
		intParam("short_period", s.shortPeriod),
		intParam("long_period", s.longPeriod),
		intParam("cycle_period", s.cyclePeriod),
		intParam("fast_k", s.fastK),
		intParam("fast_d", s.fastD),
	}
}

// Compute takes the stochastic %K of the MACD line over cycle_period, applies
// EMA(cycle_period) fast_k times and then fast_d more times for %D.
// A stochastic window containing any None is None; a flat window gives 0.
func (s *SchaffTrendCycle) Compute(candles []types.Candle, opts Options) types.Series {
	cycle := opts.Int("cycle_period", s.cyclePeriod)
	line := macdLine(closeSeries(candles),
		opts.Int("short_period", s.shortPeriod),
		opts.Int("long_period", s.longPeriod))

	k := smoothRepeated(stochasticOf(line, cycle), cycle, opts.Int("fast_k", s.fastK))

	return smoothRepeated(k, cycle, opts.Int("fast_d", s.fastD))
}

// smoothRepeated applies a period EMA up to passes times. A pass with
// period > 1 drops period-1 leading values, so the loop stops once nothing is
// defined; a period-1 EMA is the identity and is applied at most once.
func smoothRepeated(s types.Series, period, passes int) types.Series {
	for range max(passes, 0) {
		if s.Defined() == 0 {
			break
		}

		s = emaOf(s, period)
		if period <= 1 {
			break
		}
	}

	return s
}

// stochasticOf returns 100*(x-min)/(max-min) over a trailing window of s.
func stochasticOf(s types.Series, period int) types.Series {
	out := types.NewSeries(len(s))
	if period <= 0 {
		return out
	}

	for i := period - 1; i < len(s); i++ {
		lowest, highest, ok := 0.0, 0.0, true

		for j := i - period + 1; j <= i; j++ {
			x, defined := s.At(j)
			if !defined {
				ok = false

				break
			}

			if j == i-period+1 || x < lowest {
				lowest = x
			}

			if j == i-period+1 || x > highest {
				highest = x
			}
		}

		if !ok {
			continue
		}

		if highest-lowest == 0 {
			out.Set(i, 0)

			continue
		}

		cur, _ := s.At(i)
		out.Set(i, 100*(cur-lowest)/(highest-lowest))
	}

	return out
}
