package indicator

import (
	"fmt"
	"strconv"

	"github.com/rxtech-lab/argo-indicators/internal/types"
)

// Ichimoku represents the Ichimoku Kinko Hyo cloud.
type Ichimoku struct {
	conversionPeriod int
	basePeriod       int
	spanBPeriod      int
	displacement     int
}

// NewIchimoku creates a new Ichimoku indicator with the classic 9/26/52/26 configuration.
func NewIchimoku() Indicator {
	return &Ichimoku{
		conversionPeriod: 9,
		basePeriod:       26,
		spanBPeriod:      52,
		displacement:     26,
	}
}

// Name returns the name of the indicator.
func (ic *Ichimoku) Name() types.IndicatorType { return types.IndicatorTypeIchimoku }

func (ic *Ichimoku) Title() string { return "Ichimoku Cloud" }

func (ic *Ichimoku) Group() types.IndicatorGroup { return types.IndicatorGroupTrend }

func (ic *Ichimoku) Params() []Param {
	return []Param{
		intParam("conversion_period", ic.conversionPeriod),
		intParam("base_period", ic.basePeriod),
		intParam("span_b_period", ic.spanBPeriod),
		intParam("displacement", ic.displacement),
	}
}

// Compute returns the conversion line (Tenkan-sen).
func (ic *Ichimoku) Compute(candles []types.Candle, opts Options) types.Series {
	return midpointOf(candles, opts.Int("conversion_period", ic.conversionPeriod))
}

// Components returns all five lines aligned to the input index. The leading
// spans are plotted displacement bars ahead, so span_a[i] is built from bar
// i-displacement; the lagging span at i is the close displacement bars later.
func (ic *Ichimoku) Components(candles []types.Candle, opts Options) map[string]types.Series {
	n := len(candles)
	displacement := max(opts.Int("displacement", ic.displacement), 0)

	conversion := midpointOf(candles, opts.Int("conversion_period", ic.conversionPeriod))
	base := midpointOf(candles, opts.Int("base_period", ic.basePeriod))
	rawSpanA := combine(conversion, base, func(c, b float64) float64 { return (c + b) / 2 })
	rawSpanB := midpointOf(candles, opts.Int("span_b_period", ic.spanBPeriod))

	spanA, spanB, lagging := types.NewSeries(n), types.NewSeries(n), types.NewSeries(n)

	for i := 0; i < n; i++ {
		if src := i - displacement; src >= 0 {
			spanA[i] = rawSpanA[src]
			spanB[i] = rawSpanB[src]
		}

		if src := i + displacement; src < n {
			lagging.Set(i, candles[src].Close)
		}
	}

	return map[string]types.Series{
		"conversion": conversion,
		"base":       base,
		"span_a":     spanA,
		"span_b":     spanB,
		"lagging":    lagging,
	}
}

// midpointOf returns (highest high + lowest low)/2 over a trailing window.
func midpointOf(candles []types.Candle, period int) types.Series {
	out := types.NewSeries(len(candles))
	if !validPeriod(period, len(candles)) {
		return out
	}

	for i := period - 1; i < len(candles); i++ {
		out.Set(i, (highestHigh(candles, i, period)+lowestLow(candles, i, period))/2)
	}

	return out
}

// GMMA represents Guppy's Multiple Moving Average: two ribbons of EMAs.
type GMMA struct {
	shortPeriods []int
	longPeriods  []int
}

// NewGMMA creates a new GMMA indicator with the traditional ribbons.
func NewGMMA() Indicator {
	return &GMMA{
		shortPeriods: []int{3, 5, 8, 10, 12, 15},
		longPeriods:  []int{30, 35, 40, 45, 50, 60},
	}
}

// Name returns the name of the indicator.
func (g *GMMA) Name() types.IndicatorType { return types.IndicatorTypeGMMA }

func (g *GMMA) Title() string { return "Guppy Multiple Moving Average" }

func (g *GMMA) Group() types.IndicatorGroup { return types.IndicatorGroupTrend }

func (g *GMMA) Params() []Param {
	return []Param{
		intListParam("short_periods", g.shortPeriods),
		intListParam("long_periods", g.longPeriods),
	}
}

// Compute returns the EMA of the first short period.
func (g *GMMA) Compute(candles []types.Candle, opts Options) types.Series {
	short := opts.Ints("short_periods", g.shortPeriods)
	if len(short) == 0 {
		return types.NewSeries(len(candles))
	}

	return emaOf(closeSeries(candles), short[0])
}

// Components returns one EMA per configured period keyed "ema_<period>".
func (g *GMMA) Components(candles []types.Candle, opts Options) map[string]types.Series {
	closes := closeSeries(candles)
	periods := append(append([]int{}, opts.Ints("short_periods", g.shortPeriods)...),
		opts.Ints("long_periods", g.longPeriods)...)

	out := make(map[string]types.Series, len(periods))
	for _, p := range periods {
		key := fmt.Sprintf("ema_%d", p)
		if _, done := out[key]; !done {
			out[key] = emaOf(closes, p)
		}
	}

	return out
}

// FibonacciRatios are the canonical retracement levels.
var FibonacciRatios = []float64{0, 0.236, 0.382, 0.5, 0.618, 0.786, 1}

// FibonacciRetracement represents retracement levels of the trailing high/low range.
type FibonacciRetracement struct {
	period int
}

// NewFibonacciRetracement creates a new retracement indicator with default configuration.
func NewFibonacciRetracement() Indicator {
	return &FibonacciRetracement{
		period: 14, // Default period
	}
}

// Name returns the name of the indicator.
func (f *FibonacciRetracement) Name() types.IndicatorType {
	return types.IndicatorTypeFibonacciRetracement
}

func (f *FibonacciRetracement) Title() string { return "Fibonacci Retracement" }

func (f *FibonacciRetracement) Group() types.IndicatorGroup { return types.IndicatorGroupTrend }

func (f *FibonacciRetracement) Params() []Param {
	return []Param{intParam("period", f.period)}
}

// Compute returns the 0.618 level.
func (f *FibonacciRetracement) Compute(candles []types.Candle, opts Options) types.Series {
	return f.level(candles, opts.Int("period", f.period), 0.618)
}

// Components returns every ratio in FibonacciRatios keyed "level_<ratio>".
func (f *FibonacciRetracement) Components(candles []types.Candle, opts Options) map[string]types.Series {
	period := opts.Int("period", f.period)
	out := make(map[string]types.Series, len(FibonacciRatios))

	for _, ratio := range FibonacciRatios {
		out[FibonacciLevelKey(ratio)] = f.level(candles, period, ratio)
	}

	return out
}

// FibonacciLevelKey formats the component key of a ratio, e.g. "level_0.618".
func FibonacciLevelKey(ratio float64) string {
	return "level_" + strconv.FormatFloat(ratio, 'f', -1, 64)
}

// level returns low + (high-low)*ratio over the trailing window.
func (f *FibonacciRetracement) level(candles []types.Candle, period int, ratio float64) types.Series {
	out := types.NewSeries(len(candles))
	if !validPeriod(period, len(candles)) {
		return out
	}

	for i := period - 1; i < len(candles); i++ {
		high, low := highestHigh(candles, i, period), lowestLow(candles, i, period)
		out.Set(i, low+(high-low)*ratio)
	}

	return out
}

// HeikinAshiSlope represents the regression slope of Heikin-Ashi closes.
type HeikinAshiSlope struct {
	period int
}

// NewHeikinAshiSlope creates a new Heikin-Ashi slope indicator with default configuration.
func NewHeikinAshiSlope() Indicator {
	return &HeikinAshiSlope{
		period: 10, // Default period
	}
}

// Name returns the name of the indicator.
func (h *HeikinAshiSlope) Name() types.IndicatorType { return types.IndicatorTypeHeikinAshiSlope }

func (h *HeikinAshiSlope) Title() string { return "Heikin-Ashi Slope" }

func (h *HeikinAshiSlope) Group() types.IndicatorGroup { return types.IndicatorGroupTrend }

func (h *HeikinAshiSlope) Params() []Param {
	return []Param{intParam("period", h.period)}
}

// Compute fits a least squares line through (O+H+L+C)/4 over the trailing
// window, x = 0..period-1. A window of one point has no slope and is None.
func (h *HeikinAshiSlope) Compute(candles []types.Candle, opts Options) types.Series {
	period := opts.Int("period", h.period)
	out := types.NewSeries(len(candles))

	if !validPeriod(period, len(candles)) {
		return out
	}

	haClose := make([]float64, len(candles))
	for i, c := range candles {
		haClose[i] = (c.Open + c.High + c.Low + c.Close) / 4
	}

	n := float64(period)
	sumX, sumXX := 0.0, 0.0

	for x := 0; x < period; x++ {
		sumX += float64(x)
		sumXX += float64(x * x)
	}

	denominator := n*sumXX - sumX*sumX
	if denominator == 0 {
		return out
	}

	for i := period - 1; i < len(candles); i++ {
		window := haClose[i-period+1 : i+1]
		sumY, sumXY := 0.0, 0.0

		for x, y := range window {
			sumY += y
			sumXY += float64(x) * y
		}

		out.Set(i, (n*sumXY-sumX*sumY)/denominator)
	}

	return out
}
