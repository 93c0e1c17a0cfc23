package indicator

import (
	"math"

	"github.com/rxtech-lab/argo-indicators/internal/types"
)

const (
	kamaFastSC = 2.0 / (2.0 + 1.0)
	kamaSlowSC = 2.0 / (30.0 + 1.0)
)

// KAMA represents the Kaufman Adaptive Moving Average.
type KAMA struct {
	period int
}

// NewKAMA creates a new KAMA indicator with default configuration.
func NewKAMA() Indicator {
	return &KAMA{
		period: 10, // Default period
	}
}

// Name returns the name of the indicator.
func (k *KAMA) Name() types.IndicatorType { return types.IndicatorTypeKAMA }

func (k *KAMA) Title() string { return "Kaufman Adaptive Moving Average" }

func (k *KAMA) Group() types.IndicatorGroup { return types.IndicatorGroupTrend }

func (k *KAMA) Params() []Param {
	return []Param{intParam("period", k.period)}
}

// Compute starts from close[period-1] and emits values from index period on.
// The smoothing constant is (er*(fast-slow)+slow)^2 where er is the
// efficiency ratio; zero volatility gives er = 0.
func (k *KAMA) Compute(candles []types.Candle, opts Options) types.Series {
	period := opts.Int("period", k.period)
	out := types.NewSeries(len(candles))

	if !validPeriod(period, len(candles)) {
		return out
	}

	prices := types.Closes(candles)
	prev := prices[period-1]

	for i := period; i < len(prices); i++ {
		change := math.Abs(prices[i] - prices[i-period])

		volatility := 0.0
		for j := i - period + 1; j <= i; j++ {
			volatility += math.Abs(prices[j] - prices[j-1])
		}

		er := 0.0
		if volatility != 0 {
			er = change / volatility
		}

		sc := math.Pow(er*(kamaFastSC-kamaSlowSC)+kamaSlowSC, 2)
		prev += sc * (prices[i] - prev)
		out.Set(i, prev)
	}

	return out
}

// FRAMA represents the Fractal Adaptive Moving Average.
type FRAMA struct {
	period int
}

// NewFRAMA creates a new FRAMA indicator with default configuration.
func NewFRAMA() Indicator {
	return &FRAMA{
		period: 10, // Default period
	}
}

// Name returns the name of the indicator.
func (f *FRAMA) Name() types.IndicatorType { return types.IndicatorTypeFRAMA }

func (f *FRAMA) Title() string { return "Fractal Adaptive Moving Average" }

func (f *FRAMA) Group() types.IndicatorGroup { return types.IndicatorGroupTrend }

func (f *FRAMA) Params() []Param {
	return []Param{intParam("period", f.period)}
}

// Compute estimates the fractal dimension of the previous period closes and
// feeds alpha = exp(-4.6*(dim-1)) into a single-pole filter seeded at
// close[period-1]. Periods below 2 cannot be split into halves.
func (f *FRAMA) Compute(candles []types.Candle, opts Options) types.Series {
	period := opts.Int("period", f.period)
	out := types.NewSeries(len(candles))

	if !validPeriod(period, len(candles)) || period < 2 {
		return out
	}

	prices := types.Closes(candles)
	half := period / 2
	prev := prices[period-1]

	for i := period; i < len(prices); i++ {
		window := prices[i-period : i]

		n1 := priceRange(window[:half]) / float64(half)
		n2 := priceRange(window[half:]) / float64(half)
		n3 := priceRange(window) / float64(period)

		dim := 1.0
		if n1 > 0 && n2 > 0 && n3 > 0 {
			dim = math.Abs(math.Log2((n1 + n2) / n3))
		}

		alpha := math.Exp(-4.6 * (dim - 1))
		prev = alpha*prices[i] + (1-alpha)*prev
		out.Set(i, prev)
	}

	return out
}

// priceRange returns max - min of values.
func priceRange(values []float64) float64 {
	highest, lowest := math.Inf(-1), math.Inf(1)
	for _, v := range values {
		highest = math.Max(highest, v)
		lowest = math.Min(lowest, v)
	}

	return highest - lowest
}

// KalmanFilterSmoother represents a scalar Kalman filter over close prices.
type KalmanFilterSmoother struct {
	processVariance     float64
	measurementVariance float64
}

// NewKalmanFilterSmoother creates a new Kalman filter with unit variances.
func NewKalmanFilterSmoother() Indicator {
	return &KalmanFilterSmoother{
		processVariance:     1.0,
		measurementVariance: 1.0,
	}
}

// Name returns the name of the indicator.
func (k *KalmanFilterSmoother) Name() types.IndicatorType {
	return types.IndicatorTypeKalmanFilterSmoother
}

func (k *KalmanFilterSmoother) Title() string { return "Kalman Filter Smoother" }

func (k *KalmanFilterSmoother) Group() types.IndicatorGroup { return types.IndicatorGroupFilter }

func (k *KalmanFilterSmoother) Params() []Param {
	return []Param{
		floatParam("process_variance", k.processVariance),
		floatParam("measurement_variance", k.measurementVariance),
	}
}

// Compute runs the predict/update cycle starting from x = close[0], p = 1.
// Every index is defined.
func (k *KalmanFilterSmoother) Compute(candles []types.Candle, opts Options) types.Series {
	q := opts.Float("process_variance", k.processVariance)
	r := opts.Float("measurement_variance", k.measurementVariance)
	out := types.NewSeries(len(candles))

	if len(candles) == 0 || q < 0 || r < 0 {
		return out
	}

	x, p := candles[0].Close, 1.0

	for i, c := range candles {
		p += q
		gain := p / (p + r)
		x += gain * (c.Close - x)
		p = (1 - gain) * p
		out.Set(i, x)
	}

	return out
}
