package indicator

import (
	"math"

	"github.com/rxtech-lab/argo-indicators/internal/types"
)

// rsiOf computes Wilder's RSI. The first value sits at index period and uses
// the plain average of the first period changes.
func rsiOf(values []float64, period int) types.Series {
	out := types.NewSeries(len(values))
	if period <= 0 || period >= len(values) {
		return out
	}

	avgGain, avgLoss := 0.0, 0.0

	for i := 1; i <= period; i++ {
		change := values[i] - values[i-1]
		if change > 0 {
			avgGain += change
		} else {
			avgLoss -= change
		}
	}

	p := float64(period)
	avgGain /= p
	avgLoss /= p
	out.Set(period, rsiFromAverages(avgGain, avgLoss))

	for i := period + 1; i < len(values); i++ {
		gain, loss := 0.0, 0.0
		if change := values[i] - values[i-1]; change > 0 {
			gain = change
		} else {
			loss = -change
		}

		avgGain = (avgGain*(p-1) + gain) / p
		avgLoss = (avgLoss*(p-1) + loss) / p
		out.Set(i, rsiFromAverages(avgGain, avgLoss))
	}

	return out
}

func rsiFromAverages(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		return 100
	}

	return 100 - 100/(1+avgGain/avgLoss)
}

// RSI represents the Relative Strength Index indicator.
type RSI struct {
	period int
}

// NewRSI creates a new RSI indicator with default configuration.
func NewRSI() Indicator {
	return &RSI{
		period: 14, // Default period
	}
}

// Name returns the name of the indicator.
func (r *RSI) Name() types.IndicatorType { return types.IndicatorTypeRSI }

func (r *RSI) Title() string { return "Relative Strength Index" }

func (r *RSI) Group() types.IndicatorGroup { return types.IndicatorGroupOscillator }

func (r *RSI) Params() []Param {
	return []Param{intParam("period", r.period)}
}

// Compute returns the RSI of closes. A window without losses yields 100.
func (r *RSI) Compute(candles []types.Candle, opts Options) types.Series {
	return rsiOf(types.Closes(candles), opts.Int("period", r.period))
}

// Stochastic represents the Stochastic Oscillator (%K with a %D signal).
type Stochastic struct {
	kPeriod int
	dPeriod int
}

// NewStochastic creates a new Stochastic indicator with default configuration.
func NewStochastic() Indicator {
	return &Stochastic{
		kPeriod: 14,
		dPeriod: 3,
	}
}

// Name returns the name of the indicator.
func (s *Stochastic) Name() types.IndicatorType { return types.IndicatorTypeStochastic }

func (s *Stochastic) Title() string { return "Stochastic Oscillator" }

func (s *Stochastic) Group() types.IndicatorGroup { return types.IndicatorGroupOscillator }

func (s *Stochastic) Params() []Param {
	return []Param{intParam("k_period", s.kPeriod), intParam("d_period", s.dPeriod)}
}

// Compute returns %K. A window with highest high equal to lowest low is None.
func (s *Stochastic) Compute(candles []types.Candle, opts Options) types.Series {
	return s.percentK(candles, opts.Int("k_period", s.kPeriod))
}

// Components returns %K under "k" and its SMA over d_period under "d".
func (s *Stochastic) Components(candles []types.Candle, opts Options) map[string]types.Series {
	k := s.percentK(candles, opts.Int("k_period", s.kPeriod))

	return map[string]types.Series{
		"k": k,
		"d": smaOf(k, opts.Int("d_period", s.dPeriod)),
	}
}

func (s *Stochastic) percentK(candles []types.Candle, period int) types.Series {
	out := types.NewSeries(len(candles))
	if !validPeriod(period, len(candles)) {
		return out
	}

	for i := period - 1; i < len(candles); i++ {
		highest := highestHigh(candles, i, period)
		lowest := lowestLow(candles, i, period)

		if highest-lowest == 0 {
			continue
		}

		out.Set(i, (candles[i].Close-lowest)/(highest-lowest)*100)
	}

	return out
}

// StochasticRSI represents the smoothed RSI scaled to [0, 1].
type StochasticRSI struct {
	period  int
	smoothK int
	smoothD int
}

// NewStochasticRSI creates a new Stochastic RSI indicator with default configuration.
func NewStochasticRSI() Indicator {
	return &StochasticRSI{
		period:  14,
		smoothK: 3,
		smoothD: 3,
	}
}

// Name returns the name of the indicator.
func (s *StochasticRSI) Name() types.IndicatorType { return types.IndicatorTypeStochasticRSI }

func (s *StochasticRSI) Title() string { return "Stochastic RSI" }

func (s *StochasticRSI) Group() types.IndicatorGroup { return types.IndicatorGroupOscillator }

func (s *StochasticRSI) Params() []Param {
	return []Param{
		intParam("period", s.period),
		intParam("smooth_k", s.smoothK),
		intParam("smooth_d", s.smoothD),
	}
}

// Compute returns %D: the SMA of %K, which is itself the SMA of the RSI.
func (s *StochasticRSI) Compute(candles []types.Candle, opts Options) types.Series {
	return s.Components(candles, opts)["d"]
}

func (s *StochasticRSI) Components(candles []types.Candle, opts Options) map[string]types.Series {
	rsi := rsiOf(types.Closes(candles), opts.Int("period", s.period))
	k := smaOf(rsi, opts.Int("smooth_k", s.smoothK))
	d := smaOf(k, opts.Int("smooth_d", s.smoothD))

	scale := func(x float64) float64 { return x / 100 }

	return map[string]types.Series{
		"k": mapSeries(k, scale),
		"d": mapSeries(d, scale),
	}
}

// WilliamsR represents the Williams %R oscillator.
type WilliamsR struct {
	period int
}

// NewWilliamsR creates a new Williams %R indicator with default configuration.
func NewWilliamsR() Indicator {
	return &WilliamsR{
		period: 14, // Default period
	}
}

// Name returns the name of the indicator.
func (w *WilliamsR) Name() types.IndicatorType { return types.IndicatorTypeWilliamsR }

func (w *WilliamsR) Title() string { return "Williams %R" }

func (w *WilliamsR) Group() types.IndicatorGroup { return types.IndicatorGroupOscillator }

func (w *WilliamsR) Params() []Param {
	return []Param{intParam("period", w.period)}
}

// Compute returns (highest-close)/(highest-lowest) * -100; a zero range gives 0.
func (w *WilliamsR) Compute(candles []types.Candle, opts Options) types.Series {
	period := opts.Int("period", w.period)
	out := types.NewSeries(len(candles))

	if !validPeriod(period, len(candles)) {
		return out
	}

	for i := period - 1; i < len(candles); i++ {
		highest := highestHigh(candles, i, period)
		lowest := lowestLow(candles, i, period)

		if highest-lowest == 0 {
			out.Set(i, 0)

			continue
		}

		out.Set(i, (highest-candles[i].Close)/(highest-lowest)*-100)
	}

	return out
}

// CCI represents the Commodity Channel Index.
type CCI struct {
	period int
}

// NewCCI creates a new CCI indicator with default configuration.
func NewCCI() Indicator {
	return &CCI{
		period: 20, // Default period
	}
}

// Name returns the name of the indicator.
func (c *CCI) Name() types.IndicatorType { return types.IndicatorTypeCCI }

func (c *CCI) Title() string { return "Commodity Channel Index" }

func (c *CCI) Group() types.IndicatorGroup { return types.IndicatorGroupOscillator }

func (c *CCI) Params() []Param {
	return []Param{intParam("period", c.period)}
}

// Compute uses typical prices; a zero mean deviation gives 0.
func (c *CCI) Compute(candles []types.Candle, opts Options) types.Series {
	period := opts.Int("period", c.period)
	out := types.NewSeries(len(candles))

	if !validPeriod(period, len(candles)) {
		return out
	}

	tp := make([]float64, len(candles))
	for i, candle := range candles {
		tp[i] = candle.TypicalPrice()
	}

	for i := period - 1; i < len(tp); i++ {
		window := tp[i-period+1 : i+1]

		mean := 0.0
		for _, v := range window {
			mean += v
		}

		mean /= float64(period)

		deviation := 0.0
		for _, v := range window {
			deviation += math.Abs(v - mean)
		}

		deviation /= float64(period)

		if deviation == 0 {
			out.Set(i, 0)

			continue
		}

		out.Set(i, (tp[i]-mean)/(0.015*deviation))
	}

	return out
}

// UltimateOscillator blends buying pressure over three windows.
type UltimateOscillator struct {
	shortPeriod int
	midPeriod   int
	longPeriod  int
}

// NewUltimateOscillator creates a new Ultimate Oscillator with 7/14/28 windows.
func NewUltimateOscillator() Indicator {
	return &UltimateOscillator{
		shortPeriod: 7,
		midPeriod:   14,
		longPeriod:  28,
	}
}

// Name returns the name of the indicator.
func (u *UltimateOscillator) Name() types.IndicatorType {
	return types.IndicatorTypeUltimateOscillator
}

func (u *UltimateOscillator) Title() string { return "Ultimate Oscillator" }

func (u *UltimateOscillator) Group() types.IndicatorGroup { return types.IndicatorGroupOscillator }

func (u *UltimateOscillator) Params() []Param {
	return []Param{
		intParam("short_period", u.shortPeriod),
		intParam("mid_period", u.midPeriod),
		intParam("long_period", u.longPeriod),
	}
}

// Compute returns (4*A_short + 2*A_mid + A_long)/7*100 with A = sum(BP)/sum(TR),
// BP = close - min(low, prevClose) and TR = max(high, prevClose) - min(low, prevClose).
// Windows start at index 1 since both terms need a previous close. An index
// where any window has zero true range is None.
func (u *UltimateOscillator) Compute(candles []types.Candle, opts Options) types.Series {
	periods := []int{
		opts.Int("short_period", u.shortPeriod),
		opts.Int("mid_period", u.midPeriod),
		opts.Int("long_period", u.longPeriod),
	}
	out := types.NewSeries(len(candles))

	longest := 0
	for _, p := range periods {
		if p <= 0 {
			return out
		}

		longest = max(longest, p)
	}

	if longest >= len(candles) {
		return out
	}

	bp := make([]float64, len(candles))
	tr := make([]float64, len(candles))

	for i := 1; i < len(candles); i++ {
		prevClose := candles[i-1].Close
		low := math.Min(candles[i].Low, prevClose)
		bp[i] = candles[i].Close - low
		tr[i] = math.Max(candles[i].High, prevClose) - low
	}

	weights := []float64{4, 2, 1}

	for i := longest; i < len(candles); i++ {
		blend, ok := 0.0, true

		for w, p := range periods {
			sumBP, sumTR := 0.0, 0.0
			for j := i - p + 1; j <= i; j++ {
				sumBP += bp[j]
				sumTR += tr[j]
			}

			if sumTR == 0 {
				ok = false

				break
			}

			blend += weights[w] * sumBP / sumTR
		}

		if ok {
			out.Set(i, blend/7*100)
		}
	}

	return out
}

// mapSeries applies fn to every defined value of s.
func mapSeries(s types.Series, fn func(float64) float64) types.Series {
	out := types.NewSeries(len(s))

	for i := range s {
		if x, ok := s.At(i); ok {
			out.Set(i, fn(x))
		}
	}

	return out
}
