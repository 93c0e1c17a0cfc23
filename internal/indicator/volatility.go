package indicator

import (
	"math"

	"github.com/rxtech-lab/argo-indicators/internal/types"
)

// atrOf seeds with the mean of the first period true ranges at index
// period-1 and then applies Wilder smoothing.
func atrOf(candles []types.Candle, period int) types.Series {
	out := types.NewSeries(len(candles))
	if !validPeriod(period, len(candles)) {
		return out
	}

	p := float64(period)
	atr := 0.0

	for i := 0; i < period; i++ {
		atr += trueRange(candles, i)
	}

	atr /= p
	out.Set(period-1, atr)

	for i := period; i < len(candles); i++ {
		atr = (atr*(p-1) + trueRange(candles, i)) / p
		out.Set(i, atr)
	}

	return out
}

// ATR represents the Average True Range indicator.
type ATR struct {
	period int
}

// NewATR creates a new ATR indicator with default configuration.
func NewATR() Indicator {
	return &ATR{
		period: 14, // Default period
	}
}

// Name returns the name of the indicator.
func (a *ATR) Name() types.IndicatorType { return types.IndicatorTypeATR }

func (a *ATR) Title() string { return "Average True Range" }

func (a *ATR) Group() types.IndicatorGroup { return types.IndicatorGroupVolatility }

func (a *ATR) Params() []Param {
	return []Param{intParam("period", a.period)}
}

func (a *ATR) Compute(candles []types.Candle, opts Options) types.Series {
	return atrOf(candles, opts.Int("period", a.period))
}

// ChandelierExit represents the long-side chandelier stop.
type ChandelierExit struct {
	period     int
	multiplier float64
}

// NewChandelierExit creates a new Chandelier Exit with a 22 period and 3x ATR.
func NewChandelierExit() Indicator {
	return &ChandelierExit{
		period:     22,
		multiplier: 3.0,
	}
}

// Name returns the name of the indicator.
func (c *ChandelierExit) Name() types.IndicatorType { return types.IndicatorTypeChandelierExit }

func (c *ChandelierExit) Title() string { return "Chandelier Exit" }

func (c *ChandelierExit) Group() types.IndicatorGroup { return types.IndicatorGroupVolatility }

func (c *ChandelierExit) Params() []Param {
	return []Param{intParam("period", c.period), floatParam("multiplier", c.multiplier)}
}

// Compute returns highest high over period minus multiplier * ATR(period).
func (c *ChandelierExit) Compute(candles []types.Candle, opts Options) types.Series {
	period := opts.Int("period", c.period)
	multiplier := opts.Float("multiplier", c.multiplier)
	atr := atrOf(candles, period)
	out := types.NewSeries(len(candles))

	for i := range atr {
		if v, ok := atr.At(i); ok {
			out.Set(i, highestHigh(candles, i, period)-multiplier*v)
		}
	}

	return out
}

// BollingerBands represents the Bollinger Bands indicator.
type BollingerBands struct {
	period int
	stdDev float64
}

// NewBollingerBands creates a new Bollinger Bands indicator with default configuration.
func NewBollingerBands() Indicator {
	return &BollingerBands{
		period: 20,
		stdDev: 2.0,
	}
}

// Name returns the name of the indicator.
func (bb *BollingerBands) Name() types.IndicatorType { return types.IndicatorTypeBollingerBands }

func (bb *BollingerBands) Title() string { return "Bollinger Bands" }

func (bb *BollingerBands) Group() types.IndicatorGroup { return types.IndicatorGroupVolatility }

func (bb *BollingerBands) Params() []Param {
	return []Param{intParam("period", bb.period), floatParam("std_dev", bb.stdDev)}
}

// Compute returns the middle band (the SMA of closes).
func (bb *BollingerBands) Compute(candles []types.Candle, opts Options) types.Series {
	return bb.Components(candles, opts)["middle"]
}

// Components returns mean ± std_dev * population standard deviation.
func (bb *BollingerBands) Components(candles []types.Candle, opts Options) map[string]types.Series {
	period := opts.Int("period", bb.period)
	k := opts.Float("std_dev", bb.stdDev)
	n := len(candles)
	upper, middle, lower := types.NewSeries(n), types.NewSeries(n), types.NewSeries(n)

	if validPeriod(period, n) {
		closes := types.Closes(candles)

		for i := period - 1; i < n; i++ {
			mean, std := meanStd(closes, i, period)
			upper.Set(i, mean+k*std)
			middle.Set(i, mean)
			lower.Set(i, mean-k*std)
		}
	}

	return map[string]types.Series{
		"upper":  upper,
		"middle": middle,
		"lower":  lower,
	}
}

// PercentB represents where the close sits inside the Bollinger Bands.
type PercentB struct {
	period int
	stdDev float64
}

// NewPercentB creates a new %B indicator with default configuration.
func NewPercentB() Indicator {
	return &PercentB{
		period: 20,
		stdDev: 2.0,
	}
}

// Name returns the name of the indicator.
func (p *PercentB) Name() types.IndicatorType { return types.IndicatorTypePercentB }

func (p *PercentB) Title() string { return "Percent B" }

func (p *PercentB) Group() types.IndicatorGroup { return types.IndicatorGroupVolatility }

func (p *PercentB) Params() []Param {
	return []Param{intParam("period", p.period), floatParam("std_dev", p.stdDev)}
}

// Compute returns (close-lower)/(upper-lower); a zero band width is None.
func (p *PercentB) Compute(candles []types.Candle, opts Options) types.Series {
	period := opts.Int("period", p.period)
	k := opts.Float("std_dev", p.stdDev)
	out := types.NewSeries(len(candles))

	if !validPeriod(period, len(candles)) {
		return out
	}

	closes := types.Closes(candles)

	for i := period - 1; i < len(closes); i++ {
		mean, std := meanStd(closes, i, period)
		upper, lower := mean+k*std, mean-k*std

		if upper-lower == 0 {
			continue
		}

		out.Set(i, (closes[i]-lower)/(upper-lower))
	}

	return out
}

// ZScore represents the distance of the close from its rolling mean in
// standard deviations.
type ZScore struct {
	period int
}

// NewZScore creates a new Z-Score indicator with default configuration.
func NewZScore() Indicator {
	return &ZScore{
		period: 20, // Default period
	}
}

// Name returns the name of the indicator.
func (z *ZScore) Name() types.IndicatorType { return types.IndicatorTypeZScore }

func (z *ZScore) Title() string { return "Z-Score" }

func (z *ZScore) Group() types.IndicatorGroup { return types.IndicatorGroupStatistics }

func (z *ZScore) Params() []Param {
	return []Param{intParam("period", z.period)}
}

// Compute returns (close-mean)/std; a zero deviation gives 0.
func (z *ZScore) Compute(candles []types.Candle, opts Options) types.Series {
	period := opts.Int("period", z.period)
	out := types.NewSeries(len(candles))

	if !validPeriod(period, len(candles)) {
		return out
	}

	closes := types.Closes(candles)

	for i := period - 1; i < len(closes); i++ {
		mean, std := meanStd(closes, i, period)
		if std == 0 {
			out.Set(i, 0)

			continue
		}

		out.Set(i, (closes[i]-mean)/std)
	}

	return out
}

// ParabolicSAR represents Wilder's stop-and-reverse indicator.
type ParabolicSAR struct {
	step  float64
	maxAF float64
}

// NewParabolicSAR creates a new Parabolic SAR with step 0.02 and max 0.2.
func NewParabolicSAR() Indicator {
	return &ParabolicSAR{
		step:  0.02,
		maxAF: 0.2,
	}
}

// Name returns the name of the indicator.
func (p *ParabolicSAR) Name() types.IndicatorType { return types.IndicatorTypeParabolicSAR }

func (p *ParabolicSAR) Title() string { return "Parabolic SAR" }

func (p *ParabolicSAR) Group() types.IndicatorGroup { return types.IndicatorGroupTrend }

func (p *ParabolicSAR) Params() []Param {
	return []Param{floatParam("step", p.step), floatParam("max_af", p.maxAF)}
}

// Compute starts in an uptrend with sar = low[0], ep = high[0] and af = step.
// Each bar moves the SAR toward the extreme point, bounded by the previous two
// bars' range. When price crosses the SAR the trend flips: the SAR jumps to the
// old extreme point, the extreme point restarts at the current bar and the
// acceleration factor resets to step.
func (p *ParabolicSAR) Compute(candles []types.Candle, opts Options) types.Series {
	step := opts.Float("step", p.step)
	maxAF := opts.Float("max_af", p.maxAF)
	out := types.NewSeries(len(candles))

	if len(candles) < 2 || step <= 0 || maxAF < step {
		return out
	}

	uptrend := true
	af := step
	ep := candles[0].High
	sar := candles[0].Low
	out.Set(0, sar)

	for i := 1; i < len(candles); i++ {
		c := candles[i]
		sar += af * (ep - sar)

		if uptrend {
			sar = math.Min(sar, candles[i-1].Low)
			if i > 1 {
				sar = math.Min(sar, candles[i-2].Low)
			}

			switch {
			case c.Low < sar:
				uptrend = false
				sar, ep, af = ep, c.Low, step
			case c.High > ep:
				ep = c.High
				af = math.Min(af+step, maxAF)
			}
		} else {
			sar = math.Max(sar, candles[i-1].High)
			if i > 1 {
				sar = math.Max(sar, candles[i-2].High)
			}

			switch {
			case c.High > sar:
				uptrend = true
				sar, ep, af = ep, c.High, step
			case c.Low < ep:
				ep = c.Low
				af = math.Min(af+step, maxAF)
			}
		}

		out.Set(i, sar)
	}

	return out
}

// ADX represents the Average Directional Index with its directional components.
type ADX struct {
	period int
}

// NewADX creates a new ADX indicator with default configuration.
func NewADX() Indicator {
	return &ADX{
		period: 14, // Default period
	}
}

// Name returns the name of the indicator.
func (a *ADX) Name() types.IndicatorType { return types.IndicatorTypeADX }

func (a *ADX) Title() string { return "Average Directional Index" }

func (a *ADX) Group() types.IndicatorGroup { return types.IndicatorGroupTrend }

func (a *ADX) Params() []Param {
	return []Param{intParam("period", a.period)}
}

// Compute returns the ADX line; the first value sits at index 2*period-1.
func (a *ADX) Compute(candles []types.Candle, opts Options) types.Series {
	return a.Components(candles, opts)["adx"]
}

// Components returns adx, plus_di, minus_di and dx. The directional series
// start at index period, where the Wilder sums are seeded with the raw sums
// of bars 1..period.
func (a *ADX) Components(candles []types.Candle, opts Options) map[string]types.Series {
	period := opts.Int("period", a.period)
	n := len(candles)
	adx, plusDI, minusDI, dx := types.NewSeries(n), types.NewSeries(n), types.NewSeries(n), types.NewSeries(n)
	result := map[string]types.Series{"adx": adx, "plus_di": plusDI, "minus_di": minusDI, "dx": dx}

	if period <= 0 || n < period+1 {
		return result
	}

	p := float64(period)
	trSum, plusSum, minusSum := 0.0, 0.0, 0.0

	for i := 1; i < n; i++ {
		upMove := candles[i].High - candles[i-1].High
		downMove := candles[i-1].Low - candles[i].Low

		plusDM, minusDM := 0.0, 0.0
		if upMove > downMove && upMove > 0 {
			plusDM = upMove
		}

		if downMove > upMove && downMove > 0 {
			minusDM = downMove
		}

		tr := trueRange(candles, i)

		if i <= period {
			trSum += tr
			plusSum += plusDM
			minusSum += minusDM

			if i < period {
				continue
			}
		} else {
			trSum = trSum - trSum/p + tr
			plusSum = plusSum - plusSum/p + plusDM
			minusSum = minusSum - minusSum/p + minusDM
		}

		pdi, mdi := 0.0, 0.0
		if trSum != 0 {
			pdi = 100 * plusSum / trSum
			mdi = 100 * minusSum / trSum
		}

		dxValue := 0.0
		if pdi+mdi != 0 {
			dxValue = 100 * math.Abs(pdi-mdi) / (pdi + mdi)
		}

		plusDI.Set(i, pdi)
		minusDI.Set(i, mdi)
		dx.Set(i, dxValue)
	}

	if n < 2*period {
		return result
	}

	first, _ := windowSum(dx, period, 2*period-1)
	value := first / p
	adx.Set(2*period-1, value)

	for i := 2 * period; i < n; i++ {
		d, _ := dx.At(i)
		value = (value*(p-1) + d) / p
		adx.Set(i, value)
	}

	return result
}
