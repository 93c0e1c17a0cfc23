package indicator

import (
	"math"

	"github.com/rxtech-lab/argo-indicators/internal/types"
)

// The helpers in this file operate on plain series rather than candles so that
// composite indicators can chain them (EMA of EMA, SMA of RSI, ...) without
// wrapping intermediate values in synthetic candles.
//
// A window is only evaluated when every value inside it is defined. EMA-style
// recursions restart their seed after a None.

// smaOf returns the simple moving average of s.
func smaOf(s types.Series, period int) types.Series {
	out := types.NewSeries(len(s))
	if period <= 0 {
		return out
	}

	for i := period - 1; i < len(s); i++ {
		sum, ok := windowSum(s, i-period+1, i)
		if ok {
			out.Set(i, sum/float64(period))
		}
	}

	return out
}

// emaOf returns the exponential moving average of s, seeded with the SMA of
// the first full window, k = 2/(period+1).
func emaOf(s types.Series, period int) types.Series {
	out := types.NewSeries(len(s))
	if period <= 0 {
		return out
	}

	k := 2.0 / float64(period+1)
	run, sum, prev := 0, 0.0, 0.0

	for i := range s {
		x, ok := s.At(i)
		if !ok {
			run, sum = 0, 0

			continue
		}

		run++

		switch {
		case run < period:
			sum += x
		case run == period:
			sum += x
			prev = sum / float64(period)
			out.Set(i, prev)
		default:
			prev = x*k + prev*(1-k)
			out.Set(i, prev)
		}
	}

	return out
}

// wmaOf returns the linearly weighted moving average of s; the newest value
// gets weight period, the oldest weight 1.
func wmaOf(s types.Series, period int) types.Series {
	out := types.NewSeries(len(s))
	if period <= 0 {
		return out
	}

	denom := float64(period*(period+1)) / 2

	for i := period - 1; i < len(s); i++ {
		weighted, ok := 0.0, true

		for j := 0; j < period; j++ {
			x, defined := s.At(i - period + 1 + j)
			if !defined {
				ok = false

				break
			}

			weighted += x * float64(j+1)
		}

		if ok {
			out.Set(i, weighted/denom)
		}
	}

	return out
}

// combine applies fn index-wise where both a and b are defined.
func combine(a, b types.Series, fn func(x, y float64) float64) types.Series {
	out := types.NewSeries(len(a))

	for i := range a {
		x, okA := a.At(i)
		y, okB := b.At(i)

		if okA && okB {
			out.Set(i, fn(x, y))
		}
	}

	return out
}

// windowSum sums s[from..to] inclusive, failing if any value is None.
func windowSum(s types.Series, from, to int) (float64, bool) {
	sum := 0.0

	for j := from; j <= to; j++ {
		x, ok := s.At(j)
		if !ok {
			return 0, false
		}

		sum += x
	}

	return sum, true
}

// meanStd returns the mean and population standard deviation of
// values[i-period+1..i].
func meanStd(values []float64, i, period int) (float64, float64) {
	window := values[i-period+1 : i+1]

	mean := 0.0
	for _, v := range window {
		mean += v
	}

	mean /= float64(period)

	variance := 0.0
	for _, v := range window {
		variance += (v - mean) * (v - mean)
	}

	return mean, math.Sqrt(variance / float64(period))
}

// highestHigh returns the maximum high over candles[i-period+1..i].
func highestHigh(candles []types.Candle, i, period int) float64 {
	highest := math.Inf(-1)
	for _, c := range candles[i-period+1 : i+1] {
		highest = math.Max(highest, c.High)
	}

	return highest
}

// lowestLow returns the minimum low over candles[i-period+1..i].
func lowestLow(candles []types.Candle, i, period int) float64 {
	lowest := math.Inf(1)
	for _, c := range candles[i-period+1 : i+1] {
		lowest = math.Min(lowest, c.Low)
	}

	return lowest
}

// trueRange is max(high-low, |high-prevClose|, |low-prevClose|). The first bar
// has no previous close and uses high-low.
func trueRange(candles []types.Candle, i int) float64 {
	c := candles[i]
	if i == 0 {
		return c.High - c.Low
	}

	prevClose := candles[i-1].Close

	return math.Max(c.High-c.Low, math.Max(math.Abs(c.High-prevClose), math.Abs(c.Low-prevClose)))
}

func closeSeries(candles []types.Candle) types.Series {
	return types.FromValues(types.Closes(candles))
}

func volumeSeries(candles []types.Candle) types.Series {
	out := types.NewSeries(len(candles))
	for i, c := range candles {
		out.Set(i, c.VolumeOrZero())
	}

	return out
}

// hasVolume reports whether any candle carries a volume.
func hasVolume(candles []types.Candle) bool {
	for _, c := range candles {
		if c.Volume.IsSome() {
			return true
		}
	}

	return false
}
