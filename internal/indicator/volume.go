package indicator

import (
	"github.com/rxtech-lab/argo-indicators/internal/types"
)

// Volume indicators treat a missing bar volume as zero. When no candle carries
// a volume at all the whole output is None instead of a flat line of zeros.

// OBV represents the On-Balance Volume indicator.
type OBV struct{}

// NewOBV creates a new OBV indicator.
func NewOBV() Indicator {
	return &OBV{}
}

// Name returns the name of the indicator.
func (o *OBV) Name() types.IndicatorType { return types.IndicatorTypeOBV }

func (o *OBV) Title() string { return "On-Balance Volume" }

func (o *OBV) Group() types.IndicatorGroup { return types.IndicatorGroupVolume }

func (o *OBV) Params() []Param { return nil }

// Compute starts at 0 on the first candle and adds or subtracts the bar volume
// depending on the close direction.
func (o *OBV) Compute(candles []types.Candle, _ Options) types.Series {
	out := types.NewSeries(len(candles))
	if len(candles) == 0 || !hasVolume(candles) {
		return out
	}

	obv := 0.0
	out.Set(0, obv)

	for i := 1; i < len(candles); i++ {
		switch {
		case candles[i].Close > candles[i-1].Close:
			obv += candles[i].VolumeOrZero()
		case candles[i].Close < candles[i-1].Close:
			obv -= candles[i].VolumeOrZero()
		}

		out.Set(i, obv)
	}

	return out
}

// VWAP represents the cumulative Volume Weighted Average Price.
type VWAP struct{}

// NewVWAP creates a new VWAP indicator.
func NewVWAP() Indicator {
	return &VWAP{}
}

// Name returns the name of the indicator.
func (v *VWAP) Name() types.IndicatorType { return types.IndicatorTypeVWAP }

func (v *VWAP) Title() string { return "Volume Weighted Average Price" }

func (v *VWAP) Group() types.IndicatorGroup { return types.IndicatorGroupVolume }

func (v *VWAP) Params() []Param { return nil }

// Compute returns cum(volume*typical)/cum(volume) over the whole history.
// Bars without volume are None and do not contribute.
func (v *VWAP) Compute(candles []types.Candle, _ Options) types.Series {
	out := types.NewSeries(len(candles))
	cumPV, cumVolume := 0.0, 0.0

	for i, c := range candles {
		volume, err := c.Volume.Take()
		if err != nil {
			continue
		}

		cumPV += volume * c.TypicalPrice()
		cumVolume += volume

		if cumVolume != 0 {
			out.Set(i, cumPV/cumVolume)
		}
	}

	return out
}

// CMF represents the Chaikin Money Flow indicator.
type CMF struct {
	period int
}

// NewCMF creates a new CMF indicator with default configuration.
func NewCMF() Indicator {
	return &CMF{
		period: 20, // Default period
	}
}

// Name returns the name of the indicator.
func (c *CMF) Name() types.IndicatorType { return types.IndicatorTypeCMF }

func (c *CMF) Title() string { return "Chaikin Money Flow" }

func (c *CMF) Group() types.IndicatorGroup { return types.IndicatorGroupVolume }

func (c *CMF) Params() []Param {
	return []Param{intParam("period", c.period)}
}

// Compute sums money flow volume over volume in the window. Bars with a zero
// range or no volume are skipped; a window without volume is None.
func (c *CMF) Compute(candles []types.Candle, opts Options) types.Series {
	period := opts.Int("period", c.period)
	out := types.NewSeries(len(candles))

	if !validPeriod(period, len(candles)) {
		return out
	}

	for i := period - 1; i < len(candles); i++ {
		flowSum, volumeSum := 0.0, 0.0

		for _, bar := range candles[i-period+1 : i+1] {
			volume, err := bar.Volume.Take()
			if err != nil || bar.High-bar.Low == 0 {
				continue
			}

			flowSum += moneyFlowMultiplier(bar) * volume
			volumeSum += volume
		}

		if volumeSum != 0 {
			out.Set(i, flowSum/volumeSum)
		}
	}

	return out
}

// moneyFlowMultiplier is ((close-low)-(high-close))/(high-low), 0 for a flat bar.
func moneyFlowMultiplier(c types.Candle) float64 {
	if c.High-c.Low == 0 {
		return 0
	}

	return ((c.Close - c.Low) - (c.High - c.Close)) / (c.High - c.Low)
}

// MFI represents the Money Flow Index.
type MFI struct {
	period int
}

// NewMFI creates a new MFI indicator with default configuration.
func NewMFI() Indicator {
	return &MFI{
		period: 14, // Default period
	}
}

// Name returns the name of the indicator.
func (m *MFI) Name() types.IndicatorType { return types.IndicatorTypeMFI }

func (m *MFI) Title() string { return "Money Flow Index" }

func (m *MFI) Group() types.IndicatorGroup { return types.IndicatorGroupVolume }

func (m *MFI) Params() []Param {
	return []Param{intParam("period", m.period)}
}

// Compute splits raw money flow into positive and negative flow by the
// direction of the typical price. The first value sits at index period; a
// window without negative flow yields 100.
func (m *MFI) Compute(candles []types.Candle, opts Options) types.Series {
	period := opts.Int("period", m.period)
	out := types.NewSeries(len(candles))

	if !validPeriod(period, len(candles)) || !hasVolume(candles) {
		return out
	}

	positive := make([]float64, len(candles))
	negative := make([]float64, len(candles))

	for i := 1; i < len(candles); i++ {
		tp, prevTP := candles[i].TypicalPrice(), candles[i-1].TypicalPrice()
		flow := tp * candles[i].VolumeOrZero()

		switch {
		case tp > prevTP:
			positive[i] = flow
		case tp < prevTP:
			negative[i] = flow
		}
	}

	for i := period; i < len(candles); i++ {
		posSum, negSum := 0.0, 0.0
		for j := i - period + 1; j <= i; j++ {
			posSum += positive[j]
			negSum += negative[j]
		}

		if negSum == 0 {
			out.Set(i, 100)

			continue
		}

		out.Set(i, 100-100/(1+posSum/negSum))
	}

	return out
}

// AccumDistLine represents the Accumulation/Distribution Line.
type AccumDistLine struct{}

// NewAccumDistLine creates a new A/D line indicator.
func NewAccumDistLine() Indicator {
	return &AccumDistLine{}
}

// Name returns the name of the indicator.
func (a *AccumDistLine) Name() types.IndicatorType { return types.IndicatorTypeAccumDistLine }

func (a *AccumDistLine) Title() string { return "Accumulation/Distribution Line" }

func (a *AccumDistLine) Group() types.IndicatorGroup { return types.IndicatorGroupVolume }

func (a *AccumDistLine) Params() []Param { return nil }

// Compute accumulates money flow volume from the first candle on.
func (a *AccumDistLine) Compute(candles []types.Candle, _ Options) types.Series {
	out := types.NewSeries(len(candles))
	if !hasVolume(candles) {
		return out
	}

	adl := 0.0
	for i, c := range candles {
		adl += moneyFlowMultiplier(c) * c.VolumeOrZero()
		out.Set(i, adl)
	}

	return out
}

// PriceVolumeTrend represents the Price Volume Trend indicator.
type PriceVolumeTrend struct{}

// NewPriceVolumeTrend creates a new PVT indicator.
func NewPriceVolumeTrend() Indicator {
	return &PriceVolumeTrend{}
}

// Name returns the name of the indicator.
func (p *PriceVolumeTrend) Name() types.IndicatorType {
	return types.IndicatorTypePriceVolumeTrend
}

func (p *PriceVolumeTrend) Title() string { return "Price Volume Trend" }

func (p *PriceVolumeTrend) Group() types.IndicatorGroup { return types.IndicatorGroupVolume }

func (p *PriceVolumeTrend) Params() []Param { return nil }

// Compute starts at 0 and adds volume * relative close change. A zero previous
// close carries the running total forward unchanged.
func (p *PriceVolumeTrend) Compute(candles []types.Candle, _ Options) types.Series {
	out := types.NewSeries(len(candles))
	if len(candles) == 0 || !hasVolume(candles) {
		return out
	}

	pvt := 0.0
	out.Set(0, pvt)

	for i := 1; i < len(candles); i++ {
		if prevClose := candles[i-1].Close; prevClose != 0 {
			pvt += candles[i].VolumeOrZero() * (candles[i].Close - prevClose) / prevClose
		}

		out.Set(i, pvt)
	}

	return out
}

// ForceIndex represents Elder's Force Index.
type ForceIndex struct {
	period int
}

// NewForceIndex creates a new Force Index indicator with default configuration.
func NewForceIndex() Indicator {
	return &ForceIndex{
		period: 13, // Default period
	}
}

// Name returns the name of the indicator.
func (f *ForceIndex) Name() types.IndicatorType { return types.IndicatorTypeForceIndex }

func (f *ForceIndex) Title() string { return "Force Index" }

func (f *ForceIndex) Group() types.IndicatorGroup { return types.IndicatorGroupVolume }

func (f *ForceIndex) Params() []Param {
	return []Param{intParam("period", f.period)}
}

// Compute smooths (close[i]-close[i-1])*volume[i] with EMA(period).
func (f *ForceIndex) Compute(candles []types.Candle, opts Options) types.Series {
	period := opts.Int("period", f.period)
	if !validPeriod(period, len(candles)) || !hasVolume(candles) {
		return types.NewSeries(len(candles))
	}

	raw := types.NewSeries(len(candles))
	for i := 1; i < len(candles); i++ {
		raw.Set(i, (candles[i].Close-candles[i-1].Close)*candles[i].VolumeOrZero())
	}

	return emaOf(raw, period)
}

// EaseOfMovement represents the Ease of Movement indicator.
type EaseOfMovement struct {
	period int
}

// NewEaseOfMovement creates a new EOM indicator with default configuration.
func NewEaseOfMovement() Indicator {
	return &EaseOfMovement{
		period: 14, // Default period
	}
}

// Name returns the name of the indicator.
func (e *EaseOfMovement) Name() types.IndicatorType { return types.IndicatorTypeEaseOfMovement }

func (e *EaseOfMovement) Title() string { return "Ease of Movement" }

func (e *EaseOfMovement) Group() types.IndicatorGroup { return types.IndicatorGroupVolume }

func (e *EaseOfMovement) Params() []Param {
	return []Param{intParam("period", e.period)}
}

// Compute divides the midpoint move by the box ratio (high-low)/volume and
// averages over period. A zero box ratio contributes 0. The first candle has
// no midpoint move, so the first value is at index period, one bar after a
// plain SMA of the same period.
func (e *EaseOfMovement) Compute(candles []types.Candle, opts Options) types.Series {
	period := opts.Int("period", e.period)
	if !validPeriod(period, len(candles)) || !hasVolume(candles) {
		return types.NewSeries(len(candles))
	}

	raw := types.NewSeries(len(candles))

	for i := 1; i < len(candles); i++ {
		distance := candles[i].MidPoint() - candles[i-1].MidPoint()

		boxRatio := 0.0
		if volume := candles[i].VolumeOrZero(); volume != 0 {
			boxRatio = (candles[i].High - candles[i].Low) / volume
		}

		if boxRatio == 0 {
			raw.Set(i, 0)

			continue
		}

		raw.Set(i, distance/boxRatio)
	}

	return smaOf(raw, period)
}

// VolumeOscillator represents the difference of a short and a long volume SMA.
type VolumeOscillator struct {
	shortPeriod int
	longPeriod  int
}

// NewVolumeOscillator creates a new Volume Oscillator with 14/28 windows.
func NewVolumeOscillator() Indicator {
	return &VolumeOscillator{
		shortPeriod: 14,
		longPeriod:  28,
	}
}

// Name returns the name of the indicator.
func (v *VolumeOscillator) Name() types.IndicatorType {
	return types.IndicatorTypeVolumeOscillator
}

func (v *VolumeOscillator) Title() string { return "Volume Oscillator" }

func (v *VolumeOscillator) Group() types.IndicatorGroup { return types.IndicatorGroupVolume }

func (v *VolumeOscillator) Params() []Param {
	return []Param{
		intParam("short_period", v.shortPeriod),
		intParam("long_period", v.longPeriod),
	}
}

func (v *VolumeOscillator) Compute(candles []types.Candle, opts Options) types.Series {
	short := opts.Int("short_period", v.shortPeriod)
	long := opts.Int("long_period", v.longPeriod)

	if !validPeriod(short, len(candles)) || !validPeriod(long, len(candles)) || !hasVolume(candles) {
		return types.NewSeries(len(candles))
	}

	volumes := volumeSeries(candles)

	return combine(smaOf(volumes, short), smaOf(volumes, long), func(s, l float64) float64 { return s - l })
}
