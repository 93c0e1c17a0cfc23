package indicator

import (
	"testing"

	"github.com/moznion/go-optional"
	"github.com/stretchr/testify/suite"

	"github.com/rxtech-lab/argo-indicators/internal/types"
)

type VolumeTestSuite struct {
	suite.Suite
}

func TestVolumeSuite(t *testing.T) {
	suite.Run(t, new(VolumeTestSuite))
}

func withoutVolume(candles []types.Candle) []types.Candle {
	for i := range candles {
		candles[i].Volume = optional.None[float64]()
	}

	return candles
}

// closingAtHigh returns bars that close on their high with volume 10.
func closingAtHigh(n int) []types.Candle {
	candles := make([]types.Candle, n)
	for i := range candles {
		price := float64(10 + i)
		candles[i] = types.Candle{
			Timestamp: int64(i),
			Open:      price - 1,
			High:      price,
			Low:       price - 2,
			Close:     price,
			Volume:    optional.Some(10.0),
		}
	}

	return candles
}

func (suite *VolumeTestSuite) TestSingleCandle() {
	candles := []types.Candle{{Timestamp: 1, Open: 10, High: 12, Low: 9, Close: 11, Volume: optional.Some(100.0)}}

	obv := NewOBV().Compute(candles, nil)
	v, ok := obv.At(0)
	suite.True(ok)
	suite.Equal(0.0, v)

	vwap := NewVWAP().Compute(candles, nil)
	v, ok = vwap.At(0)
	suite.True(ok)
	suite.InDelta(32.0/3.0, v, 1e-12)

	suite.Empty(definedAt(NewForceIndex().Compute(candles, nil)))
	suite.Empty(definedAt(NewMFI().Compute(candles, nil)))
}

func (suite *VolumeTestSuite) TestOBV() {
	out := NewOBV().Compute(candlesFromCloses(1, 2, 2, 1), nil)

	expected := []float64{0, 1000, 1000, 0}
	for i, want := range expected {
		v, _ := out.At(i)
		suite.Equal(want, v, i)
	}
}

func (suite *VolumeTestSuite) TestVWAPCumulative() {
	out := NewVWAP().Compute(candlesFromCloses(1, 2, 3), nil)

	for i, want := range []float64{1, 1.5, 2} {
		v, _ := out.At(i)
		suite.InDelta(want, v, 1e-12)
	}
}

func (suite *VolumeTestSuite) TestVWAPSkipsBarWithoutVolume() {
	candles := candlesFromCloses(1, 2, 3)
	candles[1].Volume = optional.None[float64]()

	out := NewVWAP().Compute(candles, nil)
	suite.Equal([]int{0, 2}, definedAt(out))

	v, _ := out.At(2)
	suite.InDelta(2.0, v, 1e-12)
}

func (suite *VolumeTestSuite) TestCMF() {
	neutral := NewCMF().Compute(candlesFromCloses(rising(25, 1)...), nil)
	suite.Equal(19, definedAt(neutral)[0])

	v, _ := neutral.At(24)
	suite.InDelta(0.0, v, 1e-12)

	strong := NewCMF().Compute(closingAtHigh(25), nil)
	v, _ = strong.At(24)
	suite.InDelta(1.0, v, 1e-12)

	flat := NewCMF().Compute(flatCandles(25, 3), nil)
	suite.Empty(definedAt(flat))
}

func (suite *VolumeTestSuite) TestMFIRisingIsHundred() {
	out := NewMFI().Compute(candlesFromCloses(rising(20, 1)...), nil)

	suite.Equal(14, definedAt(out)[0])

	v, _ := out.At(19)
	suite.Equal(100.0, v)
}

func (suite *VolumeTestSuite) TestAccumDistLine() {
	out := NewAccumDistLine().Compute(closingAtHigh(3), nil)

	for i, want := range []float64{10, 20, 30} {
		v, _ := out.At(i)
		suite.InDelta(want, v, 1e-12)
	}
}

func (suite *VolumeTestSuite) TestPriceVolumeTrend() {
	out := NewPriceVolumeTrend().Compute(candlesFromCloses(100, 110, 110), nil)

	for i, want := range []float64{0, 100, 100} {
		v, _ := out.At(i)
		suite.InDelta(want, v, 1e-9)
	}
}

func (suite *VolumeTestSuite) TestForceIndex() {
	out := NewForceIndex().Compute(candlesFromCloses(rising(20, 1)...), Options{"period": 5})

	// raw force starts at index 1 so the EMA seed lands on index period
	suite.Equal(5, definedAt(out)[0])

	v, _ := out.At(10)
	suite.InDelta(1000.0, v, 1e-9)
}

func (suite *VolumeTestSuite) TestEaseOfMovement() {
	out := NewEaseOfMovement().Compute(candlesFromCloses(rising(20, 1)...), Options{"period": 5})

	suite.Equal(5, definedAt(out)[0])
	suite.True(out[4].IsNone())

	short := NewEaseOfMovement().Compute(candlesFromCloses(rising(5, 1)...), Options{"period": 5})
	suite.Zero(short.Defined())

	v, _ := out.At(10)
	suite.InDelta(500.0, v, 1e-9)

	flat := NewEaseOfMovement().Compute(flatCandles(20, 5), Options{"period": 5})
	v, _ = flat.At(10)
	suite.Equal(0.0, v)
}

func (suite *VolumeTestSuite) TestVolumeOscillatorConstantVolume() {
	out := NewVolumeOscillator().Compute(candlesFromCloses(rising(40, 1)...), nil)

	suite.Equal(27, definedAt(out)[0])

	for _, i := range definedAt(out) {
		v, _ := out.At(i)
		suite.InDelta(0.0, v, 1e-9)
	}
}

func (suite *VolumeTestSuite) TestNoVolumeAnywhere() {
	indicators := []Indicator{
		NewOBV(), NewVWAP(), NewCMF(), NewMFI(), NewAccumDistLine(),
		NewPriceVolumeTrend(), NewForceIndex(), NewEaseOfMovement(), NewVolumeOscillator(),
	}

	for _, ind := range indicators {
		candles := withoutVolume(candlesFromCloses(rising(60, 1)...))
		out := ind.Compute(candles, nil)

		suite.Len(out, 60, ind.Name())
		suite.Empty(definedAt(out), ind.Name())
	}
}
