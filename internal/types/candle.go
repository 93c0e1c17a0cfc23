package types

import (
	"github.com/moznion/go-optional"
)

// Candle is one OHLCV bar. Volume is None when the source reported no trade
// volume for the bar.
type Candle struct {
	Timestamp int64                    `json:"timestamp"`
	Open      float64                  `json:"open"`
	High      float64                  `json:"high"`
	Low       float64                  `json:"low"`
	Close     float64                  `json:"close"`
	Volume    optional.Option[float64] `json:"volume"`
}

// TypicalPrice returns (high+low+close)/3.
func (c Candle) TypicalPrice() float64 {
	return (c.High + c.Low + c.Close) / 3
}

// MidPoint returns (high+low)/2.
func (c Candle) MidPoint() float64 {
	return (c.High + c.Low) / 2
}

// VolumeOrZero returns the bar volume, treating a missing volume as zero.
func (c Candle) VolumeOrZero() float64 {
	return c.Volume.TakeOr(0)
}

// Closes extracts the close prices of the candles.
func Closes(candles []Candle) []float64 {
	closes := make([]float64, len(candles))
	for i, c := range candles {
		closes[i] = c.Close
	}

	return closes
}
