package indicator

import (
	"github.com/moznion/go-optional"

	"github.com/rxtech-lab/argo-indicators/internal/types"
)

// candlesFromCloses builds candles with high/low one unit around each close
// and a constant volume.
func candlesFromCloses(closes ...float64) []types.Candle {
	candles := make([]types.Candle, len(closes))
	for i, c := range closes {
		candles[i] = types.Candle{
			Timestamp: int64(i),
			Open:      c,
			High:      c + 1,
			Low:       c - 1,
			Close:     c,
			Volume:    optional.Some(1000.0),
		}
	}

	return candles
}

func rising(n int, start float64) []float64 {
	values := make([]float64, n)
	for i := range values {
		values[i] = start + float64(i)
	}

	return values
}

func constant(n int, v float64) []float64 {
	values := make([]float64, n)
	for i := range values {
		values[i] = v
	}

	return values
}

// definedAt lists the indices holding a value.
func definedAt(s types.Series) []int {
	var idx []int

	for i := range s {
		if s[i].IsSome() {
			idx = append(idx, i)
		}
	}

	return idx
}
