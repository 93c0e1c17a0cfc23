package mocks

import (
	"math"
	"math/rand"
	"time"

	"github.com/moznion/go-optional"

	"github.com/rxtech-lab/argo-indicators/internal/types"
)

// DataGenerator generates realistic candle series for testing and benchmarking.
type DataGenerator struct {
	rng *rand.Rand
}

// NewDataGenerator creates a new DataGenerator with the given seed.
// Use a fixed seed for reproducible results in tests.
func NewDataGenerator(seed int64) *DataGenerator {
	return &DataGenerator{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// GeneratorConfig configures how candles are generated.
type GeneratorConfig struct {
	// StartTime is the timestamp of the first candle
	StartTime time.Time
	// Interval is the duration between each bar
	Interval time.Duration
	// Count is the number of data points to generate
	Count int
	// InitialPrice is the starting price
	InitialPrice float64
	// Volatility controls price movement (0.01 = 1% typical daily volatility)
	Volatility float64
	// Trend is the drift factor (-0.01 to 0.01 for bearish to bullish)
	Trend float64
	// VolumeBase is the average volume per bar
	VolumeBase float64
	// VolumeVariance is the variance in volume (0.0 to 1.0)
	VolumeVariance float64
	// OmitVolume leaves every candle's volume as None
	OmitVolume bool
}

// DefaultConfig returns a sensible default configuration.
func DefaultConfig() GeneratorConfig {
	return GeneratorConfig{
		StartTime:      time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC),
		Interval:       time.Minute,
		Count:          10000,
		InitialPrice:   100.0,
		Volatility:     0.002, // 0.2% per bar
		Trend:          0.0,   // neutral
		VolumeBase:     10000,
		VolumeVariance: 0.3,
	}
}

// Generate creates a slice of candles based on the configuration. Prices follow
// a geometric Brownian motion; timestamps are Unix milliseconds.
func (g *DataGenerator) Generate(config GeneratorConfig) []types.Candle {
	candles := make([]types.Candle, config.Count)
	currentPrice := config.InitialPrice
	currentTime := config.StartTime

	for i := 0; i < config.Count; i++ {
		open := currentPrice

		// Box-Muller transform for a normally distributed shock
		u1 := g.rng.Float64()
		u2 := g.rng.Float64()
		z := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)

		priceChange := config.Volatility * z
		drift := config.Trend / float64(config.Count)

		close := open * (1 + priceChange + drift)
		if close <= 0 {
			close = open * 0.99
		}

		highExtension := math.Abs(g.rng.Float64() * config.Volatility * open * 0.5)
		lowExtension := math.Abs(g.rng.Float64() * config.Volatility * open * 0.5)

		high := math.Max(open, close) + highExtension
		low := math.Min(open, close) - lowExtension
		if low <= 0 {
			low = math.Min(open, close) * 0.99
		}

		volumeVariation := 1.0 + (g.rng.Float64()*2-1)*config.VolumeVariance
		volume := config.VolumeBase * volumeVariation
		if volume < 0 {
			volume = config.VolumeBase * 0.1
		}

		candle := types.Candle{
			Timestamp: currentTime.UnixMilli(),
			Open:      roundToDecimals(open, 4),
			High:      roundToDecimals(high, 4),
			Low:       roundToDecimals(low, 4),
			Close:     roundToDecimals(close, 4),
		}

		if !config.OmitVolume {
			candle.Volume = optional.Some(roundToDecimals(volume, 2))
		}

		candles[i] = candle

		currentPrice = close
		currentTime = currentTime.Add(config.Interval)
	}

	return candles
}

// GenerateCandles is a convenience function returning count candles from a
// fixed seed with default settings.
func GenerateCandles(count int) []types.Candle {
	gen := NewDataGenerator(42)
	config := DefaultConfig()
	config.Count = count

	return gen.Generate(config)
}

// LinearCandles returns count candles whose close rises by step from start.
// High and low sit one unit around the close and volume is constant.
func LinearCandles(count int, start, step float64) []types.Candle {
	candles := make([]types.Candle, count)
	for i := range candles {
		c := start + float64(i)*step
		candles[i] = types.Candle{
			Timestamp: int64(i) * 60_000,
			Open:      c,
			High:      c + 1,
			Low:       c - 1,
			Close:     c,
			Volume:    optional.Some(1000.0),
		}
	}

	return candles
}

// FlatCandles returns count candles with every price equal to price.
func FlatCandles(count int, price float64) []types.Candle {
	candles := make([]types.Candle, count)
	for i := range candles {
		candles[i] = types.Candle{
			Timestamp: int64(i) * 60_000,
			Open:      price,
			High:      price,
			Low:       price,
			Close:     price,
			Volume:    optional.Some(1000.0),
		}
	}

	return candles
}

// roundToDecimals rounds a float64 to the specified number of decimal places.
func roundToDecimals(val float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(val*pow) / pow
}
