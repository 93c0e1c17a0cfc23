package mocks

import (
	"testing"
	"time"
)

func TestDataGenerator_Generate(t *testing.T) {
	gen := NewDataGenerator(42) // Fixed seed for reproducibility
	config := DefaultConfig()
	config.Count = 100

	candles := gen.Generate(config)

	if len(candles) != 100 {
		t.Fatalf("expected 100 candles, got %d", len(candles))
	}

	expectedInterval := config.Interval.Milliseconds()

	for i, c := range candles {
		if c.Open <= 0 || c.High <= 0 || c.Low <= 0 || c.Close <= 0 {
			t.Errorf("invalid OHLC values at index %d: O=%f H=%f L=%f C=%f", i, c.Open, c.High, c.Low, c.Close)
		}

		if c.High < c.Low {
			t.Errorf("High < Low at index %d: H=%f L=%f", i, c.High, c.Low)
		}

		if c.Volume.IsNone() {
			t.Errorf("expected volume at index %d", i)
		}

		if i > 0 && c.Timestamp-candles[i-1].Timestamp != expectedInterval {
			t.Errorf("unexpected interval at index %d", i)
		}
	}
}

func TestDataGenerator_Reproducibility(t *testing.T) {
	config := DefaultConfig()
	config.Count = 50

	first := NewDataGenerator(7).Generate(config)
	second := NewDataGenerator(7).Generate(config)

	for i := range first {
		if first[i].Close != second[i].Close {
			t.Fatalf("same seed produced different closes at index %d", i)
		}
	}
}

func TestDataGenerator_OmitVolume(t *testing.T) {
	config := DefaultConfig()
	config.Count = 10
	config.OmitVolume = true

	for i, c := range NewDataGenerator(1).Generate(config) {
		if c.Volume.IsSome() {
			t.Errorf("expected no volume at index %d", i)
		}
	}
}

func TestLinearAndFlatCandles(t *testing.T) {
	linear := LinearCandles(20, 100, 1)
	if linear[19].Close != 119 {
		t.Errorf("expected last close 119, got %f", linear[19].Close)
	}

	for _, c := range FlatCandles(5, 42) {
		if c.High != c.Low || c.Close != 42 {
			t.Errorf("expected a flat candle, got %+v", c)
		}
	}
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.Interval != time.Minute {
		t.Errorf("expected one minute interval, got %v", config.Interval)
	}

	if config.InitialPrice <= 0 {
		t.Errorf("expected positive initial price, got %f", config.InitialPrice)
	}
}
