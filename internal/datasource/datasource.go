// Package datasource loads candles from files on disk.
package datasource

import (
	"context"
	"time"

	"github.com/moznion/go-optional"

	"github.com/rxtech-lab/argo-indicators/internal/types"
	"github.com/rxtech-lab/argo-indicators/pkg/errors"
)

// TimeRange bounds the candles read from a file. Both ends are inclusive and
// optional.
type TimeRange struct {
	Start optional.Option[time.Time]
	End   optional.Option[time.Time]
}

// Validate rejects a range whose start lies after its end.
func (r TimeRange) Validate() error {
	if r.Start.IsSome() && r.End.IsSome() && r.Start.Unwrap().After(r.End.Unwrap()) {
		return errors.Newf(errors.ErrCodeInvalidTimeRange, "start %s is after end %s",
			r.Start.Unwrap().Format(time.RFC3339), r.End.Unwrap().Format(time.RFC3339))
	}

	return nil
}

type CandleSource interface {
	// Load reads every candle of the file at path inside window, oldest first.
	Load(ctx context.Context, path string, window TimeRange) ([]types.Candle, error)
	// ReadAll streams the candles of the file at path inside window, oldest first.
	ReadAll(ctx context.Context, path string, window TimeRange) func(yield func(types.Candle, error) bool)
	// Count returns the number of candles of the file at path inside window.
	Count(ctx context.Context, path string, window TimeRange) (int, error)
	// Close releases the underlying database.
	Close() error
}
