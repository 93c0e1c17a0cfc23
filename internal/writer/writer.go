// Package writer persists runner results.
package writer

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/rxtech-lab/argo-indicators/internal/indicator"
	"github.com/rxtech-lab/argo-indicators/internal/types"
	"github.com/rxtech-lab/argo-indicators/pkg/errors"
)

// Run is the result of one runner invocation over one candle source.
type Run struct {
	ID      string
	Source  string
	Candles []types.Candle
	Result  indicator.Result
}

// NewRun stamps a result with a fresh run ID.
func NewRun(source string, candles []types.Candle, result indicator.Result) Run {
	return Run{
		ID:      uuid.New().String(),
		Source:  source,
		Candles: candles,
		Result:  result,
	}
}

// ResultWriter defines the interface for writing runs to a destination.
type ResultWriter interface {
	// Initialize sets up the writer, potentially creating tables or files.
	Initialize() error
	// Write persists a single run.
	Write(run Run) error
	// Finalize completes the writing process (e.g., commits transactions, exports files).
	Finalize() (outputPath string, err error)
	// Close releases any resources held by the writer.
	Close() error
	// GetOutputPath returns the configured output file path.
	GetOutputPath() string
}

// New picks a writer from the extension of outputPath: ".json" or ".parquet".
// An empty path or "-" writes JSON to stdout.
func New(outputPath string) (ResultWriter, error) {
	if outputPath == "" || outputPath == "-" {
		return NewJSONWriter(os.Stdout), nil
	}

	switch strings.ToLower(filepath.Ext(outputPath)) {
	case ".json":
		return NewJSONFileWriter(outputPath), nil
	case ".parquet":
		return NewParquetWriter(outputPath), nil
	default:
		return nil, errors.Newf(errors.ErrCodeUnsupportedFormat, "unsupported output format %q (want .json or .parquet)", filepath.Ext(outputPath))
	}
}
