package writer

import (
	"encoding/json"
	"io"
	"os"

	"github.com/rxtech-lab/argo-indicators/internal/types"
	"github.com/rxtech-lab/argo-indicators/pkg/errors"
)

// jsonDocument is the file layout written by JSONWriter.
type jsonDocument struct {
	Runs []jsonRun `json:"runs"`
}

type jsonRun struct {
	RunID      string                  `json:"run_id"`
	Source     string                  `json:"source"`
	Timestamps []int64                 `json:"timestamps"`
	Series     map[string]types.Series `json:"series"`
}

// JSONWriter buffers runs and encodes them as one JSON document on Finalize.
// Undefined values are written as null.
type JSONWriter struct {
	out        io.Writer
	file       *os.File
	outputPath string
	runs       []jsonRun
}

// NewJSONWriter creates a writer encoding to out. Close does not close out.
func NewJSONWriter(out io.Writer) ResultWriter {
	return &JSONWriter{out: out}
}

// NewJSONFileWriter creates a writer that creates outputPath on Initialize.
func NewJSONFileWriter(outputPath string) ResultWriter {
	return &JSONWriter{outputPath: outputPath}
}

// Initialize creates the output file when writing to a path.
func (w *JSONWriter) Initialize() error {
	if w.outputPath == "" {
		return nil
	}

	file, err := os.Create(w.outputPath)
	if err != nil {
		return errors.Wrapf(errors.ErrCodeOutputWriteFailed, err, "failed to create %s", w.outputPath)
	}

	w.file = file
	w.out = file

	return nil
}

// Write buffers run.
func (w *JSONWriter) Write(run Run) error {
	if w.out == nil {
		return errors.New(errors.ErrCodeOutputWriteFailed, "writer not initialized")
	}

	timestamps := make([]int64, len(run.Candles))
	for i, c := range run.Candles {
		timestamps[i] = c.Timestamp
	}

	series := make(map[string]types.Series, len(run.Result))
	for key, s := range run.Result {
		series[key] = s
	}

	w.runs = append(w.runs, jsonRun{
		RunID:      run.ID,
		Source:     run.Source,
		Timestamps: timestamps,
		Series:     series,
	})

	return nil
}

// Finalize encodes every buffered run.
func (w *JSONWriter) Finalize() (string, error) {
	if w.out == nil {
		return "", errors.New(errors.ErrCodeOutputWriteFailed, "writer not initialized")
	}

	doc := jsonDocument{Runs: w.runs}
	if doc.Runs == nil {
		doc.Runs = []jsonRun{}
	}

	encoder := json.NewEncoder(w.out)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(doc); err != nil {
		return "", errors.Wrap(errors.ErrCodeOutputWriteFailed, "failed to encode results", err)
	}

	w.runs = nil

	return w.outputPath, nil
}

// Close closes the output file if the writer created one.
func (w *JSONWriter) Close() error {
	if w.file == nil {
		return nil
	}

	err := w.file.Close()
	w.file = nil

	if err != nil {
		return errors.Wrap(errors.ErrCodeOutputWriteFailed, "failed to close output file", err)
	}

	return nil
}

// GetOutputPath returns the output path, empty when writing to a stream.
func (w *JSONWriter) GetOutputPath() string {
	return w.outputPath
}
