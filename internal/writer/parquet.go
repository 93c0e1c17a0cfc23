package writer

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/marcboeker/go-duckdb"

	"github.com/rxtech-lab/argo-indicators/pkg/errors"
)

// ParquetWriter stages runs in an in-memory DuckDB table and exports them to
// a Parquet file in long format: one row per (run, timestamp, series).
// Undefined values are stored as NULL.
type ParquetWriter struct {
	db         *sql.DB
	tx         *sql.Tx
	stmt       *sql.Stmt
	outputPath string
}

// NewParquetWriter creates a new ParquetWriter exporting to outputPath.
func NewParquetWriter(outputPath string) ResultWriter {
	return &ParquetWriter{
		outputPath: outputPath,
	}
}

// Initialize opens the staging database, creates the table, begins a
// transaction and prepares the insert statement.
func (w *ParquetWriter) Initialize() (err error) {
	w.db, err = sql.Open("duckdb", "")
	if err != nil {
		return errors.Wrap(errors.ErrCodeOutputWriteFailed, "failed to open DuckDB connection", err)
	}

	_, err = w.db.Exec(`
		CREATE TABLE IF NOT EXISTS indicator_values (
			run_id TEXT,
			source TEXT,
			timestamp BIGINT,
			series TEXT,
			value DOUBLE
		)
	`)
	if err != nil {
		w.db.Close()

		return errors.Wrap(errors.ErrCodeOutputWriteFailed, "failed to create table", err)
	}

	w.tx, err = w.db.Begin()
	if err != nil {
		w.db.Close()

		return errors.Wrap(errors.ErrCodeOutputWriteFailed, "failed to begin transaction", err)
	}

	w.stmt, err = w.tx.Prepare(`
		INSERT INTO indicator_values (run_id, source, timestamp, series, value)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		w.tx.Rollback()
		w.db.Close()

		return errors.Wrap(errors.ErrCodeOutputWriteFailed, "failed to prepare statement", err)
	}

	return nil
}

// Write inserts every value of run, series in sorted key order.
func (w *ParquetWriter) Write(run Run) error {
	if w.stmt == nil {
		return errors.New(errors.ErrCodeOutputWriteFailed, "writer not initialized or statement is nil")
	}

	for _, key := range run.Result.Keys() {
		series := run.Result[key]

		for i, candle := range run.Candles {
			var value sql.NullFloat64
			if v, ok := series.At(i); ok {
				value = sql.NullFloat64{Float64: v, Valid: true}
			}

			if _, err := w.stmt.Exec(run.ID, run.Source, candle.Timestamp, key, value); err != nil {
				return errors.Wrapf(errors.ErrCodeOutputWriteFailed, err, "failed to insert %s", key)
			}
		}
	}

	return nil
}

// Finalize commits the transaction and exports the data to a Parquet file.
func (w *ParquetWriter) Finalize() (string, error) {
	if w.tx == nil {
		return "", errors.New(errors.ErrCodeOutputWriteFailed, "writer not initialized or transaction is nil")
	}

	if err := w.tx.Commit(); err != nil {
		w.tx.Rollback()

		return "", errors.Wrap(errors.ErrCodeOutputWriteFailed, "failed to commit transaction", err)
	}

	w.tx = nil

	path := strings.ReplaceAll(w.outputPath, "'", "''")

	_, err := w.db.Exec(fmt.Sprintf(
		`COPY (SELECT * FROM indicator_values ORDER BY run_id, series, timestamp) TO '%s' (FORMAT PARQUET)`, path))
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeOutputWriteFailed, "failed to export to Parquet", err)
	}

	return w.outputPath, nil
}

// Close cleans up resources used by the writer, including closing the statement,
// rolling back an unfinished transaction and closing the database connection.
func (w *ParquetWriter) Close() error {
	var closeErrors []string

	if w.stmt != nil {
		if err := w.stmt.Close(); err != nil {
			closeErrors = append(closeErrors, fmt.Sprintf("failed to close statement: %v", err))
		}

		w.stmt = nil
	}

	if w.tx != nil {
		// rollback errors are not actionable during close
		_ = w.tx.Rollback()
		w.tx = nil
	}

	if w.db != nil {
		if err := w.db.Close(); err != nil {
			closeErrors = append(closeErrors, fmt.Sprintf("failed to close db connection: %v", err))
		}

		w.db = nil
	}

	if len(closeErrors) > 0 {
		return errors.Newf(errors.ErrCodeOutputWriteFailed, "errors occurred during close: %s", strings.Join(closeErrors, "; "))
	}

	return nil
}

// GetOutputPath returns the configured output file path.
func (w *ParquetWriter) GetOutputPath() string {
	return w.outputPath
}
