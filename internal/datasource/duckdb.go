package datasource

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/squirrel"
	_ "github.com/marcboeker/go-duckdb"
	"github.com/moznion/go-optional"
	"go.uber.org/zap"

	"github.com/rxtech-lab/argo-indicators/internal/logger"
	"github.com/rxtech-lab/argo-indicators/internal/types"
	"github.com/rxtech-lab/argo-indicators/pkg/errors"
)

// Accepted names of the timestamp column, in lookup order.
var timeColumns = []string{"time", "timestamp"}

var priceColumns = []string{"open", "high", "low", "close"}

// DuckDBSource reads Parquet and CSV files through an in-memory DuckDB.
// The time column may be a TIMESTAMP/DATE or an integer of Unix
// milliseconds. A missing or NULL volume becomes None.
type DuckDBSource struct {
	db     *sql.DB
	logger *logger.Logger
	sq     squirrel.StatementBuilderType
}

// NewDuckDBSource opens an in-memory DuckDB database.
func NewDuckDBSource(log *logger.Logger) (*DuckDBSource, error) {
	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeDataSourceUnavailable, "failed to open duckdb", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()

		return nil, errors.Wrap(errors.ErrCodeDataSourceUnavailable, "failed to connect to duckdb", err)
	}

	return &DuckDBSource{
		db:     db,
		logger: log.Named("datasource"),
		sq:     squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}, nil
}

// fileQuery describes how to read one file.
type fileQuery struct {
	from       string
	timeExpr   string
	volumeExpr string
}

// prepare checks the file and inspects its columns.
func (d *DuckDBSource) prepare(ctx context.Context, path string, window TimeRange) (fileQuery, error) {
	if err := window.Validate(); err != nil {
		return fileQuery{}, err
	}

	if _, err := os.Stat(path); err != nil {
		return fileQuery{}, errors.Wrapf(errors.ErrCodeDataNotFound, err, "input file %s not found", path)
	}

	escaped := strings.ReplaceAll(path, "'", "''")

	var from string

	switch strings.ToLower(filepath.Ext(path)) {
	case ".parquet":
		from = fmt.Sprintf("read_parquet('%s')", escaped)
	case ".csv":
		from = fmt.Sprintf("read_csv_auto('%s')", escaped)
	default:
		return fileQuery{}, errors.Newf(errors.ErrCodeUnsupportedFormat, "unsupported input format %q (want .parquet or .csv)", filepath.Ext(path))
	}

	columns, err := d.describe(ctx, from)
	if err != nil {
		return fileQuery{}, err
	}

	q := fileQuery{from: from, volumeExpr: "NULL"}

	for _, name := range timeColumns {
		columnType, ok := columns[name]
		if !ok {
			continue
		}

		if strings.HasPrefix(columnType, "TIMESTAMP") || columnType == "DATE" {
			q.timeExpr = fmt.Sprintf("epoch_ms(CAST(%q AS TIMESTAMP))", name)
		} else {
			q.timeExpr = fmt.Sprintf("CAST(%q AS BIGINT)", name)
		}

		break
	}

	if q.timeExpr == "" {
		return fileQuery{}, errors.Newf(errors.ErrCodeInputParseFailed, "%s has no time or timestamp column", path)
	}

	for _, name := range priceColumns {
		if _, ok := columns[name]; !ok {
			return fileQuery{}, errors.Newf(errors.ErrCodeInputParseFailed, "%s has no %s column", path, name)
		}
	}

	if _, ok := columns["volume"]; ok {
		q.volumeExpr = `CAST("volume" AS DOUBLE)`
	}

	return q, nil
}

// describe returns the lower-cased column names of from mapped to their DuckDB types.
func (d *DuckDBSource) describe(ctx context.Context, from string) (map[string]string, error) {
	rows, err := d.db.QueryContext(ctx, "DESCRIBE SELECT * FROM "+from)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed to inspect input file", err)
	}
	defer rows.Close()

	names, err := rows.Columns()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed to inspect input file", err)
	}

	columns := make(map[string]string)

	for rows.Next() {
		// DESCRIBE returns column_name, column_type, null, key, default, extra
		values := make([]sql.NullString, len(names))
		targets := make([]any, len(names))

		for i := range values {
			targets[i] = &values[i]
		}

		if err := rows.Scan(targets...); err != nil {
			return nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed to inspect input file", err)
		}

		columns[strings.ToLower(values[0].String)] = strings.ToUpper(values[1].String)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed to inspect input file", err)
	}

	return columns, nil
}

// where adds the window bounds to builder.
func where(builder squirrel.SelectBuilder, q fileQuery, window TimeRange) squirrel.SelectBuilder {
	if window.Start.IsSome() {
		builder = builder.Where(q.timeExpr+" >= ?", window.Start.Unwrap().UnixMilli())
	}

	if window.End.IsSome() {
		builder = builder.Where(q.timeExpr+" <= ?", window.End.Unwrap().UnixMilli())
	}

	return builder
}

// Count implements CandleSource.
func (d *DuckDBSource) Count(ctx context.Context, path string, window TimeRange) (int, error) {
	q, err := d.prepare(ctx, path, window)
	if err != nil {
		return 0, err
	}

	query, args, err := where(d.sq.Select("COUNT(*)").From(q.from), q, window).ToSql()
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeQueryFailed, "failed to build count query", err)
	}

	var count int
	if err := d.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, errors.Wrap(errors.ErrCodeQueryFailed, "failed to count candles", err)
	}

	return count, nil
}

// ReadAll implements CandleSource.
func (d *DuckDBSource) ReadAll(ctx context.Context, path string, window TimeRange) func(yield func(types.Candle, error) bool) {
	return func(yield func(types.Candle, error) bool) {
		q, err := d.prepare(ctx, path, window)
		if err != nil {
			yield(types.Candle{}, err)

			return
		}

		columns := []string{q.timeExpr + " AS ts"}
		for _, name := range priceColumns {
			columns = append(columns, fmt.Sprintf("CAST(%q AS DOUBLE)", name))
		}

		columns = append(columns, q.volumeExpr+" AS volume")

		query, args, err := where(d.sq.Select(columns...).From(q.from), q, window).OrderBy("ts ASC").ToSql()
		if err != nil {
			yield(types.Candle{}, errors.Wrap(errors.ErrCodeQueryFailed, "failed to build candle query", err))

			return
		}

		d.logger.Debug("Reading candles", zap.String("path", path), zap.String("query", query))

		rows, err := d.db.QueryContext(ctx, query, args...)
		if err != nil {
			yield(types.Candle{}, errors.Wrap(errors.ErrCodeQueryFailed, "failed to query candles", err))

			return
		}
		defer rows.Close()

		for rows.Next() {
			var (
				candle types.Candle
				volume sql.NullFloat64
			)

			if err := rows.Scan(&candle.Timestamp, &candle.Open, &candle.High, &candle.Low, &candle.Close, &volume); err != nil {
				yield(types.Candle{}, errors.Wrap(errors.ErrCodeInputParseFailed, "failed to scan candle", err))

				return
			}

			if volume.Valid {
				candle.Volume = optional.Some(volume.Float64)
			}

			if !yield(candle, nil) {
				return
			}
		}

		if err := rows.Err(); err != nil {
			yield(types.Candle{}, errors.Wrap(errors.ErrCodeQueryFailed, "failed to read candles", err))
		}
	}
}

// Load implements CandleSource.
func (d *DuckDBSource) Load(ctx context.Context, path string, window TimeRange) ([]types.Candle, error) {
	var candles []types.Candle

	for candle, err := range d.ReadAll(ctx, path, window) {
		if err != nil {
			return nil, err
		}

		candles = append(candles, candle)
	}

	d.logger.Debug("Loaded candles", zap.String("path", path), zap.Int("count", len(candles)))

	if candles == nil {
		candles = []types.Candle{}
	}

	return candles, nil
}

// Close implements CandleSource.
func (d *DuckDBSource) Close() error {
	return d.db.Close()
}
