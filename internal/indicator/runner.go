package indicator

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/rxtech-lab/argo-indicators/internal/logger"
	"github.com/rxtech-lab/argo-indicators/internal/metrics"
	"github.com/rxtech-lab/argo-indicators/internal/types"
	"github.com/rxtech-lab/argo-indicators/pkg/errors"
)

// Entry binds an indicator to the display name used as its result key and the
// option bag it runs with by default.
type Entry struct {
	DisplayName string
	Indicator   Indicator
	Options     Options
}

// RunError reports the entries that failed during a run. Every other entry is
// still present in the returned Result.
type RunError struct {
	Failures map[string]error
}

func (e *RunError) Error() string {
	names := make([]string, 0, len(e.Failures))
	for name := range e.Failures {
		names = append(names, name)
	}

	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %v", name, e.Failures[name]))
	}

	return fmt.Sprintf("%d indicator(s) failed: %s", len(names), strings.Join(parts, "; "))
}

// Unwrap exposes the individual failures to errors.Is and errors.As.
func (e *RunError) Unwrap() []error {
	errs := make([]error, 0, len(e.Failures))
	for _, err := range e.Failures {
		errs = append(errs, err)
	}

	return errs
}

// Runner executes a fixed list of entries concurrently over one candle slice.
// It is immutable after construction and safe for concurrent use.
type Runner struct {
	entries     []Entry
	logger      *logger.Logger
	metrics     *metrics.Recorder
	components  bool
	concurrency int
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the logger failed entries and run summaries are written to.
func WithLogger(l *logger.Logger) RunnerOption {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithMetrics records per-entry durations and failures.
func WithMetrics(m *metrics.Recorder) RunnerOption {
	return func(r *Runner) {
		r.metrics = m
	}
}

// WithComponents makes multi-output entries also emit "<display>.<component>" keys.
func WithComponents(enabled bool) RunnerOption {
	return func(r *Runner) {
		r.components = enabled
	}
}

// WithConcurrency caps the number of entries computed at once. Zero or a
// negative value means one goroutine per entry.
func WithConcurrency(n int) RunnerOption {
	return func(r *Runner) {
		r.concurrency = n
	}
}

// NewRunner creates a runner over entries. Display names must be non-empty
// and unique; entries without options run with their indicator's defaults.
// With components enabled, no display name may start with "<name>." where
// <name> is a multi-output entry.
func NewRunner(entries []Entry, opts ...RunnerOption) (*Runner, error) {
	seen := make(map[string]struct{}, len(entries))
	copied := make([]Entry, 0, len(entries))

	for _, e := range entries {
		if e.DisplayName == "" {
			return nil, errors.New(errors.ErrCodeInvalidParameter, "NewRunner: entry display name must not be empty")
		}

		if e.Indicator == nil {
			return nil, errors.Newf(errors.ErrCodeInvalidParameter, "NewRunner: entry %s has no indicator", e.DisplayName)
		}

		if _, dup := seen[e.DisplayName]; dup {
			return nil, errors.Newf(errors.ErrCodeIndicatorAlreadyExists, "NewRunner: duplicate display name %s", e.DisplayName)
		}

		seen[e.DisplayName] = struct{}{}
		copied = append(copied, Entry{
			DisplayName: e.DisplayName,
			Indicator:   e.Indicator,
			Options:     DefaultOptions(e.Indicator).Merge(e.Options),
		})
	}

	r := &Runner{
		entries: copied,
		logger:  logger.NewNopLogger(),
	}

	for _, opt := range opts {
		opt(r)
	}

	r.logger = r.logger.Named("runner")

	if r.components {
		if err := checkComponentKeys(copied); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// checkComponentKeys rejects display names inside the "<display>.<component>"
// key space of a multi-output entry.
func checkComponentKeys(entries []Entry) error {
	for _, e := range entries {
		if _, ok := e.Indicator.(MultiOutput); !ok {
			continue
		}

		prefix := e.DisplayName + "."

		for _, other := range entries {
			if strings.HasPrefix(other.DisplayName, prefix) {
				return errors.Newf(errors.ErrCodeIndicatorAlreadyExists,
					"NewRunner: display name %s collides with the components of %s", other.DisplayName, e.DisplayName)
			}
		}
	}

	return nil
}

// Entries returns a copy of the runner's entries in registration order.
func (r *Runner) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)

	return out
}

// Names returns the display names in registration order.
func (r *Runner) Names() []string {
	names := make([]string, len(r.entries))
	for i, e := range r.entries {
		names[i] = e.DisplayName
	}

	return names
}

// Select returns a runner restricted to the named entries, sharing this
// runner's settings.
func (r *Runner) Select(names []string) (*Runner, error) {
	byName := make(map[string]Entry, len(r.entries))
	for _, e := range r.entries {
		byName[e.DisplayName] = e
	}

	selected := make([]Entry, 0, len(names))

	for _, name := range names {
		e, ok := byName[name]
		if !ok {
			return nil, errors.Newf(errors.ErrCodeIndicatorNotFound, "Select: no entry named %s", name)
		}

		selected = append(selected, e)
	}

	sub := *r
	sub.entries = nil

	for _, e := range selected {
		if sub.has(e.DisplayName) {
			return nil, errors.Newf(errors.ErrCodeIndicatorAlreadyExists, "Select: duplicate display name %s", e.DisplayName)
		}

		sub.entries = append(sub.entries, e)
	}

	return &sub, nil
}

func (r *Runner) has(name string) bool {
	for _, e := range r.entries {
		if e.DisplayName == name {
			return true
		}
	}

	return false
}

// Run computes every entry with its own options.
func (r *Runner) Run(ctx context.Context, candles []types.Candle) (Result, error) {
	return r.RunWithOverrides(ctx, candles, nil)
}

// RunWithOverrides computes every entry, layering overrides[display name] over
// the entry's options. Overrides for unknown display names are rejected.
//
// Each entry runs in its own goroutine. A panicking entry is recorded in the
// returned *RunError and left out of the result; the others are unaffected.
// The call returns as soon as ctx is done, without waiting for running entries.
func (r *Runner) RunWithOverrides(ctx context.Context, candles []types.Candle, overrides map[string]Options) (Result, error) {
	for name := range overrides {
		if !r.has(name) {
			return nil, errors.Newf(errors.ErrCodeInvalidParameter, "RunWithOverrides: options given for unknown indicator %s", name)
		}
	}

	if err := ctx.Err(); err != nil {
		r.metrics.RecordRun("cancelled", len(candles))

		return nil, errors.Wrap(errors.ErrCodeRunCancelled, "run cancelled before dispatch", err)
	}

	start := time.Now()
	outputs := make([]map[string]types.Series, len(r.entries))
	failures := make([]error, len(r.entries))

	g, gctx := errgroup.WithContext(ctx)
	if r.concurrency > 0 {
		g.SetLimit(r.concurrency)
	}

	done := make(chan struct{})

	// g.Go blocks once the concurrency limit is reached, so dispatch happens
	// off the caller's goroutine.
	go func() {
		defer close(done)

		for i, entry := range r.entries {
			if gctx.Err() != nil {
				break
			}

			opts := entry.Options
			if override, ok := overrides[entry.DisplayName]; ok {
				opts = opts.Merge(override)
			}

			g.Go(func() error {
				if gctx.Err() != nil {
					return nil
				}

				outputs[i], failures[i] = r.compute(entry, candles, opts)

				// failures are collected per entry, never propagated to the group
				return nil
			})
		}

		_ = g.Wait()
	}()

	// Entries still computing after cancellation finish in the background;
	// their outputs are discarded.
	select {
	case <-ctx.Done():
	case <-done:
	}

	if err := ctx.Err(); err != nil {
		r.metrics.RecordRun("cancelled", len(candles))

		return nil, errors.Wrap(errors.ErrCodeRunCancelled, "run cancelled", err)
	}

	result := make(Result)
	runErr := &RunError{Failures: make(map[string]error)}

	for i, entry := range r.entries {
		if failures[i] != nil {
			runErr.Failures[entry.DisplayName] = failures[i]

			continue
		}

		for key, series := range outputs[i] {
			result[key] = series
		}
	}

	r.logger.Debug("run finished",
		zap.Int("entries", len(r.entries)),
		zap.Int("candles", len(candles)),
		zap.Int("failed", len(runErr.Failures)),
		zap.Duration("duration", time.Since(start)),
	)

	if len(runErr.Failures) > 0 {
		r.metrics.RecordRun("partial", len(candles))

		return result, runErr
	}

	r.metrics.RecordRun("ok", len(candles))

	return result, nil
}

// compute runs one entry, converting a panic or a mis-sized output into an error.
func (r *Runner) compute(entry Entry, candles []types.Candle, opts Options) (out map[string]types.Series, err error) {
	start := time.Now()

	defer func() {
		if p := recover(); p != nil {
			out = nil
			err = errors.Newf(errors.ErrCodeIndicatorPanicked, "indicator %s panicked: %v", entry.DisplayName, p)

			r.logger.Error("indicator panicked",
				zap.String("indicator", entry.DisplayName),
				zap.String("type", string(entry.Indicator.Name())),
				zap.Any("panic", p),
				zap.Stack("stack"),
			)
		}

		if err != nil {
			r.metrics.RecordFailure(entry.DisplayName)

			return
		}

		r.metrics.RecordCompute(entry.DisplayName, time.Since(start))
	}()

	out = map[string]types.Series{
		entry.DisplayName: entry.Indicator.Compute(candles, opts),
	}

	if multi, ok := entry.Indicator.(MultiOutput); ok && r.components {
		for component, series := range multi.Components(candles, opts) {
			out[entry.DisplayName+"."+component] = series
		}
	}

	for key, series := range out {
		if len(series) != len(candles) {
			r.logger.Error("indicator returned a mis-sized series",
				zap.String("indicator", entry.DisplayName),
				zap.String("key", key),
				zap.Int("expected", len(candles)),
				zap.Int("got", len(series)),
			)

			return nil, errors.Newf(errors.ErrCodeIndicatorCalculation,
				"indicator %s returned %d values for %d candles", key, len(series), len(candles))
		}
	}

	return out, nil
}
