package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"

	"github.com/moznion/go-optional"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/rxtech-lab/argo-indicators/internal/datasource"
	"github.com/rxtech-lab/argo-indicators/internal/indicator"
	"github.com/rxtech-lab/argo-indicators/internal/logger"
	"github.com/rxtech-lab/argo-indicators/internal/writer"
)

// openCandleSource is replaced in tests.
var openCandleSource = func(log *logger.Logger) (datasource.CandleSource, error) {
	return datasource.NewDuckDBSource(log)
}

func computeAction(ctx context.Context, cmd *cli.Command) error {
	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}
	defer log.Sync()

	if cmd.IsSet("precision") {
		precision := int(cmd.Int("precision"))
		cfg.Output.Precision = &precision

		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	window := datasource.TimeRange{}
	if cmd.IsSet("start") {
		window.Start = optional.Some(cmd.Timestamp("start"))
	}

	if cmd.IsSet("end") {
		window.End = optional.Some(cmd.Timestamp("end"))
	}

	if err := window.Validate(); err != nil {
		return err
	}

	runner, err := cfg.BuildRunner(indicator.DefaultCatalog(), indicator.WithLogger(log.Named("runner")))
	if err != nil {
		return err
	}

	source, err := openCandleSource(log)
	if err != nil {
		return err
	}
	defer source.Close()

	out, err := newResultWriter(cmd)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := out.Initialize(); err != nil {
		return err
	}

	inputs := cmd.StringSlice("input")

	var barWriter io.Writer = cmd.Root().ErrWriter
	if cmd.Bool("no-progress") || barWriter == nil {
		barWriter = io.Discard
	}

	bar := progressbar.NewOptions(len(inputs),
		progressbar.OptionSetDescription("Computing indicators"),
		progressbar.OptionSetWriter(barWriter),
		progressbar.OptionShowCount(),
	)

	for _, input := range inputs {
		candles, err := source.Load(ctx, input, window)
		if err != nil {
			return err
		}

		result, err := runner.Run(ctx, candles)

		var runErr *indicator.RunError
		if stderrors.As(err, &runErr) {
			for name, failure := range runErr.Failures {
				log.Warn("indicator failed", zap.String("input", input), zap.String("indicator", name), zap.Error(failure))
			}
		} else if err != nil {
			return err
		}

		if err := out.Write(writer.NewRun(input, candles, result.Round(cfg.Precision()))); err != nil {
			return err
		}

		_ = bar.Add(1)
	}

	_ = bar.Finish()

	path, err := out.Finalize()
	if err != nil {
		return err
	}

	if path != "" {
		log.Info("results written", zap.String("path", path), zap.Int("inputs", len(inputs)))
	}

	return nil
}

// newResultWriter picks the writer for --output. "-" writes JSON to the
// command's output stream.
func newResultWriter(cmd *cli.Command) (writer.ResultWriter, error) {
	output := cmd.String("output")
	if output == "" || output == "-" {
		return writer.NewJSONWriter(cmd.Root().Writer), nil
	}

	w, err := writer.New(output)
	if err != nil {
		return nil, fmt.Errorf("invalid --output: %w", err)
	}

	return w, nil
}
