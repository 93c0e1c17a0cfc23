package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/urfave/cli/v3"

	"github.com/rxtech-lab/argo-indicators/internal/config"
	"github.com/rxtech-lab/argo-indicators/internal/indicator"
	"github.com/rxtech-lab/argo-indicators/internal/logger"
	"github.com/rxtech-lab/argo-indicators/internal/metrics"
	"github.com/rxtech-lab/argo-indicators/internal/server"
	"github.com/rxtech-lab/argo-indicators/internal/types"
	"github.com/rxtech-lab/argo-indicators/internal/version"
)

// newApp defines the CLI application.
func newApp() *cli.Command {
	return &cli.Command{
		Name:    "argo-indicators",
		Usage:   "Compute technical indicators over OHLCV candles",
		Version: version.GetVersion(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a YAML configuration `FILE`",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level (debug, info, warn, error). Overrides the config file.",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List every indicator in the catalog",
				Action: listAction,
			},
			{
				Name:  "schema",
				Usage: "Print the JSON schema of an indicator's options, or of the config file when no type is given",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "type",
						Aliases: []string{"t"},
						Usage:   "Indicator catalog key (e.g. rsi)",
					},
				},
				Action: schemaAction,
			},
			{
				Name:  "compute",
				Usage: "Compute indicators over candle files and write the results",
				Flags: []cli.Flag{
					&cli.StringSliceFlag{
						Name:     "input",
						Aliases:  []string{"i"},
						Usage:    "Candle file (.parquet or .csv); repeat for several files",
						Required: true,
					},
					&cli.TimestampFlag{
						Name:    "start",
						Aliases: []string{"s"},
						Usage:   "Only use candles at or after this time (`YYYY-MM-DD` or RFC3339)",
						Config: cli.TimestampConfig{
							Layouts: []string{"2006-01-02", "2006-01-02T15:04:05Z07:00"},
						},
					},
					&cli.TimestampFlag{
						Name:    "end",
						Aliases: []string{"e"},
						Usage:   "Only use candles at or before this time (`YYYY-MM-DD` or RFC3339)",
						Config: cli.TimestampConfig{
							Layouts: []string{"2006-01-02", "2006-01-02T15:04:05Z07:00"},
						},
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file (.json or .parquet); - writes JSON to stdout",
						Value:   "-",
					},
					&cli.IntFlag{
						Name:  "precision",
						Usage: "Decimal places of written values; -1 disables rounding. Overrides the config file.",
					},
					&cli.BoolFlag{
						Name:  "no-progress",
						Usage: "Hide the progress bar",
					},
				},
				Action: computeAction,
			},
			{
				Name:  "serve",
				Usage: "Serve the indicator API over HTTP",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "addr",
						Usage: "Listen address. Overrides the config file.",
					},
				},
				Action: serveAction,
			},
			{
				Name:  "version",
				Usage: "Print the version",
				Action: func(_ context.Context, cmd *cli.Command) error {
					_, err := fmt.Fprintln(cmd.Root().Writer, version.GetVersion())

					return err
				},
			},
		},
	}
}

// setup loads the configuration named by --config (or the defaults) and
// builds the logger.
func setup(cmd *cli.Command) (*config.Config, *logger.Logger, error) {
	cfg := config.Default()

	if path := cmd.String("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, nil, err
		}

		cfg = loaded
	}

	if level := cmd.String("log-level"); level != "" {
		cfg.LogLevel = level
	}

	log, err := logger.NewLogger(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}

	return cfg, log, nil
}

func listAction(_ context.Context, cmd *cli.Command) error {
	catalog := indicator.DefaultCatalog()

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("TYPE", "TITLE", "GROUP", "PARAMS")

	for _, name := range catalog.List() {
		ind, err := catalog.Get(name)
		if err != nil {
			return err
		}

		t.Row(string(ind.Name()), ind.Title(), string(ind.Group()), formatParams(ind.Params()))
	}

	_, err := fmt.Fprintln(cmd.Root().Writer, t.String())

	return err
}

// formatParams renders params as "name=default" pairs sorted by name.
func formatParams(params []indicator.Param) string {
	parts := make([]string, 0, len(params))
	for _, p := range params {
		def := fmt.Sprint(p.Default)
		if p.Type == types.ParamTypeIntList {
			def = strings.Trim(strings.ReplaceAll(def, " ", ","), "[]")
		}

		parts = append(parts, p.Name+"="+def)
	}

	sort.Strings(parts)

	return strings.Join(parts, " ")
}

func schemaAction(_ context.Context, cmd *cli.Command) error {
	var (
		schema string
		err    error
	)

	if name := cmd.String("type"); name != "" {
		ind, getErr := indicator.DefaultCatalog().Get(types.IndicatorType(name))
		if getErr != nil {
			return getErr
		}

		schema, err = indicator.ParamsSchemaJSON(ind)
	} else {
		schema, err = config.Schema()
	}

	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.Root().Writer, schema)

	return err
}

func serveAction(ctx context.Context, cmd *cli.Command) error {
	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}
	defer log.Sync()

	if addr := cmd.String("addr"); addr != "" {
		cfg.Server.Addr = addr
	}

	recorder := metrics.New()
	catalog := indicator.DefaultCatalog()

	runner, err := cfg.BuildRunner(catalog,
		indicator.WithLogger(log.Named("runner")),
		indicator.WithMetrics(recorder),
	)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.New(cfg, catalog, runner, log, recorder).Run(ctx)
}
