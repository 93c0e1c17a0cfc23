// Package config loads the YAML configuration shared by the CLI and the HTTP
// server.
package config

import (
	"bytes"
	"io"
	"os"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/rxtech-lab/argo-indicators/internal/indicator"
	"github.com/rxtech-lab/argo-indicators/internal/types"
	"github.com/rxtech-lab/argo-indicators/internal/version"
	"github.com/rxtech-lab/argo-indicators/pkg/errors"
)

// Config is the root of the configuration file.
type Config struct {
	// Version is the library version the file was written for
	Version  string `yaml:"version" json:"version" jsonschema:"title=Version,description=Library version the config was written for (e.g. v1.0.0)"`
	LogLevel string `yaml:"log_level" json:"log_level" jsonschema:"title=Log Level,enum=debug,enum=info,enum=warn,enum=error,default=info" default:"info" validate:"oneof=debug info warn error"`

	Server ServerConfig `yaml:"server" json:"server" jsonschema:"title=Server,description=HTTP server settings"`
	Output OutputConfig `yaml:"output" json:"output" jsonschema:"title=Output,description=Result formatting"`
	Runner RunnerConfig `yaml:"runner" json:"runner" jsonschema:"title=Runner,description=Concurrent runner settings"`

	// Indicators replaces the default line-up when non-empty
	Indicators []IndicatorConfig `yaml:"indicators" json:"indicators" jsonschema:"title=Indicators,description=Indicators to run; empty means the default line-up" validate:"unique=Name,dive"`
}

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	Addr         string        `yaml:"addr" json:"addr" jsonschema:"title=Address,default=:8080" default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout" json:"read_timeout" jsonschema:"title=Read Timeout" default:"10s" validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" json:"write_timeout" jsonschema:"title=Write Timeout" default:"30s" validate:"gt=0"`
	// RequestTimeout bounds a single compute request
	RequestTimeout time.Duration `yaml:"request_timeout" json:"request_timeout" jsonschema:"title=Request Timeout,description=Deadline for one compute request" default:"20s" validate:"gt=0"`
	MetricsPath    string        `yaml:"metrics_path" json:"metrics_path" jsonschema:"title=Metrics Path,default=/metrics" default:"/metrics" validate:"startswith=/"`
	// MaxCandles caps the number of candles accepted by one compute request
	MaxCandles int `yaml:"max_candles" json:"max_candles" jsonschema:"title=Max Candles,minimum=1,default=100000" default:"100000" validate:"min=1"`
}

// OutputConfig controls how results are written.
type OutputConfig struct {
	// Precision is the number of decimal places; -1 disables rounding
	Precision  *int `yaml:"precision" json:"precision" jsonschema:"title=Precision,description=Decimal places of written values; -1 disables rounding,minimum=-1,default=6" default:"6" validate:"required,min=-1,max=15"`
	Components bool `yaml:"components" json:"components" jsonschema:"title=Components,description=Also emit every component of multi-output indicators"`
}

// RunnerConfig controls the concurrent runner.
type RunnerConfig struct {
	// Concurrency caps the indicators computed at once; 0 means one goroutine each
	Concurrency int `yaml:"concurrency" json:"concurrency" jsonschema:"title=Concurrency,minimum=0" validate:"min=0"`
}

// IndicatorConfig is one runner entry.
type IndicatorConfig struct {
	Name    string              `yaml:"name" json:"name" jsonschema:"title=Name,description=Display name used as the result key,required" validate:"required"`
	Type    types.IndicatorType `yaml:"type" json:"type" jsonschema:"title=Type,description=Catalog key of the indicator (e.g. rsi),required" validate:"required"`
	Options map[string]any      `yaml:"options" json:"options" jsonschema:"title=Options,description=Parameter bag merged over the indicator defaults"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	// defaults.Set only fails on malformed tags
	_ = defaults.Set(cfg)

	return cfg
}

// Load reads and parses the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrCodeInvalidConfiguration, err, "failed to read config file %s", path)
	}

	return Parse(data)
}

// Parse decodes YAML, fills defaults, validates the result and checks that
// the file's version is compatible with this build. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(cfg); err != nil && err != io.EOF {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfiguration, "failed to parse config", err)
	}

	if err := defaults.Set(cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfiguration, "failed to apply config defaults", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := version.CheckConfigCompatibility(version.GetVersion(), cfg.Version); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the struct constraints of the configuration.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid config", err)
	}

	return nil
}

// Precision returns the configured number of decimal places.
func (c *Config) Precision() int32 {
	if c.Output.Precision == nil {
		return 6
	}

	return int32(*c.Output.Precision)
}

// Entries resolves the configured indicators against catalog. An empty list
// yields the default line-up.
func (c *Config) Entries(catalog *indicator.Catalog) ([]indicator.Entry, error) {
	if len(c.Indicators) == 0 {
		return indicator.DefaultEntries(), nil
	}

	entries := make([]indicator.Entry, 0, len(c.Indicators))

	for _, ic := range c.Indicators {
		ind, err := catalog.Get(ic.Type)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrCodeIndicatorNotFound, err, "indicator %s has unknown type %s", ic.Name, ic.Type)
		}

		entries = append(entries, indicator.Entry{
			DisplayName: ic.Name,
			Indicator:   ind,
			Options:     indicator.Options(ic.Options),
		})
	}

	return entries, nil
}

// BuildRunner creates a runner for the configured indicators. Runner settings
// from the file are applied first so opts can override them.
func (c *Config) BuildRunner(catalog *indicator.Catalog, opts ...indicator.RunnerOption) (*indicator.Runner, error) {
	entries, err := c.Entries(catalog)
	if err != nil {
		return nil, err
	}

	options := append([]indicator.RunnerOption{
		indicator.WithConcurrency(c.Runner.Concurrency),
		indicator.WithComponents(c.Output.Components),
	}, opts...)

	return indicator.NewRunner(entries, options...)
}
