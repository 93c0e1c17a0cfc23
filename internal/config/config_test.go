package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/rxtech-lab/argo-indicators/internal/indicator"
	"github.com/rxtech-lab/argo-indicators/internal/version"
	"github.com/rxtech-lab/argo-indicators/pkg/errors"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (suite *ConfigTestSuite) TestDefault() {
	cfg := Default()

	suite.Equal("info", cfg.LogLevel)
	suite.Equal(":8080", cfg.Server.Addr)
	suite.Equal(10*time.Second, cfg.Server.ReadTimeout)
	suite.Equal(30*time.Second, cfg.Server.WriteTimeout)
	suite.Equal(20*time.Second, cfg.Server.RequestTimeout)
	suite.Equal("/metrics", cfg.Server.MetricsPath)
	suite.Equal(100000, cfg.Server.MaxCandles)
	suite.Equal(int32(6), cfg.Precision())
	suite.False(cfg.Output.Components)
	suite.Empty(cfg.Indicators)
	suite.NoError(cfg.Validate())
}

func (suite *ConfigTestSuite) TestParseEmpty() {
	cfg, err := Parse(nil)
	suite.Require().NoError(err)
	suite.Equal(Default(), cfg)
}

func (suite *ConfigTestSuite) TestParseFull() {
	yamlData := `
version: v1.0.4
log_level: debug
server:
  addr: "127.0.0.1:9000"
  read_timeout: 5s
  write_timeout: 1m
  metrics_path: /prom
output:
  precision: 0
  components: true
runner:
  concurrency: 4
indicators:
  - name: "RSI(7)"
    type: rsi
    options:
      period: 7
  - name: Bands
    type: bollinger_bands
`
	cfg, err := Parse([]byte(yamlData))
	suite.Require().NoError(err)

	suite.Equal("debug", cfg.LogLevel)
	suite.Equal("127.0.0.1:9000", cfg.Server.Addr)
	suite.Equal(5*time.Second, cfg.Server.ReadTimeout)
	suite.Equal(time.Minute, cfg.Server.WriteTimeout)
	suite.Equal(20*time.Second, cfg.Server.RequestTimeout)
	suite.Equal("/prom", cfg.Server.MetricsPath)
	suite.Equal(int32(0), cfg.Precision())
	suite.True(cfg.Output.Components)
	suite.Equal(4, cfg.Runner.Concurrency)
	suite.Len(cfg.Indicators, 2)
	suite.Equal(7, cfg.Indicators[0].Options["period"])
}

func (suite *ConfigTestSuite) TestParseErrors() {
	tests := []struct {
		name string
		yaml string
		code errors.ErrorCode
	}{
		{"malformed", "log_level: [", errors.ErrCodeInvalidConfiguration},
		{"unknown key", "colour: blue", errors.ErrCodeInvalidConfiguration},
		{"bad log level", "log_level: loud", errors.ErrCodeInvalidConfiguration},
		{"bad metrics path", "server: {metrics_path: metrics}", errors.ErrCodeInvalidConfiguration},
		{"precision too large", "output: {precision: 40}", errors.ErrCodeInvalidConfiguration},
		{"negative concurrency", "runner: {concurrency: -1}", errors.ErrCodeInvalidConfiguration},
		{"missing type", "indicators: [{name: x}]", errors.ErrCodeInvalidConfiguration},
		{"duplicate names", "indicators: [{name: x, type: rsi}, {name: x, type: sma}]", errors.ErrCodeInvalidConfiguration},
		{"major mismatch", "version: v9.0.0", errors.ErrCodeInvalidVersion},
		{"bad version", "version: banana", errors.ErrCodeInvalidVersion},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, err := Parse([]byte(tt.yaml))
			suite.Error(err)
			suite.Equal(tt.code, errors.GetCode(err), err.Error())
		})
	}
}

func (suite *ConfigTestSuite) TestParseAcceptsDevelopmentBuild() {
	original := version.Version
	version.Version = "main"

	defer func() { version.Version = original }()

	_, err := Parse([]byte("version: v7.3.0"))
	suite.NoError(err)
}

func (suite *ConfigTestSuite) TestLoad() {
	path := filepath.Join(suite.T().TempDir(), "config.yaml")
	suite.Require().NoError(os.WriteFile(path, []byte("log_level: warn\n"), 0o600))

	cfg, err := Load(path)
	suite.Require().NoError(err)
	suite.Equal("warn", cfg.LogLevel)

	_, err = Load(filepath.Join(suite.T().TempDir(), "missing.yaml"))
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidConfiguration))
}

func (suite *ConfigTestSuite) TestBuildRunnerDefaults() {
	runner, err := Default().BuildRunner(indicator.DefaultCatalog())
	suite.Require().NoError(err)

	suite.Len(runner.Names(), len(indicator.DefaultEntries()))
	suite.Contains(runner.Names(), "MACD(12,26,9)")
}

func (suite *ConfigTestSuite) TestBuildRunnerFromEntries() {
	cfg, err := Parse([]byte(`
indicators:
  - {name: "Fast", type: ema, options: {period: 3}}
  - {name: "Slow", type: ema}
`))
	suite.Require().NoError(err)

	runner, err := cfg.BuildRunner(indicator.DefaultCatalog())
	suite.Require().NoError(err)

	suite.Equal([]string{"Fast", "Slow"}, runner.Names())

	entries := runner.Entries()
	suite.Equal(3, entries[0].Options.Int("period", 0))
	suite.Equal(14, entries[1].Options.Int("period", 0))
}

func (suite *ConfigTestSuite) TestBuildRunnerUnknownType() {
	cfg, err := Parse([]byte("indicators: [{name: x, type: astrology}]"))
	suite.Require().NoError(err)

	_, err = cfg.BuildRunner(indicator.DefaultCatalog())
	suite.True(errors.HasCode(err, errors.ErrCodeIndicatorNotFound))
	suite.Contains(err.Error(), "astrology")
}

func (suite *ConfigTestSuite) TestSchema() {
	schema, err := Schema()
	suite.Require().NoError(err)

	var decoded map[string]any
	suite.Require().NoError(json.Unmarshal([]byte(schema), &decoded))

	properties := decoded["properties"].(map[string]any)
	suite.Contains(properties, "log_level")
	suite.Contains(properties, "server")
	suite.Contains(properties, "indicators")
}
