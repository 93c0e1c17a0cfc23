package indicator_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/rxtech-lab/argo-indicators/internal/indicator"
	"github.com/rxtech-lab/argo-indicators/internal/types"
	"github.com/rxtech-lab/argo-indicators/mocks"
)

// PropertiesTestSuite checks the contracts every catalog indicator shares.
type PropertiesTestSuite struct {
	suite.Suite
	catalog *indicator.Catalog
}

func TestPropertiesSuite(t *testing.T) {
	suite.Run(t, new(PropertiesTestSuite))
}

func (suite *PropertiesTestSuite) SetupTest() {
	suite.catalog = indicator.DefaultCatalog()
}

func (suite *PropertiesTestSuite) indicators() []indicator.Indicator {
	var out []indicator.Indicator

	for _, name := range suite.catalog.List() {
		ind, err := suite.catalog.Get(name)
		suite.Require().NoError(err)

		out = append(out, ind)
	}

	return out
}

// outputs collects the primary series and every component of ind.
func outputs(ind indicator.Indicator, candles []types.Candle, opts indicator.Options) map[string]types.Series {
	out := map[string]types.Series{"": ind.Compute(candles, opts)}

	if multi, ok := ind.(indicator.MultiOutput); ok {
		for key, series := range multi.Components(candles, opts) {
			out[key] = series
		}
	}

	return out
}

func fingerprint(suite *PropertiesTestSuite, ind indicator.Indicator, candles []types.Candle, opts indicator.Options) string {
	data, err := json.Marshal(outputs(ind, candles, opts))
	suite.Require().NoError(err)

	return string(data)
}

func (suite *PropertiesTestSuite) TestCatalogSize() {
	suite.Len(suite.indicators(), 41)
}

func (suite *PropertiesTestSuite) TestOutputLengthMatchesInput() {
	for _, n := range []int{0, 1, 5, 100} {
		candles := mocks.GenerateCandles(n)

		for _, ind := range suite.indicators() {
			for key, series := range outputs(ind, candles, nil) {
				suite.Len(series, n, "%s %q with %d candles", ind.Name(), key, n)
			}
		}
	}
}

func (suite *PropertiesTestSuite) TestDeterministic() {
	candles := mocks.GenerateCandles(300)

	for _, ind := range suite.indicators() {
		first := fingerprint(suite, ind, candles, nil)
		second := fingerprint(suite, ind, candles, nil)

		suite.Equal(first, second, ind.Name())
	}
}

func (suite *PropertiesTestSuite) TestPeriodOutOfRangeIsAllNone() {
	candles := mocks.GenerateCandles(50)

	for _, ind := range suite.indicators() {
		if !hasParam(ind, "period") {
			continue
		}

		for _, period := range []int{0, len(candles) + 1} {
			for key, series := range outputs(ind, candles, indicator.Options{"period": period}) {
				suite.Zero(series.Defined(), "%s %q period %d", ind.Name(), key, period)
			}
		}
	}
}

func (suite *PropertiesTestSuite) TestEveryDeclaredParamIsRead() {
	datasets := [][]types.Candle{
		mocks.GenerateCandles(300),
		mocks.LinearCandles(300, 100, 1),
	}

	for _, ind := range suite.indicators() {
		for _, p := range ind.Params() {
			changed := indicator.Options{p.Name: bumped(p)}
			differs := false

			for _, candles := range datasets {
				if fingerprint(suite, ind, candles, nil) != fingerprint(suite, ind, candles, changed) {
					differs = true
				}
			}

			suite.True(differs, "%s ignores %s", ind.Name(), p.Name)
		}
	}
}

func (suite *PropertiesTestSuite) TestUnknownParamHasNoEffect() {
	candles := mocks.GenerateCandles(120)

	for _, ind := range suite.indicators() {
		suite.Equal(
			fingerprint(suite, ind, candles, nil),
			fingerprint(suite, ind, candles, indicator.Options{"definitely_not_a_param": 3}),
			ind.Name(),
		)
	}
}

func (suite *PropertiesTestSuite) TestParamsHaveDefaults() {
	for _, ind := range suite.indicators() {
		suite.NotEmpty(ind.Title(), ind.Name())
		suite.NotEmpty(ind.Group(), ind.Name())

		for _, p := range ind.Params() {
			suite.NotNil(p.Default, "%s.%s", ind.Name(), p.Name)
		}
	}
}

func hasParam(ind indicator.Indicator, name string) bool {
	for _, p := range ind.Params() {
		if p.Name == name {
			return true
		}
	}

	return false
}

// bumped returns a value different from the parameter's default.
func bumped(p indicator.Param) any {
	switch def := p.Default.(type) {
	case int:
		return def + 1
	case float64:
		return def * 1.5
	case []int:
		out := make([]int, len(def))
		for i, v := range def {
			out[i] = v + 1
		}

		return out
	default:
		return def
	}
}
