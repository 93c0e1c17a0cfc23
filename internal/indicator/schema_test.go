package indicator

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"
)

type SchemaTestSuite struct {
	suite.Suite
}

func TestSchemaSuite(t *testing.T) {
	suite.Run(t, new(SchemaTestSuite))
}

func (suite *SchemaTestSuite) TestPeriodParam() {
	schema := ParamsSchema(NewRSI())

	suite.Equal("Relative Strength Index", schema.Title)
	suite.Equal("object", schema.Type)

	prop, ok := schema.Properties.Get("period")
	suite.Require().True(ok)
	suite.Equal("integer", prop.Type)
	suite.Equal(json.Number("1"), prop.Minimum)
	suite.Equal(14, prop.Default)
}

func (suite *SchemaTestSuite) TestMixedParams() {
	schema := ParamsSchema(NewParabolicSAR())

	step, ok := schema.Properties.Get("step")
	suite.Require().True(ok)
	suite.Equal("number", step.Type)
	suite.Empty(step.Minimum)

	gmma := ParamsSchema(NewGMMA())
	short, ok := gmma.Properties.Get("short_periods")
	suite.Require().True(ok)
	suite.Equal("array", short.Type)
	suite.Equal("integer", short.Items.Type)
}

func (suite *SchemaTestSuite) TestNoParams() {
	schema := ParamsSchema(NewOBV())

	suite.Equal(0, schema.Properties.Len())
}

func (suite *SchemaTestSuite) TestSchemaJSON() {
	out, err := ParamsSchemaJSON(NewMACD())
	suite.Require().NoError(err)

	var decoded map[string]any
	suite.Require().NoError(json.Unmarshal([]byte(out), &decoded))

	suite.Equal("object", decoded["type"])
	suite.Equal("Trend", decoded["description"])

	properties := decoded["properties"].(map[string]any)
	suite.Contains(properties, "short_period")
	suite.Contains(properties, "long_period")
	suite.Contains(properties, "signal_period")
}
