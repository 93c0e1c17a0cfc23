package types

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type IndicatorTestSuite struct {
	suite.Suite
}

func TestIndicatorSuite(t *testing.T) {
	suite.Run(t, new(IndicatorTestSuite))
}

func (suite *IndicatorTestSuite) TestIndicatorTypeConstants() {
	suite.Equal(IndicatorType("rsi"), IndicatorTypeRSI)
	suite.Equal(IndicatorType("macd"), IndicatorTypeMACD)
	suite.Equal(IndicatorType("bollinger_bands"), IndicatorTypeBollingerBands)
	suite.Equal(IndicatorType("stochastic_rsi"), IndicatorTypeStochasticRSI)
	suite.Equal(IndicatorType("roc"), IndicatorTypeRateOfChange)
	suite.Equal(IndicatorType("heikin_ashi_slope"), IndicatorTypeHeikinAshiSlope)
}

func (suite *IndicatorTestSuite) TestGroupAndParamTypes() {
	suite.Equal("Oscillator", string(IndicatorGroupOscillator))
	suite.Equal("Filter", string(IndicatorGroupFilter))
	suite.Equal("int_list", string(ParamTypeIntList))
}
