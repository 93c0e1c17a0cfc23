package indicator

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/rxtech-lab/argo-indicators/internal/types"
)

type ResultTestSuite struct {
	suite.Suite
}

func TestResultSuite(t *testing.T) {
	suite.Run(t, new(ResultTestSuite))
}

func (suite *ResultTestSuite) TestKeysSorted() {
	result := Result{"b": nil, "a.x": nil, "a": nil}

	suite.Equal([]string{"a", "a.x", "b"}, result.Keys())
	suite.Empty(Result{}.Keys())
}

func (suite *ResultTestSuite) TestRound() {
	series := types.NewSeries(4)
	series.Set(0, 1.23456)
	series.Set(1, 2.345)
	series.Set(3, -2.345)

	rounded := Result{"x": series}.Round(2)

	suite.Equal([]int{0, 1, 3}, definedAt(rounded["x"]))

	v, _ := rounded["x"].At(0)
	suite.Equal(1.23, v)

	v, _ = rounded["x"].At(1)
	suite.Equal(2.35, v)

	v, _ = rounded["x"].At(3)
	suite.Equal(-2.35, v)

	// the input is not modified
	v, _ = series.At(0)
	suite.Equal(1.23456, v)
}

func (suite *ResultTestSuite) TestRoundNegativePlacesCopies() {
	series := types.FromValues([]float64{1.23456})
	rounded := Result{"x": series}.Round(-1)

	suite.Equal(series, rounded["x"])

	rounded["x"].Set(0, 9)
	v, _ := series.At(0)
	suite.Equal(1.23456, v)
}
