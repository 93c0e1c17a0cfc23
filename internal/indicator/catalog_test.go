package indicator

import (
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/rxtech-lab/argo-indicators/internal/types"
	"github.com/rxtech-lab/argo-indicators/pkg/errors"
)

type CatalogTestSuite struct {
	suite.Suite
}

func TestCatalogSuite(t *testing.T) {
	suite.Run(t, new(CatalogTestSuite))
}

func (suite *CatalogTestSuite) TestRegisterAndGet() {
	catalog := NewCatalog()

	rsi := NewRSI()
	suite.NoError(catalog.Register(rsi))

	retrieved, err := catalog.Get(types.IndicatorTypeRSI)
	suite.NoError(err)
	suite.Equal(rsi, retrieved)
}

func (suite *CatalogTestSuite) TestRegisterDuplicate() {
	catalog := NewCatalog()
	suite.NoError(catalog.Register(NewRSI()))

	err := catalog.Register(NewRSI())
	suite.Error(err)
	suite.Contains(err.Error(), "already registered")
	suite.True(errors.HasCode(err, errors.ErrCodeIndicatorAlreadyExists))
}

func (suite *CatalogTestSuite) TestGetNotFound() {
	_, err := NewCatalog().Get(types.IndicatorTypeRSI)
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeIndicatorNotFound))
}

func (suite *CatalogTestSuite) TestRemove() {
	catalog := NewCatalog()
	suite.NoError(catalog.Register(NewSMA()))
	suite.NoError(catalog.Remove(types.IndicatorTypeSMA))

	_, err := catalog.Get(types.IndicatorTypeSMA)
	suite.Error(err)

	err = catalog.Remove(types.IndicatorTypeSMA)
	suite.True(errors.HasCode(err, errors.ErrCodeIndicatorNotFound))
}

func (suite *CatalogTestSuite) TestListIsSorted() {
	catalog := NewCatalog()
	suite.NoError(catalog.Register(NewVWAP()))
	suite.NoError(catalog.Register(NewADX()))
	suite.NoError(catalog.Register(NewMACD()))

	suite.Equal([]types.IndicatorType{types.IndicatorTypeADX, types.IndicatorTypeMACD, types.IndicatorTypeVWAP}, catalog.List())
}

func (suite *CatalogTestSuite) TestDefaultCatalogHasEveryIndicator() {
	catalog := DefaultCatalog()
	names := catalog.List()

	suite.Len(names, len(builtins()))
	suite.True(sort.SliceIsSorted(names, func(i, j int) bool { return names[i] < names[j] }))

	for _, name := range []types.IndicatorType{
		types.IndicatorTypeSMA, types.IndicatorTypeStochasticRSI, types.IndicatorTypeIchimoku,
		types.IndicatorTypeHeikinAshiSlope, types.IndicatorTypeKalmanFilterSmoother,
	} {
		_, err := catalog.Get(name)
		suite.NoError(err, name)
	}
}

func (suite *CatalogTestSuite) TestConcurrentAccess() {
	catalog := DefaultCatalog()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			_, _ = catalog.Get(types.IndicatorTypeRSI)
			_ = catalog.List()
		}()
	}

	wg.Wait()
	suite.NotEmpty(catalog.List())
}
