package indicator

import (
	"sort"
	"sync"

	"github.com/rxtech-lab/argo-indicators/internal/types"
	"github.com/rxtech-lab/argo-indicators/pkg/errors"
)

// Catalog manages all available indicators by catalog key.
type Catalog struct {
	indicators map[types.IndicatorType]Indicator
	mu         sync.RWMutex
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		indicators: make(map[types.IndicatorType]Indicator),
		mu:         sync.RWMutex{},
	}
}

// DefaultCatalog creates a catalog holding every built-in indicator.
func DefaultCatalog() *Catalog {
	c := NewCatalog()

	for _, ind := range builtins() {
		// keys are unique by construction
		_ = c.Register(ind)
	}

	return c
}

// Register adds an indicator to the catalog.
func (c *Catalog) Register(indicator Indicator) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	name := indicator.Name()
	if _, exists := c.indicators[name]; exists {
		return errors.Newf(errors.ErrCodeIndicatorAlreadyExists, "Register: indicator with name %s already registered", name)
	}

	c.indicators[name] = indicator

	return nil
}

// Get retrieves an indicator by catalog key.
func (c *Catalog) Get(name types.IndicatorType) (Indicator, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	indicator, exists := c.indicators[name]
	if !exists {
		return nil, errors.Newf(errors.ErrCodeIndicatorNotFound, "Get: indicator with name %s not found", name)
	}

	return indicator, nil
}

// List returns all registered catalog keys in sorted order.
func (c *Catalog) List() []types.IndicatorType {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]types.IndicatorType, 0, len(c.indicators))
	for name := range c.indicators {
		names = append(names, name)
	}

	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })

	return names
}

// Remove removes an indicator from the catalog.
func (c *Catalog) Remove(name types.IndicatorType) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.indicators[name]; !exists {
		return errors.Newf(errors.ErrCodeIndicatorNotFound, "Remove: indicator with name %s not found", name)
	}

	delete(c.indicators, name)

	return nil
}

func builtins() []Indicator {
	return []Indicator{
		NewSMA(), NewEMA(), NewWMA(), NewHMA(), NewDEMA(), NewTEMA(),
		NewKAMA(), NewFRAMA(), NewKalmanFilterSmoother(),
		NewRSI(), NewStochastic(), NewStochasticRSI(), NewWilliamsR(), NewCCI(),
		NewUltimateOscillator(), NewDetrendedPriceOscillator(), NewSchaffTrendCycle(),
		NewMomentum(), NewRateOfChange(), NewTRIX(), NewMACD(),
		NewATR(), NewChandelierExit(), NewBollingerBands(), NewPercentB(), NewZScore(),
		NewParabolicSAR(), NewADX(),
		NewOBV(), NewVWAP(), NewCMF(), NewMFI(), NewAccumDistLine(), NewPriceVolumeTrend(),
		NewForceIndex(), NewEaseOfMovement(), NewVolumeOscillator(),
		NewIchimoku(), NewGMMA(), NewFibonacciRetracement(), NewHeikinAshiSlope(),
	}
}
