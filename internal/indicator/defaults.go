package indicator

// DefaultEntries returns the standard runner line-up. Each display name
// encodes the parameters baked into its option bag.
func DefaultEntries() []Entry {
	return []Entry{
		{DisplayName: "SMA(5)", Indicator: NewSMA(), Options: Options{"period": 5}},
		{DisplayName: "EMA(5)", Indicator: NewEMA(), Options: Options{"period": 5}},
		{DisplayName: "RSI(14)", Indicator: NewRSI(), Options: Options{"period": 14}},
		{DisplayName: "MACD(12,26,9)", Indicator: NewMACD(), Options: Options{"short_period": 12, "long_period": 26, "signal_period": 9}},
		{DisplayName: "BollingerBands(20)", Indicator: NewBollingerBands(), Options: Options{"period": 20, "std_dev": 2.0}},
		{DisplayName: "VWAP", Indicator: NewVWAP()},
		{DisplayName: "ATR(14)", Indicator: NewATR(), Options: Options{"period": 14}},
		{DisplayName: "Stochastic(14,3)", Indicator: NewStochastic(), Options: Options{"k_period": 14, "d_period": 3}},
		{DisplayName: "StochasticRSI(14,3,3)", Indicator: NewStochasticRSI(), Options: Options{"period": 14, "smooth_k": 3, "smooth_d": 3}},
		{DisplayName: "CCI(20)", Indicator: NewCCI(), Options: Options{"period": 20}},
		{DisplayName: "ADX(14)", Indicator: NewADX(), Options: Options{"period": 14}},
		{DisplayName: "ParabolicSAR", Indicator: NewParabolicSAR(), Options: Options{"step": 0.02, "max_af": 0.2}},
		{DisplayName: "OBV", Indicator: NewOBV()},
		{DisplayName: "CMF(20)", Indicator: NewCMF(), Options: Options{"period": 20}},
		{DisplayName: "WilliamsR(14)", Indicator: NewWilliamsR(), Options: Options{"period": 14}},
		{DisplayName: "Ichimoku", Indicator: NewIchimoku()},
		{DisplayName: "Momentum(10)", Indicator: NewMomentum(), Options: Options{"period": 10}},
		{DisplayName: "Tema(10)", Indicator: NewTEMA(), Options: Options{"period": 10}},
		{DisplayName: "Dema(10)", Indicator: NewDEMA(), Options: Options{"period": 10}},
		{DisplayName: "Kama(10)", Indicator: NewKAMA(), Options: Options{"period": 10}},
		{DisplayName: "WMA(10)", Indicator: NewWMA(), Options: Options{"period": 10}},
		{DisplayName: "HMA(10)", Indicator: NewHMA(), Options: Options{"period": 10}},
		{DisplayName: "Frama(10)", Indicator: NewFRAMA(), Options: Options{"period": 10}},
		{DisplayName: "ChandelierExit(22,3.0)", Indicator: NewChandelierExit(), Options: Options{"period": 22, "multiplier": 3.0}},
		{DisplayName: "TRIX(15)", Indicator: NewTRIX(), Options: Options{"period": 15}},
		{DisplayName: "MFI(14)", Indicator: NewMFI(), Options: Options{"period": 14}},
		{DisplayName: "ForceIndex(13)", Indicator: NewForceIndex(), Options: Options{"period": 13}},
		{DisplayName: "EaseOfMovement(14)", Indicator: NewEaseOfMovement(), Options: Options{"period": 14}},
		{DisplayName: "AccumDistLine", Indicator: NewAccumDistLine()},
		{DisplayName: "PriceVolumeTrend", Indicator: NewPriceVolumeTrend()},
		{DisplayName: "VolumeOscillator(14,28)", Indicator: NewVolumeOscillator(), Options: Options{"short_period": 14, "long_period": 28}},
		{DisplayName: "UltimateOscillator(7,14,28)", Indicator: NewUltimateOscillator(), Options: Options{"short_period": 7, "mid_period": 14, "long_period": 28}},
		{DisplayName: "DetrendedPriceOscillator(20)", Indicator: NewDetrendedPriceOscillator(), Options: Options{"period": 20}},
		{DisplayName: "RateOfChange(12)", Indicator: NewRateOfChange(), Options: Options{"period": 12}},
		{DisplayName: "ZScore(20)", Indicator: NewZScore(), Options: Options{"period": 20}},
		{DisplayName: "GMMA", Indicator: NewGMMA()},
		{DisplayName: "SchaffTrendCycle", Indicator: NewSchaffTrendCycle()},
		{DisplayName: "FibonacciRetracement(14)", Indicator: NewFibonacciRetracement(), Options: Options{"period": 14}},
		{DisplayName: "KalmanFilterSmoother", Indicator: NewKalmanFilterSmoother()},
		{DisplayName: "HeikinAshiSlope(10)", Indicator: NewHeikinAshiSlope(), Options: Options{"period": 10}},
		{DisplayName: "PercentB(20,2.0)", Indicator: NewPercentB(), Options: Options{"period": 20, "std_dev": 2.0}},
	}
}

// NewDefaultRunner builds a runner over DefaultEntries.
func NewDefaultRunner(opts ...RunnerOption) (*Runner, error) {
	return NewRunner(DefaultEntries(), opts...)
}
