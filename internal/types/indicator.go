package types

// IndicatorType is the stable catalog key of an indicator.
type IndicatorType string

const (
	IndicatorTypeSMA                      IndicatorType = "sma"
	IndicatorTypeEMA                      IndicatorType = "ema"
	IndicatorTypeWMA                      IndicatorType = "wma"
	IndicatorTypeHMA                      IndicatorType = "hma"
	IndicatorTypeDEMA                     IndicatorType = "dema"
	IndicatorTypeTEMA                     IndicatorType = "tema"
	IndicatorTypeKAMA                     IndicatorType = "kama"
	IndicatorTypeFRAMA                    IndicatorType = "frama"
	IndicatorTypeRSI                      IndicatorType = "rsi"
	IndicatorTypeStochastic               IndicatorType = "stochastic"
	IndicatorTypeStochasticRSI            IndicatorType = "stochastic_rsi"
	IndicatorTypeWilliamsR                IndicatorType = "williams_r"
	IndicatorTypeMACD                     IndicatorType = "macd"
	IndicatorTypeCCI                      IndicatorType = "cci"
	IndicatorTypeADX                      IndicatorType = "adx"
	IndicatorTypeATR                      IndicatorType = "atr"
	IndicatorTypeParabolicSAR             IndicatorType = "parabolic_sar"
	IndicatorTypeBollingerBands           IndicatorType = "bollinger_bands"
	IndicatorTypePercentB                 IndicatorType = "percent_b"
	IndicatorTypeZScore                   IndicatorType = "z_score"
	IndicatorTypeOBV                      IndicatorType = "obv"
	IndicatorTypeVWAP                     IndicatorType = "vwap"
	IndicatorTypeCMF                      IndicatorType = "cmf"
	IndicatorTypeMFI                      IndicatorType = "mfi"
	IndicatorTypeAccumDistLine            IndicatorType = "accum_dist_line"
	IndicatorTypePriceVolumeTrend         IndicatorType = "price_volume_trend"
	IndicatorTypeForceIndex               IndicatorType = "force_index"
	IndicatorTypeEaseOfMovement           IndicatorType = "ease_of_movement"
	IndicatorTypeVolumeOscillator         IndicatorType = "volume_oscillator"
	IndicatorTypeIchimoku                 IndicatorType = "ichimoku"
	IndicatorTypeMomentum                 IndicatorType = "momentum"
	IndicatorTypeRateOfChange             IndicatorType = "roc"
	IndicatorTypeTRIX                     IndicatorType = "trix"
	IndicatorTypeSchaffTrendCycle         IndicatorType = "schaff_trend_cycle"
	IndicatorTypeUltimateOscillator       IndicatorType = "ultimate_oscillator"
	IndicatorTypeGMMA                     IndicatorType = "gmma"
	IndicatorTypeKalmanFilterSmoother     IndicatorType = "kalman_filter_smoother"
	IndicatorTypeChandelierExit           IndicatorType = "chandelier_exit"
	IndicatorTypeFibonacciRetracement     IndicatorType = "fibonacci_retracement"
	IndicatorTypeDetrendedPriceOscillator IndicatorType = "detrended_price_oscillator"
	IndicatorTypeHeikinAshiSlope          IndicatorType = "heikin_ashi_slope"
)

// IndicatorGroup is a free-text classification used for UI grouping only.
type IndicatorGroup string

const (
	IndicatorGroupTrend      IndicatorGroup = "Trend"
	IndicatorGroupVolume     IndicatorGroup = "Volume"
	IndicatorGroupOscillator IndicatorGroup = "Oscillator"
	IndicatorGroupVolatility IndicatorGroup = "Volatility"
	IndicatorGroupMomentum   IndicatorGroup = "Momentum"
	IndicatorGroupStatistics IndicatorGroup = "Statistics"
	IndicatorGroupFilter     IndicatorGroup = "Filter"
)

// ParamType tags the value type of a declared indicator parameter.
type ParamType string

const (
	ParamTypeInt     ParamType = "int"
	ParamTypeFloat   ParamType = "float"
	ParamTypeBool    ParamType = "bool"
	ParamTypeIntList ParamType = "int_list"
)
