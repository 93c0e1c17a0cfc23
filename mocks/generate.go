package mocks

//go:generate mockgen -destination=./mock_indicator.go -package=mocks github.com/rxtech-lab/argo-indicators/internal/indicator Indicator,MultiOutput
//go:generate mockgen -destination=./mock_candle_source.go -package=mocks github.com/rxtech-lab/argo-indicators/internal/datasource CandleSource
