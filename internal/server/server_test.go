package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/rxtech-lab/argo-indicators/internal/config"
	"github.com/rxtech-lab/argo-indicators/internal/indicator"
	"github.com/rxtech-lab/argo-indicators/internal/logger"
	"github.com/rxtech-lab/argo-indicators/internal/metrics"
	"github.com/rxtech-lab/argo-indicators/internal/server"
	"github.com/rxtech-lab/argo-indicators/internal/types"
	"github.com/rxtech-lab/argo-indicators/internal/version"
	"github.com/rxtech-lab/argo-indicators/mocks"
	"github.com/rxtech-lab/argo-indicators/pkg/errors"
)

type ServerTestSuite struct {
	suite.Suite
	cfg      *config.Config
	recorder *metrics.Recorder
	server   *server.Server
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func (suite *ServerTestSuite) SetupTest() {
	suite.cfg = config.Default()
	suite.cfg.Server.MaxCandles = 500
	suite.recorder = metrics.New()
	suite.server = suite.newServer(nil)
}

// newServer builds a server over entries, or the default line-up when nil.
func (suite *ServerTestSuite) newServer(entries []indicator.Entry) *server.Server {
	if entries == nil {
		entries = indicator.DefaultEntries()
	}

	runner, err := indicator.NewRunner(entries, indicator.WithMetrics(suite.recorder))
	suite.Require().NoError(err)

	return server.New(suite.cfg, indicator.DefaultCatalog(), runner, logger.NewNopLogger(), suite.recorder)
}

func (suite *ServerTestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		data, err := json.Marshal(b)
		suite.Require().NoError(err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	suite.server.Handler().ServeHTTP(rec, req)

	return rec
}

type computeResponse struct {
	Results map[string][]*float64       `json:"results"`
	Errors  map[string]server.ErrorBody `json:"errors"`
}

type errorResponse struct {
	Error server.ErrorBody `json:"error"`
}

func (suite *ServerTestSuite) decode(rec *httptest.ResponseRecorder, v any) {
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}

func (suite *ServerTestSuite) TestListIndicators() {
	rec := suite.do(http.MethodGet, "/v1/indicators", nil)
	suite.Require().Equal(http.StatusOK, rec.Code)
	suite.Equal("application/json", rec.Header().Get("Content-Type"))

	var infos []server.IndicatorInfo
	suite.decode(rec, &infos)
	suite.Len(infos, 41)

	var rsi *server.IndicatorInfo
	for i := range infos {
		if infos[i].Type == "rsi" {
			rsi = &infos[i]
		}
	}

	suite.Require().NotNil(rsi)
	suite.NotEmpty(rsi.Title)
	suite.Require().Len(rsi.Params, 1)
	suite.Equal("period", rsi.Params[0].Name)
}

func (suite *ServerTestSuite) TestSchema() {
	rec := suite.do(http.MethodGet, "/v1/indicators/rsi/schema", nil)
	suite.Require().Equal(http.StatusOK, rec.Code)

	var schema map[string]any
	suite.decode(rec, &schema)
	suite.Equal("object", schema["type"])
	suite.Contains(schema["properties"], "period")
}

func (suite *ServerTestSuite) TestSchemaUnknownType() {
	rec := suite.do(http.MethodGet, "/v1/indicators/nope/schema", nil)
	suite.Require().Equal(http.StatusNotFound, rec.Code)

	var body errorResponse
	suite.decode(rec, &body)
	suite.Equal(errors.ErrCodeIndicatorNotFound, body.Error.Code)
	suite.Equal("indicator", body.Error.Category)
}

func (suite *ServerTestSuite) TestVersion() {
	rec := suite.do(http.MethodGet, "/v1/version", nil)
	suite.Require().Equal(http.StatusOK, rec.Code)

	var body map[string]string
	suite.decode(rec, &body)
	suite.Equal(version.GetVersion(), body["version"])
}

func (suite *ServerTestSuite) TestComputeDefaultLineUp() {
	rec := suite.do(http.MethodPost, "/v1/compute", server.ComputeRequest{Candles: mocks.GenerateCandles(120)})
	suite.Require().Equal(http.StatusOK, rec.Code)

	var body computeResponse
	suite.decode(rec, &body)
	suite.Len(body.Results, 41)
	suite.Empty(body.Errors)

	rsi := body.Results["RSI(14)"]
	suite.Require().Len(rsi, 120)
	suite.Nil(rsi[0])
	suite.NotNil(rsi[119])
}

func (suite *ServerTestSuite) TestComputeSelectionWithOverrides() {
	req := server.ComputeRequest{
		Candles:    mocks.LinearCandles(30, 100, 1),
		Indicators: []string{"SMA(5)"},
		Options:    map[string]indicator.Options{"SMA(5)": {"period": 3}},
	}

	rec := suite.do(http.MethodPost, "/v1/compute", req)
	suite.Require().Equal(http.StatusOK, rec.Code)

	var body computeResponse
	suite.decode(rec, &body)
	suite.Require().Len(body.Results, 1)

	sma := body.Results["SMA(5)"]
	suite.Nil(sma[1])
	suite.Require().NotNil(sma[2])
	suite.InDelta(101.0, *sma[2], 1e-9)
}

func (suite *ServerTestSuite) TestComputeRoundsToPrecision() {
	precision := 2
	suite.cfg.Output.Precision = &precision
	suite.server = suite.newServer(nil)

	rec := suite.do(http.MethodPost, "/v1/compute", server.ComputeRequest{
		Candles:    mocks.GenerateCandles(60),
		Indicators: []string{"RSI(14)"},
	})
	suite.Require().Equal(http.StatusOK, rec.Code)

	var body computeResponse
	suite.decode(rec, &body)

	for _, v := range body.Results["RSI(14)"] {
		if v == nil {
			continue
		}

		scaled := *v * 100
		suite.InDelta(math.Round(scaled), scaled, 1e-6)
	}
}

func (suite *ServerTestSuite) TestComputeEmptyCandles() {
	rec := suite.do(http.MethodPost, "/v1/compute", `{"candles": []}`)
	suite.Require().Equal(http.StatusOK, rec.Code)

	var body computeResponse
	suite.decode(rec, &body)
	suite.Len(body.Results, 41)

	for key, series := range body.Results {
		suite.Empty(series, key)
	}
}

func (suite *ServerTestSuite) TestComputeRejectsBadRequests() {
	tests := []struct {
		name string
		body any
		code errors.ErrorCode
	}{
		{name: "malformed json", body: `{"candles": [`, code: errors.ErrCodeInputParseFailed},
		{name: "unknown field", body: `{"candles": [], "extra": 1}`, code: errors.ErrCodeInputParseFailed},
		{name: "too many candles", body: server.ComputeRequest{Candles: mocks.GenerateCandles(501)}, code: errors.ErrCodeInvalidParameter},
		{
			name: "unknown override",
			body: server.ComputeRequest{Candles: mocks.GenerateCandles(10), Options: map[string]indicator.Options{"Nope(1)": {}}},
			code: errors.ErrCodeInvalidParameter,
		},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			rec := suite.do(http.MethodPost, "/v1/compute", tc.body)
			suite.Equal(http.StatusBadRequest, rec.Code)

			var body errorResponse
			suite.decode(rec, &body)
			suite.Equal(tc.code, body.Error.Code)
		})
	}
}

func (suite *ServerTestSuite) TestComputeUnknownSelection() {
	rec := suite.do(http.MethodPost, "/v1/compute", server.ComputeRequest{
		Candles:    mocks.GenerateCandles(10),
		Indicators: []string{"Nope(1)"},
	})
	suite.Equal(http.StatusNotFound, rec.Code)
}

func (suite *ServerTestSuite) TestComputeReportsFailedEntries() {
	ctrl := gomock.NewController(suite.T())

	broken := mocks.NewMockIndicator(ctrl)
	broken.EXPECT().Name().Return(types.IndicatorType("broken")).AnyTimes()
	broken.EXPECT().Params().Return(nil).AnyTimes()
	broken.EXPECT().Compute(gomock.Any(), gomock.Any()).DoAndReturn(
		func([]types.Candle, indicator.Options) types.Series { panic("boom") }).AnyTimes()

	sma, err := indicator.DefaultCatalog().Get("sma")
	suite.Require().NoError(err)

	suite.server = suite.newServer([]indicator.Entry{
		{DisplayName: "Broken", Indicator: broken},
		{DisplayName: "SMA(3)", Indicator: sma, Options: indicator.Options{"period": 3}},
	})

	rec := suite.do(http.MethodPost, "/v1/compute", server.ComputeRequest{Candles: mocks.GenerateCandles(10)})
	suite.Require().Equal(http.StatusOK, rec.Code)

	var body computeResponse
	suite.decode(rec, &body)
	suite.Contains(body.Results, "SMA(3)")
	suite.NotContains(body.Results, "Broken")
	suite.Require().Contains(body.Errors, "Broken")
	suite.Equal(errors.ErrCodeIndicatorPanicked, body.Errors["Broken"].Code)
	suite.Contains(body.Errors["Broken"].Message, "boom")
}

func (suite *ServerTestSuite) TestRequestID() {
	rec := suite.do(http.MethodGet, "/v1/version", nil)
	suite.NotEmpty(rec.Header().Get(server.RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/v1/version", nil)
	req.Header.Set(server.RequestIDHeader, "abc-123")

	rec = httptest.NewRecorder()
	suite.server.Handler().ServeHTTP(rec, req)
	suite.Equal("abc-123", rec.Header().Get(server.RequestIDHeader))
}

func (suite *ServerTestSuite) TestMetricsEndpoint() {
	suite.Require().Equal(http.StatusOK, suite.do(http.MethodGet, "/v1/version", nil).Code)

	rec := suite.do(http.MethodGet, "/metrics", nil)
	suite.Require().Equal(http.StatusOK, rec.Code)
	suite.Contains(rec.Body.String(), `argo_indicators_http_requests_total{method="GET",route="/v1/version",status="200"} 1`)
}

func (suite *ServerTestSuite) TestStartAndStop() {
	suite.Require().NoError(suite.server.Start("127.0.0.1:0"))
	suite.NotEmpty(suite.server.Address())

	resp, err := http.Get("http://" + suite.server.Address() + "/v1/version")
	suite.Require().NoError(err)
	resp.Body.Close()
	suite.Equal(http.StatusOK, resp.StatusCode)

	suite.NoError(suite.server.Stop(context.Background()))
}

func (suite *ServerTestSuite) TestStopWithoutStart() {
	suite.NoError(suite.server.Stop(context.Background()))
	suite.Empty(suite.server.Address())
}
