package server

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/rxtech-lab/argo-indicators/internal/indicator"
	"github.com/rxtech-lab/argo-indicators/internal/types"
	"github.com/rxtech-lab/argo-indicators/internal/version"
	"github.com/rxtech-lab/argo-indicators/pkg/errors"
)

// IndicatorInfo describes one catalog entry.
type IndicatorInfo struct {
	Type   types.IndicatorType  `json:"type"`
	Title  string               `json:"title"`
	Group  types.IndicatorGroup `json:"group"`
	Params []indicator.Param    `json:"params"`
}

// ComputeRequest is the body of POST /v1/compute.
type ComputeRequest struct {
	Candles []types.Candle `json:"candles"`
	// Options overrides entry options by display name
	Options map[string]indicator.Options `json:"options,omitempty"`
	// Indicators restricts the run to these display names
	Indicators []string `json:"indicators,omitempty"`
}

// ComputeResponse holds the computed series and the entries that failed.
type ComputeResponse struct {
	Results indicator.Result     `json:"results"`
	Errors  map[string]ErrorBody `json:"errors"`
}

// ErrorBody is the JSON form of a structured error.
type ErrorBody struct {
	Code     errors.ErrorCode `json:"code"`
	Category string           `json:"category"`
	Message  string           `json:"message"`
}

func errorBody(err error) ErrorBody {
	code := errors.GetCode(err)

	return ErrorBody{Code: code, Category: code.Category(), Message: err.Error()}
}

func (s *Server) handleListIndicators(w http.ResponseWriter, _ *http.Request) {
	names := s.catalog.List()
	infos := make([]IndicatorInfo, 0, len(names))

	for _, name := range names {
		ind, err := s.catalog.Get(name)
		if err != nil {
			// removed concurrently
			continue
		}

		params := ind.Params()
		if params == nil {
			params = []indicator.Param{}
		}

		infos = append(infos, IndicatorInfo{
			Type:   ind.Name(),
			Title:  ind.Title(),
			Group:  ind.Group(),
			Params: params,
		})
	}

	s.writeJSON(w, http.StatusOK, infos)
}

func (s *Server) handleSchema(w http.ResponseWriter, r *http.Request) {
	ind, err := s.catalog.Get(types.IndicatorType(mux.Vars(r)["type"]))
	if err != nil {
		s.writeError(w, r, err)

		return
	}

	s.writeJSON(w, http.StatusOK, indicator.ParamsSchema(ind))
}

func (s *Server) handleVersion(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"version": version.GetVersion()})
}

func (s *Server) handleCompute(w http.ResponseWriter, r *http.Request) {
	var req ComputeRequest

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&req); err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInputParseFailed, "malformed compute request", err))

		return
	}

	if len(req.Candles) > s.config.MaxCandles {
		s.writeError(w, r, errors.Newf(errors.ErrCodeInvalidParameter,
			"request has %d candles, the limit is %d", len(req.Candles), s.config.MaxCandles))

		return
	}

	runner := s.runner
	if len(req.Indicators) > 0 {
		selected, err := runner.Select(req.Indicators)
		if err != nil {
			s.writeError(w, r, err)

			return
		}

		runner = selected
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.config.RequestTimeout)
	defer cancel()

	result, err := runner.RunWithOverrides(ctx, req.Candles, req.Options)

	resp := ComputeResponse{Errors: map[string]ErrorBody{}}

	var runErr *indicator.RunError

	switch {
	case err == nil:
	case stderrors.As(err, &runErr):
		for name, failure := range runErr.Failures {
			resp.Errors[name] = errorBody(failure)
		}

		s.logger.Warn("compute finished with failures",
			zap.String("request_id", RequestID(r.Context())),
			zap.Int("failed", len(runErr.Failures)),
		)
	default:
		s.writeError(w, r, err)

		return
	}

	resp.Results = result.Round(s.precision)
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	body := errorBody(err)
	status := body.Code.HTTPStatus()

	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed",
			zap.String("request_id", RequestID(r.Context())),
			zap.Error(err),
		)
	}

	s.writeJSON(w, status, map[string]ErrorBody{"error": body})
}
