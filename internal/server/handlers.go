package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/ducln05/futures-risk-replay/internal/monitoring"
	"github.com/ducln05/futures-risk-replay/internal/simulation"
	"github.com/ducln05/futures-risk-replay/pkg/types"
)

// SimulateRequest is the POST /api/v1/simulate payload: the trade history to
// replay plus the risk policy to replay it under.
type SimulateRequest struct {
	Trades []types.HistoricalTrade `json:"trades"`
	Params simulation.Params       `json:"params"`
}

// SimulateResponse wraps the simulation result with run metadata.
type SimulateResponse struct {
	RunID      string                  `json:"run_id"`
	Engine     string                  `json:"engine"`
	DurationMs int64                   `json:"duration_ms"`
	Result     *types.SimulationResult `json:"result"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	var req SimulateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		monitoring.RecordError("bad_request")
		s.respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	if err := req.Params.Validate(); err != nil {
		monitoring.RecordError("invalid_params")
		s.respondJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	runID := uuid.New().String()
	engine := string(req.Params.Kind())

	start := time.Now()
	result := simulation.Run(req.Trades, req.Params)
	elapsed := time.Since(start)

	monitoring.RecordSimulation(engine, elapsed, result)
	s.health.MarkRun(engine)
	s.log.Info().
		Str("run_id", runID).
		Str("engine", engine).
		Int("trades", result.Summary.TotalTrades).
		Int("executed", result.Summary.ExecutedTrades).
		Dur("duration_ms", elapsed).
		Msg("Simulation complete")

	s.respondJSON(w, http.StatusOK, SimulateResponse{
		RunID:      runID,
		Engine:     engine,
		DurationMs: elapsed.Milliseconds(),
		Result:     result,
	})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.log.Error().Err(err).Msg("Failed to encode response")
	}
}
