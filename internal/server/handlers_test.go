package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServer() *Server {
	return New(Config{Port: 0, Log: zerolog.Nop(), DevMode: true})
}

// TestHandleSimulate_SimpleRun tests a full simulate round trip
func TestHandleSimulate_SimpleRun(t *testing.T) {
	stop := 99.0
	body := map[string]any{
		"trades": []map[string]any{
			{
				"asset":            "MNQ",
				"direction":        "long",
				"entry_date":       time.Date(2024, 3, 4, 14, 30, 0, 0, time.UTC).Format(time.RFC3339),
				"entry_price":      100.0,
				"exit_price":       101.0,
				"stop_loss":        stop,
				"position_size":    1,
				"pnl_cents":        1000,
				"tick_size":        0.25,
				"tick_value_cents": 250,
			},
		},
		"params": map[string]any{
			"simple": map[string]any{
				"balance_cents":          100000,
				"risk_per_trade_percent": 1.0,
			},
		},
	}
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/simulate", bytes.NewReader(raw))
	rec := httptest.NewRecorder()
	testServer().router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp SimulateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.RunID)
	assert.Equal(t, "simple", resp.Engine)
	require.NotNil(t, resp.Result)
	assert.Equal(t, 1, resp.Result.Summary.TotalTrades)
	assert.Equal(t, 1, resp.Result.Summary.ExecutedTrades)
	assert.Equal(t, int64(1000), resp.Result.Summary.SimulatedTotalPnl)
}

// TestHandleSimulate_InvalidParams tests param validation rejection
func TestHandleSimulate_InvalidParams(t *testing.T) {
	raw := []byte(`{"trades": [], "params": {}}`)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/simulate", bytes.NewReader(raw))
	rec := httptest.NewRecorder()
	testServer().router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "exactly one")
}

// TestHandleSimulate_MalformedBody tests JSON decode rejection
func TestHandleSimulate_MalformedBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/simulate", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	testServer().router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// TestHealthEndpoint_Healthy tests the health check route
func TestHealthEndpoint_Healthy(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	testServer().router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"healthy"`)
}

// TestMetricsEndpoint_Exposed tests the Prometheus metrics route
func TestMetricsEndpoint_Exposed(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	testServer().router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
