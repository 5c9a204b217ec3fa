package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	charmlog "github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkoppen/ceilgrid/internal/config"
)

func testServer() *Server {
	return New(config.Default(), charmlog.New(io.Discard))
}

func doJSON(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	rec := doJSON(t, testServer(), http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLayoutEndpoint(t *testing.T) {
	rec := doJSON(t, testServer(), http.MethodPost, "/api/layout", map[string]any{
		"length_mm":        6000,
		"width_mm":         4500,
		"perimeter_gap_mm": 200,
		"panel_gap_mm":     200,
		"alternates":       3,
	})

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp layoutResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.RequestID)
	assert.Equal(t, 16, resp.Layout.TotalPanels)
	assert.Greater(t, resp.Score, 0.0)
	assert.Len(t, resp.Alternates, 3)
	assert.Equal(t, resp.Layout, resp.Alternates[0].Layout)
}

func TestLayoutEndpointZeroGapDefaultsFromConfig(t *testing.T) {
	// An explicit zero gap must override the configured default, not be
	// treated as absent.
	rec := doJSON(t, testServer(), http.MethodPost, "/api/layout", map[string]any{
		"length_mm":        2000,
		"width_mm":         2000,
		"perimeter_gap_mm": 0,
		"panel_gap_mm":     0,
	})

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp layoutResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	// With zero gaps a 2000mm ceiling fits a single panel.
	assert.Equal(t, 2000.0, resp.Layout.PanelLengthMM)
}

func TestLayoutEndpointInvalidInput(t *testing.T) {
	rec := doJSON(t, testServer(), http.MethodPost, "/api/layout", map[string]any{
		"length_mm": -5000,
		"width_mm":  4000,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, testServer(), http.MethodPost, "/api/layout", map[string]any{
		"length_mm":        1000,
		"width_mm":         1000,
		"perimeter_gap_mm": 600,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLayoutEndpointNoSolution(t *testing.T) {
	// Panels would all exceed the 2400mm cap with a single-panel-per-axis
	// minimum impossible: a huge span with tiny counts is unreachable, so
	// the engine reports no valid layout.
	rec := doJSON(t, testServer(), http.MethodPost, "/api/layout", map[string]any{
		"length_mm":        200000,
		"width_mm":         200000,
		"perimeter_gap_mm": 0,
		"panel_gap_mm":     0,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestLayoutEndpointMalformedBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/layout", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	testServer().Router().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEstimateEndpoint(t *testing.T) {
	rec := doJSON(t, testServer(), http.MethodPost, "/api/estimate", map[string]any{
		"length_mm":        6000,
		"width_mm":         4500,
		"perimeter_gap_mm": 200,
		"panel_gap_mm":     200,
		"spare_percent":    10,
		"price_per_panel":  40,
	})

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp estimateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 16, resp.Estimate.PanelsRequired)
	assert.Equal(t, 18, resp.Estimate.PanelsWithSpares)
	assert.InDelta(t, 720.0, resp.Estimate.EstimatedCost, 1e-9)
}
