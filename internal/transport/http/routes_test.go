package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"sudoku-solver/internal/core"
	"sudoku-solver/internal/sudokucore"
	"sudoku-solver/internal/workerpool"
)

const easyPuzzle = "530070000600195000098000060800060003400803001700020006060000280000419005000080079"

func setupRouter(t *testing.T) (*gin.Engine, *workerpool.Pool) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	var stats sudokucore.Stats
	pool := workerpool.New(2, &stats)
	t.Cleanup(pool.Close)
	r := gin.New()
	RegisterRoutes(r, pool)
	return r, pool
}

func TestHealthz(t *testing.T) {
	r, _ := setupRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestSolveEndpoint(t *testing.T) {
	r, _ := setupRouter(t)

	body, _ := json.Marshal(core.SolveRequest{Grid: easyPuzzle})
	req := httptest.NewRequest(http.MethodPost, "/api/solve", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp core.SolveResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if !resp.Solved {
		t.Fatalf("expected solved=true, got %+v", resp)
	}
	if len(resp.Output) != 81 {
		t.Fatalf("expected an 81-byte output grid, got %d bytes", len(resp.Output))
	}
}

func TestSolveEndpointRejectsBadGrid(t *testing.T) {
	r, _ := setupRouter(t)

	body, _ := json.Marshal(core.SolveRequest{Grid: "too short"})
	req := httptest.NewRequest(http.MethodPost, "/api/solve", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestSolveEndpointOmitsConflictsWhenVerified(t *testing.T) {
	r, _ := setupRouter(t)

	body, _ := json.Marshal(core.SolveRequest{Grid: easyPuzzle})
	req := httptest.NewRequest(http.MethodPost, "/api/solve", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if bytes.Contains(w.Body.Bytes(), []byte("conflicts")) {
		t.Errorf("expected conflicts to be omitted for a verified solve, got %s", w.Body.String())
	}
}

func TestCellRefOfMapsIndexToRowColumn(t *testing.T) {
	cases := []struct {
		cell             int
		wantRow, wantCol int
	}{
		{0, 0, 0},
		{8, 0, 8},
		{9, 1, 0},
		{80, 8, 8},
	}
	for _, tc := range cases {
		ref := cellRefOf(tc.cell)
		if ref.Row != tc.wantRow || ref.Col != tc.wantCol {
			t.Errorf("cellRefOf(%d) = {%d,%d}, want {%d,%d}", tc.cell, ref.Row, ref.Col, tc.wantRow, tc.wantCol)
		}
	}
}

func TestStatsEndpointReflectsSolves(t *testing.T) {
	r, _ := setupRouter(t)

	body, _ := json.Marshal(core.SolveRequest{Grid: easyPuzzle})
	req := httptest.NewRequest(http.MethodPost, "/api/solve", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("solve status = %d", w.Code)
	}

	statsReq := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	statsW := httptest.NewRecorder()
	r.ServeHTTP(statsW, statsReq)

	var stats core.StatsResponse
	if err := json.Unmarshal(statsW.Body.Bytes(), &stats); err != nil {
		t.Fatalf("unmarshal stats: %v", err)
	}
	if stats.Solved < 1 {
		t.Fatalf("expected Solved >= 1 after a solve, got %d", stats.Solved)
	}
}
