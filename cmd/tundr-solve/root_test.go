package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/copyleftdev/tundr-solver/internal/metrics"
)

func runCmd(t *testing.T, args ...string) (map[string]interface{}, error) {
	t.Helper()
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("METRICS_ADDR", "")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()
	if out.Len() == 0 {
		return nil, err
	}
	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	return result, err
}

func TestSolveSphere(t *testing.T) {
	result, err := runCmd(t,
		"--objective", "sphere",
		"--x0", "2,-1",
		"--lower", "-5,-5",
		"--upper", "5,5",
		"--max-iterations", "300",
		"--tolerance", "1e-10",
	)
	require.NoError(t, err)

	assert.Equal(t, "optimal", result["status"])
	assert.Equal(t, "sphere", result["objective"])
	assert.Less(t, result["value"].(float64), 1e-4)
	assert.NotEmpty(t, result["run_id"])
}

func TestSolveIterationBudget(t *testing.T) {
	result, err := runCmd(t,
		"--objective", "rosenbrock",
		"--x0", "-1.2,1",
		"--max-iterations", "1",
		"--burst", "1",
		"--tolerance=-1",
	)
	require.NoError(t, err)

	assert.Equal(t, "iteration_limit", result["status"])
	assert.Equal(t, float64(1), result["iterations"])
}

func TestSolveRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown objective", []string{"--objective", "nope"}},
		{"beale needs two dimensions", []string{"--objective", "beale", "--x0", "1,1,1"}},
		{"bounds length mismatch", []string{"--x0", "1,1", "--lower", "0,0,0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCmd(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestMetricsRouter(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec, err := metrics.NewRecorder(reg)
	require.NoError(t, err)
	rec.ObserveRun("optimal", 0.5)

	srv := httptest.NewServer(newMetricsRouter(reg))
	defer srv.Close()

	tests := []struct {
		name     string
		path     string
		wantCode int
		wantBody string
	}{
		{"metrics", "/metrics", http.StatusOK, "tundr_solver_runs_total"},
		{"unknown route", "/nope", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Get(srv.URL + tt.path)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.wantCode, resp.StatusCode)
			if tt.wantBody != "" {
				var body bytes.Buffer
				_, err := body.ReadFrom(resp.Body)
				require.NoError(t, err)
				assert.Contains(t, body.String(), tt.wantBody)
			}
		})
	}
}
