package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gridlegend/gridlegend/internal/legend"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testApp(t *testing.T) (*legend.Registry, func(req *http.Request) *http.Response) {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	reg := legend.Default()
	app := NewApp(reg, logger)
	return reg, func(req *http.Request) *http.Response {
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		t.Cleanup(func() { resp.Body.Close() })
		return resp
	}
}

func decode(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func TestColorRoute(t *testing.T) {
	_, do := testApp(t)

	resp := do(httptest.NewRequest(http.MethodGet, "/api/colors/solar", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]string
	decode(t, resp, &body)
	assert.Equal(t, "gold", body["color"])

	resp = do(httptest.NewRequest(http.MethodGet, "/api/colors/tidal", nil))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	decode(t, resp, &body)
	assert.Equal(t, "unknown_category", body["kind"])
}

func TestLabelRoutes(t *testing.T) {
	_, do := testApp(t)

	tests := []struct {
		path       string
		wantStatus int
		wantLabel  string
		wantKind   string
	}{
		{path: "/api/labels/en/demand", wantStatus: http.StatusOK, wantLabel: "Demand"},
		{path: "/api/labels/jp/kyushu", wantStatus: http.StatusOK, wantLabel: "九州"},
		{path: "/api/labels/fr/demand", wantStatus: http.StatusNotFound, wantKind: "unknown_locale"},
		{path: "/api/labels/en/tidal", wantStatus: http.StatusNotFound, wantKind: "unknown_key"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp := do(httptest.NewRequest(http.MethodGet, tt.path, nil))
			require.Equal(t, tt.wantStatus, resp.StatusCode)
			var body map[string]string
			decode(t, resp, &body)
			if tt.wantLabel != "" {
				assert.Equal(t, tt.wantLabel, body["label"])
			}
			if tt.wantKind != "" {
				assert.Equal(t, tt.wantKind, body["kind"])
			}
		})
	}

	resp := do(httptest.NewRequest(http.MethodGet, "/api/labels/jp", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var table map[string]string
	decode(t, resp, &table)
	assert.Equal(t, "需要", table["demand"])
}

func TestRegionsAndCategories(t *testing.T) {
	reg, do := testApp(t)

	resp := do(httptest.NewRequest(http.MethodGet, "/api/regions", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var regions []string
	decode(t, resp, &regions)
	assert.Equal(t, []string{"japan", "tokyo", "hokkaido", "tohuku", "chubu", "hokuriku", "kansai", "chugoku", "shikoku", "kyushu"}, regions)

	resp = do(httptest.NewRequest(http.MethodGet, "/api/categories", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var cats map[string][]string
	decode(t, resp, &cats)
	assert.Len(t, cats["renewables"], len(reg.RenewableCategories()))
	assert.Equal(t, []string{"demand", "spot_price"}, cats["misc"])
}

func TestLegendETag(t *testing.T) {
	reg, do := testApp(t)

	resp := do(httptest.NewRequest(http.MethodGet, "/api/legend", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	etag := resp.Header.Get("ETag")
	assert.Equal(t, `"`+reg.Fingerprint()+`"`, etag)
	var snap legend.Snapshot
	decode(t, resp, &snap)
	assert.Equal(t, reg.Fingerprint(), snap.Fingerprint)

	req := httptest.NewRequest(http.MethodGet, "/api/legend", nil)
	req.Header.Set("If-None-Match", etag)
	resp = do(req)
	assert.Equal(t, http.StatusNotModified, resp.StatusCode)
}

func TestHealth(t *testing.T) {
	_, do := testApp(t)
	resp := do(httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestServe_StopsOnCancel(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	app := NewApp(legend.Default(), logger)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Serve(ctx, app, "127.0.0.1:0") }()
	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}
