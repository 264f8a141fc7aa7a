package server

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devopsboard/dashboard/internal/dashboard"
)

type extraRowsSource struct {
	*dashboard.StaticSource
	deployments []dashboard.Deployment
}

func (s extraRowsSource) Deployments() []dashboard.Deployment {
	return append(s.StaticSource.Deployments(), s.deployments...)
}

func newTestServer(t *testing.T, src dashboard.Source) *Server {
	t.Helper()
	board, err := dashboard.NewBoard(src)
	require.NoError(t, err)
	return NewServer(board, "../..")
}

func get(t *testing.T, srv *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest("GET", target, nil)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	srv.Router().ServeHTTP(rr, req)
	return rr
}

func TestHandleDashboard(t *testing.T) {
	srv := newTestServer(t, dashboard.NewStaticSource())

	rr := get(t, srv, "/")

	assert.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "DevOps Dashboard")
	assert.Contains(t, body, `<section id="panel-deployments" class="panel">`)
	assert.Contains(t, body, `<section id="panel-pipelines" class="panel" hidden>`)
	assert.Contains(t, body, `<section id="panel-monitoring" class="panel" hidden>`)
}

func TestFailedDeploymentBadge(t *testing.T) {
	srv := newTestServer(t, dashboard.NewStaticSource())

	body := get(t, srv, "/").Body.String()

	assert.Contains(t, body, `<span class="badge badge-failure">failed</span>`)
	assert.Contains(t, body, `data-icon="failure-cross"`)
	assert.Contains(t, body, "Database Migration")
}

func TestPendingPipelineRow(t *testing.T) {
	srv := newTestServer(t, dashboard.NewStaticSource())

	rr := get(t, srv, "/?tab=pipelines")

	assert.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, `<span class="duration">-</span>`)
	assert.Contains(t, body, `<span class="badge badge-pending">pending</span>`)
	assert.Contains(t, body, `<section id="panel-pipelines" class="panel">`)
	assert.Contains(t, body, `<section id="panel-deployments" class="panel" hidden>`)
}

func TestMonitoringTab(t *testing.T) {
	srv := newTestServer(t, dashboard.NewStaticSource())

	rr := get(t, srv, "/?tab=monitoring")

	assert.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, `<section id="panel-deployments" class="panel" hidden>`)
	assert.Contains(t, body, `<section id="panel-pipelines" class="panel" hidden>`)
	assert.Contains(t, body, `<section id="panel-monitoring" class="panel">`)
	assert.Contains(t, body, "CPU Usage")
	assert.Contains(t, body, "High Memory Usage")
}

func TestUnknownTabIsRejected(t *testing.T) {
	srv := newTestServer(t, dashboard.NewStaticSource())

	rr := get(t, srv, "/?tab=settings")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "unknown tab")
}

func TestUnknownStatusStillRendered(t *testing.T) {
	src := extraRowsSource{
		StaticSource: dashboard.NewStaticSource(),
		deployments: []dashboard.Deployment{
			{ID: 4, Name: "Canary Release", Status: "queued", Time: "just now", Branch: "canary"},
		},
	}
	srv := newTestServer(t, src)

	rr := get(t, srv, "/")

	assert.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "Canary Release")
	assert.Contains(t, body, `<span class="badge badge-unknown">queued</span>`)
	assert.Contains(t, body, `data-icon="unknown-warning"`)
}

func TestChartRoutes(t *testing.T) {
	srv := newTestServer(t, dashboard.NewStaticSource())

	rr := get(t, srv, "/charts/system-health")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "System Health")

	rr = get(t, srv, "/charts/status")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Status Breakdown")
}

func TestHealthAndStatic(t *testing.T) {
	srv := newTestServer(t, dashboard.NewStaticSource())

	rr := get(t, srv, "/healthz")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ok", rr.Body.String())

	rr = get(t, srv, "/static/dashboard.css")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), ".badge-failure")
}

func TestWriteSite(t *testing.T) {
	srv := newTestServer(t, dashboard.NewStaticSource())
	dir := t.TempDir()

	written, err := srv.WriteSite(dir)
	require.NoError(t, err)
	assert.Len(t, written, 4)

	for _, name := range []string{"index.html", "deployments.html", "pipelines.html", "monitoring.html", "static/dashboard.css"} {
		assert.FileExists(t, filepath.Join(dir, name))
	}

	index, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(index), `href="pipelines.html"`)
	assert.Contains(t, string(index), `<section id="panel-deployments" class="panel">`)

	monitoring, err := os.ReadFile(filepath.Join(dir, "monitoring.html"))
	require.NoError(t, err)
	assert.Contains(t, string(monitoring), `<section id="panel-monitoring" class="panel">`)
	assert.Contains(t, string(monitoring), `<section id="panel-deployments" class="panel" hidden>`)
}
