package server

import (
	"errors"
	"html/template"
	"io"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/devopsboard/dashboard/internal/charts"
	"github.com/devopsboard/dashboard/internal/dashboard"
	"github.com/devopsboard/dashboard/internal/tabs"
	"github.com/devopsboard/dashboard/internal/view"
)

type Server struct {
	board     *dashboard.Board
	charts    *charts.Generator
	templates map[string]*template.Template
	rootDir   string
}

var funcs = template.FuncMap{
	"usageBar": charts.UsageBar,
}

func NewServer(board *dashboard.Board, rootDir string) *Server {
	templatesDir := filepath.Join(rootDir, "web/templates")
	templates := make(map[string]*template.Template)

	// Each page is parsed together with the layout, which defines "layout".
	pages := []string{
		"dashboard.html",
	}

	layoutPath := filepath.Join(templatesDir, "layout.html")
	for _, page := range pages {
		pagePath := filepath.Join(templatesDir, page)
		t := template.Must(template.New("layout.html").Funcs(funcs).ParseFiles(layoutPath, pagePath))
		templates[page] = t
	}

	return &Server{
		board:     board,
		charts:    charts.NewGenerator(),
		templates: templates,
		rootDir:   rootDir,
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	// Static files
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(filepath.Join(s.rootDir, "web/static")))))

	r.Get("/", s.handleDashboard)
	r.Get("/charts/system-health", s.handleSystemHealthChart)
	r.Get("/charts/status", s.handleStatusChart)
	r.Get("/healthz", s.handleHealth)

	return r
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	tab := tabs.Default
	if q := r.URL.Query().Get("tab"); q != "" {
		var err error
		tab, err = tabs.Parse(q)
		if err != nil {
			log.Warn().Err(err).Str("tab", q).Msg("Rejected tab selection")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	page, err := s.Page(tab)
	if err != nil {
		log.Error().Err(err).Msg("Failed to build page")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	s.render(w, "dashboard.html", page)
}

func (s *Server) handleSystemHealthChart(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	io.WriteString(w, s.charts.SystemHealthChart(s.board.Metrics()))
}

func (s *Server) handleStatusChart(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	io.WriteString(w, s.charts.StatusChart(s.board.Deployments(), s.board.Pipelines()))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, "ok")
}

// Page builds the view model with tab selected.
func (s *Server) Page(tab tabs.Tab) (view.Page, error) {
	sel := tabs.NewSelector()
	if err := sel.Select(tab); err != nil {
		return view.Page{}, err
	}

	page := view.Build(s.board, sel)
	page.HealthChart = s.charts.SystemHealthChart(s.board.Metrics())
	page.StatusChart = s.charts.StatusChart(s.board.Deployments(), s.board.Pipelines())
	return page, nil
}

// RenderPage executes the dashboard template for page into w.
func (s *Server) RenderPage(w io.Writer, page view.Page) error {
	t, ok := s.templates["dashboard.html"]
	if !ok {
		return errors.New("template not found: dashboard.html")
	}
	return t.ExecuteTemplate(w, "layout", page)
}

func (s *Server) render(w http.ResponseWriter, page string, data interface{}) {
	t, ok := s.templates[page]
	if !ok {
		log.Error().Str("template", page).Msg("Template not found")
		http.Error(w, "Page not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/html")
	if err := t.ExecuteTemplate(w, "layout", data); err != nil {
		log.Error().Err(err).Msg("Template error")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
