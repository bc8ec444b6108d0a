package web

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"nbaweb/internal/dataframe"
	"nbaweb/internal/projections"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

const (
	pageTitle  = "NBA AI Projections"
	seasonYear = 2026
)

// missingFileMessage is shown when the R pipeline has not produced the
// projections file yet.
const missingFileMessage = "File not found. Please run the R script."

// Handler serves the dashboard. Every request loads the projections file
// fresh; nothing is cached between requests.
type Handler struct {
	templates *template.Template
	loader    *projections.Loader
}

// NewHandler parses the embedded templates and wires the loader.
func NewHandler(loader *projections.Loader) (*Handler, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Handler{
		templates: tmpl,
		loader:    loader,
	}, nil
}

// RegisterRoutes attaches all routes to the router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.Dashboard)
	r.Get("/chart", h.Chart)
	r.Get("/api/projections", h.ProjectionsJSON)
	r.Get("/health", h.HealthCheck)

	static, err := fs.Sub(staticFS, "static")
	if err == nil {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static))))
	}
}

// PageData is the view context handed to the dashboard template. Error is
// set instead of the data fields when the load fails.
type PageData struct {
	Title       string
	Year        int
	Columns     []string
	Projections []dataframe.Row
	Games       []string
	Error       string
}

// HealthCheck reports liveness.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("OK"))
}

// Dashboard renders the projections table and the matchup dropdown, or an
// inline error message when the file is missing or unreadable.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	data := h.loadPageData()
	if err := h.templates.ExecuteTemplate(w, "index.html", data); err != nil {
		log.Printf("render dashboard: %v", err)
	}
}

// ProjectionsJSON serves the same view model as JSON. Load failures are
// reported in the body, never as a 500.
func (h *Handler) ProjectionsJSON(w http.ResponseWriter, r *http.Request) {
	data := h.loadPageData()

	resp := struct {
		Title       string          `json:"title"`
		Year        int             `json:"year"`
		Columns     []string        `json:"columns,omitempty"`
		Projections []dataframe.Row `json:"projections,omitempty"`
		Games       []string        `json:"games,omitempty"`
		Error       string          `json:"error,omitempty"`
	}{
		Title:       data.Title,
		Year:        data.Year,
		Columns:     data.Columns,
		Projections: data.Projections,
		Games:       data.Games,
		Error:       data.Error,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// loadPageData runs one load and maps the error kinds to their display
// messages.
func (h *Handler) loadPageData() PageData {
	data := PageData{Title: pageTitle, Year: seasonYear}

	set, err := h.loader.Load()
	switch {
	case errors.Is(err, projections.ErrMissingFile):
		data.Error = missingFileMessage
	case err != nil:
		data.Error = "Error loading data: " + err.Error()
	default:
		data.Columns = set.Columns
		data.Projections = set.Rows
		data.Games = set.Games
	}

	return data
}
