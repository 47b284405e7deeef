package transport

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"

	"github.com/halverson/promptforge/internal/domain/activity"
	"github.com/halverson/promptforge/internal/domain/prompt"
	"github.com/halverson/promptforge/internal/domain/version"
	"github.com/halverson/promptforge/internal/export"
)

// Services bundles the domain services the HTTP layer dispatches to.
type Services struct {
	Prompts  *prompt.Service
	Versions *version.Service
	Activity *activity.Service
	Exporter *export.Engine
}

// Server wires HTTP handlers.
type Server struct {
	services Services
	logger   *slog.Logger
}

// NewServer creates the API router with middleware.
func NewServer(services Services, allowedOrigins []string, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	r := chi.NewRouter()
	r.Use(RequestLogger(logger))
	r.Use(OwnerMiddleware)

	srv := &Server{services: services, logger: logger}

	r.Get("/health", srv.handleHealth)
	r.Get("/api/activity", srv.handleListActivity)
	r.Route("/api/prompts", func(r chi.Router) {
		r.Post("/", srv.handleCreatePrompt)
		r.Get("/", srv.handleListPrompts)
		r.Route("/{promptID}", func(r chi.Router) {
			r.Get("/", srv.handleGetPrompt)
			r.Put("/", srv.handleUpdatePrompt)
			r.Delete("/", srv.handleDeletePrompt)
			r.Post("/engage", srv.handleEngage)
			r.Post("/versions", srv.handleCreateVersion)
			r.Get("/versions", srv.handleListVersions)
			r.Get("/versions/compare", srv.handleCompareVersions)
			r.Post("/export", srv.handleExport)
		})
	})

	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "X-User-Id"},
	})
	return c.Handler(r)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func owner(r *http.Request) string {
	ownerID, _ := OwnerFromContext(r.Context())
	return ownerID
}

func (s *Server) handleListActivity(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var opts activity.ListActivityOptions
	if promptID := q.Get("prompt_id"); promptID != "" {
		opts.PromptID = &promptID
	}
	if typ := q.Get("type"); typ != "" {
		at := activity.ActivityType(typ)
		opts.ActivityType = &at
	}
	if limit, err := strconv.Atoi(q.Get("limit")); err == nil && limit > 0 {
		opts.Limit = limit
	}
	if offset, err := strconv.Atoi(q.Get("offset")); err == nil && offset > 0 {
		opts.Offset = offset
	}

	entries, err := s.services.Activity.GetRecentActivity(r.Context(), owner(r), opts)
	if err != nil {
		respondError(w, err)
		return
	}
	if entries == nil {
		entries = []activity.ActivityEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleCreatePrompt(w http.ResponseWriter, r *http.Request) {
	var req prompt.CreateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	created, err := s.services.Prompts.Create(r.Context(), owner(r), req)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleListPrompts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts := prompt.ListOptions{
		Query:      q.Get("q"),
		Category:   q.Get("category"),
		Type:       q.Get("type"),
		Language:   q.Get("language"),
		Complexity: q.Get("complexity"),
		Tag:        q.Get("tag"),
	}
	if st := q.Get("structure_type"); st != "" {
		typed := prompt.StructureType(st)
		opts.StructureType = &typed
	}
	if limit, err := strconv.Atoi(q.Get("limit")); err == nil && limit > 0 {
		opts.Limit = limit
	}
	if offset, err := strconv.Atoi(q.Get("offset")); err == nil && offset > 0 {
		opts.Offset = offset
	}

	summaries, err := s.services.Prompts.List(r.Context(), owner(r), opts)
	if err != nil {
		respondError(w, err)
		return
	}
	if summaries == nil {
		summaries = []prompt.PromptSummary{}
	}
	writeJSON(w, http.StatusOK, summaries)
}

func (s *Server) handleGetPrompt(w http.ResponseWriter, r *http.Request) {
	p, err := s.services.Prompts.Get(r.Context(), owner(r), chi.URLParam(r, "promptID"))
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleUpdatePrompt(w http.ResponseWriter, r *http.Request) {
	var req prompt.UpdateRequest
	if !decodeBody(w, r, &req) {
		return
	}
	req.ID = chi.URLParam(r, "promptID")

	updated, err := s.services.Prompts.Update(r.Context(), owner(r), req)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeletePrompt(w http.ResponseWriter, r *http.Request) {
	if err := s.services.Prompts.Delete(r.Context(), owner(r), chi.URLParam(r, "promptID")); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleEngage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Counter string `json:"counter"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	if err := s.services.Prompts.Engage(r.Context(), owner(r), chi.URLParam(r, "promptID"), req.Counter); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCreateVersion(w http.ResponseWriter, r *http.Request) {
	var req version.CreateRequest
	if !decodeBody(w, r, &req) {
		return
	}
	req.PromptID = chi.URLParam(r, "promptID")

	created, err := s.services.Versions.Create(r.Context(), owner(r), req)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleListVersions(w http.ResponseWriter, r *http.Request) {
	infos, err := s.services.Versions.List(r.Context(), owner(r), chi.URLParam(r, "promptID"))
	if err != nil {
		respondError(w, err)
		return
	}
	if infos == nil {
		infos = []version.VersionInfo{}
	}
	writeJSON(w, http.StatusOK, infos)
}

func (s *Server) handleCompareVersions(w http.ResponseWriter, r *http.Request) {
	fromID := r.URL.Query().Get("from")
	toID := r.URL.Query().Get("to")
	if fromID == "" || toID == "" {
		writeError(w, http.StatusBadRequest, "INVALID_INPUT", "from and to version ids are required")
		return
	}

	result, err := s.services.Versions.Compare(r.Context(), owner(r), fromID, toID)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	var opts export.Options
	if !decodeBody(w, r, &opts) {
		return
	}

	ownerID := owner(r)
	promptID := chi.URLParam(r, "promptID")

	p, err := s.services.Prompts.Get(r.Context(), ownerID, promptID)
	if err != nil {
		respondError(w, err)
		return
	}

	result, err := s.services.Exporter.Export(p, opts)
	if err != nil {
		respondError(w, err)
		return
	}

	if s.services.Activity != nil {
		_ = s.services.Activity.LogActivity(r.Context(), ownerID, &activity.ActivityEntry{
			PromptID:     &promptID,
			ActivityType: activity.TypePromptExported,
			Summary:      "exported prompt " + promptID + " as " + string(opts.Format),
		})
	}

	writeJSON(w, http.StatusOK, result)
}
