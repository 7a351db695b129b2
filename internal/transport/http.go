package transport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mergington/activities/internal/domain/registry"
)

// RegistryService exposes the three registry operations the façade fronts.
type RegistryService interface {
	ListActivities(ctx context.Context) (map[string]registry.Activity, error)
	Signup(ctx context.Context, activityName, email string) error
	Unregister(ctx context.Context, activityName, email string) error
}

// Server wires HTTP handlers.
type Server struct {
	registry RegistryService
	logger   *slog.Logger
}

// NewServer creates an HTTP router with middleware. staticDir is served
// under /static/; pass "" to disable static assets (tests do this).
func NewServer(registrySvc RegistryService, staticDir string, logger *slog.Logger) *chi.Mux {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	r := chi.NewRouter()
	r.Use(RequestIDMiddleware)
	r.Use(RequestLogger(logger))
	r.Use(MetricsMiddleware)

	srv := &Server{registry: registrySvc, logger: logger}

	r.Get("/", srv.handleRoot)
	r.Get("/activities", srv.handleListActivities)
	r.Post("/activities/{activityName}/signup", srv.handleSignup)
	r.Delete("/activities/{activityName}/unregister", srv.handleUnregister)
	r.Get("/health", srv.handleHealth)
	r.Method(http.MethodGet, "/metrics", MetricsHandler())

	if staticDir != "" {
		fileServer := http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir)))
		r.Handle("/static/*", fileServer)
	}

	return r
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleListActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := s.registry.ListActivities(r.Context())
	if err != nil {
		s.logger.Error("listing activities failed", "error", err)
		writeDetail(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, activities)
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "activityName")
	email := r.URL.Query().Get("email")
	if email == "" {
		writeDetail(w, http.StatusBadRequest, "Missing email")
		return
	}

	if err := s.registry.Signup(r.Context(), name, email); err != nil {
		s.writeRegistryError(w, err)
		return
	}
	writeMessage(w, fmt.Sprintf("Signed up %s for %s", email, name))
}

func (s *Server) handleUnregister(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "activityName")
	email := r.URL.Query().Get("email")
	if email == "" {
		writeDetail(w, http.StatusBadRequest, "Missing email")
		return
	}

	if err := s.registry.Unregister(r.Context(), name, email); err != nil {
		s.writeRegistryError(w, err)
		return
	}
	writeMessage(w, fmt.Sprintf("Unregistered %s from %s", email, name))
}

// writeRegistryError maps the registry's sentinel errors onto the fixed
// status codes and detail strings of the public contract.
func (s *Server) writeRegistryError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, registry.ErrActivityNotFound):
		writeDetail(w, http.StatusNotFound, "Activity not found")
	case errors.Is(err, registry.ErrAlreadySignedUp):
		writeDetail(w, http.StatusBadRequest, "Student already signed up for this activity")
	case errors.Is(err, registry.ErrNotSignedUp):
		writeDetail(w, http.StatusBadRequest, "Student is not signed up for this activity")
	default:
		s.logger.Error("registry operation failed", "error", err)
		writeDetail(w, http.StatusInternalServerError, "Internal server error")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, map[string]string{"message": message})
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}
