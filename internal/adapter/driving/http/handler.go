// Package httphandler is the HTTP driving adapter. It owns the route table
// and translates between HTTP and the application layer; all responses are
// plain text.
package httphandler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ericfisherdev/nametrack/internal/application"
)

// Handler serves the visit-tracking HTTP surface.
type Handler struct {
	visits *application.VisitService
	logger *slog.Logger
}

// NewHandler creates a Handler with all required dependencies.
func NewHandler(visits *application.VisitService, logger *slog.Logger) *Handler {
	return &Handler{
		visits: visits,
		logger: logger,
	}
}

// NewRouter creates an http.Handler with all routes registered and wrapped
// with logging and recovery middleware.
func NewRouter(h *Handler, logger *slog.Logger) http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/", h.Root).Methods(http.MethodGet)
	r.HandleFunc("/ok", h.Health).Methods(http.MethodGet)
	r.HandleFunc("/hello/{name}", h.Greet).Methods(http.MethodGet)

	// Recovery innermost so panics are caught before logging.
	wrapped := recoveryMiddleware(logger, r)
	wrapped = loggingMiddleware(logger, wrapped)

	return wrapped
}

// Root serves the static landing response.
func (h *Handler) Root(w http.ResponseWriter, _ *http.Request) {
	writeText(w, http.StatusOK, "Hello, world!")
}

// Health is the liveness probe used by the healthcheck binary.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeText(w, http.StatusOK, "OK")
}

// Greet records a visit for the name in the path and returns the greeting.
func (h *Handler) Greet(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	greeting, err := h.visits.Greet(r.Context(), name)
	if errors.Is(err, application.ErrEmptyName) {
		writeText(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		h.logger.Error("failed to record visit", "name", name, "error", err)
		writeText(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	writeText(w, http.StatusOK, greeting)
}

// writeText writes a plain-text response with the given status code.
func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
