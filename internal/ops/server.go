package ops

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"medrisk/domain/clinical"
	"medrisk/engine"
	"medrisk/internal"
)

// Server is the operational sidecar: liveness, per-model readiness and
// pprof, on a separate port from the API so probes keep working while the
// API is saturated.
type Server struct {
	engine *engine.Engine
	logger *internal.Logger
	router chi.Router
}

func NewServer(eng *engine.Engine, logger *internal.Logger) *Server {
	s := &Server{engine: eng, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealthz)
	r.Get("/readyz", s.handleReadyz)
	r.Mount("/debug", middleware.Profiler())

	s.router = r
	return s
}

// Handler exposes the router for serving and for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe blocks serving the ops endpoints.
func (s *Server) ListenAndServe(addr string) error {
	s.logger.Info("ops server listening on %s", addr)
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	return srv.ListenAndServe()
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleReadyz reports per-model readiness. 503 until every model has
// finished loading, which is what deployment gates key on.
func (s *Server) handleReadyz(w http.ResponseWriter, r *http.Request) {
	statuses := s.engine.Status()

	code := http.StatusOK
	overall := "ready"
	for _, st := range statuses {
		if st.State != clinical.StateReady.String() {
			code = http.StatusServiceUnavailable
			overall = "loading"
			break
		}
	}

	writeJSON(w, code, map[string]interface{}{
		"status": overall,
		"models": statuses,
	})
}

func writeJSON(w http.ResponseWriter, code int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}
