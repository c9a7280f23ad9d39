package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/revu-dev/revu/internal/application"
	"github.com/revu-dev/revu/internal/domain"
	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
)

// Server exposes the review service over HTTP.
type Server struct {
	svc    *application.ReviewService
	cfg    domain.ServerConfig
	logE   *logrus.Entry
	detect domain.CodeDetector
	now    func() time.Time
}

// Option customizes a Server.
type Option func(*Server)

// WithCodeDetector replaces domain.LooksLikeCode for /api/review.
func WithCodeDetector(d domain.CodeDetector) Option {
	return func(s *Server) { s.detect = d }
}

// WithClock replaces time.Now for chat completion timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Server) { s.now = now }
}

// New creates a Server.
func New(svc *application.ReviewService, cfg domain.ServerConfig, logE *logrus.Entry, opts ...Option) *Server {
	s := &Server{
		svc:    svc,
		cfg:    cfg,
		logE:   logE,
		detect: domain.LooksLikeCode,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the routed handler wrapped in recovery, logging and CORS.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/review", s.handleReview)
	mux.HandleFunc("GET /api/checks", s.handleChecks)
	mux.HandleFunc("POST /v1/chat/completions", s.handleChatCompletions)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	return s.withRecovery(s.withLogging(s.withCORS(mux)))
}

type errorBody struct {
	Error string `json:"error"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logerr.WithError(s.logE, err).Warn("write response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, errorBody{Error: msg})
}
