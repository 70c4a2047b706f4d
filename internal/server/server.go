// Package server exposes the formatter over HTTP for hosts that cannot
// link Go code directly.
package server

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/brandonbloom/dtfmt/internal/attrs"
	"github.com/brandonbloom/dtfmt/internal/datetime"
	"github.com/brandonbloom/dtfmt/internal/locale"
	"github.com/brandonbloom/dtfmt/internal/parse"
	"github.com/brandonbloom/dtfmt/internal/timefmt"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/goccy/go-json"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// Config holds the defaults applied when a request leaves a parameter out.
type Config struct {
	Locale     string
	TimeZone   string
	Type       string
	Attributes attrs.Set
	Clock      clockwork.Clock
	Log        zerolog.Logger
}

// Server serves the formatting API.
type Server struct {
	config Config
	router chi.Router
}

// New validates cfg and builds the router.
func New(cfg Config) (*Server, error) {
	if _, err := locale.LoadZone(cfg.TimeZone); err != nil {
		return nil, err
	}
	if cfg.Clock == nil {
		cfg.Clock = clockwork.NewRealClock()
	}
	if cfg.Attributes == nil {
		cfg.Attributes = attrs.Set{}
	}
	s := &Server{config: cfg}
	s.router = s.setupRouter()
	return s, nil
}

func (s *Server) setupRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/format", s.handleFormat)
		r.Get("/humanize", s.handleHumanize)
		r.Get("/options", s.handleOptions)
	})
	r.Handle("/metrics", promhttp.Handler())

	return r
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()
	s.config.Log.Info().Str("addr", addr).Msg("listening")

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) handleFormat(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if !q.Has("datetime") {
		sendError(w, http.StatusBadRequest, "datetime is required")
		return
	}

	mode := s.config.Type
	if q.Has("type") {
		mode = q.Get("type")
	}
	tag := s.config.Locale
	if q.Has("locale") {
		tag = q.Get("locale")
	}
	kind := datetime.ParseMode(mode)

	formatter, err := locale.New(tag, s.config.TimeZone)
	if err != nil {
		formatRequests.WithLabelValues(modeLabel(kind), "error").Inc()
		sendError(w, http.StatusInternalServerError, err.Error())
		return
	}
	el := datetime.NewElement(
		datetime.NewDispatcher(formatter, s.config.Clock),
		parse.New(formatter.Location()),
		datetime.WithType(mode),
		datetime.WithAttributes(s.requestAttributes(r)),
		datetime.WithLogger(s.config.Log),
	)
	if err := el.SetDatetime(q.Get("datetime")); err != nil {
		formatRequests.WithLabelValues(modeLabel(kind), "error").Inc()
		sendError(w, http.StatusBadRequest, err.Error())
		return
	}

	formatRequests.WithLabelValues(modeLabel(kind), "ok").Inc()
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(el.Text()))
}

func (s *Server) handleHumanize(w http.ResponseWriter, r *http.Request) {
	delta, err := strconv.ParseInt(r.URL.Query().Get("delta"), 10, 64)
	if err != nil {
		sendError(w, http.StatusBadRequest, "delta must be an integer number of milliseconds")
		return
	}
	sendJSON(w, http.StatusOK, map[string]any{
		"delta": delta,
		"text":  timefmt.Humanize(delta),
	})
}

func (s *Server) handleOptions(w http.ResponseWriter, r *http.Request) {
	sendJSON(w, http.StatusOK, attrs.Resolve(s.requestAttributes(r)))
}

// requestAttributes overlays query parameters on the configured attributes.
func (s *Server) requestAttributes(r *http.Request) attrs.Set {
	set := s.config.Attributes.Clone()
	q := r.URL.Query()
	for _, name := range attrs.Names() {
		if q.Has(name) {
			set[name] = q.Get(name)
		}
	}
	return set
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.config.Log.Debug().
			Str("request_id", middleware.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}

func modeLabel(m datetime.Mode) string {
	switch m.Kind {
	case datetime.Local:
		return datetime.LocalName
	case datetime.Relative:
		return datetime.RelativeName
	default:
		return "other"
	}
}

func sendJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")

	jsonData, err := json.Marshal(data)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"failed to marshal JSON"}`))
		return
	}

	w.WriteHeader(statusCode)
	w.Write(jsonData)
}

func sendError(w http.ResponseWriter, statusCode int, msg string) {
	sendJSON(w, statusCode, map[string]string{"error": msg})
}
