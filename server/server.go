package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/aspire/contact"
)

// Routes
const (
	PathSubmit      = "/api/submit-contact"
	PathSubmitAlias = "/.netlify/functions/submit-contact"
	PathHealth      = "/healthz"
)

// Server exposes the contact endpoint over HTTP
type Server struct {
	cfg      *Config
	log      *zap.Logger
	http     *http.Server
	listener net.Listener
}

// New builds a server around store; nil cfg uses defaults
func New(cfg *Config, store contact.Writer, log *zap.Logger) *Server {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if log == nil {
		log = zap.NewNop()
	}

	s := &Server{cfg: cfg, log: log}
	s.http = &http.Server{
		Addr:         cfg.Address,
		Handler:      s.routes(contact.NewHandler(store, log.Named("contact"), cfg.MaxBodyBytes)),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
		ErrorLog:     zap.NewStdLog(log.Named("http")),
	}
	return s
}

func (s *Server) routes(submit http.Handler) http.Handler {
	mux := http.NewServeMux()
	// Method is checked by the handler so non-POST gets the endpoint's own 405 body
	mux.Handle(PathSubmit, submit)
	mux.Handle(PathSubmitAlias, submit)
	mux.HandleFunc("GET "+PathHealth, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = io.WriteString(w, "ok")
	})
	return s.accessLog(mux)
}

func (s *Server) Handler() http.Handler { return s.http.Handler }

// Listen binds the configured address
func (s *Server) Listen() (net.Addr, error) {
	ln, err := net.Listen("tcp", s.cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("listen %s: %w", s.cfg.Address, err)
	}
	s.listener = ln
	return ln.Addr(), nil
}

// Serve runs until ctx is cancelled, then shuts down gracefully
func (s *Server) Serve(ctx context.Context) error {
	if s.listener == nil {
		return errors.New("server: Serve before Listen")
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.log.Info("Serving", zap.String("addr", s.listener.Addr().String()))
		if err := s.http.Serve(s.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()
		if err := s.http.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		s.log.Info("Stopped")
		return nil
	})
	return g.Wait()
}

// Run listens and serves until ctx is done
func (s *Server) Run(ctx context.Context) error {
	if _, err := s.Listen(); err != nil {
		return err
	}
	return s.Serve(ctx)
}

// statusRecorder captures the written status for access logging
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.log.Debug("Request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("elapsed", time.Since(start)))
	})
}
