package server

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/poiesic/prodsearch/core"
)

//go:embed web/templates/*.html web/static
var webFS embed.FS

// Backend is the search service exposed over HTTP.
type Backend interface {
	Products() []core.Product
	Status(ctx context.Context) core.Status
	Search(ctx context.Context, query string) ([]core.RankedResult, error)
}

// Server serves the search page, static assets and the JSON API.
type Server struct {
	backend         Backend
	index           *template.Template
	static          fs.FS
	title           string
	corsOrigin      string
	serviceName     string
	shutdownTimeout time.Duration
	logger          *slog.Logger
}

// Option configures a Server.
type Option func(*Server) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithCORSOrigin sets the allowed CORS origin. Default is "*".
func WithCORSOrigin(origin string) Option {
	return func(s *Server) error {
		if origin == "" {
			return errors.New("server: CORS origin cannot be empty")
		}
		s.corsOrigin = origin
		return nil
	}
}

// WithTitle sets the page title.
func WithTitle(title string) Option {
	return func(s *Server) error {
		s.title = title
		return nil
	}
}

// WithShutdownTimeout bounds graceful shutdown. Default is 10 seconds.
func WithShutdownTimeout(d time.Duration) Option {
	return func(s *Server) error {
		if d <= 0 {
			return errors.New("server: shutdown timeout must be positive")
		}
		s.shutdownTimeout = d
		return nil
	}
}

// New creates a server for backend.
func New(backend Backend, opts ...Option) (*Server, error) {
	if backend == nil {
		return nil, errors.New("server: backend required")
	}

	index, err := template.ParseFS(webFS, "web/templates/index.html")
	if err != nil {
		return nil, err
	}
	static, err := fs.Sub(webFS, "web/static")
	if err != nil {
		return nil, err
	}

	s := &Server{
		backend:         backend,
		index:           index,
		static:          static,
		title:           "Product Search",
		corsOrigin:      "*",
		serviceName:     "prodsearch",
		shutdownTimeout: 10 * time.Second,
		logger:          slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	s.logger = s.logger.With("component", "http")

	return s, nil
}

// Handler returns the routed handler wrapped in the middleware chain.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /status", s.handleStatus)
	mux.HandleFunc("POST /search", s.handleSearch)
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(s.static)))

	return Chain(mux,
		OTel(s.serviceName),
		Recover(s.logger),
		Logger(s.logger),
		CORS(s.corsOrigin),
	)
}

// ListenAndServe serves on addr until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      5 * time.Minute,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server starting", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
		s.logger.Info("shutdown signal received")
	}

	shutCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutCtx)
}
