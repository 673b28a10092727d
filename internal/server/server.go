// Package server is the development server for a built portfolio. It serves
// the export directory, renders single routes on demand and pushes reload
// notices to open pages.
package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/ziadkadry99/folio/internal/content"
	"github.com/ziadkadry99/folio/internal/view"
)

// Config holds server configuration.
type Config struct {
	Port       int
	OutputDir  string // directory containing the built export
	BasePath   string // URL prefix the export is mounted under
	SiteTitle  string
	LiveReload bool
	AllowAll   bool // allow all CORS origins
}

// Server serves a portfolio export.
type Server struct {
	cfg        Config
	logger     *zap.Logger
	hub        *Hub
	router     chi.Router
	httpServer *http.Server

	mu       sync.RWMutex
	content  *content.Content
	renderer *view.Renderer
}

// New creates a server for content c. A nil logger discards logs.
func New(cfg Config, c *content.Content, logger *zap.Logger) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	renderer, err := view.New(view.Options{
		BasePath:       cfg.BasePath,
		SiteTitle:      cfg.SiteTitle,
		LiveReload:     cfg.LiveReload,
		RenderEndpoint: "/render",
	})
	if err != nil {
		return nil, err
	}
	s := &Server{
		cfg:      cfg,
		logger:   logger,
		hub:      NewHub(logger),
		content:  c,
		renderer: renderer,
	}
	s.router = s.buildRouter()
	return s, nil
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// The reload socket is long-lived and stays outside the timeout.
	r.Get("/livereload", s.hub.ServeHTTP)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(60 * time.Second))

		r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
		r.Get("/render", s.handleRender)
		r.Get("/api/route", s.handleRoute)

		base := mountPath(s.cfg.BasePath)
		files := http.FileServer(http.Dir(s.cfg.OutputDir))
		if base == "/" {
			r.Handle("/*", files)
			return
		}
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, base, http.StatusFound)
		})
		r.Handle(base+"*", http.StripPrefix(strings.TrimSuffix(base, "/"), files))
	})

	return r
}

// Router returns the chi router.
func (s *Server) Router() chi.Router { return s.router }

// Hub returns the live-reload hub.
func (s *Server) Hub() *Hub { return s.hub }

// SetContent swaps the content used by the render endpoints after a rebuild.
func (s *Server) SetContent(c *content.Content) {
	s.mu.Lock()
	s.content = c
	s.mu.Unlock()
}

// Reload tells every connected page to reload and returns how many were told.
func (s *Server) Reload() int {
	return s.hub.Broadcast(ReloadMessage)
}

func (s *Server) current() (*content.Content, *view.Renderer) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.content, s.renderer
}

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	s.logger.Info("folio dev server listening", zap.String("addr", addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown closes reload sockets and gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.hub.Close()
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

// requestLogger logs each request through zap once it completes.
func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Debug("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("duration", time.Since(start)),
				zap.String("request_id", middleware.GetReqID(r.Context())),
			)
		})
	}
}

// mountPath makes basePath start and end with a slash.
func mountPath(basePath string) string {
	basePath = strings.TrimSpace(basePath)
	if !strings.HasPrefix(basePath, "/") {
		basePath = "/" + basePath
	}
	if !strings.HasSuffix(basePath, "/") {
		basePath += "/"
	}
	return basePath
}
