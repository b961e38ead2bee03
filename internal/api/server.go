package api

import (
	"context"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dgallion1/mdtoc/internal/config"
	"github.com/dgallion1/mdtoc/internal/doctree"
	"github.com/dgallion1/mdtoc/internal/parser"
)

// Outliner produces the numbered outline of the documentation root.
type Outliner interface {
	Outline(ctx context.Context) ([]doctree.OutlineEntry, error)
}

// Server is the HTTP preview server for a documentation tree.
type Server struct {
	router  chi.Router
	outline Outliner
	docs    fs.FS
	md      *parser.MarkdownParser
	log     *slog.Logger
	cfg     config.Config
}

// NewServer creates and configures the HTTP server. docs is the
// documentation root the outline paths are relative to.
func NewServer(outline Outliner, docs fs.FS, md *parser.MarkdownParser, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		outline: outline,
		docs:    docs,
		md:      md,
		log:     log,
		cfg:     cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	r.Group(func(r chi.Router) {
		if s.cfg.APIKey != "" {
			r.Use(AuthMiddleware(s.cfg.APIKey, s.log))
		}

		r.Get("/api/toc", s.handleOutline)
		r.Get("/api/toc/render", s.handleRenderTOC)
		r.Get("/docs/*", s.handleDocument)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
