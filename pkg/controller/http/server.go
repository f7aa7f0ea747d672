package http

import (
	"context"
	"html/template"
	"io/fs"
	"net/http"

	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/aimatrix/pkg/domain/model"
	"github.com/secmon-lab/aimatrix/pkg/usecase"
)

// DashboardUseCase is the interactive session the HTML pages drive
type DashboardUseCase interface {
	Apply(ctx context.Context, events ...usecase.Event) error
	View(ctx context.Context) (*usecase.View, error)
}

// OpportunityUseCase backs the JSON API
type OpportunityUseCase interface {
	SubmitDraft(ctx context.Context, draft *model.Draft) (*model.Opportunity, error)
	GetOpportunity(ctx context.Context, id int64) (*model.Opportunity, error)
	ListOpportunities(ctx context.Context) ([]*model.Opportunity, error)
	BuildGrid(ctx context.Context) (*usecase.Grid, error)
}

type Server struct {
	router      *chi.Mux
	dashboard   DashboardUseCase
	opportunity OpportunityUseCase
	pages       *template.Template
	sentry      bool
}

type Options func(*Server)

// WithSentry attaches a per-request Sentry hub and reports panics
func WithSentry(enabled bool) Options {
	return func(s *Server) {
		s.sentry = enabled
	}
}

func New(dashboard DashboardUseCase, opportunity OpportunityUseCase, opts ...Options) (*Server, error) {
	r := chi.NewRouter()

	s := &Server{
		router:      r,
		dashboard:   dashboard,
		opportunity: opportunity,
	}
	for _, opt := range opts {
		opt(s)
	}

	pages, err := parsePages()
	if err != nil {
		return nil, err
	}
	s.pages = pages

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(requestLogger)
	r.Use(accessLogger)
	if s.sentry {
		r.Use(sentryhttp.New(sentryhttp.Options{Repanic: true}).Handle)
	}
	r.Use(middleware.Recoverer)

	r.Get("/healthz", healthHandler)

	// Dashboard pages
	r.Get("/", s.indexHandler)
	r.Route("/form", func(r chi.Router) {
		r.Post("/toggle", s.toggleFormHandler)
		r.Post("/submit", s.submitFormHandler)
		r.Post("/cancel", s.cancelFormHandler)
	})
	r.Route("/selection", func(r chi.Router) {
		r.Post("/clear", s.clearSelectionHandler)
		r.Post("/{id}", s.selectHandler)
	})

	// JSON API
	r.Route("/api", func(r chi.Router) {
		r.Get("/opportunities", s.listOpportunitiesHandler)
		r.Post("/opportunities", s.createOpportunityHandler)
		r.Get("/opportunities/{id}", s.getOpportunityHandler)
		r.Get("/grid", s.gridHandler)
	})

	staticFS, err := fs.Sub(assets, "static")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to bind static dir")
	}
	r.Get("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))).ServeHTTP)

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok")) //nolint:errcheck // header already committed
}
