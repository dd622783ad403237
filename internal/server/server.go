// Package server provides the HTTP server and handlers.
package server

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	log "github.com/sirupsen/logrus"

	"github.com/igcsenotes/site/internal/database"
	"github.com/igcsenotes/site/internal/model"
	"github.com/igcsenotes/site/internal/seo"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static/*
var staticFS embed.FS

// ContentSource is the subset of the content client the server needs.
// Every call is failure-isolated at the call site: an error degrades
// to absent content and the fallback chains take over.
type ContentSource interface {
	Header(ctx context.Context) (*model.Header, error)
	Hero(ctx context.Context) (*model.Hero, error)
	SubjectGrid(ctx context.Context) (*model.SubjectGrid, error)
	WhyChooseUs(ctx context.Context) (*model.WhyChooseUs, error)
	FAQ(ctx context.Context) (*model.FAQ, error)
	ContactSection(ctx context.Context) (*model.ContactSection, error)
	Footer(ctx context.Context) (*model.Footer, error)
	SubjectsPage(ctx context.Context) (*model.SubjectsPage, error)
	PublishedSubjects(ctx context.Context) ([]model.SubjectPage, error)
	SubjectBySlug(ctx context.Context, slug string) (*model.SubjectPage, error)
	SubjectSlugs(ctx context.Context) ([]string, error)
	SEOSettings(ctx context.Context) (*model.SEOSettings, error)
	GlobalSEO(ctx context.Context) (*model.SEOFields, error)
	CreateSubmission(ctx context.Context, sub *model.Submission) error
}

// Notifier sends a best-effort notification for a new submission.
type Notifier interface {
	Enabled() bool
	SendSubmission(ctx context.Context, sub *model.Submission) error
}

// Options holds the site-wide rendering settings.
type Options struct {
	BaseURL        string
	DefaultOGImage string
	FollowPolicy   seo.FollowPolicy
}

// Server is the main HTTP server.
type Server struct {
	cms       ContentSource
	store     database.Store
	mailer    Notifier
	opts      Options
	router    chi.Router
	templates *template.Template
}

// New creates a new server.
func New(cms ContentSource, store database.Store, mailer Notifier, opts Options) (*Server, error) {
	s := &Server{
		cms:    cms,
		store:  store,
		mailer: mailer,
		opts:   opts,
	}

	tmpl, err := template.New("").Funcs(template.FuncMap{
		"linkRel": func(href string, noFollowExternal bool) string {
			return seo.Rel(href, opts.BaseURL, noFollowExternal)
		},
		"linkNewTab": func(href string) bool {
			return seo.OpensNewTab(href, opts.BaseURL)
		},
		"imageURL":   seo.ImageURL,
		"formatDate": formatDate,
		"initial":    initial,
	}).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	s.templates = tmpl
	s.setupRoutes()
	return s, nil
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))

	// Serve static files.
	staticSub, _ := fs.Sub(staticFS, "static")
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticSub))))

	// Pages.
	r.Get("/", s.handleHome)
	r.Get("/subjects", s.handleSubjects)
	r.Get("/contact", s.handleContact)
	r.Get("/{subject}", s.handleSubject)

	// Legacy subject URLs moved to the root.
	r.Get("/subjects/{subject}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/"+chi.URLParam(r, "subject"), http.StatusMovedPermanently)
	})

	// SEO artifacts.
	r.Get("/sitemap.xml", s.handleSitemap)
	r.Get("/robots.txt", s.handleRobots)

	// API.
	r.Route("/api", func(r chi.Router) {
		r.Post("/contact", s.handleContactSubmit)
		r.Get("/submissions", s.handleSubmissions)
	})

	s.router = r
}

// Start starts the server.
func (s *Server) Start(addr string) error {
	log.Infof("Server starting on %s", addr)
	return http.ListenAndServe(addr, s.router)
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// --- Helpers ---

func (s *Server) render(w http.ResponseWriter, status int, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		log.Errorf("Template error in %s: %v", name, err)
	}
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "Recently"
	}
	return t.Format("Jan 2, 2006")
}

func initial(name string) string {
	if name == "" {
		return "?"
	}
	r, _ := utf8.DecodeRuneInString(name)
	return strings.ToUpper(string(r))
}
