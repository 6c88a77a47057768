package site

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os/exec"
	"runtime"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/saber-notes/saberweb/internal/links"
	"github.com/saber-notes/saberweb/internal/release"
)

// Server renders the site on demand for local development. Every request
// for the landing page remounts the same Page, so the previous annotation
// group is always hidden before a new one is recorded.
type Server struct {
	renderer *Renderer
	version  release.VersionName
	links    links.Links
	router   chi.Router

	mu   sync.Mutex
	page *Page

	httpServer *http.Server
}

// NewServer creates a dev server for an already resolved version.
func NewServer(renderer *Renderer, version release.VersionName, l links.Links, highlightColor string) *Server {
	s := &Server{
		renderer: renderer,
		version:  version,
		links:    l,
		page:     NewPage(highlightColor),
	}
	s.router = s.buildRouter()
	return s
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "HEAD", "OPTIONS"},
		MaxAge:         300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})
	r.Get("/api/version", s.handleVersion)
	r.Get("/", s.handleLanding)
	r.Get("/index.html", s.handleLanding)
	r.Get("/"+privacyPolicyPath, s.handlePrivacyPolicy)
	for _, a := range staticAssets {
		a := a
		r.Get("/"+a.path, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", a.contentType)
			w.Write([]byte(a.content))
		})
	}

	return r
}

// Handler returns the HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler { return s.router }

type versionResponse struct {
	Version      release.VersionName `json:"version"`
	InstallerURL string              `json:"installer_url"`
	ArchiveURL   string              `json:"archive_url"`
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(versionResponse{
		Version:      s.version,
		InstallerURL: s.links.InstallerURL,
		ArchiveURL:   s.links.ArchiveURL,
	})
}

func (s *Server) handleLanding(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	body, err := s.renderer.Landing(s.links, s.page)
	s.mu.Unlock()
	if err != nil {
		log.Printf("rendering landing page: %v", err)
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(body)
}

func (s *Server) handlePrivacyPolicy(w http.ResponseWriter, r *http.Request) {
	body, err := s.renderer.PrivacyPolicy()
	if err != nil {
		log.Printf("rendering privacy policy: %v", err)
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(body)
}

// ListenAndServe serves on port until Shutdown is called.
func (s *Server) ListenAndServe(port int, open bool) error {
	addr := fmt.Sprintf(":%d", port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	if open {
		go openBrowser(fmt.Sprintf("http://localhost:%d", port))
	}
	log.Printf("saberweb dev server listening on %s", addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown stops the server and hides the page's annotation group.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	s.page.Unmount()
	s.mu.Unlock()
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

// ServeDir serves an already generated site from dir.
func ServeDir(dir string, port int, open bool) error {
	addr := fmt.Sprintf(":%d", port)
	url := fmt.Sprintf("http://localhost:%d", port)

	if open {
		go openBrowser(url)
	}

	fmt.Printf("Serving %s at %s\n", dir, url)
	fmt.Println("Press Ctrl+C to stop.")

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Handle("/*", http.FileServer(http.Dir(dir)))

	return http.ListenAndServe(addr, r)
}

func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	_ = cmd.Start()
}
