// Package serve hosts a generated site tree over HTTP.
package serve

import (
	"fmt"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/syednoorhussain2025/hopgen/logging"
)

type Server struct {
	cfg    *Config
	router chi.Router
}

func NewServer(cfg *Config) *Server {
	s := &Server{cfg: cfg}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)

	r.Get("/healthz", s.health)
	r.Get("/*", s.static)
	r.Head("/*", s.static)

	s.router = r
	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe blocks serving the site until the listener fails.
func (s *Server) ListenAndServe() error {
	logging.Info(fmt.Sprintf("serving %s on %s", s.cfg.SiteDir, s.cfg.Addr))
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, "ok")
}

// static resolves the request path inside the site tree. Directories serve
// their index, directory paths without a trailing slash redirect so the
// relative links inside the pages resolve, and unknown paths serve the
// generated 404 page.
func (s *Server) static(w http.ResponseWriter, r *http.Request) {
	p := path.Clean("/" + r.URL.Path)

	fname := filepath.Join(s.cfg.SiteDir, filepath.FromSlash(strings.TrimPrefix(p, "/")))
	info, err := os.Stat(fname)
	if err != nil {
		s.notFound(w, r)
		return
	}

	if info.IsDir() {
		if !strings.HasSuffix(r.URL.Path, "/") {
			http.Redirect(w, r, r.URL.Path+"/", http.StatusMovedPermanently)
			return
		}
		fname = filepath.Join(fname, "index.html")
		if _, err := os.Stat(fname); err != nil {
			s.notFound(w, r)
			return
		}
	}

	if isSnapshotPath(p) {
		w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d, immutable", s.cfg.CacheMaxAge))
	}

	http.ServeFile(w, r, fname)
}

// isSnapshotPath reports whether the request is for a raw article snapshot.
// Snapshots never change once written, so they are safe to cache hard.
func isSnapshotPath(p string) bool {
	if !strings.HasPrefix(p, "/article/") {
		return false
	}
	base := path.Base(p)
	return strings.HasSuffix(base, ".html") && base != "index.html"
}

func (s *Server) notFound(w http.ResponseWriter, r *http.Request) {
	data, err := os.ReadFile(filepath.Join(s.cfg.SiteDir, "404.html"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	w.Write(data)
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		logging.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"elapsed", time.Since(start).String(),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
