// Package web serves the server-rendered pages and static assets. The
// pages are thin shells; they load their data from the JSON API in the
// browser, so the session gate redirect is the only server-side
// coupling.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

//go:embed templates/*.html static/*
var content embed.FS

// Handler renders the HTML pages
type Handler struct {
	tmpl   *template.Template
	logger *zap.Logger
}

// NewHandler parses the embedded templates
func NewHandler(logger *zap.Logger) (*Handler, error) {
	tmpl, err := template.ParseFS(content, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Handler{tmpl: tmpl, logger: logger}, nil
}

// Register mounts the page and static asset routes
func (h *Handler) Register(r chi.Router) {
	r.Get("/", h.page("gallery"))
	r.Get("/login", h.page("login"))
	r.Get("/memory/new", h.page("form"))
	r.Get("/memory/{id}", h.page("detail"))
	r.Get("/memory/{id}/edit", h.page("form"))

	staticFS, err := fs.Sub(content, "static")
	if err != nil {
		// Impossible with the embed above; fail loudly if it ever changes.
		panic(err)
	}
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))
}

type pageData struct {
	MemoryID string
}

func (h *Handler) page(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := pageData{MemoryID: chi.URLParam(r, "id")}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := h.tmpl.ExecuteTemplate(w, name, data); err != nil {
			h.logger.Error("Failed to render page",
				zap.String("page", name),
				zap.Error(err),
			)
		}
	}
}
