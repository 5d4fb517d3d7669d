package handler

import (
	"io/fs"
	"net/http"
	"strings"
)

// Pages maps each site route to the HTML file that renders it.
var Pages = map[string]string{
	"/":         "index.html",
	"/home":     "home.html",
	"/about":    "about.html",
	"/services": "services.html",
	"/contact":  "contact.html",
	"/login":    "login.html",
	"/register": "register.html",
}

// PageHandler serves the static site out of fsys.
type PageHandler struct {
	fsys fs.FS
}

// NewPageHandler creates a PageHandler reading pages and assets from fsys.
func NewPageHandler(fsys fs.FS) *PageHandler {
	return &PageHandler{fsys: fsys}
}

// Page returns a handler that always serves the named file.
func (h *PageHandler) Page(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.ServeFileFS(w, r, h.fsys, name)
	}
}

// Assets serves style sheets, scripts and images. Mount it with StripPrefix.
func (h *PageHandler) Assets() http.Handler {
	return NoDirListing(http.FileServerFS(h.fsys))
}

// NoDirListing answers 404 for directory paths instead of rendering an index.
func NoDirListing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "" || strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}
