// Package decoy serves the static website shown to anyone probing the
// proxy's address with a browser.
package decoy

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewHandler serves files under root; "/" maps to index.html.
func NewHandler(root string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.GetHead)

	fs := http.FileServer(http.Dir(root))
	r.Get("/*", fs.ServeHTTP)
	return r
}
