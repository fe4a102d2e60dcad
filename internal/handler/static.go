package handler

import (
	"embed"
	"net/http"
)

//go:embed static
var staticFS embed.FS

// registerStatic serves the embedded stylesheet and any future assets.
func registerStatic(mux *http.ServeMux) {
	mux.Handle("GET /static/", http.FileServerFS(staticFS))
}
