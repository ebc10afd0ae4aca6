package api

import (
	"net/http"

	"github.com/snarg/captiond"
)

// DocsHandler serves the root info endpoint and the embedded API
// documentation.
type DocsHandler struct {
	version string
}

func NewDocsHandler(version string) *DocsHandler {
	return &DocsHandler{version: version}
}

func (h *DocsHandler) Root(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{
		"message": "captiond — YouTube caption relay",
		"version": h.version,
	})
}

func (h *DocsHandler) Docs(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(captiond.DocsPage)
}

func (h *DocsHandler) OpenAPI(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.Write(captiond.OpenAPISpec)
}
