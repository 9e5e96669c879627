package handler

import (
	"net/http"
	"time"

	"github.com/kellyband/site/internal/content"
)

// PageHandler serves the static marketing pages.
type PageHandler struct {
	catalog  *content.Catalog
	renderer *Renderer
	now      func() time.Time
}

// NewPageHandler creates a PageHandler over the given content.
func NewPageHandler(catalog *content.Catalog, renderer *Renderer) *PageHandler {
	return &PageHandler{catalog: catalog, renderer: renderer, now: time.Now}
}

// Home handles GET /.
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, http.StatusOK, "home", viewData{Title: "Home", CurrentPage: "home"})
}

// Music handles GET /music. Songs are listed newest release first.
func (h *PageHandler) Music(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, http.StatusOK, "music", viewData{
		Title:            "Music",
		CurrentPage:      "music",
		Songs:            h.catalog.SongsNewestFirst(),
		MasterStreamLink: h.catalog.MasterStreamLink,
	})
}

// Tour handles GET /tour.
func (h *PageHandler) Tour(w http.ResponseWriter, r *http.Request) {
	upcoming, past := h.catalog.Tour(h.now())
	h.renderer.Render(w, http.StatusOK, "tour", viewData{
		Title:         "Tour",
		CurrentPage:   "tour",
		UpcomingShows: upcoming,
		PastShows:     past,
	})
}

// Merch handles GET /merch.
func (h *PageHandler) Merch(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, http.StatusOK, "merch", viewData{Title: "Merch", CurrentPage: "merch"})
}

// Links handles GET /links.
func (h *PageHandler) Links(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, http.StatusOK, "links", viewData{
		Title:       "Links",
		CurrentPage: "links",
		Links:       h.catalog.Links,
	})
}
