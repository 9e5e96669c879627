package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/kellyband/site/internal/content"
	"github.com/kellyband/site/internal/model"
)

func newTestPageHandler(t *testing.T, catalog *content.Catalog, now time.Time) *PageHandler {
	t.Helper()
	h := NewPageHandler(catalog, newTestRenderer(t))
	h.now = func() time.Time { return now }
	return h
}

func TestPageHandler_RendersEveryPage(t *testing.T) {
	catalog, err := content.Load("")
	if err != nil {
		t.Fatalf("load content: %v", err)
	}
	h := newTestPageHandler(t, catalog, time.Now())

	pages := []struct {
		path  string
		serve http.HandlerFunc
		want  string
	}{
		{"/", h.Home, "<title>Home | KELLY</title>"},
		{"/music", h.Music, "Inside This Hell"},
		{"/tour", h.Tour, "NoodleFest 2025"},
		{"/merch", h.Merch, "<title>Merch | KELLY</title>"},
		{"/links", h.Links, "https://open.spotify.com/artist/3Q0VxGoMBBlnZHU8qAh1Gz"},
	}
	for _, p := range pages {
		req := httptest.NewRequest(http.MethodGet, p.path, nil)
		rec := httptest.NewRecorder()
		p.serve(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", p.path, rec.Code)
			continue
		}
		if ct := rec.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
			t.Errorf("%s: unexpected Content-Type %q", p.path, ct)
		}
		if !strings.Contains(rec.Body.String(), p.want) {
			t.Errorf("%s: expected %q in body", p.path, p.want)
		}
	}
}

func TestPageHandler_Music_NewestFirst(t *testing.T) {
	catalog := &content.Catalog{
		MasterStreamLink: "/links",
		Songs: []model.Song{
			{Title: "Debut", ReleaseDate: "2025-10-31"},
			{Title: "Follow Up", ReleaseDate: "2026-01-01"},
		},
	}
	h := newTestPageHandler(t, catalog, time.Now())

	rec := httptest.NewRecorder()
	h.Music(rec, httptest.NewRequest(http.MethodGet, "/music", nil))

	body := rec.Body.String()
	if strings.Index(body, "Follow Up") > strings.Index(body, "Debut") {
		t.Error("expected newest release listed first")
	}
	if !strings.Contains(body, "Jan 1, 2026") {
		t.Error("expected formatted release date")
	}
}

func TestPageHandler_Tour_UsesClock(t *testing.T) {
	catalog := &content.Catalog{Shows: []model.Show{
		{Title: "Gone Show", Date: "2026-01-09"},
		{Title: "Next Show", Date: "2026-02-13"},
	}}
	h := newTestPageHandler(t, catalog, time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC))

	rec := httptest.NewRecorder()
	h.Tour(rec, httptest.NewRequest(http.MethodGet, "/tour", nil))

	body := rec.Body.String()
	upcoming := strings.Index(body, "Upcoming shows")
	past := strings.Index(body, "Past shows")
	next := strings.Index(body, "Next Show")
	gone := strings.Index(body, "Gone Show")
	if !(upcoming < next && next < past && past < gone) {
		t.Errorf("expected Next Show under upcoming and Gone Show under past (%d %d %d %d)", upcoming, next, past, gone)
	}
}

func TestPageHandler_Tour_NoUpcoming(t *testing.T) {
	h := newTestPageHandler(t, &content.Catalog{}, time.Now())

	rec := httptest.NewRecorder()
	h.Tour(rec, httptest.NewRequest(http.MethodGet, "/tour", nil))

	if !strings.Contains(rec.Body.String(), "No upcoming shows") {
		t.Error("expected empty-state message")
	}
	if strings.Contains(rec.Body.String(), "Past shows") {
		t.Error("did not expect past section without past shows")
	}
}

func TestPageHandler_NavMarksCurrentPage(t *testing.T) {
	h := newTestPageHandler(t, &content.Catalog{}, time.Now())

	rec := httptest.NewRecorder()
	h.Merch(rec, httptest.NewRequest(http.MethodGet, "/merch", nil))

	if !strings.Contains(rec.Body.String(), `href="/merch" class="active"`) {
		t.Error("expected merch link marked active")
	}
}

func TestRenderer_UnknownTemplate(t *testing.T) {
	rn := newTestRenderer(t)

	rec := httptest.NewRecorder()
	rn.Render(rec, http.StatusOK, "missing", viewData{})

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500 for unknown template, got %d", rec.Code)
	}
}

func TestFormatDate(t *testing.T) {
	if got := formatDate("2026-01-24"); got != "Jan 24, 2026" {
		t.Errorf("unexpected %q", got)
	}
	if got := formatDate("TBA"); got != "TBA" {
		t.Errorf("expected unparseable date unchanged, got %q", got)
	}
}
