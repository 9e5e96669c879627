package handler

import (
	"bytes"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/kellyband/site/internal/content"
	"github.com/kellyband/site/internal/model"
	"github.com/kellyband/site/web"
)

// pageNames lists the templates under web/templates that render inside layout.html.
var pageNames = []string{
	"home",
	"music",
	"tour",
	"merch",
	"links",
	"contact",
	"admin-contacts",
}

// viewData is the template context shared by every page.
type viewData struct {
	Title       string
	CurrentPage string
	Year        int

	Songs            []model.Song
	MasterStreamLink string
	UpcomingShows    []model.Show
	PastShows        []model.Show
	Links            []model.Link

	Status   string
	Contacts []*model.ContactSubmission
	Operator string
}

// Renderer executes the embedded page templates.
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses layout.html plus one template set per page.
func NewRenderer() (*Renderer, error) {
	funcs := template.FuncMap{
		"date":      formatDate,
		"timestamp": formatTimestamp,
	}

	layout, err := template.New("layout.html").Funcs(funcs).ParseFS(web.Templates, "templates/layout.html")
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		base, err := layout.Clone()
		if err != nil {
			return nil, err
		}
		t, err := base.ParseFS(web.Templates, "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		pages[name] = t
	}
	return &Renderer{pages: pages}, nil
}

// Render writes page name with data. Output is buffered so a template error
// becomes a clean 500 instead of a half-written page.
func (rn *Renderer) Render(w http.ResponseWriter, status int, name string, data viewData) {
	t, ok := rn.pages[name]
	if !ok {
		slog.Error("unknown template", "template", name)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if data.Year == 0 {
		data.Year = time.Now().Year()
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		slog.Error("render template failed", "template", name, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func formatDate(s string) string {
	d, err := time.Parse(content.DateLayout, s)
	if err != nil {
		return s
	}
	return d.Format("Jan 2, 2006")
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02 15:04:05 UTC")
}
