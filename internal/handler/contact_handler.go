package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"mime"
	"net/http"

	"github.com/kellyband/site/internal/model"
	"github.com/kellyband/site/internal/service"
	"github.com/kellyband/site/pkg/auth"
)

const (
	maxContactBody = 64 * 1024

	contactSuccessURL = "/contact?status=success"
	contactErrorURL   = "/contact?status=error"
)

// ContactHandler handles the contact form and the admin listing.
type ContactHandler struct {
	contactService service.ContactService
	renderer       *Renderer
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contactService service.ContactService, renderer *Renderer) *ContactHandler {
	return &ContactHandler{contactService: contactService, renderer: renderer}
}

// submitRequest is the JSON body accepted by POST /contact.
type submitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Form handles GET /contact. Only "success" and "error" statuses show a banner.
func (h *ContactHandler) Form(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	if status != "success" && status != "error" {
		status = ""
	}
	h.renderer.Render(w, http.StatusOK, "contact", viewData{
		Title:       "Contact",
		CurrentPage: "contact",
		Status:      status,
	})
}

// Submit handles POST /contact with a form-encoded or JSON body.
// The outcome is only ever reported through the redirect target.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxContactBody)

	sub, err := decodeSubmission(r)
	if err != nil {
		slog.Warn("contact submission unreadable", "error", err)
		http.Redirect(w, r, contactErrorURL, http.StatusFound)
		return
	}

	if err := h.contactService.Submit(r.Context(), sub); err != nil {
		slog.Error("contact submission failed", "error", err)
		http.Redirect(w, r, contactErrorURL, http.StatusFound)
		return
	}

	http.Redirect(w, r, contactSuccessURL, http.StatusFound)
}

// AdminList handles GET /admin/contacts. Callers must be behind auth.RequireOperator.
func (h *ContactHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.contactService.List(r.Context())
	if err != nil {
		slog.Error("list contacts failed", "error", err)
		http.Error(w, "Error retrieving contacts from database.", http.StatusInternalServerError)
		return
	}

	operator, _ := auth.OperatorFromContext(r.Context())
	h.renderer.Render(w, http.StatusOK, "admin-contacts", viewData{
		Title:       "Admin - Contacts",
		CurrentPage: "admin",
		Contacts:    contacts,
		Operator:    operator,
	})
}

func decodeSubmission(r *http.Request) (*model.ContactSubmission, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		var req submitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
		return &model.ContactSubmission{Name: req.Name, Email: req.Email, Message: req.Message}, nil
	}

	if err := r.ParseForm(); err != nil {
		return nil, fmt.Errorf("parse form: %w", err)
	}
	return &model.ContactSubmission{
		Name:    r.PostForm.Get("name"),
		Email:   r.PostForm.Get("email"),
		Message: r.PostForm.Get("message"),
	}, nil
}
