package handler

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/kellyband/site/pkg/auth"
	"github.com/kellyband/site/web"
)

// adminRealm is the realm sent in the Basic challenge for /admin.
const adminRealm = "KELLY admin"

// Routes bundles the handlers mounted by NewRouter.
type Routes struct {
	Health   *Handler
	Pages    *PageHandler
	Contacts *ContactHandler
	Operator auth.Operator
}

// NewRouter creates the site router.
func NewRouter(rt Routes) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(SecurityHeaders)

	r.Get("/health", rt.Health.Health)

	static, err := fs.Sub(web.Static, "static")
	if err != nil {
		panic(err) // embedded directory always exists
	}
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServerFS(static)))

	r.Get("/", rt.Pages.Home)
	r.Get("/music", rt.Pages.Music)
	r.Get("/tour", rt.Pages.Tour)
	r.Get("/merch", rt.Pages.Merch)
	r.Get("/links", rt.Pages.Links)

	r.Get("/contact", rt.Contacts.Form)
	r.Post("/contact", rt.Contacts.Submit)

	r.Route("/admin", func(r chi.Router) {
		r.Use(auth.RequireOperator(rt.Operator, adminRealm))
		r.Get("/contacts", rt.Contacts.AdminList)
	})

	return r
}
