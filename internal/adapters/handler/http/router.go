package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/adilaksono/lembaga-cms/internal/core/access"
	"github.com/adilaksono/lembaga-cms/internal/core/domain"
)

type Handlers struct {
	Auth    *AuthHandler
	User    *UserHandler
	Author  *AuthorHandler
	Mail    *MailHandler
	Project *ProjectHandler
	Task    *TaskHandler
	Page    *PageHandler
}

func NewHandler(session *SessionMiddleware, h Handlers) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(session.Resolve)

	requireAuth := session.RequireRule(access.AnyAuthenticated())
	requireAdmin := session.RequireRule(access.RoleAtLeast(domain.RoleAdmin))

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/register", h.Auth.Register)
			r.Get("/session", h.Auth.Session)
			r.Post("/logout", h.Auth.Logout)
			r.Post("/logout-all", h.Auth.LogoutAll)
			r.Put("/password", h.Auth.ChangePassword)
		})

		// Public marketing-site reads.
		r.Get("/authors", h.Author.List)
		r.Get("/authors/{id}", h.Author.Get)
		r.Get("/projects", h.Project.ListPublic)
		r.Get("/projects/{slug}", h.Project.GetBySlug)
		r.Get("/pages/{slug}", h.Page.GetByPage)

		r.Route("/tasks", func(r chi.Router) {
			r.Use(requireAuth)
			r.Post("/", h.Task.Create)
			r.Get("/", h.Task.ListMine)
			r.Get("/{id}", h.Task.Get)
			r.Put("/{id}", h.Task.Update)
			r.Delete("/{id}", h.Task.Delete)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(requireAdmin)

			r.Route("/users", func(r chi.Router) {
				r.Get("/", h.User.List)
				r.Get("/{id}", h.User.Get)
				r.Patch("/{id}/role", h.User.ChangeRole)
				r.Delete("/{id}", h.User.Delete)
			})

			r.Route("/authors", func(r chi.Router) {
				r.Post("/", h.Author.Create)
				r.Put("/{id}", h.Author.Update)
				r.Delete("/{id}", h.Author.Delete)
			})

			r.Route("/mails", func(r chi.Router) {
				r.Post("/", h.Mail.Create)
				r.Get("/", h.Mail.List)
				r.Get("/{id}", h.Mail.Get)
				r.Put("/{id}", h.Mail.Update)
				r.Delete("/{id}", h.Mail.Delete)
			})

			r.Route("/mail-categories", func(r chi.Router) {
				r.Get("/", h.Mail.ListCategories)
				r.Post("/", h.Mail.CreateCategory)
			})

			r.Route("/projects", func(r chi.Router) {
				r.Post("/", h.Project.Create)
				r.Get("/", h.Project.ListAdmin)
				r.Put("/{id}", h.Project.Update)
				r.Delete("/{id}", h.Project.Delete)
			})

			r.Route("/pages", func(r chi.Router) {
				r.Put("/", h.Page.Upsert)
				r.Delete("/{id}", h.Page.Delete)
			})
		})
	})

	return r
}
