package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.cors())
	router.Use(middleware.Compress(5, "application/json", "text/plain"))

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.notFound)

	if h.metricsHandler != nil {
		router.Method(http.MethodGet, "/metrics", h.metricsHandler)
	}

	router.Route("/api", func(r chi.Router) {
		r.NotFound(h.notFound)
		r.MethodNotAllowed(h.notFound)

		// credential routes ignore the Authorization header so a client
		// holding an expired token can sign in again
		r.With(h.withRateLimit).Post("/register", h.register)
		r.With(h.withRateLimit).Post("/login", h.login)
		r.Post("/logout", h.logout)

		r.Group(func(r chi.Router) {
			r.Use(h.identify)
			h.identifiedRoutes(r)
		})
	})

	return router
}

func (h *Handler) identifiedRoutes(r chi.Router) {
	r.Get("/version", h.getServerVersion)
	r.With(h.requireAuth).Get("/user", h.currentUser)

	r.Route("/team", func(r chi.Router) {
		r.Get("/", h.listTeam)
		r.Get("/{id}", h.getTeamMember)

		r.Group(func(r chi.Router) {
			r.Use(h.requireAdmin)
			r.Post("/", h.createTeamMember)
			r.Put("/{id}", h.updateTeamMember)
			r.Delete("/{id}", h.deleteTeamMember)
		})
	})

	r.Route("/news", func(r chi.Router) {
		r.Get("/", h.listNews)
		r.Get("/{id}", h.getNewsArticle)

		r.Group(func(r chi.Router) {
			r.Use(h.requireAdmin)
			r.Post("/", h.createNewsArticle)
			r.Put("/{id}", h.updateNewsArticle)
			r.Delete("/{id}", h.deleteNewsArticle)
		})
	})

	r.Route("/about", func(r chi.Router) {
		r.Get("/", h.listAbout)
		r.Get("/{id}", h.getAboutSection)

		r.Group(func(r chi.Router) {
			r.Use(h.requireAdmin)
			r.Post("/", h.createAboutSection)
			r.Put("/{id}", h.updateAboutSection)
			r.Delete("/{id}", h.deleteAboutSection)
		})
	})

	r.Route("/contact", func(r chi.Router) {
		r.With(h.withRateLimit).Post("/", h.submitContactMessage)

		r.Group(func(r chi.Router) {
			r.Use(h.requireAdmin)
			r.Get("/", h.listContactMessages)
			r.Get("/{id}", h.getContactMessage)
			r.Put("/{id}", h.updateContactStatus)
			r.Delete("/{id}", h.deleteContactMessage)
		})
	})

	// comment ownership is checked by the service
	r.Route("/comments", func(r chi.Router) {
		r.Get("/", h.listComments)
		r.Get("/{id}", h.getComment)
		r.With(h.withRateLimit).Post("/", h.createComment)
		r.Put("/{id}", h.updateComment)
		r.Delete("/{id}", h.deleteComment)
	})

	r.Route("/investment-groups", func(r chi.Router) {
		r.Get("/", h.listInvestmentGroups)
		r.Get("/{id}", h.getInvestmentGroup)

		r.Group(func(r chi.Router) {
			r.Use(h.requireAdmin)
			r.Post("/", h.createInvestmentGroup)
			r.Put("/{id}", h.updateInvestmentGroup)
			r.Delete("/{id}", h.deleteInvestmentGroup)
		})
	})

	r.Route("/investments", func(r chi.Router) {
		r.Get("/", h.listInvestments)
		r.Get("/{id}", h.getInvestment)

		r.Group(func(r chi.Router) {
			r.Use(h.requireAdmin)
			r.Post("/", h.createInvestment)
			r.Put("/{id}", h.updateInvestment)
			r.Delete("/{id}", h.deleteInvestment)
		})
	})
}

// cors allows the configured browser origins to call the API with bearer
// tokens. Without configured origins no CORS headers are sent.
func (h *Handler) cors() func(http.Handler) http.Handler {
	if len(h.cfg.AllowedOrigins) == 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	return cors.Handler(cors.Options{
		AllowedOrigins:   h.cfg.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders:   []string{traceIDHeader},
		AllowCredentials: true,
		MaxAge:           int((12 * time.Hour).Seconds()),
	})
}
