package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"quotedesk/backend/internal/app/config"
	"quotedesk/backend/internal/app/http/handlers"
	"quotedesk/backend/internal/app/http/middleware"
)

func NewRouter(cfg config.Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSAllowOrigin))

	h := handlers.New(cfg)

	r.Get("/health", h.Health)

	r.Route("/v1", func(r chi.Router) {
		if cfg.InternalToken != "" {
			r.Use(middleware.InternalAuth(cfg.InternalToken))
		}

		r.Post("/quotes/preview", h.QuotePreview)
		r.Post("/quotes/pdf", h.QuotePDF)
	})

	return r
}
