package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/atharva-sardesai/proposal/internal/app/config"
	"github.com/atharva-sardesai/proposal/internal/app/http/handlers"
	"github.com/atharva-sardesai/proposal/internal/app/http/middleware"
	"github.com/atharva-sardesai/proposal/internal/domain/proposal/document"
	"github.com/atharva-sardesai/proposal/internal/infra/store"
)

func NewRouter(cfg config.Config, st store.Store, docs *document.Service) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSAllowOrigin))

	h := handlers.New(st, docs, cfg)

	r.Get("/health", h.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Route("/proposals", func(r chi.Router) {
			r.Post("/", h.CreateProposal)
			r.Get("/", h.ListProposals)
			r.Post("/export", h.ExportProposal)
			r.Post("/preview", h.PreviewProposal)
			r.Post("/email", h.SendProposalEmail)
			r.Get("/{id}", h.GetProposal)
			r.Put("/{id}", h.UpdateProposal)
			r.Get("/{id}/document", h.DownloadProposal)
		})
	})

	return r
}
