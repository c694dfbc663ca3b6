package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/atharva-sardesai/proposal/internal/app/config"
	apphttp "github.com/atharva-sardesai/proposal/internal/app/http"
	"github.com/atharva-sardesai/proposal/internal/domain/proposal"
	"github.com/atharva-sardesai/proposal/internal/domain/proposal/document"
	pdfgen "github.com/atharva-sardesai/proposal/internal/domain/proposal/pdf/gofpdf"
	"github.com/atharva-sardesai/proposal/internal/infra/db/postgres"
	"github.com/atharva-sardesai/proposal/internal/infra/store"
)

// Run wires config, store, document pipeline and router, then serves.
func Run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	var st store.Store = store.NewMemory()
	if cfg.DatabaseURL != "" {
		db, err := postgres.New(context.Background(), cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("db: %w", err)
		}
		defer db.Close()
		pg := store.NewPostgres(db)
		if err := pg.Ensure(context.Background()); err != nil {
			return fmt.Errorf("db: %w", err)
		}
		st = pg
		log.Printf("store: postgres")
	} else {
		log.Printf("store: memory (set DATABASE_URL for durable storage)")
	}

	docs := document.New(
		cfg.CatalogPath,
		pdfgen.New(cfg.BrandingPath),
		proposal.Provider{Name: cfg.ProviderName, Contact: cfg.ProviderContact},
	)

	router := apphttp.NewRouter(cfg, st, docs)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Printf("listening on %s", cfg.HTTPAddr)
	return srv.ListenAndServe()
}
