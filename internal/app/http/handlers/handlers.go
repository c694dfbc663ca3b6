// Package handlers holds the HTTP handlers for the proposal API.
package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/atharva-sardesai/proposal/internal/app/config"
	"github.com/atharva-sardesai/proposal/internal/domain/proposal/document"
	"github.com/atharva-sardesai/proposal/internal/infra/store"
)

type Handlers struct {
	Store store.Store
	Docs  *document.Service
	Cfg   config.Config
}

func New(st store.Store, docs *document.Service, cfg config.Config) *Handlers {
	return &Handlers{Store: st, Docs: docs, Cfg: cfg}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("http: encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
