package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/atharva-sardesai/proposal/internal/domain/proposal"
	"github.com/atharva-sardesai/proposal/internal/infra/metrics"
)

// newProposalID issues a PROP-prefixed id. Assigned once at creation, never
// reassigned.
func newProposalID() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return "PROP-" + suffix
}

func (h *Handlers) CreateProposal(w http.ResponseWriter, r *http.Request) {
	var rec proposal.Record
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		writeError(w, http.StatusBadRequest, "bad request")
		return
	}
	rec.Normalize()

	now := time.Now().UTC().Format(time.RFC3339)
	rec.ID = newProposalID()
	rec.CreatedAt = now
	rec.UpdatedAt = now
	if rec.Status == "" {
		rec.Status = proposal.StatusDraft
	}

	if err := h.Store.Put(r.Context(), rec); err != nil {
		log.Printf("proposals: create %s: %v", rec.ID, err)
		writeError(w, http.StatusInternalServerError, "failed to save proposal")
		return
	}
	metrics.ProposalsCreated.Inc()
	log.Printf("proposals: created %s company=%q scopes=%d", rec.ID, rec.Company.Name, len(rec.Scopes))
	writeJSON(w, http.StatusCreated, map[string]string{"id": rec.ID})
}

func (h *Handlers) UpdateProposal(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var rec proposal.Record
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		writeError(w, http.StatusBadRequest, "bad request")
		return
	}
	rec.Normalize()

	existing, ok, err := h.Store.Get(r.Context(), id)
	if err != nil {
		log.Printf("proposals: update %s: %v", id, err)
		writeError(w, http.StatusInternalServerError, "failed to load proposal")
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "proposal not found")
		return
	}

	// The id and creation stamp survive every update.
	rec.ID = existing.ID
	rec.CreatedAt = existing.CreatedAt
	rec.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	if rec.Status == "" {
		rec.Status = existing.Status
	}
	// Scopes may be empty only while the proposal is a draft.
	if rec.Status != proposal.StatusDraft {
		if err := rec.ValidateForExport(); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	if err := h.Store.Put(r.Context(), rec); err != nil {
		log.Printf("proposals: update %s: %v", id, err)
		writeError(w, http.StatusInternalServerError, "failed to save proposal")
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (h *Handlers) GetProposal(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	rec, ok, err := h.Store.Get(r.Context(), id)
	if err != nil {
		log.Printf("proposals: get %s: %v", id, err)
		writeError(w, http.StatusInternalServerError, "failed to load proposal")
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "proposal not found")
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (h *Handlers) ListProposals(w http.ResponseWriter, r *http.Request) {
	recs, err := h.Store.List(r.Context())
	if err != nil {
		log.Printf("proposals: list: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to list proposals")
		return
	}
	writeJSON(w, http.StatusOK, recs)
}
