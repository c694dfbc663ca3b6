package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/atharva-sardesai/proposal/internal/domain/proposal"
	"github.com/atharva-sardesai/proposal/internal/infra/metrics"
)

// ExportProposal renders the posted record and returns it as a download.
func (h *Handlers) ExportProposal(w http.ResponseWriter, r *http.Request) {
	h.renderBody(w, r, "export", "attachment")
}

// PreviewProposal renders the posted record for in-browser display.
func (h *Handlers) PreviewProposal(w http.ResponseWriter, r *http.Request) {
	h.renderBody(w, r, "preview", "inline")
}

// DownloadProposal renders a stored record by id.
func (h *Handlers) DownloadProposal(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	rec, ok, err := h.Store.Get(r.Context(), id)
	if err != nil {
		metrics.DocumentsGenerated.WithLabelValues("download", "error").Inc()
		writeError(w, http.StatusInternalServerError, "failed to load proposal")
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "proposal not found")
		return
	}
	h.render(w, rec, "download", "attachment")
}

func (h *Handlers) renderBody(w http.ResponseWriter, r *http.Request, mode, disposition string) {
	var rec proposal.Record
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		// Malformed bodies surface with the decode error's message.
		metrics.DocumentsGenerated.WithLabelValues(mode, "error").Inc()
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.render(w, rec, mode, disposition)
}

func (h *Handlers) render(w http.ResponseWriter, rec proposal.Record, mode, disposition string) {
	res := h.Docs.Generate(rec)
	if !res.Success {
		metrics.DocumentsGenerated.WithLabelValues(mode, "error").Inc()
		writeError(w, http.StatusInternalServerError, res.Error)
		return
	}
	metrics.DocumentsGenerated.WithLabelValues(mode, "ok").Inc()

	w.Header().Set("Content-Type", res.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("%s; filename=%q", disposition, res.Filename))
	w.WriteHeader(http.StatusOK)
	w.Write(res.Buffer)
}
