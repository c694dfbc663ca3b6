package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/atharva-sardesai/proposal/internal/domain/proposal"
)

type emailRequest struct {
	Email    string          `json:"email"`
	Proposal proposal.Record `json:"proposal"`
}

// SendProposalEmail is a delivery mock: it validates and logs the request but
// sends nothing.
func (h *Handlers) SendProposalEmail(w http.ResponseWriter, r *http.Request) {
	var req emailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad request")
		return
	}
	if strings.TrimSpace(req.Email) == "" {
		writeError(w, http.StatusBadRequest, "email is required")
		return
	}
	log.Printf("email: proposal=%s to=%s (delivery mocked)", req.Proposal.ID, req.Email)
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
