package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atharva-sardesai/proposal/internal/app/config"
	"github.com/atharva-sardesai/proposal/internal/domain/proposal"
	"github.com/atharva-sardesai/proposal/internal/domain/proposal/document"
	pdfgen "github.com/atharva-sardesai/proposal/internal/domain/proposal/pdf/gofpdf"
	"github.com/atharva-sardesai/proposal/internal/infra/store"
)

const testCatalog = `{
	"vapt": {
		"displayName": "VAPT",
		"description": "Catalog description.",
		"deliverables": ["Report"],
		"timeline": "2 weeks"
	}
}`

func testRouter(t *testing.T) http.Handler {
	t.Helper()
	catalogPath := filepath.Join(t.TempDir(), "service-details.json")
	require.NoError(t, os.WriteFile(catalogPath, []byte(testCatalog), 0o644))

	cfg := config.Default()
	docs := document.New(catalogPath, pdfgen.New(""), proposal.Provider{Name: "Seccomply", Contact: "Shivani Tikadia, CEO"})
	return NewRouter(cfg, store.NewMemory(), docs)
}

const proposalBody = `{
	"company": {"name": "Acme", "contactEmail": "cto@acme.test"},
	"financials": {"quotedAmount": "15000", "paymentTerms": "net30", "currency": "USD"},
	"engagement": {"type": "one-time"},
	"dates": {"startDate": "2026-09-01", "endDate": "2026-10-01"},
	"scopes": [{"serviceType": "vapt"}]
}`

func doJSON(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestHealth(t *testing.T) {
	rr := doJSON(t, testRouter(t), http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ok", rr.Body.String())
}

func TestCreateGetListProposal(t *testing.T) {
	router := testRouter(t)

	rr := doJSON(t, router, http.MethodPost, "/v1/proposals", proposalBody)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var created map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	id := created["id"]
	assert.True(t, strings.HasPrefix(id, "PROP-"), "id %q", id)

	rr = doJSON(t, router, http.MethodGet, "/v1/proposals/"+id, "")
	require.Equal(t, http.StatusOK, rr.Code)
	var rec proposal.Record
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &rec))
	assert.Equal(t, id, rec.ID)
	assert.Equal(t, proposal.StatusDraft, rec.Status)
	assert.Equal(t, "Acme", rec.Company.Name)
	assert.NotEmpty(t, rec.CreatedAt)

	rr = doJSON(t, router, http.MethodGet, "/v1/proposals", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var recs []proposal.Record
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &recs))
	assert.Len(t, recs, 1)
}

func TestGetProposal_NotFound(t *testing.T) {
	rr := doJSON(t, testRouter(t), http.MethodGet, "/v1/proposals/PROP-NOPE", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "error")
}

func TestUpdateProposal_KeepsIDAndCreatedAt(t *testing.T) {
	router := testRouter(t)

	rr := doJSON(t, router, http.MethodPost, "/v1/proposals", proposalBody)
	require.Equal(t, http.StatusCreated, rr.Code)
	var created map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	id := created["id"]

	rr = doJSON(t, router, http.MethodGet, "/v1/proposals/"+id, "")
	var before proposal.Record
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &before))

	updated := strings.Replace(proposalBody, `"name": "Acme"`, `"name": "Acme Ltd"`, 1)
	rr = doJSON(t, router, http.MethodPut, "/v1/proposals/"+id, updated)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var after proposal.Record
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &after))
	assert.Equal(t, id, after.ID)
	assert.Equal(t, before.CreatedAt, after.CreatedAt)
	assert.Equal(t, "Acme Ltd", after.Company.Name)
}

func TestUpdateProposal_NonDraftNeedsScope(t *testing.T) {
	router := testRouter(t)

	rr := doJSON(t, router, http.MethodPost, "/v1/proposals", proposalBody)
	var created map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))

	noScopes := `{
		"status": "sent",
		"company": {"name": "Acme"},
		"financials": {"quotedAmount": "1", "paymentTerms": "net15", "currency": "USD"},
		"engagement": {"type": "one-time"},
		"dates": {"startDate": "", "endDate": ""}
	}`
	rr = doJSON(t, router, http.MethodPut, "/v1/proposals/"+created["id"], noScopes)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestExportProposal(t *testing.T) {
	rr := doJSON(t, testRouter(t), http.MethodPost, "/v1/proposals/export", proposalBody)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	assert.Equal(t, "application/pdf", rr.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="Proposal-Acme.pdf"`, rr.Header().Get("Content-Disposition"))
	assert.Equal(t, "%PDF-", rr.Body.String()[:5])
}

func TestPreviewProposal_Inline(t *testing.T) {
	rr := doJSON(t, testRouter(t), http.MethodPost, "/v1/proposals/preview", proposalBody)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, strings.HasPrefix(rr.Header().Get("Content-Disposition"), "inline;"))
}

func TestExportProposal_MalformedBody(t *testing.T) {
	rr := doJSON(t, testRouter(t), http.MethodPost, "/v1/proposals/export", "{not json")
	assert.Equal(t, http.StatusInternalServerError, rr.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.NotEmpty(t, body["error"])
}

func TestDownloadStoredProposal(t *testing.T) {
	router := testRouter(t)

	rr := doJSON(t, router, http.MethodPost, "/v1/proposals", proposalBody)
	var created map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))

	rr = doJSON(t, router, http.MethodGet, "/v1/proposals/"+created["id"]+"/document", "")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, "application/pdf", rr.Header().Get("Content-Type"))

	rr = doJSON(t, router, http.MethodGet, "/v1/proposals/PROP-NOPE/document", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestSendProposalEmail(t *testing.T) {
	router := testRouter(t)

	rr := doJSON(t, router, http.MethodPost, "/v1/proposals/email",
		`{"email": "client@example.com", "proposal": `+proposalBody+`}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"success": true}`, rr.Body.String())

	rr = doJSON(t, router, http.MethodPost, "/v1/proposals/email", `{"email": ""}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCORSPreflight(t *testing.T) {
	rr := doJSON(t, testRouter(t), http.MethodOptions, "/v1/proposals", "")
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
}
