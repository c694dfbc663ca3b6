// Package document orchestrates the export pipeline: catalog load, scope
// enrichment, rendering. Failures come back as a structured Result, never as
// a panic across the transport boundary.
package document

import (
	"fmt"
	"log"
	"strings"

	"github.com/atharva-sardesai/proposal/internal/domain/proposal"
	"github.com/atharva-sardesai/proposal/internal/domain/proposal/catalog"
	"github.com/atharva-sardesai/proposal/internal/domain/proposal/pdf"
)

// Result mirrors the renderer contract: either a binary document with its
// content metadata, or an error message.
type Result struct {
	Success     bool
	Buffer      []byte
	ContentType string
	Filename    string
	Error       string
}

type Service struct {
	CatalogPath string
	Generator   pdf.Generator
	Provider    proposal.Provider
}

func New(catalogPath string, gen pdf.Generator, provider proposal.Provider) *Service {
	return &Service{CatalogPath: catalogPath, Generator: gen, Provider: provider}
}

// Generate renders one proposal. The catalog is read per call so a read
// failure stays local to this render.
func (s *Service) Generate(rec proposal.Record) Result {
	rec.Normalize()

	cat, err := catalog.Load(s.CatalogPath)
	if err != nil {
		log.Printf("document: %v", err)
		return Result{Success: false, Error: err.Error()}
	}

	data := proposal.RenderData{
		Record:   rec,
		Scopes:   proposal.EnrichScopes(rec.Scopes, cat),
		Provider: s.Provider,
	}
	buf, err := s.Generator.Generate(data)
	if err != nil {
		log.Printf("document: render proposal %q: %v", rec.ID, err)
		return Result{Success: false, Error: fmt.Sprintf("generate document: %v", err)}
	}

	name := strings.TrimSpace(rec.Company.Name)
	if name == "" {
		name = "Client"
	}
	return Result{
		Success:     true,
		Buffer:      buf,
		ContentType: pdf.MIMEType,
		Filename:    fmt.Sprintf("Proposal-%s.%s", name, pdf.Extension),
	}
}
