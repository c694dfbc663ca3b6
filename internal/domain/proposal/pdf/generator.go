package pdf

import "github.com/atharva-sardesai/proposal/internal/domain/proposal"

// MIMEType of the generated document.
const MIMEType = "application/pdf"

// Extension of the generated document, without the dot.
const Extension = "pdf"

type Generator interface {
	Generate(data proposal.RenderData) ([]byte, error)
}
