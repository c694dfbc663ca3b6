// Package gofpdf renders an enriched proposal into a PDF by direct structured
// construction: fixed section order, no intermediate templates.
package gofpdf

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/atharva-sardesai/proposal/internal/domain/proposal"
)

type Generator struct {
	// BrandingPath points to an optional logo image embedded as a page
	// header. A missing or unreadable file never fails the render.
	BrandingPath string
}

func New(brandingPath string) *Generator {
	return &Generator{BrandingPath: brandingPath}
}

func (g *Generator) Generate(data proposal.RenderData) ([]byte, error) {
	rec := data.Record
	title := proposal.Title(data.Scopes)

	doc := gofpdf.New("P", "mm", "A4", "")
	tr := doc.UnicodeTranslatorFromDescriptor("")
	doc.SetTitle(title, false)
	doc.SetAutoPageBreak(true, 22)

	branding := g.brandingFile()
	doc.SetHeaderFunc(func() {
		if branding == "" {
			return
		}
		doc.ImageOptions(branding, 165, 8, 35, 0, false, gofpdf.ImageOptions{ReadDpi: true}, 0, "")
		if err := doc.Error(); err != nil {
			log.Printf("proposal pdf: embed branding image: %v", err)
			doc.ClearError()
		}
	})
	footer := fmt.Sprintf("This proposal is from %s and includes our standard terms and conditions.", data.Provider.Name)
	doc.SetFooterFunc(func() {
		doc.SetY(-15)
		doc.SetFont("Helvetica", "I", 8)
		doc.CellFormat(0, 5, tr(footer), "", 0, "C", false, 0, "")
	})
	doc.AddPage()

	w := &writer{doc: doc, tr: tr}

	// Title section.
	doc.SetFont("Helvetica", "B", 16)
	doc.Cell(0, 8, tr(data.Provider.Name))
	doc.Ln(7)
	doc.SetFont("Helvetica", "", 10)
	doc.Cell(0, 5, tr(data.Provider.Contact))
	doc.Ln(10)
	doc.SetFont("Helvetica", "B", 20)
	doc.MultiCell(0, 9, tr(title), "", "L", false)
	doc.Ln(2)
	doc.SetFont("Helvetica", "", 11)
	doc.Cell(0, 6, tr("Prepared for: "+clientName(rec)))
	doc.Ln(6)
	doc.Cell(0, 6, "Date: "+time.Now().Format("January 2, 2006"))
	doc.Ln(10)

	// Company and engagement metadata.
	w.section("Client & Engagement")
	w.field("Company Name", proposal.ValueOr(rec.Company.Name))
	w.field("Address", proposal.ValueOr(rec.Company.Address))
	w.field("Engagement Type", proposal.ValueOr(proposal.EngagementTypeLabel(rec.Engagement.Type)))
	w.field("Project Dates", proposal.LongDate(rec.Dates.StartDate)+" to "+proposal.LongDate(rec.Dates.EndDate))
	doc.Ln(4)

	// One sub-section per scope; omitted entirely when there are no scopes.
	for _, s := range data.Scopes {
		w.section("Scope of Work: " + s.DisplayName)
		w.para(s.Description)
		w.field("Targets", s.Targets)
		w.field("Testing Approach", s.TestingApproach)
		w.field("Focus Areas", s.FocusAreas)
		w.field("Methodology", s.Methodology)
		w.field("Deliverables", s.Deliverables)
		w.field("Out of Scope", s.OutOfScope)
		w.subheading("Timeline")
		w.field("Start Date", proposal.LongDate(rec.Dates.StartDate))
		w.field("End Date", proposal.LongDate(rec.Dates.EndDate))
		w.field("Estimated Duration", s.Timeline)
		doc.Ln(4)
	}

	// Roles and responsibilities.
	w.section("Roles & Responsibilities")
	provider := data.Provider.Name
	w.bullet(fmt.Sprintf("%s will perform all engagement activities using qualified security professionals.", provider))
	w.bullet(fmt.Sprintf("%s will provide regular status updates and flag critical findings as soon as they are confirmed.", provider))
	w.bullet(fmt.Sprintf("%s will deliver all reports and agreed deliverables at the close of the engagement.", provider))
	w.bullet("The client will provide the access, documentation and points of contact required for the engagement.")
	if details := strings.TrimSpace(rec.Engagement.Details); details != "" {
		w.field("Additional Details", "")
		w.para(details)
	}
	doc.Ln(4)

	// Commercial terms.
	w.section("Commercial Terms")
	amount := proposal.Placeholder
	if strings.TrimSpace(rec.Financials.QuotedAmount) != "" {
		amount = proposal.FormatCurrency(rec.Financials.QuotedAmount, rec.Financials.Currency)
	}
	w.field("Quoted Amount", amount)
	w.field("Payment Terms", proposal.ValueOr(proposal.PaymentTermsLabel(rec.Financials.PaymentTerms)))
	w.bullet("A payment of 50% of the total project cost is required as an advance before commencing the work.")
	w.bullet("The remaining 50% is payable upon successful delivery of the assessment report and all agreed deliverables.")
	w.bullet("The advance payment must be cleared within 3 days of signing the agreement.")
	w.bullet("The final payment is to be made within 6 days of delivery of the final deliverables.")
	doc.Ln(4)

	// Compliance.
	if len(rec.Compliance.Requirements) > 0 || strings.TrimSpace(rec.Compliance.Details) != "" {
		w.section("Compliance Requirements")
		w.field("Requirements", proposal.ValueOr(strings.Join(rec.Compliance.Requirements, ", ")))
		if details := strings.TrimSpace(rec.Compliance.Details); details != "" {
			w.para(details)
		}
		doc.Ln(4)
	}

	// Contact.
	w.section("Contact")
	w.field("Contact Person", proposal.ValueOr(rec.Company.ContactName))
	w.field("Contact Email", proposal.ValueOr(rec.Company.ContactEmail))
	w.field("Contact Phone", proposal.ValueOr(rec.Company.ContactPhone))

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		log.Printf("proposal pdf: output failed: %v", err)
		return nil, err
	}
	return buf.Bytes(), nil
}

// brandingFile returns the branding path when the file is readable, "" when
// it should be skipped.
func (g *Generator) brandingFile() string {
	if g.BrandingPath == "" {
		return ""
	}
	if _, err := os.Stat(g.BrandingPath); err != nil {
		log.Printf("proposal pdf: branding image %s unavailable, rendering without it", g.BrandingPath)
		return ""
	}
	return g.BrandingPath
}

func clientName(rec proposal.Record) string {
	if v := strings.TrimSpace(rec.Company.Name); v != "" {
		return v
	}
	return "Client"
}

// writer bundles the document with its codepage translator so section helpers
// stay short.
type writer struct {
	doc *gofpdf.Fpdf
	tr  func(string) string
}

func (w *writer) section(title string) {
	w.doc.SetFont("Helvetica", "B", 13)
	w.doc.MultiCell(0, 7, w.tr(title), "", "L", false)
	w.doc.Ln(1)
}

func (w *writer) subheading(title string) {
	w.doc.SetFont("Helvetica", "B", 11)
	w.doc.Cell(0, 6, w.tr(title))
	w.doc.Ln(6)
}

func (w *writer) field(label, value string) {
	w.doc.SetFont("Helvetica", "B", 10)
	w.doc.Cell(45, 5, w.tr(label))
	w.doc.SetFont("Helvetica", "", 10)
	w.doc.MultiCell(0, 5, w.tr(value), "", "L", false)
	w.doc.Ln(1)
}

func (w *writer) para(text string) {
	w.doc.SetFont("Helvetica", "", 10)
	w.doc.MultiCell(0, 5, w.tr(text), "", "L", false)
	w.doc.Ln(2)
}

func (w *writer) bullet(text string) {
	w.doc.SetFont("Helvetica", "", 10)
	w.doc.Cell(6, 5, w.tr("•"))
	w.doc.MultiCell(0, 5, w.tr(text), "", "L", false)
	w.doc.Ln(1)
}
