// Package proposal holds the proposal aggregate and the logic that turns it
// into display-ready content: boundary normalization, export validation,
// catalog enrichment and text formatting.
package proposal

import (
	"encoding/json"
	"errors"
	"strings"
)

const (
	StatusDraft    = "draft"
	StatusSent     = "sent"
	StatusViewed   = "viewed"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

type Company struct {
	Name         string `json:"name"`
	Address      string `json:"address"`
	ContactName  string `json:"contactName"`
	ContactEmail string `json:"contactEmail"`
	ContactPhone string `json:"contactPhone"`
}

type Financials struct {
	QuotedAmount string `json:"quotedAmount"`
	PaymentTerms string `json:"paymentTerms"`
	Currency     string `json:"currency"`
}

type Engagement struct {
	Type    string `json:"type"`
	Details string `json:"details,omitempty"`
}

type Compliance struct {
	Requirements []string `json:"requirements,omitempty"`
	Details      string   `json:"details,omitempty"`
}

type Dates struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// Scope is one service line-item. Every field past ServiceType is optional;
// gaps are filled from the service catalog at render time.
type Scope struct {
	ServiceType     string     `json:"serviceType"`
	Description     string     `json:"description,omitempty"`
	Deliverables    StringList `json:"deliverables,omitempty"`
	Timeline        string     `json:"timeline,omitempty"`
	Targets         string     `json:"targets,omitempty"`
	TestingApproach string     `json:"testingApproach,omitempty"`
	FocusAreas      string     `json:"focusAreas,omitempty"`
	Methodology     string     `json:"methodology,omitempty"`
	OutOfScope      string     `json:"outOfScope,omitempty"`
}

// Record is the aggregate built by the wizard and consumed read-only by the
// document renderer.
type Record struct {
	ID        string `json:"id,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
	Status    string `json:"status,omitempty"`

	Company    Company    `json:"company"`
	Dates      Dates      `json:"dates"`
	Engagement Engagement `json:"engagement"`
	Financials Financials `json:"financials"`
	Compliance Compliance `json:"compliance"`

	Scopes []Scope `json:"scopes,omitempty"`

	// LegacyScope accepts older payloads that carry a single "scope" object
	// instead of a "scopes" list. Normalize folds it into Scopes.
	LegacyScope *Scope `json:"scope,omitempty"`
}

// StringList unmarshals from either a JSON array of strings or a single
// string, so legacy "deliverables" payloads decode into the canonical list
// shape. It always marshals as an array.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*l = list
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	if single == "" {
		*l = nil
		return nil
	}
	*l = StringList{single}
	return nil
}

// Normalize resolves the record to its canonical shape. It runs once at the
// decode boundary; nothing downstream type-guards.
func (r *Record) Normalize() {
	if r.LegacyScope != nil {
		if len(r.Scopes) == 0 {
			r.Scopes = []Scope{*r.LegacyScope}
		}
		r.LegacyScope = nil
	}
}

// ErrNoScopes means the record cannot leave draft state.
var ErrNoScopes = errors.New("proposal needs at least one scope with a service type")

// ValidateForExport enforces the non-draft invariant: at least one scope with
// a non-empty serviceType.
func (r *Record) ValidateForExport() error {
	for _, s := range r.Scopes {
		if strings.TrimSpace(s.ServiceType) != "" {
			return nil
		}
	}
	return ErrNoScopes
}
