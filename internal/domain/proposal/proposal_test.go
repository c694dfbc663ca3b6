package proposal

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord_UnmarshalCanonical(t *testing.T) {
	body := `{
		"company": {"name": "Acme", "contactEmail": "cto@acme.test"},
		"financials": {"quotedAmount": "15000", "paymentTerms": "net30", "currency": "USD"},
		"engagement": {"type": "one-time"},
		"dates": {"startDate": "2026-09-01", "endDate": "2026-10-01"},
		"scopes": [{"serviceType": "vapt", "deliverables": ["Report", "Retest"]}]
	}`
	var rec Record
	require.NoError(t, json.Unmarshal([]byte(body), &rec))
	rec.Normalize()

	require.Len(t, rec.Scopes, 1)
	assert.Equal(t, "vapt", rec.Scopes[0].ServiceType)
	assert.Equal(t, StringList{"Report", "Retest"}, rec.Scopes[0].Deliverables)
}

func TestRecord_NormalizeLegacySingleScope(t *testing.T) {
	body := `{
		"company": {"name": "Acme"},
		"engagement": {"type": "ongoing"},
		"financials": {"quotedAmount": "1", "paymentTerms": "net15", "currency": "USD"},
		"dates": {"startDate": "", "endDate": ""},
		"scope": {"serviceType": "soc2-type2", "deliverables": "Single report"}
	}`
	var rec Record
	require.NoError(t, json.Unmarshal([]byte(body), &rec))
	rec.Normalize()

	require.Len(t, rec.Scopes, 1)
	assert.Equal(t, "soc2-type2", rec.Scopes[0].ServiceType)
	// A bare string folds into the canonical list shape.
	assert.Equal(t, StringList{"Single report"}, rec.Scopes[0].Deliverables)
	assert.Nil(t, rec.LegacyScope)
}

func TestRecord_NormalizePrefersScopesListOverLegacy(t *testing.T) {
	rec := Record{
		Scopes:      []Scope{{ServiceType: "vapt"}},
		LegacyScope: &Scope{ServiceType: "soc2-type1"},
	}
	rec.Normalize()

	require.Len(t, rec.Scopes, 1)
	assert.Equal(t, "vapt", rec.Scopes[0].ServiceType)
	assert.Nil(t, rec.LegacyScope)
}

func TestStringList_MarshalsAsArray(t *testing.T) {
	out, err := json.Marshal(Scope{ServiceType: "vapt", Deliverables: StringList{"a", "b"}})
	require.NoError(t, err)
	assert.Contains(t, string(out), `"deliverables":["a","b"]`)
}

func TestValidateForExport(t *testing.T) {
	tests := []struct {
		name    string
		scopes  []Scope
		wantErr bool
	}{
		{"no scopes", nil, true},
		{"empty service type", []Scope{{ServiceType: "  "}}, true},
		{"one valid scope", []Scope{{ServiceType: "vapt"}}, false},
		{"valid among invalid", []Scope{{ServiceType: ""}, {ServiceType: "vapt"}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := Record{Scopes: tt.scopes}
			err := rec.ValidateForExport()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrNoScopes)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
