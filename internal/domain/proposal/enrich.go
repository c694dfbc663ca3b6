package proposal

import (
	"strings"

	"github.com/atharva-sardesai/proposal/internal/domain/proposal/catalog"
)

// Placeholder rendered for any field with neither a user value nor a catalog
// value.
const Placeholder = "N/A"

// EnrichedScope is a fully populated, display-ready scope. Every field is a
// single string; deliverables lists are joined with ", ".
type EnrichedScope struct {
	ServiceType     string
	DisplayName     string
	Description     string
	Deliverables    string
	Timeline        string
	Targets         string
	TestingApproach string
	FocusAreas      string
	Methodology     string
	OutOfScope      string
}

// EnrichScopes merges each scope against the catalog independently. A
// user-supplied non-empty value (after trimming) always wins over the catalog;
// the catalog fills gaps; anything still empty becomes the placeholder.
// Unknown service types are not an error. Duplicate service types are
// permitted and not merged.
func EnrichScopes(scopes []Scope, cat *catalog.Catalog) []EnrichedScope {
	if len(scopes) == 0 {
		return nil
	}
	out := make([]EnrichedScope, 0, len(scopes))
	for _, s := range scopes {
		var entry catalog.Entry
		if cat != nil {
			entry, _ = cat.Lookup(s.ServiceType)
		}
		out = append(out, EnrichedScope{
			ServiceType:     s.ServiceType,
			DisplayName:     displayName(s.ServiceType, entry),
			Description:     pick(s.Description, entry.Description),
			Deliverables:    pick(joinList(s.Deliverables), strings.Join(entry.Deliverables, ", ")),
			Timeline:        pick(s.Timeline, entry.Timeline),
			Targets:         pick(s.Targets, entry.Targets),
			TestingApproach: pick(s.TestingApproach, entry.TestingApproach),
			FocusAreas:      pick(s.FocusAreas, entry.FocusAreas),
			Methodology:     pick(s.Methodology, entry.Methodology),
			OutOfScope:      pick(s.OutOfScope, entry.OutOfScope),
		})
	}
	return out
}

// pick prefers the trimmed user value, then the catalog value, then the
// placeholder. Enrichment never overwrites user input.
func pick(user, fromCatalog string) string {
	if v := strings.TrimSpace(user); v != "" {
		return v
	}
	if v := strings.TrimSpace(fromCatalog); v != "" {
		return v
	}
	return Placeholder
}

func joinList(items []string) string {
	kept := make([]string, 0, len(items))
	for _, it := range items {
		if v := strings.TrimSpace(it); v != "" {
			kept = append(kept, v)
		}
	}
	return strings.Join(kept, ", ")
}

func displayName(serviceType string, entry catalog.Entry) string {
	if name := ServiceTypeLabel(serviceType); name != "" {
		return name
	}
	if v := strings.TrimSpace(entry.DisplayName); v != "" {
		return v
	}
	if v := strings.TrimSpace(serviceType); v != "" {
		return v
	}
	return Placeholder
}
