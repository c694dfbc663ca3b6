// Package catalog loads the static service-details lookup that enrichment
// fills scope gaps from. The data is read-only configuration.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

// Entry holds the canonical text for one service type.
type Entry struct {
	DisplayName     string   `json:"displayName"`
	Description     string   `json:"description"`
	Deliverables    []string `json:"deliverables"`
	Timeline        string   `json:"timeline"`
	Targets         string   `json:"targets"`
	TestingApproach string   `json:"testingApproach"`
	FocusAreas      string   `json:"focusAreas"`
	Methodology     string   `json:"methodology"`
	OutOfScope      string   `json:"outOfScope"`
}

// Catalog is an immutable serviceType -> Entry lookup.
type Catalog struct {
	entries map[string]Entry
}

func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read service catalog: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Catalog, error) {
	entries := make(map[string]Entry)
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse service catalog: %w", err)
	}
	return &Catalog{entries: entries}, nil
}

func (c *Catalog) Lookup(serviceType string) (Entry, bool) {
	e, ok := c.entries[serviceType]
	return e, ok
}

func (c *Catalog) Len() int { return len(c.entries) }
