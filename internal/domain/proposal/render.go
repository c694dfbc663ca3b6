package proposal

// Provider identifies the issuing side of the proposal.
type Provider struct {
	Name    string
	Contact string
}

// RenderData is everything a document generator needs: the record, its
// enriched scopes and the provider identity.
type RenderData struct {
	Record   Record
	Scopes   []EnrichedScope
	Provider Provider
}
