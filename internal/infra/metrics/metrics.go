// Package metrics exposes the service's Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DocumentsGenerated counts render attempts by mode (export, preview,
// download) and status (ok, error).
var DocumentsGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "proposal_documents_generated_total",
	Help: "Proposal documents rendered, by mode and status.",
}, []string{"mode", "status"})

// ProposalsCreated counts proposal records created.
var ProposalsCreated = promauto.NewCounter(prometheus.CounterOpts{
	Name: "proposal_records_created_total",
	Help: "Proposal records created.",
})
