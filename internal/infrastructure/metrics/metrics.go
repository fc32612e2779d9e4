// Package metrics holds the application-level Prometheus metrics.
// Request-level HTTP metrics live in the router middleware; these cover
// the state backend and the assistant's upstream API.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// StateSaves counts writes of the persisted state documents,
	// labelled by document key and outcome.
	StateSaves = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "state_document_saves_total",
			Help: "Total state document writes by document and outcome",
		},
		[]string{"document", "outcome"},
	)

	// StateLoadFallbacks counts loads that fell back to the empty
	// default because the stored document did not parse.
	StateLoadFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "state_document_load_fallbacks_total",
			Help: "Total state document loads discarded as unparseable",
		},
		[]string{"document"},
	)

	// AssistantChats counts chat completions against the upstream API.
	AssistantChats = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_chats_total",
			Help: "Total assistant chat completions by outcome",
		},
		[]string{"outcome"},
	)
)

// Outcome label values.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)
