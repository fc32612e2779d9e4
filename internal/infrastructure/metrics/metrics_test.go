package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestStateSaveCounters(t *testing.T) {
	StateSaves.Reset()

	StateSaves.WithLabelValues("tefanote:transactions", OutcomeOK).Inc()
	StateSaves.WithLabelValues("tefanote:transactions", OutcomeOK).Inc()
	StateSaves.WithLabelValues("tefanote:archived_stats", OutcomeError).Inc()

	ok := StateSaves.WithLabelValues("tefanote:transactions", OutcomeOK)
	if got := testutil.ToFloat64(ok); got != 2 {
		t.Fatalf("expected 2 ok saves, got %v", got)
	}

	failed := StateSaves.WithLabelValues("tefanote:archived_stats", OutcomeError)
	if got := testutil.ToFloat64(failed); got != 1 {
		t.Fatalf("expected 1 failed save, got %v", got)
	}
}

func TestLoadFallbackCounter(t *testing.T) {
	StateLoadFallbacks.Reset()

	StateLoadFallbacks.WithLabelValues("tefanote:presets").Inc()

	if got := testutil.ToFloat64(StateLoadFallbacks.WithLabelValues("tefanote:presets")); got != 1 {
		t.Fatalf("expected 1 fallback, got %v", got)
	}
}
