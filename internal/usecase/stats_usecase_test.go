package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jokobim12/tefanote/internal/domain"
	"github.com/jokobim12/tefanote/internal/usecase"
	"github.com/jokobim12/tefanote/internal/usecase/mocks"
)

func zerologNop() zerolog.Logger { return zerolog.Nop() }

func mustParse(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("parse %q: %v", value, err)
	}
	return ts
}

// TestStatsDeleteScenario walks the end-to-end delete flow: a record's
// value must move from live income into the archive without ever leaving
// the displayed totals.
func TestStatsDeleteScenario(t *testing.T) {
	uc := newLedger(t, mocks.NewMockStateRepository())
	stats := usecase.NewStatsUseCase(uc)

	uc.Append(context.Background(), []domain.Record{
		groupRecord("g-1", "2024-06-01T08:00:00Z", 10000),
		{ID: "s-1", Kind: domain.KindSimple, Date: "2024-06-01T09:00:00Z", ItemName: "Print", Price: domain.NewAmount(5000), Qty: 2},
	})

	before := stats.StatsFor("2024-06-01")
	if !before.TotalIncome.Equal(decimal.NewFromInt(20000)) {
		t.Fatalf("total income before delete = %s, want 20000", before.TotalIncome)
	}

	uc.Remove(context.Background(), "s-1")

	after := stats.StatsFor("2024-06-01")
	if !after.TotalIncome.Equal(decimal.NewFromInt(20000)) {
		t.Errorf("total income after delete = %s, want 20000", after.TotalIncome)
	}
	if !after.DateIncome.Equal(decimal.NewFromInt(20000)) {
		t.Errorf("date income = %s, want 20000 (10000 live + 10000 bucket)", after.DateIncome)
	}
	if after.DateLiveCount != 1 {
		t.Errorf("live count for date = %d, want 1", after.DateLiveCount)
	}
	if after.TotalCount != 2 {
		t.Errorf("total count = %d, want 2 (1 live + 1 archived)", after.TotalCount)
	}
}

// TestStatsArchiveAsymmetry checks the deliberate asymmetry: the global
// total always includes the archive, a date-scoped figure includes the
// bucket only for today.
func TestStatsArchiveAsymmetry(t *testing.T) {
	uc := newLedger(t, mocks.NewMockStateRepository())
	stats := usecase.NewStatsUseCase(uc)

	uc.Append(context.Background(), []domain.Record{
		groupRecord("old", "2024-05-28T08:00:00Z", 4000),
		groupRecord("today", "2024-06-01T08:00:00Z", 10000),
	})
	uc.Remove(context.Background(), "old")
	uc.Remove(context.Background(), "today")

	t.Run("past date shows live records only", func(t *testing.T) {
		got := stats.StatsFor("2024-05-28")
		if !got.DateIncome.IsZero() {
			t.Errorf("date income for past date = %s, want 0", got.DateIncome)
		}
		if !got.TotalIncome.Equal(decimal.NewFromInt(14000)) {
			t.Errorf("total income = %s, want 14000", got.TotalIncome)
		}
	})

	t.Run("today includes the bucket", func(t *testing.T) {
		got := stats.StatsFor("2024-06-01")
		if !got.IsToday {
			t.Fatal("expected 2024-06-01 to be today")
		}
		if !got.DateIncome.Equal(decimal.NewFromInt(10000)) {
			t.Errorf("date income for today = %s, want 10000", got.DateIncome)
		}
	})
}

// TestStatsDayRollover: once the wall clock advances past the bucket's
// date, the bucket no longer contributes to the new day.
func TestStatsDayRollover(t *testing.T) {
	repo := mocks.NewMockStateRepository()
	clock := mocks.NewMockClock("2024-01-01T20:00:00Z")

	uc := usecase.NewLedgerUseCase(repo, mocks.NewMockIDGenerator(), clock, zerologNop())
	if err := uc.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	stats := usecase.NewStatsUseCase(uc)

	uc.Append(context.Background(), []domain.Record{groupRecord("a", "2024-01-01T10:00:00Z", 500)})
	uc.Remove(context.Background(), "a")

	if got := stats.StatsFor("2024-01-01").DateIncome; !got.Equal(decimal.NewFromInt(500)) {
		t.Fatalf("bucket not counted on its own day: %s", got)
	}

	// Midnight passes.
	clock.Instant = mustParse(t, "2024-01-02T08:00:00Z")

	got := stats.StatsFor("2024-01-02")
	if !got.DateIncome.IsZero() {
		t.Errorf("stale bucket leaked into new day: %s", got.DateIncome)
	}
	if !got.TotalIncome.Equal(decimal.NewFromInt(500)) {
		t.Errorf("rolled-over value left the global total: %s", got.TotalIncome)
	}

	// The bucket's own date is no longer today either, so even selecting
	// it yields live records only.
	if got := stats.StatsFor("2024-01-01").DateIncome; !got.IsZero() {
		t.Errorf("past bucket date still contributes: %s", got)
	}
}

func TestStatsEmptyDateMeansToday(t *testing.T) {
	uc := newLedger(t, mocks.NewMockStateRepository())
	stats := usecase.NewStatsUseCase(uc)

	got := stats.StatsFor("")
	if got.Date != "2024-06-01" {
		t.Errorf("date = %q, want today", got.Date)
	}
	if !got.IsToday {
		t.Error("expected IsToday")
	}
}
