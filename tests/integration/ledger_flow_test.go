package integration

import (
	"context"
	"testing"
	"time"

	"github.com/jokobim12/tefanote/internal/domain"
	"github.com/jokobim12/tefanote/internal/usecase"
	"github.com/jokobim12/tefanote/tests/testutil"
)

func TestLedgerSurvivesRestart(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	stack := testutil.NewStack(t, "2024-06-01T10:00:00Z")

	stack.Ledger.Append(ctx, []domain.Record{
		testutil.SimpleRecord("2024-06-01T08:00:00Z", "Fotocopy", 250, 8),
		testutil.GroupRecord("2024-06-01T09:00:00Z", "Ibu Sari",
			testutil.Line("Print Warna", 1000, 3),
			testutil.Line("Jilid Spiral", 5000, 1),
		),
	})

	records := stack.Ledger.Records()
	if _, ok := stack.Ledger.Remove(ctx, records[0].ID); !ok {
		t.Fatalf("remove failed")
	}

	reopened := testutil.Reopen(t, stack.Path, "2024-06-01T12:00:00Z")

	if got := len(reopened.Ledger.Records()); got != 1 {
		t.Fatalf("expected 1 live record after restart, got %d", got)
	}

	stats := reopened.Stats.StatsFor("")
	if !stats.TotalIncome.Equal(domain.NewAmount(10000).Decimal) {
		t.Fatalf("total income after restart = %s, want 10000", stats.TotalIncome)
	}
	if !stats.DateIncome.Equal(domain.NewAmount(10000).Decimal) {
		t.Fatalf("date income after restart = %s, want 10000", stats.DateIncome)
	}
	if stats.TotalCount != 2 {
		t.Fatalf("total count after restart = %d, want 2", stats.TotalCount)
	}
}

func TestArchiveBucketRollsOverAcrossRestart(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	stack := testutil.NewStack(t, "2024-06-01T10:00:00Z")

	stack.Ledger.Append(ctx, []domain.Record{
		testutil.SimpleRecord("2024-06-01T08:00:00Z", "Fotocopy", 250, 8),
	})
	stack.Ledger.Clear(ctx)

	// Next day, same database.
	reopened := testutil.Reopen(t, stack.Path, "2024-06-02T08:00:00Z")

	today := reopened.Stats.StatsFor("")
	if !today.DateIncome.IsZero() {
		t.Fatalf("yesterday's bucket leaked into today: %s", today.DateIncome)
	}

	yesterday := reopened.Stats.StatsFor("2024-06-01")
	if !yesterday.DateIncome.IsZero() {
		t.Fatalf("archived value resurfaced for a past date: %s", yesterday.DateIncome)
	}

	if !today.TotalIncome.Equal(domain.NewAmount(2000).Decimal) {
		t.Fatalf("all-time income lost across the day boundary: %s", today.TotalIncome)
	}
}

func TestListingAgainstPersistedState(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	stack := testutil.NewStack(t, "2024-06-01T10:00:00Z")

	base := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	var batch []domain.Record
	for i := 0; i < 7; i++ {
		batch = append(batch, testutil.SimpleRecord(
			base.Add(time.Duration(i)*time.Minute).Format(time.RFC3339),
			"Fotocopy", 250, int64(i+1),
		))
	}
	stack.Ledger.Append(ctx, batch)

	reopened := testutil.Reopen(t, stack.Path, "2024-06-01T12:00:00Z")

	out := reopened.List.List(usecase.ListInput{
		Sort: usecase.SortByDate,
		Dir:  usecase.Ascending,
		Page: 2,
	})
	if out.TotalPages != 2 || len(out.Items) != 2 {
		t.Fatalf("page 2: %d pages, %d items", out.TotalPages, len(out.Items))
	}

	export := reopened.List.Export(usecase.ListInput{})
	if !export.Total.Equal(domain.NewAmount(7000).Decimal) {
		t.Fatalf("export total = %s, want 7000", export.Total)
	}
}

func TestPresetsPersistAcrossRestart(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	stack := testutil.NewStack(t, "2024-06-01T10:00:00Z")

	seeded, err := stack.Presets.List(ctx)
	if err != nil {
		t.Fatalf("seed presets: %v", err)
	}

	added, err := stack.Presets.Add(ctx, domain.PresetItem{
		Name:  "Laminating A4",
		Price: domain.NewAmount(4000),
	})
	if err != nil {
		t.Fatalf("add preset: %v", err)
	}

	reopened := testutil.Reopen(t, stack.Path, "2024-06-02T08:00:00Z")

	presets, err := reopened.Presets.List(ctx)
	if err != nil {
		t.Fatalf("list presets: %v", err)
	}
	if len(presets) != len(seeded)+1 {
		t.Fatalf("expected %d presets after restart, got %d", len(seeded)+1, len(presets))
	}

	found := false
	for _, p := range presets {
		if p.ID == added.ID && p.Name == "Laminating A4" {
			found = true
		}
	}
	if !found {
		t.Fatalf("added preset missing after restart")
	}
}
