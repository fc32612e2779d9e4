package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/jokobim12/tefanote/internal/domain"
)

// Stats is the aggregate view for one selected date plus the all-time
// totals. Everything here is recomputed from current state on every call;
// nothing is cached.
type Stats struct {
	Date    string
	IsToday bool

	// DateIncome is live income on the selected date, plus the archive's
	// today bucket when (and only when) the selected date is today and
	// the bucket tracks it. Past dates get live records only once their
	// transactions are archived; that asymmetry is by contract.
	DateIncome    decimal.Decimal
	DateLiveCount int

	// TotalIncome and TotalCount span all time: every live record plus
	// everything ever folded into the archive, regardless of the
	// selected date.
	TotalIncome decimal.Decimal
	TotalCount  int64
}

// StatsUseCase computes date-scoped and all-time aggregates from the live
// ledger and the archive snapshot.
type StatsUseCase struct {
	ledger LedgerView
}

// NewStatsUseCase creates a new StatsUseCase.
func NewStatsUseCase(ledger LedgerView) *StatsUseCase {
	return &StatsUseCase{ledger: ledger}
}

// StatsFor returns the aggregates for the given YYYY-MM-DD date. An empty
// date means today.
func (uc *StatsUseCase) StatsFor(selected string) Stats {
	today := uc.ledger.Today()
	if selected == "" {
		selected = today
	}

	live := uc.ledger.RecordsForDay(selected)
	all := uc.ledger.Records()
	snap := uc.ledger.Snapshot()

	isToday := selected == today

	dateIncome := sumValues(live)
	if isToday {
		dateIncome = dateIncome.Add(snap.BucketAmountFor(selected))
	}

	return Stats{
		Date:          selected,
		IsToday:       isToday,
		DateIncome:    dateIncome,
		DateLiveCount: len(live),
		TotalIncome:   sumValues(all).Add(snap.TotalIncome.Decimal),
		TotalCount:    int64(len(all)) + snap.TotalCount,
	}
}

func sumValues(records []domain.Record) decimal.Decimal {
	sum := decimal.Zero
	for _, r := range records {
		sum = sum.Add(r.Value())
	}
	return sum
}
