package domain

import "github.com/shopspring/decimal"

// DayBucket is the single rolling today-scoped slot inside the archive
// snapshot. It tracks archived value for exactly one calendar date; when
// the archive is next touched on a different date the stored amount is
// discarded, not carried over.
type DayBucket struct {
	Date   string `json:"date"`
	Amount Amount `json:"amount"`
}

// ArchiveSnapshot is the persistent aggregate that absorbs the value of
// deleted transactions. Once folded in, value never leaves it except
// through an explicit reset.
type ArchiveSnapshot struct {
	TotalIncome Amount    `json:"totalIncome"`
	TotalCount  int64     `json:"totalCount"`
	TodayBucket DayBucket `json:"todayIncome"`
}

// Fold absorbs the given records into the snapshot before they are
// discarded from the ledger. nowDay is the current calendar date in
// YYYY-MM-DD form.
//
// The today bucket is a single slot, not a per-date map: touching it on a
// new day resets its amount to that day's delta and drops whatever day it
// previously tracked. The dropped value stays inside TotalIncome.
func (s *ArchiveSnapshot) Fold(records []Record, nowDay string) {
	var incomeDelta, todayDelta Amount

	for _, r := range records {
		v := AmountFromDecimal(r.Value())
		incomeDelta = incomeDelta.Add(v)
		if r.OnDay(nowDay) {
			todayDelta = todayDelta.Add(v)
		}
	}

	s.TotalIncome = s.TotalIncome.Add(incomeDelta)
	s.TotalCount += int64(len(records))

	var carried Amount
	if s.TodayBucket.Date == nowDay {
		carried = s.TodayBucket.Amount
	}
	s.TodayBucket = DayBucket{
		Date:   nowDay,
		Amount: carried.Add(todayDelta),
	}
}

// Reset zeroes the snapshot. Confirmation is the caller's concern; once
// called the reset is unconditional and is not re-derived from live
// records.
func (s *ArchiveSnapshot) Reset() {
	*s = ArchiveSnapshot{}
}

// BucketAmountFor returns the archived amount attributable to the given
// date, which is non-zero only when the bucket currently tracks that
// exact date. Dates the bucket has rolled past contribute nothing.
func (s ArchiveSnapshot) BucketAmountFor(day string) decimal.Decimal {
	if day != "" && s.TodayBucket.Date == day {
		return s.TodayBucket.Amount.Decimal
	}
	return decimal.Zero
}
