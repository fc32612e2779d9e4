package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/jokobim12/tefanote/internal/domain"
)

const topItemCount = 5

// AssistantUseCase proxies chat messages to an external text-generation
// API. It is stateless with respect to the ledger: each request carries a
// freshly computed read-only aggregate summary as plain text and nothing
// the assistant does can touch ledger state.
type AssistantUseCase struct {
	ledger    LedgerView
	stats     *StatsUseCase
	completer ChatCompleter
}

// NewAssistantUseCase creates a new AssistantUseCase. completer may be nil
// when no API key is configured; Chat then fails with
// domain.ErrAssistantDisabled.
func NewAssistantUseCase(ledger LedgerView, stats *StatsUseCase, completer ChatCompleter) *AssistantUseCase {
	return &AssistantUseCase{
		ledger:    ledger,
		stats:     stats,
		completer: completer,
	}
}

// Chat forwards the user message together with the current financial
// summary and returns the assistant's reply.
func (uc *AssistantUseCase) Chat(ctx context.Context, message string) (string, error) {
	if uc.completer == nil {
		return "", domain.ErrAssistantDisabled
	}
	return uc.completer.Complete(ctx, uc.buildContext(), message)
}

// buildContext renders the aggregate summary the assistant answers from:
// all-time totals, today's income, and the best-selling items by unit
// count.
func (uc *AssistantUseCase) buildContext() string {
	stats := uc.stats.StatsFor(uc.ledger.Today())

	var b strings.Builder
	b.WriteString("You are the TefaNote financial assistant for a small print shop.\n")
	b.WriteString("Answer in the user's language, briefly and concretely, using the data below.\n\n")
	b.WriteString("CURRENT FINANCIAL DATA:\n")
	fmt.Fprintf(&b, "- Total income (all time): %s\n", stats.TotalIncome)
	fmt.Fprintf(&b, "- Income today (%s): %s\n", stats.Date, stats.DateIncome)
	fmt.Fprintf(&b, "- Total transactions: %d\n", stats.TotalCount)

	if top := uc.topItems(); len(top) > 0 {
		b.WriteString("- Best sellers:\n")
		for _, it := range top {
			fmt.Fprintf(&b, "  - %s (%d sold)\n", it.name, it.qty)
		}
	}
	return b.String()
}

type rankedItem struct {
	name string
	qty  int64
}

// topItems tallies unit counts per item name across all live records.
func (uc *AssistantUseCase) topItems() []rankedItem {
	counts := make(map[string]int64)
	for _, r := range uc.ledger.Records() {
		switch r.Kind {
		case domain.KindGroup:
			for _, it := range r.Items {
				counts[it.ItemName] += int64(it.Qty)
			}
		case domain.KindSimple:
			counts[r.ItemName] += int64(r.Qty)
		}
	}

	ranked := make([]rankedItem, 0, len(counts))
	for name, qty := range counts {
		ranked = append(ranked, rankedItem{name: name, qty: qty})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].qty != ranked[j].qty {
			return ranked[i].qty > ranked[j].qty
		}
		return ranked[i].name < ranked[j].name
	})

	if len(ranked) > topItemCount {
		ranked = ranked[:topItemCount]
	}
	return ranked
}
