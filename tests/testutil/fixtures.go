// Package testutil provides shared fixtures for the integration suite:
// a full application stack wired over the real sqlite backend in a
// temporary directory.
package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/jokobim12/tefanote/internal/adapter/idgen"
	"github.com/jokobim12/tefanote/internal/adapter/repository/kvstate"
	"github.com/jokobim12/tefanote/internal/adapter/repository/sqlite"
	"github.com/jokobim12/tefanote/internal/domain"
	"github.com/jokobim12/tefanote/internal/usecase"
	"github.com/jokobim12/tefanote/internal/usecase/mocks"
)

// Stack is a fully wired application over a real sqlite state backend.
type Stack struct {
	Path    string
	Store   *sqlite.Store
	Repo    *kvstate.Repository
	Ledger  *usecase.LedgerUseCase
	Stats   *usecase.StatsUseCase
	List    *usecase.ListUseCase
	Presets *usecase.PresetUseCase
	Clock   *mocks.MockClock
}

// NewStack builds a Stack on a fresh database. The clock is pinned so
// day-boundary behavior is deterministic; move it through Clock.Instant.
func NewStack(t *testing.T, now string) *Stack {
	t.Helper()

	path := filepath.Join(t.TempDir(), "tefanote.db")
	store, err := sqlite.Open(path)
	if err != nil {
		t.Fatalf("open sqlite store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	stack := newStackOn(t, store, now)
	stack.Path = path
	return stack
}

// Reopen builds a second Stack on the same database file, simulating a
// process restart.
func Reopen(t *testing.T, path, now string) *Stack {
	t.Helper()

	store, err := sqlite.Open(path)
	if err != nil {
		t.Fatalf("reopen sqlite store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	stack := newStackOn(t, store, now)
	stack.Path = path
	return stack
}

func newStackOn(t *testing.T, store *sqlite.Store, now string) *Stack {
	t.Helper()

	repo := kvstate.NewRepository(store, zerolog.Nop())
	clock := mocks.NewMockClock(now)
	idGen := idgen.NewULIDGenerator()

	ledger := usecase.NewLedgerUseCase(repo, idGen, clock, zerolog.Nop())
	if err := ledger.Load(context.Background()); err != nil {
		t.Fatalf("load ledger: %v", err)
	}

	return &Stack{
		Store:   store,
		Repo:    repo,
		Ledger:  ledger,
		Stats:   usecase.NewStatsUseCase(ledger),
		List:    usecase.NewListUseCase(ledger),
		Presets: usecase.NewPresetUseCase(repo, idGen, zerolog.Nop()),
		Clock:   clock,
	}
}

// SimpleRecord builds a single-item transaction on the given timestamp.
func SimpleRecord(date, item string, price, qty int64) domain.Record {
	return domain.Record{
		Kind:     domain.KindSimple,
		Date:     date,
		ItemName: item,
		Price:    domain.NewAmount(price),
		Qty:      domain.Quantity(qty),
	}
}

// GroupRecord builds a multi-item transaction on the given timestamp.
func GroupRecord(date, buyer string, items ...domain.LineItem) domain.Record {
	return domain.Record{
		Kind:      domain.KindGroup,
		Date:      date,
		BuyerName: buyer,
		Items:     items,
	}
}

// Line builds one line of a group transaction.
func Line(item string, price, qty int64) domain.LineItem {
	return domain.LineItem{
		ItemName: item,
		Price:    domain.NewAmount(price),
		Qty:      domain.Quantity(qty),
	}
}
