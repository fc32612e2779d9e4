package usecase

import (
	"context"
	"time"

	"github.com/jokobim12/tefanote/internal/domain"
)

// StateRepository persists the ledger state as key/value JSON documents.
// Loads are forgiving: an absent or unparseable document yields the empty
// default, never an error, so a corrupt store can only ever cost data, not
// availability. Errors are reserved for the backend itself being
// unreachable.
type StateRepository interface {
	LoadRecords(ctx context.Context) ([]domain.Record, error)
	SaveRecords(ctx context.Context, records []domain.Record) error
	LoadSnapshot(ctx context.Context) (domain.ArchiveSnapshot, error)
	SaveSnapshot(ctx context.Context, snapshot domain.ArchiveSnapshot) error
	// LoadPresets additionally reports whether a preset document exists,
	// so a deliberately emptied catalog is distinguishable from a fresh
	// install.
	LoadPresets(ctx context.Context) ([]domain.PresetItem, bool, error)
	SavePresets(ctx context.Context, presets []domain.PresetItem) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Clock supplies the current time. The ledger's notion of "today" hangs
// off it, so tests can pin the day.
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// ChatCompleter sends one prompt to an external text-generation API and
// returns the reply. Implementations are stateless; all ledger context is
// passed in as plain text.
type ChatCompleter interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// LedgerView is the read-only surface of the ledger that aggregates and
// listings are computed from. All methods return copies of current state.
type LedgerView interface {
	Records() []domain.Record
	RecordsForDay(day string) []domain.Record
	Snapshot() domain.ArchiveSnapshot
	Today() string
}
