package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"

	"github.com/jokobim12/tefanote/internal/domain"
)

const (
	dayFormat = "2006-01-02"

	// Persistence is attempted once per mutation; within the attempt a
	// transient backend hiccup is retried briefly before giving up.
	persistRetries       = 2
	persistRetryInterval = 100 * time.Millisecond
)

// LedgerUseCase owns the live transaction collection and the archive
// snapshot. It is the only writer of either: deletes and clears fold the
// removed records into the snapshot before dropping them, so the combined
// (live + archived) income never loses value to a destructive operation.
//
// All mutations are serialized through one mutex and run to completion
// before the next is admitted. In-memory state is authoritative; saving it
// is a post-commit side effect that is logged on failure and never rolls a
// mutation back.
type LedgerUseCase struct {
	mu       sync.Mutex
	records  []domain.Record
	snapshot domain.ArchiveSnapshot

	repo   StateRepository
	idGen  IDGenerator
	clock  Clock
	logger zerolog.Logger
}

// NewLedgerUseCase creates a new LedgerUseCase.
func NewLedgerUseCase(repo StateRepository, idGen IDGenerator, clock Clock, logger zerolog.Logger) *LedgerUseCase {
	return &LedgerUseCase{
		repo:   repo,
		idGen:  idGen,
		clock:  clock,
		logger: logger.With().Str("component", "ledger").Logger(),
	}
}

// Load restores persisted state. Missing or unreadable documents come back
// as empty defaults from the repository; only an unreachable backend is an
// error.
func (uc *LedgerUseCase) Load(ctx context.Context) error {
	records, err := uc.repo.LoadRecords(ctx)
	if err != nil {
		return err
	}
	snapshot, err := uc.repo.LoadSnapshot(ctx)
	if err != nil {
		return err
	}

	for i := range records {
		records[i].TagKind()
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.records = records
	uc.snapshot = snapshot

	uc.logger.Info().
		Int("records", len(records)).
		Str("archived_total", snapshot.TotalIncome.String()).
		Msg("ledger state loaded")

	return nil
}

// Today returns the current UTC calendar date.
func (uc *LedgerUseCase) Today() string {
	return uc.clock.Now().UTC().Format(dayFormat)
}

// Append inserts records at the end of the live collection in call order.
// Records without an id or timestamp get one assigned; totals are brought
// in line with their line items. No dedup is performed.
func (uc *LedgerUseCase) Append(ctx context.Context, records []domain.Record) []domain.Record {
	now := uc.clock.Now().UTC().Format(time.RFC3339)

	for i := range records {
		if records[i].ID == "" {
			records[i].ID = uc.idGen.Generate()
		}
		if records[i].Date == "" {
			records[i].Date = now
		}
		records[i].Normalize()
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.records = append(uc.records, records...)
	uc.persistRecords(ctx)

	uc.logger.Info().Int("count", len(records)).Msg("transactions appended")
	return records
}

// Update replaces the record with the matching id in place and reports
// whether it was found. A miss is a silent no-op. The archive snapshot is
// never touched by an edit.
func (uc *LedgerUseCase) Update(ctx context.Context, record domain.Record) bool {
	record.Normalize()

	uc.mu.Lock()
	defer uc.mu.Unlock()

	for i := range uc.records {
		if uc.records[i].ID == record.ID {
			uc.records[i] = record
			uc.persistRecords(ctx)
			uc.logger.Info().Str("id", record.ID).Msg("transaction updated")
			return true
		}
	}
	return false
}

// Remove deletes the record with the given id, folding its value into the
// archive snapshot before it is dropped. A miss is a silent no-op.
func (uc *LedgerUseCase) Remove(ctx context.Context, id string) (domain.Record, bool) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	for i := range uc.records {
		if uc.records[i].ID != id {
			continue
		}
		removed := uc.records[i]
		uc.records = append(uc.records[:i], uc.records[i+1:]...)

		uc.snapshot.Fold([]domain.Record{removed}, uc.Today())
		uc.persistRecords(ctx)
		uc.persistSnapshot(ctx)

		uc.logger.Info().
			Str("id", id).
			Str("archived_value", removed.Value().String()).
			Msg("transaction removed and archived")
		return removed, true
	}
	return domain.Record{}, false
}

// Clear empties the live collection, folding every record into the
// archive snapshot first. Each record buckets against today using its own
// timestamp. The removed records are returned in original order.
func (uc *LedgerUseCase) Clear(ctx context.Context) []domain.Record {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	removed := uc.records
	uc.records = nil

	uc.snapshot.Fold(removed, uc.Today())
	uc.persistRecords(ctx)
	uc.persistSnapshot(ctx)

	uc.logger.Info().Int("count", len(removed)).Msg("ledger cleared, values archived")
	return removed
}

// ResetStats zeroes the archive snapshot. The caller is responsible for
// having confirmed this with the user; here it applies unconditionally.
func (uc *LedgerUseCase) ResetStats(ctx context.Context) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.snapshot.Reset()
	uc.persistSnapshot(ctx)

	uc.logger.Info().Msg("archive snapshot reset to zero")
}

// Records returns a copy of the live collection in insertion order.
func (uc *LedgerUseCase) Records() []domain.Record {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	out := make([]domain.Record, len(uc.records))
	copy(out, uc.records)
	return out
}

// RecordsForDay returns the live records whose timestamp falls on the
// given YYYY-MM-DD date, in insertion order.
func (uc *LedgerUseCase) RecordsForDay(day string) []domain.Record {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	var out []domain.Record
	for _, r := range uc.records {
		if r.OnDay(day) {
			out = append(out, r)
		}
	}
	return out
}

// Snapshot returns a copy of the archive snapshot.
func (uc *LedgerUseCase) Snapshot() domain.ArchiveSnapshot {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.snapshot
}

// persistRecords and persistSnapshot are the post-commit hooks: attempted
// once per mutation, retried briefly on transient failure, and never
// allowed to fail the mutation itself.

func (uc *LedgerUseCase) persistRecords(ctx context.Context) {
	err := uc.withRetry(ctx, func() error {
		return uc.repo.SaveRecords(ctx, uc.records)
	})
	if err != nil {
		uc.logger.Error().Err(err).Msg("failed to persist transactions; in-memory state remains authoritative")
	}
}

func (uc *LedgerUseCase) persistSnapshot(ctx context.Context) {
	err := uc.withRetry(ctx, func() error {
		return uc.repo.SaveSnapshot(ctx, uc.snapshot)
	})
	if err != nil {
		uc.logger.Error().Err(err).Msg("failed to persist archive snapshot; in-memory state remains authoritative")
	}
}

func (uc *LedgerUseCase) withRetry(ctx context.Context, op func() error) error {
	b := backoff.WithMaxRetries(backoff.NewConstantBackOff(persistRetryInterval), persistRetries)
	return backoff.Retry(op, backoff.WithContext(b, ctx))
}
