// Package kvstate implements usecase.StateRepository over any key/value
// store that holds the three JSON state documents. The backends (sqlite,
// redis) only differ in where the bytes live.
package kvstate

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jokobim12/tefanote/internal/domain"
	"github.com/jokobim12/tefanote/internal/infrastructure/metrics"
)

// Storage keys. They mirror the original browser-storage layout so an
// exported state file maps one to one.
const (
	recordsKey  = "tefanote:transactions"
	snapshotKey = "tefanote:archived_stats"
	presetsKey  = "tefanote:presets"
)

// KV is the minimal key/value contract a backend must provide. Get
// returns (nil, nil) when the key is absent.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Repository persists ledger state as JSON documents in a KV backend.
// Absent or unparseable documents load as the empty default; only a
// failing backend surfaces as an error.
type Repository struct {
	kv     KV
	logger zerolog.Logger
}

// NewRepository creates a new Repository.
func NewRepository(kv KV, logger zerolog.Logger) *Repository {
	return &Repository{
		kv:     kv,
		logger: logger.With().Str("component", "kvstate").Logger(),
	}
}

func (r *Repository) LoadRecords(ctx context.Context) ([]domain.Record, error) {
	var records []domain.Record
	if ok, err := r.load(ctx, recordsKey, &records); err != nil || !ok {
		return nil, err
	}
	return records, nil
}

func (r *Repository) SaveRecords(ctx context.Context, records []domain.Record) error {
	if records == nil {
		records = []domain.Record{}
	}
	return r.save(ctx, recordsKey, records)
}

func (r *Repository) LoadSnapshot(ctx context.Context) (domain.ArchiveSnapshot, error) {
	var snapshot domain.ArchiveSnapshot
	if ok, err := r.load(ctx, snapshotKey, &snapshot); err != nil || !ok {
		return domain.ArchiveSnapshot{}, err
	}
	return snapshot, nil
}

func (r *Repository) SaveSnapshot(ctx context.Context, snapshot domain.ArchiveSnapshot) error {
	return r.save(ctx, snapshotKey, snapshot)
}

func (r *Repository) LoadPresets(ctx context.Context) ([]domain.PresetItem, bool, error) {
	var presets []domain.PresetItem
	ok, err := r.load(ctx, presetsKey, &presets)
	if err != nil || !ok {
		return nil, false, err
	}
	if presets == nil {
		presets = []domain.PresetItem{}
	}
	return presets, true, nil
}

func (r *Repository) SavePresets(ctx context.Context, presets []domain.PresetItem) error {
	if presets == nil {
		presets = []domain.PresetItem{}
	}
	return r.save(ctx, presetsKey, presets)
}

// load reads and decodes one document. It reports whether a usable
// document was found; a document that fails to decode counts as absent
// and is logged, not returned.
func (r *Repository) load(ctx context.Context, key string, dst any) (bool, error) {
	data, err := r.kv.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("load %s: %w", key, err)
	}
	if data == nil {
		return false, nil
	}
	if err := json.Unmarshal(data, dst); err != nil {
		r.logger.Warn().Err(err).Str("key", key).Msg("discarding unparseable state document")
		metrics.StateLoadFallbacks.WithLabelValues(key).Inc()
		return false, nil
	}
	return true, nil
}

func (r *Repository) save(ctx context.Context, key string, src any) error {
	data, err := json.Marshal(src)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := r.kv.Set(ctx, key, data); err != nil {
		metrics.StateSaves.WithLabelValues(key, metrics.OutcomeError).Inc()
		return fmt.Errorf("save %s: %w", key, err)
	}
	metrics.StateSaves.WithLabelValues(key, metrics.OutcomeOK).Inc()
	return nil
}
