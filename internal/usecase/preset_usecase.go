package usecase

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/jokobim12/tefanote/internal/domain"
)

// PresetUseCase manages the quick-entry product catalog the input form
// offers. Presets are plain persisted state; they never influence ledger
// aggregates.
type PresetUseCase struct {
	mu     sync.Mutex
	repo   StateRepository
	idGen  IDGenerator
	logger zerolog.Logger
}

// NewPresetUseCase creates a new PresetUseCase.
func NewPresetUseCase(repo StateRepository, idGen IDGenerator, logger zerolog.Logger) *PresetUseCase {
	return &PresetUseCase{
		repo:   repo,
		idGen:  idGen,
		logger: logger.With().Str("component", "presets").Logger(),
	}
}

// List returns the preset catalog, seeding the factory defaults on first
// use. An emptied catalog stays empty.
func (uc *PresetUseCase) List(ctx context.Context) ([]domain.PresetItem, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	presets, present, err := uc.repo.LoadPresets(ctx)
	if err != nil {
		return nil, err
	}
	if present {
		return presets, nil
	}
	return uc.seedDefaults(ctx)
}

// Add appends a new preset to the catalog.
func (uc *PresetUseCase) Add(ctx context.Context, item domain.PresetItem) (domain.PresetItem, error) {
	if item.Name == "" || item.Price.IsZero() {
		return domain.PresetItem{}, domain.ErrInvalidPreset
	}
	item.ID = uc.idGen.Generate()
	item.Category = domain.NormalizeCategory(item.Category)

	uc.mu.Lock()
	defer uc.mu.Unlock()

	presets, present, err := uc.repo.LoadPresets(ctx)
	if err != nil {
		return domain.PresetItem{}, err
	}
	if !present {
		if presets, err = uc.seedDefaults(ctx); err != nil {
			return domain.PresetItem{}, err
		}
	}

	presets = append(presets, item)
	if err := uc.repo.SavePresets(ctx, presets); err != nil {
		return domain.PresetItem{}, err
	}
	return item, nil
}

// Update replaces the preset with the matching id.
func (uc *PresetUseCase) Update(ctx context.Context, item domain.PresetItem) (domain.PresetItem, error) {
	if item.Name == "" || item.Price.IsZero() {
		return domain.PresetItem{}, domain.ErrInvalidPreset
	}
	item.Category = domain.NormalizeCategory(item.Category)

	uc.mu.Lock()
	defer uc.mu.Unlock()

	presets, _, err := uc.repo.LoadPresets(ctx)
	if err != nil {
		return domain.PresetItem{}, err
	}

	for i := range presets {
		if presets[i].ID == item.ID {
			presets[i] = item
			if err := uc.repo.SavePresets(ctx, presets); err != nil {
				return domain.PresetItem{}, err
			}
			return item, nil
		}
	}
	return domain.PresetItem{}, domain.ErrPresetNotFound
}

// Delete removes the preset with the given id. Deleting an unknown id is
// a no-op, matching the ledger's idempotent-delete semantics.
func (uc *PresetUseCase) Delete(ctx context.Context, id string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	presets, present, err := uc.repo.LoadPresets(ctx)
	if err != nil || !present {
		return err
	}

	kept := presets[:0]
	for _, p := range presets {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(presets) {
		return nil
	}
	return uc.repo.SavePresets(ctx, kept)
}

// ResetDefaults discards the catalog and restores the factory presets.
func (uc *PresetUseCase) ResetDefaults(ctx context.Context) ([]domain.PresetItem, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.seedDefaults(ctx)
}

// seedDefaults writes the factory catalog with fresh ids. Callers hold
// the mutex.
func (uc *PresetUseCase) seedDefaults(ctx context.Context) ([]domain.PresetItem, error) {
	presets := domain.DefaultPresets()
	for i := range presets {
		presets[i].ID = uc.idGen.Generate()
	}
	if err := uc.repo.SavePresets(ctx, presets); err != nil {
		return nil, err
	}
	uc.logger.Info().Int("count", len(presets)).Msg("preset catalog reset to defaults")
	return presets, nil
}
