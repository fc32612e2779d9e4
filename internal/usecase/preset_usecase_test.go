package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/jokobim12/tefanote/internal/domain"
	"github.com/jokobim12/tefanote/internal/usecase"
	"github.com/jokobim12/tefanote/internal/usecase/mocks"
)

func newPresets(repo usecase.StateRepository) *usecase.PresetUseCase {
	return usecase.NewPresetUseCase(repo, mocks.NewMockIDGenerator(), zerolog.Nop())
}

func TestPresetsSeededOnFirstList(t *testing.T) {
	uc := newPresets(mocks.NewMockStateRepository())

	presets, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(presets) != len(domain.DefaultPresets()) {
		t.Fatalf("seeded %d presets, want %d", len(presets), len(domain.DefaultPresets()))
	}
	for _, p := range presets {
		if p.ID == "" {
			t.Fatalf("preset %q seeded without an id", p.Name)
		}
	}
}

func TestPresetsEmptiedCatalogStaysEmpty(t *testing.T) {
	uc := newPresets(mocks.NewMockStateRepository())

	seeded, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	for _, p := range seeded {
		if err := uc.Delete(context.Background(), p.ID); err != nil {
			t.Fatalf("delete %s: %v", p.ID, err)
		}
	}

	presets, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(presets) != 0 {
		t.Errorf("emptied catalog re-seeded itself: %d presets", len(presets))
	}
}

func TestPresetAdd(t *testing.T) {
	uc := newPresets(mocks.NewMockStateRepository())

	added, err := uc.Add(context.Background(), domain.PresetItem{Name: "Laminating A4", Price: domain.NewAmount(4000), Category: "laminasi"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if added.ID == "" {
		t.Error("added preset has no id")
	}
	if added.Category != domain.CategoryGoods {
		t.Errorf("unknown category normalized to %q, want goods", added.Category)
	}

	presets, _ := uc.List(context.Background())
	if len(presets) != len(domain.DefaultPresets())+1 {
		t.Errorf("catalog size = %d, want defaults plus one", len(presets))
	}
}

func TestPresetAddRejectsIncomplete(t *testing.T) {
	uc := newPresets(mocks.NewMockStateRepository())

	tests := []struct {
		name string
		item domain.PresetItem
	}{
		{name: "missing name", item: domain.PresetItem{Price: domain.NewAmount(1000)}},
		{name: "zero price", item: domain.PresetItem{Name: "Scan"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := uc.Add(context.Background(), tt.item); !errors.Is(err, domain.ErrInvalidPreset) {
				t.Errorf("err = %v, want ErrInvalidPreset", err)
			}
		})
	}
}

func TestPresetUpdate(t *testing.T) {
	uc := newPresets(mocks.NewMockStateRepository())
	seeded, _ := uc.List(context.Background())

	target := seeded[0]
	target.Name = "Print HVS"
	target.Price = domain.NewAmount(750)

	updated, err := uc.Update(context.Background(), target)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Print HVS" {
		t.Errorf("name = %q", updated.Name)
	}

	presets, _ := uc.List(context.Background())
	if presets[0].Name != "Print HVS" || !presets[0].Price.Equal(domain.NewAmount(750).Decimal) {
		t.Errorf("update not persisted: %+v", presets[0])
	}
}

func TestPresetUpdateUnknownID(t *testing.T) {
	uc := newPresets(mocks.NewMockStateRepository())
	uc.List(context.Background())

	_, err := uc.Update(context.Background(), domain.PresetItem{ID: "missing", Name: "X", Price: domain.NewAmount(100)})
	if !errors.Is(err, domain.ErrPresetNotFound) {
		t.Errorf("err = %v, want ErrPresetNotFound", err)
	}
}

func TestPresetDeleteUnknownIDIsNoOp(t *testing.T) {
	repo := mocks.NewMockStateRepository()
	uc := newPresets(repo)
	seeded, _ := uc.List(context.Background())

	if err := uc.Delete(context.Background(), "missing"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	presets, _ := uc.List(context.Background())
	if len(presets) != len(seeded) {
		t.Errorf("catalog changed by unknown-id delete: %d -> %d", len(seeded), len(presets))
	}
}

func TestPresetResetDefaults(t *testing.T) {
	uc := newPresets(mocks.NewMockStateRepository())

	uc.Add(context.Background(), domain.PresetItem{Name: "Custom", Price: domain.NewAmount(9999)})
	restored, err := uc.ResetDefaults(context.Background())
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	if len(restored) != len(domain.DefaultPresets()) {
		t.Fatalf("restored %d presets, want defaults", len(restored))
	}
	for _, p := range restored {
		if p.Name == "Custom" {
			t.Error("reset kept a user preset")
		}
	}
}
