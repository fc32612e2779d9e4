package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jokobim12/tefanote/internal/adapter/http/dto"
	"github.com/jokobim12/tefanote/internal/domain"
)

// PresetService defines the behavior needed by PresetHandler.
type PresetService interface {
	List(ctx context.Context) ([]domain.PresetItem, error)
	Add(ctx context.Context, item domain.PresetItem) (domain.PresetItem, error)
	Update(ctx context.Context, item domain.PresetItem) (domain.PresetItem, error)
	Delete(ctx context.Context, id string) error
	ResetDefaults(ctx context.Context) ([]domain.PresetItem, error)
}

// PresetHandler handles preset catalog HTTP requests.
type PresetHandler struct {
	presetUC PresetService
}

// NewPresetHandler creates a new PresetHandler.
func NewPresetHandler(presetUC PresetService) *PresetHandler {
	return &PresetHandler{presetUC: presetUC}
}

// List returns the preset catalog.
func (h *PresetHandler) List(w http.ResponseWriter, r *http.Request) {
	presets, err := h.presetUC.List(r.Context())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list presets", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, presets)
}

// Create adds a preset to the catalog.
func (h *PresetHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.PresetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	preset, err := h.presetUC.Add(r.Context(), req.ToDomain(""))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to add preset", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, preset)
}

// Update replaces the preset with the id from the URL.
func (h *PresetHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing preset ID", "")
		return
	}

	var req dto.PresetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	preset, err := h.presetUC.Update(r.Context(), req.ToDomain(id))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to update preset", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, preset)
}

// Delete removes a preset. Deleting an unknown id succeeds without
// effect.
func (h *PresetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing preset ID", "")
		return
	}

	if err := h.presetUC.Delete(r.Context(), id); err != nil {
		writeError(w, mapDomainError(err), "failed to delete preset", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Reset restores the factory preset catalog.
func (h *PresetHandler) Reset(w http.ResponseWriter, r *http.Request) {
	presets, err := h.presetUC.ResetDefaults(r.Context())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to reset presets", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, presets)
}
