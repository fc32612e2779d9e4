package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jokobim12/tefanote/internal/adapter/http/dto"
	"github.com/jokobim12/tefanote/internal/domain"
	"github.com/jokobim12/tefanote/internal/usecase"
)

// LedgerService defines the mutating ledger behavior needed by
// TransactionHandler.
type LedgerService interface {
	Append(ctx context.Context, records []domain.Record) []domain.Record
	Update(ctx context.Context, record domain.Record) bool
	Remove(ctx context.Context, id string) (domain.Record, bool)
	Clear(ctx context.Context) []domain.Record
}

// ListService defines the listing behavior needed by TransactionHandler.
type ListService interface {
	List(in usecase.ListInput) usecase.ListOutput
	Export(in usecase.ListInput) usecase.ExportOutput
}

// TransactionHandler handles transaction HTTP requests.
type TransactionHandler struct {
	ledgerUC LedgerService
	listUC   ListService
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(ledgerUC LedgerService, listUC ListService) *TransactionHandler {
	return &TransactionHandler{ledgerUC: ledgerUC, listUC: listUC}
}

// Create records a new transaction.
func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.TransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	stored := h.ledgerUC.Append(r.Context(), []domain.Record{req.ToDomain()})

	writeJSON(w, http.StatusCreated, stored[0])
}

// Update replaces the transaction with the id from the URL.
func (h *TransactionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing transaction ID", "")
		return
	}

	var req dto.TransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	record := req.ToDomain()
	record.ID = id
	if !h.ledgerUC.Update(r.Context(), record) {
		writeError(w, mapDomainError(domain.ErrRecordNotFound), "transaction not found", id)
		return
	}

	writeJSON(w, http.StatusOK, record)
}

// Delete removes one transaction, folding its value into the archive.
// Deleting an unknown id succeeds without effect.
func (h *TransactionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing transaction ID", "")
		return
	}

	h.ledgerUC.Remove(r.Context(), id)

	w.WriteHeader(http.StatusNoContent)
}

// Clear archives every live transaction.
func (h *TransactionHandler) Clear(w http.ResponseWriter, r *http.Request) {
	archived := h.ledgerUC.Clear(r.Context())

	writeJSON(w, http.StatusOK, dto.ClearedResponse{ArchivedCount: len(archived)})
}

// List returns one page of the filtered, sorted listing.
func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	out := h.listUC.List(dto.ListQueryFromRequest(r))

	writeJSON(w, http.StatusOK, dto.ListFromOutput(out))
}

// Export returns the whole filtered listing with its grand total.
func (h *TransactionHandler) Export(w http.ResponseWriter, r *http.Request) {
	out := h.listUC.Export(dto.ListQueryFromRequest(r))

	writeJSON(w, http.StatusOK, dto.ExportFromOutput(out))
}
