package dto

import (
	"github.com/jokobim12/tefanote/internal/domain"
	"github.com/jokobim12/tefanote/internal/usecase"
)

// Records go out exactly as they are persisted; domain.Record already
// carries the wire field names, so responses embed it directly instead of
// re-mapping every field.

// ListTransactionsResponse is one page of the transaction listing.
type ListTransactionsResponse struct {
	Transactions []domain.Record `json:"transactions"`
	Page         int             `json:"page"`
	TotalPages   int             `json:"totalPages"`
	Total        int             `json:"total"`
}

// ListFromOutput converts a listing page to a response.
func ListFromOutput(out usecase.ListOutput) ListTransactionsResponse {
	items := out.Items
	if items == nil {
		items = []domain.Record{}
	}
	return ListTransactionsResponse{
		Transactions: items,
		Page:         out.Page,
		TotalPages:   out.TotalPages,
		Total:        out.TotalMatched,
	}
}

// ExportTransactionsResponse is the full filtered listing with its grand
// total, for report generation on the client.
type ExportTransactionsResponse struct {
	Transactions []domain.Record `json:"transactions"`
	GrandTotal   domain.Amount   `json:"grandTotal"`
	Count        int             `json:"count"`
}

// ExportFromOutput converts an export result to a response.
func ExportFromOutput(out usecase.ExportOutput) ExportTransactionsResponse {
	items := out.Items
	if items == nil {
		items = []domain.Record{}
	}
	return ExportTransactionsResponse{
		Transactions: items,
		GrandTotal:   domain.AmountFromDecimal(out.Total),
		Count:        len(items),
	}
}

// StatsResponse is the aggregate view for one selected date.
type StatsResponse struct {
	Date        string        `json:"date"`
	IsToday     bool          `json:"isToday"`
	DateIncome  domain.Amount `json:"dateIncome"`
	DateCount   int           `json:"dateCount"`
	TotalIncome domain.Amount `json:"totalIncome"`
	TotalCount  int64         `json:"totalCount"`
}

// StatsFromUseCase converts computed stats to a response.
func StatsFromUseCase(s usecase.Stats) StatsResponse {
	return StatsResponse{
		Date:        s.Date,
		IsToday:     s.IsToday,
		DateIncome:  domain.AmountFromDecimal(s.DateIncome),
		DateCount:   s.DateLiveCount,
		TotalIncome: domain.AmountFromDecimal(s.TotalIncome),
		TotalCount:  s.TotalCount,
	}
}

// ClearedResponse reports a bulk archive of the live ledger.
type ClearedResponse struct {
	ArchivedCount int `json:"archivedCount"`
}

// ChatResponse carries the assistant's reply.
type ChatResponse struct {
	Reply string `json:"reply"`
}

// ErrorResponse is the error body for all endpoints.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
