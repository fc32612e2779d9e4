package dto

import (
	"net/http"
	"strconv"

	"github.com/jokobim12/tefanote/internal/domain"
	"github.com/jokobim12/tefanote/internal/usecase"
)

// TransactionRequest carries either transaction shape on the wire. The
// field names mirror the persisted document, so a client can round-trip
// an exported record unchanged.
type TransactionRequest struct {
	Kind domain.RecordKind `json:"kind,omitempty"`
	Date string            `json:"date,omitempty"`

	ItemName string          `json:"itemName,omitempty"`
	Price    domain.Amount   `json:"price"`
	Qty      domain.Quantity `json:"qty,omitempty"`
	Total    domain.Amount   `json:"total"`
	Category domain.Category `json:"type,omitempty"`

	BuyerName  string            `json:"customerName,omitempty"`
	Items      []LineItemRequest `json:"items,omitempty"`
	TotalPrice domain.Amount     `json:"totalPrice"`
}

// LineItemRequest is one line of a group transaction request.
type LineItemRequest struct {
	ItemName string          `json:"itemName"`
	Price    domain.Amount   `json:"price"`
	Qty      domain.Quantity `json:"qty"`
	Category domain.Category `json:"type,omitempty"`
}

// ToDomain converts to a domain record. Missing id, date, kind, and
// derived totals are filled in by the ledger on append.
func (r *TransactionRequest) ToDomain() domain.Record {
	record := domain.Record{
		Kind:       r.Kind,
		Date:       r.Date,
		ItemName:   r.ItemName,
		Price:      r.Price,
		Qty:        r.Qty,
		Total:      r.Total,
		Category:   r.Category,
		BuyerName:  r.BuyerName,
		TotalPrice: r.TotalPrice,
	}
	if len(r.Items) > 0 {
		record.Items = make([]domain.LineItem, len(r.Items))
		for i, it := range r.Items {
			record.Items[i] = domain.LineItem{
				ItemName: it.ItemName,
				Price:    it.Price,
				Qty:      it.Qty,
				Category: it.Category,
			}
		}
	}
	return record
}

// ListQueryFromRequest extracts listing parameters from the query string.
// Unknown sort keys and directions fall back to newest-first.
func ListQueryFromRequest(r *http.Request) usecase.ListInput {
	q := r.URL.Query()

	sortKey := usecase.SortByDate
	if q.Get("sort") == string(usecase.SortByTotal) {
		sortKey = usecase.SortByTotal
	}
	dir := usecase.Descending
	if q.Get("dir") == string(usecase.Ascending) {
		dir = usecase.Ascending
	}

	page := 1
	if v, err := strconv.Atoi(q.Get("page")); err == nil {
		page = v
	}

	return usecase.ListInput{
		Date:   q.Get("date"),
		Search: q.Get("search"),
		Sort:   sortKey,
		Dir:    dir,
		Page:   page,
	}
}

// PresetRequest carries a preset create or update payload.
type PresetRequest struct {
	Name     string          `json:"name"`
	Price    domain.Amount   `json:"price"`
	Category domain.Category `json:"type,omitempty"`
}

// ToDomain converts to a domain preset. The id, when relevant, comes from
// the URL.
func (r *PresetRequest) ToDomain(id string) domain.PresetItem {
	return domain.PresetItem{
		ID:       id,
		Name:     r.Name,
		Price:    r.Price,
		Category: r.Category,
	}
}

// ChatRequest carries one assistant message.
type ChatRequest struct {
	Message string `json:"message"`
}
