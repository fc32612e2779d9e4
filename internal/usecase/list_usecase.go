package usecase

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jokobim12/tefanote/internal/domain"
)

// PageSize is the fixed page size of the transaction listing.
const PageSize = 5

// SortKey selects the listing sort key.
type SortKey string

const (
	SortByDate  SortKey = "date"
	SortByTotal SortKey = "total"
)

// SortDirection selects the listing sort direction.
type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// ListInput selects and orders one page of transactions.
type ListInput struct {
	// Date scopes the listing to one YYYY-MM-DD date; empty means today.
	Date   string
	Search string
	Sort   SortKey
	Dir    SortDirection
	Page   int
}

// ListOutput is one page of the filtered, sorted transaction listing.
type ListOutput struct {
	Items        []domain.Record
	Page         int
	TotalPages   int
	TotalMatched int
}

// ExportOutput is the full filtered, sorted listing for the export
// collaborator, with the grand total of the matched records.
type ExportOutput struct {
	Items []domain.Record
	Total decimal.Decimal
}

// ListUseCase filters, sorts, and paginates the date-scoped live
// transaction set for display.
type ListUseCase struct {
	ledger LedgerView
}

// NewListUseCase creates a new ListUseCase.
func NewListUseCase(ledger LedgerView) *ListUseCase {
	return &ListUseCase{ledger: ledger}
}

// List returns one page of the listing. The page is clamped into the
// valid range; an empty result still reports one (empty) page so pagers
// always have a current page to stand on.
func (uc *ListUseCase) List(in ListInput) ListOutput {
	matched := uc.matchedRecords(in)

	totalPages := (len(matched) + PageSize - 1) / PageSize
	if totalPages == 0 {
		totalPages = 1
	}

	page := in.Page
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * PageSize
	end := start + PageSize
	if start > len(matched) {
		start = len(matched)
	}
	if end > len(matched) {
		end = len(matched)
	}

	return ListOutput{
		Items:        matched[start:end],
		Page:         page,
		TotalPages:   totalPages,
		TotalMatched: len(matched),
	}
}

// Export returns the whole filtered and sorted listing, unpaginated, with
// the grand total of the matched records.
func (uc *ListUseCase) Export(in ListInput) ExportOutput {
	matched := uc.matchedRecords(in)
	return ExportOutput{
		Items: matched,
		Total: sumValues(matched),
	}
}

func (uc *ListUseCase) matchedRecords(in ListInput) []domain.Record {
	day := in.Date
	if day == "" {
		day = uc.ledger.Today()
	}

	scoped := uc.ledger.RecordsForDay(day)
	matched := filterRecords(scoped, in.Search)
	sortRecords(matched, in.Sort, in.Dir)
	return matched
}

// filterRecords keeps records where any searchable name field contains
// the term, case-insensitively. An empty term matches everything.
func filterRecords(records []domain.Record, term string) []domain.Record {
	if term == "" {
		return records
	}
	term = strings.ToLower(term)

	matched := make([]domain.Record, 0, len(records))
	for _, r := range records {
		if matchesTerm(r, term) {
			matched = append(matched, r)
		}
	}
	return matched
}

func matchesTerm(r domain.Record, term string) bool {
	switch r.Kind {
	case domain.KindGroup:
		if strings.Contains(strings.ToLower(r.BuyerName), term) {
			return true
		}
		for _, it := range r.Items {
			if strings.Contains(strings.ToLower(it.ItemName), term) {
				return true
			}
		}
		return false
	case domain.KindSimple:
		return strings.Contains(strings.ToLower(r.ItemName), term)
	default:
		return false
	}
}

// sortRecords orders records by the selected key and direction. The sort
// is stable, so equal keys keep their insertion order.
func sortRecords(records []domain.Record, key SortKey, dir SortDirection) {
	desc := dir == Descending

	sort.SliceStable(records, func(i, j int) bool {
		var less bool
		switch key {
		case SortByTotal:
			cmp := records[i].Value().Cmp(records[j].Value())
			if cmp == 0 {
				return false
			}
			less = cmp < 0
		default: // SortByDate
			ti, tj := records[i].Timestamp(), records[j].Timestamp()
			if ti.Equal(tj) {
				return false
			}
			less = ti.Before(tj)
		}
		if desc {
			return !less
		}
		return less
	})
}
