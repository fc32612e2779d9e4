package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordKind discriminates the two transaction record shapes.
type RecordKind string

const (
	// KindSimple is the legacy single-item shape.
	KindSimple RecordKind = "simple"
	// KindGroup is the multi-item cart shape.
	KindGroup RecordKind = "group"
)

// Category classifies a sold item.
type Category string

const (
	CategoryPrint   Category = "print"
	CategoryGoods   Category = "goods"
	CategoryService Category = "service"
)

// NormalizeCategory maps stored category values onto the known set. The
// original data used "buy" for physical goods; unknown values default to
// goods as well.
func NormalizeCategory(c Category) Category {
	switch c {
	case CategoryPrint, CategoryService:
		return c
	default:
		return CategoryGoods
	}
}

// LineItem is one line of a group record.
type LineItem struct {
	ID       string   `json:"id"`
	ItemName string   `json:"itemName"`
	Price    Amount   `json:"price"`
	Qty      Quantity `json:"qty"`
	Total    Amount   `json:"total"`
	Category Category `json:"type"`
}

// Record is a single monetary transaction. Kind selects which variant's
// fields are meaningful; consumers switch on Kind and never sniff field
// presence.
type Record struct {
	ID   string     `json:"id"`
	Kind RecordKind `json:"kind"`
	// Date is the RFC 3339 UTC timestamp as persisted. It stays a string
	// so that date scoping is an exact prefix comparison and a malformed
	// value degrades instead of failing a load.
	Date string `json:"date"`

	// Simple variant.
	ItemName string   `json:"itemName,omitempty"`
	Price    Amount   `json:"price"`
	Qty      Quantity `json:"qty,omitempty"`
	Total    Amount   `json:"total"`
	Category Category `json:"type,omitempty"`

	// Group variant.
	BuyerName  string     `json:"customerName,omitempty"`
	Items      []LineItem `json:"items,omitempty"`
	TotalPrice Amount     `json:"totalPrice"`
}

// Value returns the monetary worth of the record. This is the single
// source of truth for "how much is this transaction worth"; every
// aggregate, filter, and export goes through it. It never fails: missing
// or malformed numbers were already normalized to zero on the way in.
func (r Record) Value() decimal.Decimal {
	switch r.Kind {
	case KindGroup:
		return r.TotalPrice.Decimal
	case KindSimple:
		if !r.Total.IsZero() {
			return r.Total.Decimal
		}
		return r.Price.Mul(r.Qty.Decimal())
	default:
		return decimal.Zero
	}
}

// Day returns the calendar-date prefix (YYYY-MM-DD) of the record's
// timestamp.
func (r Record) Day() string {
	if len(r.Date) < 10 {
		return r.Date
	}
	return r.Date[:10]
}

// OnDay reports whether the record's timestamp falls on the given
// YYYY-MM-DD date.
func (r Record) OnDay(day string) bool {
	return day != "" && r.Day() == day
}

// Timestamp parses the record date for ordering. Unparseable dates sort
// first.
func (r Record) Timestamp() time.Time {
	t, err := time.Parse(time.RFC3339, r.Date)
	if err != nil {
		return time.Time{}
	}
	return t
}

// TagKind assigns the kind tag to untagged records from older persisted
// data. It runs once, at the persistence boundary, so that no consumer
// ever has to infer the shape from field presence. Stored monetary fields
// are left exactly as found.
func (r *Record) TagKind() {
	if r.Kind != "" {
		return
	}
	if r.Items != nil {
		r.Kind = KindGroup
	} else {
		r.Kind = KindSimple
	}
}

// Normalize enforces the structural invariants a record must hold when it
// enters or is edited in the ledger: an assigned kind, per-line totals
// consistent with price and quantity, a group total equal to the sum of
// its lines when lines are present, and the "-" placeholder for an
// absent buyer name. A group persisted without its lines keeps the total
// it was stored with.
func (r *Record) Normalize() {
	r.TagKind()

	switch r.Kind {
	case KindGroup:
		if r.BuyerName == "" {
			r.BuyerName = "-"
		}
		if len(r.Items) > 0 {
			sum := decimal.Zero
			for i := range r.Items {
				it := &r.Items[i]
				it.Category = NormalizeCategory(it.Category)
				it.Total = Amount{it.Price.Mul(it.Qty.Decimal())}
				sum = sum.Add(it.Total.Decimal)
			}
			r.TotalPrice = Amount{sum}
		}
	case KindSimple:
		r.Category = NormalizeCategory(r.Category)
		if r.Total.IsZero() {
			r.Total = Amount{r.Price.Mul(r.Qty.Decimal())}
		}
	}
}
