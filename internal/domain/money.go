package domain

import (
	"bytes"

	"github.com/shopspring/decimal"
)

// Amount is a monetary value in the smallest currency unit.
//
// Stored data comes from a frontend that never validated its numbers, so
// unmarshalling is lenient: a missing, quoted, or malformed value resolves
// to zero instead of failing the whole load.
type Amount struct {
	decimal.Decimal
}

// NewAmount creates an Amount from an integer number of currency units.
func NewAmount(units int64) Amount {
	return Amount{decimal.NewFromInt(units)}
}

// AmountFromDecimal wraps a decimal value as an Amount.
func AmountFromDecimal(d decimal.Decimal) Amount {
	return Amount{d}
}

// Add returns the sum of two amounts.
func (a Amount) Add(b Amount) Amount {
	return Amount{a.Decimal.Add(b.Decimal)}
}

// MarshalJSON encodes the amount as a bare JSON number, matching the shape
// the original data was persisted in.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.Decimal.String()), nil
}

// UnmarshalJSON accepts bare numbers, quoted numbers, and garbage. Garbage
// resolves to zero.
func (a *Amount) UnmarshalJSON(data []byte) error {
	d, err := decimal.NewFromString(string(bytes.Trim(data, `"`)))
	if err != nil {
		a.Decimal = decimal.Zero
		return nil
	}
	a.Decimal = d
	return nil
}

// Quantity is a unit count with the same lenient unmarshalling as Amount.
type Quantity int64

// UnmarshalJSON accepts bare or quoted integers; anything else resolves to zero.
func (q *Quantity) UnmarshalJSON(data []byte) error {
	d, err := decimal.NewFromString(string(bytes.Trim(data, `"`)))
	if err != nil {
		*q = 0
		return nil
	}
	*q = Quantity(d.IntPart())
	return nil
}

// Decimal returns the quantity as a decimal for money math.
func (q Quantity) Decimal() decimal.Decimal {
	return decimal.NewFromInt(int64(q))
}
