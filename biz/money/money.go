// Package money provides fixed-point two-decimal amounts for cash and share
// quantities. All arithmetic is decimal, never binary floating point.
package money

import (
	"encoding/json"
	"fmt"

	gomoney "github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Amount is a fixed-point decimal with two-decimal-place precision.
// The zero value is 0.00 and ready to use.
type Amount struct {
	dec decimal.Decimal
}

// FromString parses a decimal string like "1234.56". The value is rounded
// to two decimal places.
func FromString(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, fmt.Errorf("parse amount %q: %w", s, err)
	}
	return Amount{dec: d.Round(2)}, nil
}

// MustFromString is FromString that panics on a malformed literal.
func MustFromString(s string) Amount {
	a, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return a
}

// FromFloat converts a float, rounding to two decimal places.
func FromFloat(f float64) Amount {
	return Amount{dec: decimal.NewFromFloat(f).Round(2)}
}

// Zero returns 0.00.
func Zero() Amount {
	return Amount{}
}

func (a Amount) Add(b Amount) Amount { return Amount{dec: a.dec.Add(b.dec)} }
func (a Amount) Sub(b Amount) Amount { return Amount{dec: a.dec.Sub(b.dec)} }
func (a Amount) Neg() Amount         { return Amount{dec: a.dec.Neg()} }

// Mul multiplies two amounts (quantity × price) and rounds the result to
// two decimal places.
func (a Amount) Mul(b Amount) Amount {
	return Amount{dec: a.dec.Mul(b.dec).Round(2)}
}

func (a Amount) Equal(b Amount) bool       { return a.dec.Equal(b.dec) }
func (a Amount) GreaterThan(b Amount) bool { return a.dec.GreaterThan(b.dec) }
func (a Amount) LessThan(b Amount) bool    { return a.dec.LessThan(b.dec) }
func (a Amount) IsZero() bool              { return a.dec.IsZero() }

// Sign returns -1, 0, or 1.
func (a Amount) Sign() int { return a.dec.Sign() }

// String returns the plain fixed-point form, e.g. "1234.56". This is the
// storage representation for numeric columns.
func (a Amount) String() string {
	return a.dec.StringFixed(2)
}

// MarshalJSON encodes the amount as its fixed-point string form.
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON accepts both a quoted string and a bare JSON number.
func (a *Amount) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		s = string(b)
	}
	parsed, err := FromString(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// USD formats the amount as a US dollar string, e.g. "$1,234.56".
func (a Amount) USD() string {
	cents := a.dec.Shift(2).IntPart()
	return gomoney.New(cents, gomoney.USD).Display()
}
