package models

import (
	"database/sql/driver"

	"github.com/shopspring/decimal"
)

// Money is a currency amount. It serializes as a two-decimal-place JSON
// string ("150.00"), matching what the kiosk and mobile app exchange, and
// scans directly from NUMERIC database columns.
type Money struct {
	decimal.Decimal
}

func NewMoney(d decimal.Decimal) Money {
	return Money{Decimal: d}
}

// MoneyFromString parses an amount like "150.00". Invalid input returns an error.
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, err
	}
	return Money{Decimal: d}, nil
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.Decimal.StringFixed(2) + `"`), nil
}

func (m *Money) UnmarshalJSON(data []byte) error {
	return m.Decimal.UnmarshalJSON(data)
}

func (m *Money) Scan(value interface{}) error {
	return m.Decimal.Scan(value)
}

func (m Money) Value() (driver.Value, error) {
	return m.Decimal.Value()
}

func (m Money) Add(other Money) Money {
	return Money{Decimal: m.Decimal.Add(other.Decimal)}
}

func (m Money) Equal(other Money) bool {
	return m.Decimal.Equal(other.Decimal)
}

func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}
