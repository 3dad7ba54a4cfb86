package entity

import (
	"FinTrack/pkg/response"
	"net/http"

	"github.com/shopspring/decimal"
)

var (
	ErrNegativeAmount = response.NewError(http.StatusBadRequest, "money amount cannot be negative")
	ErrNegativeResult = response.NewError(http.StatusBadRequest, "money operation result cannot be negative")
)

// Money is a non-negative monetary amount kept at two decimal places.
// Rounding is banker's rounding (round-half-to-even), applied on
// construction and after every arithmetic operation.
type Money struct {
	amount decimal.Decimal
}

func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, ErrNegativeAmount
	}
	return Money{amount: amount.RoundBank(2)}, nil
}

func NewMoneyFromFloat(amount float64) (Money, error) {
	return NewMoney(decimal.NewFromFloat(amount))
}

// MustMoney panics on a negative amount. Intended for constants and tests.
func MustMoney(amount float64) Money {
	m, err := NewMoneyFromFloat(amount)
	if err != nil {
		panic(err)
	}
	return m
}

func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount).RoundBank(2)}
}

func (m Money) Sub(other Money) (Money, error) {
	result := m.amount.Sub(other.amount)
	if result.IsNegative() {
		return Money{}, ErrNegativeResult
	}
	return Money{amount: result.RoundBank(2)}, nil
}

func (m Money) Mul(factor float64) (Money, error) {
	result := m.amount.Mul(decimal.NewFromFloat(factor))
	if result.IsNegative() {
		return Money{}, ErrNegativeResult
	}
	return Money{amount: result.RoundBank(2)}, nil
}

// Equal compares the rounded amounts. Money has no identity beyond its value.
func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

func (m Money) Amount() decimal.Decimal {
	return m.amount
}

func (m Money) Float64() float64 {
	return m.amount.InexactFloat64()
}

func (m Money) String() string {
	return m.amount.StringFixedBank(2)
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.amount.StringFixedBank(2)), nil
}

func (m *Money) UnmarshalJSON(data []byte) error {
	parsed, err := decimal.NewFromString(string(data))
	if err != nil {
		return err
	}
	money, err := NewMoney(parsed)
	if err != nil {
		return err
	}
	*m = money
	return nil
}
