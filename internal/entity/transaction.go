package entity

import (
	"time"
)

// Transaction is a single income or expense record. Its direction is derived
// through the linked category; CategoryName and CategoryType are populated by
// the repository join and are empty when the category cannot be resolved.
type Transaction struct {
	ID           string       `json:"id"`
	Description  string       `json:"description"`
	Amount       Money        `json:"amount"`
	Date         time.Time    `json:"date"`
	CategoryID   string       `json:"category_id"`
	CategoryName string       `json:"category_name"`
	CategoryType CategoryType `json:"category_type"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

func (t *Transaction) Type() TransactionType {
	return t.CategoryType.Direction()
}

func (t *Transaction) IsIncome() bool {
	return t.Type() == TransactionTypeIncome
}

func (t *Transaction) IsExpense() bool {
	return t.Type() == TransactionTypeExpense
}

// DateOnly strips the time component; transaction dates are calendar days.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
