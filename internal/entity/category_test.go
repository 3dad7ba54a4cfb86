package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryTypeDirection(t *testing.T) {
	tests := []struct {
		name         string
		categoryType CategoryType
		want         TransactionType
	}{
		{name: "food is expense", categoryType: CategoryTypeFood, want: TransactionTypeExpense},
		{name: "tax is expense", categoryType: CategoryTypeTax, want: TransactionTypeExpense},
		{name: "salary is income", categoryType: CategoryTypeSalary, want: TransactionTypeIncome},
		{name: "gift is income", categoryType: CategoryTypeGift, want: TransactionTypeIncome},
		{name: "unknown type falls back to expense", categoryType: CategoryType("mystery"), want: TransactionTypeExpense},
		{name: "empty type falls back to expense", categoryType: CategoryType(""), want: TransactionTypeExpense},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.categoryType.Direction())
		})
	}
}

func TestCategoryTypeDisplayName(t *testing.T) {
	assert.Equal(t, "Food & Dining", CategoryTypeFood.DisplayName())
	assert.Equal(t, "Other Income", CategoryTypeOtherIncome.DisplayName())
	assert.Equal(t, "Uncategorized", CategoryType("mystery").DisplayName())
}

func TestIsValidCategoryType(t *testing.T) {
	assert.True(t, IsValidCategoryType("housing"))
	assert.True(t, IsValidCategoryType("freelance"))
	assert.False(t, IsValidCategoryType("Housing"))
	assert.False(t, IsValidCategoryType(""))
}

func TestIsValidTransactionType(t *testing.T) {
	assert.True(t, IsValidTransactionType("income"))
	assert.True(t, IsValidTransactionType("expense"))
	assert.False(t, IsValidTransactionType("transfer"))
}

func TestCategoryTypesCoversTable(t *testing.T) {
	types := CategoryTypes()
	assert.Len(t, types, len(categoryTypeTable))
	for _, categoryType := range types {
		assert.True(t, IsValidCategoryType(string(categoryType)))
	}
}

func TestTransactionDirection(t *testing.T) {
	income := Transaction{CategoryType: CategoryTypeSalary}
	assert.True(t, income.IsIncome())
	assert.Equal(t, TransactionTypeIncome, income.Type())

	// A transaction whose category was deleted keeps counting as spending.
	orphan := Transaction{CategoryType: ""}
	assert.True(t, orphan.IsExpense())
}
