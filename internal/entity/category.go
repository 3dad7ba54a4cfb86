package entity

import (
	"time"
)

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

func IsValidTransactionType(transactionType string) bool {
	switch TransactionType(transactionType) {
	case TransactionTypeIncome, TransactionTypeExpense:
		return true
	default:
		return false
	}
}

type CategoryType string

const (
	CategoryTypeFood          CategoryType = "food"
	CategoryTypeTransport     CategoryType = "transportation"
	CategoryTypeHousing       CategoryType = "housing"
	CategoryTypeUtilities     CategoryType = "utilities"
	CategoryTypeEntertainment CategoryType = "entertainment"
	CategoryTypeShopping      CategoryType = "shopping"
	CategoryTypeHealth        CategoryType = "health"
	CategoryTypeEducation     CategoryType = "education"
	CategoryTypeTravel        CategoryType = "travel"
	CategoryTypeInsurance     CategoryType = "insurance"
	CategoryTypeTax           CategoryType = "tax"
	CategoryTypeOtherExpense  CategoryType = "other_expense"
	CategoryTypeSalary        CategoryType = "salary"
	CategoryTypeBonus         CategoryType = "bonus"
	CategoryTypeFreelance     CategoryType = "freelance"
	CategoryTypeInvestment    CategoryType = "investment"
	CategoryTypeGift          CategoryType = "gift"
	CategoryTypeOtherIncome   CategoryType = "other_income"
)

type categoryTypeInfo struct {
	direction   TransactionType
	displayName string
}

// Each category type carries its direction explicitly. Classification never
// depends on declaration order or numeric ranges.
var categoryTypeTable = map[CategoryType]categoryTypeInfo{
	CategoryTypeFood:          {TransactionTypeExpense, "Food & Dining"},
	CategoryTypeTransport:     {TransactionTypeExpense, "Transportation"},
	CategoryTypeHousing:       {TransactionTypeExpense, "Housing"},
	CategoryTypeUtilities:     {TransactionTypeExpense, "Utilities"},
	CategoryTypeEntertainment: {TransactionTypeExpense, "Entertainment"},
	CategoryTypeShopping:      {TransactionTypeExpense, "Shopping"},
	CategoryTypeHealth:        {TransactionTypeExpense, "Health"},
	CategoryTypeEducation:     {TransactionTypeExpense, "Education"},
	CategoryTypeTravel:        {TransactionTypeExpense, "Travel"},
	CategoryTypeInsurance:     {TransactionTypeExpense, "Insurance"},
	CategoryTypeTax:           {TransactionTypeExpense, "Tax"},
	CategoryTypeOtherExpense:  {TransactionTypeExpense, "Other Expenses"},
	CategoryTypeSalary:        {TransactionTypeIncome, "Salary"},
	CategoryTypeBonus:         {TransactionTypeIncome, "Bonus"},
	CategoryTypeFreelance:     {TransactionTypeIncome, "Freelance"},
	CategoryTypeInvestment:    {TransactionTypeIncome, "Investment"},
	CategoryTypeGift:          {TransactionTypeIncome, "Gift"},
	CategoryTypeOtherIncome:   {TransactionTypeIncome, "Other Income"},
}

func IsValidCategoryType(categoryType string) bool {
	_, ok := categoryTypeTable[CategoryType(categoryType)]
	return ok
}

// Direction falls back to expense for an unknown type. A transaction whose
// category cannot be resolved is counted as spending, never as income.
func (t CategoryType) Direction() TransactionType {
	info, ok := categoryTypeTable[t]
	if !ok {
		return TransactionTypeExpense
	}
	return info.direction
}

func (t CategoryType) DisplayName() string {
	info, ok := categoryTypeTable[t]
	if !ok {
		return "Uncategorized"
	}
	return info.displayName
}

func (t CategoryType) IsExpense() bool {
	return t.Direction() == TransactionTypeExpense
}

func (t CategoryType) IsIncome() bool {
	return t.Direction() == TransactionTypeIncome
}

// CategoryTypes lists every known type, expense types first.
func CategoryTypes() []CategoryType {
	return []CategoryType{
		CategoryTypeFood,
		CategoryTypeTransport,
		CategoryTypeHousing,
		CategoryTypeUtilities,
		CategoryTypeEntertainment,
		CategoryTypeShopping,
		CategoryTypeHealth,
		CategoryTypeEducation,
		CategoryTypeTravel,
		CategoryTypeInsurance,
		CategoryTypeTax,
		CategoryTypeOtherExpense,
		CategoryTypeSalary,
		CategoryTypeBonus,
		CategoryTypeFreelance,
		CategoryTypeInvestment,
		CategoryTypeGift,
		CategoryTypeOtherIncome,
	}
}

type Category struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Type      CategoryType `json:"type"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

func (c *Category) Direction() TransactionType {
	return c.Type.Direction()
}

func (c *Category) IsExpenseCategory() bool {
	return c.Type.IsExpense()
}

func (c *Category) IsIncomeCategory() bool {
	return c.Type.IsIncome()
}

func (c *Category) DisplayName() string {
	return c.Type.DisplayName()
}
