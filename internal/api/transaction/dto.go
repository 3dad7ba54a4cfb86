package transaction

type CreateTransactionRequest struct {
	Description string  `json:"description" validate:"required,min=1,max=255"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Date        string  `json:"date" validate:"required"`
	CategoryID  string  `json:"category_id" validate:"required"`
}

type UpdateTransactionRequest struct {
	ID          string  `json:"id" validate:"required"`
	Description string  `json:"description" validate:"required,min=1,max=255"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Date        string  `json:"date" validate:"required"`
	CategoryID  string  `json:"category_id" validate:"required"`
}

type TransactionResponse struct {
	ID           string  `json:"id"`
	Description  string  `json:"description"`
	Amount       float64 `json:"amount"`
	Date         string  `json:"date"`
	Type         string  `json:"type"`
	CategoryID   string  `json:"category_id"`
	CategoryName string  `json:"category_name"`
	CategoryType string  `json:"category_type"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at,omitempty"`
}

type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	TotalIncome  float64               `json:"total_income"`
	TotalExpense float64               `json:"total_expense"`
	Balance      float64               `json:"balance"`
}
