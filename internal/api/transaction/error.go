package transaction

import "FinTrack/pkg/response"

var (
	ErrTransactionNotFound = response.NewError(404, "transaction not found")
	ErrInvalidAmount       = response.NewError(400, "invalid transaction amount")
	ErrInvalidDate         = response.NewError(400, "invalid transaction date, expected YYYY-MM-DD")
	ErrUnknownCategory     = response.NewError(400, "transaction category does not exist")
	ErrCreateTransaction   = response.NewError(500, "failed to create transaction")
	ErrUpdateTransaction   = response.NewError(500, "failed to update transaction")
	ErrDeleteTransaction   = response.NewError(500, "failed to delete transaction")
)
