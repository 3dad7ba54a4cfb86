package transactionRepository

import (
	"FinTrack/internal/api/transaction"
	"FinTrack/internal/entity"
	contextPkg "FinTrack/pkg/context"
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type TransactionDB struct {
	ID              sql.NullString  `db:"id"`
	Description     sql.NullString  `db:"description"`
	Amount          decimal.Decimal `db:"amount"`
	TransactionDate time.Time       `db:"transaction_date"`
	CategoryID      sql.NullString  `db:"category_id"`
	CategoryName    sql.NullString  `db:"category_name"`
	CategoryType    sql.NullString  `db:"category_type"`
	CreatedAt       time.Time       `db:"created_at"`
	UpdatedAt       sql.NullTime    `db:"updated_at"`
}

func (r *transactionRepository) CreateTransaction(c context.Context, tr entity.Transaction) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":               tr.ID,
		"description":      tr.Description,
		"amount":           tr.Amount.Amount(),
		"transaction_date": tr.Date,
		"category_id":      tr.CategoryID,
		"created_at":       time.Now(),
		"updated_at":       nil,
	}

	query, args, err := sqlx.Named(queryCreateTransaction, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateTransaction named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err = r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating transaction")
		return err
	}

	return nil
}

func (r *transactionRepository) GetTransactionByID(c context.Context, id string) (entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(c)
	var tr TransactionDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetTransactionByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTransactionByID named query preparation err")
		return entity.Transaction{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&tr); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("GetTransactionByID no rows found")
			return entity.Transaction{}, transaction.ErrTransactionNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTransactionByID execution err")
		return entity.Transaction{}, err
	}

	return r.makeTransaction(tr), nil
}

func (r *transactionRepository) GetTransactions(c context.Context) ([]entity.Transaction, error) {
	return r.selectTransactions(c, queryGetTransactions, map[string]interface{}{}, "GetTransactions")
}

func (r *transactionRepository) GetTransactionsByDateRange(c context.Context, start, end time.Time) ([]entity.Transaction, error) {
	argsKV := map[string]interface{}{
		"start_date": start,
		"end_date":   end,
	}
	return r.selectTransactions(c, queryGetTransactionsByDateRange, argsKV, "GetTransactionsByDateRange")
}

func (r *transactionRepository) GetTransactionsByCategory(c context.Context, categoryID string) ([]entity.Transaction, error) {
	argsKV := map[string]interface{}{
		"category_id": categoryID,
	}
	return r.selectTransactions(c, queryGetTransactionsByCategory, argsKV, "GetTransactionsByCategory")
}

func (r *transactionRepository) GetRecentTransactions(c context.Context, limit int) ([]entity.Transaction, error) {
	argsKV := map[string]interface{}{
		"limit": limit,
	}
	return r.selectTransactions(c, queryGetRecentTransactions, argsKV, "GetRecentTransactions")
}

func (r *transactionRepository) SumAmountByDirectionAndRange(c context.Context, direction entity.TransactionType, start, end time.Time) (decimal.Decimal, error) {
	requestID := contextPkg.GetRequestID(c)
	var sum decimal.Decimal

	argsKV := map[string]interface{}{
		"direction":  string(direction),
		"start_date": start,
		"end_date":   end,
	}

	query, args, err := sqlx.Named(querySumAmountByDirectionAndRange, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("SumAmountByDirectionAndRange named query preparation err")
		return decimal.Zero, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).Scan(&sum); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"direction":  direction,
			"error":      err.Error(),
		}).Error("SumAmountByDirectionAndRange execution err")
		return decimal.Zero, err
	}

	return sum, nil
}

func (r *transactionRepository) CountByDateRange(c context.Context, start, end time.Time) (int, error) {
	requestID := contextPkg.GetRequestID(c)
	var count int

	argsKV := map[string]interface{}{
		"start_date": start,
		"end_date":   end,
	}

	query, args, err := sqlx.Named(queryCountByDateRange, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountByDateRange named query preparation err")
		return 0, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).Scan(&count); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountByDateRange execution err")
		return 0, err
	}

	return count, nil
}

func (r *transactionRepository) UpdateTransaction(c context.Context, tr entity.Transaction) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":               tr.ID,
		"description":      tr.Description,
		"amount":           tr.Amount.Amount(),
		"transaction_date": tr.Date,
		"category_id":      tr.CategoryID,
		"updated_at":       time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateTransaction, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateTransaction named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateTransaction execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateTransaction rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("UpdateTransaction no rows affected")
		return transaction.ErrTransactionNotFound
	}

	return nil
}

func (r *transactionRepository) DeleteTransaction(c context.Context, id string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeleteTransaction, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteTransaction named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteTransaction execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteTransaction rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("DeleteTransaction no rows affected")
		return transaction.ErrTransactionNotFound
	}

	return nil
}

func (r *transactionRepository) selectTransactions(c context.Context, namedQuery string, argsKV map[string]interface{}, operation string) ([]entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(c)
	var transactions []TransactionDB

	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"operation":  operation,
			"error":      err.Error(),
		}).Error("named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &transactions, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"operation":  operation,
			"error":      err.Error(),
		}).Error("execution err")
		return nil, err
	}

	result := make([]entity.Transaction, 0, len(transactions))
	for _, tr := range transactions {
		result = append(result, r.makeTransaction(tr))
	}

	return result, nil
}

func (r *transactionRepository) makeTransaction(tr TransactionDB) entity.Transaction {
	// Stored amounts are non-negative; a malformed row degrades to zero.
	amount, err := entity.NewMoney(tr.Amount)
	if err != nil {
		amount = entity.ZeroMoney()
	}

	var updatedAt time.Time
	if tr.UpdatedAt.Valid {
		updatedAt = tr.UpdatedAt.Time
	}

	return entity.Transaction{
		ID:           tr.ID.String,
		Description:  tr.Description.String,
		Amount:       amount,
		Date:         entity.DateOnly(tr.TransactionDate),
		CategoryID:   tr.CategoryID.String,
		CategoryName: tr.CategoryName.String,
		CategoryType: entity.CategoryType(tr.CategoryType.String),
		CreatedAt:    tr.CreatedAt,
		UpdatedAt:    updatedAt,
	}
}
