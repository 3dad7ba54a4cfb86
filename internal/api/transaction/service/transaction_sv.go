package transactionService

import (
	"FinTrack/internal/api/transaction"
	"FinTrack/internal/entity"
	contextPkg "FinTrack/pkg/context"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const dateLayout = "2006-01-02"

func (s *transactionService) CreateTransaction(ctx context.Context, req transaction.CreateTransactionRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	categoryRepo, err := s.categoryRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create category client")
		return err
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"date":       req.Date,
		}).Warn("Invalid transaction date")
		return transaction.ErrInvalidDate
	}

	amount, err := entity.NewMoneyFromFloat(req.Amount)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"amount":     req.Amount,
		}).Warn("Invalid transaction amount")
		return transaction.ErrInvalidAmount
	}

	if _, err := categoryRepo.Category.GetCategoryByID(ctx, req.CategoryID); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id":  requestID,
			"category_id": req.CategoryID,
			"error":       err.Error(),
		}).Warn("Transaction category does not exist")
		return transaction.ErrUnknownCategory
	}

	ULID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return err
	}

	tr := entity.Transaction{
		ID:          ULID,
		Description: req.Description,
		Amount:      amount,
		Date:        entity.DateOnly(date),
		CategoryID:  req.CategoryID,
		CreatedAt:   time.Now(),
	}

	if err := repo.Transaction.CreateTransaction(ctx, tr); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create transaction")
		return transaction.ErrCreateTransaction
	}

	return nil
}

func (s *transactionService) GetTransactionByID(ctx context.Context, id string) (entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Transaction{}, err
	}

	tr, err := repo.Transaction.GetTransactionByID(ctx, id)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to get transaction by ID")
		return entity.Transaction{}, err
	}

	return tr, nil
}

func (s *transactionService) GetTransactions(ctx context.Context) ([]entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, err
	}

	transactions, err := repo.Transaction.GetTransactions(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get transactions")
		return nil, err
	}

	return transactions, nil
}

func (s *transactionService) GetTransactionsByDateRange(ctx context.Context, start, end time.Time) ([]entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, err
	}

	transactions, err := repo.Transaction.GetTransactionsByDateRange(ctx, entity.DateOnly(start), entity.DateOnly(end))
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get transactions by date range")
		return nil, err
	}

	return transactions, nil
}

func (s *transactionService) GetTransactionsByCategory(ctx context.Context, categoryID string) ([]entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, err
	}

	transactions, err := repo.Transaction.GetTransactionsByCategory(ctx, categoryID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id":  requestID,
			"category_id": categoryID,
			"error":       err.Error(),
		}).Error("Failed to get transactions by category")
		return nil, err
	}

	return transactions, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, req transaction.UpdateTransactionRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	categoryRepo, err := s.categoryRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create category client")
		return err
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"date":       req.Date,
		}).Warn("Invalid transaction date")
		return transaction.ErrInvalidDate
	}

	amount, err := entity.NewMoneyFromFloat(req.Amount)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"amount":     req.Amount,
		}).Warn("Invalid transaction amount")
		return transaction.ErrInvalidAmount
	}

	if _, err := repo.Transaction.GetTransactionByID(ctx, req.ID); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         req.ID,
			"error":      err.Error(),
		}).Error("Failed to get existing transaction")
		return err
	}

	if _, err := categoryRepo.Category.GetCategoryByID(ctx, req.CategoryID); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id":  requestID,
			"category_id": req.CategoryID,
			"error":       err.Error(),
		}).Warn("Transaction category does not exist")
		return transaction.ErrUnknownCategory
	}

	tr := entity.Transaction{
		ID:          req.ID,
		Description: req.Description,
		Amount:      amount,
		Date:        entity.DateOnly(date),
		CategoryID:  req.CategoryID,
		UpdatedAt:   time.Now(),
	}

	if err := repo.Transaction.UpdateTransaction(ctx, tr); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to update transaction")
		return transaction.ErrUpdateTransaction
	}

	return nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	if _, err := repo.Transaction.GetTransactionByID(ctx, id); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to get existing transaction")
		return err
	}

	if err := repo.Transaction.DeleteTransaction(ctx, id); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to delete transaction")
		return transaction.ErrDeleteTransaction
	}

	return nil
}
