package reportService

import (
	categoryRepository "FinTrack/internal/api/category/repository"
	transactionRepository "FinTrack/internal/api/transaction/repository"
	"FinTrack/internal/entity"
	"errors"
	"io"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// In-memory stores standing in for the Postgres repositories. Sums and counts
// are derived from the same slice the row queries read, so an aggregate and
// its recomputation can only diverge if the service logic does.

type fakeTransactionStore struct {
	transactions []entity.Transaction
}

func (s *fakeTransactionStore) inRange(tr entity.Transaction, start, end time.Time) bool {
	date := entity.DateOnly(tr.Date)
	return !date.Before(start) && !date.After(end)
}

func (s *fakeTransactionStore) CreateTransaction(_ context.Context, tr entity.Transaction) error {
	s.transactions = append(s.transactions, tr)
	return nil
}

func (s *fakeTransactionStore) GetTransactionByID(_ context.Context, id string) (entity.Transaction, error) {
	for _, tr := range s.transactions {
		if tr.ID == id {
			return tr, nil
		}
	}
	return entity.Transaction{}, errors.New("transaction not found")
}

func (s *fakeTransactionStore) GetTransactions(_ context.Context) ([]entity.Transaction, error) {
	return s.transactions, nil
}

func (s *fakeTransactionStore) GetTransactionsByDateRange(_ context.Context, start, end time.Time) ([]entity.Transaction, error) {
	result := make([]entity.Transaction, 0)
	for _, tr := range s.transactions {
		if s.inRange(tr, start, end) {
			result = append(result, tr)
		}
	}
	return result, nil
}

func (s *fakeTransactionStore) GetTransactionsByCategory(_ context.Context, categoryID string) ([]entity.Transaction, error) {
	result := make([]entity.Transaction, 0)
	for _, tr := range s.transactions {
		if tr.CategoryID == categoryID {
			result = append(result, tr)
		}
	}
	return result, nil
}

func (s *fakeTransactionStore) GetRecentTransactions(_ context.Context, limit int) ([]entity.Transaction, error) {
	sorted := make([]entity.Transaction, len(s.transactions))
	copy(sorted, s.transactions)
	// Recency means entry order, not transaction date.
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted, nil
}

func (s *fakeTransactionStore) SumAmountByDirectionAndRange(_ context.Context, direction entity.TransactionType, start, end time.Time) (decimal.Decimal, error) {
	sum := decimal.Zero
	for i := range s.transactions {
		tr := s.transactions[i]
		if !s.inRange(tr, start, end) || tr.Type() != direction {
			continue
		}
		sum = sum.Add(tr.Amount.Amount())
	}
	return sum, nil
}

func (s *fakeTransactionStore) CountByDateRange(_ context.Context, start, end time.Time) (int, error) {
	count := 0
	for _, tr := range s.transactions {
		if s.inRange(tr, start, end) {
			count++
		}
	}
	return count, nil
}

func (s *fakeTransactionStore) UpdateTransaction(_ context.Context, updated entity.Transaction) error {
	for i, tr := range s.transactions {
		if tr.ID == updated.ID {
			s.transactions[i] = updated
			return nil
		}
	}
	return errors.New("transaction not found")
}

func (s *fakeTransactionStore) DeleteTransaction(_ context.Context, id string) error {
	for i, tr := range s.transactions {
		if tr.ID == id {
			s.transactions = append(s.transactions[:i], s.transactions[i+1:]...)
			return nil
		}
	}
	return errors.New("transaction not found")
}

type fakeTransactionRepository struct {
	store *fakeTransactionStore
}

func (r *fakeTransactionRepository) NewClient(_ bool) (transactionRepository.Client, error) {
	return transactionRepository.Client{
		Transaction: r.store,
		Commit:      func() error { return nil },
		Rollback:    func() error { return nil },
	}, nil
}

type fakeCategoryStore struct {
	categories []entity.Category
}

func (s *fakeCategoryStore) CreateCategory(_ context.Context, cat entity.Category) error {
	s.categories = append(s.categories, cat)
	return nil
}

func (s *fakeCategoryStore) GetCategoryByID(_ context.Context, id string) (entity.Category, error) {
	for _, cat := range s.categories {
		if cat.ID == id {
			return cat, nil
		}
	}
	return entity.Category{}, errors.New("category not found")
}

func (s *fakeCategoryStore) GetCategoryByName(_ context.Context, name string) (entity.Category, error) {
	for _, cat := range s.categories {
		if cat.Name == name {
			return cat, nil
		}
	}
	return entity.Category{}, errors.New("category not found")
}

func (s *fakeCategoryStore) GetCategories(_ context.Context) ([]entity.Category, error) {
	return s.categories, nil
}

func (s *fakeCategoryStore) UpdateCategory(_ context.Context, updated entity.Category) error {
	for i, cat := range s.categories {
		if cat.ID == updated.ID {
			s.categories[i] = updated
			return nil
		}
	}
	return errors.New("category not found")
}

func (s *fakeCategoryStore) DeleteCategory(_ context.Context, id string) error {
	for i, cat := range s.categories {
		if cat.ID == id {
			s.categories = append(s.categories[:i], s.categories[i+1:]...)
			return nil
		}
	}
	return errors.New("category not found")
}

func (s *fakeCategoryStore) CountTransactions(_ context.Context, _ string) (int, error) {
	return 0, nil
}

type fakeCategoryRepository struct {
	store *fakeCategoryStore
}

func (r *fakeCategoryRepository) NewClient(_ bool) (categoryRepository.Client, error) {
	return categoryRepository.Client{
		Category: r.store,
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

func newTestService(now time.Time, categories []entity.Category, transactions []entity.Transaction) *reportService {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return &reportService{
		log:                   logger,
		transactionRepository: &fakeTransactionRepository{store: &fakeTransactionStore{transactions: transactions}},
		categoryRepository:    &fakeCategoryRepository{store: &fakeCategoryStore{categories: categories}},
		now:                   func() time.Time { return now },
	}
}

func day(year int, month time.Month, dayOfMonth int) time.Time {
	return time.Date(year, month, dayOfMonth, 0, 0, 0, 0, time.UTC)
}

func testTransaction(id string, amount float64, date time.Time, cat entity.Category) entity.Transaction {
	return entity.Transaction{
		ID:           id,
		Description:  "test " + id,
		Amount:       entity.MustMoney(amount),
		Date:         date,
		CategoryID:   cat.ID,
		CategoryName: cat.Name,
		CategoryType: cat.Type,
		CreatedAt:    date,
		UpdatedAt:    date,
	}
}
