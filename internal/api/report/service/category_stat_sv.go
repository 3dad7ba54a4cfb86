package reportService

import (
	"FinTrack/internal/api/report"
	"FinTrack/internal/entity"
	contextPkg "FinTrack/pkg/context"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const (
	minTopLimit = 1
	maxTopLimit = 20
)

type categoryAccumulator struct {
	category entity.Category
	total    decimal.Decimal
	count    int
}

// GetCategoryStats breaks the period's combined volume down per category.
// Categories without a transaction in the period are omitted, not zero-filled.
func (s *reportService) GetCategoryStats(ctx context.Context, start, end time.Time) ([]report.CategoryStat, error) {
	requestID := contextPkg.GetRequestID(ctx)

	start = entity.DateOnly(start)
	end = entity.DateOnly(end)

	if err := s.validatePeriod(ctx, start, end); err != nil {
		return nil, err
	}

	transactionRepo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, err
	}

	categoryRepo, err := s.categoryRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create category client")
		return nil, err
	}

	categories, err := categoryRepo.Category.GetCategories(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get categories")
		return nil, err
	}

	transactions, err := transactionRepo.Transaction.GetTransactionsByDateRange(ctx, start, end)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get transactions for period")
		return nil, err
	}

	accumulators := make(map[string]*categoryAccumulator, len(categories))
	for _, cat := range categories {
		accumulators[cat.ID] = &categoryAccumulator{category: cat, total: decimal.Zero}
	}

	// Grand total covers both directions combined.
	grandTotal := decimal.Zero
	for _, tr := range transactions {
		grandTotal = grandTotal.Add(tr.Amount.Amount())

		acc, ok := accumulators[tr.CategoryID]
		if !ok {
			continue
		}
		acc.total = acc.total.Add(tr.Amount.Amount())
		acc.count++
	}

	stats := make([]*categoryAccumulator, 0, len(accumulators))
	for _, acc := range accumulators {
		if acc.count == 0 {
			continue
		}
		stats = append(stats, acc)
	}

	sort.Slice(stats, func(i, j int) bool {
		if !stats[i].total.Equal(stats[j].total) {
			return stats[i].total.GreaterThan(stats[j].total)
		}
		return stats[i].category.Name < stats[j].category.Name
	})

	result := make([]report.CategoryStat, 0, len(stats))
	for _, acc := range stats {
		result = append(result, makeCategoryStat(acc, grandTotal))
	}

	return result, nil
}

func (s *reportService) GetTopCategories(ctx context.Context, start, end time.Time, direction string, limit int) ([]report.CategoryStat, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if limit < minTopLimit || limit > maxTopLimit {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"limit":      limit,
		}).Warn("Top categories limit out of range")
		return nil, report.ErrInvalidLimit
	}

	if !entity.IsValidTransactionType(direction) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"direction":  direction,
		}).Warn("Invalid top categories direction")
		return nil, report.ErrInvalidDirection
	}

	stats, err := s.GetCategoryStats(ctx, start, end)
	if err != nil {
		return nil, err
	}

	// Stats are already sorted by total descending; filtering preserves it.
	result := make([]report.CategoryStat, 0, limit)
	for _, stat := range stats {
		if stat.Direction != direction {
			continue
		}
		result = append(result, stat)
		if len(result) == limit {
			break
		}
	}

	return result, nil
}

func makeCategoryStat(acc *categoryAccumulator, grandTotal decimal.Decimal) report.CategoryStat {
	percentage := decimal.Zero
	if !grandTotal.IsZero() {
		percentage = acc.total.Div(grandTotal).Mul(decimal.NewFromInt(100)).RoundBank(2)
	}

	return report.CategoryStat{
		CategoryID:       acc.category.ID,
		CategoryName:     acc.category.Name,
		CategoryType:     string(acc.category.Type),
		Direction:        string(acc.category.Direction()),
		TotalAmount:      acc.total.RoundBank(2).InexactFloat64(),
		TransactionCount: acc.count,
		Percentage:       percentage.InexactFloat64(),
	}
}
