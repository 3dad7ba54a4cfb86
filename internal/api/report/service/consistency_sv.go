package reportService

import (
	"FinTrack/internal/api/report"
	"FinTrack/internal/entity"
	contextPkg "FinTrack/pkg/context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// CheckConsistency recomputes a period summary from the raw rows and compares
// it with the SQL aggregate. A mismatch is reported in the payload and logged,
// not returned as an error; the caller decides what to do with it.
func (s *reportService) CheckConsistency(ctx context.Context, start, end time.Time) (report.ConsistencyCheck, error) {
	requestID := contextPkg.GetRequestID(ctx)

	start = entity.DateOnly(start)
	end = entity.DateOnly(end)

	if err := s.validatePeriod(ctx, start, end); err != nil {
		return report.ConsistencyCheck{}, err
	}

	aggregate, err := s.GetPeriodSummary(ctx, start, end)
	if err != nil {
		return report.ConsistencyCheck{}, err
	}

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return report.ConsistencyCheck{}, err
	}

	transactions, err := repo.Transaction.GetTransactionsByDateRange(ctx, start, end)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get transactions for consistency check")
		return report.ConsistencyCheck{}, err
	}

	income := decimal.Zero
	expenses := decimal.Zero
	for _, tr := range transactions {
		if tr.IsIncome() {
			income = income.Add(tr.Amount.Amount())
		} else {
			expenses = expenses.Add(tr.Amount.Amount())
		}
	}

	recomputed := makePeriodSummary(start, end, income, expenses, len(transactions))

	consistent := aggregate.TotalIncome == recomputed.TotalIncome &&
		aggregate.TotalExpenses == recomputed.TotalExpenses &&
		aggregate.Balance == recomputed.Balance &&
		aggregate.TransactionCount == recomputed.TransactionCount

	if !consistent {
		s.log.WithFields(logrus.Fields{
			"request_id":       requestID,
			"start":            recomputed.StartDate,
			"end":              recomputed.EndDate,
			"aggregate_count":  aggregate.TransactionCount,
			"recomputed_count": recomputed.TransactionCount,
		}).Warn("Aggregate and recomputed summaries diverge")
	}

	return report.ConsistencyCheck{
		StartDate:  recomputed.StartDate,
		EndDate:    recomputed.EndDate,
		Consistent: consistent,
		Aggregate:  aggregate,
		Recomputed: recomputed,
	}, nil
}
