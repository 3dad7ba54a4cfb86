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

const dateLayout = "2006-01-02"

// GetPeriodSummary totals income, expenses and the transaction count over an
// inclusive date range. The three reads share the identical bounds but are
// separate queries; a write landing between them can skew one summary.
// CheckConsistency exists to reconcile that.
func (s *reportService) GetPeriodSummary(ctx context.Context, start, end time.Time) (report.PeriodSummary, error) {
	requestID := contextPkg.GetRequestID(ctx)

	start = entity.DateOnly(start)
	end = entity.DateOnly(end)

	if err := s.validatePeriod(ctx, start, end); err != nil {
		return report.PeriodSummary{}, err
	}

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return report.PeriodSummary{}, err
	}

	income, err := repo.Transaction.SumAmountByDirectionAndRange(ctx, entity.TransactionTypeIncome, start, end)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to sum income for period")
		return report.PeriodSummary{}, err
	}

	expenses, err := repo.Transaction.SumAmountByDirectionAndRange(ctx, entity.TransactionTypeExpense, start, end)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to sum expenses for period")
		return report.PeriodSummary{}, err
	}

	count, err := repo.Transaction.CountByDateRange(ctx, start, end)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to count transactions for period")
		return report.PeriodSummary{}, err
	}

	return makePeriodSummary(start, end, income, expenses, count), nil
}

// validatePeriod runs before any query is issued; a rejected call never
// observes partial state.
func (s *reportService) validatePeriod(ctx context.Context, start, end time.Time) error {
	requestID := contextPkg.GetRequestID(ctx)

	if start.After(end) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"start":      start.Format(dateLayout),
			"end":        end.Format(dateLayout),
		}).Warn("Period start is after end")
		return report.ErrInvalidPeriod
	}

	today := entity.DateOnly(s.now())
	if start.After(today) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"start":      start.Format(dateLayout),
		}).Warn("Period start is in the future")
		return report.ErrFuturePeriod
	}

	return nil
}

func makePeriodSummary(start, end time.Time, income, expenses decimal.Decimal, count int) report.PeriodSummary {
	return report.PeriodSummary{
		StartDate:        start.Format(dateLayout),
		EndDate:          end.Format(dateLayout),
		TotalIncome:      income.RoundBank(2).InexactFloat64(),
		TotalExpenses:    expenses.RoundBank(2).InexactFloat64(),
		Balance:          income.Sub(expenses).RoundBank(2).InexactFloat64(),
		TransactionCount: count,
	}
}
