package reportService

import (
	"FinTrack/internal/api/report"
	contextPkg "FinTrack/pkg/context"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// ComparePeriods is pure arithmetic over two already-computed summaries; it
// never touches the database.
func (s *reportService) ComparePeriods(current, previous report.PeriodSummary, label string) report.ComparisonResult {
	currIncome := decimal.NewFromFloat(current.TotalIncome)
	prevIncome := decimal.NewFromFloat(previous.TotalIncome)
	currExpenses := decimal.NewFromFloat(current.TotalExpenses)
	prevExpenses := decimal.NewFromFloat(previous.TotalExpenses)
	currBalance := decimal.NewFromFloat(current.Balance)
	prevBalance := decimal.NewFromFloat(previous.Balance)

	incomePct := variancePercentage(currIncome, prevIncome)
	expensePct := variancePercentage(currExpenses, prevExpenses)
	balancePct := variancePercentage(currBalance, prevBalance)

	return report.ComparisonResult{
		Label:                     label,
		Current:                   current,
		Previous:                  previous,
		IncomeVarianceAmount:      currIncome.Sub(prevIncome).RoundBank(2).InexactFloat64(),
		IncomeVariancePercentage:  incomePct.InexactFloat64(),
		ExpenseVarianceAmount:     currExpenses.Sub(prevExpenses).RoundBank(2).InexactFloat64(),
		ExpenseVariancePercentage: expensePct.InexactFloat64(),
		BalanceVarianceAmount:     currBalance.Sub(prevBalance).RoundBank(2).InexactFloat64(),
		BalanceVariancePercentage: balancePct.InexactFloat64(),
		IncomeImproved:            incomePct.GreaterThan(decimal.Zero),
		ExpenseImproved:           expensePct.LessThan(decimal.Zero),
		BalanceImproved:           balancePct.GreaterThan(decimal.Zero),
	}
}

// variancePercentage keeps a deliberate convention when the previous value
// is zero: 0 when the current value is positive, otherwise 100. A flat
// zero-to-zero period therefore reads as 100, not 0 — counterintuitive, but
// consumers depend on it. Division by the absolute previous value keeps the
// sign meaningful for negative balances.
func variancePercentage(curr, prev decimal.Decimal) decimal.Decimal {
	if prev.IsZero() {
		if curr.GreaterThan(decimal.Zero) {
			return decimal.Zero
		}
		return decimal.NewFromInt(100)
	}
	return curr.Sub(prev).Div(prev.Abs()).Mul(decimal.NewFromInt(100)).RoundBank(2)
}

func (s *reportService) GetMonthOverMonth(ctx context.Context) (report.ComparisonResult, error) {
	requestID := contextPkg.GetRequestID(ctx)

	now := s.now()
	firstOfCurrentMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	firstOfLastMonth := firstOfCurrentMonth.AddDate(0, -1, 0)

	current, err := s.GetPeriodSummary(ctx, firstOfCurrentMonth, firstOfCurrentMonth.AddDate(0, 1, -1))
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to summarize current month")
		return report.ComparisonResult{}, err
	}

	previous, err := s.GetPeriodSummary(ctx, firstOfLastMonth, firstOfCurrentMonth.AddDate(0, 0, -1))
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to summarize last month")
		return report.ComparisonResult{}, err
	}

	label := fmt.Sprintf("%s %d vs %s %d",
		firstOfCurrentMonth.Month(), firstOfCurrentMonth.Year(),
		firstOfLastMonth.Month(), firstOfLastMonth.Year(),
	)

	return s.ComparePeriods(current, previous, label), nil
}

func (s *reportService) GetYearOverYear(ctx context.Context) (report.ComparisonResult, error) {
	requestID := contextPkg.GetRequestID(ctx)

	now := s.now()
	currentStart := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	currentEnd := time.Date(now.Year(), time.December, 31, 0, 0, 0, 0, now.Location())
	previousStart := time.Date(now.Year()-1, time.January, 1, 0, 0, 0, 0, now.Location())
	previousEnd := time.Date(now.Year()-1, time.December, 31, 0, 0, 0, 0, now.Location())

	current, err := s.GetPeriodSummary(ctx, currentStart, currentEnd)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to summarize current year")
		return report.ComparisonResult{}, err
	}

	previous, err := s.GetPeriodSummary(ctx, previousStart, previousEnd)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to summarize last year")
		return report.ComparisonResult{}, err
	}

	label := strconv.Itoa(now.Year()) + " vs " + strconv.Itoa(now.Year()-1)

	return s.ComparePeriods(current, previous, label), nil
}
