package reportService

import (
	"FinTrack/internal/api/report"
	"FinTrack/internal/entity"
	contextPkg "FinTrack/pkg/context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
	"golang.org/x/sync/errgroup"
)

const (
	dashboardTopCategories      = 5
	dashboardTrendMonths        = 6
	dashboardRecentTransactions = 10
)

// GetDashboard assembles the landing-page payload. The six sections are
// independent reads, so they run concurrently; the first failure cancels the
// rest.
func (s *reportService) GetDashboard(ctx context.Context) (report.FullDashboard, error) {
	requestID := contextPkg.GetRequestID(ctx)

	now := s.now()
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	firstOfYear := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	today := entity.DateOnly(now)

	var dashboard report.FullDashboard

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		summary, err := s.GetPeriodSummary(groupCtx, firstOfMonth, firstOfMonth.AddDate(0, 1, -1))
		if err != nil {
			return err
		}
		dashboard.CurrentMonth = summary
		return nil
	})

	group.Go(func() error {
		summary, err := s.GetPeriodSummary(groupCtx, firstOfMonth.AddDate(0, -1, 0), firstOfMonth.AddDate(0, 0, -1))
		if err != nil {
			return err
		}
		dashboard.LastMonth = summary
		return nil
	})

	group.Go(func() error {
		summary, err := s.GetPeriodSummary(groupCtx, firstOfYear, time.Date(now.Year(), time.December, 31, 0, 0, 0, 0, now.Location()))
		if err != nil {
			return err
		}
		dashboard.CurrentYear = summary
		return nil
	})

	group.Go(func() error {
		stats, err := s.GetTopCategories(groupCtx, firstOfMonth, today, string(entity.TransactionTypeExpense), dashboardTopCategories)
		if err != nil {
			return err
		}
		dashboard.TopExpenseCategories = stats
		return nil
	})

	group.Go(func() error {
		trend, err := s.GetMonthlyTrend(groupCtx, dashboardTrendMonths)
		if err != nil {
			return err
		}
		dashboard.MonthlyTrend = trend
		return nil
	})

	group.Go(func() error {
		repo, err := s.transactionRepository.NewClient(false)
		if err != nil {
			return err
		}
		transactions, err := repo.Transaction.GetRecentTransactions(groupCtx, dashboardRecentTransactions)
		if err != nil {
			return err
		}
		dashboard.RecentTransactions = makeRecentTransactions(transactions, now)
		return nil
	})

	if err := group.Wait(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to assemble dashboard")
		return report.FullDashboard{}, err
	}

	return dashboard, nil
}

func (s *reportService) GetPeriodDashboard(ctx context.Context, start, end time.Time) (report.PeriodDashboard, error) {
	requestID := contextPkg.GetRequestID(ctx)

	start = entity.DateOnly(start)
	end = entity.DateOnly(end)

	if err := s.validatePeriod(ctx, start, end); err != nil {
		return report.PeriodDashboard{}, err
	}

	summary, err := s.GetPeriodSummary(ctx, start, end)
	if err != nil {
		return report.PeriodDashboard{}, err
	}

	stats, err := s.GetCategoryStats(ctx, start, end)
	if err != nil {
		return report.PeriodDashboard{}, err
	}

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return report.PeriodDashboard{}, err
	}

	transactions, err := repo.Transaction.GetTransactionsByDateRange(ctx, start, end)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get transactions for period dashboard")
		return report.PeriodDashboard{}, err
	}

	return report.PeriodDashboard{
		Summary:       summary,
		CategoryStats: stats,
		Transactions:  makeRecentTransactions(transactions, s.now()),
	}, nil
}

func makeRecentTransactions(transactions []entity.Transaction, now time.Time) []report.RecentTransaction {
	result := make([]report.RecentTransaction, 0, len(transactions))
	for _, tr := range transactions {
		result = append(result, report.RecentTransaction{
			ID:           tr.ID,
			Description:  tr.Description,
			Amount:       tr.Amount.Float64(),
			Type:         string(tr.Type()),
			CategoryName: tr.CategoryName,
			Date:         tr.Date.Format(dateLayout),
			RelativeDate: relativeDateLabel(now, tr.Date),
		})
	}
	return result
}

// relativeDateLabel compares calendar days, not elapsed hours, so a
// transaction from 23:59 yesterday still reads "Yesterday" at 00:01.
// Forward-dated entries get the absolute date; they are never "Today".
func relativeDateLabel(now, date time.Time) string {
	days := int(entity.DateOnly(now).Sub(entity.DateOnly(date)).Hours() / 24)

	switch {
	case days < 0:
		return date.Format("02 Jan 2006")
	case days == 0:
		return "Today"
	case days == 1:
		return "Yesterday"
	case days <= 7:
		return fmt.Sprintf("%d days ago", days)
	case days <= 30:
		weeks := days / 7
		if weeks == 1 {
			return "1 week ago"
		}
		return fmt.Sprintf("%d weeks ago", weeks)
	default:
		return date.Format("02 Jan 2006")
	}
}
