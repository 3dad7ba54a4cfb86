package reportService

import (
	categoryRepository "FinTrack/internal/api/category/repository"
	"FinTrack/internal/api/report"
	transactionRepository "FinTrack/internal/api/transaction/repository"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IReportService interface {
	GetPeriodSummary(ctx context.Context, start, end time.Time) (report.PeriodSummary, error)
	GetCategoryStats(ctx context.Context, start, end time.Time) ([]report.CategoryStat, error)
	GetTopCategories(ctx context.Context, start, end time.Time, direction string, limit int) ([]report.CategoryStat, error)
	GetMonthlyTrend(ctx context.Context, months int) ([]report.TrendPoint, error)
	GetYearlyTrend(ctx context.Context, years int) ([]report.TrendPoint, error)
	ComparePeriods(current, previous report.PeriodSummary, label string) report.ComparisonResult
	GetMonthOverMonth(ctx context.Context) (report.ComparisonResult, error)
	GetYearOverYear(ctx context.Context) (report.ComparisonResult, error)
	GetProjection(ctx context.Context) (report.Projection, error)
	GetDashboard(ctx context.Context) (report.FullDashboard, error)
	GetPeriodDashboard(ctx context.Context, start, end time.Time) (report.PeriodDashboard, error)
	CheckConsistency(ctx context.Context, start, end time.Time) (report.ConsistencyCheck, error)
}

type reportService struct {
	log                   *logrus.Logger
	transactionRepository transactionRepository.Repository
	categoryRepository    categoryRepository.Repository
	now                   func() time.Time
}

func NewReportService(
	log *logrus.Logger,
	tr transactionRepository.Repository,
	cr categoryRepository.Repository,
) IReportService {
	return &reportService{
		log:                   log,
		transactionRepository: tr,
		categoryRepository:    cr,
		now:                   time.Now,
	}
}
