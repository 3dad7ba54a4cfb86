package reportService

import (
	"FinTrack/internal/api/report"
	"FinTrack/internal/entity"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"
)

var (
	salaryCategory = entity.Category{ID: "cat-salary", Name: "Salary", Type: entity.CategoryTypeSalary}
	foodCategory   = entity.Category{ID: "cat-food", Name: "Food", Type: entity.CategoryTypeFood}
	travelCategory = entity.Category{ID: "cat-travel", Name: "Travel", Type: entity.CategoryTypeTravel}

	marchCategories = []entity.Category{salaryCategory, foodCategory, travelCategory}
)

// One salary payment and two food purchases in March 2024, observed mid-month.
func marchFixture() (*reportService, time.Time, time.Time) {
	now := day(2024, time.March, 15)
	svc := newTestService(now, marchCategories, []entity.Transaction{
		testTransaction("tr-1", 2000, day(2024, time.March, 1), salaryCategory),
		testTransaction("tr-2", 300, day(2024, time.March, 5), foodCategory),
		testTransaction("tr-3", 200, day(2024, time.March, 10), foodCategory),
	})
	return svc, day(2024, time.March, 1), day(2024, time.March, 31)
}

func TestGetPeriodSummary(t *testing.T) {
	svc, start, end := marchFixture()

	summary, err := svc.GetPeriodSummary(context.Background(), start, end)
	require.NoError(t, err)

	assert.Equal(t, "2024-03-01", summary.StartDate)
	assert.Equal(t, "2024-03-31", summary.EndDate)
	assert.Equal(t, 2000.0, summary.TotalIncome)
	assert.Equal(t, 500.0, summary.TotalExpenses)
	assert.Equal(t, 1500.0, summary.Balance)
	assert.Equal(t, 3, summary.TransactionCount)
}

func TestGetPeriodSummaryValidation(t *testing.T) {
	svc, start, end := marchFixture()

	_, err := svc.GetPeriodSummary(context.Background(), end, start)
	assert.ErrorIs(t, err, report.ErrInvalidPeriod)

	_, err = svc.GetPeriodSummary(context.Background(), day(2024, time.April, 1), day(2024, time.April, 30))
	assert.ErrorIs(t, err, report.ErrFuturePeriod)
}

func TestGetPeriodSummaryEmptyRange(t *testing.T) {
	svc, _, _ := marchFixture()

	summary, err := svc.GetPeriodSummary(context.Background(), day(2024, time.January, 1), day(2024, time.January, 31))
	require.NoError(t, err)

	assert.Zero(t, summary.TotalIncome)
	assert.Zero(t, summary.TotalExpenses)
	assert.Zero(t, summary.Balance)
	assert.Zero(t, summary.TransactionCount)
}

func TestGetCategoryStats(t *testing.T) {
	svc, start, end := marchFixture()

	stats, err := svc.GetCategoryStats(context.Background(), start, end)
	require.NoError(t, err)
	require.Len(t, stats, 2, "categories without transactions are omitted")

	assert.Equal(t, "Salary", stats[0].CategoryName)
	assert.Equal(t, "income", stats[0].Direction)
	assert.Equal(t, 2000.0, stats[0].TotalAmount)
	assert.Equal(t, 1, stats[0].TransactionCount)
	assert.Equal(t, 80.0, stats[0].Percentage)

	assert.Equal(t, "Food", stats[1].CategoryName)
	assert.Equal(t, "expense", stats[1].Direction)
	assert.Equal(t, 500.0, stats[1].TotalAmount)
	assert.Equal(t, 2, stats[1].TransactionCount)
	assert.Equal(t, 20.0, stats[1].Percentage)
}

func TestGetCategoryStatsOrphanTransaction(t *testing.T) {
	now := day(2024, time.March, 15)
	svc := newTestService(now, []entity.Category{foodCategory}, []entity.Transaction{
		testTransaction("tr-1", 50, day(2024, time.March, 2), foodCategory),
		{
			ID:          "tr-orphan",
			Description: "category was deleted",
			Amount:      entity.MustMoney(50),
			Date:        day(2024, time.March, 3),
			CategoryID:  "cat-gone",
		},
	})

	stats, err := svc.GetCategoryStats(context.Background(), day(2024, time.March, 1), day(2024, time.March, 31))
	require.NoError(t, err)
	require.Len(t, stats, 1)

	// The orphan row has no stat but still contributes to the grand total.
	assert.Equal(t, 50.0, stats[0].TotalAmount)
	assert.Equal(t, 50.0, stats[0].Percentage)
}

func TestGetTopCategories(t *testing.T) {
	svc, start, end := marchFixture()

	expense, err := svc.GetTopCategories(context.Background(), start, end, "expense", 5)
	require.NoError(t, err)
	require.Len(t, expense, 1)
	assert.Equal(t, "Food", expense[0].CategoryName)

	income, err := svc.GetTopCategories(context.Background(), start, end, "income", 5)
	require.NoError(t, err)
	require.Len(t, income, 1)
	assert.Equal(t, "Salary", income[0].CategoryName)
}

func TestGetTopCategoriesValidation(t *testing.T) {
	svc, start, end := marchFixture()

	_, err := svc.GetTopCategories(context.Background(), start, end, "expense", 0)
	assert.ErrorIs(t, err, report.ErrInvalidLimit)

	_, err = svc.GetTopCategories(context.Background(), start, end, "expense", 21)
	assert.ErrorIs(t, err, report.ErrInvalidLimit)

	_, err = svc.GetTopCategories(context.Background(), start, end, "transfer", 5)
	assert.ErrorIs(t, err, report.ErrInvalidDirection)
}

func quarterFixture() *reportService {
	now := day(2024, time.March, 15)
	return newTestService(now, marchCategories, []entity.Transaction{
		testTransaction("jan-in", 1000, day(2024, time.January, 10), salaryCategory),
		testTransaction("jan-out", 400, day(2024, time.January, 20), foodCategory),
		testTransaction("feb-in", 1200, day(2024, time.February, 10), salaryCategory),
		testTransaction("feb-out", 500, day(2024, time.February, 20), foodCategory),
		testTransaction("mar-in", 1400, day(2024, time.March, 10), salaryCategory),
		testTransaction("mar-out", 600, day(2024, time.March, 14), foodCategory),
	})
}

func TestGetMonthlyTrend(t *testing.T) {
	svc := quarterFixture()

	points, err := svc.GetMonthlyTrend(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, points, 3)

	assert.Equal(t, "January 2024", points[0].Label)
	assert.Equal(t, "February 2024", points[1].Label)
	assert.Equal(t, "March 2024", points[2].Label)

	assert.Equal(t, 1000.0, points[0].Summary.TotalIncome)
	assert.Equal(t, 1200.0, points[1].Summary.TotalIncome)
	assert.Equal(t, 1400.0, points[2].Summary.TotalIncome)
	assert.Equal(t, 800.0, points[2].Summary.Balance)
}

func TestGetMonthlyTrendValidation(t *testing.T) {
	svc := quarterFixture()

	_, err := svc.GetMonthlyTrend(context.Background(), 0)
	assert.ErrorIs(t, err, report.ErrInvalidMonthsRange)

	_, err = svc.GetMonthlyTrend(context.Background(), 25)
	assert.ErrorIs(t, err, report.ErrInvalidMonthsRange)
}

func TestGetYearlyTrend(t *testing.T) {
	now := day(2024, time.June, 1)
	svc := newTestService(now, marchCategories, []entity.Transaction{
		testTransaction("old", 5000, day(2023, time.August, 1), salaryCategory),
		testTransaction("new", 2000, day(2024, time.February, 1), salaryCategory),
	})

	points, err := svc.GetYearlyTrend(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, points, 2)

	// Each point covers a distinct calendar year.
	assert.Equal(t, "2023", points[0].Label)
	assert.Equal(t, "2024", points[1].Label)
	assert.Equal(t, 5000.0, points[0].Summary.TotalIncome)
	assert.Equal(t, 2000.0, points[1].Summary.TotalIncome)
}

func TestGetYearlyTrendValidation(t *testing.T) {
	svc := quarterFixture()

	_, err := svc.GetYearlyTrend(context.Background(), 0)
	assert.ErrorIs(t, err, report.ErrInvalidYearsRange)

	_, err = svc.GetYearlyTrend(context.Background(), 11)
	assert.ErrorIs(t, err, report.ErrInvalidYearsRange)
}

func TestComparePeriods(t *testing.T) {
	svc, _, _ := marchFixture()

	current := report.PeriodSummary{TotalIncome: 3000, TotalExpenses: 1500, Balance: 1500}
	previous := report.PeriodSummary{TotalIncome: 2800, TotalExpenses: 1200, Balance: 1600}

	result := svc.ComparePeriods(current, previous, "March vs February")

	assert.Equal(t, "March vs February", result.Label)
	assert.Equal(t, 200.0, result.IncomeVarianceAmount)
	assert.Equal(t, 7.14, result.IncomeVariancePercentage)
	assert.Equal(t, 300.0, result.ExpenseVarianceAmount)
	assert.Equal(t, 25.0, result.ExpenseVariancePercentage)
	assert.Equal(t, -100.0, result.BalanceVarianceAmount)
	assert.Equal(t, -6.25, result.BalanceVariancePercentage)

	assert.True(t, result.IncomeImproved)
	assert.False(t, result.ExpenseImproved, "spending more is not an improvement")
	assert.False(t, result.BalanceImproved)
}

func TestComparePeriodsAgainstSelf(t *testing.T) {
	svc, _, _ := marchFixture()

	summary := report.PeriodSummary{TotalIncome: 1000, TotalExpenses: 400, Balance: 600}
	result := svc.ComparePeriods(summary, summary, "same")

	assert.Zero(t, result.IncomeVarianceAmount)
	assert.Zero(t, result.IncomeVariancePercentage)
	assert.Zero(t, result.BalanceVariancePercentage)
	assert.False(t, result.IncomeImproved)
	assert.False(t, result.ExpenseImproved)
	assert.False(t, result.BalanceImproved)
}

func TestComparePeriodsZeroPrevious(t *testing.T) {
	svc, _, _ := marchFixture()

	current := report.PeriodSummary{TotalIncome: 500, TotalExpenses: 0, Balance: 500}
	previous := report.PeriodSummary{}

	result := svc.ComparePeriods(current, previous, "first month")

	// Growth from zero reads 0; a flat zero-to-zero metric reads 100.
	assert.Zero(t, result.IncomeVariancePercentage)
	assert.Equal(t, 100.0, result.ExpenseVariancePercentage)
	assert.Equal(t, 500.0, result.IncomeVarianceAmount)
	assert.False(t, result.IncomeImproved)
	assert.False(t, result.ExpenseImproved)
}

func TestComparePeriodsAllZero(t *testing.T) {
	svc, _, _ := marchFixture()

	result := svc.ComparePeriods(report.PeriodSummary{}, report.PeriodSummary{}, "empty")

	// Every zero-to-zero metric reads 100; self-comparison yields zero
	// percentages only once the summaries carry non-zero values.
	assert.Equal(t, 100.0, result.IncomeVariancePercentage)
	assert.Equal(t, 100.0, result.ExpenseVariancePercentage)
	assert.Equal(t, 100.0, result.BalanceVariancePercentage)
	assert.Zero(t, result.IncomeVarianceAmount)
}

func TestGetMonthOverMonth(t *testing.T) {
	svc := quarterFixture()

	result, err := svc.GetMonthOverMonth(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "March 2024 vs February 2024", result.Label)
	assert.Equal(t, 1400.0, result.Current.TotalIncome)
	assert.Equal(t, 1200.0, result.Previous.TotalIncome)
	assert.Equal(t, 200.0, result.IncomeVarianceAmount)
	assert.True(t, result.IncomeImproved)
}

func TestGetYearOverYear(t *testing.T) {
	now := day(2024, time.June, 1)
	svc := newTestService(now, marchCategories, []entity.Transaction{
		testTransaction("old", 5000, day(2023, time.August, 1), salaryCategory),
		testTransaction("new", 6000, day(2024, time.February, 1), salaryCategory),
	})

	result, err := svc.GetYearOverYear(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "2024 vs 2023", result.Label)
	assert.Equal(t, 1000.0, result.IncomeVarianceAmount)
	assert.Equal(t, 20.0, result.IncomeVariancePercentage)
}

func TestGetProjection(t *testing.T) {
	svc := quarterFixture()

	projection, err := svc.GetProjection(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1200.0, projection.ProjectedIncome)
	assert.Equal(t, 500.0, projection.ProjectedExpenses)
	assert.Equal(t, 700.0, projection.ProjectedBalance)
	assert.Equal(t, 3, projection.PointsUsed)
	assert.Equal(t, 75, projection.Confidence)
	assert.Equal(t, "3-month moving average", projection.Method)
}

func TestGetProjectionSparseHistory(t *testing.T) {
	now := day(2024, time.March, 15)
	svc := newTestService(now, marchCategories, []entity.Transaction{
		testTransaction("feb-in", 1000, day(2024, time.February, 10), salaryCategory),
	})

	projection, err := svc.GetProjection(context.Background())
	require.NoError(t, err)

	// Empty months are skipped, not averaged in as zeros.
	assert.Equal(t, 1000.0, projection.ProjectedIncome)
	assert.Equal(t, 1, projection.PointsUsed)
	assert.Equal(t, 50, projection.Confidence)
}

func TestGetProjectionNoHistory(t *testing.T) {
	svc := newTestService(day(2024, time.March, 15), marchCategories, nil)

	projection, err := svc.GetProjection(context.Background())
	require.NoError(t, err)

	assert.Zero(t, projection.ProjectedIncome)
	assert.Zero(t, projection.ProjectedExpenses)
	assert.Zero(t, projection.PointsUsed)
	assert.Zero(t, projection.Confidence)
	assert.Equal(t, "insufficient data", projection.Method)
}

func TestGetDashboard(t *testing.T) {
	now := day(2024, time.March, 15)
	svc := newTestService(now, marchCategories, []entity.Transaction{
		testTransaction("salary", 2000, day(2024, time.March, 1), salaryCategory),
		testTransaction("today", 50, day(2024, time.March, 15), foodCategory),
		testTransaction("yesterday", 100, day(2024, time.March, 14), foodCategory),
		testTransaction("last-month", 700, day(2024, time.February, 20), foodCategory),
		testTransaction("january", 300, day(2024, time.January, 1), foodCategory),
	})

	dashboard, err := svc.GetDashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2000.0, dashboard.CurrentMonth.TotalIncome)
	assert.Equal(t, 150.0, dashboard.CurrentMonth.TotalExpenses)
	assert.Equal(t, 700.0, dashboard.LastMonth.TotalExpenses)
	assert.Equal(t, 2000.0, dashboard.CurrentYear.TotalIncome)
	assert.Equal(t, 1150.0, dashboard.CurrentYear.TotalExpenses)

	require.Len(t, dashboard.TopExpenseCategories, 1)
	assert.Equal(t, "Food", dashboard.TopExpenseCategories[0].CategoryName)

	assert.Len(t, dashboard.MonthlyTrend, 6)

	require.Len(t, dashboard.RecentTransactions, 5)
	assert.Equal(t, "today", dashboard.RecentTransactions[0].ID)
	assert.Equal(t, "Today", dashboard.RecentTransactions[0].RelativeDate)
	assert.Equal(t, "Yesterday", dashboard.RecentTransactions[1].RelativeDate)
	assert.Equal(t, "expense", dashboard.RecentTransactions[0].Type)
}

func TestGetDashboardRecentOrderedByEntry(t *testing.T) {
	now := day(2024, time.March, 15)
	walkedIn := testTransaction("walked-in", 40, day(2024, time.March, 14), foodCategory)
	backdated := testTransaction("backdated", 60, day(2024, time.March, 1), foodCategory)
	backdated.CreatedAt = day(2024, time.March, 15)

	svc := newTestService(now, marchCategories, []entity.Transaction{walkedIn, backdated})

	dashboard, err := svc.GetDashboard(context.Background())
	require.NoError(t, err)

	// A backdated transaction entered today is the most recent entry, but
	// its relative label still follows the transaction date.
	require.Len(t, dashboard.RecentTransactions, 2)
	assert.Equal(t, "backdated", dashboard.RecentTransactions[0].ID)
	assert.Equal(t, "2 weeks ago", dashboard.RecentTransactions[0].RelativeDate)
	assert.Equal(t, "walked-in", dashboard.RecentTransactions[1].ID)
}

func TestGetPeriodDashboard(t *testing.T) {
	svc, start, end := marchFixture()

	dashboard, err := svc.GetPeriodDashboard(context.Background(), start, end)
	require.NoError(t, err)

	assert.Equal(t, 3, dashboard.Summary.TransactionCount)
	assert.Len(t, dashboard.CategoryStats, 2)
	assert.Len(t, dashboard.Transactions, 3)
}

func TestGetPeriodDashboardValidation(t *testing.T) {
	svc, start, end := marchFixture()

	_, err := svc.GetPeriodDashboard(context.Background(), end, start)
	assert.ErrorIs(t, err, report.ErrInvalidPeriod)
}

func TestRelativeDateLabel(t *testing.T) {
	now := day(2024, time.March, 15)

	tests := []struct {
		name string
		date time.Time
		want string
	}{
		{name: "same day", date: day(2024, time.March, 15), want: "Today"},
		{name: "previous day", date: day(2024, time.March, 14), want: "Yesterday"},
		{name: "within a week", date: day(2024, time.March, 10), want: "5 days ago"},
		{name: "one week", date: day(2024, time.March, 7), want: "1 week ago"},
		{name: "several weeks", date: day(2024, time.February, 20), want: "3 weeks ago"},
		{name: "older than a month", date: day(2024, time.January, 1), want: "01 Jan 2024"},
		{name: "forward-dated is never today", date: day(2024, time.March, 20), want: "20 Mar 2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, relativeDateLabel(now, tt.date))
		})
	}
}

func TestCheckConsistency(t *testing.T) {
	svc, start, end := marchFixture()

	check, err := svc.CheckConsistency(context.Background(), start, end)
	require.NoError(t, err)

	assert.True(t, check.Consistent)
	assert.Equal(t, check.Aggregate, check.Recomputed)
	assert.Equal(t, "2024-03-01", check.StartDate)
	assert.Equal(t, "2024-03-31", check.EndDate)
}

func TestCheckConsistencyValidation(t *testing.T) {
	svc, start, end := marchFixture()

	_, err := svc.CheckConsistency(context.Background(), end, start)
	assert.ErrorIs(t, err, report.ErrInvalidPeriod)
}
