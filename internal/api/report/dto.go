package report

// PeriodSummary is recomputed on every request; it is never cached.
type PeriodSummary struct {
	StartDate        string  `json:"start_date"`
	EndDate          string  `json:"end_date"`
	TotalIncome      float64 `json:"total_income"`
	TotalExpenses    float64 `json:"total_expenses"`
	Balance          float64 `json:"balance"`
	TransactionCount int     `json:"transaction_count"`
}

type CategoryStat struct {
	CategoryID       string  `json:"category_id"`
	CategoryName     string  `json:"category_name"`
	CategoryType     string  `json:"category_type"`
	Direction        string  `json:"direction"`
	TotalAmount      float64 `json:"total_amount"`
	TransactionCount int     `json:"transaction_count"`
	Percentage       float64 `json:"percentage"`
}

type TrendPoint struct {
	Label   string        `json:"label"`
	Summary PeriodSummary `json:"summary"`
}

type ComparisonResult struct {
	Label                     string        `json:"label"`
	Current                   PeriodSummary `json:"current"`
	Previous                  PeriodSummary `json:"previous"`
	IncomeVarianceAmount      float64       `json:"income_variance_amount"`
	IncomeVariancePercentage  float64       `json:"income_variance_percentage"`
	ExpenseVarianceAmount     float64       `json:"expense_variance_amount"`
	ExpenseVariancePercentage float64       `json:"expense_variance_percentage"`
	BalanceVarianceAmount     float64       `json:"balance_variance_amount"`
	BalanceVariancePercentage float64       `json:"balance_variance_percentage"`
	IncomeImproved            bool          `json:"income_improved"`
	ExpenseImproved           bool          `json:"expense_improved"`
	BalanceImproved           bool          `json:"balance_improved"`
}

// Projection is a naive moving-average forecast. Confidence is a coarse
// heuristic score, not a statistical confidence interval.
type Projection struct {
	ProjectedIncome   float64 `json:"projected_income"`
	ProjectedExpenses float64 `json:"projected_expenses"`
	ProjectedBalance  float64 `json:"projected_balance"`
	PointsUsed        int     `json:"points_used"`
	Confidence        int     `json:"confidence"`
	Method            string  `json:"method"`
}

type RecentTransaction struct {
	ID           string  `json:"id"`
	Description  string  `json:"description"`
	Amount       float64 `json:"amount"`
	Type         string  `json:"type"`
	CategoryName string  `json:"category_name"`
	Date         string  `json:"date"`
	RelativeDate string  `json:"relative_date"`
}

// FullDashboard and PeriodDashboard are deliberately distinct shapes: the
// period variant has no last-month, year or trend slots rather than
// carrying them zeroed.
type FullDashboard struct {
	CurrentMonth         PeriodSummary       `json:"current_month"`
	LastMonth            PeriodSummary       `json:"last_month"`
	CurrentYear          PeriodSummary       `json:"current_year"`
	TopExpenseCategories []CategoryStat      `json:"top_expense_categories"`
	MonthlyTrend         []TrendPoint        `json:"monthly_trend"`
	RecentTransactions   []RecentTransaction `json:"recent_transactions"`
}

type PeriodDashboard struct {
	Summary       PeriodSummary       `json:"summary"`
	CategoryStats []CategoryStat      `json:"category_stats"`
	Transactions  []RecentTransaction `json:"transactions"`
}

type ConsistencyCheck struct {
	StartDate  string        `json:"start_date"`
	EndDate    string        `json:"end_date"`
	Consistent bool          `json:"consistent"`
	Aggregate  PeriodSummary `json:"aggregate"`
	Recomputed PeriodSummary `json:"recomputed"`
}
