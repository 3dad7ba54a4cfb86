package reportService

import (
	"FinTrack/internal/api/report"
	contextPkg "FinTrack/pkg/context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const projectionWindowMonths = 3

// GetProjection forecasts next month as the mean of the last months that
// actually held transactions. Empty months are ignored rather than dragging
// the average toward zero.
func (s *reportService) GetProjection(ctx context.Context) (report.Projection, error) {
	requestID := contextPkg.GetRequestID(ctx)

	points, err := s.GetMonthlyTrend(ctx, projectionWindowMonths)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get trend for projection")
		return report.Projection{}, err
	}

	incomeTotal := decimal.Zero
	expenseTotal := decimal.Zero
	used := 0
	for _, point := range points {
		if point.Summary.TransactionCount == 0 {
			continue
		}
		incomeTotal = incomeTotal.Add(decimal.NewFromFloat(point.Summary.TotalIncome))
		expenseTotal = expenseTotal.Add(decimal.NewFromFloat(point.Summary.TotalExpenses))
		used++
	}

	if used == 0 {
		return report.Projection{Method: "insufficient data"}, nil
	}

	divisor := decimal.NewFromInt(int64(used))
	projectedIncome := incomeTotal.Div(divisor).RoundBank(2)
	projectedExpenses := expenseTotal.Div(divisor).RoundBank(2)

	confidence := 50
	if used >= projectionWindowMonths {
		confidence = 75
	}

	return report.Projection{
		ProjectedIncome:   projectedIncome.InexactFloat64(),
		ProjectedExpenses: projectedExpenses.InexactFloat64(),
		ProjectedBalance:  projectedIncome.Sub(projectedExpenses).RoundBank(2).InexactFloat64(),
		PointsUsed:        used,
		Confidence:        confidence,
		Method:            fmt.Sprintf("%d-month moving average", used),
	}, nil
}
