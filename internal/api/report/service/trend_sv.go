package reportService

import (
	"FinTrack/internal/api/report"
	contextPkg "FinTrack/pkg/context"
	"fmt"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const (
	minTrendMonths = 1
	maxTrendMonths = 24
	minTrendYears  = 1
	maxTrendYears  = 10
)

// GetMonthlyTrend returns one point per calendar month, oldest first, the
// last point covering the current month.
func (s *reportService) GetMonthlyTrend(ctx context.Context, months int) ([]report.TrendPoint, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if months < minTrendMonths || months > maxTrendMonths {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"months":     months,
		}).Warn("Monthly trend months out of range")
		return nil, report.ErrInvalidMonthsRange
	}

	now := s.now()
	firstOfCurrentMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	points := make([]report.TrendPoint, 0, months)
	for i := months - 1; i >= 0; i-- {
		start := firstOfCurrentMonth.AddDate(0, -i, 0)
		end := start.AddDate(0, 1, -1)

		summary, err := s.GetPeriodSummary(ctx, start, end)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"start":      start.Format(dateLayout),
				"error":      err.Error(),
			}).Error("Failed to summarize trend month")
			return nil, err
		}

		points = append(points, report.TrendPoint{
			Label:   fmt.Sprintf("%s %d", start.Month(), start.Year()),
			Summary: summary,
		})
	}

	return points, nil
}

// GetYearlyTrend returns one point per distinct calendar year, oldest first,
// the last point covering the current year.
func (s *reportService) GetYearlyTrend(ctx context.Context, years int) ([]report.TrendPoint, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if years < minTrendYears || years > maxTrendYears {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"years":      years,
		}).Warn("Yearly trend years out of range")
		return nil, report.ErrInvalidYearsRange
	}

	now := s.now()

	points := make([]report.TrendPoint, 0, years)
	for i := years - 1; i >= 0; i-- {
		year := now.Year() - i
		start := time.Date(year, time.January, 1, 0, 0, 0, 0, now.Location())
		end := time.Date(year, time.December, 31, 0, 0, 0, 0, now.Location())

		summary, err := s.GetPeriodSummary(ctx, start, end)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"year":       year,
				"error":      err.Error(),
			}).Error("Failed to summarize trend year")
			return nil, err
		}

		points = append(points, report.TrendPoint{
			Label:   strconv.Itoa(year),
			Summary: summary,
		})
	}

	return points, nil
}
