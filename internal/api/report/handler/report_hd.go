package reportHandler

import (
	contextPkg "FinTrack/pkg/context"
	"FinTrack/pkg/handlerUtil"
	"FinTrack/pkg/log"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

const dateLayout = "2006-01-02"

const (
	defaultTrendMonths = 6
	defaultTrendYears  = 3
	defaultTopLimit    = 5
)

// parsePeriod reads the required start and end query parameters. Range
// validation beyond parseability belongs to the service.
func parsePeriod(ctx *fiber.Ctx) (time.Time, time.Time, error) {
	startParam := ctx.Query("start")
	endParam := ctx.Query("end")
	if startParam == "" || endParam == "" {
		return time.Time{}, time.Time{}, errors.New("start and end query parameters are required")
	}

	start, err := time.Parse(dateLayout, startParam)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("start must be formatted as YYYY-MM-DD")
	}

	end, err := time.Parse(dateLayout, endParam)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("end must be formatted as YYYY-MM-DD")
	}

	return start, end, nil
}

func (h *ReportHandler) GetPeriodSummary(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	start, end, err := parsePeriod(ctx)
	if err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	summary, err := h.reportService.GetPeriodSummary(c, start, end)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_period_summary")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, summary)
	}
}

func (h *ReportHandler) GetCategoryStats(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	start, end, err := parsePeriod(ctx)
	if err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	stats, err := h.reportService.GetCategoryStats(c, start, end)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_category_stats")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"stats": stats,
		})
	}
}

func (h *ReportHandler) GetTopCategories(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	start, end, err := parsePeriod(ctx)
	if err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	direction := ctx.Query("direction", "expense")
	limit := ctx.QueryInt("limit", defaultTopLimit)

	stats, err := h.reportService.GetTopCategories(c, start, end, direction, limit)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_top_categories")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"stats": stats,
		})
	}
}

func (h *ReportHandler) GetMonthlyTrend(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing monthly trend request")

	months := ctx.QueryInt("months", defaultTrendMonths)

	points, err := h.reportService.GetMonthlyTrend(c, months)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_monthly_trend")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"points": points,
		})
	}
}

func (h *ReportHandler) GetYearlyTrend(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	years := ctx.QueryInt("years", defaultTrendYears)

	points, err := h.reportService.GetYearlyTrend(c, years)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_yearly_trend")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"points": points,
		})
	}
}

func (h *ReportHandler) GetMonthOverMonth(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	comparison, err := h.reportService.GetMonthOverMonth(c)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_month_over_month")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, comparison)
	}
}

func (h *ReportHandler) GetYearOverYear(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	comparison, err := h.reportService.GetYearOverYear(c)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_year_over_year")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, comparison)
	}
}

func (h *ReportHandler) GetProjection(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	projection, err := h.reportService.GetProjection(c)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_projection")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, projection)
	}
}

func (h *ReportHandler) GetDashboard(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing dashboard request")

	dashboard, err := h.reportService.GetDashboard(c)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_dashboard")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, dashboard)
	}
}

func (h *ReportHandler) GetPeriodDashboard(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	start, end, err := parsePeriod(ctx)
	if err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	dashboard, err := h.reportService.GetPeriodDashboard(c, start, end)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_period_dashboard")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, dashboard)
	}
}

func (h *ReportHandler) GetConsistency(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	start, end, err := parsePeriod(ctx)
	if err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	check, err := h.reportService.CheckConsistency(c, start, end)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "check_consistency")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, check)
	}
}
