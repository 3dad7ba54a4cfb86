package reportHandler

import (
	reportService "FinTrack/internal/api/report/service"
	"FinTrack/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ReportHandler struct {
	log           *logrus.Logger
	middleware    middleware.Middleware
	reportService reportService.IReportService
}

func New(
	log *logrus.Logger,
	middleware middleware.Middleware,
	reportService reportService.IReportService,
) *ReportHandler {
	return &ReportHandler{
		log:           log,
		middleware:    middleware,
		reportService: reportService,
	}
}

func (h *ReportHandler) Start(srv fiber.Router) {
	reports := srv.Group("/reports", h.middleware.NewTokenMiddleware)

	reports.Get("/summary", h.GetPeriodSummary)
	reports.Get("/categories", h.GetCategoryStats)
	reports.Get("/categories/top", h.GetTopCategories)
	reports.Get("/trends/monthly", h.GetMonthlyTrend)
	reports.Get("/trends/yearly", h.GetYearlyTrend)
	reports.Get("/comparison/month", h.GetMonthOverMonth)
	reports.Get("/comparison/year", h.GetYearOverYear)
	reports.Get("/projection", h.GetProjection)
	reports.Get("/dashboard", h.middleware.NewRateLimiter, h.GetDashboard)
	reports.Get("/dashboard/period", h.GetPeriodDashboard)
	reports.Get("/consistency", h.GetConsistency)
}
