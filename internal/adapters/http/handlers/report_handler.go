package handlers

import (
	"nexum-supply/internal/core/services"
	"nexum-supply/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ReportHandler handles reporting endpoints
type ReportHandler struct {
	reportService *services.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Critical handles the critical products report
// @Summary Critical products
// @Description List out-of-stock products with meaningful consumption, highest CMM first
// @Tags Reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /products/critical [get]
func (h *ReportHandler) Critical(c *fiber.Ctx) error {
	products, err := h.reportService.CriticalProducts(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to build critical products report")
	}

	return response.Success(c, "Critical products retrieved successfully", fiber.Map{
		"products": products,
		"count":    len(products),
	})
}

// Dashboard handles the executive dashboard (Manager or Admin)
// @Summary Executive dashboard
// @Description Aggregated inventory health: totals, stock-outs, criticality and ABC breakdowns
// @Tags Reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /products/dashboard [get]
func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	data, err := h.reportService.Dashboard(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to build dashboard")
	}

	return response.Success(c, "Dashboard retrieved successfully", data)
}
