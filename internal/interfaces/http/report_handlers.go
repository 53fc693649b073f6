package http

import (
	"github.com/gofiber/fiber/v2"
	appanalytics "github.com/tu-usuario/business-dashboard/internal/application/analytics"
)

// ReportHandlers agrupa los seis endpoints de reportes. Todos comparten el
// mismo mapeo de errores (reportError) y ninguno muta estado.
type ReportHandlers struct {
	dashboard   *appanalytics.DashboardUseCase
	inventory   *appanalytics.InventoryUseCase
	sales       *appanalytics.SalesUseCase
	purchases   *appanalytics.PurchaseUseCase
	performance *appanalytics.PerformanceUseCase
	reports     *appanalytics.ReportUseCase
}

// NewReportHandlers construye los handlers de reportes.
func NewReportHandlers(
	dashboard *appanalytics.DashboardUseCase,
	inventory *appanalytics.InventoryUseCase,
	sales *appanalytics.SalesUseCase,
	purchases *appanalytics.PurchaseUseCase,
	performance *appanalytics.PerformanceUseCase,
	reports *appanalytics.ReportUseCase,
) *ReportHandlers {
	return &ReportHandlers{
		dashboard:   dashboard,
		inventory:   inventory,
		sales:       sales,
		purchases:   purchases,
		performance: performance,
		reports:     reports,
	}
}

// Overview godoc
// @Summary      Vista principal (mes en curso vs. anterior)
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.DashboardOverviewDTO
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/dashboard/overview [get]
func (h *ReportHandlers) Overview(c *fiber.Ctx) error {
	out, err := h.dashboard.Overview()
	if err != nil {
		return reportError(c, err)
	}
	return c.JSON(out)
}

// InventoryReport godoc
// @Summary      Reporte de inventario
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.InventoryReportDTO
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/inventory/report [get]
func (h *ReportHandlers) InventoryReport(c *fiber.Ctx) error {
	out, err := h.inventory.Report()
	if err != nil {
		return reportError(c, err)
	}
	return c.JSON(out)
}

// SalesReport godoc
// @Summary      Reporte de ventas
// @Tags         reports
// @Produce      json
// @Param        period  query  string  false  "Last 7 Days | Last 30 Days | Last 90 Days | Last 12 Months | All Time"
// @Success      200  {object}  dto.SalesReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/sales/report [get]
func (h *ReportHandlers) SalesReport(c *fiber.Ctx) error {
	out, err := h.sales.Report(c.Query("period"))
	if err != nil {
		return reportError(c, err)
	}
	return c.JSON(out)
}

// PurchaseReport godoc
// @Summary      Reporte de compras
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.PurchaseReportDTO
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/purchases/report [get]
func (h *ReportHandlers) PurchaseReport(c *fiber.Ctx) error {
	out, err := h.purchases.Report()
	if err != nil {
		return reportError(c, err)
	}
	return c.JSON(out)
}

// PerformanceReport godoc
// @Summary      Reporte de desempeño de empleados
// @Tags         reports
// @Produce      json
// @Param        period  query  string  false  "Last 7 Days | Last 30 Days | Last 90 Days"
// @Param        role    query  string  false  "filtra los desgloses por rol"
// @Success      200  {object}  dto.PerformanceReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/performance/report [get]
func (h *ReportHandlers) PerformanceReport(c *fiber.Ctx) error {
	out, err := h.performance.Report(c.Query("period"), c.Query("role"))
	if err != nil {
		return reportError(c, err)
	}
	return c.JSON(out)
}

// BusinessReport godoc
// @Summary      Reporte financiero por período
// @Tags         reports
// @Produce      json
// @Param        period  query  string  false  "Current Month | Previous Month | Last 3 Months | Last 6 Months | Year to Date | Last Year | All Time"
// @Success      200  {object}  dto.BusinessReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/reports/business [get]
func (h *ReportHandlers) BusinessReport(c *fiber.Ctx) error {
	out, err := h.reports.Business(c.Query("period"))
	if err != nil {
		return reportError(c, err)
	}
	return c.JSON(out)
}
