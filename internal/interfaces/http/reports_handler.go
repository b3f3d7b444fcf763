package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-desk/internal/application/dto"
	"github.com/jhoicas/inventario-desk/internal/application/reports"
)

// ReportsHandler exportación del historial de movimientos (CSV y PDF).
// Acepta los mismos filtros de query que el historial.
type ReportsHandler struct {
	uc *reports.ExportUseCase
}

// NewReportsHandler construye el handler.
func NewReportsHandler(uc *reports.ExportUseCase) *ReportsHandler {
	return &ReportsHandler{uc: uc}
}

// MovementsCSV godoc
// @Summary      Exportar historial de movimientos a CSV
// @Tags         reports
// @Security     Bearer
// @Produce      text/csv
// @Param        product_id    query  string  false  "Filtrar por producto"
// @Param        warehouse_id  query  string  false  "Filtrar por bodega"
// @Param        type          query  string  false  "in | out"
// @Param        from          query  string  false  "Fecha inicial (RFC3339)"
// @Param        to            query  string  false  "Fecha final (RFC3339)"
// @Success      200  {string}  string  "CSV"
// @Router       /api/reports/movements.csv [get]
func (h *ReportsHandler) MovementsCSV(c *fiber.Ctx) error {
	filter, err := movementFilterFromQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from/to deben ser fechas RFC3339"})
	}
	data, err := h.uc.MovementsCSV(filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "EXPORT_FAILED", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="movimientos.csv"`)
	return c.Send(data)
}

// MovementsPDF godoc
// @Summary      Exportar historial de movimientos a PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        product_id    query  string  false  "Filtrar por producto"
// @Param        warehouse_id  query  string  false  "Filtrar por bodega"
// @Param        type          query  string  false  "in | out"
// @Param        from          query  string  false  "Fecha inicial (RFC3339)"
// @Param        to            query  string  false  "Fecha final (RFC3339)"
// @Success      200  {string}  string  "PDF"
// @Router       /api/reports/movements.pdf [get]
func (h *ReportsHandler) MovementsPDF(c *fiber.Ctx) error {
	filter, err := movementFilterFromQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from/to deben ser fechas RFC3339"})
	}
	data, err := h.uc.MovementsPDF(filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "EXPORT_FAILED", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="movimientos.pdf"`)
	return c.Send(data)
}
