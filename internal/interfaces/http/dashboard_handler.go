package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/printops-api/internal/application/dashboard"
	"github.com/jhoicas/printops-api/internal/application/dto"
	"github.com/jhoicas/printops-api/internal/domain/reporte"
)

// ResumenPDFGenerator genera el PDF imprimible del resumen del panel.
// La implementación vive en infrastructure/pdf.
type ResumenPDFGenerator interface {
	GenerateResumenPDF(ctx context.Context, res *reporte.Resumen) ([]byte, error)
}

// DashboardHandler maneja los endpoints del panel de operaciones.
type DashboardHandler struct {
	uc  *dashboard.UseCase
	pdf ResumenPDFGenerator
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *dashboard.UseCase, pdf ResumenPDFGenerator) *DashboardHandler {
	return &DashboardHandler{uc: uc, pdf: pdf}
}

// GetResumen devuelve el resumen del panel: KPIs, serie mensual y rankings.
// GET /api/dashboard/resumen?cached=true
//
// Sin parámetros ejecuta un pase completo de reportes (los refrescos
// concurrentes se coalescen en un solo pase). Con cached=true devuelve el
// último resumen publicado sin recalcular; 404 si aún no hay ninguno.
func (h *DashboardHandler) GetResumen(c *fiber.Ctx) error {
	if c.Query("cached") == "true" {
		res := h.uc.Ultimo()
		if res == nil {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Code: "NOT_FOUND", Message: "aún no se ha generado ningún resumen",
			})
		}
		return c.JSON(dto.ToResumenDashboardDTO(res))
	}

	res, err := h.uc.Resumen(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(dto.ToResumenDashboardDTO(res))
}

// GetReportePDF exporta el resumen como PDF para los comités de operación.
// GET /api/dashboard/reporte.pdf
//
// Ejecuta un pase completo (mismas garantías que GetResumen) y devuelve el
// documento con Content-Type application/pdf.
func (h *DashboardHandler) GetReportePDF(c *fiber.Ctx) error {
	res, err := h.uc.Resumen(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	bytes, err := h.pdf.GenerateResumenPDF(c.Context(), res)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="reporte-operaciones.pdf"`)
	return c.Send(bytes)
}
