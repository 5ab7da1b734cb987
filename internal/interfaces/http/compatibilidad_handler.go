package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/printops-api/internal/application/dto"
	"github.com/jhoicas/printops-api/internal/application/usecase"
	"github.com/jhoicas/printops-api/internal/domain"
)

// CompatibilidadHandler maneja la relación modelo ↔ SKU.
type CompatibilidadHandler struct {
	uc *usecase.CompatibilidadUseCase
}

// NewCompatibilidadHandler construye el handler.
func NewCompatibilidadHandler(uc *usecase.CompatibilidadUseCase) *CompatibilidadHandler {
	return &CompatibilidadHandler{uc: uc}
}

// ListByModelo GET /api/compatibilidades/:idModelo
func (h *CompatibilidadHandler) ListByModelo(c *fiber.Ctx) error {
	idModelo, err := strconv.ParseInt(c.Params("idModelo"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id de modelo inválido"})
	}
	list, err := h.uc.ListByModelo(c.Context(), idModelo)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// Create POST /api/compatibilidades
func (h *CompatibilidadHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCompatibilidadRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	comp, err := h.uc.Create(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id_modelo y cod_sku son requeridos"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "SKU no encontrado"})
		}
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "la compatibilidad ya existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(comp)
}

// Delete DELETE /api/compatibilidades/:idModelo/:codSKU
func (h *CompatibilidadHandler) Delete(c *fiber.Ctx) error {
	idModelo, err := strconv.ParseInt(c.Params("idModelo"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id de modelo inválido"})
	}
	if err := h.uc.Delete(c.Context(), idModelo, c.Params("codSKU")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
