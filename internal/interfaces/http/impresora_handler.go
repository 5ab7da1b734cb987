package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/printops-api/internal/application/dto"
	"github.com/jhoicas/printops-api/internal/application/usecase"
	"github.com/jhoicas/printops-api/internal/domain"
)

// ImpresoraHandler maneja las peticiones HTTP del parque de impresoras.
type ImpresoraHandler struct {
	uc *usecase.ImpresoraUseCase
}

// NewImpresoraHandler construye el handler.
func NewImpresoraHandler(uc *usecase.ImpresoraUseCase) *ImpresoraHandler {
	return &ImpresoraHandler{uc: uc}
}

// List GET /api/impresoras
func (h *ImpresoraHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// GetBySerie GET /api/impresoras/:serie
func (h *ImpresoraHandler) GetBySerie(c *fiber.Ctx) error {
	imp, err := h.uc.GetBySerie(c.Context(), c.Params("serie"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "impresora no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(imp)
}

// Create POST /api/impresoras
func (h *ImpresoraHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateImpresoraRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	imp, err := h.uc.Create(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "serie, id_modelo e id_cliente son requeridos"})
		}
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe una impresora con esa serie"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(imp)
}

// Update PUT /api/impresoras/:serie
func (h *ImpresoraHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateImpresoraRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	imp, err := h.uc.Update(c.Context(), c.Params("serie"), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "impresora no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(imp)
}

// Delete DELETE /api/impresoras/:serie
func (h *ImpresoraHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("serie")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
