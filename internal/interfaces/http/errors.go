package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/business-dashboard/internal/application/dto"
	"github.com/tu-usuario/business-dashboard/internal/domain"
)

// reportError traduce los errores de los casos de uso de reportes a HTTP:
// datasets ausentes son 409 (recuperable con el bootstrap), período inválido
// es 400 y el resto 500.
func reportError(c *fiber.Ctx, err error) error {
	if dm, ok := domain.IsDatasetMissing(err); ok {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code:    "DATA_MISSING",
			Message: dm.Error(),
			Files:   dm.Files,
		})
	}
	if errors.Is(err, domain.ErrInvalidPeriod) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "INVALID_PERIOD",
			Message: "período de reporte desconocido",
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Code: "INTERNAL", Message: err.Error(),
	})
}
