package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/business-dashboard/internal/application/dto"
	"github.com/tu-usuario/business-dashboard/internal/application/seed"
	"github.com/tu-usuario/business-dashboard/pkg/logger"
)

// AdminHandler operaciones de administración de datos (solo rol Admin).
type AdminHandler struct {
	seeder *seed.UseCase
	log    *logger.Logger
}

// NewAdminHandler construye el handler de administración.
func NewAdminHandler(seeder *seed.UseCase, log *logger.Logger) *AdminHandler {
	return &AdminHandler{seeder: seeder, log: log}
}

// BootstrapResponse resultado del bootstrap de datos.
type BootstrapResponse struct {
	Generated bool     `json:"generated"`
	Missing   []string `json:"missing_before,omitempty"`
}

// RegenerateResponse resultado de la regeneración de desempeño.
type RegenerateResponse struct {
	Records int `json:"records"`
}

// Bootstrap godoc
// @Summary      Genera los datasets sintéticos si alguno falta
// @Tags         admin
// @Produce      json
// @Success      200  {object}  BootstrapResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/admin/data/bootstrap [post]
func (h *AdminHandler) Bootstrap(c *fiber.Ctx) error {
	missing := h.seeder.MissingDatasets()
	generated, err := h.seeder.EnsureInitialData()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if generated {
		h.log.Info().Strs("missing", missing).Str("user", GetUsername(c)).Msg("datasets regenerados por bootstrap")
	}
	return c.JSON(BootstrapResponse{Generated: generated, Missing: missing})
}

// RegeneratePerformance godoc
// @Summary      Regenera el dataset de desempeño reutilizando empleados
// @Tags         admin
// @Produce      json
// @Success      200  {object}  RegenerateResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/admin/data/performance/regenerate [post]
func (h *AdminHandler) RegeneratePerformance(c *fiber.Ctx) error {
	n, err := h.seeder.RegeneratePerformance()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	h.log.Info().Int("records", n).Str("user", GetUsername(c)).Msg("dataset de desempeño regenerado")
	return c.JSON(RegenerateResponse{Records: n})
}
