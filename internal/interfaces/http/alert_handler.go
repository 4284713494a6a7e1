package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/stockflow-api/internal/application/alerts"
)

var alertMessages = messages{notFound: "empresa no encontrada"}

// AlertHandler expone el reporte de stock bajo.
type AlertHandler struct {
	engine *alerts.Engine
	log    zerolog.Logger
}

// NewAlertHandler construye el handler.
func NewAlertHandler(engine *alerts.Engine, log zerolog.Logger) *AlertHandler {
	return &AlertHandler{engine: engine, log: log}
}

// LowStock godoc
// @Summary      Alertas de stock bajo
// @Description  Una alerta por producto y bodega con stock bajo el umbral. Empresa sin bodegas: lista vacía.
// @Tags         alerts
// @Produce      json
// @Param        id   path  int  true  "ID de la empresa"
// @Success      200  {object}  dto.LowStockReport
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/companies/{id}/alerts/low-stock [get]
func (h *AlertHandler) LowStock(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return invalidID(c)
	}
	out, err := h.engine.LowStock(c.UserContext(), id)
	if err != nil {
		return writeError(c, h.log, alertMessages, err)
	}
	return c.JSON(out)
}
