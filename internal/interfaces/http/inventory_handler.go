package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/application/inventory"
)

var inventoryMessages = messages{
	notFound:  "inventario, producto o bodega no encontrado",
	duplicate: "ya existe inventario para ese producto en la bodega",
}

// InventoryHandler maneja las filas de inventario y sus ajustes.
type InventoryHandler struct {
	uc  *inventory.UseCase
	log zerolog.Logger
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.UseCase, log zerolog.Logger) *InventoryHandler {
	return &InventoryHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Registrar inventario de un producto en una bodega
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInventoryRequest  true  "Producto, bodega y cantidad inicial"
// @Success      201   {object}  dto.InventoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory [post]
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, h.log, inventoryMessages, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListByWarehouse godoc
// @Summary      Listar inventario de una bodega
// @Tags         inventory
// @Produce      json
// @Param        id   path  int  true  "ID de la bodega"
// @Success      200  {object}  dto.InventoryListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/warehouses/{id}/inventory [get]
func (h *InventoryHandler) ListByWarehouse(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return invalidID(c)
	}
	out, err := h.uc.ListByWarehouse(c.UserContext(), id)
	if err != nil {
		return writeError(c, h.log, inventoryMessages, err)
	}
	return c.JSON(out)
}

// Adjust godoc
// @Summary      Ajustar cantidad
// @Description  Aplica un cambio positivo (entrada) o negativo (salida) y lo registra en el historial.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        id    path  int                         true  "ID de la fila de inventario"
// @Param        body  body  dto.AdjustInventoryRequest  true  "Cambio y motivo"
// @Success      200   {object}  dto.InventoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/{id}/adjustments [post]
func (h *InventoryHandler) Adjust(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return invalidID(c)
	}
	var in dto.AdjustInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Adjust(c.UserContext(), id, in)
	if err != nil {
		return writeError(c, h.log, inventoryMessages, err)
	}
	return c.JSON(out)
}

// History godoc
// @Summary      Historial de ajustes
// @Tags         inventory
// @Produce      json
// @Param        id   path  int  true  "ID de la fila de inventario"
// @Success      200  {object}  dto.InventoryHistoryListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{id}/history [get]
func (h *InventoryHandler) History(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return invalidID(c)
	}
	out, err := h.uc.History(c.UserContext(), id)
	if err != nil {
		return writeError(c, h.log, inventoryMessages, err)
	}
	return c.JSON(out)
}
