package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/application/usecase"
)

var warehouseMessages = messages{notFound: "bodega o empresa no encontrada", duplicate: "bodega duplicada"}

// WarehouseHandler maneja las peticiones HTTP para Warehouse.
type WarehouseHandler struct {
	uc  *usecase.WarehouseUseCase
	log zerolog.Logger
}

// NewWarehouseHandler construye el handler.
func NewWarehouseHandler(uc *usecase.WarehouseUseCase, log zerolog.Logger) *WarehouseHandler {
	return &WarehouseHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Crear bodega de una empresa
// @Tags         warehouses
// @Accept       json
// @Produce      json
// @Param        id    path  int                          true  "ID de la empresa"
// @Param        body  body  dto.CreateWarehouseRequest  true  "Datos de la bodega"
// @Success      201   {object}  dto.WarehouseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/companies/{id}/warehouses [post]
func (h *WarehouseHandler) Create(c *fiber.Ctx) error {
	companyID, ok := paramID(c, "id")
	if !ok {
		return invalidID(c)
	}
	var in dto.CreateWarehouseRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), companyID, in)
	if err != nil {
		return writeError(c, h.log, warehouseMessages, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListByCompany godoc
// @Summary      Listar bodegas de una empresa
// @Tags         warehouses
// @Produce      json
// @Param        id   path  int  true  "ID de la empresa"
// @Success      200  {object}  dto.WarehouseListResponse
// @Router       /api/companies/{id}/warehouses [get]
func (h *WarehouseHandler) ListByCompany(c *fiber.Ctx) error {
	companyID, ok := paramID(c, "id")
	if !ok {
		return invalidID(c)
	}
	out, err := h.uc.ListByCompany(c.UserContext(), companyID)
	if err != nil {
		return writeError(c, h.log, warehouseMessages, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener bodega por ID
// @Tags         warehouses
// @Produce      json
// @Param        id   path  int  true  "ID de la bodega"
// @Success      200  {object}  dto.WarehouseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/warehouses/{id} [get]
func (h *WarehouseHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return invalidID(c)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, h.log, warehouseMessages, err)
	}
	return c.JSON(out)
}
