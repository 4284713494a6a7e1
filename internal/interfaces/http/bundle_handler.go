package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/application/usecase"
)

var bundleMessages = messages{notFound: "kit o componente no encontrado", duplicate: "el componente ya pertenece al kit"}

// BundleHandler maneja los componentes de productos tipo kit.
type BundleHandler struct {
	uc  *usecase.BundleUseCase
	log zerolog.Logger
}

// NewBundleHandler construye el handler.
func NewBundleHandler(uc *usecase.BundleUseCase, log zerolog.Logger) *BundleHandler {
	return &BundleHandler{uc: uc, log: log}
}

// AddComponent godoc
// @Summary      Agregar componente a un kit
// @Tags         bundles
// @Accept       json
// @Produce      json
// @Param        id    path  int                            true  "ID del kit"
// @Param        body  body  dto.AddBundleComponentRequest  true  "Componente y cantidad"
// @Success      201   {object}  dto.BundleComponentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/components [post]
func (h *BundleHandler) AddComponent(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return invalidID(c)
	}
	var in dto.AddBundleComponentRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.AddComponent(c.UserContext(), id, in)
	if err != nil {
		return writeError(c, h.log, bundleMessages, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Components godoc
// @Summary      Listar componentes de un kit
// @Tags         bundles
// @Produce      json
// @Param        id   path  int  true  "ID del kit"
// @Success      200  {object}  dto.BundleComponentListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/components [get]
func (h *BundleHandler) Components(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return invalidID(c)
	}
	out, err := h.uc.Components(c.UserContext(), id)
	if err != nil {
		return writeError(c, h.log, bundleMessages, err)
	}
	return c.JSON(out)
}
