package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/serranorte/serraria-api/internal/application/dto"
	"github.com/serranorte/serraria-api/internal/application/trucks"
)

// TruckHandler cuida do pátio de caminhões (protegido).
type TruckHandler struct {
	uc *trucks.UseCase
}

// NewTruckHandler constrói o handler de caminhões.
func NewTruckHandler(uc *trucks.UseCase) *TruckHandler {
	return &TruckHandler{uc: uc}
}

// RecordArrival godoc
// @Summary      Registrar chegada de caminhão
// @Tags         trucks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordArrivalRequest  true  "license_plate, driver_name, supplier, wood_type, quantity"
// @Success      201   {object}  dto.TruckEntryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/trucks [post]
func (h *TruckHandler) RecordArrival(c *fiber.Ctx) error {
	var in dto.RecordArrivalRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.RecordArrival(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// RecordDeparture godoc
// @Summary      Registrar saída (credita a madeira no estoque)
// @Tags         trucks
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do caminhão"
// @Success      200  {object}  dto.TruckEntryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/trucks/{id}/departure [post]
func (h *TruckHandler) RecordDeparture(c *fiber.Ctx) error {
	out, err := h.uc.RecordDeparture(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar caminhões
// @Tags         trucks
// @Security     Bearer
// @Produce      json
// @Param        q  query  string  false  "Filtro por placa, motorista ou fornecedor"
// @Success      200  {array}   dto.TruckEntryResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/trucks [get]
func (h *TruckHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), GetUserID(c), c.Query("q"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
