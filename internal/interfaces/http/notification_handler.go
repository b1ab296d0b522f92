package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/serranorte/serraria-api/internal/application/alerts"
)

// NotificationHandler cuida das notificações do painel (protegido).
type NotificationHandler struct {
	uc *alerts.UseCase
}

// NewNotificationHandler constrói o handler de notificações.
func NewNotificationHandler(uc *alerts.UseCase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

// List godoc
// @Summary      Listar notificações
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.NotificationListResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/notifications [get]
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Sweep godoc
// @Summary      Varredura de estoque baixo (gera alertas deduplificados)
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SweepResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/notifications/sweep [post]
func (h *NotificationHandler) Sweep(c *fiber.Ctx) error {
	out, err := h.uc.SweepLowStock(c.Context(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// MarkRead godoc
// @Summary      Marcar notificação como lida
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID da notificação"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/notifications/{id}/read [patch]
func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	if err := h.uc.MarkRead(c.Context(), GetUserID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "notificação marcada como lida"})
}

// MarkAllRead godoc
// @Summary      Marcar todas as notificações como lidas
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/notifications/read-all [post]
func (h *NotificationHandler) MarkAllRead(c *fiber.Ctx) error {
	if err := h.uc.MarkAllRead(c.Context(), GetUserID(c)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "notificações marcadas como lidas"})
}
