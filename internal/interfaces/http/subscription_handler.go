package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-desk/internal/application/dto"
	"github.com/jhoicas/inventario-desk/internal/application/usecase"
	"github.com/jhoicas/inventario-desk/internal/domain"
)

// SubscriptionHandler planes y suscripción del usuario autenticado.
type SubscriptionHandler struct {
	uc *usecase.SubscriptionUseCase
}

// NewSubscriptionHandler construye el handler.
func NewSubscriptionHandler(uc *usecase.SubscriptionUseCase) *SubscriptionHandler {
	return &SubscriptionHandler{uc: uc}
}

// Plans godoc
// @Summary      Catálogo de planes
// @Tags         subscriptions
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.PlanResponse
// @Router       /api/plans [get]
func (h *SubscriptionHandler) Plans(c *fiber.Ctx) error {
	return c.JSON(h.uc.Plans())
}

// Current godoc
// @Summary      Suscripción vigente del usuario
// @Tags         subscriptions
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SubscriptionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/subscription [get]
func (h *SubscriptionHandler) Current(c *fiber.Ctx) error {
	out, err := h.uc.Current(GetUserID(c))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "no hay suscripción activa"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Checkout godoc
// @Summary      Iniciar pago de un plan
// @Tags         subscriptions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CheckoutRequest  true  "Plan elegido"
// @Success      200   {object}  dto.CheckoutResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/subscription/checkout [post]
func (h *SubscriptionHandler) Checkout(c *fiber.Ctx) error {
	var in dto.CheckoutRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.InitiatePayment(GetUserID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "plan_id desconocido"})
		}
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Cancel godoc
// @Summary      Cancelar la suscripción activa
// @Tags         subscriptions
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/subscription/cancel [post]
func (h *SubscriptionHandler) Cancel(c *fiber.Ctx) error {
	if err := h.uc.Cancel(GetUserID(c)); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "no hay suscripción activa"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "suscripción cancelada"})
}
