package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlanResponse un plan del catálogo de suscripciones.
type PlanResponse struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Period   string          `json:"period"`
	Features []string        `json:"features"`
}

// SubscriptionResponse la suscripción vigente del usuario.
type SubscriptionResponse struct {
	ID        string    `json:"id"`
	PlanID    string    `json:"plan_id"`
	Status    string    `json:"status"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Active    bool      `json:"active"`
}

// CheckoutRequest entrada para iniciar el pago de un plan.
type CheckoutRequest struct {
	PlanID string `json:"plan_id" validate:"required"`
}

// CheckoutResponse URL de redirección a la pasarela de pagos.
type CheckoutResponse struct {
	RedirectURL  string               `json:"redirect_url"`
	Subscription SubscriptionResponse `json:"subscription"`
}
