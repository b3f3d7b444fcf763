package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Periodos de facturación de los planes.
const (
	PlanPeriodMonthly = "monthly"
	PlanPeriodAnnual  = "annual"
)

// Estados de una suscripción.
const (
	SubscriptionActive   = "active"
	SubscriptionExpired  = "expired"
	SubscriptionCanceled = "canceled"
)

// Plan representa un plan de suscripción del catálogo fijo.
type Plan struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Period   string          `json:"period"` // monthly | annual
	Features []string        `json:"features"`
}

// Subscription representa la suscripción de un usuario a un plan.
type Subscription struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	PlanID    string    `json:"plan_id"`
	Status    string    `json:"status"` // active | expired | canceled
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// IsCurrent indica si la suscripción está activa y vigente en el instante dado.
func (s *Subscription) IsCurrent(now time.Time) bool {
	return s.Status == SubscriptionActive && s.EndDate.After(now)
}
