package usecase

import (
	"fmt"
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-desk/internal/application/dto"
	"github.com/jhoicas/inventario-desk/internal/application/inventory"
	"github.com/jhoicas/inventario-desk/internal/domain"
	"github.com/jhoicas/inventario-desk/internal/domain/entity"
	"github.com/jhoicas/inventario-desk/pkg/config"
	"github.com/jhoicas/inventario-desk/pkg/ids"
	"github.com/jhoicas/inventario-desk/pkg/logger"
)

// Catálogo fijo de planes. Precios en COP.
var plans = []entity.Plan{
	{
		ID:     "plan-standard-monthly",
		Name:   "Estándar",
		Price:  decimal.NewFromInt(20000),
		Period: entity.PlanPeriodMonthly,
		Features: []string{
			"Productos y bodegas ilimitados",
			"Historial de movimientos",
			"Exportación CSV",
		},
	},
	{
		ID:     "plan-premium-annual",
		Name:   "Premium",
		Price:  decimal.NewFromInt(199000),
		Period: entity.PlanPeriodAnnual,
		Features: []string{
			"Todo lo del plan Estándar",
			"Reportes PDF",
			"Respaldo y restauración",
			"Soporte prioritario",
		},
	},
}

// SubscriptionUseCase suscripciones con checkout simulado de ePayco: no se
// contacta la pasarela, solo se construye la URL de redirección y se activa
// la suscripción de inmediato.
type SubscriptionUseCase struct {
	ledger *inventory.Ledger
	ids    ids.Generator
	cfg    config.BillingConfig
	now    func() time.Time
	log    *logger.Logger
}

func NewSubscriptionUseCase(ledger *inventory.Ledger, gen ids.Generator, cfg config.BillingConfig, log *logger.Logger) *SubscriptionUseCase {
	return &SubscriptionUseCase{ledger: ledger, ids: gen, cfg: cfg, now: time.Now, log: log}
}

// Plans devuelve el catálogo de planes disponibles.
func (uc *SubscriptionUseCase) Plans() []dto.PlanResponse {
	out := make([]dto.PlanResponse, 0, len(plans))
	for _, p := range plans {
		out = append(out, dto.PlanResponse{
			ID:       p.ID,
			Name:     p.Name,
			Price:    p.Price,
			Period:   p.Period,
			Features: p.Features,
		})
	}
	return out
}

// Current devuelve la suscripción vigente del usuario, o ErrNotFound.
func (uc *SubscriptionUseCase) Current(userID string) (*dto.SubscriptionResponse, error) {
	sub := uc.ledger.ActiveSubscription(userID)
	if sub == nil {
		return nil, domain.ErrNotFound
	}
	resp := uc.toResponse(*sub)
	return &resp, nil
}

// InitiatePayment activa la suscripción al plan elegido (cancelando cualquier
// otra activa) y devuelve la URL de pago a la que redirigiría el shell.
func (uc *SubscriptionUseCase) InitiatePayment(userID string, in dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	plan := planByID(in.PlanID)
	if plan == nil {
		return nil, domain.ErrInvalidInput
	}
	if uc.ledger.User(userID) == nil {
		return nil, domain.ErrUserNotFound
	}

	start := uc.now()
	end := start.AddDate(0, 1, 0)
	if plan.Period == entity.PlanPeriodAnnual {
		end = start.AddDate(1, 0, 0)
	}
	sub := entity.Subscription{
		ID:        uc.ids.NewID(),
		UserID:    userID,
		PlanID:    plan.ID,
		Status:    entity.SubscriptionActive,
		StartDate: start,
		EndDate:   end,
	}
	if err := uc.ledger.ReplaceActiveSubscription(sub); err != nil {
		return nil, err
	}

	resp := uc.toResponse(sub)
	return &dto.CheckoutResponse{
		RedirectURL:  uc.checkoutURL(plan, sub.ID),
		Subscription: resp,
	}, nil
}

// Cancel cancela la suscripción activa del usuario.
func (uc *SubscriptionUseCase) Cancel(userID string) error {
	return uc.ledger.CancelSubscription(userID)
}

// checkoutURL arma la URL de la pasarela con los datos del cobro.
func (uc *SubscriptionUseCase) checkoutURL(plan *entity.Plan, reference string) string {
	q := url.Values{}
	q.Set("public_key", uc.cfg.PublicKey)
	q.Set("amount", plan.Price.StringFixed(2))
	q.Set("currency", "COP")
	q.Set("description", fmt.Sprintf("Suscripción %s", plan.Name))
	q.Set("invoice", reference)
	return uc.cfg.CheckoutURL + "?" + q.Encode()
}

func (uc *SubscriptionUseCase) toResponse(s entity.Subscription) dto.SubscriptionResponse {
	return dto.SubscriptionResponse{
		ID:        s.ID,
		PlanID:    s.PlanID,
		Status:    s.Status,
		StartDate: s.StartDate,
		EndDate:   s.EndDate,
		Active:    s.IsCurrent(uc.now()),
	}
}

func planByID(id string) *entity.Plan {
	for i := range plans {
		if plans[i].ID == id {
			return &plans[i]
		}
	}
	return nil
}
