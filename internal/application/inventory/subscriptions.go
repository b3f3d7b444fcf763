package inventory

import (
	"github.com/jhoicas/inventario-desk/internal/domain"
	"github.com/jhoicas/inventario-desk/internal/domain/entity"
)

// ActiveSubscription devuelve la suscripción activa y vigente del usuario,
// o nil si no tiene ninguna.
func (l *Ledger) ActiveSubscription(userID string) *entity.Subscription {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.now()
	for i := range l.doc.Subscriptions {
		s := l.doc.Subscriptions[i]
		if s.UserID == userID && s.IsCurrent(now) {
			return &s
		}
	}
	return nil
}

// ReplaceActiveSubscription cancela cualquier suscripción activa del usuario
// y agrega la nueva, en una sola sección crítica (el flujo de cambio de plan).
func (l *Ledger) ReplaceActiveSubscription(sub entity.Subscription) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.doc.Subscriptions {
		s := &l.doc.Subscriptions[i]
		if s.UserID == sub.UserID && s.Status == entity.SubscriptionActive {
			s.Status = entity.SubscriptionCanceled
		}
	}
	l.doc.Subscriptions = append(l.doc.Subscriptions, sub)
	l.persist()
	l.log.Info().Str("user_id", sub.UserID).Str("plan_id", sub.PlanID).Msg("suscripción creada")
	return nil
}

// CancelSubscription marca como cancelada la suscripción activa del usuario.
// Falla con ErrNotFound si no hay ninguna activa.
func (l *Ledger) CancelSubscription(userID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.doc.Subscriptions {
		s := &l.doc.Subscriptions[i]
		if s.UserID == userID && s.Status == entity.SubscriptionActive {
			s.Status = entity.SubscriptionCanceled
			l.persist()
			l.log.Info().Str("user_id", userID).Msg("suscripción cancelada")
			return nil
		}
	}
	return domain.ErrNotFound
}
