package usecase_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-desk/internal/application/dto"
	"github.com/jhoicas/inventario-desk/internal/application/inventory"
	"github.com/jhoicas/inventario-desk/internal/application/usecase"
	"github.com/jhoicas/inventario-desk/internal/domain"
	"github.com/jhoicas/inventario-desk/internal/domain/entity"
	"github.com/jhoicas/inventario-desk/internal/infrastructure/jsonstore"
	"github.com/jhoicas/inventario-desk/pkg/config"
	"github.com/jhoicas/inventario-desk/pkg/ids"
	"github.com/jhoicas/inventario-desk/pkg/logger"
)

func newSubsUC(t *testing.T) (*usecase.SubscriptionUseCase, *inventory.Ledger) {
	t.Helper()
	store := jsonstore.NewStore(filepath.Join(t.TempDir(), "app.json"), "test")
	l, err := inventory.New(store, ids.NewSequentialGenerator("s"), logger.Nop())
	require.NoError(t, err)
	require.NoError(t, l.AddUser(entity.User{ID: "u1", Email: "ana@example.com", Role: entity.RoleAdmin}))

	cfg := config.BillingConfig{
		CheckoutURL: "https://checkout.epayco.co/pay",
		PublicKey:   "pk_test_123",
	}
	return usecase.NewSubscriptionUseCase(l, ids.NewSequentialGenerator("sub"), cfg, logger.Nop()), l
}

func TestPlans_CatalogoFijo(t *testing.T) {
	uc, _ := newSubsUC(t)

	plans := uc.Plans()
	require.Len(t, plans, 2)
	assert.Equal(t, "plan-standard-monthly", plans[0].ID)
	assert.Equal(t, entity.PlanPeriodMonthly, plans[0].Period)
	assert.Equal(t, "plan-premium-annual", plans[1].ID)
	assert.NotEmpty(t, plans[1].Features)
}

func TestInitiatePayment_ActivaYConstruyeURL(t *testing.T) {
	uc, _ := newSubsUC(t)

	out, err := uc.InitiatePayment("u1", dto.CheckoutRequest{PlanID: "plan-standard-monthly"})
	require.NoError(t, err)

	assert.True(t, out.Subscription.Active)
	assert.Equal(t, entity.SubscriptionActive, out.Subscription.Status)
	assert.Contains(t, out.RedirectURL, "https://checkout.epayco.co/pay?")
	assert.Contains(t, out.RedirectURL, "public_key=pk_test_123")
	assert.Contains(t, out.RedirectURL, "amount=20000.00")

	current, err := uc.Current("u1")
	require.NoError(t, err)
	assert.Equal(t, out.Subscription.ID, current.ID)
}

// TestInitiatePayment_CambioDePlan: contratar un segundo plan cancela el
// anterior; solo queda una suscripción activa.
func TestInitiatePayment_CambioDePlan(t *testing.T) {
	uc, _ := newSubsUC(t)

	_, err := uc.InitiatePayment("u1", dto.CheckoutRequest{PlanID: "plan-standard-monthly"})
	require.NoError(t, err)
	out, err := uc.InitiatePayment("u1", dto.CheckoutRequest{PlanID: "plan-premium-annual"})
	require.NoError(t, err)

	current, err := uc.Current("u1")
	require.NoError(t, err)
	assert.Equal(t, "plan-premium-annual", current.PlanID)
	assert.Equal(t, out.Subscription.ID, current.ID)
}

func TestInitiatePayment_PlanDesconocido(t *testing.T) {
	uc, _ := newSubsUC(t)
	_, err := uc.InitiatePayment("u1", dto.CheckoutRequest{PlanID: "plan-que-no-existe"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestInitiatePayment_UsuarioInexistente(t *testing.T) {
	uc, _ := newSubsUC(t)
	_, err := uc.InitiatePayment("fantasma", dto.CheckoutRequest{PlanID: "plan-standard-monthly"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestCancel(t *testing.T) {
	uc, _ := newSubsUC(t)

	_, err := uc.InitiatePayment("u1", dto.CheckoutRequest{PlanID: "plan-standard-monthly"})
	require.NoError(t, err)
	require.NoError(t, uc.Cancel("u1"))

	_, err = uc.Current("u1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, uc.Cancel("u1"), domain.ErrNotFound, "sin activa no hay nada que cancelar")
}
