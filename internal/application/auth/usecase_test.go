package auth_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-desk/internal/application/auth"
	"github.com/jhoicas/inventario-desk/internal/application/dto"
	"github.com/jhoicas/inventario-desk/internal/application/inventory"
	"github.com/jhoicas/inventario-desk/internal/domain"
	"github.com/jhoicas/inventario-desk/internal/domain/entity"
	"github.com/jhoicas/inventario-desk/internal/infrastructure/jsonstore"
	"github.com/jhoicas/inventario-desk/pkg/config"
	"github.com/jhoicas/inventario-desk/pkg/ids"
	"github.com/jhoicas/inventario-desk/pkg/jwt"
	"github.com/jhoicas/inventario-desk/pkg/logger"
)

var testJWT = config.JWTConfig{
	Secret:     "secret-de-pruebas",
	Expiration: 60,
	Issuer:     "inventario-desk-test",
}

func newAuthUC(t *testing.T) (*auth.UseCase, *inventory.Ledger) {
	t.Helper()
	store := jsonstore.NewStore(filepath.Join(t.TempDir(), "app.json"), "test")
	l, err := inventory.New(store, ids.NewSequentialGenerator("u"), logger.Nop())
	require.NoError(t, err)
	return auth.NewUseCase(l, ids.NewSequentialGenerator("auth"), testJWT, logger.Nop()), l
}

// TestEnsureDefaultAdmin: en el primer arranque se siembra el admin por
// defecto y se puede iniciar sesión con él; el token incluye el rol.
func TestEnsureDefaultAdmin_YLogin(t *testing.T) {
	uc, l := newAuthUC(t)

	require.NoError(t, uc.EnsureDefaultAdmin())
	require.Len(t, l.Users(), 1)
	assert.Equal(t, entity.RoleAdmin, l.Users()[0].Role)

	out, err := uc.Login(dto.LoginRequest{Email: "admin@inventario.local", Password: "admin123"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, entity.RoleAdmin, out.User.Role)

	userID, role, err := jwt.Parse(testJWT.Secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, userID)
	assert.Equal(t, entity.RoleAdmin, role)
}

// TestEnsureDefaultAdmin_NoDuplica: con usuarios existentes no se vuelve a sembrar.
func TestEnsureDefaultAdmin_NoDuplica(t *testing.T) {
	uc, l := newAuthUC(t)

	require.NoError(t, l.AddUser(entity.User{ID: "u1", Email: "otro@example.com", Role: entity.RoleAdmin}))
	require.NoError(t, uc.EnsureDefaultAdmin())
	assert.Len(t, l.Users(), 1)
}

// TestLogin_CredencialesInvalidas: email inexistente y contraseña incorrecta
// devuelven el mismo error, sin revelar cuál falló.
func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc, _ := newAuthUC(t)
	require.NoError(t, uc.EnsureDefaultAdmin())

	_, err := uc.Login(dto.LoginRequest{Email: "noexiste@example.com", Password: "admin123"})
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)

	_, err = uc.Login(dto.LoginRequest{Email: "admin@inventario.local", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
}

func TestUpdatePassword(t *testing.T) {
	uc, l := newAuthUC(t)
	require.NoError(t, uc.EnsureDefaultAdmin())
	adminID := l.Users()[0].ID

	// Contraseña actual incorrecta
	err := uc.UpdatePassword(adminID, dto.UpdatePasswordRequest{
		CurrentPassword: "incorrecta", NewPassword: "nueva-clave-123",
	})
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)

	// Cambio exitoso: la vieja deja de servir y la nueva funciona
	require.NoError(t, uc.UpdatePassword(adminID, dto.UpdatePasswordRequest{
		CurrentPassword: "admin123", NewPassword: "nueva-clave-123",
	}))

	_, err = uc.Login(dto.LoginRequest{Email: "admin@inventario.local", Password: "admin123"})
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)

	out, err := uc.Login(dto.LoginRequest{Email: "admin@inventario.local", Password: "nueva-clave-123"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
}
