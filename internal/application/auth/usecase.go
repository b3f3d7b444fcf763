package auth

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/inventario-desk/internal/application/dto"
	"github.com/jhoicas/inventario-desk/internal/application/inventory"
	"github.com/jhoicas/inventario-desk/internal/domain"
	"github.com/jhoicas/inventario-desk/internal/domain/entity"
	"github.com/jhoicas/inventario-desk/pkg/config"
	"github.com/jhoicas/inventario-desk/pkg/ids"
	"github.com/jhoicas/inventario-desk/pkg/jwt"
	"github.com/jhoicas/inventario-desk/pkg/logger"
)

// Credenciales del administrador sembrado en el primer arranque.
// El usuario debe cambiar la contraseña después del primer login.
const (
	defaultAdminEmail    = "admin@inventario.local"
	defaultAdminName     = "Administrador"
	defaultAdminPassword = "admin123"
)

// UseCase autenticación contra los usuarios del documento: login con JWT
// y cambio de contraseña.
type UseCase struct {
	ledger *inventory.Ledger
	ids    ids.Generator
	cfg    config.JWTConfig
	log    *logger.Logger
}

func NewUseCase(ledger *inventory.Ledger, gen ids.Generator, cfg config.JWTConfig, log *logger.Logger) *UseCase {
	return &UseCase{ledger: ledger, ids: gen, cfg: cfg, log: log}
}

// EnsureDefaultAdmin siembra el usuario administrador si el documento no tiene
// ningún usuario todavía (primer arranque de la aplicación).
func (uc *UseCase) EnsureDefaultAdmin() error {
	if len(uc.ledger.Users()) > 0 {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(defaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		ID:           uc.ids.NewID(),
		Name:         defaultAdminName,
		Email:        defaultAdminEmail,
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
		CreatedAt:    time.Now(),
	}
	if err := uc.ledger.AddUser(admin); err != nil {
		return err
	}
	uc.log.Warn().Str("email", defaultAdminEmail).Msg("usuario administrador por defecto creado; cambie la contraseña")
	return nil
}

// Login verifica las credenciales y devuelve un token JWT con el rol incluido.
// Email inexistente y contraseña incorrecta devuelven el mismo error.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	user := uc.ledger.UserByEmail(in.Email)
	if user == nil {
		return nil, domain.ErrNotAuthenticated
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrNotAuthenticated
	}

	token, err := jwt.Generate(uc.cfg.Secret, user.ID, user.Role, uc.cfg.Issuer, uc.cfg.Expiration)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("user_id", user.ID).Msg("login exitoso")
	return &dto.LoginResponse{
		Token: token,
		User:  ToUserResponse(*user),
	}, nil
}

// UpdatePassword cambia la contraseña del usuario autenticado verificando
// primero la actual.
func (uc *UseCase) UpdatePassword(userID string, in dto.UpdatePasswordRequest) error {
	if in.NewPassword == "" {
		return domain.ErrInvalidInput
	}
	user := uc.ledger.User(userID)
	if user == nil {
		return domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.CurrentPassword)); err != nil {
		return domain.ErrNotAuthenticated
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	return uc.ledger.UpdateUser(*user)
}

// ToUserResponse mapea un usuario a su DTO de salida, sin el hash.
func ToUserResponse(u entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
