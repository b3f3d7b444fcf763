package usecase

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/inventario-desk/internal/application/auth"
	"github.com/jhoicas/inventario-desk/internal/application/dto"
	"github.com/jhoicas/inventario-desk/internal/application/inventory"
	"github.com/jhoicas/inventario-desk/internal/domain"
	"github.com/jhoicas/inventario-desk/internal/domain/entity"
	"github.com/jhoicas/inventario-desk/pkg/ids"
	"github.com/jhoicas/inventario-desk/pkg/logger"
)

// UserUseCase administración de usuarios (solo accesible para administradores).
type UserUseCase struct {
	ledger *inventory.Ledger
	ids    ids.Generator
	log    *logger.Logger
}

func NewUserUseCase(ledger *inventory.Ledger, gen ids.Generator, log *logger.Logger) *UserUseCase {
	return &UserUseCase{ledger: ledger, ids: gen, log: log}
}

// List devuelve todos los usuarios sin sus hashes.
func (uc *UserUseCase) List() []dto.UserResponse {
	users := uc.ledger.Users()
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, auth.ToUserResponse(u))
	}
	return out
}

// Create crea un usuario nuevo con la contraseña hasheada.
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := entity.User{
		ID:           uc.ids.NewID(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         in.Role,
		CreatedAt:    time.Now(),
	}
	if err := uc.ledger.AddUser(user); err != nil {
		return nil, err
	}
	resp := auth.ToUserResponse(*uc.ledger.User(user.ID))
	return &resp, nil
}

// Update aplica los campos presentes del request al usuario.
func (uc *UserUseCase) Update(id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user := uc.ledger.User(id)
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.Role != nil {
		if !entity.ValidRole(*in.Role) {
			return nil, domain.ErrInvalidInput
		}
		user.Role = *in.Role
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if err := uc.ledger.UpdateUser(*user); err != nil {
		return nil, err
	}
	resp := auth.ToUserResponse(*user)
	return &resp, nil
}

// Delete elimina un usuario; el ledger protege al último administrador.
func (uc *UserUseCase) Delete(id string) error {
	return uc.ledger.DeleteUser(id)
}
