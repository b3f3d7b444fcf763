package inventory

import (
	"strings"

	"github.com/jhoicas/inventario-desk/internal/domain"
	"github.com/jhoicas/inventario-desk/internal/domain/entity"
)

// Los usuarios viajan en el mismo documento que el ledger, así que sus
// mutaciones pasan por la misma sección crítica y el mismo write-through.
// La lógica de negocio (hash de password, validación de rol) vive en los
// casos de uso; aquí solo integridad de la colección.

// Users devuelve una copia de los usuarios en orden de inserción.
func (l *Ledger) Users() []entity.User {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]entity.User, len(l.doc.Users))
	copy(out, l.doc.Users)
	return out
}

// User devuelve un usuario por id, o nil si no existe.
func (l *Ledger) User(id string) *entity.User {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.userByID(id)
}

// UserByEmail devuelve un usuario por email (case-insensitive), o nil.
func (l *Ledger) UserByEmail(email string) *entity.User {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.doc.Users {
		if strings.EqualFold(l.doc.Users[i].Email, email) {
			u := l.doc.Users[i]
			return &u
		}
	}
	return nil
}

// AddUser agrega un usuario ya construido (id y hash incluidos).
// Falla con ErrEmailAlreadyExists si el email ya está en uso.
func (l *Ledger) AddUser(user entity.User) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.doc.Users {
		if strings.EqualFold(l.doc.Users[i].Email, user.Email) {
			return domain.ErrEmailAlreadyExists
		}
	}
	l.doc.Users = append(l.doc.Users, user)
	l.persist()
	l.log.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("usuario creado")
	return nil
}

// UpdateUser reemplaza el usuario con el mismo id.
// Falla con ErrUserNotFound si no existe y con ErrEmailAlreadyExists si el
// nuevo email pertenece a otro usuario.
func (l *Ledger) UpdateUser(user entity.User) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.doc.Users {
		if l.doc.Users[i].ID != user.ID && strings.EqualFold(l.doc.Users[i].Email, user.Email) {
			return domain.ErrEmailAlreadyExists
		}
	}
	for i := range l.doc.Users {
		if l.doc.Users[i].ID == user.ID {
			l.doc.Users[i] = user
			l.persist()
			return nil
		}
	}
	return domain.ErrUserNotFound
}

// DeleteUser elimina un usuario. Falla con ErrConflict si es el último admin:
// la aplicación siempre debe conservar al menos un administrador.
func (l *Ledger) DeleteUser(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	target := l.userByID(id)
	if target == nil {
		return domain.ErrUserNotFound
	}
	if target.Role == entity.RoleAdmin {
		admins := 0
		for i := range l.doc.Users {
			if l.doc.Users[i].Role == entity.RoleAdmin {
				admins++
			}
		}
		if admins <= 1 {
			return domain.ErrConflict
		}
	}
	for i := range l.doc.Users {
		if l.doc.Users[i].ID == id {
			l.doc.Users = append(l.doc.Users[:i], l.doc.Users[i+1:]...)
			l.persist()
			l.log.Info().Str("user_id", id).Msg("usuario eliminado")
			return nil
		}
	}
	return domain.ErrUserNotFound
}

// userByID busca sin tomar el mutex; para uso interno con el lock tomado.
func (l *Ledger) userByID(id string) *entity.User {
	for i := range l.doc.Users {
		if l.doc.Users[i].ID == id {
			u := l.doc.Users[i]
			return &u
		}
	}
	return nil
}
