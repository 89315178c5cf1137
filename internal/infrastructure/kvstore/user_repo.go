package kvstore

import (
	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre el Store.
// Con inTx el repo asume que el runner ya sostiene el lock.
type UserRepo struct {
	s    *Store
	inTx bool
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(s *Store) *UserRepo {
	return &UserRepo{s: s}
}

func (r *UserRepo) begin() func() {
	if r.inTx {
		return func() {}
	}
	r.s.mu.Lock()
	return r.s.mu.Unlock
}

// List devuelve los usuarios en orden de inserción.
func (r *UserRepo) List() ([]*entity.User, error) {
	defer r.begin()()
	return r.s.readUsers(), nil
}

// GetByID devuelve el usuario o (nil, nil) si no existe.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	defer r.begin()()
	for _, u := range r.s.readUsers() {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

// GetByUsername devuelve el usuario con ese username o (nil, nil) si no existe.
func (r *UserRepo) GetByUsername(username string) (*entity.User, error) {
	defer r.begin()()
	for _, u := range r.s.readUsers() {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

// Upsert reemplaza el usuario con el mismo ID o lo agrega al final.
func (r *UserRepo) Upsert(user *entity.User) error {
	defer r.begin()()
	users := r.s.readUsers()
	for i, u := range users {
		if u.ID == user.ID {
			users[i] = user
			return r.s.writeUsers(users)
		}
	}
	return r.s.writeUsers(append(users, user))
}

// Delete elimina el usuario por ID. ErrNotFound si no existe.
func (r *UserRepo) Delete(id string) error {
	defer r.begin()()
	users := r.s.readUsers()
	for i, u := range users {
		if u.ID == id {
			return r.s.writeUsers(append(users[:i], users[i+1:]...))
		}
	}
	return domain.ErrNotFound
}
