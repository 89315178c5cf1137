package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/almacen-pro/internal/application/dto"
	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

// UserUseCase casos de uso CRUD para usuarios. Las contraseñas se persisten
// solo como hash bcrypt. Las escrituras corren bajo el TxRunner para que el
// chequeo de unicidad del username actúe sobre el mismo estado que escribe.
type UserUseCase struct {
	users    repository.UserRepository
	txRunner TxRunner
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(users repository.UserRepository, txRunner TxRunner) *UserUseCase {
	return &UserUseCase{users: users, txRunner: txRunner}
}

// List lista los usuarios en orden de inserción, sin credenciales.
func (uc *UserUseCase) List() ([]dto.UserResponse, error) {
	users, err := uc.users.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *dto.ToUserResponse(u))
	}
	return out, nil
}

// Upsert crea (ID vacío) o edita un usuario. Username único entre IDs
// distintos; rol conocido; al crear, username y password son obligatorios.
func (uc *UserUseCase) Upsert(ctx context.Context, in dto.UserPatch) (*dto.UserResponse, error) {
	var out *dto.UserResponse
	err := uc.txRunner.Run(ctx, func(
		_ repository.ItemRepository,
		_ repository.CategoryRepository,
		users repository.UserRepository,
		_ repository.TransactionRepository,
	) error {
		now := time.Now()
		var user *entity.User
		if in.ID == "" {
			if in.Username == nil || in.Password == nil || *in.Password == "" {
				return domain.ErrInvalidInput
			}
			user = &entity.User{ID: uuid.New().String(), Role: entity.RoleStaff, CreatedAt: now}
		} else {
			existing, err := users.GetByID(in.ID)
			if err != nil {
				return err
			}
			if existing == nil {
				return domain.ErrNotFound
			}
			user = existing
		}

		if in.Username != nil {
			username := strings.TrimSpace(*in.Username)
			if username == "" {
				return domain.ErrInvalidInput
			}
			other, err := users.GetByUsername(username)
			if err != nil {
				return err
			}
			if other != nil && other.ID != user.ID {
				return domain.ErrDuplicate
			}
			user.Username = username
		}
		if in.Role != nil {
			if !entity.ValidRole(*in.Role) {
				return domain.ErrInvalidInput
			}
			user.Role = *in.Role
		}
		if in.Name != nil {
			user.Name = strings.TrimSpace(*in.Name)
		}
		if user.Name == "" {
			user.Name = user.Username
		}
		if in.Password != nil && *in.Password != "" {
			hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			user.PasswordHash = string(hash)
		}
		user.UpdatedAt = now

		if err := users.Upsert(user); err != nil {
			return err
		}
		out = dto.ToUserResponse(user)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete elimina un usuario. Falla con ErrConflict si el objetivo es el
// usuario de la sesión activa; el ID activo llega explícito desde el token,
// nunca de un estado global.
func (uc *UserUseCase) Delete(ctx context.Context, id, activeUserID string) error {
	if id == activeUserID {
		return domain.ErrConflict
	}
	return uc.txRunner.Run(ctx, func(
		_ repository.ItemRepository,
		_ repository.CategoryRepository,
		users repository.UserRepository,
		_ repository.TransactionRepository,
	) error {
		user, err := users.GetByID(id)
		if err != nil {
			return err
		}
		if user == nil {
			return domain.ErrNotFound
		}
		return users.Delete(id)
	})
}
