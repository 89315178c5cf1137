package auth_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/almacen-pro/internal/application/auth"
	"github.com/tu-usuario/almacen-pro/internal/application/dto"
	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/infrastructure/kvstore"
	pkgjwt "github.com/tu-usuario/almacen-pro/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

func newAuthStack(t *testing.T) *auth.AuthUseCase {
	t.Helper()
	users := kvstore.NewUserRepository(kvstore.NewStore(kvstore.NewMemoryDriver()))

	hash, err := bcrypt.GenerateFromPassword([]byte("secreta123"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, users.Upsert(&entity.User{
		ID: uuid.New().String(), Username: "maria", Name: "María",
		Role: entity.RoleManager, PasswordHash: string(hash),
		CreatedAt: time.Now(), UpdatedAt: time.Now(),
	}))

	return auth.NewAuthUseCase(users, auth.JWTConfig{
		Secret: testSecret, ExpMinutes: 60, Issuer: "almacen-pro-test",
	})
}

func TestLogin_CredencialesValidas(t *testing.T) {
	uc := newAuthStack(t)

	out, err := uc.Login(dto.LoginRequest{Username: "maria", Password: "secreta123"})
	require.NoError(t, err)
	assert.Equal(t, "maria", out.User.Username)
	assert.Equal(t, entity.RoleManager, out.User.Role)

	// el token emitido lleva los claims del usuario
	userID, username, role, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, userID)
	assert.Equal(t, "maria", username)
	assert.Equal(t, entity.RoleManager, role)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	uc := newAuthStack(t)

	_, err := uc.Login(dto.LoginRequest{Username: "maria", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc := newAuthStack(t)

	_, err := uc.Login(dto.LoginRequest{Username: "nadie", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
