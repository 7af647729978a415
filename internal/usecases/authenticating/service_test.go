package authenticating

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/strategic-dashboard-api/internal/config"
	"github.com/vfg2006/strategic-dashboard-api/internal/domain"
	"github.com/vfg2006/strategic-dashboard-api/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

func hash(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	s, err := NewService(config.Auth{
		Secret: "segredo-de-teste",
		Users: []string{
			fmt.Sprintf("Ana@Empresa.com:%s:%d", hash(t, "senha-ana"), domain.RoleAdmin),
			fmt.Sprintf("bia@empresa.com:%s:%d", hash(t, "senha-bia"), domain.RoleViewer),
			fmt.Sprintf("caio@empresa.com:%s:%d:inativo", hash(t, "senha-caio"), domain.RoleSupervisor),
		},
		TokenTTL: time.Hour,
	})
	require.NoError(t, err)
	return s
}

func TestNewService_InvalidEntries(t *testing.T) {
	tests := []struct {
		name  string
		users []string
	}{
		{name: "Sem separadores", users: []string{"ana@empresa.com"}},
		{name: "Perfil não numérico", users: []string{"ana@empresa.com:$2a$04$abc:admin"}},
		{name: "Perfil inexistente", users: []string{"ana@empresa.com:$2a$04$abc:9"}},
		{name: "Email vazio", users: []string{":$2a$04$abc:1"}},
		{name: "Status desconhecido", users: []string{"ana@empresa.com:$2a$04$abc:1:bloqueado"}},
		{name: "Email duplicado", users: []string{"ana@empresa.com:$2a$04$abc:1", "ANA@empresa.com:$2a$04$def:2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewService(config.Auth{Secret: "s", Users: tt.users})
			assert.ErrorIs(t, err, ErrInvalidUserEntry)
		})
	}
}

func TestService_LoginUser(t *testing.T) {
	s := newTestService(t)

	tests := []struct {
		name     string
		email    string
		password string
		validate func(t *testing.T, token string, err error)
	}{
		{
			name:     "Login com sucesso ignorando caixa do email",
			email:    " ANA@empresa.com ",
			password: "senha-ana",
			validate: func(t *testing.T, token string, err error) {
				require.NoError(t, err)
				claims, err := s.ValidateToken(token)
				require.NoError(t, err)
				assert.Equal(t, 1, claims.UserID)
				assert.Equal(t, "ana", claims.UserName)
				assert.Equal(t, domain.RoleAdmin, claims.UserRoleID)
			},
		},
		{
			name:     "Senha incorreta",
			email:    "bia@empresa.com",
			password: "errada",
			validate: func(t *testing.T, token string, err error) {
				assert.Empty(t, token)
				var authErr *AuthError
				require.True(t, errors.As(err, &authErr))
				assert.Equal(t, apiErrors.ErrInvalidCredentials, authErr.Code())
				assert.Equal(t, 2, authErr.UserID)
			},
		},
		{
			name:     "Usuário desconhecido",
			email:    "carlos@empresa.com",
			password: "qualquer",
			validate: func(t *testing.T, token string, err error) {
				assert.ErrorIs(t, err, ErrInvalidCredentials)
				assert.Equal(t, apiErrors.ErrInvalidCredentials, APICode(err))
			},
		},
		{
			name:     "Usuário inativo",
			email:    "caio@empresa.com",
			password: "senha-caio",
			validate: func(t *testing.T, token string, err error) {
				assert.Empty(t, token)
				assert.ErrorIs(t, err, ErrUserDisabled)
				assert.Equal(t, apiErrors.ErrUserDisabled, APICode(err))
			},
		},
		{
			name:     "Dados ausentes",
			email:    "",
			password: "",
			validate: func(t *testing.T, token string, err error) {
				assert.ErrorIs(t, err, ErrMissingRequiredData)
				assert.Equal(t, apiErrors.ErrMissingRequiredData, APICode(err))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := s.LoginUser(tt.email, tt.password)
			tt.validate(t, token, err)
		})
	}
}

func TestService_ValidateToken(t *testing.T) {
	s := newTestService(t)
	issuedAt := time.Date(2024, 5, 24, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return issuedAt }

	token, err := s.LoginUser("bia@empresa.com", "senha-bia")
	require.NoError(t, err)

	t.Run("Token válido", func(t *testing.T) {
		claims, err := s.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, domain.RoleViewer, claims.UserRoleID)
	})

	t.Run("Token expirado", func(t *testing.T) {
		s.now = func() time.Time { return issuedAt.Add(2 * time.Hour) }
		defer func() { s.now = func() time.Time { return issuedAt } }()

		_, err := s.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
		assert.Equal(t, apiErrors.ErrExpiredToken, APICode(err))
	})

	t.Run("Assinado com outro segredo", func(t *testing.T) {
		other := newTestService(t)
		other.secret = []byte("outro")
		other.now = s.now
		forged, err := other.LoginUser("bia@empresa.com", "senha-bia")
		require.NoError(t, err)

		_, err = s.ValidateToken(forged)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Texto qualquer", func(t *testing.T) {
		_, err := s.ValidateToken("nao-e-um-jwt")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestAPICode(t *testing.T) {
	assert.Equal(t, apiErrors.ErrInvalidToken, APICode(fmt.Errorf("middleware: %w", ErrInvalidToken)))
	assert.Equal(t, apiErrors.ErrUserNotFound, NewAuthError(ErrUserNotFound, 7, "").Code())
	assert.Equal(t, apiErrors.ErrInternalServer, APICode(errors.New("assinatura falhou")))
}

func TestService_GetUserProfile(t *testing.T) {
	s := newTestService(t)

	user, err := s.GetUserProfile(2)
	require.NoError(t, err)
	assert.Equal(t, "bia@empresa.com", user.Email)
	assert.Empty(t, user.PasswordHash)
	assert.NotEmpty(t, s.usersByID[2].PasswordHash)

	_, err = s.GetUserProfile(99)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
