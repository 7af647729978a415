package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/strategic-dashboard-api/internal/domain"
	"github.com/vfg2006/strategic-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/strategic-dashboard-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/strategic-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		header   string
		setup    func(auth *mocks.MockAuthenticator)
		wantCode int
		wantBody string
		wantUser bool
	}{
		{
			name:     "Rota pública não exige token",
			path:     "/v1/login",
			setup:    func(auth *mocks.MockAuthenticator) {},
			wantCode: http.StatusOK,
		},
		{
			name:     "Sem cabeçalho Authorization",
			path:     "/v1/dashboard",
			setup:    func(auth *mocks.MockAuthenticator) {},
			wantCode: http.StatusUnauthorized,
			wantBody: apiErrors.ErrInvalidToken,
		},
		{
			name:     "Cabeçalho sem prefixo Bearer",
			path:     "/v1/dashboard",
			header:   "Token abc",
			setup:    func(auth *mocks.MockAuthenticator) {},
			wantCode: http.StatusUnauthorized,
			wantBody: apiErrors.ErrInvalidToken,
		},
		{
			name:   "Token expirado",
			path:   "/v1/dashboard",
			header: "Bearer velho",
			setup: func(auth *mocks.MockAuthenticator) {
				auth.EXPECT().ValidateToken("velho").Return(nil, authenticating.ErrExpiredToken)
			},
			wantCode: http.StatusUnauthorized,
			wantBody: apiErrors.ErrExpiredToken,
		},
		{
			name:   "Token válido grava usuário no contexto",
			path:   "/v1/dashboard",
			header: "Bearer bom",
			setup: func(auth *mocks.MockAuthenticator) {
				auth.EXPECT().ValidateToken("bom").Return(&domain.Claims{UserID: 1, UserRoleID: domain.RoleAdmin}, nil)
			},
			wantCode: http.StatusOK,
			wantUser: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			auth := mocks.NewMockAuthenticator(ctrl)
			tt.setup(auth)

			var gotUser bool
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, gotUser = UserFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(auth)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
			assert.Equal(t, tt.wantUser, gotUser)
		})
	}
}

func TestRoleMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		claims   *domain.Claims
		handler  func() func(http.Handler) http.Handler
		wantCode int
	}{
		{name: "Sem usuário no contexto", handler: AllRoles, wantCode: http.StatusUnauthorized},
		{name: "Visualizador em rota de administrador", claims: &domain.Claims{UserRoleID: domain.RoleViewer}, handler: AdminOnly, wantCode: http.StatusForbidden},
		{name: "Supervisor em rota de supervisão", claims: &domain.Claims{UserRoleID: domain.RoleSupervisor}, handler: AdminOrSupervisor, wantCode: http.StatusOK},
		{name: "Visualizador em rota aberta", claims: &domain.Claims{UserRoleID: domain.RoleViewer}, handler: AllRoles, wantCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil)
			if tt.claims != nil {
				req = req.WithContext(contextWithUser(req, tt.claims))
			}
			rec := httptest.NewRecorder()

			tt.handler()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
