package handler

import (
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/strategic-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/strategic-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/strategic-dashboard-api/pkg/log"
	"github.com/vfg2006/strategic-dashboard-api/pkg/middleware"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

// fallback para erros que chegam sem AuthError
var authMessages = map[string]string{
	apiErrors.ErrInvalidCredentials: "Credenciais inválidas",
	apiErrors.ErrUserDisabled:       "Usuário desativado",
	apiErrors.ErrUserNotFound:       "Usuário não encontrado",
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - Login")

		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		token, err := service.LoginUser(req.Email, req.Password)
		if err != nil {
			log.ForContext(r.Context()).
				WithField("email", strings.ToLower(strings.TrimSpace(req.Email))).
				WithError(err).
				Warn("handler: login recusado")
			writeAuthError(w, err)
			return
		}

		writeJSON(w, r, LoginResponse{Token: token})
	}
}

// GetMe devolve o perfil do usuário do token, sem o hash da senha
func GetMe(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.UserFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		user, err := service.GetUserProfile(claims.UserID)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("handler: erro ao obter perfil")
			writeAuthError(w, err)
			return
		}

		writeJSON(w, r, user)
	}
}

func writeAuthError(w http.ResponseWriter, err error) {
	code := authenticating.APICode(err)

	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) && code != apiErrors.ErrInternalServer {
		var details any
		if authErr.UserID > 0 {
			details = map[string]any{"user_id": authErr.UserID}
		}
		apiErrors.WriteError(w, code, authErr.Error(), details)
		return
	}

	message, ok := authMessages[code]
	if !ok {
		message = "Erro interno de autenticação"
	}
	apiErrors.WriteError(w, code, message, nil)
}
