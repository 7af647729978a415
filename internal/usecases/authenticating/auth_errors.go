package authenticating

import (
	"errors"
	"fmt"

	"github.com/vfg2006/strategic-dashboard-api/pkg/apiErrors"
)

var (
	ErrInvalidCredentials  = errors.New("credenciais inválidas")
	ErrUserDisabled        = errors.New("usuário desativado")
	ErrUserNotFound        = errors.New("usuário não encontrado")
	ErrInvalidToken        = errors.New("token inválido")
	ErrExpiredToken        = errors.New("token expirado")
	ErrMissingRequiredData = errors.New("dados obrigatórios ausentes")

	// ErrInvalidUserEntry só aparece na inicialização, ao ler AUTH_USERS
	ErrInvalidUserEntry = errors.New("usuário configurado em formato inválido")
)

// apiCodes associa cada erro base ao código devolvido pela API
var apiCodes = []struct {
	err  error
	code string
}{
	{ErrMissingRequiredData, apiErrors.ErrMissingRequiredData},
	{ErrInvalidCredentials, apiErrors.ErrInvalidCredentials},
	{ErrUserDisabled, apiErrors.ErrUserDisabled},
	{ErrUserNotFound, apiErrors.ErrUserNotFound},
	{ErrExpiredToken, apiErrors.ErrExpiredToken},
	{ErrInvalidToken, apiErrors.ErrInvalidToken},
}

// AuthError carrega o usuário envolvido (0 quando desconhecido) e uma mensagem para o cliente
type AuthError struct {
	Err     error
	UserID  int
	Details string
}

func NewAuthError(baseErr error, userID int, details string) *AuthError {
	return &AuthError{Err: baseErr, UserID: userID, Details: details}
}

func (e *AuthError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// Code é o código da API para o erro base
func (e *AuthError) Code() string {
	return APICode(e.Err)
}

// APICode classifica um erro de autenticação; erros desconhecidos viram SRV_001
func APICode(err error) string {
	for _, entry := range apiCodes {
		if errors.Is(err, entry.err) {
			return entry.code
		}
	}
	return apiErrors.ErrInternalServer
}
