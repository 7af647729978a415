package authenticating

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/strategic-dashboard-api/internal/config"
	"github.com/vfg2006/strategic-dashboard-api/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

const defaultTokenTTL = 24 * time.Hour

type Authenticator interface {
	LoginUser(email, password string) (string, error)
	GetUserProfile(userID int) (*domain.User, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

// Service autentica os usuários declarados em AUTH_USERS.
// Não há cadastro de usuários: a lista é lida uma vez na inicialização.
type Service struct {
	usersByEmail map[string]*domain.User
	usersByID    map[int]*domain.User
	secret       []byte
	tokenTTL     time.Duration
	now          func() time.Time
}

func NewService(cfg config.Auth) (*Service, error) {
	s := &Service{
		usersByEmail: make(map[string]*domain.User, len(cfg.Users)),
		usersByID:    make(map[int]*domain.User, len(cfg.Users)),
		secret:       []byte(cfg.Secret),
		tokenTTL:     cfg.TokenTTL,
		now:          time.Now,
	}

	if s.tokenTTL <= 0 {
		s.tokenTTL = defaultTokenTTL
	}

	for i, entry := range cfg.Users {
		user, err := parseUserEntry(i+1, entry)
		if err != nil {
			return nil, err
		}

		if _, exists := s.usersByEmail[user.Email]; exists {
			return nil, fmt.Errorf("%w: email duplicado %s", ErrInvalidUserEntry, user.Email)
		}

		s.usersByEmail[user.Email] = user
		s.usersByID[user.ID] = user
	}

	if len(s.usersByEmail) == 0 {
		logrus.Warn("authenticating: nenhum usuário configurado em AUTH_USERS, login indisponível")
	}

	return s, nil
}

// parseUserEntry lê uma entrada email:hashBcrypt:roleID[:inativo]
func parseUserEntry(id int, entry string) (*domain.User, error) {
	parts := strings.Split(strings.TrimSpace(entry), ":")
	if len(parts) != 3 && len(parts) != 4 {
		return nil, fmt.Errorf("%w: entrada %d", ErrInvalidUserEntry, id)
	}

	active := true
	if len(parts) == 4 {
		if strings.ToLower(strings.TrimSpace(parts[3])) != "inativo" {
			return nil, fmt.Errorf("%w: status %q na entrada %d", ErrInvalidUserEntry, parts[3], id)
		}
		active = false
	}

	email := handleEmail(parts[0])
	if email == "" || parts[1] == "" {
		return nil, fmt.Errorf("%w: entrada %d", ErrInvalidUserEntry, id)
	}

	roleID, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil || !validRole(roleID) {
		return nil, fmt.Errorf("%w: perfil %q na entrada %d", ErrInvalidUserEntry, parts[2], id)
	}

	name := email
	if at := strings.Index(email, "@"); at > 0 {
		name = email[:at]
	}

	return &domain.User{
		ID:           id,
		Name:         name,
		Email:        email,
		PasswordHash: parts[1],
		Active:       active,
		RoleID:       roleID,
	}, nil
}

func validRole(roleID int) bool {
	switch roleID {
	case domain.RoleAdmin, domain.RoleSupervisor, domain.RoleViewer:
		return true
	default:
		return false
	}
}

func handleEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	email = strings.ReplaceAll(email, " ", "")
	return email
}

func (s *Service) LoginUser(email, password string) (string, error) {
	if email == "" || password == "" {
		return "", NewAuthError(ErrMissingRequiredData, 0, "Email e senha são obrigatórios")
	}

	user, ok := s.usersByEmail[handleEmail(email)]
	if !ok {
		return "", NewAuthError(ErrInvalidCredentials, 0, "Usuário ou senha incorretos")
	}

	if !user.Active {
		return "", NewAuthError(ErrUserDisabled, user.ID, "Conta desativada")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", NewAuthError(ErrInvalidCredentials, user.ID, "Usuário ou senha incorretos")
	}

	token, err := s.generateJWT(user)
	if err != nil {
		return "", NewAuthError(err, user.ID, "Erro ao gerar token de autenticação")
	}

	return token, nil
}

func (s *Service) GetUserProfile(userID int) (*domain.User, error) {
	user, ok := s.usersByID[userID]
	if !ok {
		return nil, NewAuthError(ErrUserNotFound, userID, "Usuário não encontrado")
	}

	profile := *user
	profile.PasswordHash = ""
	return &profile, nil
}

func (s *Service) generateJWT(user *domain.User) (string, error) {
	now := s.now()
	claims := domain.Claims{
		UserID:     user.ID,
		UserName:   user.Name,
		UserEmail:  user.Email,
		UserActive: user.Active,
		UserRoleID: user.RoleID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, 0, "Faça login novamente")
		}
		return nil, NewAuthError(ErrInvalidToken, 0, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, 0, "")
	}

	if _, exists := s.usersByID[claims.UserID]; !exists {
		return nil, NewAuthError(ErrInvalidToken, claims.UserID, "Usuário não configurado")
	}

	return claims, nil
}
