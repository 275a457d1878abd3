package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"gotienda/internal/domain"
)

const issuer = "GoTienda-API"

// ErrUnknownRole indica um papel que não existe em domain.UserRole.
var ErrUnknownRole = errors.New("papel de usuário desconhecido")

// TokenService define o contrato para manipulação de JWTs.
type TokenService interface {
	GenerateToken(userID string, userRole string) (string, error)
	ValidateToken(tokenString string) (*CustomClaims, error)
}

// CustomClaims carrega o usuário autenticado e o seu papel.
type CustomClaims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// IsAdmin informa se as claims pertencem a um administrador.
func (c *CustomClaims) IsAdmin() bool {
	return domain.UserRole(c.Role) == domain.RoleAdmin
}

// Service assina e valida tokens HS256 com uma chave compartilhada.
type Service struct {
	secretKey []byte
	expiry    time.Duration
	now       func() time.Time
}

func NewService(secretKey string, expiry time.Duration) *Service {
	return &Service{secretKey: []byte(secretKey), expiry: expiry, now: time.Now}
}

func knownRole(role string) bool {
	switch domain.UserRole(role) {
	case domain.RoleAdmin, domain.RoleUser:
		return true
	}
	return false
}

func (s *Service) claimsFor(userID, role string) CustomClaims {
	issued := s.now()
	return CustomClaims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(issued),
			NotBefore: jwt.NewNumericDate(issued),
			ExpiresAt: jwt.NewNumericDate(issued.Add(s.expiry)),
		},
	}
}

// GenerateToken emite um token para o usuário. Papéis fora de domain.UserRole são recusados.
func (s *Service) GenerateToken(userID string, userRole string) (string, error) {
	if userID == "" {
		return "", errors.New("usuário sem identificador")
	}
	if !knownRole(userRole) {
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, userRole)
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, s.claimsFor(userID, userRole)).SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("falha ao assinar o token: %w", err)
	}
	return signed, nil
}

// ValidateToken confere assinatura, emissor e validade, e devolve as claims.
func (s *Service) ValidateToken(tokenString string) (*CustomClaims, error) {
	claims := &CustomClaims{}

	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (interface{}, error) { return s.secretKey, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("token inválido: %w", err)
	}

	// sub e user_id precisam coincidir
	if claims.UserID == "" || claims.Subject != claims.UserID {
		return nil, errors.New("token inválido: identificação inconsistente")
	}
	if !knownRole(claims.Role) {
		return nil, fmt.Errorf("token inválido: %w", ErrUnknownRole)
	}
	return claims, nil
}
