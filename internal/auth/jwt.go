package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"pgms-be-svc/internal/config"
)

// Roles carried in session claims
const (
	RoleOwner  = "owner"
	RoleTenant = "tenant"
)

// Session is the explicit per-request session object, constructed at login
// and reconstructed from token claims by the auth middleware.
type Session struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Room   string `json:"room,omitempty"`
	Role   string `json:"role"`
}

// Claims are the JWT claims for an authenticated session
type Claims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Room   string `json:"room,omitempty"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// JWTManager issues and validates session tokens
type JWTManager struct {
	cfg *config.JWTConfig
}

// NewJWTManager creates a new JWT manager
func NewJWTManager(cfg *config.JWTConfig) *JWTManager {
	return &JWTManager{cfg: cfg}
}

// GenerateToken creates a signed token for the given session
func (j *JWTManager) GenerateToken(session *Session) (string, error) {
	now := time.Now()
	expirationTime := now.Add(time.Duration(j.cfg.ExpirationHours) * time.Hour)

	claims := &Claims{
		UserID: session.UserID,
		Email:  session.Email,
		Name:   session.Name,
		Room:   session.Room,
		Role:   session.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    j.cfg.Issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.cfg.Secret))
}

// ValidateToken verifies a token and returns the session it carries
func (j *JWTManager) ValidateToken(tokenString string) (*Session, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(j.cfg.Secret), nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return &Session{
		UserID: claims.UserID,
		Email:  claims.Email,
		Name:   claims.Name,
		Room:   claims.Room,
		Role:   claims.Role,
	}, nil
}
