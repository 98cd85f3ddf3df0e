package service

import (
	"errors"
	"strings"

	"pgms-be-svc/internal/apperr"
	"pgms-be-svc/internal/auth"
	"pgms-be-svc/internal/config"
	"pgms-be-svc/internal/repository"
	"pgms-be-svc/pkg/logger"
)

// ErrInvalidCredentials is returned for any credential failure so login does
// not leak whether an account exists.
var ErrInvalidCredentials = errors.New("invalid email or password")

// LoginResult carries the issued token and the session it encodes
type LoginResult struct {
	Token   string        `json:"token"`
	Session *auth.Session `json:"session"`
}

// AuthService defines the interface for authentication operations
type AuthService interface {
	Login(email, password, role string) (*LoginResult, error)
}

// authService implements AuthService
type authService struct {
	tenantRepo repository.TenantRepository
	jwtManager *auth.JWTManager
	ownerCfg   *config.OwnerConfig
	logger     *logger.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(tenantRepo repository.TenantRepository, jwtManager *auth.JWTManager, ownerCfg *config.OwnerConfig, logger *logger.Logger) AuthService {
	return &authService{
		tenantRepo: tenantRepo,
		jwtManager: jwtManager,
		ownerCfg:   ownerCfg,
		logger:     logger,
	}
}

// Login authenticates an owner or tenant and issues a session token
func (s *authService) Login(email, password, role string) (*LoginResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" || role == "" {
		return nil, apperr.New(apperr.Validation, "please fill in all fields")
	}

	switch role {
	case auth.RoleOwner:
		return s.loginOwner(email, password)
	case auth.RoleTenant:
		return s.loginTenant(email, password)
	default:
		return nil, apperr.Newf(apperr.Validation, "unknown role %q", role)
	}
}

func (s *authService) loginOwner(email, password string) (*LoginResult, error) {
	if s.ownerCfg.PasswordHash == "" {
		s.logger.Error("Owner login attempted but no owner password hash is configured")
		return nil, ErrInvalidCredentials
	}

	if !strings.EqualFold(email, s.ownerCfg.Email) ||
		!auth.VerifyPassword(s.ownerCfg.PasswordHash, strings.TrimSpace(password)) {
		s.logger.WithField("email", email).Warn("Owner login failed")
		return nil, ErrInvalidCredentials
	}

	session := &auth.Session{
		Email: s.ownerCfg.Email,
		Name:  "Owner",
		Role:  auth.RoleOwner,
	}

	token, err := s.jwtManager.GenerateToken(session)
	if err != nil {
		s.logger.WithError(err).Error("Failed to sign owner session token")
		return nil, err
	}

	s.logger.WithField("email", session.Email).Info("Owner logged in successfully")
	return &LoginResult{Token: token, Session: session}, nil
}

func (s *authService) loginTenant(email, password string) (*LoginResult, error) {
	// Case-insensitive lookup first; retry exact only when the folded query
	// is rejected by the backend's policy layer.
	tenant, err := s.tenantRepo.GetByEmail(email, repository.MatchFold)
	if err != nil && apperr.IsKind(err, apperr.PermissionDenied) {
		s.logger.WithError(err).Warn("Folded email lookup rejected, retrying exact match")
		tenant, err = s.tenantRepo.GetByEmail(email, repository.MatchExact)
	}
	if err != nil {
		if apperr.IsKind(err, apperr.NotFound) {
			s.logger.WithField("email", email).Warn("Tenant login failed: no matching account")
			return nil, ErrInvalidCredentials
		}
		s.logger.WithError(err).WithField("email", email).Error("Tenant lookup failed")
		return nil, err
	}

	if !auth.VerifyPassword(tenant.Password, strings.TrimSpace(password)) {
		s.logger.WithField("email", email).Warn("Tenant login failed: password mismatch")
		return nil, ErrInvalidCredentials
	}

	session := &auth.Session{
		UserID: tenant.ID,
		Email:  tenant.Email,
		Name:   tenant.Name,
		Room:   tenant.Room,
		Role:   auth.RoleTenant,
	}

	token, err := s.jwtManager.GenerateToken(session)
	if err != nil {
		s.logger.WithError(err).Error("Failed to sign tenant session token")
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"tenant_id": tenant.ID,
		"email":     tenant.Email,
		"room":      tenant.Room,
	}).Info("Tenant logged in successfully")

	return &LoginResult{Token: token, Session: session}, nil
}
