package services

import (
	"github.com/venturelink/venturelink-api/internal/auth"
	apperrors "github.com/venturelink/venturelink-api/internal/errors"
	"github.com/venturelink/venturelink-api/internal/models"
	"github.com/venturelink/venturelink-api/internal/repository"
	"github.com/venturelink/venturelink-api/pkg/config"
)

// authServiceImpl implements AuthService
type authServiceImpl struct {
	repos      *repository.Repositories
	jwtService *auth.JWTService
	cfg        *config.Config
}

// newAuthService creates a new auth service implementation
func newAuthService(repos *repository.Repositories, cfg *config.Config) AuthService {
	return &authServiceImpl{
		repos:      repos,
		jwtService: auth.NewJWTService(cfg.JWTSecret),
		cfg:        cfg,
	}
}

// Login authenticates a user and returns a token pair
func (s *authServiceImpl) Login(email, password string) (*models.LoginResponse, error) {
	user, err := s.repos.User.GetByEmail(email)
	if err != nil {
		return nil, apperrors.Unauthorized("invalid credentials", nil)
	}

	if !user.IsActive {
		return nil, apperrors.Forbidden("account is not activated", nil)
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, apperrors.Unauthorized("invalid credentials", nil)
	}

	return s.issueTokens(user)
}

// Register creates a new active user account
func (s *authServiceImpl) Register(req *models.RegisterRequest) (*models.User, error) {
	if existing, err := s.repos.User.GetByEmail(req.Email); err == nil && existing != nil {
		return nil, apperrors.Conflict("user with this email already exists", nil)
	}

	switch req.Role {
	case models.RoleFounder, models.RoleInvestor, models.RoleIncubator:
	default:
		return nil, apperrors.ValidationError("invalid role", nil)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError("failed to hash password", err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		Role:         string(req.Role),
		IsActive:     true,
	}

	if err := s.repos.User.Create(user); err != nil {
		return nil, err
	}

	return user, nil
}

// Activate completes the credential-activation workflow for an imported
// account: the token from the import email plus a fresh password flips the
// account active.
func (s *authServiceImpl) Activate(req *models.ActivateRequest) (*models.User, error) {
	user, err := s.repos.User.GetByEmail(req.Email)
	if err != nil {
		return nil, err
	}

	if user.IsActive {
		return nil, apperrors.Conflict("account is already active", nil)
	}
	if user.ActivationToken == "" || user.ActivationToken != req.Token {
		return nil, apperrors.Forbidden("invalid activation token", nil)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError("failed to hash password", err)
	}

	user.PasswordHash = hash
	user.IsActive = true
	user.ActivationToken = ""

	if err := s.repos.User.Update(user); err != nil {
		return nil, err
	}

	return user, nil
}

// ValidateToken resolves a token to its user
func (s *authServiceImpl) ValidateToken(token string) (*models.User, error) {
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return nil, apperrors.Unauthorized("invalid or expired token", err)
	}
	return s.repos.User.GetByID(claims.UserID)
}

// RefreshToken exchanges a refresh token for a new token pair
func (s *authServiceImpl) RefreshToken(token string) (*models.LoginResponse, error) {
	claims, err := s.jwtService.ValidateRefreshToken(token)
	if err != nil {
		return nil, apperrors.Unauthorized("invalid or expired refresh token", err)
	}

	user, err := s.repos.User.GetByID(claims.UserID)
	if err != nil {
		return nil, err
	}

	return s.issueTokens(user)
}

func (s *authServiceImpl) issueTokens(user *models.User) (*models.LoginResponse, error) {
	claims := auth.Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	}

	token, expiresAt, err := s.jwtService.GenerateToken(claims)
	if err != nil {
		return nil, apperrors.InternalError("failed to generate token", err)
	}

	refreshToken, _, err := s.jwtService.GenerateRefreshToken(claims)
	if err != nil {
		return nil, apperrors.InternalError("failed to generate refresh token", err)
	}

	return &models.LoginResponse{
		Token:        token,
		RefreshToken: refreshToken,
		User:         *user,
		ExpiresAt:    expiresAt,
	}, nil
}
