package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/medipos/pharmapos-api/internal/domain/entity"
	"github.com/medipos/pharmapos-api/internal/domain/enum"
	"github.com/medipos/pharmapos-api/internal/domain/repository"
	"github.com/medipos/pharmapos-api/pkg/apperror"
	"github.com/medipos/pharmapos-api/pkg/utils"
)

// AuthService handles authentication operations
type AuthService struct {
	userRepo   repository.UserRepository
	jwtManager *utils.JWTManager
	audit      *AuditService
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, jwtManager *utils.JWTManager, audit *AuditService) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
		audit:      audit,
	}
}

// TokenPair contains an access token and its refresh token
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Login verifies credentials and issues a token pair. The failure
// message never reveals whether the email or the password was wrong.
func (s *AuthService) Login(ctx context.Context, email, password string) (*entity.User, *TokenPair, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, apperror.ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, nil, apperror.ErrInvalidCredentials
	}

	tokens, err := s.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}

	// Audit failures must not lock users out
	_ = s.audit.Record(ctx, user.ID, user.Name, enum.ActionLogin,
		fmt.Sprintf("%s logged in", user.Name), nil)

	return user, tokens, nil
}

// Refresh exchanges a valid refresh token for a fresh token pair
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	userID, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperror.ErrInvalidToken
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrInvalidToken
	}

	return s.issueTokens(user)
}

// Logout records the logout event. Tokens are stateless; expiry is the
// only revocation, so this exists purely for the audit trail.
func (s *AuthService) Logout(ctx context.Context, userID uuid.UUID, userName string) error {
	return s.audit.Record(ctx, userID, userName, enum.ActionLogout,
		fmt.Sprintf("%s logged out", userName), nil)
}

// GetProfile returns the authenticated user's profile
func (s *AuthService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}
	return user, nil
}

func (s *AuthService) issueTokens(user *entity.User) (*TokenPair, error) {
	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID, user.Email, user.Name, user.Role.String())
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
