package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/mobishop/pos-api/internal/domain/entity"
	"github.com/mobishop/pos-api/internal/domain/repository"
	"github.com/mobishop/pos-api/pkg/apperror"
	"github.com/mobishop/pos-api/pkg/utils"
)

// AuthService handles operator login. This gates the API and scopes the cart
// session; it is not a hardened security boundary for a public deployment.
type AuthService struct {
	userRepo    repository.UserRepository
	cartService *CartService
	jwtManager  *utils.JWTManager
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, cartService *CartService, jwtManager *utils.JWTManager) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		cartService: cartService,
		jwtManager:  jwtManager,
	}
}

// LoginResult carries the issued tokens and the authenticated user
type LoginResult struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         *entity.User `json:"user"`
}

// Login verifies credentials and issues tokens
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil || !utils.CheckPassword(user.Password, password) {
		return nil, apperror.ErrInvalidCredentials
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID, user.Username)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// RefreshToken exchanges a valid refresh token for a new token pair
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*LoginResult, error) {
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

	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID, user.Username)
	if err != nil {
		return nil, err
	}
	newRefreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
		User:         user,
	}, nil
}

// Logout discards the caller's working cart
func (s *AuthService) Logout(ctx context.Context, session string) {
	s.cartService.Clear(ctx, session)
}

// ChangePassword verifies the current password and stores a new hash
func (s *AuthService) ChangePassword(ctx context.Context, userID uuid.UUID, current, next string) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.NewNotFoundError("User")
	}
	if !utils.CheckPassword(user.Password, current) {
		return apperror.ErrInvalidCredentials
	}

	hash, err := utils.HashPassword(next)
	if err != nil {
		return err
	}
	user.Password = hash
	return s.userRepo.Update(ctx, user)
}
