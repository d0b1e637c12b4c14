package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/officehub/officehub-backend-go/internal/domain/auth"
	"github.com/officehub/officehub-backend-go/internal/domain/user"
	"github.com/officehub/officehub-backend-go/internal/pkg/jwt"
)

type service struct {
	users  user.Repository
	jwt    jwt.Service
	logger *slog.Logger
}

func NewAuthService(users user.Repository, jwtService jwt.Service, logger *slog.Logger) auth.Service {
	return &service{
		users:  users,
		jwt:    jwtService,
		logger: logger,
	}
}

func (s *service) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	u, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			// burn comparable time so missing users are indistinguishable
			_ = bcrypt.CompareHashAndPassword([]byte("$2a$10$N9qo8uLOickgx2ZMRZoMye"), []byte(req.Password))
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("lookup user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("failed login attempt", "username", req.Username)
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	accessToken, accessExpiresAt, err := s.jwt.GenerateAccessToken(u.ID, u.Username, u.Name, u.Role)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("generate access token: %w", err)
	}
	refreshToken, refreshExpiresAt, err := s.jwt.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("generate refresh token: %w", err)
	}

	s.logger.Info("user logged in", "user_id", u.ID, "role", u.Role)
	return auth.LoginResponse{
		AccessToken:           accessToken,
		AccessTokenExpiresAt:  accessExpiresAt,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresAt: refreshExpiresAt,
		User:                  user.ToUserResponse(u),
	}, nil
}

func (s *service) Refresh(ctx context.Context, refreshToken string) (auth.RefreshResponse, error) {
	if s.jwt.IsTokenRevoked(refreshToken) {
		return auth.RefreshResponse{}, auth.ErrTokenRevoked
	}

	token, err := s.jwt.JWTAuth().Decode(refreshToken)
	if err != nil {
		return auth.RefreshResponse{}, auth.ErrInvalidToken
	}
	tokenType, ok := token.Get("type")
	if !ok || tokenType != "refresh" {
		return auth.RefreshResponse{}, auth.ErrInvalidToken
	}
	userIDVal, ok := token.Get("user_id")
	if !ok {
		return auth.RefreshResponse{}, auth.ErrInvalidToken
	}
	userID, ok := userIDVal.(string)
	if !ok {
		return auth.RefreshResponse{}, auth.ErrInvalidToken
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.RefreshResponse{}, auth.ErrInvalidToken
		}
		return auth.RefreshResponse{}, fmt.Errorf("lookup user: %w", err)
	}

	accessToken, accessExpiresAt, err := s.jwt.GenerateAccessToken(u.ID, u.Username, u.Name, u.Role)
	if err != nil {
		return auth.RefreshResponse{}, fmt.Errorf("generate access token: %w", err)
	}
	return auth.RefreshResponse{
		AccessToken:          accessToken,
		AccessTokenExpiresAt: accessExpiresAt,
	}, nil
}

func (s *service) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	s.jwt.RevokeToken(refreshToken)
	return nil
}
