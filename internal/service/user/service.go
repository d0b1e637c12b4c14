package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/officehub/officehub-backend-go/internal/domain/user"
	"github.com/officehub/officehub-backend-go/internal/pkg/validator"
)

type service struct {
	users  user.Repository
	logger *slog.Logger
}

func NewUserService(users user.Repository, logger *slog.Logger) user.Service {
	return &service{users: users, logger: logger}
}

func (s *service) ListUsers(ctx context.Context) ([]user.UserResponse, error) {
	all, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	responses := make([]user.UserResponse, 0, len(all))
	for _, u := range all {
		responses = append(responses, user.ToUserResponse(u))
	}
	return responses, nil
}

func (s *service) GetUser(ctx context.Context, id string) (user.UserResponse, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.ToUserResponse(u), nil
}

func (s *service) CreateUser(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	if verrs := validateCreate(req); len(verrs) > 0 {
		return user.UserResponse{}, fmt.Errorf("%w: %s", user.ErrValidationFailed, verrs.Error())
	}

	if _, err := s.users.GetByUsername(ctx, req.Username); err == nil {
		return user.UserResponse{}, user.ErrUsernameTaken
	} else if !errors.Is(err, user.ErrUserNotFound) {
		return user.UserResponse{}, fmt.Errorf("check username: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("hash password: %w", err)
	}

	u := user.User{
		ID:           uuid.New().String(),
		Username:     req.Username,
		PasswordHash: string(hash),
		Name:         req.Name,
		Role:         req.Role,
		CreatedAt:    time.Now().UnixMilli(),
	}
	if err := s.users.Upsert(ctx, u); err != nil {
		return user.UserResponse{}, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info("user created", "user_id", u.ID, "role", u.Role)
	return user.ToUserResponse(u), nil
}

func (s *service) UpdateUser(ctx context.Context, id string, req user.UpdateUserRequest) (user.UserResponse, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}

	if req.Role != "" && !req.Role.Valid() {
		return user.UserResponse{}, fmt.Errorf("%w: invalid role", user.ErrValidationFailed)
	}
	if req.Role != "" && req.Role != user.RoleAdmin && u.Role == user.RoleAdmin {
		if err := s.ensureAnotherAdmin(ctx, id); err != nil {
			return user.UserResponse{}, err
		}
	}

	if req.Name != "" {
		u.Name = req.Name
	}
	if req.Role != "" {
		u.Role = req.Role
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return user.UserResponse{}, fmt.Errorf("hash password: %w", err)
		}
		u.PasswordHash = string(hash)
	}

	if err := s.users.Upsert(ctx, u); err != nil {
		return user.UserResponse{}, fmt.Errorf("update user: %w", err)
	}
	return user.ToUserResponse(u), nil
}

func (s *service) DeleteUser(ctx context.Context, actorID string, id string) error {
	if actorID == id {
		return user.ErrCannotDeleteSelf
	}
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if u.Role == user.RoleAdmin {
		if err := s.ensureAnotherAdmin(ctx, id); err != nil {
			return err
		}
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	s.logger.Info("user deleted", "user_id", id, "actor_id", actorID)
	return nil
}

func (s *service) ensureAnotherAdmin(ctx context.Context, excludeID string) error {
	all, err := s.users.List(ctx)
	if err != nil {
		return fmt.Errorf("list users: %w", err)
	}
	for _, u := range all {
		if u.ID != excludeID && u.Role == user.RoleAdmin {
			return nil
		}
	}
	return user.ErrLastAdminRemains
}

func validateCreate(req user.CreateUserRequest) validator.ValidationErrors {
	var verrs validator.ValidationErrors
	if !validator.IsValidUsername(req.Username) {
		verrs = append(verrs, validator.ValidationError{Field: "username", Message: "must be 3-50 chars (letters, digits, . _ -)"})
	}
	if len(req.Password) < 8 {
		verrs = append(verrs, validator.ValidationError{Field: "password", Message: "must be at least 8 characters"})
	}
	if validator.IsEmpty(req.Name) {
		verrs = append(verrs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if !req.Role.Valid() {
		verrs = append(verrs, validator.ValidationError{Field: "role", Message: "role must be admin or employee"})
	}
	return verrs
}
