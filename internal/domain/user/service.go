package user

import "context"

type Service interface {
	ListUsers(ctx context.Context) ([]UserResponse, error)
	GetUser(ctx context.Context, id string) (UserResponse, error)
	CreateUser(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	UpdateUser(ctx context.Context, id string, req UpdateUserRequest) (UserResponse, error)
	DeleteUser(ctx context.Context, actorID string, id string) error
}
