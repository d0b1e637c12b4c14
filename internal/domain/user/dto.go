package user

// CreateUserRequest is the admin payload for adding a team member
type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     Role   `json:"role"`
}

// UpdateUserRequest updates profile fields; empty Password keeps the old one
type UpdateUserRequest struct {
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     Role   `json:"role"`
}

// UserResponse is the API shape of a user, without the credential hash
type UserResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Name      string `json:"name"`
	Role      Role   `json:"role"`
	CreatedAt int64  `json:"createdAt"`
}

func ToUserResponse(u User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Name:      u.Name,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
