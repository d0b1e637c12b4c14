package user

// Role represents the user's access level
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

// AllRoles returns all valid roles
func AllRoles() []Role {
	return []Role{RoleAdmin, RoleEmployee}
}

func (r Role) Valid() bool {
	for _, role := range AllRoles() {
		if r == role {
			return true
		}
	}
	return false
}

// User is an account that can sign in. PasswordHash is a bcrypt hash and
// never leaves the backend.
type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"passwordHash"`
	Name         string `json:"name"`
	Role         Role   `json:"role"`
	CreatedAt    int64  `json:"createdAt"`
}
