package user

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/officehub/officehub-backend-go/internal/domain/user"
)

type fakeUserRepo struct {
	items map[string]user.User
}

func (f *fakeUserRepo) List(ctx context.Context) ([]user.User, error) {
	var all []user.User
	for _, u := range f.items {
		all = append(all, u)
	}
	return all, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	u, ok := f.items[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (user.User, error) {
	for _, u := range f.items {
		if u.Username == username {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) Upsert(ctx context.Context, u user.User) error {
	f.items[u.ID] = u
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id string) error {
	delete(f.items, id)
	return nil
}

func newTestService() (user.Service, *fakeUserRepo) {
	repo := &fakeUserRepo{items: map[string]user.User{
		"admin-1": {ID: "admin-1", Username: "admin", Name: "Admin", Role: user.RoleAdmin},
	}}
	return NewUserService(repo, slog.Default()), repo
}

func TestCreateUser_HashesPassword(t *testing.T) {
	svc, repo := newTestService()

	resp, err := svc.CreateUser(context.Background(), user.CreateUserRequest{
		Username: "jdoe",
		Password: "long-enough-password",
		Name:     "Jane Doe",
		Role:     user.RoleEmployee,
	})

	require.NoError(t, err)
	stored := repo.items[resp.ID]
	assert.NotEqual(t, "long-enough-password", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("long-enough-password")))
}

func TestCreateUser_Rejections(t *testing.T) {
	svc, _ := newTestService()

	cases := []struct {
		name string
		req  user.CreateUserRequest
		want error
	}{
		{
			name: "short username",
			req:  user.CreateUserRequest{Username: "ab", Password: "long-enough", Name: "X", Role: user.RoleEmployee},
			want: user.ErrValidationFailed,
		},
		{
			name: "short password",
			req:  user.CreateUserRequest{Username: "valid", Password: "short", Name: "X", Role: user.RoleEmployee},
			want: user.ErrValidationFailed,
		},
		{
			name: "bad role",
			req:  user.CreateUserRequest{Username: "valid", Password: "long-enough", Name: "X", Role: "superuser"},
			want: user.ErrValidationFailed,
		},
		{
			name: "taken username",
			req:  user.CreateUserRequest{Username: "admin", Password: "long-enough", Name: "X", Role: user.RoleEmployee},
			want: user.ErrUsernameTaken,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := svc.CreateUser(context.Background(), c.req)
			assert.ErrorIs(t, err, c.want)
		})
	}
}

func TestUpdateUser_EmptyPasswordKeepsHash(t *testing.T) {
	svc, repo := newTestService()
	repo.items["emp-1"] = user.User{ID: "emp-1", Username: "jdoe", Name: "Jane", Role: user.RoleEmployee, PasswordHash: "keep-me"}

	_, err := svc.UpdateUser(context.Background(), "emp-1", user.UpdateUserRequest{Name: "Jane D."})

	require.NoError(t, err)
	assert.Equal(t, "keep-me", repo.items["emp-1"].PasswordHash)
	assert.Equal(t, "Jane D.", repo.items["emp-1"].Name)
}

func TestUpdateUser_CannotDemoteLastAdmin(t *testing.T) {
	svc, repo := newTestService()

	_, err := svc.UpdateUser(context.Background(), "admin-1", user.UpdateUserRequest{Role: user.RoleEmployee})
	assert.ErrorIs(t, err, user.ErrLastAdminRemains)

	// With a second admin present the demotion goes through
	repo.items["admin-2"] = user.User{ID: "admin-2", Username: "root", Name: "Root", Role: user.RoleAdmin}
	resp, err := svc.UpdateUser(context.Background(), "admin-1", user.UpdateUserRequest{Role: user.RoleEmployee})
	require.NoError(t, err)
	assert.Equal(t, user.RoleEmployee, resp.Role)
}

func TestDeleteUser_Guards(t *testing.T) {
	svc, repo := newTestService()
	repo.items["emp-1"] = user.User{ID: "emp-1", Username: "jdoe", Role: user.RoleEmployee}

	err := svc.DeleteUser(context.Background(), "admin-1", "admin-1")
	assert.ErrorIs(t, err, user.ErrCannotDeleteSelf)

	err = svc.DeleteUser(context.Background(), "emp-1", "admin-1")
	assert.ErrorIs(t, err, user.ErrLastAdminRemains)

	require.NoError(t, svc.DeleteUser(context.Background(), "admin-1", "emp-1"))
	assert.NotContains(t, repo.items, "emp-1")

	err = svc.DeleteUser(context.Background(), "admin-1", "emp-1")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}
