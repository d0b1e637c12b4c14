package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/officehub/officehub-backend-go/internal/domain/user"
	"github.com/officehub/officehub-backend-go/internal/pkg/database"
)

type userRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.Repository {
	return &userRepository{db: db}
}

func (r *userRepository) List(ctx context.Context) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT doc FROM users ORDER BY (doc->>'createdAt')::bigint`)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		var u user.User
		if err := json.Unmarshal(doc, &u); err != nil {
			return nil, fmt.Errorf("unmarshal user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *userRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	return r.getOne(ctx, `SELECT doc FROM users WHERE id = $1`, id)
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (user.User, error) {
	return r.getOne(ctx, `SELECT doc FROM users WHERE doc->>'username' = $1`, username)
}

func (r *userRepository) getOne(ctx context.Context, query string, arg string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	var doc []byte
	if err := q.QueryRow(ctx, query, arg).Scan(&doc); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("query user: %w", err)
	}
	var u user.User
	if err := json.Unmarshal(doc, &u); err != nil {
		return user.User{}, fmt.Errorf("unmarshal user: %w", err)
	}
	return u, nil
}

func (r *userRepository) Upsert(ctx context.Context, u user.User) error {
	q := GetQuerier(ctx, r.db)

	doc, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}
	_, err = q.Exec(ctx, `
		INSERT INTO users (id, doc) VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET doc = EXCLUDED.doc, updated_at = now()`,
		u.ID, doc,
	)
	if err != nil {
		return fmt.Errorf("upsert user: %w", err)
	}
	return nil
}

func (r *userRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}
