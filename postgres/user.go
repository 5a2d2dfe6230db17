package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/meikuraledutech/orgflow"
)

// CreateUser inserts a user account. If u.ID is empty, a UUID is
// auto-generated. Returns ErrUserExists if the email is already taken.
func (s *PGStore) CreateUser(ctx context.Context, u *orgflow.User) (string, error) {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}

	err := s.db.QueryRow(ctx,
		`INSERT INTO flow_users (id, email, password_hash) VALUES ($1, $2, $3) RETURNING created_at`,
		u.ID, u.Email, u.PasswordHash,
	).Scan(&u.CreatedAt)
	if err != nil {
		if pgErrCode(err) == codeUniqueViolation {
			return "", orgflow.ErrUserExists
		}
		return "", fmt.Errorf("orgflow: insert user: %w", err)
	}

	return u.ID, nil
}

// GetUserByEmail fetches a user account by email.
// Returns ErrUserNotFound if absent.
func (s *PGStore) GetUserByEmail(ctx context.Context, email string) (*orgflow.User, error) {
	var u orgflow.User
	err := s.db.QueryRow(ctx,
		`SELECT id, email, password_hash, created_at FROM flow_users WHERE email = $1`,
		email,
	).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt)

	if err != nil {
		if isNoRows(err) {
			return nil, orgflow.ErrUserNotFound
		}
		return nil, fmt.Errorf("orgflow: get user: %w", err)
	}

	return &u, nil
}
