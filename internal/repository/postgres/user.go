package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/DanangAP-mitrais/ai-chat-app/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

type UserRepository struct {
	db *Connection
}

func NewUserRepository(db *Connection) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	var user model.User
	query := `SELECT id, fullname, email, hashed_password, created_at, updated_at, is_active, email_verified
			  FROM users WHERE email = $1`

	err := r.db.QueryRow(ctx, query, email).Scan(
		&user.ID, &user.Fullname, &user.Email, &user.HashedPassword,
		&user.CreatedAt, &user.UpdatedAt, &user.IsActive, &user.EmailVerified,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	var user model.User
	query := `SELECT id, fullname, email, hashed_password, created_at, updated_at, is_active, email_verified
			  FROM users WHERE id = $1`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&user.ID, &user.Fullname, &user.Email, &user.HashedPassword,
		&user.CreatedAt, &user.UpdatedAt, &user.IsActive, &user.EmailVerified,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

func (r *UserRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	query := `INSERT INTO users (id, fullname, email, hashed_password, created_at, updated_at, is_active, email_verified)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING id, fullname, email, hashed_password, created_at, updated_at, is_active, email_verified`

	var savedUser model.User
	err := r.db.QueryRow(ctx, query,
		user.ID, user.Fullname, user.Email, user.HashedPassword,
		user.CreatedAt, user.UpdatedAt, user.IsActive, user.EmailVerified,
	).Scan(
		&savedUser.ID, &savedUser.Fullname, &savedUser.Email, &savedUser.HashedPassword,
		&savedUser.CreatedAt, &savedUser.UpdatedAt, &savedUser.IsActive, &savedUser.EmailVerified,
	)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return savedUser, nil
}
