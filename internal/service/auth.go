package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"

	"github.com/DanangAP-mitrais/ai-chat-app/internal/logger"
	"github.com/DanangAP-mitrais/ai-chat-app/internal/model"
)

const passwordSpecialChars = "@$!%*?&"

// Auth orchestrates user registration and credential verification.
type Auth struct {
	userStore model.UserStore
	hasher    model.PasswordHasher
	logger    *logger.Logger
}

// NewAuth creates a new Auth service.
func NewAuth(userStore model.UserStore, hasher model.PasswordHasher, logger *logger.Logger) *Auth {
	return &Auth{
		userStore: userStore,
		hasher:    hasher,
		logger:    logger,
	}
}

// Register creates a new user. It fails with model.ErrEmailTaken when the
// normalized email is already registered and with model.ErrWeakPassword when
// the password does not satisfy the strength policy. The duplicate check runs
// before hashing so a taken email does not pay the hashing cost.
//
// The check-then-insert sequence is not atomic: a concurrent registration of
// the same email can slip between the lookup and the insert, in which case
// the unique constraint fires and the failure surfaces as a store fault
// rather than ErrEmailTaken.
func (a *Auth) Register(ctx context.Context, fullname, email, password string) (model.User, error) {
	email = normalizeEmail(email)

	a.logger.Debug("Auth service: registering user", "email", email)

	existing, err := a.userStore.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if existing.ID != uuid.Nil {
		a.logger.Info("Auth service: email already registered", "email", email)
		return model.User{}, model.ErrEmailTaken
	}

	if !isValidPassword(password) {
		return model.User{}, model.ErrWeakPassword
	}

	digest, err := a.hasher.Hash(password)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := model.User{
		ID:             uuid.New(),
		Fullname:       fullname,
		Email:          email,
		HashedPassword: digest,
		CreatedAt:      now,
		UpdatedAt:      now,
		IsActive:       true,
		EmailVerified:  false,
	}

	saved, err := a.userStore.Create(ctx, user)
	if err != nil {
		a.logger.Error("Auth service: failed to create user",
			"email", email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	a.logger.Info("Auth service: user registered", "email", email, "user_id", saved.ID)

	return saved, nil
}

// Authenticate verifies email and password. An unknown email and a wrong
// password both come back as model.ErrInvalidCredentials so callers cannot
// tell which field was wrong.
func (a *Auth) Authenticate(ctx context.Context, email, password string) (model.User, error) {
	email = normalizeEmail(email)

	user, err := a.userStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, model.ErrInvalidCredentials
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if !a.hasher.Verify(password, user.HashedPassword) {
		return model.User{}, model.ErrInvalidCredentials
	}

	return user, nil
}

// GetUserByID resolves a user by identifier, used to turn a verified token
// subject back into a full identity.
func (a *Auth) GetUserByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	user, err := a.userStore.GetByID(ctx, id)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// isValidPassword enforces the strength policy: at least 8 characters with
// an uppercase letter, a lowercase letter, a digit and a special character.
func isValidPassword(password string) bool {
	if len(password) < 8 {
		return false
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, c := range password {
		switch {
		case unicode.IsUpper(c):
			hasUpper = true
		case unicode.IsLower(c):
			hasLower = true
		case unicode.IsDigit(c):
			hasDigit = true
		case strings.ContainsRune(passwordSpecialChars, c):
			hasSpecial = true
		}
	}

	return hasUpper && hasLower && hasDigit && hasSpecial
}
