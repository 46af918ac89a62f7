package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/DanangAP-mitrais/ai-chat-app/internal/mocks"
	"github.com/DanangAP-mitrais/ai-chat-app/internal/model"
	"github.com/DanangAP-mitrais/ai-chat-app/internal/testutil"
)

func TestAuth_Register_Success(t *testing.T) {
	ctx := context.Background()
	userStore := mocks.NewUserStore(t)
	hasher := mocks.NewPasswordHasher(t)
	lg := testutil.MakeNoopLogger()

	userStore.On("GetByEmail", mock.Anything, "test@example.com").Return(model.User{}, model.ErrNotFound)
	hasher.On("Hash", "TestPass123!").Return("$digest", nil)
	userStore.On("Create", mock.Anything, mock.MatchedBy(func(u model.User) bool {
		return u.Email == "test@example.com" &&
			u.Fullname == "Test User" &&
			u.HashedPassword == "$digest" &&
			u.IsActive && !u.EmailVerified &&
			u.ID != uuid.Nil
	})).Return(model.User{ID: uuid.New(), Email: "test@example.com", Fullname: "Test User"}, nil)

	a := NewAuth(userStore, hasher, lg)

	user, err := a.Register(ctx, "Test User", "Test@Example.com", "TestPass123!")
	require.NoError(t, err)
	assert.Equal(t, "test@example.com", user.Email)
}

func TestAuth_Register_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	userStore := mocks.NewUserStore(t)
	// no expectations: hashing must not happen for a taken email
	hasher := mocks.NewPasswordHasher(t)
	lg := testutil.MakeNoopLogger()

	userStore.On("GetByEmail", mock.Anything, "taken@example.com").Return(model.User{ID: uuid.New()}, nil)

	a := NewAuth(userStore, hasher, lg)

	_, err := a.Register(ctx, "Test User", "taken@example.com", "TestPass123!")
	require.ErrorIs(t, err, model.ErrEmailTaken)
}

func TestAuth_Register_WeakPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{name: "too short", password: "Aa1!"},
		{name: "plain word", password: "weak"},
		{name: "no uppercase", password: "testpass123!"},
		{name: "no lowercase", password: "TESTPASS123!"},
		{name: "no digit", password: "TestPass!!!!"},
		{name: "no special char", password: "TestPass1234"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userStore := mocks.NewUserStore(t)
			hasher := mocks.NewPasswordHasher(t)
			lg := testutil.MakeNoopLogger()

			userStore.On("GetByEmail", mock.Anything, "test@example.com").Return(model.User{}, model.ErrNotFound)

			a := NewAuth(userStore, hasher, lg)

			_, err := a.Register(context.Background(), "Test User", "test@example.com", tt.password)
			require.ErrorIs(t, err, model.ErrWeakPassword)
		})
	}
}

func TestAuth_Register_StoreFault(t *testing.T) {
	ctx := context.Background()
	userStore := mocks.NewUserStore(t)
	hasher := mocks.NewPasswordHasher(t)
	lg := testutil.MakeNoopLogger()

	userStore.On("GetByEmail", mock.Anything, "test@example.com").Return(model.User{}, model.ErrNotFound)
	hasher.On("Hash", "TestPass123!").Return("$digest", nil)
	userStore.On("Create", mock.Anything, mock.Anything).Return(model.User{}, assert.AnError)

	a := NewAuth(userStore, hasher, lg)

	_, err := a.Register(ctx, "Test User", "test@example.com", "TestPass123!")
	require.Error(t, err)
	assert.NotErrorIs(t, err, model.ErrEmailTaken)
	assert.NotErrorIs(t, err, model.ErrWeakPassword)
}

func TestAuth_Authenticate_Success(t *testing.T) {
	ctx := context.Background()
	userStore := mocks.NewUserStore(t)
	hasher := mocks.NewPasswordHasher(t)
	lg := testutil.MakeNoopLogger()

	stored := model.User{ID: uuid.New(), Email: "test@example.com", HashedPassword: "$digest"}
	userStore.On("GetByEmail", mock.Anything, "test@example.com").Return(stored, nil)
	hasher.On("Verify", "TestPass123!", "$digest").Return(true)

	a := NewAuth(userStore, hasher, lg)

	user, err := a.Authenticate(ctx, "TEST@example.com", "TestPass123!")
	require.NoError(t, err)
	assert.Equal(t, stored.ID, user.ID)
}

func TestAuth_Authenticate_UnknownEmailAndWrongPasswordCollapse(t *testing.T) {
	ctx := context.Background()
	lg := testutil.MakeNoopLogger()

	unknownStore := mocks.NewUserStore(t)
	unknownStore.On("GetByEmail", mock.Anything, "nobody@example.com").Return(model.User{}, model.ErrNotFound)
	a := NewAuth(unknownStore, mocks.NewPasswordHasher(t), lg)

	_, errUnknown := a.Authenticate(ctx, "nobody@example.com", "TestPass123!")
	require.ErrorIs(t, errUnknown, model.ErrInvalidCredentials)

	knownStore := mocks.NewUserStore(t)
	knownStore.On("GetByEmail", mock.Anything, "test@example.com").Return(model.User{ID: uuid.New(), HashedPassword: "$digest"}, nil)
	hasher := mocks.NewPasswordHasher(t)
	hasher.On("Verify", "WrongPass123!", "$digest").Return(false)
	a = NewAuth(knownStore, hasher, lg)

	_, errWrong := a.Authenticate(ctx, "test@example.com", "WrongPass123!")
	require.ErrorIs(t, errWrong, model.ErrInvalidCredentials)

	assert.Equal(t, errUnknown, errWrong)
}

func TestAuth_GetUserByID(t *testing.T) {
	ctx := context.Background()
	userStore := mocks.NewUserStore(t)
	lg := testutil.MakeNoopLogger()

	id := uuid.New()
	userStore.On("GetByID", mock.Anything, id).Return(model.User{ID: id, Email: "test@example.com"}, nil)

	a := NewAuth(userStore, mocks.NewPasswordHasher(t), lg)

	user, err := a.GetUserByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
}

func TestAuth_GetUserByID_NotFound(t *testing.T) {
	ctx := context.Background()
	userStore := mocks.NewUserStore(t)
	lg := testutil.MakeNoopLogger()

	id := uuid.New()
	userStore.On("GetByID", mock.Anything, id).Return(model.User{}, model.ErrNotFound)

	a := NewAuth(userStore, mocks.NewPasswordHasher(t), lg)

	_, err := a.GetUserByID(ctx, id)
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestIsValidPassword(t *testing.T) {
	tests := []struct {
		password string
		want     bool
	}{
		{password: "TestPass123!", want: true},
		{password: "Aa1@aaaa", want: true},
		{password: "weak", want: false},
		{password: "TestPass123", want: false},
		{password: "Aa1#aaaa", want: false}, // '#' is not in the special set
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			assert.Equal(t, tt.want, isValidPassword(tt.password))
		})
	}
}
