package mock

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pharmastore/p/internal/service"
	"pharmastore/p/internal/storage"
)

func TestLogin(t *testing.T) {
	store := newTestStore(t)
	auth := NewAuth(store, testSecret)
	ctx := context.Background()

	t.Run("valid credentials", func(t *testing.T) {
		resp := auth.Login(ctx, "john.doe@example.com", "password123")
		require.True(t, resp.Success)
		assert.NotEmpty(t, resp.Token)
		require.NotNil(t, resp.User)
		assert.Equal(t, "user_001", resp.User.ID)
		assert.Equal(t, "john.doe@example.com", resp.User.Email)
	})

	t.Run("email lookup is case-insensitive", func(t *testing.T) {
		resp := auth.Login(ctx, "JOHN.DOE@example.com", "password123")
		assert.True(t, resp.Success)
	})

	t.Run("wrong password", func(t *testing.T) {
		resp := auth.Login(ctx, "john.doe@example.com", "wrong")
		require.False(t, resp.Success)
		assert.Equal(t, service.CodeInvalidCredentials, resp.Code)
		assert.Empty(t, resp.Token)
	})

	t.Run("unknown email", func(t *testing.T) {
		resp := auth.Login(ctx, "nobody@example.com", "password123")
		require.False(t, resp.Success)
		assert.Equal(t, service.CodeNotFound, resp.Code)
	})

	t.Run("malformed email", func(t *testing.T) {
		resp := auth.Login(ctx, "not-an-email", "password123")
		require.False(t, resp.Success)
		assert.Equal(t, service.CodeValidation, resp.Code)
	})

	t.Run("missing fields", func(t *testing.T) {
		resp := auth.Login(ctx, "", "")
		require.False(t, resp.Success)
		assert.Equal(t, service.CodeValidation, resp.Code)
	})
}

func TestLoginDeactivatedAccount(t *testing.T) {
	store := newTestStore(t)
	auth := NewAuth(store, testSecret)

	users := auth.users()
	require.NotEmpty(t, users)
	users[0].IsActive = false
	store.Set(storage.KeyMockUsers, users)

	resp := auth.Login(context.Background(), users[0].Email, "password123")
	require.False(t, resp.Success)
	assert.Equal(t, service.CodeAccountDisabled, resp.Code)
}

func TestRegister(t *testing.T) {
	store := newTestStore(t)
	auth := NewAuth(store, testSecret)
	ctx := context.Background()

	input := service.RegisterInput{
		Email:     "New.User@Example.com",
		Password:  "hunter22",
		FirstName: "New",
		LastName:  "User",
	}

	resp := auth.Register(ctx, input)
	require.True(t, resp.Success, resp.Message)
	assert.NotEmpty(t, resp.Token)
	require.NotNil(t, resp.User)
	assert.Equal(t, "new.user@example.com", resp.User.Email)
	assert.NotEqual(t, "user_001", resp.User.ID)

	// The new account can log in with its own credentials.
	login := auth.Login(ctx, "new.user@example.com", "hunter22")
	assert.True(t, login.Success)

	// Registering the same email again conflicts, whatever the casing.
	dup := auth.Register(ctx, service.RegisterInput{
		Email: "new.user@EXAMPLE.com", Password: "hunter22", FirstName: "N", LastName: "U",
	})
	require.False(t, dup.Success)
	assert.Equal(t, service.CodeConflict, dup.Code)
}

func TestRegisterValidation(t *testing.T) {
	store := newTestStore(t)
	auth := NewAuth(store, testSecret)
	ctx := context.Background()

	tests := []struct {
		name  string
		input service.RegisterInput
	}{
		{name: "missing fields", input: service.RegisterInput{Email: "a@b.co"}},
		{name: "malformed email", input: service.RegisterInput{Email: "nope", Password: "longenough", FirstName: "A", LastName: "B"}},
		{name: "short password", input: service.RegisterInput{Email: "a@b.co", Password: "short", FirstName: "A", LastName: "B"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp := auth.Register(ctx, tc.input)
			require.False(t, resp.Success)
			assert.Equal(t, service.CodeValidation, resp.Code)
		})
	}
}

func TestGetProfile(t *testing.T) {
	store := newTestStore(t)
	auth := NewAuth(store, testSecret)
	ctx := context.Background()
	token := loginJohn(t, store)

	resp := auth.GetProfile(ctx, token)
	require.True(t, resp.Success)
	require.NotNil(t, resp.User)
	assert.Equal(t, "john.doe@example.com", resp.User.Email)
	assert.Equal(t, "John", resp.User.FirstName)

	t.Run("invalid token", func(t *testing.T) {
		resp := auth.GetProfile(ctx, "garbage")
		require.False(t, resp.Success)
		assert.Equal(t, service.CodeAuth, resp.Code)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		other := NewAuth(store, "other_secret")
		forged := other.Login(ctx, "john.doe@example.com", "password123")
		require.True(t, forged.Success)

		resp := auth.GetProfile(ctx, forged.Token)
		require.False(t, resp.Success)
		assert.Equal(t, service.CodeAuth, resp.Code)
	})
}

func TestExpiredTokenIsRejected(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	loginJohn(t, store)

	// A correctly-signed token whose lifetime has already lapsed.
	claims := sessionClaims{
		UserID: "user_001",
		Email:  "john.doe@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-tokenTTL)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	profile := NewAuth(store, testSecret).GetProfile(ctx, expired)
	require.False(t, profile.Success)
	assert.Equal(t, service.CodeAuth, profile.Code)

	view := NewCart(store, testSecret).GetCart(ctx, expired)
	require.False(t, view.Success)
	assert.Equal(t, service.CodeAuth, view.Code)
}

func TestUpdateProfile(t *testing.T) {
	store := newTestStore(t)
	auth := NewAuth(store, testSecret)
	ctx := context.Background()
	token := loginJohn(t, store)

	name := "Johnny"
	phone := "+1-555-9999"
	resp := auth.UpdateProfile(ctx, token, service.ProfileUpdate{FirstName: &name, Phone: &phone})
	require.True(t, resp.Success)
	require.NotNil(t, resp.User)
	assert.Equal(t, "Johnny", resp.User.FirstName)
	require.NotNil(t, resp.User.Phone)
	assert.Equal(t, phone, *resp.User.Phone)
	// Untouched fields survive.
	assert.Equal(t, "Doe", resp.User.LastName)

	// The change reaches the backing account record, so a fresh login
	// reflects it.
	fresh := auth.Login(ctx, "john.doe@example.com", "password123")
	require.True(t, fresh.Success)
	assert.Equal(t, "Johnny", fresh.User.FirstName)

	t.Run("invalid token", func(t *testing.T) {
		resp := auth.UpdateProfile(ctx, "garbage", service.ProfileUpdate{FirstName: &name})
		require.False(t, resp.Success)
		assert.Equal(t, service.CodeAuth, resp.Code)
	})
}

func TestLogoutClearsSession(t *testing.T) {
	store := newTestStore(t)
	auth := NewAuth(store, testSecret)
	cart := NewCart(store, testSecret)
	ctx := context.Background()
	token := loginJohn(t, store)

	add := cart.AddToCart(ctx, token, "med_001", 1)
	require.True(t, add.Success)

	resp := auth.Logout(ctx, token)
	assert.True(t, resp.Success)

	assert.False(t, store.Has(storage.KeyAuthToken))
	assert.False(t, store.Has(storage.KeyUserData))
	assert.False(t, store.Has(storage.KeyCartItems))

	// The session projection is gone even though the token itself has not
	// expired.
	profile := auth.GetProfile(ctx, token)
	assert.False(t, profile.Success)
}
