package mock

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"pharmastore/p/domain"
	"pharmastore/p/internal/service"
	"pharmastore/p/internal/storage"
)

// Auth emulates the authentication backend over local storage.
type Auth struct {
	session
}

func NewAuth(store *storage.Store, secret string) *Auth {
	return &Auth{session{store: store, secret: secret}}
}

func (a *Auth) users() []domain.User {
	return storage.Get(a.store, storage.KeyMockUsers, []domain.User(nil))
}

// persistSession stores the token and the redacted projection for the
// logged-in user.
func (a *Auth) persistSession(token string, user domain.User) {
	a.store.Set(storage.KeyAuthToken, token)
	a.store.Set(storage.KeyUserData, user.Profile())
}

func (a *Auth) Login(ctx context.Context, email, password string) *service.AuthResponse {
	if email == "" || password == "" {
		return &service.AuthResponse{Envelope: service.Fail(service.CodeValidation, "Email and password are required")}
	}
	if !isValidEmail(email) {
		return &service.AuthResponse{Envelope: service.Fail(service.CodeValidation, "Please enter a valid email address")}
	}

	users := a.users()
	idx := -1
	for i, u := range users {
		if strings.EqualFold(u.Email, email) {
			idx = i
			break
		}
	}
	if idx == -1 {
		return &service.AuthResponse{Envelope: service.Fail(service.CodeNotFound, "User not found")}
	}
	user := users[idx]

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return &service.AuthResponse{Envelope: service.Fail(service.CodeInvalidCredentials, "Invalid password")}
	}
	if !user.IsActive {
		return &service.AuthResponse{Envelope: service.Fail(service.CodeAccountDisabled, "Account is deactivated. Please contact support.")}
	}

	token, err := mintToken(user, a.secret)
	if err != nil {
		return &service.AuthResponse{Envelope: service.Fail(service.CodeAuth, "Login failed. Please try again.")}
	}
	a.persistSession(token, user)

	profile := user.Profile()
	return &service.AuthResponse{
		Envelope: service.OK("Login successful"),
		Token:    token,
		User:     &profile,
	}
}

func (a *Auth) Register(ctx context.Context, input service.RegisterInput) *service.AuthResponse {
	if input.Email == "" || input.Password == "" || input.FirstName == "" || input.LastName == "" {
		return &service.AuthResponse{Envelope: service.Fail(service.CodeValidation, "Email, password, first name, and last name are required")}
	}
	if !isValidEmail(input.Email) {
		return &service.AuthResponse{Envelope: service.Fail(service.CodeValidation, "Please enter a valid email address")}
	}
	if len(input.Password) < 6 {
		return &service.AuthResponse{Envelope: service.Fail(service.CodeValidation, "Password must be at least 6 characters long")}
	}

	users := a.users()
	for _, u := range users {
		if strings.EqualFold(u.Email, input.Email) {
			return &service.AuthResponse{Envelope: service.Fail(service.CodeConflict, "An account with this email already exists")}
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return &service.AuthResponse{Envelope: service.Fail(service.CodeValidation, "Registration failed. Please try again.")}
	}

	now := time.Now().UTC()
	user := domain.User{
		ID:            "user_" + uuid.NewString(),
		Email:         strings.ToLower(input.Email),
		Password:      string(hashed),
		FirstName:     input.FirstName,
		LastName:      input.LastName,
		Phone:         input.Phone,
		IsActive:      true,
		EmailVerified: true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	users = append(users, user)
	a.store.Set(storage.KeyMockUsers, users)

	token, err := mintToken(user, a.secret)
	if err != nil {
		return &service.AuthResponse{Envelope: service.Fail(service.CodeAuth, "Registration failed. Please try again.")}
	}
	a.persistSession(token, user)

	profile := user.Profile()
	return &service.AuthResponse{
		Envelope: service.OK("Account created successfully"),
		Token:    token,
		User:     &profile,
	}
}

func (a *Auth) GetProfile(ctx context.Context, token string) *service.ProfileResponse {
	if !a.tokenValid(token) {
		return &service.ProfileResponse{Envelope: service.Fail(service.CodeAuth, "Invalid or expired token")}
	}
	profile := storage.Get(a.store, storage.KeyUserData, domain.Profile{})
	if profile.ID == "" {
		return &service.ProfileResponse{Envelope: service.Fail(service.CodeNotFound, "User not found")}
	}
	return &service.ProfileResponse{Envelope: service.OK(""), User: &profile}
}

func (a *Auth) UpdateProfile(ctx context.Context, token string, update service.ProfileUpdate) *service.ProfileResponse {
	if !a.tokenValid(token) {
		return &service.ProfileResponse{Envelope: service.Fail(service.CodeAuth, "Invalid or expired token")}
	}
	profile := storage.Get(a.store, storage.KeyUserData, domain.Profile{})
	if profile.ID == "" {
		return &service.ProfileResponse{Envelope: service.Fail(service.CodeNotFound, "User not found")}
	}

	now := time.Now().UTC()
	applyUpdate(&profile, update, now)
	a.store.Set(storage.KeyUserData, profile)

	// Merge into the backing account record as well.
	users := a.users()
	for i := range users {
		if users[i].ID == profile.ID {
			mergeUser(&users[i], update, now)
			a.store.Set(storage.KeyMockUsers, users)
			break
		}
	}

	return &service.ProfileResponse{
		Envelope: service.OK("Profile updated successfully"),
		User:     &profile,
	}
}

func (a *Auth) Logout(ctx context.Context, token string) *service.Envelope {
	a.store.Remove(storage.KeyAuthToken)
	a.store.Remove(storage.KeyUserData)
	// Carts are session-scoped; logging out abandons the cart.
	a.store.Remove(storage.KeyCartItems)

	env := service.OK("Logged out successfully")
	return &env
}

func applyUpdate(p *domain.Profile, update service.ProfileUpdate, now time.Time) {
	if update.FirstName != nil {
		p.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		p.LastName = *update.LastName
	}
	if update.Phone != nil {
		p.Phone = update.Phone
	}
	if update.DateOfBirth != nil {
		p.DateOfBirth = update.DateOfBirth
	}
	if update.Address != nil {
		p.Address = update.Address
	}
	if update.InsuranceInfo != nil {
		p.InsuranceInfo = update.InsuranceInfo
	}
	p.UpdatedAt = now
}

func mergeUser(u *domain.User, update service.ProfileUpdate, now time.Time) {
	if update.FirstName != nil {
		u.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		u.LastName = *update.LastName
	}
	if update.Phone != nil {
		u.Phone = update.Phone
	}
	if update.DateOfBirth != nil {
		u.DateOfBirth = update.DateOfBirth
	}
	if update.Address != nil {
		u.Address = update.Address
	}
	if update.InsuranceInfo != nil {
		u.InsuranceInfo = update.InsuranceInfo
	}
	u.UpdatedAt = now
}
