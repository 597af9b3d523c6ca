package rest

import (
	"context"
	"net/http"

	"pharmastore/p/internal/config"
	"pharmastore/p/internal/service"
	"pharmastore/p/internal/storage"
)

// Auth talks to the backend authentication endpoints, caching session state
// locally the same way the mock does.
type Auth struct {
	c *Client
}

func NewAuth(c *Client) *Auth {
	return &Auth{c: c}
}

func (a *Auth) cacheSession(resp *service.AuthResponse) {
	if resp.Token != "" {
		a.c.store.Set(storage.KeyAuthToken, resp.Token)
	}
	if resp.User != nil {
		a.c.store.Set(storage.KeyUserData, *resp.User)
	}
}

func (a *Auth) clearSession() {
	a.c.store.Remove(storage.KeyAuthToken)
	a.c.store.Remove(storage.KeyUserData)
}

func (a *Auth) Login(ctx context.Context, email, password string) *service.AuthResponse {
	body := map[string]string{"email": email, "password": password}
	var resp service.AuthResponse
	if _, err := a.c.do(ctx, http.MethodPost, config.EndpointAuthLogin, nil, nil, "", body, &resp); err != nil {
		return &service.AuthResponse{Envelope: networkFail()}
	}
	if resp.Success {
		a.cacheSession(&resp)
	}
	return &resp
}

func (a *Auth) Register(ctx context.Context, input service.RegisterInput) *service.AuthResponse {
	var resp service.AuthResponse
	if _, err := a.c.do(ctx, http.MethodPost, config.EndpointAuthRegister, nil, nil, "", input, &resp); err != nil {
		return &service.AuthResponse{Envelope: networkFail()}
	}
	if resp.Success {
		a.cacheSession(&resp)
	}
	return &resp
}

func (a *Auth) GetProfile(ctx context.Context, token string) *service.ProfileResponse {
	var resp service.ProfileResponse
	status, err := a.c.do(ctx, http.MethodGet, config.EndpointAuthProfile, nil, nil, token, nil, &resp)
	if err != nil {
		return &service.ProfileResponse{Envelope: networkFail()}
	}
	if status == http.StatusUnauthorized {
		// The session is dead; drop the cached state.
		a.clearSession()
	} else if resp.Success && resp.User != nil {
		a.c.store.Set(storage.KeyUserData, *resp.User)
	}
	return &resp
}

func (a *Auth) UpdateProfile(ctx context.Context, token string, update service.ProfileUpdate) *service.ProfileResponse {
	var resp service.ProfileResponse
	if _, err := a.c.do(ctx, http.MethodPut, config.EndpointAuthProfile, nil, nil, token, update, &resp); err != nil {
		return &service.ProfileResponse{Envelope: networkFail()}
	}
	if resp.Success && resp.User != nil {
		a.c.store.Set(storage.KeyUserData, *resp.User)
	}
	return &resp
}

// Logout clears local session state unconditionally; the backend call is
// best-effort and its outcome never reaches the caller.
func (a *Auth) Logout(ctx context.Context, token string) *service.Envelope {
	a.clearSession()
	a.c.store.Remove(storage.KeyCartItems)

	if token != "" {
		var resp service.Envelope
		_, _ = a.c.do(ctx, http.MethodPost, config.EndpointAuthLogout, nil, nil, token, nil, &resp)
	}

	env := service.OK("Logged out successfully")
	return &env
}
