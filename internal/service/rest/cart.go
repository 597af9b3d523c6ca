package rest

import (
	"context"
	"net/http"

	"pharmastore/p/internal/config"
	"pharmastore/p/internal/service"
)

// Cart talks to the backend cart endpoints.
type Cart struct {
	c *Client
}

func NewCart(c *Client) *Cart {
	return &Cart{c: c}
}

func (s *Cart) GetCart(ctx context.Context, token string) *service.CartResponse {
	var resp service.CartResponse
	if _, err := s.c.do(ctx, http.MethodGet, config.EndpointCart, nil, nil, token, nil, &resp); err != nil {
		return &service.CartResponse{Envelope: networkFail()}
	}
	return &resp
}

func (s *Cart) AddToCart(ctx context.Context, token, medicineID string, quantity int) *service.CartItemResponse {
	body := map[string]any{"medicine_id": medicineID, "quantity": quantity}
	var resp service.CartItemResponse
	if _, err := s.c.do(ctx, http.MethodPost, config.EndpointCart, nil, nil, token, body, &resp); err != nil {
		return &service.CartItemResponse{Envelope: networkFail()}
	}
	return &resp
}

func (s *Cart) UpdateCartItem(ctx context.Context, token, cartItemID string, quantity int) *service.CartItemResponse {
	params := map[string]string{"id": cartItemID}
	body := map[string]any{"quantity": quantity}
	var resp service.CartItemResponse
	if _, err := s.c.do(ctx, http.MethodPut, config.EndpointCartItem, params, nil, token, body, &resp); err != nil {
		return &service.CartItemResponse{Envelope: networkFail()}
	}
	return &resp
}

func (s *Cart) RemoveFromCart(ctx context.Context, token, cartItemID string) *service.Envelope {
	params := map[string]string{"id": cartItemID}
	var resp service.Envelope
	if _, err := s.c.do(ctx, http.MethodDelete, config.EndpointCartItem, params, nil, token, nil, &resp); err != nil {
		env := networkFail()
		return &env
	}
	return &resp
}

func (s *Cart) ClearCart(ctx context.Context, token string) *service.Envelope {
	var resp service.Envelope
	if _, err := s.c.do(ctx, http.MethodDelete, config.EndpointCart, nil, nil, token, nil, &resp); err != nil {
		env := networkFail()
		return &env
	}
	return &resp
}

func (s *Cart) GetCartSummary(ctx context.Context, token string) *service.CartSummaryResponse {
	var resp service.CartSummaryResponse
	if _, err := s.c.do(ctx, http.MethodGet, config.EndpointCartSummary, nil, nil, token, nil, &resp); err != nil {
		return &service.CartSummaryResponse{Envelope: networkFail()}
	}
	return &resp
}
