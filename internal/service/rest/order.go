package rest

import (
	"context"
	"net/http"
	"net/url"

	"pharmastore/p/internal/config"
	"pharmastore/p/internal/service"
)

// Order talks to the backend order endpoints.
type Order struct {
	c *Client
}

func NewOrder(c *Client) *Order {
	return &Order{c: c}
}

func (s *Order) CreateOrder(ctx context.Context, token string, input service.OrderInput) *service.OrderResponse {
	var resp service.OrderResponse
	if _, err := s.c.do(ctx, http.MethodPost, config.EndpointOrders, nil, nil, token, input, &resp); err != nil {
		return &service.OrderResponse{Envelope: networkFail()}
	}
	return &resp
}

func (s *Order) GetOrders(ctx context.Context, token string, filter service.OrderFilter) *service.OrdersResponse {
	q := url.Values{}
	if filter.Status != "" {
		q.Set("status", filter.Status)
	}
	var resp service.OrdersResponse
	if _, err := s.c.do(ctx, http.MethodGet, config.EndpointOrders, nil, q, token, nil, &resp); err != nil {
		return &service.OrdersResponse{Envelope: networkFail()}
	}
	return &resp
}

func (s *Order) GetOrderByID(ctx context.Context, token, id string) *service.OrderResponse {
	params := map[string]string{"id": id}
	var resp service.OrderResponse
	if _, err := s.c.do(ctx, http.MethodGet, config.EndpointOrderDetail, params, nil, token, nil, &resp); err != nil {
		return &service.OrderResponse{Envelope: networkFail()}
	}
	return &resp
}

func (s *Order) CancelOrder(ctx context.Context, token, id string) *service.OrderResponse {
	params := map[string]string{"id": id}
	var resp service.OrderResponse
	if _, err := s.c.do(ctx, http.MethodPost, config.EndpointOrderCancel, params, nil, token, nil, &resp); err != nil {
		return &service.OrderResponse{Envelope: networkFail()}
	}
	return &resp
}
