// Package rest implements the domain services over HTTP against the
// configured backend. Method for method it mirrors the mock package:
// consumers cannot tell which implementation is bound.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"pharmastore/p/internal/config"
	"pharmastore/p/internal/service"
	"pharmastore/p/internal/storage"
)

const requestTimeout = 15 * time.Second

// Client bundles the HTTP transport, the backend base URL and the local
// store used to cache session state.
type Client struct {
	httpClient *http.Client
	baseURL    string
	store      *storage.Store
}

func NewClient(baseURL string, store *storage.Store) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		baseURL:    baseURL,
		store:      store,
	}
}

// do performs one JSON request/response cycle. The response body is decoded
// into out whatever the status code: failure envelopes travel in the body.
// The returned error covers transport and decode faults only.
func (c *Client) do(ctx context.Context, method, endpoint string, params map[string]string, query url.Values, token string, body, out any) (int, error) {
	target := config.BuildURL(c.baseURL, endpoint, params)
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return 0, err
		}
		payload = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, payload)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return resp.StatusCode, err
	}
	return resp.StatusCode, nil
}

func networkFail() service.Envelope {
	return service.Fail(service.CodeNetwork, "Network error. Please try again.")
}
