package client

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// Admin is the public admin projection returned by the auth service.
type Admin struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// Session pairs the admin's public fields with a bearer token.
type Session struct {
	Admin Admin  `json:"admin"`
	Token string `json:"token"`
}

// AuthClient wraps the auth service. Note the auth service uses "status" as
// its envelope key, unlike the other two services.
type AuthClient struct {
	base
}

func NewAuthClient(baseURL string, opts ...Option) *AuthClient {
	return &AuthClient{base: newBase(baseURL, opts)}
}

type authEnvelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *AuthClient) Register(ctx context.Context, email, password, name string) (*Session, error) {
	res, err := c.postJSON(ctx, "/auth/register", map[string]string{
		"email":    email,
		"password": password,
		"name":     name,
	})
	if err != nil {
		return nil, err
	}
	return c.session(res)
}

func (c *AuthClient) Login(ctx context.Context, email, password string) (*Session, error) {
	res, err := c.postJSON(ctx, "/auth/login", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, err
	}
	return c.session(res)
}

// AdminOnly calls the bearer-protected probe and returns the claims the
// service echoed back.
func (c *AuthClient) AdminOnly(ctx context.Context, token string) (*Admin, error) {
	header := http.Header{}
	header.Set("Authorization", "Bearer "+token)
	res, err := c.get(ctx, "/auth/admin-only", header)
	if err != nil {
		return nil, err
	}

	var envelope authEnvelope
	if err := decodeBody(res, &envelope); err != nil {
		return nil, err
	}
	if !envelope.Status {
		return nil, &APIError{StatusCode: res.StatusCode, Message: envelope.Message}
	}

	var data struct {
		User Admin `json:"user"`
	}
	if err := json.Unmarshal(envelope.Data, &data); err != nil {
		return nil, err
	}
	return &data.User, nil
}

func (c *AuthClient) session(res *http.Response) (*Session, error) {
	var envelope authEnvelope
	if err := decodeBody(res, &envelope); err != nil {
		return nil, err
	}
	if !envelope.Status {
		return nil, &APIError{StatusCode: res.StatusCode, Message: envelope.Message}
	}

	var session Session
	if err := json.Unmarshal(envelope.Data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}
