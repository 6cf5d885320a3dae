// Package users is the REST client for the user directory service.
package users

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/uamlabs/labfront/internal/directory"
)

// User is one directory user record. Wire names follow the backend
// contract, which serializes in Spanish (nombre, activo).
type User struct {
	ID        int    `json:"id"`
	Name      string `json:"nombre"`
	Email     string `json:"email"`
	Active    bool   `json:"activo"`
	Admin     bool   `json:"admin"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// Registration is the payload for creating an account. New accounts are
// always active non-admins; the backend expects the caller to say so.
type Registration struct {
	Name      string `json:"nombre"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Active    bool   `json:"activo"`
	Admin     bool   `json:"admin"`
	CreatedAt string `json:"createdAt"`
}

// NewRegistration builds a registration payload with the backend's
// required defaults (activo=true, admin=false, createdAt=now).
func NewRegistration(name, email, password string) Registration {
	return Registration{
		Name:      name,
		Email:     email,
		Password:  password,
		Active:    true,
		Admin:     false,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
}

// PasswordChange is the tagged password field of an update payload.
// Keep serializes as the empty string, which the backend treats as
// "leave the stored credential unchanged"; Set serializes the new value.
type PasswordChange struct {
	value string
	set   bool
}

// KeepPassword leaves the stored credential unchanged.
func KeepPassword() PasswordChange {
	return PasswordChange{}
}

// SetPassword replaces the stored credential.
func SetPassword(value string) PasswordChange {
	return PasswordChange{value: value, set: true}
}

// IsSet reports whether the change carries a new password.
func (p PasswordChange) IsSet() bool { return p.set }

// MarshalJSON serializes the wire sentinel: "" for keep, else the value.
func (p PasswordChange) MarshalJSON() ([]byte, error) {
	if !p.set {
		return json.Marshal("")
	}
	return json.Marshal(p.value)
}

// Update is the payload for PUT /{id}. The id is repeated in the body
// because the backend expects it there as well as in the path.
type Update struct {
	ID       int            `json:"id"`
	Name     string         `json:"nombre"`
	Email    string         `json:"email"`
	Active   bool           `json:"activo"`
	Admin    bool           `json:"admin"`
	Password PasswordChange `json:"password"`
}

// Client calls the user directory REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a client for the service at baseURL (without the
// /api/users suffix). A nil httpClient falls back to http.DefaultClient.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/") + "/api/users",
		httpClient: httpClient,
	}
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, reg Registration) error {
	return directory.Do(ctx, c.httpClient, http.MethodPost, c.baseURL+"/register", reg, nil)
}

// Login authenticates with email and password and returns the user record.
func (c *Client) Login(ctx context.Context, email, password string) (User, error) {
	credentials := map[string]string{"email": email, "password": password}
	var user User
	if err := directory.Do(ctx, c.httpClient, http.MethodPost, c.baseURL+"/login", credentials, &user); err != nil {
		return User{}, err
	}
	return user, nil
}

// ResetPassword replaces the credential for the account with the given email.
func (c *Client) ResetPassword(ctx context.Context, email, newPassword string) error {
	payload := map[string]string{"email": email, "newPassword": newPassword}
	return directory.Do(ctx, c.httpClient, http.MethodPost, c.baseURL+"/reset-password", payload, nil)
}

// List returns every user record.
func (c *Client) List(ctx context.Context) ([]User, error) {
	var list []User
	if err := directory.Do(ctx, c.httpClient, http.MethodGet, c.baseURL, nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// Update saves changes to the user with the given id and returns the
// server's representation. The backend answers either {message, user}
// or the bare user record; the nested form wins when present.
func (c *Client) Update(ctx context.Context, id int, update Update) (User, error) {
	raw, err := directory.DoRaw(ctx, c.httpClient, http.MethodPut, fmt.Sprintf("%s/%d", c.baseURL, id), update)
	if err != nil {
		return User{}, err
	}
	return decodeUpdated(raw)
}

// Delete removes the user with the given id.
func (c *Client) Delete(ctx context.Context, id int) error {
	return directory.Do(ctx, c.httpClient, http.MethodDelete, fmt.Sprintf("%s/%d", c.baseURL, id), nil, nil)
}

func decodeUpdated(raw []byte) (User, error) {
	var wrapper struct {
		Message string `json:"message"`
		User    *User  `json:"user"`
	}
	if err := json.Unmarshal(raw, &wrapper); err == nil && wrapper.User != nil {
		return *wrapper.User, nil
	}
	var user User
	if err := json.Unmarshal(raw, &user); err != nil {
		return User{}, fmt.Errorf("decode updated user: %w", err)
	}
	return user, nil
}
