// Package labs is the REST client for the lab directory service.
package labs

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/uamlabs/labfront/internal/directory"
)

// Lab is one laboratory record. OwnerID is nil when the lab is
// unassigned; the wire name is userId.
type Lab struct {
	ID       int    `json:"id"`
	Code     string `json:"code"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Capacity int    `json:"capacity"`
	Active   bool   `json:"active"`
	OwnerID  *int   `json:"userId"`
}

// Client calls the lab directory REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a client for the service at baseURL (without the
// /api/labs suffix). A nil httpClient falls back to http.DefaultClient.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/") + "/api/labs",
		httpClient: httpClient,
	}
}

// List returns every lab record.
func (c *Client) List(ctx context.Context) ([]Lab, error) {
	var list []Lab
	if err := directory.Do(ctx, c.httpClient, http.MethodGet, c.baseURL, nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// Create stores a new lab and returns the server-assigned record.
func (c *Client) Create(ctx context.Context, lab Lab) (Lab, error) {
	var created Lab
	if err := directory.Do(ctx, c.httpClient, http.MethodPost, c.baseURL, lab, &created); err != nil {
		return Lab{}, err
	}
	return created, nil
}

// Update saves changes to the lab with the given id and returns the
// server's representation. The backend answers either {message, lab}
// or the bare lab record; the nested form wins when present.
func (c *Client) Update(ctx context.Context, id int, lab Lab) (Lab, error) {
	raw, err := directory.DoRaw(ctx, c.httpClient, http.MethodPut, fmt.Sprintf("%s/%d", c.baseURL, id), lab)
	if err != nil {
		return Lab{}, err
	}
	return decodeUpdated(raw)
}

// Delete removes the lab with the given id.
func (c *Client) Delete(ctx context.Context, id int) error {
	return directory.Do(ctx, c.httpClient, http.MethodDelete, fmt.Sprintf("%s/%d", c.baseURL, id), nil, nil)
}

func decodeUpdated(raw []byte) (Lab, error) {
	var wrapper struct {
		Message string `json:"message"`
		Lab     *Lab   `json:"lab"`
	}
	if err := json.Unmarshal(raw, &wrapper); err == nil && wrapper.Lab != nil {
		return *wrapper.Lab, nil
	}
	var lab Lab
	if err := json.Unmarshal(raw, &lab); err != nil {
		return Lab{}, fmt.Errorf("decode updated lab: %w", err)
	}
	return lab, nil
}
