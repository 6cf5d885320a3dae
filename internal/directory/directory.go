// Package directory provides the shared HTTP transport used by the
// user and lab directory clients. Clients are pure transport: no retry,
// no caching, no local validation.
package directory

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Error is a failed directory call. Message carries the server-provided
// message field when the error body included one.
type Error struct {
	StatusCode int
	Message    string
}

// Error renders the status and any server message.
func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("directory: status %d", e.StatusCode)
	}
	return fmt.Sprintf("directory: status %d: %s", e.StatusCode, e.Message)
}

// AsError unwraps a directory error when err carries one.
func AsError(err error) (*Error, bool) {
	var dirErr *Error
	if errors.As(err, &dirErr) {
		return dirErr, true
	}
	return nil, false
}

// ServerMessage returns the server-provided message for a failed call,
// or "" when none was present.
func ServerMessage(err error) string {
	dirErr, ok := AsError(err)
	if !ok {
		return ""
	}
	return strings.TrimSpace(dirErr.Message)
}

// Do performs one JSON round trip. A non-nil in is encoded as the
// request body; the response body is decoded into out when out is
// non-nil and the call succeeded. Error responses are decoded into
// *Error using the optional message field.
func Do(ctx context.Context, client *http.Client, method, url string, in any, out any) error {
	if client == nil {
		client = http.DefaultClient
	}

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, url, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeError(resp.StatusCode, raw)
	}
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// DoRaw performs one JSON round trip and returns the raw success body.
// Callers use it when the response shape varies (for example update
// endpoints that return either a wrapper or the bare record).
func DoRaw(ctx context.Context, client *http.Client, method, url string, in any) ([]byte, error) {
	var raw json.RawMessage
	if err := Do(ctx, client, method, url, in, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func decodeError(statusCode int, raw []byte) error {
	var payload struct {
		Message string `json:"message"`
	}
	// Error bodies without a message field (or without a JSON body at
	// all) still map to a status-only Error.
	_ = json.Unmarshal(raw, &payload)
	return &Error{StatusCode: statusCode, Message: strings.TrimSpace(payload.Message)}
}
