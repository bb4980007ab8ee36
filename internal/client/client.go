// Package client implements a small HTTP client for the calendard API,
// speaking the same JSON envelope and token cookie as the web UI.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"calendard/internal/common"
)

// User mirrors the API's user transfer shape.
type User struct {
	ID       string   `json:"_id"`
	Username string   `json:"username"`
	Token    string   `json:"token"`
	Friends  []Friend `json:"friends"`
}

type Friend struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
}

// Event mirrors the API's event transfer shape. Start and End are wire
// timestamps.
type Event struct {
	ID          string `json:"_id"`
	OwnerID     string `json:"ownerId"`
	Name        string `json:"name"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Description string `json:"description"`
}

// EventPatch carries a partial update; nil fields are omitted from the
// request body and stay untouched on the server.
type EventPatch struct {
	ID          string  `json:"_id"`
	Name        *string `json:"name,omitempty"`
	Start       *string `json:"start,omitempty"`
	End         *string `json:"end,omitempty"`
	Description *string `json:"description,omitempty"`
}

type envelope struct {
	Type   string          `json:"type"`
	Reason string          `json:"reason"`
	Token  string          `json:"token"`
	User   *User           `json:"user"`
	Event  *Event          `json:"event"`
	Events json.RawMessage `json:"events"`
}

type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// New returns a Client for the API at baseURL. token may be empty for the
// signup and login calls.
func New(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) Signup(ctx context.Context, username, password string) (string, error) {
	env, err := c.do(ctx, http.MethodPost, "/api/signup", map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return "", err
	}
	return env.Token, nil
}

func (c *Client) Login(ctx context.Context, username, password string) (*User, error) {
	env, err := c.do(ctx, http.MethodPost, "/api/login", map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return nil, err
	}
	return env.User, nil
}

func (c *Client) Self(ctx context.Context) (*User, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/users/self", nil)
	if err != nil {
		return nil, err
	}
	return env.User, nil
}

func (c *Client) ListEvents(ctx context.Context) ([]Event, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/events", nil)
	if err != nil {
		return nil, err
	}
	return decodeEvents(env)
}

func (c *Client) CreateEvent(ctx context.Context, name, start, end, description string) (*Event, error) {
	env, err := c.do(ctx, http.MethodPost, "/api/events", map[string]string{
		"name":        name,
		"start":       start,
		"end":         end,
		"description": description,
	})
	if err != nil {
		return nil, err
	}
	return env.Event, nil
}

func (c *Client) UpdateEvent(ctx context.Context, patch EventPatch) (*Event, error) {
	env, err := c.do(ctx, http.MethodPatch, "/api/events", patch)
	if err != nil {
		return nil, err
	}
	return env.Event, nil
}

// DeleteEvent removes an event and returns the caller's remaining events.
func (c *Client) DeleteEvent(ctx context.Context, id string) ([]Event, error) {
	env, err := c.do(ctx, http.MethodDelete, "/api/events", map[string]string{"_id": id})
	if err != nil {
		return nil, err
	}
	return decodeEvents(env)
}

// ExportICS fetches the caller's calendar as an iCalendar document.
func (c *Client) ExportICS(ctx context.Context) ([]byte, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/events/ics", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("export failed: %s", resp.Status)
	}

	return io.ReadAll(resp.Body)
}

func (c *Client) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.AddCookie(&http.Cookie{Name: common.TokenCookieName, Value: c.token})
	}
	return req, nil
}

func (c *Client) do(ctx context.Context, method, path string, body any) (*envelope, error) {
	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	env := &envelope{}
	if err := json.NewDecoder(resp.Body).Decode(env); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	if env.Type != "success" {
		return nil, fmt.Errorf("%s %s: %s", method, path, env.Reason)
	}

	return env, nil
}

func decodeEvents(env *envelope) ([]Event, error) {
	if len(env.Events) == 0 {
		return nil, errors.New("response carried no events")
	}
	var result []Event
	if err := json.Unmarshal(env.Events, &result); err != nil {
		return nil, err
	}
	return result, nil
}
