package homebridge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/velat/homebridge-mcp/pkg/config"
)

const defaultHTTPTimeout = 30 * time.Second

const maxResponseBodyBytes int64 = 4 * 1024 * 1024

// Client is an authenticated HTTP client for the Homebridge UI API.
// It acquires a bearer token lazily on first use, caches it for the lifetime
// of the process, and recovers from mid-session token expiry by refreshing
// (or re-logging-in) and retrying the failed request exactly once.
type Client struct {
	baseURL    string
	username   string
	password   string
	httpClient *http.Client

	mu    sync.Mutex
	token string
}

// NewClient creates a client for the Homebridge UI at cfg.BaseURL.
// Trailing slashes on the base URL are stripped. No network call is made
// until the first request.
func NewClient(cfg config.Config) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("homebridge base URL is required")
	}
	if cfg.Username == "" {
		return nil, fmt.Errorf("homebridge username is required")
	}
	if cfg.Password == "" {
		return nil, fmt.Errorf("homebridge password is required")
	}

	return &Client{
		baseURL:  baseURL,
		username: cfg.Username,
		password: cfg.Password,
		httpClient: &http.Client{
			Timeout: defaultHTTPTimeout,
		},
	}, nil
}

// BaseURL returns the normalized base URL the client sends requests to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) currentToken() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

func (c *Client) setToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// Authenticate performs a full login and unconditionally replaces the cached
// session token.
func (c *Client) Authenticate(ctx context.Context) error {
	payload, err := json.Marshal(map[string]string{
		"username": c.username,
		"password": c.password,
	})
	if err != nil {
		return fmt.Errorf("marshal login payload: %w", err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/auth/login", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build login request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("homebridge login request failed: %w", err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(io.LimitReader(response.Body, maxResponseBodyBytes))
	if err != nil {
		return fmt.Errorf("read login response body: %w", err)
	}

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		return &AuthError{
			StatusCode: response.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	token, err := extractToken(body)
	if err != nil {
		return fmt.Errorf("parse login response: %w", err)
	}

	c.setToken(token)
	log.Debug().Str("url", c.baseURL).Msg("Authenticated with Homebridge")
	return nil
}

// refreshToken exchanges the current token for a fresh one. Any failure is
// returned to the caller, which falls back to a full re-login; it is never
// surfaced past Request.
func (c *Client) refreshToken(ctx context.Context) error {
	token := c.currentToken()
	if token == "" {
		return ErrNoToken
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/auth/refresh", nil)
	if err != nil {
		return fmt.Errorf("build refresh request: %w", err)
	}
	request.Header.Set("Authorization", "Bearer "+token)

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("homebridge refresh request failed: %w", err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(io.LimitReader(response.Body, maxResponseBodyBytes))
	if err != nil {
		return fmt.Errorf("read refresh response body: %w", err)
	}

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("homebridge refresh failed: status=%d body=%q", response.StatusCode, strings.TrimSpace(string(body)))
	}

	newToken, err := extractToken(body)
	if err != nil {
		return fmt.Errorf("parse refresh response: %w", err)
	}

	c.setToken(newToken)
	log.Debug().Msg("Refreshed Homebridge session token")
	return nil
}

// ensureAuthenticated logs in if no session token is held yet.
func (c *Client) ensureAuthenticated(ctx context.Context) error {
	if c.currentToken() != "" {
		return nil
	}
	return c.Authenticate(ctx)
}

// Request issues one logical API call. The body, if non-nil, is JSON-encoded.
// On a 401 the client refreshes the token (falling back to a full re-login)
// and resends the identical request exactly once; a second failure of any
// kind propagates to the caller. Successful JSON responses are decoded into
// a generic value; any other content type is returned as a raw string.
func (c *Client) Request(ctx context.Context, method, path string, body any) (any, error) {
	if err := c.ensureAuthenticated(ctx); err != nil {
		return nil, err
	}

	var payload []byte
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body for %s %s: %w", method, path, err)
		}
		payload = encoded
	}

	response, err := c.send(ctx, method, path, payload)
	if err != nil {
		return nil, err
	}

	if response.StatusCode == http.StatusUnauthorized {
		drainAndClose(response.Body)
		if err := c.refreshToken(ctx); err != nil {
			log.Debug().Err(err).Msg("Token refresh failed, re-authenticating")
			if err := c.Authenticate(ctx); err != nil {
				return nil, err
			}
		}
		response, err = c.send(ctx, method, path, payload)
		if err != nil {
			return nil, err
		}
	}
	defer response.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(response.Body, maxResponseBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read response body for %s %s: %w", method, path, err)
	}

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		message := strings.TrimSpace(string(raw))
		if message == "" {
			message = http.StatusText(response.StatusCode)
		}
		return nil, &APIError{
			StatusCode: response.StatusCode,
			Method:     method,
			Path:       path,
			Body:       message,
		}
	}

	if strings.Contains(response.Header.Get("Content-Type"), "application/json") {
		if len(bytes.TrimSpace(raw)) == 0 {
			return nil, nil
		}
		var decoded any
		if err := json.Unmarshal(raw, &decoded); err != nil {
			return nil, fmt.Errorf("decode JSON response for %s %s: %w", method, path, err)
		}
		return decoded, nil
	}

	return string(raw), nil
}

func (c *Client) send(ctx context.Context, method, path string, payload []byte) (*http.Response, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	request, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build request %s %s: %w", method, path, err)
	}

	request.Header.Set("Accept", "application/json")
	request.Header.Set("Authorization", "Bearer "+c.currentToken())
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("homebridge request %s %s failed: %w", method, path, err)
	}
	return response, nil
}

func extractToken(body []byte) (string, error) {
	var parsed struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", err
	}
	if parsed.AccessToken == "" {
		return "", fmt.Errorf("response did not contain an access_token")
	}
	return parsed.AccessToken, nil
}

func drainAndClose(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, io.LimitReader(body, maxResponseBodyBytes))
	_ = body.Close()
}
