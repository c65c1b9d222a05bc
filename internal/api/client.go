package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/learnly-labs/learnly/internal/session"
)

const apiPrefix = "/api/v1"

// ErrNoSession indicates no stored credentials exist at all; the caller
// should prompt for a fresh sign-in without any network round trip.
var ErrNoSession = errors.New("no stored session")

// ErrSessionExpired indicates the access token was rejected and could not be
// refreshed. The session has already been cleared; the caller should prompt
// for a fresh sign-in.
var ErrSessionExpired = errors.New("session expired")

// APIError is a non-auth failure response from the backend.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("server returned %d", e.StatusCode)
}

// Client talks to the Learnly backend on behalf of a session.
type Client struct {
	baseURL    string
	httpClient *http.Client
	session    *session.Store
	configDir  string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client (useful for testing).
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.httpClient = c
	}
}

// WithTimeout bounds every request.
func WithTimeout(d time.Duration) Option {
	return func(cl *Client) {
		cl.httpClient.Timeout = d
	}
}

// WithConfigDir enables credential persistence under dir. Without it the
// client keeps the session in memory only.
func WithConfigDir(dir string) Option {
	return func(cl *Client) {
		cl.configDir = dir
	}
}

// New creates a Client for baseURL backed by the given session store.
func New(baseURL string, store *session.Store, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		session:    store,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Session returns the session store backing this client.
func (c *Client) Session() *session.Store {
	return c.session
}

// BaseURL returns the backend base URL the client was created with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) url(path string) string {
	return c.baseURL + apiPrefix + path
}

// persistSession writes the current session to disk when persistence is
// enabled. Save errors never fail the API call that triggered them.
func (c *Client) persistSession() {
	if c.configDir == "" {
		return
	}
	_ = session.SaveCredentials(c.configDir, session.CredentialsFor(c.session))
}

// clearSession resets the store and removes persisted credentials.
func (c *Client) clearSession() {
	c.session.Clear()
	if c.configDir != "" {
		_ = session.ClearCredentials(c.configDir)
	}
}
