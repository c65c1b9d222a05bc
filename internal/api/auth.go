package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/learnly-labs/learnly/internal/session"
)

// TokenResponse is the credential-exchange payload returned by login and
// refresh.
type TokenResponse struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	TokenType    string        `json:"token_type"`
	User         *session.User `json:"user,omitempty"`
}

// RegisterInput is the payload for creating a new account.
type RegisterInput struct {
	Email     string       `json:"email"`
	Username  string       `json:"username"`
	Password  string       `json:"password"`
	FirstName string       `json:"first_name"`
	LastName  string       `json:"last_name"`
	Role      session.Role `json:"role,omitempty"`
}

// ProfileUpdate carries the mutable profile fields. Empty fields are omitted
// and left unchanged by the server.
type ProfileUpdate struct {
	FullName  string `json:"full_name,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Bio       string `json:"bio,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// Login exchanges credentials for a token pair, populates the session store,
// and persists it.
func (c *Client) Login(ctx context.Context, email, password string) (*session.User, error) {
	var result TokenResponse
	body := map[string]string{"email": email, "password": password}
	if err := c.doJSON(ctx, http.MethodPost, "/users/login", body, &result); err != nil {
		return nil, err
	}
	if result.AccessToken == "" {
		return nil, fmt.Errorf("login response carried no access token")
	}

	c.session.SetTokens(result.AccessToken, result.RefreshToken)

	user := result.User
	if user == nil {
		// Older backends return tokens only; fetch the profile separately.
		fetched, err := c.CurrentUser(ctx)
		if err != nil {
			return nil, err
		}
		user = fetched
	}
	c.session.SetUser(user)
	c.persistSession()
	return user, nil
}

// Register creates a new account. The server requires a follow-up login; no
// session state changes here.
func (c *Client) Register(ctx context.Context, in RegisterInput) (*session.User, error) {
	var user session.User
	if err := c.doJSON(ctx, http.MethodPost, "/users/register", in, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// CurrentUser fetches the signed-in user's profile.
func (c *Client) CurrentUser(ctx context.Context) (*session.User, error) {
	var user session.User
	if err := c.doJSON(ctx, http.MethodGet, "/users/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile updates the signed-in user's profile and replaces the stored
// user wholesale with the server's response.
func (c *Client) UpdateProfile(ctx context.Context, in ProfileUpdate) (*session.User, error) {
	var user session.User
	if err := c.doJSON(ctx, http.MethodPut, "/users/me", in, &user); err != nil {
		return nil, err
	}
	c.session.SetUser(&user)
	c.persistSession()
	return &user, nil
}

// Logout clears the session in memory and on disk. Purely client-side; the
// backend holds no session state to invalidate.
func (c *Client) Logout() {
	c.clearSession()
}
