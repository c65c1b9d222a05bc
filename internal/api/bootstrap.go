package api

import (
	"context"

	"github.com/learnly-labs/learnly/internal/session"
)

// Bootstrap establishes whether a usable session exists before any protected
// work runs. It loads persisted credentials, seeds the store, and verifies
// them against the current-user endpoint through the refreshing request path.
//
// With no stored tokens it returns ErrNoSession without touching the network.
// A terminal auth failure returns ErrSessionExpired with the store and the
// credentials file already cleared. Context cancellation abandons the flow
// without mutating the session, so an aborted command never applies a stale
// response.
func (c *Client) Bootstrap(ctx context.Context) (*session.User, error) {
	creds, err := c.loadStoredCredentials()
	if err != nil {
		return nil, err
	}
	if creds == nil || (creds.AccessToken == "" && creds.RefreshToken == "") {
		return nil, ErrNoSession
	}

	c.session.SetTokens(creds.AccessToken, creds.RefreshToken)

	user, err := c.CurrentUser(ctx)
	if err != nil {
		if ctx.Err() != nil {
			// Abandoned, not failed: leave the session as loaded.
			return nil, ctx.Err()
		}
		return nil, err
	}

	c.session.SetUser(user)
	c.persistSession()
	return user, nil
}

func (c *Client) loadStoredCredentials() (*session.Credentials, error) {
	if c.configDir == "" {
		// In-memory client: treat the store itself as the persisted state.
		if c.session.AccessToken() == "" && c.session.RefreshToken() == "" {
			return nil, nil
		}
		return session.CredentialsFor(c.session), nil
	}
	return session.LoadCredentials(c.configDir)
}
