package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// do sends one API request with the current access token attached and applies
// the one-shot refresh-and-retry rule on 401. The decision is deliberately
// written as two explicit steps, not a retry loop, so the at-most-one-retry
// guarantee is structural.
//
// If no access token is present the request still goes out unauthenticated;
// some endpoints are public. A 401 with no refresh token on hand is terminal.
// Credential-exchange endpoints are exempt from the rule entirely: their
// 401s mean the submitted credentials were bad and pass through as APIError.
func (c *Client) do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	payload, err := encodeBody(body)
	if err != nil {
		return nil, err
	}

	resp, err := c.send(ctx, method, path, payload, c.session.AccessToken())
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusUnauthorized || credentialExchange(path) {
		return resp, nil
	}
	drain(resp)

	// Exactly one refresh attempt, then exactly one retry.
	refreshToken := c.session.RefreshToken()
	if refreshToken == "" {
		c.clearSession()
		return nil, ErrSessionExpired
	}

	access, err := c.refresh(ctx, refreshToken)
	if err != nil {
		if ctx.Err() != nil {
			// Abandoned mid-refresh, not rejected: the stored refresh
			// token may still be valid, so the session stays intact.
			return nil, ctx.Err()
		}
		c.clearSession()
		return nil, ErrSessionExpired
	}

	return c.send(ctx, method, path, payload, access)
}

// credentialExchange reports whether path itself trades credentials for
// tokens. A 401 from these endpoints means the submitted credentials were
// rejected, not that the access token expired; refreshing cannot help.
func credentialExchange(path string) bool {
	switch path {
	case "/users/login", "/users/register", "/users/refresh":
		return true
	}
	return false
}

// send issues a single request. The body is pre-encoded so a retry resends
// identical content.
func (c *Client) send(ctx context.Context, method, path string, payload []byte, token string) (*http.Response, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sending %s %s: %w", method, path, err)
	}
	return resp, nil
}

// refresh exchanges the refresh token for a new access token and stores the
// resulting pair. Both tokens are replaced together: when the server does not
// rotate the refresh token, the old one is kept alongside the new access
// token, never a half-updated pair.
func (c *Client) refresh(ctx context.Context, refreshToken string) (string, error) {
	payload, err := encodeBody(map[string]string{"refresh_token": refreshToken})
	if err != nil {
		return "", err
	}

	resp, err := c.send(ctx, http.MethodPost, "/users/refresh", payload, "")
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("refresh returned status %d", resp.StatusCode)
	}

	var result struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("parsing refresh response: %w", err)
	}
	if result.AccessToken == "" {
		return "", fmt.Errorf("refresh response carried no access token")
	}

	newRefresh := result.RefreshToken
	if newRefresh == "" {
		newRefresh = refreshToken
	}
	c.session.SetTokens(result.AccessToken, newRefresh)
	c.persistSession()

	return result.AccessToken, nil
}

// doJSON runs do and decodes a 2xx response into out. Non-2xx responses are
// turned into *APIError with the server's detail message when present.
func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	resp, err := c.do(ctx, method, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("parsing response body: %w", err)
	}
	return nil
}

func encodeBody(body any) ([]byte, error) {
	if body == nil {
		return nil, nil
	}
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling request body: %w", err)
	}
	return data, nil
}

// decodeError extracts the backend's {"detail": ...} message when available.
func decodeError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	data, err := io.ReadAll(resp.Body)
	if err == nil {
		var payload struct {
			Detail string `json:"detail"`
		}
		if json.Unmarshal(data, &payload) == nil {
			apiErr.Detail = payload.Detail
		}
	}
	return apiErr
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
}
