// Package api is the HTTP client for the Learnly backend. Client attaches
// the session's bearer token to every request and transparently recovers from
// a single expired-token 401 by exchanging the refresh token and retrying the
// original request exactly once. Irrecoverable auth failures clear the
// session (memory and disk) and surface as ErrSessionExpired; callers map
// that to "sign in again". Non-auth failures pass through untouched.
package api
