package session

import "sync"

// Role is a user's role on the platform.
type Role string

// Roles recognized by the backend.
const (
	RoleStudent    Role = "student"
	RoleInstructor Role = "instructor"
	RoleAdmin      Role = "admin"
)

// User is the signed-in user's profile as returned by the backend.
type User struct {
	ID         int    `json:"id"`
	Email      string `json:"email"`
	Username   string `json:"username"`
	FullName   string `json:"full_name"`
	Role       Role   `json:"role"`
	IsActive   bool   `json:"is_active"`
	IsVerified bool   `json:"is_verified"`
	AvatarURL  string `json:"avatar_url,omitempty"`
	Bio        string `json:"bio,omitempty"`
	Phone      string `json:"phone,omitempty"`
	CreatedAt  string `json:"created_at,omitempty"`
}

// Store is the session's single source of truth. It performs no validation on
// token contents; tokens are opaque strings to the store. The mutex covers
// upload tasks reading the access token while a command flow mutates it.
type Store struct {
	mu           sync.RWMutex
	accessToken  string
	refreshToken string
	user         *User
}

// NewStore returns an empty, unauthenticated store.
func NewStore() *Store {
	return &Store{}
}

// SetUser replaces the current user. Passing nil marks the session
// unauthenticated.
func (s *Store) SetUser(u *User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = u
}

// SetTokens stores both tokens together. Tokens are always replaced as a
// pair; partial updates go through SetAccessToken.
func (s *Store) SetTokens(access, refresh string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = access
	s.refreshToken = refresh
}

// SetAccessToken replaces only the access token, leaving the refresh token
// untouched. Used after a silent refresh that did not rotate the refresh token.
func (s *Store) SetAccessToken(access string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = access
}

// Clear resets all session state.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = ""
	s.refreshToken = ""
	s.user = nil
}

// AccessToken returns the current access token, or "" when absent.
func (s *Store) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

// RefreshToken returns the current refresh token, or "" when absent.
func (s *Store) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshToken
}

// User returns the current user, or nil when signed out.
func (s *Store) User() *User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Authenticated reports whether a user is present. The flag is derived
// rather than stored so it can never disagree with the user field.
func (s *Store) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}
