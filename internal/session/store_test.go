package session

import "testing"

func TestStore_AuthenticatedTracksUser(t *testing.T) {
	s := NewStore()

	if s.Authenticated() {
		t.Error("empty store should not be authenticated")
	}

	s.SetTokens("A1", "R1")
	if s.Authenticated() {
		t.Error("tokens without a user should not report authenticated")
	}

	s.SetUser(&User{ID: 1, Username: "ada"})
	if !s.Authenticated() {
		t.Error("store with a user should report authenticated")
	}

	s.SetUser(nil)
	if s.Authenticated() {
		t.Error("clearing the user should drop authenticated")
	}
}

func TestStore_SetTokens(t *testing.T) {
	s := NewStore()
	s.SetTokens("A1", "R1")

	if got := s.AccessToken(); got != "A1" {
		t.Errorf("AccessToken = %q, want %q", got, "A1")
	}
	if got := s.RefreshToken(); got != "R1" {
		t.Errorf("RefreshToken = %q, want %q", got, "R1")
	}
}

func TestStore_SetAccessTokenKeepsRefresh(t *testing.T) {
	s := NewStore()
	s.SetTokens("A1", "R1")
	s.SetAccessToken("A2")

	if got := s.AccessToken(); got != "A2" {
		t.Errorf("AccessToken = %q, want %q", got, "A2")
	}
	if got := s.RefreshToken(); got != "R1" {
		t.Errorf("RefreshToken = %q, want %q (must be untouched)", got, "R1")
	}
}

func TestStore_Clear(t *testing.T) {
	s := NewStore()
	s.SetTokens("A1", "R1")
	s.SetUser(&User{ID: 1, Username: "ada"})

	s.Clear()

	if s.AccessToken() != "" || s.RefreshToken() != "" {
		t.Error("Clear should drop both tokens")
	}
	if s.User() != nil {
		t.Error("Clear should drop the user")
	}
	if s.Authenticated() {
		t.Error("cleared store should not be authenticated")
	}
}
