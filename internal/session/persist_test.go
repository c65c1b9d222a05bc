package session

import (
	"os"
	"runtime"
	"strings"
	"testing"
)

func TestLoadCredentials_Missing(t *testing.T) {
	tmp := t.TempDir()
	creds, err := LoadCredentials(tmp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if creds != nil {
		t.Error("expected nil credentials for missing file")
	}
}

func TestSaveAndLoadCredentials(t *testing.T) {
	tmp := t.TempDir()

	original := &Credentials{
		AccessToken:  "A1",
		RefreshToken: "R1",
		Username:     "ada",
		FullName:     "Ada Lovelace",
		Email:        "ada@example.com",
		Role:         "instructor",
	}
	if err := SaveCredentials(tmp, original); err != nil {
		t.Fatalf("SaveCredentials failed: %v", err)
	}

	loaded, err := LoadCredentials(tmp)
	if err != nil {
		t.Fatalf("LoadCredentials failed: %v", err)
	}
	if loaded.AccessToken != "A1" || loaded.RefreshToken != "R1" {
		t.Errorf("tokens = %q/%q, want A1/R1", loaded.AccessToken, loaded.RefreshToken)
	}
	if loaded.Username != "ada" || loaded.Role != "instructor" {
		t.Errorf("display fields not round-tripped: %+v", loaded)
	}
}

func TestSaveCredentials_OwnerOnlyPermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file modes are not meaningful on windows")
	}

	tmp := t.TempDir()
	if err := SaveCredentials(tmp, &Credentials{AccessToken: "A1"}); err != nil {
		t.Fatalf("SaveCredentials failed: %v", err)
	}

	info, err := os.Stat(CredentialsPath(tmp))
	if err != nil {
		t.Fatalf("stat credentials: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("credentials file mode = %o, want 0600", perm)
	}
}

func TestSaveCredentials_UsesFixedKeys(t *testing.T) {
	tmp := t.TempDir()
	if err := SaveCredentials(tmp, &Credentials{AccessToken: "A1", RefreshToken: "R1", Role: "student"}); err != nil {
		t.Fatalf("SaveCredentials failed: %v", err)
	}

	data, err := os.ReadFile(CredentialsPath(tmp))
	if err != nil {
		t.Fatalf("reading credentials: %v", err)
	}
	for _, key := range []string{`"accessToken"`, `"refreshToken"`, `"userRole"`} {
		if !strings.Contains(string(data), key) {
			t.Errorf("credentials file missing fixed key %s", key)
		}
	}
}

func TestClearCredentials(t *testing.T) {
	tmp := t.TempDir()
	if err := SaveCredentials(tmp, &Credentials{AccessToken: "A1"}); err != nil {
		t.Fatalf("SaveCredentials failed: %v", err)
	}

	if err := ClearCredentials(tmp); err != nil {
		t.Fatalf("ClearCredentials failed: %v", err)
	}
	if _, err := os.Stat(CredentialsPath(tmp)); !os.IsNotExist(err) {
		t.Error("credentials file should be gone")
	}

	// Clearing twice is fine.
	if err := ClearCredentials(tmp); err != nil {
		t.Errorf("second ClearCredentials failed: %v", err)
	}
}

func TestCredentialsFor(t *testing.T) {
	s := NewStore()
	s.SetTokens("A1", "R1")
	s.SetUser(&User{Username: "ada", FullName: "Ada Lovelace", Email: "ada@example.com", Role: RoleAdmin})

	creds := CredentialsFor(s)
	if creds.AccessToken != "A1" || creds.RefreshToken != "R1" {
		t.Errorf("tokens = %q/%q, want A1/R1", creds.AccessToken, creds.RefreshToken)
	}
	if creds.Role != "admin" || creds.Username != "ada" {
		t.Errorf("display fields = %+v", creds)
	}
}
