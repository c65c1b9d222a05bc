package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const credentialsFileName = "credentials.json"

// File permissions for stored credentials.
const (
	dirPermSecure  os.FileMode = 0700
	filePermSecure os.FileMode = 0600
)

// Credentials is the on-disk session record: the token pair plus minimal
// user display fields so commands can greet the user before the first
// network round trip. The JSON keys are a stable contract; other Learnly
// clients read the same file.
type Credentials struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	Username     string `json:"username,omitempty"`
	FullName     string `json:"fullName,omitempty"`
	Email        string `json:"email,omitempty"`
	Role         string `json:"userRole,omitempty"`
}

// CredentialsPath returns the path of the credentials file inside configDir.
func CredentialsPath(configDir string) string {
	return filepath.Join(configDir, credentialsFileName)
}

// LoadCredentials reads stored credentials from configDir.
// Returns nil, nil if no credentials file exists (signed out).
func LoadCredentials(configDir string) (*Credentials, error) {
	data, err := os.ReadFile(CredentialsPath(configDir))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading credentials: %w", err)
	}

	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, fmt.Errorf("parsing credentials: %w", err)
	}
	return &creds, nil
}

// SaveCredentials writes the credentials file with owner-only permissions.
func SaveCredentials(configDir string, creds *Credentials) error {
	if err := os.MkdirAll(configDir, dirPermSecure); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling credentials: %w", err)
	}

	if err := os.WriteFile(CredentialsPath(configDir), data, filePermSecure); err != nil {
		return fmt.Errorf("writing credentials: %w", err)
	}
	return nil
}

// ClearCredentials removes the credentials file. Missing file is not an error.
func ClearCredentials(configDir string) error {
	err := os.Remove(CredentialsPath(configDir))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing credentials: %w", err)
	}
	return nil
}

// CredentialsFor snapshots the store into an on-disk record, carrying the
// user's display fields when a user is present.
func CredentialsFor(s *Store) *Credentials {
	creds := &Credentials{
		AccessToken:  s.AccessToken(),
		RefreshToken: s.RefreshToken(),
	}
	if u := s.User(); u != nil {
		creds.Username = u.Username
		creds.FullName = u.FullName
		creds.Email = u.Email
		creds.Role = string(u.Role)
	}
	return creds
}
