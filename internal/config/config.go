package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/learnly-labs/learnly/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"

	// KeyAPIBaseURL is the config key for the backend base URL.
	KeyAPIBaseURL = "api.base_url"
	// KeyHTTPTimeout is the config key for the API request timeout in seconds.
	KeyHTTPTimeout = "http.timeout_seconds"

	defaultTimeoutSeconds = 30
)

// Dir returns the path to the Learnly config directory (~/.learnly/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.learnly/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault(KeyAPIBaseURL, branding.APIBaseURL())
	viper.SetDefault(KeyHTTPTimeout, defaultTimeoutSeconds)

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// APIBaseURL returns the backend base URL, honoring LEARNLY_API_BASE_URL.
func APIBaseURL() string {
	if v := os.Getenv(branding.EnvVar("API_BASE_URL")); v != "" {
		return v
	}
	if v := viper.GetString(KeyAPIBaseURL); v != "" {
		return v
	}
	return branding.APIBaseURL()
}

// HTTPTimeout returns the API request timeout.
func HTTPTimeout() time.Duration {
	secs := viper.GetInt(KeyHTTPTimeout)
	if secs <= 0 {
		secs = defaultTimeoutSeconds
	}
	return time.Duration(secs) * time.Second
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
