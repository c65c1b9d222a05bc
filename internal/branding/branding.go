// Package branding provides compile-time identity values for the CLI.
//
// Forkers edit branding.yaml at the package root, then rebuild.
// Go's //go:embed bakes the file into the binary.
package branding

import (
	_ "embed"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	GoModule    string `yaml:"go_module"`
	GitHubRepo  string `yaml:"github_repo"`
	APIBaseURL  string `yaml:"api_base_url"`
}

func load() {
	once.Do(func() {
		// Set hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:     "learnly",
			DisplayName: "Learnly",
			Description: "Command-line client for the Learnly learning platform",
			HomeDir:     ".learnly",
			EnvPrefix:   "LEARNLY",
			GoModule:    "github.com/learnly-labs/learnly",
			GitHubRepo:  "learnly-labs/learnly",
			APIBaseURL:  "http://localhost:8000",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "learnly").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name (e.g., "Learnly").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".learnly").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "LEARNLY").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// EnvVar returns a fully prefixed environment variable name,
// e.g. EnvVar("API_URL") -> "LEARNLY_API_URL".
func EnvVar(suffix string) string { load(); return defaults.EnvPrefix + "_" + suffix }

// GoModule returns the Go module path.
func GoModule() string { load(); return defaults.GoModule }

// GitHubRepo returns the "owner/repo" slug for release checks.
func GitHubRepo() string { load(); return defaults.GitHubRepo }

// APIBaseURL returns the default backend base URL, used when no
// configuration or environment override is present.
func APIBaseURL() string { load(); return defaults.APIBaseURL }
