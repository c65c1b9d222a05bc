package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/learnly-labs/learnly/internal/api"
	"github.com/learnly-labs/learnly/internal/branding"
	"github.com/learnly-labs/learnly/internal/config"
	"github.com/learnly-labs/learnly/internal/session"
	"github.com/learnly-labs/learnly/internal/updater"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` is a command-line client for the Learnly learning platform:
browse and manage courses, enroll, upload course content, and check your
dashboard, all from the terminal.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()

		// Non-blocking banner from cached version check.
		u := updater.New(buildVersion)
		u.CheckAndPrintBanner(os.Stderr, config.Dir())
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// newClient builds the API client every command shares: configured base URL,
// bounded timeout, credentials persisted under the config directory.
func newClient() *api.Client {
	return api.New(config.APIBaseURL(), session.NewStore(),
		api.WithConfigDir(config.Dir()),
		api.WithTimeout(config.HTTPTimeout()))
}

// requireSession bootstraps the stored session and maps terminal auth
// failures to a sign-in prompt. This is the CLI's redirect-to-login.
func requireSession(cmd *cobra.Command, c *api.Client) (*session.User, error) {
	user, err := c.Bootstrap(cmd.Context())
	if err != nil {
		if errors.Is(err, api.ErrNoSession) {
			return nil, fmt.Errorf("not signed in. Run '%s login' first", branding.CLIName())
		}
		if errors.Is(err, api.ErrSessionExpired) {
			return nil, fmt.Errorf("session expired. Run '%s login' to sign in again", branding.CLIName())
		}
		return nil, err
	}
	return user, nil
}
