package cli

import (
	"bufio"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/learnly-labs/learnly/internal/api"
	"github.com/spf13/cobra"
)

var (
	loginEmail    string
	loginPassword string
)

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Account password (prompted when omitted)")
	rootCmd.AddCommand(loginCmd)
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and store session tokens",
	Long:  `Exchange email and password for an access/refresh token pair stored under ~/.learnly/.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		email := loginEmail
		password := loginPassword

		reader := bufio.NewReader(cmd.InOrStdin())
		if email == "" {
			fmt.Fprint(cmd.OutOrStdout(), "Email: ")
			line, err := reader.ReadString('\n')
			if err != nil {
				return fmt.Errorf("reading email: %w", err)
			}
			email = strings.TrimSpace(line)
		}
		if password == "" {
			fmt.Fprint(cmd.OutOrStdout(), "Password: ")
			line, err := reader.ReadString('\n')
			if err != nil {
				return fmt.Errorf("reading password: %w", err)
			}
			password = strings.TrimSpace(line)
		}

		c := newClient()
		user, err := c.Login(cmd.Context(), email, password)
		var apiErr *api.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized {
			return fmt.Errorf("login failed: invalid credentials")
		}
		if err != nil {
			return fmt.Errorf("login failed: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s (%s)\n", user.FullName, user.Role)
		return nil
	},
}
