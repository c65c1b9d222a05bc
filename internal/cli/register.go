package cli

import (
	"fmt"

	"github.com/learnly-labs/learnly/internal/api"
	"github.com/learnly-labs/learnly/internal/branding"
	"github.com/learnly-labs/learnly/internal/session"
	"github.com/spf13/cobra"
)

var (
	registerEmail     string
	registerUsername  string
	registerPassword  string
	registerFirstName string
	registerLastName  string
	registerRole      string
)

func init() {
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "Account email")
	registerCmd.Flags().StringVar(&registerUsername, "username", "", "Username (3-100 characters)")
	registerCmd.Flags().StringVar(&registerPassword, "password", "", "Password (at least 8 characters)")
	registerCmd.Flags().StringVar(&registerFirstName, "first-name", "", "First name")
	registerCmd.Flags().StringVar(&registerLastName, "last-name", "", "Last name")
	registerCmd.Flags().StringVar(&registerRole, "role", string(session.RoleStudent), "Account role (student or instructor)")
	for _, f := range []string{"email", "username", "password", "first-name", "last-name"} {
		_ = registerCmd.MarkFlagRequired(f)
	}
	rootCmd.AddCommand(registerCmd)
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new account",
	Long:  `Create a new Learnly account. Sign in afterwards with 'learnly login'.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := newClient()
		user, err := c.Register(cmd.Context(), api.RegisterInput{
			Email:     registerEmail,
			Username:  registerUsername,
			Password:  registerPassword,
			FirstName: registerFirstName,
			LastName:  registerLastName,
			Role:      session.Role(registerRole),
		})
		if err != nil {
			return fmt.Errorf("registration failed: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Account created for %s. Run '%s login' to sign in.\n",
			user.Email, branding.CLIName())
		return nil
	},
}
