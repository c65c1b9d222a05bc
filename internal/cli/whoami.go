package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/cobra"
)

var whoamiJSON bool

func init() {
	whoamiCmd.Flags().BoolVar(&whoamiJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(whoamiCmd)
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in user",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := newClient()
		user, err := requireSession(cmd, c)
		if err != nil {
			return err
		}

		if whoamiJSON {
			out, err := json.MarshalIndent(user, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling user: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s <%s>\n", user.FullName, user.Email)
		fmt.Fprintf(cmd.OutOrStdout(), "Username: %s\n", user.Username)
		fmt.Fprintf(cmd.OutOrStdout(), "Role:     %s\n", user.Role)
		if !user.IsVerified {
			fmt.Fprintln(cmd.OutOrStdout(), "Status:   unverified")
		}
		if exp, ok := tokenExpiry(c.Session().AccessToken()); ok {
			fmt.Fprintf(cmd.OutOrStdout(), "Token:    expires %s\n", exp.Local().Format(time.RFC1123))
		}
		return nil
	},
}

// tokenExpiry peeks at the access token's exp claim for display. Unverified
// on purpose: the client holds no signing key, and the session store stays
// opaque to token format.
func tokenExpiry(token string) (time.Time, bool) {
	if token == "" {
		return time.Time{}, false
	}
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
