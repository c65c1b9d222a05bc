package cli

import (
	"encoding/json"
	"fmt"

	"github.com/learnly-labs/learnly/internal/api"
	"github.com/spf13/cobra"
)

var (
	profileFullName  string
	profilePhone     string
	profileBio       string
	profileAvatarURL string
)

func init() {
	profileUpdateCmd.Flags().StringVar(&profileFullName, "full-name", "", "Display name")
	profileUpdateCmd.Flags().StringVar(&profilePhone, "phone", "", "Phone number")
	profileUpdateCmd.Flags().StringVar(&profileBio, "bio", "", "Short biography")
	profileUpdateCmd.Flags().StringVar(&profileAvatarURL, "avatar-url", "", "Avatar image URL")

	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileUpdateCmd)
	rootCmd.AddCommand(profileCmd)
}

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "View and update your profile",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show your profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := newClient()
		user, err := requireSession(cmd, c)
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(user, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling profile: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

var profileUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update profile fields",
	Long:  `Update the given profile fields. Omitted flags leave fields unchanged.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if profileFullName == "" && profilePhone == "" && profileBio == "" && profileAvatarURL == "" {
			return fmt.Errorf("nothing to update: pass at least one of --full-name, --phone, --bio, --avatar-url")
		}

		c := newClient()
		if _, err := requireSession(cmd, c); err != nil {
			return err
		}

		user, err := c.UpdateProfile(cmd.Context(), api.ProfileUpdate{
			FullName:  profileFullName,
			Phone:     profilePhone,
			Bio:       profileBio,
			AvatarURL: profileAvatarURL,
		})
		if err != nil {
			return fmt.Errorf("updating profile: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Profile updated for %s\n", user.Username)
		return nil
	},
}
