package cli

import (
	"fmt"
	"os"

	"github.com/learnly-labs/learnly/internal/branding"
	"github.com/learnly-labs/learnly/internal/config"
	"github.com/learnly-labs/learnly/internal/upload"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(uploadCmd)
}

var uploadCmd = &cobra.Command{
	Use:   "upload <kind> <course-id> <file>",
	Short: "Upload a course video, thumbnail, or material",
	Long: `Upload a file for a course you teach. Kind selects the endpoint and limits:
video (max 500MB), thumbnail (max 5MB), material (max 50MB). The server
validates type and size authoritatively; the limits shown are hints.

Uploads do not refresh an expired token. If the upload is rejected for
authorization, sign in again and retry.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := upload.ParseKind(args[0])
		if err != nil {
			return err
		}
		id, err := parseCourseID(args[1])
		if err != nil {
			return err
		}
		path := args[2]

		cfg, err := upload.ConfigFor(kind)
		if err != nil {
			return err
		}

		if info, err := os.Stat(path); err == nil && info.Size() > cfg.MaxSize {
			// Advisory only; the server is the authority.
			fmt.Fprintf(os.Stderr, "Warning: file exceeds the hint for %s uploads (%s)\n", kind, cfg.Hint)
		}

		c := newClient()
		if _, err := requireSession(cmd, c); err != nil {
			return err
		}

		u := upload.New(config.APIBaseURL(), c.Session())
		task := upload.NewTask(kind, id)

		lastPercent := -1
		result, err := u.Send(cmd.Context(), task, path, upload.Callbacks{
			OnProgress: func(pct float64) {
				if p := int(pct); p != lastPercent {
					fmt.Fprintf(os.Stderr, "\rUploading... %d%%", p)
					lastPercent = p
				}
			},
		})
		if lastPercent >= 0 {
			fmt.Fprintln(os.Stderr)
		}
		if err != nil {
			return fmt.Errorf("upload failed: %w (sign in again with '%s login' if your session expired)",
				err, branding.CLIName())
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Uploaded %s -> %s\n", result.Filename, result.URL)
		return nil
	},
}
