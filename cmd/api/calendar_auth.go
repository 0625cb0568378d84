package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"personal-task-management/pkg/gcalendar"
)

// newCalendarAuthCommand authorizes Google Calendar once for desktop-app
// credentials and stores the token where the server looks for it.
func newCalendarAuthCommand() *cobra.Command {
	var (
		credentialsPath string
		tokenPath       string
	)

	cmd := &cobra.Command{
		Use:   "calendar-auth",
		Short: "Authorize Google Calendar access and write token.json",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(credentialsPath)
			if err != nil {
				return fmt.Errorf("failed to read credentials file %q: %w", credentialsPath, err)
			}

			auth, err := gcalendar.NewDesktopAuth(data)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Step 1: open this URL and sign in with your Google account:")
			fmt.Fprintln(out)
			fmt.Fprintln(out, auth.AuthCodeURL(uuid.NewString()))
			fmt.Fprintln(out)
			fmt.Fprint(out, "Step 2: paste the authorization code and press Enter: ")

			code, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if err != nil && strings.TrimSpace(code) == "" {
				return fmt.Errorf("failed to read authorization code: %w", err)
			}

			tok, err := auth.Exchange(cmd.Context(), strings.TrimSpace(code))
			if err != nil {
				return err
			}

			if err := gcalendar.SaveToken(tokenPath, tok); err != nil {
				return err
			}

			fmt.Fprintf(out, "\nToken saved to %s. Restart the server to enable the calendar mirror.\n", tokenPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&credentialsPath, "credentials", "google-credentials.json", "OAuth desktop-app credentials file")
	cmd.Flags().StringVar(&tokenPath, "token", gcalendar.TokenFile, "where to write the token")
	return cmd
}
