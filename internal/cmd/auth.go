package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"jig/internal/credential"
	"jig/internal/jira"
	"jig/internal/term"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store the Jira API token in the system keyring",
	Long: `Store the Jira API token in the system keyring and verify it.

Create a token at https://id.atlassian.com/manage-profile/security/api-tokens.
The instance URL and account email come from the config file (or JIRA_URL and
JIRA_EMAIL).`,
	Args: cobra.NoArgs,
	RunE: runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the stored Jira API token",
	Args:  cobra.NoArgs,
	RunE:  runLogout,
}

func runLogin(cmd *cobra.Command, _ []string) error {
	if cfg.Jira.URL == "" || cfg.Jira.Email == "" {
		return fmt.Errorf("set jira.url and jira.email in %s first", cfg.Path())
	}

	token, err := term.Prompt{}.Secret("Jira API token")
	if err != nil {
		return err
	}
	if token == "" {
		return fmt.Errorf("empty token")
	}

	client := jira.NewClient(jira.Config{
		BaseURL:  cfg.Jira.URL,
		Email:    cfg.Jira.Email,
		APIToken: token,
	})
	me, err := client.Myself(cmd.Context())
	if err != nil {
		return fmt.Errorf("token verification failed: %w", err)
	}

	if err := credential.SetToken(token); err != nil {
		return err
	}

	fmt.Printf("logged in as %s\n", me.DisplayName)
	return nil
}

func runLogout(_ *cobra.Command, _ []string) error {
	if err := credential.DeleteToken(); err != nil {
		return err
	}
	fmt.Println("token removed")
	return nil
}
