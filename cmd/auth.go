package cmd

import (
	"github.com/aviadshiber/amzads/internal/output"
	"github.com/spf13/cobra"
)

func newAuthCmd() *cobra.Command {
	authCmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage API credentials",
	}
	authCmd.AddCommand(newAuthRefreshCmd())
	return authCmd
}

func newAuthRefreshCmd() *cobra.Command {
	var noSave bool

	cmd := &cobra.Command{
		Use:   "refresh",
		Short: "Exchange the refresh token for a new access token",
		Long: `Exchange the configured refresh token for a new access token at the
Login with Amazon token endpoint of the configured region. The new token is
saved to the config file unless --no-save is given.`,
		Example: `  amzads auth refresh
  amzads auth refresh --no-save --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAuthRefresh(cmd, noSave)
		},
	}

	cmd.Flags().BoolVar(&noSave, "no-save", false, "Do not persist the new token")
	return cmd
}

func runAuthRefresh(cmd *cobra.Command, noSave bool) error {
	api, err := newAPI()
	if err != nil {
		return err
	}

	if err := api.Refresh(cmd.Context()).Err(); err != nil {
		return err
	}

	savedTo := ""
	if !noSave {
		cfg, err := openConfig()
		if err != nil {
			return err
		}
		if err := cfg.SetTokens(api.AccessToken(), api.RefreshToken()); err != nil {
			return err
		}
		savedTo = cfg.FilePath()
	}

	s := getIO()
	if jsonOutputRequested(cmd) {
		return output.PrintJSON(s.Out, map[string]any{
			"refreshed": true,
			"saved_to":  savedTo,
		})
	}

	s.Printf("%s Access token refreshed\n", s.Success("✓"))
	if savedTo != "" {
		s.Printf("%s %s\n", s.Muted("Saved to"), savedTo)
	}
	return nil
}
