package cmd

import (
	"strings"

	"github.com/aviadshiber/amzads/internal/output"
	"github.com/spf13/cobra"
)

var profileColumns = []output.Column{
	{Header: "ID", Field: "profileId"},
	{Header: "COUNTRY", Field: "countryCode"},
	{Header: "CURRENCY", Field: "currencyCode"},
	{Header: "TIMEZONE", Field: "timezone"},
	{Header: "BUDGET", Field: "dailyBudget"},
	{Header: "TYPE", Field: "accountInfo.type"},
	{Header: "NAME", Field: "accountInfo.name"},
	{Header: "MARKETPLACE", Field: "accountInfo.marketplaceStringId"},
}

var profileUpdateColumns = []output.Column{
	{Header: "ID", Field: "profileId"},
	{Header: "CODE", Field: "code"},
	{Header: "DETAILS", Field: "details"},
}

func newProfilesCmd() *cobra.Command {
	profilesCmd := &cobra.Command{
		Use:   "profiles",
		Short: "List and manage advertising profiles",
		Long: `List and manage the advertising profiles the credentials can access.
Profile calls are not scoped, so no --profile-id is needed.`,
	}

	profilesCmd.AddCommand(newProfilesListCmd())
	profilesCmd.AddCommand(newProfilesGetCmd())
	profilesCmd.AddCommand(newProfilesUpdateCmd())
	profilesCmd.AddCommand(newProfilesRegisterCmd())
	return profilesCmd
}

func newProfilesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List advertising profiles",
		Example: `  amzads profiles list
  amzads profiles list --json --jq '.[].profileId'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			return printOutcome(cmd, svc.ListProfiles(cmd.Context()), profileColumns)
		},
	}
}

func newProfilesGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <profileId>",
		Short: "Get one advertising profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			return printOutcome(cmd, svc.GetProfile(cmd.Context(), args[0]), profileColumns)
		},
	}
}

func newProfilesUpdateCmd() *cobra.Command {
	var data string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update profile daily budgets",
		Example: `  amzads profiles update --data '[{"profileId":1234,"dailyBudget":50}]'
  amzads profiles update --data @profiles.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := parseData(data)
			if err != nil {
				return err
			}
			svc, err := newService()
			if err != nil {
				return err
			}
			return printOutcome(cmd, svc.UpdateProfiles(cmd.Context(), body), profileUpdateColumns)
		},
	}

	cmd.Flags().StringVar(&data, "data", "", "JSON body, @file or - for stdin (required)")
	return cmd
}

func newProfilesRegisterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "register <countryCode>",
		Short: "Register a sandbox profile for a marketplace",
		Example: `  amzads profiles register US --sandbox`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			return printOutcome(cmd, svc.RegisterProfile(cmd.Context(), strings.ToUpper(args[0])), nil)
		},
	}
}
