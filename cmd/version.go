package cmd

import (
	"github.com/aviadshiber/amzads/internal/client"
	"github.com/aviadshiber/amzads/internal/output"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of amzads",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := getIO()

			if jsonOutputRequested(cmd) {
				data := map[string]any{
					"version":     versionInfo.version,
					"commit":      versionInfo.commit,
					"date":        versionInfo.date,
					"api_version": client.APIVersion,
					"user_agent":  client.UserAgent,
				}
				return output.PrintJSON(s.Out, data)
			}

			s.Printf("amzads version %s (commit: %s, built: %s)\n",
				versionInfo.version, versionInfo.commit, versionInfo.date)
			s.Printf("%s\n", s.Muted(client.UserAgent))
			return nil
		},
	}
}
