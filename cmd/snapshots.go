package cmd

import (
	"github.com/aviadshiber/amzads/internal/output"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var snapshotColumns = []output.Column{
	{Header: "SNAPSHOT", Field: "snapshotId"},
	{Header: "RECORD TYPE", Field: "recordType"},
	{Header: "STATUS", Field: "status"},
	{Header: "DETAILS", Field: "statusDetails"},
	{Header: "SIZE", Field: "fileSize"},
}

func newSnapshotsCmd() *cobra.Command {
	snapshotsCmd := &cobra.Command{
		Use:   "snapshots",
		Short: "Request and download entity snapshots",
		Long: `A snapshot is a bulk export of every entity of one record type (campaigns,
adGroups, keywords, negativeKeywords, campaignNegativeKeywords, productAds,
targets, negativeTargets). Snapshots follow the same request, poll and
download cycle as reports.`,
	}

	snapshotsCmd.AddCommand(newSnapshotsRequestCmd())
	snapshotsCmd.AddCommand(newSnapshotsStatusCmd())
	snapshotsCmd.AddCommand(newSnapshotsGetCmd())
	return snapshotsCmd
}

func newSnapshotsRequestCmd() *cobra.Command {
	var (
		data     string
		campType string
	)

	cmd := &cobra.Command{
		Use:   "request <recordType>",
		Short: "Request a snapshot for a record type",
		Example: `  amzads snapshots request campaigns
  amzads snapshots request keywords --data '{"stateFilter":"enabled,paused"}'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := parseType(campType)
			if err != nil {
				return err
			}

			var body map[string]any
			if data != "" {
				v, err := parseData(data)
				if err != nil {
					return err
				}
				m, ok := v.(map[string]any)
				if !ok {
					return errors.New("`--data` must be a JSON object")
				}
				body = m
			}

			svc, err := newService()
			if err != nil {
				return err
			}
			return printOutcome(cmd, svc.RequestSnapshot(cmd.Context(), args[0], body, t), snapshotColumns)
		},
	}

	cmd.Flags().StringVar(&data, "data", "", "Snapshot request body: JSON object, @file or - for stdin")
	addTypeFlag(cmd, &campType)
	return cmd
}

func newSnapshotsStatusCmd() *cobra.Command {
	var campType string

	cmd := &cobra.Command{
		Use:   "status <snapshotId>",
		Short: "Show the generation status of a snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := parseType(campType)
			if err != nil {
				return err
			}
			svc, err := newService()
			if err != nil {
				return err
			}
			return printOutcome(cmd, svc.SnapshotStatus(cmd.Context(), args[0], t), snapshotColumns)
		},
	}

	addTypeFlag(cmd, &campType)
	return cmd
}

func newSnapshotsGetCmd() *cobra.Command {
	var format downloadFormat

	cmd := &cobra.Command{
		Use:   "get <snapshotId>",
		Short: "Download a snapshot once it is ready",
		Example: `  amzads snapshots get amzn1.clicksAPI.v1.m1.5F2C2F1B --jsonl`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			return printJob(cmd, "snapshot", svc.GetSnapshot(cmd.Context(), args[0]), snapshotColumns, format)
		},
	}

	format.register(cmd)
	return cmd
}
