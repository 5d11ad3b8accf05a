package cmd

import (
	"github.com/aviadshiber/amzads/internal/client"
	"github.com/aviadshiber/amzads/internal/output"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var reportColumns = []output.Column{
	{Header: "REPORT", Field: "reportId"},
	{Header: "RECORD TYPE", Field: "recordType"},
	{Header: "STATUS", Field: "status"},
	{Header: "DETAILS", Field: "statusDetails"},
	{Header: "SIZE", Field: "fileSize"},
}

func newReportsCmd() *cobra.Command {
	reportsCmd := &cobra.Command{
		Use:   "reports",
		Short: "Request and download performance reports",
		Long: `Reports are generated asynchronously: request one, poll its status, and
download it once the status is SUCCESS. "get" polls once and downloads when
the report is ready.`,
	}

	reportsCmd.AddCommand(newReportsRequestCmd())
	reportsCmd.AddCommand(newReportsStatusCmd())
	reportsCmd.AddCommand(newReportsGetCmd())
	return reportsCmd
}

func newReportsRequestCmd() *cobra.Command {
	var (
		data     string
		campType string
	)

	cmd := &cobra.Command{
		Use:   "request <recordType>",
		Short: "Request a report for a record type",
		Example: `  amzads reports request campaigns --data '{"reportDate":"20240131","metrics":"impressions,clicks,cost"}'
  amzads reports request keywords --type sp --data '{"reportDate":"20240131","segment":"query","metrics":"clicks"}'
  amzads reports request campaigns --type hsa --data @report.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := parseType(campType)
			if err != nil {
				return err
			}
			body, err := parseData(data)
			if err != nil {
				return err
			}
			svc, err := newService()
			if err != nil {
				return err
			}
			return printOutcome(cmd, svc.RequestReport(cmd.Context(), args[0], body, t), reportColumns)
		},
	}

	cmd.Flags().StringVar(&data, "data", "", "Report request body: JSON, @file or - for stdin (required)")
	addTypeFlag(cmd, &campType)
	return cmd
}

func newReportsStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <reportId>",
		Short: "Show the generation status of a report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			return printOutcome(cmd, svc.ReportStatus(cmd.Context(), args[0]), reportColumns)
		},
	}
}

func newReportsGetCmd() *cobra.Command {
	var format downloadFormat

	cmd := &cobra.Command{
		Use:   "get <reportId>",
		Short: "Download a report once it is ready",
		Long: `Poll the report once. If it is ready, follow the signed download link,
decompress the report and print its rows. Otherwise print the current status.`,
		Example: `  amzads reports get amzn1.clicksAPI.v1.p1.5F2C2F1A
  amzads reports get amzn1.clicksAPI.v1.p1.5F2C2F1A --jsonl > rows.jsonl
  amzads reports get amzn1.clicksAPI.v1.p1.5F2C2F1A --csv > rows.csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			return printJob(cmd, "report", svc.GetReport(cmd.Context(), args[0]), reportColumns, format)
		},
	}

	format.register(cmd)
	return cmd
}

// downloadFormat selects how downloaded report or snapshot rows are printed.
type downloadFormat struct {
	jsonl bool
	csv   bool
}

func (f *downloadFormat) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.jsonl, "jsonl", false, "Print one JSON record per line")
	cmd.Flags().BoolVar(&f.csv, "csv", false, "Print records as CSV")
	cmd.MarkFlagsMutuallyExclusive("jsonl", "csv")
}

// printJob prints the result of a poll-then-download call. A status document
// means the artifact was not downloaded.
func printJob(cmd *cobra.Command, kind string, o client.Outcome, statusCols []output.Column, f downloadFormat) error {
	if o.Success && o.Data != "" {
		st, err := client.ParseJobStatus(o)
		if err != nil {
			return err
		}
		if st.Status == client.StatusFailure {
			return errors.Errorf("%s %s failed: %s", kind, st.ID(), st.StatusDetails)
		}
		if err := printOutcome(cmd, o, statusCols); err != nil {
			return err
		}
		s := getIO()
		if !jsonOutputRequested(cmd) {
			s.Printf("%s\n", s.Muted(kind+" is not ready yet; try again later"))
		}
		return nil
	}

	v, err := outcomeValue(o)
	if err != nil {
		return err
	}

	s := getIO()
	switch {
	case f.jsonl:
		return output.PrintJSONL(s.Out, v)
	case f.csv:
		return output.PrintRecordsCSV(s.Out, output.Records(v))
	}

	handled, err := handleJSONOutput(cmd, v)
	if err != nil || handled {
		return err
	}
	return output.PrintJSON(s.Out, v)
}
