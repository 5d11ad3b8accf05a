package cmd

import (
	"github.com/aviadshiber/amzads/internal/output"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var bidColumns = []output.Column{
	{Header: "AD GROUP", Field: "adGroupId"},
	{Header: "KEYWORD", Field: "keywordId"},
	{Header: "SUGGESTED", Field: "suggestedBid.suggested"},
	{Header: "LOW", Field: "suggestedBid.rangeStart"},
	{Header: "HIGH", Field: "suggestedBid.rangeEnd"},
}

var keywordBidColumns = []output.Column{
	{Header: "KEYWORD", Field: "keyword"},
	{Header: "MATCH", Field: "matchType"},
	{Header: "CODE", Field: "code"},
	{Header: "SUGGESTED", Field: "suggestedBid.suggested"},
	{Header: "LOW", Field: "suggestedBid.rangeStart"},
	{Header: "HIGH", Field: "suggestedBid.rangeEnd"},
}

func newRecommendationsCmd() *cobra.Command {
	recCmd := &cobra.Command{
		Use:     "recommendations",
		Aliases: []string{"recs"},
		Short:   "Get keyword and bid recommendations",
	}

	recCmd.AddCommand(newRecommendationsKeywordsCmd())
	recCmd.AddCommand(newRecommendationsAdGroupBidsCmd())
	recCmd.AddCommand(newRecommendationsKeywordBidsCmd())
	return recCmd
}

func newRecommendationsKeywordsCmd() *cobra.Command {
	var (
		data     string
		campType string
	)

	cmd := &cobra.Command{
		Use:   "keywords",
		Short: "Suggest keywords for ASINs or an ad group",
		Example: `  amzads recommendations keywords --type sb --data '{"asins":["B000000001"],"maxNumSuggestions":50}'`,
		Args:    cobra.NoArgs,
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
			return printOutcome(cmd, svc.CreateKeywordRecommendations(cmd.Context(), body, t), nil)
		},
	}

	cmd.Flags().StringVar(&data, "data", "", "Request body: JSON, @file or - for stdin (required)")
	addTypeFlag(cmd, &campType)
	return cmd
}

func newRecommendationsAdGroupBidsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "adgroup-bids <adGroupId>",
		Short: "Suggest a default bid for an ad group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			return printOutcome(cmd, svc.GetAdGroupBidRecommendations(cmd.Context(), args[0]), bidColumns)
		},
	}
}

func newRecommendationsKeywordBidsCmd() *cobra.Command {
	var data string

	cmd := &cobra.Command{
		Use:   "keyword-bids [keywordId]",
		Short: "Suggest bids for one keyword or a batch of keywords",
		Example: `  amzads recommendations keyword-bids 123456789
  amzads recommendations keyword-bids --data '{"adGroupId":1,"keywords":[{"keyword":"shoes","matchType":"exact"}]}'`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if (len(args) == 1) == (data != "") {
				return errors.New("pass either a keyword ID or `--data`")
			}
			svc, err := newService()
			if err != nil {
				return err
			}

			if len(args) == 1 {
				return printOutcome(cmd, svc.GetKeywordBidRecommendations(cmd.Context(), args[0]), bidColumns)
			}

			body, err := parseData(data)
			if err != nil {
				return err
			}
			o := svc.CreateKeywordBidRecommendations(cmd.Context(), body)
			v, err := outcomeValue(o)
			if err != nil {
				return err
			}
			handled, err := handleJSONOutput(cmd, v)
			if err != nil || handled {
				return err
			}

			s := getIO()
			m, _ := v.(map[string]any)
			recs := output.Records(m["recommendations"])
			if len(recs) == 0 {
				return output.PrintJSON(s.Out, v)
			}
			return output.PrintRecords(s.Out, recs, keywordBidColumns, s.IsTerminal())
		},
	}

	cmd.Flags().StringVar(&data, "data", "", "Batch request body: JSON, @file or - for stdin")
	return cmd
}
