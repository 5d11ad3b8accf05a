package cmd

import (
	"context"
	"fmt"

	"github.com/aviadshiber/amzads/internal/client"
	"github.com/aviadshiber/amzads/internal/output"
	"github.com/spf13/cobra"
)

type (
	idOp   func(*client.Service, context.Context, string, client.CampaignType) client.Outcome
	bodyOp func(*client.Service, context.Context, any, client.CampaignType) client.Outcome
)

// resource describes one CRUD collection of the API and the columns used to
// render it. Nil operations are not exposed.
type resource struct {
	use     string
	short   string
	aliases []string
	idField string
	columns []output.Column

	get, getEx         idOp
	list, listEx       bodyOp
	create, createList bodyOp
	update             bodyOp
	archive            idOp
	// archiveVerb names the delete subcommand; "archive" when empty.
	archiveVerb string
}

// spOnly adapts a sponsored-products-only method to the typed operation
// shape. Any other campaign type fails locally.
func spOnly[T any](f func(*client.Service, context.Context, T) client.Outcome) func(*client.Service, context.Context, T, client.CampaignType) client.Outcome {
	return func(s *client.Service, ctx context.Context, v T, t client.CampaignType) client.Outcome {
		if t != client.SponsoredProducts {
			return client.Outcome{Code: 0, Response: fmt.Sprintf("%s campaigns do not support this operation; use --type sp", t)}
		}
		return f(s, ctx, v)
	}
}

var resources = []resource{
	{
		use:     "campaigns",
		short:   "Manage campaigns",
		idField: "campaignId",
		columns: []output.Column{
			{Header: "ID", Field: "campaignId"},
			{Header: "NAME", Field: "name"},
			{Header: "TYPE", Field: "campaignType"},
			{Header: "TARGETING", Field: "targetingType"},
			{Header: "STATE", Field: "state"},
			{Header: "BUDGET", Field: "dailyBudget"},
			{Header: "START", Field: "startDate"},
		},
		get:     (*client.Service).GetCampaign,
		getEx:   (*client.Service).GetCampaignEx,
		list:    (*client.Service).ListCampaigns,
		listEx:  (*client.Service).ListCampaignsEx,
		create:  (*client.Service).CreateCampaigns,
		update:  (*client.Service).UpdateCampaigns,
		archive: (*client.Service).ArchiveCampaign,
	},
	{
		use:     "adgroups",
		short:   "Manage ad groups",
		aliases: []string{"ad-groups"},
		idField: "adGroupId",
		columns: []output.Column{
			{Header: "ID", Field: "adGroupId"},
			{Header: "NAME", Field: "name"},
			{Header: "CAMPAIGN", Field: "campaignId"},
			{Header: "DEFAULT BID", Field: "defaultBid"},
			{Header: "STATE", Field: "state"},
		},
		get:     (*client.Service).GetAdGroup,
		getEx:   (*client.Service).GetAdGroupEx,
		list:    (*client.Service).ListAdGroups,
		listEx:  (*client.Service).ListAdGroupsEx,
		create:  (*client.Service).CreateAdGroups,
		update:  (*client.Service).UpdateAdGroups,
		archive: (*client.Service).ArchiveAdGroup,
	},
	{
		use:     "keywords",
		short:   "Manage biddable keywords",
		idField: "keywordId",
		columns: []output.Column{
			{Header: "ID", Field: "keywordId"},
			{Header: "KEYWORD", Field: "keywordText"},
			{Header: "MATCH", Field: "matchType"},
			{Header: "AD GROUP", Field: "adGroupId"},
			{Header: "CAMPAIGN", Field: "campaignId"},
			{Header: "BID", Field: "bid"},
			{Header: "STATE", Field: "state"},
		},
		get:     (*client.Service).GetBiddableKeyword,
		getEx:   spOnly((*client.Service).GetBiddableKeywordEx),
		list:    (*client.Service).ListBiddableKeywords,
		listEx:  spOnly((*client.Service).ListBiddableKeywordsEx),
		create:  (*client.Service).CreateBiddableKeywords,
		update:  (*client.Service).UpdateBiddableKeywords,
		archive: (*client.Service).ArchiveBiddableKeyword,
	},
	{
		use:     "negative-keywords",
		short:   "Manage ad group negative keywords",
		idField: "keywordId",
		columns: []output.Column{
			{Header: "ID", Field: "keywordId"},
			{Header: "KEYWORD", Field: "keywordText"},
			{Header: "MATCH", Field: "matchType"},
			{Header: "AD GROUP", Field: "adGroupId"},
			{Header: "CAMPAIGN", Field: "campaignId"},
			{Header: "STATE", Field: "state"},
		},
		get:     (*client.Service).GetNegativeKeyword,
		getEx:   spOnly((*client.Service).GetNegativeKeywordEx),
		list:    (*client.Service).ListNegativeKeywords,
		listEx:  spOnly((*client.Service).ListNegativeKeywordsEx),
		create:  (*client.Service).CreateNegativeKeywords,
		update:  (*client.Service).UpdateNegativeKeywords,
		archive: (*client.Service).ArchiveNegativeKeyword,
	},
	{
		use:     "campaign-negative-keywords",
		short:   "Manage campaign negative keywords (sponsored products)",
		idField: "keywordId",
		columns: []output.Column{
			{Header: "ID", Field: "keywordId"},
			{Header: "KEYWORD", Field: "keywordText"},
			{Header: "MATCH", Field: "matchType"},
			{Header: "CAMPAIGN", Field: "campaignId"},
			{Header: "STATE", Field: "state"},
		},
		get:         spOnly((*client.Service).GetCampaignNegativeKeyword),
		getEx:       spOnly((*client.Service).GetCampaignNegativeKeywordEx),
		list:        spOnly((*client.Service).ListCampaignNegativeKeywords),
		listEx:      spOnly((*client.Service).ListCampaignNegativeKeywordsEx),
		create:      spOnly((*client.Service).CreateCampaignNegativeKeywords),
		update:      spOnly((*client.Service).UpdateCampaignNegativeKeywords),
		archive:     spOnly((*client.Service).RemoveCampaignNegativeKeyword),
		archiveVerb: "remove",
	},
	{
		use:     "targets",
		short:   "Manage product and category targets",
		idField: "targetId",
		columns: []output.Column{
			{Header: "ID", Field: "targetId"},
			{Header: "AD GROUP", Field: "adGroupId"},
			{Header: "CAMPAIGN", Field: "campaignId"},
			{Header: "EXPRESSION TYPE", Field: "expressionType"},
			{Header: "EXPRESSION", Field: "expression"},
			{Header: "BID", Field: "bid"},
			{Header: "STATE", Field: "state"},
		},
		get:        (*client.Service).GetTarget,
		getEx:      spOnly((*client.Service).GetTargetEx),
		list:       spOnly((*client.Service).ListTargets),
		listEx:     spOnly((*client.Service).ListTargetsEx),
		create:     (*client.Service).CreateTargets,
		createList: (*client.Service).CreateTargetsList,
		update:     (*client.Service).UpdateTargets,
		archive:    (*client.Service).ArchiveTarget,
	},
	{
		use:     "negative-targets",
		short:   "Manage negative product targets",
		idField: "targetId",
		columns: []output.Column{
			{Header: "ID", Field: "targetId"},
			{Header: "AD GROUP", Field: "adGroupId"},
			{Header: "CAMPAIGN", Field: "campaignId"},
			{Header: "EXPRESSION TYPE", Field: "expressionType"},
			{Header: "EXPRESSION", Field: "expression"},
			{Header: "STATE", Field: "state"},
		},
		get:        (*client.Service).GetNegativeTarget,
		getEx:      spOnly((*client.Service).GetNegativeTargetEx),
		list:       spOnly((*client.Service).ListNegativeTargets),
		listEx:     spOnly((*client.Service).ListNegativeTargetsEx),
		create:     (*client.Service).CreateNegativeTargets,
		createList: (*client.Service).CreateNegativeTargetsList,
		update:     (*client.Service).UpdateNegativeTargets,
		archive:    (*client.Service).ArchiveNegativeTarget,
	},
	{
		use:     "product-ads",
		short:   "Manage product ads",
		idField: "adId",
		columns: []output.Column{
			{Header: "ID", Field: "adId"},
			{Header: "AD GROUP", Field: "adGroupId"},
			{Header: "CAMPAIGN", Field: "campaignId"},
			{Header: "ASIN", Field: "asin"},
			{Header: "SKU", Field: "sku"},
			{Header: "STATE", Field: "state"},
		},
		get:     spOnly((*client.Service).GetProductAd),
		getEx:   spOnly((*client.Service).GetProductAdEx),
		list:    (*client.Service).ListProductAds,
		listEx:  (*client.Service).ListProductAdsEx,
		create:  spOnly((*client.Service).CreateProductAds),
		update:  spOnly((*client.Service).UpdateProductAds),
		archive: spOnly((*client.Service).ArchiveProductAd),
	},
}

// exColumns adds the serving status reported by extended reads.
func (r resource) exColumns() []output.Column {
	cols := append([]output.Column(nil), r.columns...)
	return append(cols,
		output.Column{Header: "SERVING", Field: "servingStatus"},
		output.Column{Header: "CREATED", Field: "creationDate"},
	)
}

// writeColumns renders the per-item results of create, update and archive.
func (r resource) writeColumns() []output.Column {
	return []output.Column{
		{Header: "ID", Field: r.idField},
		{Header: "CODE", Field: "code"},
		{Header: "DETAILS", Field: "details"},
	}
}

func newResourceCmd(r resource) *cobra.Command {
	resCmd := &cobra.Command{
		Use:     r.use,
		Short:   r.short,
		Aliases: r.aliases,
	}

	resCmd.AddCommand(newResourceListCmd(r))
	resCmd.AddCommand(newResourceGetCmd(r))
	resCmd.AddCommand(newResourceWriteCmd(r, "create", "Create "+r.use+" from a JSON array", r.create))
	if r.createList != nil {
		resCmd.AddCommand(newResourceWriteCmd(r, "create-list", "Create "+r.use+" through the list endpoint", r.createList))
	}
	resCmd.AddCommand(newResourceWriteCmd(r, "update", "Update "+r.use+" from a JSON array", r.update))
	resCmd.AddCommand(newResourceArchiveCmd(r))
	return resCmd
}

func newResourceListCmd(r resource) *cobra.Command {
	var (
		ex       bool
		filters  []string
		campType string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List " + r.use,
		Example: fmt.Sprintf(`  amzads %[1]s list
  amzads %[1]s list --filter stateFilter=enabled,paused --filter count=100
  amzads %[1]s list --ex --json`, r.use),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := parseType(campType)
			if err != nil {
				return err
			}
			params, err := parseFilters(filters)
			if err != nil {
				return err
			}
			svc, err := newService()
			if err != nil {
				return err
			}

			if ex {
				return printOutcome(cmd, r.listEx(svc, cmd.Context(), params, t), r.exColumns())
			}
			return printOutcome(cmd, r.list(svc, cmd.Context(), params, t), r.columns)
		},
	}

	cmd.Flags().BoolVar(&ex, "ex", false, "Use the extended endpoint")
	cmd.Flags().StringArrayVar(&filters, "filter", nil, "Query filter as key=value (repeatable)")
	addTypeFlag(cmd, &campType)
	return cmd
}

func newResourceGetCmd(r resource) *cobra.Command {
	var (
		ex       bool
		campType string
	)

	cmd := &cobra.Command{
		Use:   "get <" + r.idField + ">",
		Short: "Get one of " + r.use + " by ID",
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

			if ex {
				return printOutcome(cmd, r.getEx(svc, cmd.Context(), args[0], t), r.exColumns())
			}
			return printOutcome(cmd, r.get(svc, cmd.Context(), args[0], t), r.columns)
		},
	}

	cmd.Flags().BoolVar(&ex, "ex", false, "Use the extended endpoint")
	addTypeFlag(cmd, &campType)
	return cmd
}

func newResourceWriteCmd(r resource, use, short string, op bodyOp) *cobra.Command {
	var (
		data     string
		campType string
	)

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Example: fmt.Sprintf(`  amzads %[1]s %[2]s --data @%[1]s.json
  cat %[1]s.json | amzads %[1]s %[2]s --data -`, r.use, use),
		Args: cobra.NoArgs,
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
			return printOutcome(cmd, op(svc, cmd.Context(), body, t), r.writeColumns())
		},
	}

	cmd.Flags().StringVar(&data, "data", "", "JSON body, @file or - for stdin (required)")
	addTypeFlag(cmd, &campType)
	return cmd
}

func newResourceArchiveCmd(r resource) *cobra.Command {
	verb := r.archiveVerb
	if verb == "" {
		verb = "archive"
	}
	var campType string

	cmd := &cobra.Command{
		Use:   verb + " <" + r.idField + ">",
		Short: "Set one of " + r.use + " to archived",
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
			return printOutcome(cmd, r.archive(svc, cmd.Context(), args[0], t), r.writeColumns())
		},
	}

	addTypeFlag(cmd, &campType)
	return cmd
}
