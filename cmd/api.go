package cmd

import (
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newAPICmd() *cobra.Command {
	var (
		data    string
		filters []string
	)

	cmd := &cobra.Command{
		Use:   "api <method> <path>",
		Short: "Send a raw request to any API resource",
		Long: `Send one authorized request to a resource path relative to the API root.
Paths under "sb/" go to the v3 surface; all others get the v2 prefix. GET
requests take --filter query parameters; other methods take a --data body.`,
		Example: `  amzads api GET sp/campaigns --filter stateFilter=enabled
  amzads api GET sb/campaigns
  amzads api PUT sp/keywords --data '[{"keywordId":1,"bid":0.5}]'`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			method := strings.ToUpper(args[0])
			path := strings.TrimPrefix(args[1], "/")

			var params any
			switch method {
			case http.MethodGet:
				if data != "" {
					return errors.New("GET requests take `--filter`, not `--data`")
				}
				p, err := parseFilters(filters)
				if err != nil {
					return err
				}
				params = p
			case http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch:
				if len(filters) > 0 {
					return errors.Errorf("%s requests take `--data`, not `--filter`", method)
				}
				if data != "" {
					body, err := parseData(data)
					if err != nil {
						return err
					}
					params = body
				}
			default:
				return errors.Errorf("unsupported method %q", args[0])
			}

			svc, err := newService()
			if err != nil {
				return err
			}
			return printOutcome(cmd, svc.Call(cmd.Context(), path, params, method), nil)
		},
	}

	cmd.Flags().StringVar(&data, "data", "", "JSON body, @file or - for stdin")
	cmd.Flags().StringArrayVar(&filters, "filter", nil, "Query parameter as key=value (repeatable)")
	return cmd
}
