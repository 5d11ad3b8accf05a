package cmd

import (
	"encoding/json"
	iolib "io"
	"os"
	"strings"

	"github.com/aviadshiber/amzads/internal/client"
	"github.com/aviadshiber/amzads/internal/config"
	"github.com/aviadshiber/amzads/internal/output"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// newAPI creates the Amazon Advertising API client from the current
// configuration state (viper config + env vars + flags).
var newAPI = func() (client.API, error) {
	region := viper.GetString("region")
	if region == "" {
		region = client.RegionNA
	}

	c, err := client.New(client.Options{
		ClientID:     viper.GetString(config.KeyClientID),
		ClientSecret: viper.GetString(config.KeyClientSecret),
		Region:       region,
		ProfileID:    viper.GetString(config.KeyProfileID),
		AccessToken:  viper.GetString(config.KeyAccessToken),
		RefreshToken: viper.GetString(config.KeyRefreshToken),
		Sandbox:      viper.GetBool(config.KeySandbox),
		Logger:       getLogger(),
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// openConfig opens the persistent configuration file.
var openConfig = config.New

// newService wraps the configured client with the resource methods.
func newService() (*client.Service, error) {
	api, err := newAPI()
	if err != nil {
		return nil, err
	}
	return client.NewService(api), nil
}

// outcomeValue turns an outcome into a decoded JSON value, or into an error
// for failed calls. Numbers are kept as json.Number so that 64-bit IDs
// survive the round trip.
func outcomeValue(o client.Outcome) (any, error) {
	if err := o.Err(); err != nil {
		return nil, err
	}
	if o.Data == "" {
		return o.Response, nil
	}

	dec := json.NewDecoder(strings.NewReader(o.Data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return o.Data, nil
	}
	return v, nil
}

// handleJSONOutput processes a parsed JSON value through --jq or --template
// filters, or prints it as pretty JSON. It returns true if JSON output was
// handled (i.e., --json was requested), false otherwise.
func handleJSONOutput(cmd *cobra.Command, data any) (bool, error) {
	if !jsonOutputRequested(cmd) {
		return false, nil
	}

	s := getIO()

	fields, _ := cmd.Flags().GetString("json")
	data = output.SelectFields(data, splitCSV(fields))

	jqExpr, _ := cmd.Flags().GetString("jq")
	tmpl, _ := cmd.Flags().GetString("template")

	switch {
	case jqExpr != "":
		return true, output.ApplyJQ(s.Out, data, jqExpr)
	case tmpl != "":
		return true, output.ApplyTemplate(s.Out, data, tmpl)
	default:
		return true, output.PrintJSON(s.Out, data)
	}
}

// printOutcome renders the result of an API call: JSON when requested, a
// table when columns are given, pretty JSON otherwise.
func printOutcome(cmd *cobra.Command, o client.Outcome, cols []output.Column) error {
	v, err := outcomeValue(o)
	if err != nil {
		return err
	}

	handled, err := handleJSONOutput(cmd, v)
	if err != nil || handled {
		return err
	}

	s := getIO()
	if len(cols) == 0 {
		return output.PrintJSON(s.Out, v)
	}

	records := output.Records(v)
	if len(records) == 0 {
		s.Printf("No results found.\n")
		return nil
	}

	rows := output.Rows(records, cols)
	if s.IsTerminal() {
		colorStates(rows, cols)
	}
	return output.PrintTable(s.Out, output.Headers(cols), rows, s.IsTerminal())
}

// colorStates styles the state, status and result code columns in place.
func colorStates(rows [][]string, cols []output.Column) {
	s := getIO()
	for i, c := range cols {
		switch c.Field {
		case "state", "status", "code":
			for _, row := range rows {
				row[i] = s.State(row[i])
			}
		}
	}
}

// parseData reads a --data value: inline JSON, @path to read a file, or - for
// stdin.
func parseData(raw string) (any, error) {
	var (
		b   []byte
		err error
	)
	switch {
	case raw == "":
		return nil, errors.New("`--data` is required")
	case raw == "-":
		b, err = iolib.ReadAll(getIO().In)
	case strings.HasPrefix(raw, "@"):
		b, err = os.ReadFile(raw[1:])
	default:
		b = []byte(raw)
	}
	if err != nil {
		return nil, errors.Wrap(err, "reading --data")
	}

	dec := json.NewDecoder(strings.NewReader(string(b)))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, errors.Wrap(err, "parsing --data as JSON")
	}
	return v, nil
}

// parseFilters turns repeated key=value flags into query parameters. It
// returns nil when no filter is given.
func parseFilters(pairs []string) (any, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	params := make(map[string]string, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok || strings.TrimSpace(k) == "" {
			return nil, errors.Errorf("invalid filter %q; expected key=value", p)
		}
		params[strings.TrimSpace(k)] = v
	}
	return params, nil
}

// parseType validates the --type flag.
func parseType(s string) (client.CampaignType, error) {
	t, ok := client.ParseCampaignType(s)
	if !ok {
		return "", errors.Errorf("invalid campaign type %q; must be one of: sp, sb, hsa, sd", s)
	}
	return t, nil
}

// addTypeFlag registers the --type flag shared by typed resource commands.
func addTypeFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVarP(target, "type", "t", string(client.SponsoredProducts), "Campaign type: sp, sb, hsa, sd")
}

// splitCSV splits a comma-separated string into trimmed, non-empty parts.
func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
