package cmd

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/aviadshiber/amzads/internal/client"
	"github.com/aviadshiber/amzads/internal/client/mocks"
	"github.com/aviadshiber/amzads/internal/config"
	"github.com/aviadshiber/amzads/internal/iostreams"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// runCmd executes the CLI against api with in-memory streams.
func runCmd(t *testing.T, api client.API, args ...string) (string, error) {
	t.Helper()

	s, _, out, _ := iostreams.Test()
	prevIO, prevAPI := io, newAPI
	io = s
	newAPI = func() (client.API, error) { return api, nil }
	t.Cleanup(func() {
		io, newAPI, logger = prevIO, prevAPI, nil
	})

	root := newRootCmd()
	root.SetArgs(args)
	err := root.ExecuteContext(t.Context())
	return out.String(), err
}

func ok(data string) client.Outcome {
	return client.Outcome{Success: true, Code: http.StatusOK, APIVersion: client.APIVersion, Data: data}
}

func TestCampaignsList_TSV(t *testing.T) {
	api := mocks.NewMockAPI(gomock.NewController(t))
	api.EXPECT().
		Call(gomock.Any(), "sp/campaigns", map[string]string{"stateFilter": "enabled"}, http.MethodGet).
		Return(ok(`[{"campaignId":123456789012345,"name":"Summer","state":"enabled","dailyBudget":10.5}]`))

	out, err := runCmd(t, api, "campaigns", "list", "--filter", "stateFilter=enabled")
	require.NoError(t, err)
	assert.Equal(t,
		"ID\tNAME\tTYPE\tTARGETING\tSTATE\tBUDGET\tSTART\n"+
			"123456789012345\tSummer\t\t\tenabled\t10.5\t\n", out)
}

func TestCampaignsList_JQ(t *testing.T) {
	api := mocks.NewMockAPI(gomock.NewController(t))
	api.EXPECT().
		Call(gomock.Any(), "sb/campaigns", nil, http.MethodGet).
		Return(ok(`[{"campaignId":123456789012345,"name":"Brand"}]`))

	out, err := runCmd(t, api, "campaigns", "list", "--type", "sb", "--json", "--jq", ".[0].campaignId")
	require.NoError(t, err)
	assert.Equal(t, "123456789012345\n", out)
}

func TestCampaignsList_Empty(t *testing.T) {
	api := mocks.NewMockAPI(gomock.NewController(t))
	api.EXPECT().Call(gomock.Any(), "sp/campaigns/extended", nil, http.MethodGet).Return(ok(`[]`))

	out, err := runCmd(t, api, "campaigns", "list", "--ex")
	require.NoError(t, err)
	assert.Equal(t, "No results found.\n", out)
}

func TestCampaignsCreate(t *testing.T) {
	api := mocks.NewMockAPI(gomock.NewController(t))
	api.EXPECT().
		Call(gomock.Any(), "sp/campaigns", []any{map[string]any{"name": "x"}}, http.MethodPost).
		Return(client.Outcome{Success: true, Code: http.StatusMultiStatus, Data: `[{"code":"SUCCESS","campaignId":7}]`})

	out, err := runCmd(t, api, "campaigns", "create", "--data", `[{"name":"x"}]`)
	require.NoError(t, err)
	assert.Equal(t, "ID\tCODE\tDETAILS\n7\tSUCCESS\t\n", out)
}

func TestCampaignNegativeKeywordsRemove(t *testing.T) {
	api := mocks.NewMockAPI(gomock.NewController(t))
	api.EXPECT().
		Call(gomock.Any(), "sp/campaignNegativeKeywords/9", nil, http.MethodDelete).
		Return(ok(`{"keywordId":9,"code":"SUCCESS"}`))

	out, err := runCmd(t, api, "campaign-negative-keywords", "remove", "9")
	require.NoError(t, err)
	assert.Equal(t, "ID\tCODE\tDETAILS\n9\tSUCCESS\t\n", out)
}

func TestSponsoredProductsOnlyOperation(t *testing.T) {
	api := mocks.NewMockAPI(gomock.NewController(t))

	_, err := runCmd(t, api, "keywords", "get", "5", "--ex", "--type", "sb")
	require.Error(t, err)
	assert.Equal(t, "sb campaigns do not support this operation; use --type sp", err.Error())
}

func TestInvalidCampaignType(t *testing.T) {
	api := mocks.NewMockAPI(gomock.NewController(t))

	_, err := runCmd(t, api, "adgroups", "list", "--type", "video")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid campaign type "video"`)
}

func TestAPIErrorSurfaced(t *testing.T) {
	api := mocks.NewMockAPI(gomock.NewController(t))
	api.EXPECT().
		Call(gomock.Any(), "sp/adGroups/3", nil, http.MethodGet).
		Return(client.Outcome{Code: http.StatusUnauthorized, Response: `Unauthorized: {"code":"UNAUTHORIZED"}`})

	_, err := runCmd(t, api, "adgroups", "get", "3")
	require.Error(t, err)
	assert.Equal(t, `API error (HTTP 401): Unauthorized: {"code":"UNAUTHORIZED"}`, err.Error())
}

func TestReportsGet_NotReady(t *testing.T) {
	api := mocks.NewMockAPI(gomock.NewController(t))
	api.EXPECT().
		Call(gomock.Any(), "reports/r1", nil, http.MethodGet).
		Return(ok(`{"reportId":"r1","status":"IN_PROGRESS","statusDetails":"Report is being generated"}`))

	out, err := runCmd(t, api, "reports", "get", "r1")
	require.NoError(t, err)
	assert.Contains(t, out, "r1\t\tIN_PROGRESS\tReport is being generated\t\n")
	assert.Contains(t, out, "report is not ready yet")
}

func TestReportsGet_Failed(t *testing.T) {
	api := mocks.NewMockAPI(gomock.NewController(t))
	api.EXPECT().
		Call(gomock.Any(), "reports/r1", nil, http.MethodGet).
		Return(ok(`{"reportId":"r1","status":"FAILURE","statusDetails":"boom"}`))

	_, err := runCmd(t, api, "reports", "get", "r1")
	require.Error(t, err)
	assert.Equal(t, "report r1 failed: boom", err.Error())
}

func TestReportsGet_Download(t *testing.T) {
	rows := []any{
		map[string]any{"campaignId": float64(1), "clicks": float64(3)},
		map[string]any{"campaignId": float64(2), "impressions": float64(10)},
	}
	location := "https://advertising-api.amazon.com/v2/reports/r1/download"

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "jsonl", args: []string{"--jsonl"}, want: "{\"campaignId\":1,\"clicks\":3}\n{\"campaignId\":2,\"impressions\":10}\n"},
		{name: "csv", args: []string{"--csv"}, want: "campaignId,clicks,impressions\n1,3,\n2,,10\n"},
		{name: "jq", args: []string{"--json", "--jq", "length"}, want: "2\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := mocks.NewMockAPI(gomock.NewController(t))
			gomock.InOrder(
				api.EXPECT().
					Call(gomock.Any(), "reports/r1", nil, http.MethodGet).
					Return(ok(`{"reportId":"r1","status":"SUCCESS","location":"` + location + `"}`)),
				api.EXPECT().
					Download(gomock.Any(), location).
					Return(client.Outcome{Success: true, Code: http.StatusOK, Response: rows}),
			)

			out, err := runCmd(t, api, append([]string{"reports", "get", "r1"}, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestReportsRequest(t *testing.T) {
	api := mocks.NewMockAPI(gomock.NewController(t))
	api.EXPECT().
		Call(gomock.Any(), "hsa/keywords/report", map[string]any{"reportDate": "20240131", "metrics": "clicks"}, http.MethodPost).
		Return(client.Outcome{Success: true, Code: http.StatusAccepted, Data: `{"reportId":"r9","recordType":"keyword","status":"IN_PROGRESS"}`})

	out, err := runCmd(t, api, "reports", "request", "keywords", "--type", "hsa",
		"--data", `{"reportDate":"20240131","metrics":"clicks"}`)
	require.NoError(t, err)
	assert.Equal(t, "REPORT\tRECORD TYPE\tSTATUS\tDETAILS\tSIZE\nr9\tkeyword\tIN_PROGRESS\t\t\n", out)
}

func TestSnapshotsRequest_DefaultsCampaignType(t *testing.T) {
	api := mocks.NewMockAPI(gomock.NewController(t))
	api.EXPECT().
		Call(gomock.Any(), "sp/keywords/snapshot", map[string]any{"campaignType": "sponsoredProducts"}, http.MethodPost).
		Return(ok(`{"snapshotId":"s1","recordType":"keyword","status":"IN_PROGRESS"}`))

	out, err := runCmd(t, api, "snapshots", "request", "keywords", "--json=snapshotId")
	require.NoError(t, err)
	assert.JSONEq(t, `{"snapshotId":"s1"}`, out)
}

func TestSnapshotsRequest_RejectsArray(t *testing.T) {
	api := mocks.NewMockAPI(gomock.NewController(t))

	_, err := runCmd(t, api, "snapshots", "request", "keywords", "--data", `[1]`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be a JSON object")
}

func TestRecommendationsKeywordBids(t *testing.T) {
	t.Run("needs exactly one input", func(t *testing.T) {
		api := mocks.NewMockAPI(gomock.NewController(t))
		_, err := runCmd(t, api, "recommendations", "keyword-bids")
		require.Error(t, err)
	})

	t.Run("batch", func(t *testing.T) {
		api := mocks.NewMockAPI(gomock.NewController(t))
		api.EXPECT().
			Call(gomock.Any(), "sp/keywords/bidRecommendations", gomock.Any(), http.MethodPost).
			Return(ok(`{"adGroupId":1,"recommendations":[{"keyword":"shoes","matchType":"exact","code":"SUCCESS","suggestedBid":{"suggested":0.75,"rangeStart":0.5,"rangeEnd":1.2}}]}`))

		out, err := runCmd(t, api, "recs", "keyword-bids", "--data",
			`{"adGroupId":1,"keywords":[{"keyword":"shoes","matchType":"exact"}]}`)
		require.NoError(t, err)
		assert.Equal(t, "KEYWORD\tMATCH\tCODE\tSUGGESTED\tLOW\tHIGH\nshoes\texact\tSUCCESS\t0.75\t0.5\t1.2\n", out)
	})
}

func TestProfilesList(t *testing.T) {
	api := mocks.NewMockAPI(gomock.NewController(t))
	api.EXPECT().
		Call(gomock.Any(), "profiles", nil, http.MethodGet).
		Return(ok(`[{"profileId":3000000000000001,"countryCode":"US","currencyCode":"USD","timezone":"America/Los_Angeles","accountInfo":{"type":"seller","marketplaceStringId":"ATVPDKIKX0DER"}}]`))

	out, err := runCmd(t, api, "profiles", "list")
	require.NoError(t, err)
	assert.Equal(t,
		"ID\tCOUNTRY\tCURRENCY\tTIMEZONE\tBUDGET\tTYPE\tNAME\tMARKETPLACE\n"+
			"3000000000000001\tUS\tUSD\tAmerica/Los_Angeles\t\tseller\t\tATVPDKIKX0DER\n", out)
}

func TestAPICommand(t *testing.T) {
	api := mocks.NewMockAPI(gomock.NewController(t))
	api.EXPECT().
		Call(gomock.Any(), "sb/campaigns", map[string]string{"count": "5"}, http.MethodGet).
		Return(client.Outcome{Success: true, Code: http.StatusOK, APIVersion: client.SBAPIVersion, Data: `[]`})

	out, err := runCmd(t, api, "api", "get", "/sb/campaigns", "--filter", "count=5")
	require.NoError(t, err)
	assert.Equal(t, "[]\n", out)

	_, err = runCmd(t, api, "api", "POST", "sp/keywords", "--filter", "a=b")
	require.Error(t, err)

	_, err = runCmd(t, api, "api", "TRACE", "sp/keywords")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported method")
}

func TestAuthRefresh_PersistsTokens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	prev := openConfig
	openConfig = func() (*config.Config, error) { return config.NewAt(path) }
	t.Cleanup(func() { openConfig = prev })

	api := mocks.NewMockAPI(gomock.NewController(t))
	api.EXPECT().Refresh(gomock.Any()).Return(client.Outcome{Success: true, Code: http.StatusOK, Response: "Atza|new"})
	api.EXPECT().AccessToken().Return("Atza|new")
	api.EXPECT().RefreshToken().Return("Atzr|same")

	out, err := runCmd(t, api, "auth", "refresh")
	require.NoError(t, err)
	assert.Contains(t, out, "Access token refreshed")

	cfg, err := config.NewAt(path)
	require.NoError(t, err)
	assert.Equal(t, "Atza|new", cfg.Get(config.KeyAccessToken))
	assert.Equal(t, "Atzr|same", cfg.Get(config.KeyRefreshToken))
}

func TestAuthRefresh_Failure(t *testing.T) {
	api := mocks.NewMockAPI(gomock.NewController(t))
	api.EXPECT().Refresh(gomock.Any()).Return(client.Outcome{Code: http.StatusBadRequest, Response: `Bad Request: {"error":"invalid_grant"}`})

	_, err := runCmd(t, api, "auth", "refresh", "--no-save")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid_grant")
}

func TestConfigSet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	prev := openConfig
	openConfig = func() (*config.Config, error) { return config.NewAt(path) }
	t.Cleanup(func() { openConfig = prev })

	out, err := runCmd(t, nil, "config", "set", "region", "eu")
	require.NoError(t, err)
	assert.Equal(t, "✓ region=EU\n", out)

	out, err = runCmd(t, nil, "config", "get", "region")
	require.NoError(t, err)
	assert.Equal(t, "EU\n", out)
}

func TestParseData(t *testing.T) {
	file := filepath.Join(t.TempDir(), "body.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"bid":1.25}`), 0o600))

	v, err := parseData("@" + file)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"bid": json.Number("1.25")}, v)

	_, err = parseData("")
	require.Error(t, err)

	_, err = parseData("{")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing --data as JSON")
}

func TestParseFilters(t *testing.T) {
	v, err := parseFilters([]string{"stateFilter=enabled,paused", "name=a=b"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"stateFilter": "enabled,paused", "name": "a=b"}, v)

	v, err = parseFilters(nil)
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = parseFilters([]string{"novalue"})
	require.Error(t, err)
}
