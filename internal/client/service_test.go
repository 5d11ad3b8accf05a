package client_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/aviadshiber/amzads/internal/client"
	"github.com/aviadshiber/amzads/internal/client/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var okOutcome = client.Outcome{Success: true, Code: http.StatusOK, APIVersion: client.APIVersion, Data: `{}`}

func TestService_ResourcePaths(t *testing.T) {
	data := []map[string]any{{"name": "x"}}
	filter := map[string]string{"stateFilter": "enabled"}

	tests := []struct {
		name   string
		call   func(ctx context.Context, s *client.Service) client.Outcome
		path   string
		params any
		method string
	}{
		{"register profile", func(ctx context.Context, s *client.Service) client.Outcome { return s.RegisterProfile(ctx, "US") },
			"profiles/register", map[string]string{"countryCode": "US"}, http.MethodPut},
		{"list profiles", func(ctx context.Context, s *client.Service) client.Outcome { return s.ListProfiles(ctx) },
			"profiles", nil, http.MethodGet},
		{"get profile", func(ctx context.Context, s *client.Service) client.Outcome { return s.GetProfile(ctx, "7") },
			"profiles/7", nil, http.MethodGet},
		{"update profiles", func(ctx context.Context, s *client.Service) client.Outcome { return s.UpdateProfiles(ctx, data) },
			"profiles", data, http.MethodPut},

		{"get campaign", func(ctx context.Context, s *client.Service) client.Outcome { return s.GetCampaign(ctx, "1", "") },
			"sp/campaigns/1", nil, http.MethodGet},
		{"get sb campaign ex", func(ctx context.Context, s *client.Service) client.Outcome {
			return s.GetCampaignEx(ctx, "1", client.SponsoredBrands)
		}, "sb/campaigns/extended/1", nil, http.MethodGet},
		{"create campaigns", func(ctx context.Context, s *client.Service) client.Outcome {
			return s.CreateCampaigns(ctx, data, client.SponsoredProducts)
		}, "sp/campaigns", data, http.MethodPost},
		{"update campaigns", func(ctx context.Context, s *client.Service) client.Outcome {
			return s.UpdateCampaigns(ctx, data, client.HeadlineSearch)
		}, "hsa/campaigns", data, http.MethodPut},
		{"archive campaign", func(ctx context.Context, s *client.Service) client.Outcome {
			return s.ArchiveCampaign(ctx, "1", client.SponsoredProducts)
		}, "sp/campaigns/1", nil, http.MethodDelete},
		{"list campaigns", func(ctx context.Context, s *client.Service) client.Outcome {
			return s.ListCampaigns(ctx, filter, client.SponsoredProducts)
		}, "sp/campaigns", filter, http.MethodGet},
		{"list campaigns ex", func(ctx context.Context, s *client.Service) client.Outcome {
			return s.ListCampaignsEx(ctx, nil, client.SponsoredProducts)
		}, "sp/campaigns/extended", nil, http.MethodGet},

		{"get ad group ex", func(ctx context.Context, s *client.Service) client.Outcome {
			return s.GetAdGroupEx(ctx, "2", client.SponsoredProducts)
		}, "sp/adGroups/extended/2", nil, http.MethodGet},
		{"archive ad group", func(ctx context.Context, s *client.Service) client.Outcome {
			return s.ArchiveAdGroup(ctx, "2", client.SponsoredProducts)
		}, "sp/adGroups/2", nil, http.MethodDelete},

		{"create targets list", func(ctx context.Context, s *client.Service) client.Outcome {
			return s.CreateTargetsList(ctx, data, client.SponsoredBrands)
		}, "sb/targets/list", data, http.MethodPost},
		{"list negative targets ex", func(ctx context.Context, s *client.Service) client.Outcome {
			return s.ListNegativeTargetsEx(ctx, nil)
		}, "sp/negativeTargets/extended", nil, http.MethodGet},

		{"create keywords", func(ctx context.Context, s *client.Service) client.Outcome {
			return s.CreateBiddableKeywords(ctx, data, client.SponsoredProducts)
		}, "sp/keywords", data, http.MethodPost},
		{"negative keyword ex", func(ctx context.Context, s *client.Service) client.Outcome {
			return s.GetNegativeKeywordEx(ctx, "3")
		}, "sp/negativeKeywords/extended/3", nil, http.MethodGet},
		{"remove campaign negative keyword", func(ctx context.Context, s *client.Service) client.Outcome {
			return s.RemoveCampaignNegativeKeyword(ctx, "4")
		}, "sp/campaignNegativeKeywords/4", nil, http.MethodDelete},

		{"list product ads", func(ctx context.Context, s *client.Service) client.Outcome {
			return s.ListProductAds(ctx, filter, client.SponsoredDisplay)
		}, "sd/productAds", filter, http.MethodGet},

		{"keyword recommendations", func(ctx context.Context, s *client.Service) client.Outcome {
			return s.CreateKeywordRecommendations(ctx, data, client.SponsoredBrands)
		}, "sb/recommendations/keyword", data, http.MethodPost},
		{"ad group bid recommendations", func(ctx context.Context, s *client.Service) client.Outcome {
			return s.GetAdGroupBidRecommendations(ctx, "5")
		}, "sp/adGroups/5/bidRecommendations", nil, http.MethodGet},
		{"keyword bid recommendations", func(ctx context.Context, s *client.Service) client.Outcome {
			return s.CreateKeywordBidRecommendations(ctx, data)
		}, "sp/keywords/bidRecommendations", data, http.MethodPost},

		{"request report", func(ctx context.Context, s *client.Service) client.Outcome {
			return s.RequestReport(ctx, "campaigns", data, client.SponsoredProducts)
		}, "sp/campaigns/report", data, http.MethodPost},
		{"report status", func(ctx context.Context, s *client.Service) client.Outcome {
			return s.ReportStatus(ctx, "amzn1.report.1")
		}, "reports/amzn1.report.1", nil, http.MethodGet},
		{"request snapshot", func(ctx context.Context, s *client.Service) client.Outcome {
			return s.RequestSnapshot(ctx, "keywords", nil, client.SponsoredProducts)
		}, "sp/keywords/snapshot", map[string]any{"campaignType": "sponsoredProducts"}, http.MethodPost},
		{"snapshot status", func(ctx context.Context, s *client.Service) client.Outcome {
			return s.SnapshotStatus(ctx, "9", client.HeadlineSearch)
		}, "hsa/snapshots/9", nil, http.MethodGet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			api := mocks.NewMockAPI(ctrl)
			api.EXPECT().Call(gomock.Any(), tt.path, tt.params, tt.method).Return(okOutcome)

			out := tt.call(t.Context(), client.NewService(api))
			assert.Equal(t, okOutcome, out)
		})
	}
}

func TestService_EmptyIdentifiers(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAPI(ctrl)
	s := client.NewService(api)
	ctx := t.Context()

	outs := map[string]client.Outcome{
		"campaign_id is empty.": s.GetCampaign(ctx, "", client.SponsoredProducts),
		"ad_group_id is empty.": s.GetAdGroupBidRecommendations(ctx, ""),
		"keyword_id is empty.":  s.ArchiveBiddableKeyword(ctx, "", client.SponsoredProducts),
		"report_id is empty.":   s.GetReport(ctx, ""),
		"snapshot_id is empty.": s.GetSnapshot(ctx, ""),
		"record_type is empty.": s.RequestReport(ctx, "", nil, client.SponsoredProducts),
		"data is empty.":        s.CreateCampaigns(ctx, nil, client.SponsoredProducts),
	}
	for msg, out := range outs {
		assert.False(t, out.Success, msg)
		assert.Equal(t, 0, out.Code, msg)
		assert.Equal(t, msg, out.Message())
	}
}

func TestService_RequestSnapshotKeepsCampaignType(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAPI(ctrl)

	want := map[string]any{"campaignType": "headlineSearch", "stateFilter": "enabled"}
	api.EXPECT().Call(gomock.Any(), "hsa/campaigns/snapshot", want, http.MethodPost).Return(okOutcome)

	out := client.NewService(api).RequestSnapshot(t.Context(), "campaigns",
		map[string]any{"campaignType": "headlineSearch", "stateFilter": "enabled"}, client.HeadlineSearch)
	assert.True(t, out.Success)
}

func TestService_GetSnapshotDownloadsWhenReady(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAPI(ctrl)

	status := client.Outcome{Success: true, Code: http.StatusOK, Data: `{"snapshotId":"9","status":"SUCCESS","location":"https://advertising-api.amazon.com/v2/snapshots/9/download"}`}
	doc := client.Outcome{Success: true, Code: http.StatusOK, Response: []any{}}

	gomock.InOrder(
		api.EXPECT().Call(gomock.Any(), "snapshots/9", nil, http.MethodGet).Return(status),
		api.EXPECT().Download(gomock.Any(), "https://advertising-api.amazon.com/v2/snapshots/9/download").Return(doc),
	)

	out := client.NewService(api).GetSnapshot(t.Context(), "9")
	assert.Equal(t, doc, out)
}

func TestService_GetReportStatusProblems(t *testing.T) {
	tests := []struct {
		name   string
		status client.Outcome
		want   client.Outcome
	}{
		{
			name:   "http failure passes through",
			status: client.Outcome{Success: false, Code: http.StatusNotFound, Response: "Not Found: {}"},
			want:   client.Outcome{Success: false, Code: http.StatusNotFound, Response: "Not Found: {}"},
		},
		{
			name:   "status missing",
			status: client.Outcome{Success: true, Code: http.StatusOK, Data: `{"reportId":"1"}`},
			want:   client.Outcome{Success: false, Code: http.StatusOK, Response: "status not found in response"},
		},
		{
			name:   "success without location",
			status: client.Outcome{Success: true, Code: http.StatusOK, Data: `{"status":"SUCCESS"}`},
			want:   client.Outcome{Success: false, Code: http.StatusOK, Response: "location not found in status response."},
		},
		{
			name:   "failed report",
			status: client.Outcome{Success: true, Code: http.StatusOK, Data: `{"status":"FAILURE","statusDetails":"Report generation failed"}`},
			want:   client.Outcome{Success: true, Code: http.StatusOK, Data: `{"status":"FAILURE","statusDetails":"Report generation failed"}`},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			api := mocks.NewMockAPI(ctrl)
			api.EXPECT().Call(gomock.Any(), "reports/1", nil, http.MethodGet).Return(tt.status)

			out := client.NewService(api).GetReport(t.Context(), "1")
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestParseCampaignType(t *testing.T) {
	got, ok := client.ParseCampaignType("")
	require.True(t, ok)
	assert.Equal(t, client.SponsoredProducts, got)

	got, ok = client.ParseCampaignType("SB")
	require.True(t, ok)
	assert.Equal(t, client.SponsoredBrands, got)

	_, ok = client.ParseCampaignType("video")
	assert.False(t, ok)
}

func TestOutcome_Decode(t *testing.T) {
	var rows []map[string]int
	require.NoError(t, client.Outcome{Success: true, Data: `[{"campaignId":1}]`}.Decode(&rows))
	assert.Equal(t, []map[string]int{{"campaignId": 1}}, rows)

	var doc map[string][]any
	require.NoError(t, client.Outcome{Success: true, Response: map[string]any{"rows": []any{}}}.Decode(&doc))
	assert.Empty(t, doc["rows"])

	err := client.Outcome{Code: http.StatusBadRequest, Response: "Bad Request: nope"}.Decode(&doc)
	assert.EqualError(t, err, "API error (HTTP 400): Bad Request: nope")
}
