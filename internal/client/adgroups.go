package client

import (
	"context"
	"net/http"
)

var adGroups = record{collection: "adGroups", idField: "ad_group_id"}

func (s *Service) GetAdGroup(ctx context.Context, adGroupID string, t CampaignType) Outcome {
	return s.get(ctx, adGroups, t, adGroupID)
}

func (s *Service) GetAdGroupEx(ctx context.Context, adGroupID string, t CampaignType) Outcome {
	return s.getEx(ctx, adGroups, t, adGroupID)
}

// CreateAdGroups creates ad groups. Required fields are campaignId, name,
// state and defaultBid.
func (s *Service) CreateAdGroups(ctx context.Context, data any, t CampaignType) Outcome {
	return s.write(ctx, adGroups, t, http.MethodPost, data)
}

func (s *Service) UpdateAdGroups(ctx context.Context, data any, t CampaignType) Outcome {
	return s.write(ctx, adGroups, t, http.MethodPut, data)
}

func (s *Service) ArchiveAdGroup(ctx context.Context, adGroupID string, t CampaignType) Outcome {
	return s.archive(ctx, adGroups, t, adGroupID)
}

func (s *Service) ListAdGroups(ctx context.Context, filter any, t CampaignType) Outcome {
	return s.list(ctx, adGroups, t, filter)
}

func (s *Service) ListAdGroupsEx(ctx context.Context, filter any, t CampaignType) Outcome {
	return s.listEx(ctx, adGroups, t, filter)
}
