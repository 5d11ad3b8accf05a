package client

import (
	"context"
	"net/http"
)

var campaigns = record{collection: "campaigns", idField: "campaign_id"}

// GetCampaign retrieves the minimal set of campaign fields.
func (s *Service) GetCampaign(ctx context.Context, campaignID string, t CampaignType) Outcome {
	return s.get(ctx, campaigns, t, campaignID)
}

// GetCampaignEx retrieves a campaign with its extended, read-only fields.
func (s *Service) GetCampaignEx(ctx context.Context, campaignID string, t CampaignType) Outcome {
	return s.getEx(ctx, campaigns, t, campaignID)
}

// CreateCampaigns creates up to 100 campaigns.
func (s *Service) CreateCampaigns(ctx context.Context, data any, t CampaignType) Outcome {
	return s.write(ctx, campaigns, t, http.MethodPost, data)
}

// UpdateCampaigns updates campaigns identified by campaignId.
func (s *Service) UpdateCampaigns(ctx context.Context, data any, t CampaignType) Outcome {
	return s.write(ctx, campaigns, t, http.MethodPut, data)
}

// ArchiveCampaign sets the campaign state to archived.
func (s *Service) ArchiveCampaign(ctx context.Context, campaignID string, t CampaignType) Outcome {
	return s.archive(ctx, campaigns, t, campaignID)
}

// ListCampaigns lists campaigns matching the optional filter
// (startIndex, count, stateFilter, name, campaignIdFilter).
func (s *Service) ListCampaigns(ctx context.Context, filter any, t CampaignType) Outcome {
	return s.list(ctx, campaigns, t, filter)
}

// ListCampaignsEx lists campaigns with extended fields.
func (s *Service) ListCampaignsEx(ctx context.Context, filter any, t CampaignType) Outcome {
	return s.listEx(ctx, campaigns, t, filter)
}
