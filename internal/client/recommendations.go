package client

import (
	"context"
	"net/http"
)

// CreateKeywordRecommendations requests keyword suggestions for the ASINs or
// ad group in data.
func (s *Service) CreateKeywordRecommendations(ctx context.Context, data any, t CampaignType) Outcome {
	if data == nil {
		return emptyField("data")
	}
	return s.api.Call(ctx, typedPath(t, "recommendations", "keyword"), data, http.MethodPost)
}

// GetAdGroupBidRecommendations requests a suggested default bid for an ad group.
func (s *Service) GetAdGroupBidRecommendations(ctx context.Context, adGroupID string) Outcome {
	if adGroupID == "" {
		return emptyField(adGroups.idField)
	}
	return s.api.Call(ctx, typedPath(SponsoredProducts, adGroups.collection, adGroupID, "bidRecommendations"), nil, http.MethodGet)
}

// GetKeywordBidRecommendations requests a suggested bid for one keyword.
func (s *Service) GetKeywordBidRecommendations(ctx context.Context, keywordID string) Outcome {
	if keywordID == "" {
		return emptyField(keywords.idField)
	}
	return s.api.Call(ctx, typedPath(SponsoredProducts, keywords.collection, keywordID, "bidRecommendations"), nil, http.MethodGet)
}

// CreateKeywordBidRecommendations requests bids for up to 100 keywords in the
// form {"adGroupId": ..., "keywords": [{"keyword": ..., "matchType": ...}]}.
func (s *Service) CreateKeywordBidRecommendations(ctx context.Context, data any) Outcome {
	if data == nil {
		return emptyField("data")
	}
	return s.api.Call(ctx, typedPath(SponsoredProducts, keywords.collection, "bidRecommendations"), data, http.MethodPost)
}
