package client

import (
	"context"
	"net/http"
)

var (
	keywords                 = record{collection: "keywords", idField: "keyword_id"}
	negativeKeywords         = record{collection: "negativeKeywords", idField: "negative_keyword_id"}
	campaignNegativeKeywords = record{collection: "campaignNegativeKeywords", idField: "campaign_negative_keyword_id"}
)

// Biddable keywords.

func (s *Service) GetBiddableKeyword(ctx context.Context, keywordID string, t CampaignType) Outcome {
	return s.get(ctx, keywords, t, keywordID)
}

func (s *Service) GetBiddableKeywordEx(ctx context.Context, keywordID string) Outcome {
	return s.getEx(ctx, keywords, SponsoredProducts, keywordID)
}

func (s *Service) CreateBiddableKeywords(ctx context.Context, data any, t CampaignType) Outcome {
	return s.write(ctx, keywords, t, http.MethodPost, data)
}

func (s *Service) UpdateBiddableKeywords(ctx context.Context, data any, t CampaignType) Outcome {
	return s.write(ctx, keywords, t, http.MethodPut, data)
}

func (s *Service) ArchiveBiddableKeyword(ctx context.Context, keywordID string, t CampaignType) Outcome {
	return s.archive(ctx, keywords, t, keywordID)
}

func (s *Service) ListBiddableKeywords(ctx context.Context, filter any, t CampaignType) Outcome {
	return s.list(ctx, keywords, t, filter)
}

func (s *Service) ListBiddableKeywordsEx(ctx context.Context, filter any) Outcome {
	return s.listEx(ctx, keywords, SponsoredProducts, filter)
}

// Ad group level negative keywords.

func (s *Service) GetNegativeKeyword(ctx context.Context, negativeKeywordID string, t CampaignType) Outcome {
	return s.get(ctx, negativeKeywords, t, negativeKeywordID)
}

func (s *Service) GetNegativeKeywordEx(ctx context.Context, negativeKeywordID string) Outcome {
	return s.getEx(ctx, negativeKeywords, SponsoredProducts, negativeKeywordID)
}

func (s *Service) CreateNegativeKeywords(ctx context.Context, data any, t CampaignType) Outcome {
	return s.write(ctx, negativeKeywords, t, http.MethodPost, data)
}

func (s *Service) UpdateNegativeKeywords(ctx context.Context, data any, t CampaignType) Outcome {
	return s.write(ctx, negativeKeywords, t, http.MethodPut, data)
}

func (s *Service) ArchiveNegativeKeyword(ctx context.Context, negativeKeywordID string, t CampaignType) Outcome {
	return s.archive(ctx, negativeKeywords, t, negativeKeywordID)
}

func (s *Service) ListNegativeKeywords(ctx context.Context, filter any, t CampaignType) Outcome {
	return s.list(ctx, negativeKeywords, t, filter)
}

func (s *Service) ListNegativeKeywordsEx(ctx context.Context, filter any) Outcome {
	return s.listEx(ctx, negativeKeywords, SponsoredProducts, filter)
}

// Campaign level negative keywords exist for sponsored products only.

func (s *Service) GetCampaignNegativeKeyword(ctx context.Context, id string) Outcome {
	return s.get(ctx, campaignNegativeKeywords, SponsoredProducts, id)
}

func (s *Service) GetCampaignNegativeKeywordEx(ctx context.Context, id string) Outcome {
	return s.getEx(ctx, campaignNegativeKeywords, SponsoredProducts, id)
}

func (s *Service) CreateCampaignNegativeKeywords(ctx context.Context, data any) Outcome {
	return s.write(ctx, campaignNegativeKeywords, SponsoredProducts, http.MethodPost, data)
}

func (s *Service) UpdateCampaignNegativeKeywords(ctx context.Context, data any) Outcome {
	return s.write(ctx, campaignNegativeKeywords, SponsoredProducts, http.MethodPut, data)
}

// RemoveCampaignNegativeKeyword deletes the keyword; campaign negatives cannot
// be archived.
func (s *Service) RemoveCampaignNegativeKeyword(ctx context.Context, id string) Outcome {
	return s.archive(ctx, campaignNegativeKeywords, SponsoredProducts, id)
}

func (s *Service) ListCampaignNegativeKeywords(ctx context.Context, filter any) Outcome {
	return s.list(ctx, campaignNegativeKeywords, SponsoredProducts, filter)
}

func (s *Service) ListCampaignNegativeKeywordsEx(ctx context.Context, filter any) Outcome {
	return s.listEx(ctx, campaignNegativeKeywords, SponsoredProducts, filter)
}
