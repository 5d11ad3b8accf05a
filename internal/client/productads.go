package client

import (
	"context"
	"net/http"
)

var productAds = record{collection: "productAds", idField: "product_ad_id"}

func (s *Service) GetProductAd(ctx context.Context, productAdID string) Outcome {
	return s.get(ctx, productAds, SponsoredProducts, productAdID)
}

func (s *Service) GetProductAdEx(ctx context.Context, productAdID string) Outcome {
	return s.getEx(ctx, productAds, SponsoredProducts, productAdID)
}

func (s *Service) CreateProductAds(ctx context.Context, data any) Outcome {
	return s.write(ctx, productAds, SponsoredProducts, http.MethodPost, data)
}

func (s *Service) UpdateProductAds(ctx context.Context, data any) Outcome {
	return s.write(ctx, productAds, SponsoredProducts, http.MethodPut, data)
}

func (s *Service) ArchiveProductAd(ctx context.Context, productAdID string) Outcome {
	return s.archive(ctx, productAds, SponsoredProducts, productAdID)
}

func (s *Service) ListProductAds(ctx context.Context, filter any, t CampaignType) Outcome {
	return s.list(ctx, productAds, t, filter)
}

func (s *Service) ListProductAdsEx(ctx context.Context, filter any, t CampaignType) Outcome {
	return s.listEx(ctx, productAds, t, filter)
}
