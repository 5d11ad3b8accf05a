package client

import (
	"context"
	"net/http"
)

var (
	targets         = record{collection: "targets", idField: "target_id"}
	negativeTargets = record{collection: "negativeTargets", idField: "target_id"}
)

func (s *Service) GetTarget(ctx context.Context, targetID string, t CampaignType) Outcome {
	return s.get(ctx, targets, t, targetID)
}

func (s *Service) GetTargetEx(ctx context.Context, targetID string) Outcome {
	return s.getEx(ctx, targets, SponsoredProducts, targetID)
}

func (s *Service) CreateTargets(ctx context.Context, data any, t CampaignType) Outcome {
	return s.write(ctx, targets, t, http.MethodPost, data)
}

// CreateTargetsList posts to the targets/list endpoint, which lists targets
// matching the filter carried in the body.
func (s *Service) CreateTargetsList(ctx context.Context, data any, t CampaignType) Outcome {
	if data == nil {
		return emptyField("data")
	}
	return s.api.Call(ctx, typedPath(t, targets.collection, "list"), data, http.MethodPost)
}

func (s *Service) UpdateTargets(ctx context.Context, data any, t CampaignType) Outcome {
	return s.write(ctx, targets, t, http.MethodPut, data)
}

func (s *Service) ArchiveTarget(ctx context.Context, targetID string, t CampaignType) Outcome {
	return s.archive(ctx, targets, t, targetID)
}

func (s *Service) ListTargets(ctx context.Context, filter any) Outcome {
	return s.list(ctx, targets, SponsoredProducts, filter)
}

func (s *Service) ListTargetsEx(ctx context.Context, filter any) Outcome {
	return s.listEx(ctx, targets, SponsoredProducts, filter)
}

func (s *Service) GetNegativeTarget(ctx context.Context, targetID string, t CampaignType) Outcome {
	return s.get(ctx, negativeTargets, t, targetID)
}

func (s *Service) GetNegativeTargetEx(ctx context.Context, targetID string) Outcome {
	return s.getEx(ctx, negativeTargets, SponsoredProducts, targetID)
}

func (s *Service) CreateNegativeTargets(ctx context.Context, data any, t CampaignType) Outcome {
	return s.write(ctx, negativeTargets, t, http.MethodPost, data)
}

func (s *Service) CreateNegativeTargetsList(ctx context.Context, data any, t CampaignType) Outcome {
	if data == nil {
		return emptyField("data")
	}
	return s.api.Call(ctx, typedPath(t, negativeTargets.collection, "list"), data, http.MethodPost)
}

func (s *Service) UpdateNegativeTargets(ctx context.Context, data any, t CampaignType) Outcome {
	return s.write(ctx, negativeTargets, t, http.MethodPut, data)
}

func (s *Service) ArchiveNegativeTarget(ctx context.Context, targetID string, t CampaignType) Outcome {
	return s.archive(ctx, negativeTargets, t, targetID)
}

func (s *Service) ListNegativeTargets(ctx context.Context, filter any) Outcome {
	return s.list(ctx, negativeTargets, SponsoredProducts, filter)
}

func (s *Service) ListNegativeTargetsEx(ctx context.Context, filter any) Outcome {
	return s.listEx(ctx, negativeTargets, SponsoredProducts, filter)
}
