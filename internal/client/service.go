package client

import (
	"context"
	"net/http"
	"strings"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_api.go -package=mocks

// API is the dispatcher surface that resource methods are built on. *Client
// implements it.
type API interface {
	Call(ctx context.Context, resource string, params any, method string) Outcome
	Download(ctx context.Context, location string) Outcome
	Refresh(ctx context.Context) Outcome
	AccessToken() string
	RefreshToken() string
	ProfileID() string
}

var _ API = (*Client)(nil)

// CampaignType selects the advertising product family and with it the path
// prefix. Sponsored brands paths are served by the v3 surface.
type CampaignType string

const (
	SponsoredProducts CampaignType = "sp"
	SponsoredBrands   CampaignType = "sb"
	HeadlineSearch    CampaignType = "hsa"
	SponsoredDisplay  CampaignType = "sd"
)

// ParseCampaignType validates a campaign type string. Empty means sponsored
// products.
func ParseCampaignType(s string) (CampaignType, bool) {
	switch t := CampaignType(strings.ToLower(strings.TrimSpace(s))); t {
	case "":
		return SponsoredProducts, true
	case SponsoredProducts, SponsoredBrands, HeadlineSearch, SponsoredDisplay:
		return t, true
	}
	return "", false
}

func (t CampaignType) prefix() string {
	if t == "" {
		return string(SponsoredProducts)
	}
	return string(t)
}

// Service exposes one method per remote resource operation. Each method only
// formats a path and delegates to the dispatcher.
type Service struct {
	api API
}

// NewService wraps a dispatcher.
func NewService(api API) *Service {
	return &Service{api: api}
}

// API returns the underlying dispatcher.
func (s *Service) API() API { return s.api }

// Call exposes the raw dispatcher for resources without a dedicated method.
func (s *Service) Call(ctx context.Context, resource string, params any, method string) Outcome {
	return s.api.Call(ctx, resource, params, method)
}

func typedPath(t CampaignType, parts ...string) string {
	return t.prefix() + "/" + strings.Join(parts, "/")
}

func emptyField(name string) Outcome {
	return failure(0, name+" is empty.")
}

// record is one CRUD collection such as "campaigns" or "adGroups".
type record struct {
	collection string
	idField    string
}

func (s *Service) get(ctx context.Context, r record, t CampaignType, id string) Outcome {
	if id == "" {
		return emptyField(r.idField)
	}
	return s.api.Call(ctx, typedPath(t, r.collection, id), nil, http.MethodGet)
}

func (s *Service) getEx(ctx context.Context, r record, t CampaignType, id string) Outcome {
	if id == "" {
		return emptyField(r.idField)
	}
	return s.api.Call(ctx, typedPath(t, r.collection, "extended", id), nil, http.MethodGet)
}

func (s *Service) list(ctx context.Context, r record, t CampaignType, filter any) Outcome {
	return s.api.Call(ctx, typedPath(t, r.collection), filter, http.MethodGet)
}

func (s *Service) listEx(ctx context.Context, r record, t CampaignType, filter any) Outcome {
	return s.api.Call(ctx, typedPath(t, r.collection, "extended"), filter, http.MethodGet)
}

func (s *Service) write(ctx context.Context, r record, t CampaignType, method string, data any) Outcome {
	if data == nil {
		return emptyField("data")
	}
	return s.api.Call(ctx, typedPath(t, r.collection), data, method)
}

func (s *Service) archive(ctx context.Context, r record, t CampaignType, id string) Outcome {
	if id == "" {
		return emptyField(r.idField)
	}
	return s.api.Call(ctx, typedPath(t, r.collection, id), nil, http.MethodDelete)
}
