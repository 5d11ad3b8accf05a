package client

import (
	"context"
	"net/http"
)

// RegisterProfile registers a sandbox profile in the given marketplace
// (US, CA, UK, DE, FR, ES, IT, IN, CN, JP).
func (s *Service) RegisterProfile(ctx context.Context, countryCode string) Outcome {
	if countryCode == "" {
		return emptyField("country_code")
	}
	return s.api.Call(ctx, "profiles/register", map[string]string{"countryCode": countryCode}, http.MethodPut)
}

// ListProfiles retrieves the profiles associated with the access token.
func (s *Service) ListProfiles(ctx context.Context) Outcome {
	return s.api.Call(ctx, "profiles", nil, http.MethodGet)
}

// GetProfile retrieves a single profile by id.
func (s *Service) GetProfile(ctx context.Context, profileID string) Outcome {
	if profileID == "" {
		return emptyField("profile_id")
	}
	return s.api.Call(ctx, "profiles/"+profileID, nil, http.MethodGet)
}

// UpdateProfiles updates one or more profiles. Only daily budgets are mutable.
func (s *Service) UpdateProfiles(ctx context.Context, data any) Outcome {
	if data == nil {
		return emptyField("data")
	}
	return s.api.Call(ctx, "profiles", data, http.MethodPut)
}
