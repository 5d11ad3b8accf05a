package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"
)

// Refresh exchanges the refresh token for a new access token and stores it on
// the client. The returned Outcome carries the new token in Response.
func (c *Client) Refresh(ctx context.Context) Outcome {
	c.mu.Lock()
	if c.refreshToken == "" {
		c.mu.Unlock()
		return failure(0, "refresh_token is empty.")
	}
	// Tokens read back from upstream storage may still be percent-encoded.
	c.accessToken = unescapeToken(c.accessToken)
	c.refreshToken = unescapeToken(c.refreshToken)
	refresh := c.refreshToken
	c.mu.Unlock()

	cfg := &oauth2.Config{
		ClientID:     c.clientID,
		ClientSecret: c.clientSecret,
		Endpoint: oauth2.Endpoint{
			TokenURL:  "https://" + c.endpoint.TokenHost,
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)

	c.log.WithField("token_url", cfg.Endpoint.TokenURL).Debug("refreshing access token")

	tok, err := cfg.TokenSource(ctx, &oauth2.Token{RefreshToken: refresh}).Token()
	if err != nil {
		return refreshFailure(err)
	}

	c.mu.Lock()
	c.accessToken = tok.AccessToken
	if tok.RefreshToken != "" {
		c.refreshToken = tok.RefreshToken
	}
	c.mu.Unlock()

	return Outcome{Success: true, Code: http.StatusOK, Response: tok.AccessToken}
}

func refreshFailure(err error) Outcome {
	var rerr *oauth2.RetrieveError
	if errors.As(err, &rerr) && rerr.Response != nil {
		return failure(rerr.Response.StatusCode,
			fmt.Sprintf("%s: %s", reasonPhrase(rerr.Response), strings.TrimSpace(string(rerr.Body))))
	}
	if strings.Contains(err.Error(), "missing access_token") {
		return failure(http.StatusOK, "access_token not in response.")
	}
	return failure(0, fmt.Sprintf("refreshing token: %v", err))
}

func unescapeToken(s string) string {
	if s == "" {
		return s
	}
	decoded, err := url.PathUnescape(s)
	if err != nil {
		return s
	}
	return decoded
}
