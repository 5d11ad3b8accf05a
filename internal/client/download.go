package client

import (
	"bytes"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var reportJSON = jsoniter.ConfigCompatibleWithStandardLibrary

// Download resolves a finished report or snapshot. location is either a full
// URL or a resource path. The API answers with a redirect to a signed,
// time-limited URL; that URL is fetched without credentials and its
// gzip-compressed JSON body is returned decoded in Response.
func (c *Client) Download(ctx context.Context, location string) Outcome {
	token := c.AccessToken()
	if token == "" {
		return failure(0, "access_token is empty.")
	}
	profileID := c.ProfileID()
	if profileID == "" {
		return failure(0, "profile_id is empty.")
	}
	if strings.TrimSpace(location) == "" {
		return failure(0, "location is empty.")
	}

	target := location
	if !isAbsoluteURL(location) {
		target = c.resourceURL(location)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return failure(0, fmt.Sprintf("creating request: %v", err))
	}
	setAuthHeaders(req, token, c.clientID, profileID)

	log := c.log.WithFields(logrus.Fields{
		"request_id": uuid.NewString(),
		"method":     http.MethodGet,
		"url":        target,
	})
	log.Debug("--> download")

	// The redirect must reach us rather than be followed with our credentials.
	noRedirect := *c.httpClient
	noRedirect.CheckRedirect = func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}

	resp, err := noRedirect.Do(req)
	if err != nil {
		return failure(0, fmt.Sprintf("executing request: %v", err))
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	log.WithField("status", resp.StatusCode).Debug("<-- download")

	switch {
	case isRedirect(resp.StatusCode):
		if len(resp.Header.Values("Location")) == 0 {
			return failure(resp.StatusCode, "Location not found.")
		}
		signed := resp.Header.Get("Location")
		if strings.TrimSpace(signed) == "" {
			return failure(resp.StatusCode, "Location is empty.")
		}
		return c.fetchSigned(ctx, signed, log)
	case isSuccess(resp.StatusCode):
		return failure(resp.StatusCode, "Location not found.")
	default:
		return httpFailure(resp, body)
	}
}

// fetchSigned downloads the signed URL with no authorization headers.
func (c *Client) fetchSigned(ctx context.Context, signed string, log logrus.FieldLogger) Outcome {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, signed, nil)
	if err != nil {
		return failure(0, fmt.Sprintf("creating download request: %v", err))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return failure(0, fmt.Sprintf("downloading report: %v", err))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return failure(resp.StatusCode, fmt.Sprintf("reading report body: %v", err))
	}
	if !isSuccess(resp.StatusCode) {
		return httpFailure(resp, raw)
	}

	data, err := gunzip(raw)
	if err != nil {
		return failure(resp.StatusCode, fmt.Sprintf("decompressing report: %v", err))
	}

	var doc any
	if err := reportJSON.Unmarshal(data, &doc); err != nil {
		return failure(resp.StatusCode, fmt.Sprintf("parsing report JSON: %v", err))
	}

	log.WithField("bytes", len(data)).Debug("report downloaded")

	return Outcome{Success: true, Code: resp.StatusCode, Response: doc}
}

// gunzip decompresses b when it carries the gzip magic number. Bodies the
// transport already inflated are returned unchanged.
func gunzip(b []byte) ([]byte, error) {
	if len(b) < 2 || b[0] != 0x1f || b[1] != 0x8b {
		return b, nil
	}
	zr, err := gzip.NewReader(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	return io.ReadAll(zr)
}

func isRedirect(code int) bool {
	switch code {
	case http.StatusMovedPermanently, http.StatusFound, http.StatusSeeOther,
		http.StatusTemporaryRedirect, http.StatusPermanentRedirect:
		return true
	}
	return false
}

func isAbsoluteURL(s string) bool {
	lower := strings.ToLower(s)
	return strings.HasPrefix(lower, "https://") || strings.HasPrefix(lower, "http://")
}
