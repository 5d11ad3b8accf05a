package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Header names sent with authenticated requests.
const (
	HeaderClientID = "Amazon-Advertising-API-ClientId"
	HeaderScope    = "Amazon-Advertising-API-Scope"
)

const defaultTimeout = 120 * time.Second

// Options configures a Client.
type Options struct {
	ClientID     string
	ClientSecret string
	// Region is a region or marketplace code such as "NA", "EU" or "JP".
	Region string
	// ProfileID scopes every call except profile management to one advertiser.
	ProfileID    string
	AccessToken  string
	RefreshToken string
	Sandbox      bool

	// HTTPClient defaults to a client with a 120 second timeout.
	HTTPClient *http.Client
	// Logger receives debug request logs. Nil discards them.
	Logger logrus.FieldLogger
	// Endpoint, when set, replaces the region table lookup.
	Endpoint *Endpoint
}

// Client is an authenticated HTTP client for the Amazon Advertising API.
//
// The access token is the only state mutated after construction. Refresh and
// SetAccessToken are the single points of mutation; every read goes through
// mu so refreshes are safe against in-flight calls.
type Client struct {
	httpClient   *http.Client
	log          logrus.FieldLogger
	clientID     string
	clientSecret string
	endpoint     Endpoint
	sandbox      bool

	mu           sync.RWMutex
	accessToken  string
	refreshToken string
	profileID    string
}

// New creates a Client. The region must exist in the region table unless an
// explicit Endpoint is supplied.
func New(opts Options) (*Client, error) {
	ep := Endpoint{}
	if opts.Endpoint != nil {
		ep = *opts.Endpoint
	} else {
		var err error
		if ep, err = LookupRegion(opts.Region); err != nil {
			return nil, errors.Wrap(err, "creating client")
		}
	}
	if strings.TrimSpace(opts.ClientID) == "" {
		return nil, errors.New("client_id must be configured; run: amzads config set client_id <value>")
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	logger := opts.Logger
	if logger == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		logger = discard
	}

	return &Client{
		httpClient:   httpClient,
		log:          logger,
		clientID:     opts.ClientID,
		clientSecret: opts.ClientSecret,
		endpoint:     ep,
		sandbox:      opts.Sandbox,
		accessToken:  opts.AccessToken,
		refreshToken: opts.RefreshToken,
		profileID:    opts.ProfileID,
	}, nil
}

// Endpoint returns the endpoint selected at construction.
func (c *Client) Endpoint() Endpoint { return c.endpoint }

// APIHost returns the host requests are sent to.
func (c *Client) APIHost() string { return c.endpoint.APIHost(c.sandbox) }

// AccessToken returns the current access token.
func (c *Client) AccessToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.accessToken
}

// SetAccessToken replaces the access token.
func (c *Client) SetAccessToken(token string) {
	c.mu.Lock()
	c.accessToken = token
	c.mu.Unlock()
}

// RefreshToken returns the current refresh token.
func (c *Client) RefreshToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.refreshToken
}

// SetRefreshToken replaces the refresh token.
func (c *Client) SetRefreshToken(token string) {
	c.mu.Lock()
	c.refreshToken = token
	c.mu.Unlock()
}

// ProfileID returns the profile scope, or "" when unscoped.
func (c *Client) ProfileID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.profileID
}

// SetProfileID changes the profile scope for subsequent calls.
func (c *Client) SetProfileID(id string) {
	c.mu.Lock()
	c.profileID = id
	c.mu.Unlock()
}

// Call performs one authenticated request against resource and normalizes the
// result. GET params are sent as a query string; any other verb sends params as
// a JSON body. A single attempt is made.
func (c *Client) Call(ctx context.Context, resource string, params any, method string) Outcome {
	method = strings.ToUpper(method)
	if method == "" {
		method = http.MethodGet
	}

	token := c.AccessToken()
	if token == "" {
		return failure(0, "access_token is empty.")
	}
	// Profile management is the only surface reachable without a scope.
	profileID := c.ProfileID()
	if profileID == "" && !strings.Contains(resource, "profiles") {
		return failure(0, "profile_id is empty.")
	}

	apiVersion := APIVersion
	if isSBPath(resource) {
		apiVersion = SBAPIVersion
	}

	fullURL := c.resourceURL(resource)
	var body io.Reader
	if method == http.MethodGet {
		query, err := encodeQuery(params)
		if err != nil {
			return failure(0, fmt.Sprintf("encoding query parameters: %v", err))
		}
		if query != "" {
			fullURL += "?" + query
		}
	} else if params != nil {
		b, err := json.Marshal(params)
		if err != nil {
			return failure(0, fmt.Sprintf("encoding request body: %v", err))
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return failure(0, fmt.Sprintf("creating request: %v", err))
	}
	setAuthHeaders(req, token, c.clientID, profileID)

	log := c.log.WithFields(logrus.Fields{
		"request_id": uuid.NewString(),
		"method":     method,
		"url":        fullURL,
	})
	log.Debug("--> request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.WithError(err).Debug("request failed")
		return failure(0, fmt.Sprintf("executing request: %v", err))
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return failure(resp.StatusCode, fmt.Sprintf("reading response body: %v", err))
	}

	log.WithFields(logrus.Fields{
		"status":      resp.StatusCode,
		"api_version": apiVersion,
	}).Debug("<-- response")

	if !isSuccess(resp.StatusCode) {
		return httpFailure(resp, respBody)
	}

	return Outcome{
		Success:    true,
		Code:       resp.StatusCode,
		APIVersion: apiVersion,
		Data:       string(respBody),
	}
}

// resourceURL resolves a resource path against the API host. Sponsored-brands
// paths have no version segment.
func (c *Client) resourceURL(resource string) string {
	resource = strings.TrimPrefix(resource, "/")
	if isSBPath(resource) {
		return fmt.Sprintf("https://%s/%s", c.APIHost(), resource)
	}
	return fmt.Sprintf("https://%s/%s/%s", c.APIHost(), APIVersion, resource)
}

func isSBPath(resource string) bool {
	return strings.HasPrefix(strings.TrimPrefix(resource, "/"), sbPathPrefix)
}

func setAuthHeaders(req *http.Request, token, clientID, profileID string) {
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set(HeaderClientID, clientID)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", UserAgent)
	if profileID != "" {
		req.Header.Set(HeaderScope, profileID)
	}
}

func isSuccess(code int) bool {
	return code >= 200 && code <= 299
}

// httpFailure composes the reason phrase and server body into a failed Outcome.
func httpFailure(resp *http.Response, body []byte) Outcome {
	return failure(resp.StatusCode, fmt.Sprintf("%s: %s", reasonPhrase(resp), strings.TrimSpace(string(body))))
}

// reasonPhrase strips the numeric code from resp.Status, falling back to the
// canonical text for the code.
func reasonPhrase(resp *http.Response) string {
	reason := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if reason == "" {
		reason = http.StatusText(resp.StatusCode)
	}
	return reason
}

// encodeQuery URL-encodes read parameters. Keys are sorted so the encoding is
// stable. Structs are accepted through their JSON field names.
func encodeQuery(params any) (string, error) {
	switch p := params.(type) {
	case nil:
		return "", nil
	case url.Values:
		return p.Encode(), nil
	case map[string][]string:
		return url.Values(p).Encode(), nil
	case map[string]string:
		values := url.Values{}
		for k, v := range p {
			values.Set(k, v)
		}
		return values.Encode(), nil
	case map[string]any:
		values := url.Values{}
		keys := make([]string, 0, len(p))
		for k := range p {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			switch v := p[k].(type) {
			case nil:
			case []string:
				for _, s := range v {
					values.Add(k, s)
				}
			case []any:
				for _, s := range v {
					values.Add(k, fmt.Sprint(s))
				}
			default:
				values.Set(k, fmt.Sprint(v))
			}
		}
		return values.Encode(), nil
	default:
		b, err := json.Marshal(params)
		if err != nil {
			return "", err
		}
		var m map[string]any
		if err := json.Unmarshal(b, &m); err != nil {
			return "", fmt.Errorf("query parameters must be an object: %w", err)
		}
		return encodeQuery(m)
	}
}
