// Package client provides an HTTP client for the Amazon Advertising API with
// region-aware endpoint resolution, refresh-token renewal, and report download.
package client

import (
	"fmt"
	"sort"
	"strings"
)

// API versions. Paths under the sponsored-brands prefix are served by the
// newer generation, which carries no version segment in the URL.
const (
	APIVersion   = "v2"
	SBAPIVersion = "v3"

	sbPathPrefix = "sb"
)

// Version is the library version reported in the User-Agent header.
const Version = "0.4.0"

// UserAgent is sent with every authenticated request.
const UserAgent = "AdvertisingAPI Go Client Library v" + Version

// Region codes for the three Amazon Advertising API geographies.
const (
	RegionNA = "NA"
	RegionEU = "EU"
	RegionFE = "FE"
)

// Endpoint holds the hosts for one region. Hosts carry no scheme; every
// request is issued over HTTPS.
type Endpoint struct {
	Prod      string
	Sandbox   string
	TokenHost string
}

// APIHost returns the sandbox or production API host.
func (e Endpoint) APIHost(sandbox bool) string {
	if sandbox {
		return e.Sandbox
	}
	return e.Prod
}

const sandboxHost = "advertising-api-test.amazon.com"

var (
	northAmerica = Endpoint{
		Prod:      "advertising-api.amazon.com",
		Sandbox:   sandboxHost,
		TokenHost: "api.amazon.com/auth/o2/token",
	}
	europe = Endpoint{
		Prod:      "advertising-api-eu.amazon.com",
		Sandbox:   sandboxHost,
		TokenHost: "api.amazon.co.uk/auth/o2/token",
	}
	farEast = Endpoint{
		Prod:      "advertising-api-fe.amazon.com",
		Sandbox:   sandboxHost,
		TokenHost: "api.amazon.co.jp/auth/o2/token",
	}
)

// regions maps a region or marketplace code to its endpoint.
var regions = map[string]Endpoint{
	RegionNA: northAmerica,
	"US":     northAmerica,
	"CA":     northAmerica,
	"MX":     northAmerica,
	"BR":     northAmerica,

	RegionEU: europe,
	"UK":     europe,
	"DE":     europe,
	"FR":     europe,
	"IT":     europe,
	"ES":     europe,
	"NL":     europe,
	"AE":     europe,
	"SE":     europe,
	"PL":     europe,
	"TR":     europe,
	"IN":     europe,

	RegionFE: farEast,
	"JP":     farEast,
	"AU":     farEast,
	"SG":     farEast,
}

// LookupRegion returns the endpoint for a region code. Codes are matched
// case-insensitively.
func LookupRegion(code string) (Endpoint, error) {
	ep, ok := regions[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return Endpoint{}, fmt.Errorf("region %q not found; valid regions: %s", code, strings.Join(RegionCodes(), ", "))
	}
	return ep, nil
}

// ValidRegion reports whether code is a recognized region string.
func ValidRegion(code string) bool {
	_, err := LookupRegion(code)
	return err == nil
}

// RegionCodes returns every known region code in sorted order.
func RegionCodes() []string {
	codes := make([]string, 0, len(regions))
	for code := range regions {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
