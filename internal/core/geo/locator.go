// Package geo resolves client IPs to country codes through two public
// geolocation services queried in primary/fallback order.
package geo

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/ivanmeda/recipe-finder/internal/infrastructure/config"
	"github.com/ivanmeda/recipe-finder/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Locator looks up the country code for an IP address.
type Locator struct {
	config *config.GeoConfig
	client *resty.Client
}

// NewLocator creates a locator. Each lookup call is bounded by the
// configured timeout (3s by default), independently per provider.
func NewLocator(cfg *config.GeoConfig) *Locator {
	return &Locator{
		config: cfg,
		client: resty.New().SetTimeout(cfg.Timeout),
	}
}

// CountryCode resolves ip to an ISO 3166-1 alpha-2 code. Private, loopback
// and empty addresses resolve to "", as do failures of both providers.
// It never returns an error: an unknown location is a valid answer.
func (l *Locator) CountryCode(ctx context.Context, ip string) string {
	if !IsPublicIP(ip) {
		return ""
	}

	if code := l.lookupPrimary(ctx, ip); code != "" {
		return code
	}
	return l.lookupFallback(ctx, ip)
}

// lookupPrimary queries an ip-api.com style endpoint:
// GET <base>/<ip>?fields=status,countryCode → {"status":"success","countryCode":"RS"}.
func (l *Locator) lookupPrimary(ctx context.Context, ip string) string {
	resp, err := l.client.R().
		SetContext(ctx).
		Get(fmt.Sprintf("%s/%s?fields=status,countryCode", l.config.PrimaryURL, url.PathEscape(ip)))
	if err != nil {
		common.LogWarn("Primary geolocation lookup failed", zap.Error(err))
		return ""
	}
	if resp.StatusCode() != http.StatusOK {
		common.LogWarn("Primary geolocation returned error status",
			zap.Int("status_code", resp.StatusCode()))
		return ""
	}

	var data struct {
		Status      string `json:"status"`
		CountryCode string `json:"countryCode"`
	}
	if err := common.ParseJSONBytes(resp.Body(), &data); err != nil {
		common.LogWarn("Unparseable primary geolocation response", zap.Error(err))
		return ""
	}
	if data.Status != "success" {
		return ""
	}
	return data.CountryCode
}

// lookupFallback queries an ipapi.co style endpoint:
// GET <base>/<ip>/json/ → {"country_code":"RS"}.
func (l *Locator) lookupFallback(ctx context.Context, ip string) string {
	resp, err := l.client.R().
		SetContext(ctx).
		Get(fmt.Sprintf("%s/%s/json/", l.config.FallbackURL, url.PathEscape(ip)))
	if err != nil {
		common.LogWarn("Fallback geolocation lookup failed", zap.Error(err))
		return ""
	}
	if resp.StatusCode() != http.StatusOK {
		common.LogWarn("Fallback geolocation returned error status",
			zap.Int("status_code", resp.StatusCode()))
		return ""
	}

	var data struct {
		CountryCode string `json:"country_code"`
	}
	if err := common.ParseJSONBytes(resp.Body(), &data); err != nil {
		common.LogWarn("Unparseable fallback geolocation response", zap.Error(err))
		return ""
	}
	return data.CountryCode
}

// IsPublicIP reports whether ip is a routable address worth geolocating.
func IsPublicIP(ip string) bool {
	ip = strings.TrimSpace(ip)
	if ip == "" {
		return false
	}
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return false
	}
	return !parsed.IsLoopback() && !parsed.IsPrivate() && !parsed.IsUnspecified() && !parsed.IsLinkLocalUnicast()
}
