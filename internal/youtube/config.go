// Package youtube provides the YouTube Analytics API client used to read
// estimated revenue for CMS channel groups.
package youtube

import (
	"fmt"
	"time"

	"github.com/hahaha-network/revsync/internal/common"
)

// DefaultTokenURI is Google's OAuth2 token endpoint.
const DefaultTokenURI = "https://oauth2.googleapis.com/token"

// Scopes required to read monetary analytics data. Monetary metrics need
// the yt-analytics-monetary scope; group listing needs the plain one.
var Scopes = []string{
	"https://www.googleapis.com/auth/yt-analytics-monetary.readonly",
	"https://www.googleapis.com/auth/yt-analytics.readonly",
}

// Config holds the configuration for the analytics query client.
type Config struct {
	ClientID     string
	ClientSecret string
	RefreshToken string

	// ContentOwner is the CMS content owner id, used as
	// ids=contentOwner==<ID> on every report query.
	ContentOwner string
	// OnBehalfOfContentOwner is passed to group listing only; the reports
	// endpoint does not accept it for content-owner queries.
	OnBehalfOfContentOwner string

	// Currency for estimated revenue figures (ISO 4217).
	Currency string

	RetryAttempts int
	RetryDelay    time.Duration
}

// DefaultConfig returns a Config with sensible defaults. A single attempt
// per call: transient faults surface in the run summary and are retried by
// re-invoking the run.
func DefaultConfig() Config {
	return Config{
		Currency:      "EUR",
		RetryAttempts: 1,
		RetryDelay:    time.Second,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.ClientID == "" || c.ClientSecret == "" || c.RefreshToken == "" {
		return fmt.Errorf("%w: youtube oauth client_id, client_secret and refresh_token are required", common.ErrMissingConfig)
	}
	if c.ContentOwner == "" {
		return fmt.Errorf("%w: youtube content_owner is required", common.ErrMissingConfig)
	}
	if c.Currency == "" {
		return fmt.Errorf("%w: currency cannot be empty", common.ErrInvalidConfig)
	}
	if c.RetryAttempts < 0 {
		return fmt.Errorf("%w: retry attempts cannot be negative", common.ErrInvalidConfig)
	}
	return nil
}
