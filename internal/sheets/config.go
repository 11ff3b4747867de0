// Package sheets provides Google Sheets API integration for writing
// monthly revenue figures into the revenue worksheet.
package sheets

import (
	"fmt"
	"time"

	"github.com/hahaha-network/revsync/internal/common"
)

// Config holds the configuration for the Google Sheets writer.
type Config struct {
	// ServiceAccountPath points at the service-account JSON key. This is
	// the normal authentication method for writes.
	ServiceAccountPath string

	// OAuth2 credentials, accepted as an alternative to a service account.
	ClientID     string
	ClientSecret string
	RefreshToken string

	// SpreadsheetID is the target spreadsheet; WorksheetName the tab that
	// carries the month rows and grouping headers.
	SpreadsheetID string
	WorksheetName string

	RetryAttempts int
	RetryDelay    time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		RetryAttempts: 1,
		RetryDelay:    time.Second,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	hasOAuth := c.ClientID != "" && c.ClientSecret != "" && c.RefreshToken != ""
	hasServiceAccount := c.ServiceAccountPath != ""

	if !hasOAuth && !hasServiceAccount {
		return fmt.Errorf("%w: provide either sheets service_account_path or OAuth2 credentials", common.ErrMissingConfig)
	}
	if hasOAuth && hasServiceAccount {
		return fmt.Errorf("%w: multiple sheets authentication methods configured; use either OAuth2 or service account", common.ErrInvalidConfig)
	}
	if c.SpreadsheetID == "" {
		return fmt.Errorf("%w: sheets spreadsheet_id is required", common.ErrMissingConfig)
	}
	if c.WorksheetName == "" {
		return fmt.Errorf("%w: sheets worksheet_name is required", common.ErrMissingConfig)
	}
	if c.RetryAttempts < 0 {
		return fmt.Errorf("%w: retry attempts cannot be negative", common.ErrInvalidConfig)
	}
	if c.RetryDelay < 0 {
		return fmt.Errorf("%w: retry delay cannot be negative", common.ErrInvalidConfig)
	}
	return nil
}
