package sheets

import (
	"testing"
	"time"

	"github.com/hahaha-network/revsync/internal/common"
	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	valid := Config{
		ServiceAccountPath: "/path/to/key.json",
		SpreadsheetID:      "sheet-id",
		WorksheetName:      "Revenue",
		RetryAttempts:      1,
		RetryDelay:         time.Second,
	}

	tests := []struct {
		mutate  func(*Config)
		name    string
		errMsg  string
		wantErr error
	}{
		{
			name:   "valid service account config",
			mutate: func(_ *Config) {},
		},
		{
			name: "valid oauth config",
			mutate: func(c *Config) {
				c.ServiceAccountPath = ""
				c.ClientID = "client"
				c.ClientSecret = "secret"
				c.RefreshToken = "token"
			},
		},
		{
			name: "missing auth",
			mutate: func(c *Config) {
				c.ServiceAccountPath = ""
			},
			wantErr: common.ErrMissingConfig,
			errMsg:  "service_account_path or OAuth2 credentials",
		},
		{
			name: "multiple auth methods",
			mutate: func(c *Config) {
				c.ClientID = "client"
				c.ClientSecret = "secret"
				c.RefreshToken = "token"
			},
			wantErr: common.ErrInvalidConfig,
			errMsg:  "multiple sheets authentication methods",
		},
		{
			name: "missing spreadsheet id",
			mutate: func(c *Config) {
				c.SpreadsheetID = ""
			},
			wantErr: common.ErrMissingConfig,
			errMsg:  "spreadsheet_id",
		},
		{
			name: "missing worksheet name",
			mutate: func(c *Config) {
				c.WorksheetName = ""
			},
			wantErr: common.ErrMissingConfig,
			errMsg:  "worksheet_name",
		},
		{
			name: "negative retry attempts",
			mutate: func(c *Config) {
				c.RetryAttempts = -1
			},
			wantErr: common.ErrInvalidConfig,
			errMsg:  "retry attempts",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := valid
			tt.mutate(&config)

			err := config.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
