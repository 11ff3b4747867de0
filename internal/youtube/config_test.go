package youtube

import (
	"testing"
	"time"

	"github.com/hahaha-network/revsync/internal/common"
	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	valid := Config{
		ClientID:     "client",
		ClientSecret: "secret",
		RefreshToken: "token",
		ContentOwner: "owner-id",
		Currency:     "EUR",
	}

	tests := []struct {
		mutate  func(*Config)
		name    string
		wantErr error
	}{
		{
			name:   "valid",
			mutate: func(_ *Config) {},
		},
		{
			name:    "missing client id",
			mutate:  func(c *Config) { c.ClientID = "" },
			wantErr: common.ErrMissingConfig,
		},
		{
			name:    "missing refresh token",
			mutate:  func(c *Config) { c.RefreshToken = "" },
			wantErr: common.ErrMissingConfig,
		},
		{
			name:    "missing content owner",
			mutate:  func(c *Config) { c.ContentOwner = "" },
			wantErr: common.ErrMissingConfig,
		},
		{
			name:    "empty currency",
			mutate:  func(c *Config) { c.Currency = "" },
			wantErr: common.ErrInvalidConfig,
		},
		{
			name:    "negative retry attempts",
			mutate:  func(c *Config) { c.RetryAttempts = -1 },
			wantErr: common.ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := valid
			tt.mutate(&config)

			err := config.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, "EUR", config.Currency)
	assert.Equal(t, 1, config.RetryAttempts)
	assert.Equal(t, time.Second, config.RetryDelay)
}
