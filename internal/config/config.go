// Package config provides configuration utilities for the application.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/hahaha-network/revsync/internal/sheets"
	"github.com/hahaha-network/revsync/internal/youtube"
	"github.com/spf13/viper"
)

// LoadYouTubeConfig loads the analytics client configuration from Viper
// and environment variables. Precedence:
// 1. Viper configuration (from config file or REVSYNC_ env vars)
// 2. Direct environment variables (YOUTUBE_*)
// 3. Default values
func LoadYouTubeConfig() (*youtube.Config, error) {
	config := youtube.DefaultConfig()

	if v := viper.GetString("youtube.client_id"); v != "" {
		config.ClientID = v
	}
	if v := viper.GetString("youtube.client_secret"); v != "" {
		config.ClientSecret = v
	}
	if v := viper.GetString("youtube.refresh_token"); v != "" {
		config.RefreshToken = v
	}
	if v := viper.GetString("youtube.content_owner"); v != "" {
		config.ContentOwner = v
	}
	if v := viper.GetString("youtube.on_behalf_of_content_owner"); v != "" {
		config.OnBehalfOfContentOwner = v
	}
	if v := viper.GetString("youtube.currency"); v != "" {
		config.Currency = strings.ToUpper(v)
	}
	if v := viper.GetInt("youtube.retry_attempts"); v > 0 {
		config.RetryAttempts = v
	}
	if v := viper.GetDuration("youtube.retry_delay"); v > 0 {
		config.RetryDelay = v
	}

	if config.ClientID == "" {
		config.ClientID = os.Getenv("YOUTUBE_CLIENT_ID")
	}
	if config.ClientSecret == "" {
		config.ClientSecret = os.Getenv("YOUTUBE_CLIENT_SECRET")
	}
	if config.RefreshToken == "" {
		config.RefreshToken = os.Getenv("YOUTUBE_REFRESH_TOKEN")
	}
	if config.ContentOwner == "" {
		config.ContentOwner = os.Getenv("YOUTUBE_CONTENT_OWNER")
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// LoadSheetsConfig loads Google Sheets configuration from Viper and
// environment variables, with GOOGLE_SHEETS_* as the env fallback.
func LoadSheetsConfig() (*sheets.Config, error) {
	config := sheets.DefaultConfig()

	if v := viper.GetString("sheets.service_account_path"); v != "" {
		config.ServiceAccountPath = ExpandPath(v)
	}
	if v := viper.GetString("sheets.client_id"); v != "" {
		config.ClientID = v
	}
	if v := viper.GetString("sheets.client_secret"); v != "" {
		config.ClientSecret = v
	}
	if v := viper.GetString("sheets.refresh_token"); v != "" {
		config.RefreshToken = v
	}
	if v := viper.GetString("sheets.spreadsheet_id"); v != "" {
		config.SpreadsheetID = v
	}
	if v := viper.GetString("sheets.worksheet_name"); v != "" {
		config.WorksheetName = v
	}
	if v := viper.GetInt("sheets.retry_attempts"); v > 0 {
		config.RetryAttempts = v
	}
	if v := viper.GetDuration("sheets.retry_delay"); v > 0 {
		config.RetryDelay = v
	}

	if config.ServiceAccountPath == "" {
		if v := os.Getenv("GOOGLE_SHEETS_SERVICE_ACCOUNT_PATH"); v != "" {
			config.ServiceAccountPath = ExpandPath(v)
		}
	}
	if config.ClientID == "" {
		config.ClientID = os.Getenv("GOOGLE_SHEETS_CLIENT_ID")
	}
	if config.ClientSecret == "" {
		config.ClientSecret = os.Getenv("GOOGLE_SHEETS_CLIENT_SECRET")
	}
	if config.RefreshToken == "" {
		config.RefreshToken = os.Getenv("GOOGLE_SHEETS_REFRESH_TOKEN")
	}
	if config.SpreadsheetID == "" {
		config.SpreadsheetID = os.Getenv("GOOGLE_SHEETS_SPREADSHEET_ID")
	}
	if config.WorksheetName == "" {
		config.WorksheetName = os.Getenv("GOOGLE_SHEETS_WORKSHEET_NAME")
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// ExpandPath expands ~ and environment variables in a file path.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = home
		}
	}

	return os.ExpandEnv(path)
}
