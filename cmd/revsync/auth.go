package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/hahaha-network/revsync/internal/cli"
	"github.com/hahaha-network/revsync/internal/youtube"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func authCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Obtain a YouTube Analytics refresh token",
		Long: `Run the one-time OAuth flow to obtain a refresh token for the
YouTube Analytics monetary scope.

This command will:
1. Start a local web server
2. Open the Google consent screen in your browser
3. Capture the authorization code on the callback
4. Print the refresh token to put under youtube.refresh_token

Normal sync runs never need this; they only consume the stored token.`,
		RunE: runAuth,
	}

	cmd.Flags().String("listen", ":8080", "Local callback listen address")
	_ = viper.BindPFlag("auth.listen", cmd.Flags().Lookup("listen"))

	return cmd
}

func runAuth(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	clientID := viper.GetString("youtube.client_id")
	clientSecret := viper.GetString("youtube.client_secret")
	if clientID == "" {
		clientID = os.Getenv("YOUTUBE_CLIENT_ID")
	}
	if clientSecret == "" {
		clientSecret = os.Getenv("YOUTUBE_CLIENT_SECRET")
	}
	if clientID == "" || clientSecret == "" {
		return fmt.Errorf("youtube oauth credentials missing. Please add client_id and client_secret to the config file or set YOUTUBE_CLIENT_ID and YOUTUBE_CLIENT_SECRET environment variables")
	}

	token, err := youtube.AuthenticateInteractive(ctx, youtube.BootstrapConfig{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		ListenAddr:   viper.GetString("auth.listen"),
	})
	if err != nil {
		return err
	}

	if token.RefreshToken == "" {
		return fmt.Errorf("google did not return a refresh token; revoke the app's access at myaccount.google.com/permissions and retry")
	}

	slog.Info("Authentication complete")
	fmt.Fprintln(cmd.OutOrStdout(), cli.RenderBox("Refresh Token",
		token.RefreshToken+"\n\n"+cli.SubtleStyle.Render("Store this under youtube.refresh_token in your config file.")))

	return nil
}
