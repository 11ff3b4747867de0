package youtube

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/hahaha-network/revsync/internal/common"
	"github.com/hahaha-network/revsync/internal/model"
	"github.com/hahaha-network/revsync/internal/service"
	"github.com/shopspring/decimal"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	youtubeanalytics "google.golang.org/api/youtubeanalytics/v2"
)

// Client implements the RevenueSource and GroupLister interfaces against
// the YouTube Analytics v2 API.
type Client struct {
	service *youtubeanalytics.Service
	logger  *slog.Logger
	config  Config
}

var (
	_ service.RevenueSource = (*Client)(nil)
	_ service.GroupLister   = (*Client)(nil)
)

// NewClient creates an authenticated analytics client. The stored refresh
// token is exchanged for an access token immediately so that revoked or
// invalid credentials fail here, before any query is issued.
func NewClient(ctx context.Context, config Config, logger *slog.Logger) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	oauthConfig := &oauth2.Config{
		ClientID:     config.ClientID,
		ClientSecret: config.ClientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       Scopes,
	}

	token := &oauth2.Token{
		RefreshToken: config.RefreshToken,
		TokenType:    "Bearer",
	}

	tokenSource := oauthConfig.TokenSource(ctx, token)
	if _, err := tokenSource.Token(); err != nil {
		return nil, fmt.Errorf("%w: refresh token exchange failed: %v", common.ErrAuth, err)
	}

	httpClient := oauth2.NewClient(ctx, tokenSource)
	srv, err := youtubeanalytics.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("unable to create youtube analytics service: %w", err)
	}

	return &Client{
		config:  config,
		service: srv,
		logger:  logger,
	}, nil
}

// QueryRevenue returns the aggregate estimated revenue for one grouping
// over a single calendar month. Any date inside the month maps to the
// window first-of-month through last-of-month.
func (c *Client) QueryRevenue(ctx context.Context, groupID string, region model.RegionFilter, month model.Month) (model.RevenueObservation, error) {
	start, end := month.Range()

	var resp *youtubeanalytics.QueryResponse
	err := common.WithRetry(ctx, func() error {
		call := c.service.Reports.Query().
			Ids("contentOwner==" + c.config.ContentOwner).
			StartDate(start.Format("2006-01-02")).
			EndDate(end.Format("2006-01-02")).
			Metrics("estimatedRevenue").
			Filters(c.filters(groupID, region)).
			Currency(c.config.Currency)

		var callErr error
		resp, callErr = call.Context(ctx).Do()
		if callErr != nil {
			return mapQueryError(callErr, groupID)
		}
		return nil
	}, c.retryOptions())
	if err != nil {
		return model.RevenueObservation{}, err
	}

	c.logger.Debug("queried revenue",
		"group_id", groupID,
		"region", region,
		"month", month.String(),
		"rows", len(resp.Rows))

	if len(resp.Rows) == 0 || len(resp.Rows[0]) == 0 {
		return model.NoDataObservation(groupID, month), nil
	}

	amount, err := metricValue(resp.Rows[0][len(resp.Rows[0])-1])
	if err != nil {
		return model.RevenueObservation{}, fmt.Errorf("group %s month %s: %w", groupID, month, err)
	}

	return model.NewRevenueObservation(groupID, month, amount), nil
}

// QueryRevenueRange issues one month-dimensioned query covering the
// inclusive range and splits the response per month. With the month
// dimension the API requires both bounds to be first-of-month dates and
// returns one row per month that had data.
func (c *Client) QueryRevenueRange(ctx context.Context, groupID string, region model.RegionFilter, from, to model.Month) (map[model.Month]model.RevenueObservation, error) {
	if to.Before(from) {
		from, to = to, from
	}

	var resp *youtubeanalytics.QueryResponse
	err := common.WithRetry(ctx, func() error {
		call := c.service.Reports.Query().
			Ids("contentOwner==" + c.config.ContentOwner).
			StartDate(from.First().Format("2006-01-02")).
			EndDate(to.First().Format("2006-01-02")).
			Metrics("estimatedRevenue").
			Dimensions("month").
			Filters(c.filters(groupID, region)).
			Currency(c.config.Currency)

		var callErr error
		resp, callErr = call.Context(ctx).Do()
		if callErr != nil {
			return mapQueryError(callErr, groupID)
		}
		return nil
	}, c.retryOptions())
	if err != nil {
		return nil, err
	}

	out := make(map[model.Month]model.RevenueObservation, len(resp.Rows))
	for _, row := range resp.Rows {
		if len(row) < 2 {
			continue
		}
		monthStr, ok := row[0].(string)
		if !ok {
			continue
		}
		month, parseErr := model.ParseMonth(monthStr)
		if parseErr != nil {
			c.logger.Warn("skipping unparseable month row", "group_id", groupID, "value", monthStr)
			continue
		}
		amount, valErr := metricValue(row[1])
		if valErr != nil {
			return nil, fmt.Errorf("group %s month %s: %w", groupID, month, valErr)
		}
		out[month] = model.NewRevenueObservation(groupID, month, amount)
	}

	c.logger.Debug("queried revenue range",
		"group_id", groupID,
		"region", region,
		"from", from.String(),
		"to", to.String(),
		"months_with_data", len(out))

	return out, nil
}

// ListGroups enumerates the content owner's channel groups, for filling in
// the registry configuration.
func (c *Client) ListGroups(ctx context.Context) ([]service.GroupInfo, error) {
	call := c.service.Groups.List().Mine(true)
	if c.config.OnBehalfOfContentOwner != "" {
		call = call.OnBehalfOfContentOwner(c.config.OnBehalfOfContentOwner)
	}

	resp, err := call.Context(ctx).Do()
	if err != nil {
		return nil, mapAPIError(err)
	}

	out := make([]service.GroupInfo, 0, len(resp.Items))
	for _, item := range resp.Items {
		title := item.Id
		if item.Snippet != nil && item.Snippet.Title != "" {
			title = item.Snippet.Title
		}
		out = append(out, service.GroupInfo{ID: item.Id, Title: title})
	}
	return out, nil
}

func (c *Client) filters(groupID string, region model.RegionFilter) string {
	parts := []string{"group==" + groupID}
	if country := region.CountryCode(); country != "" {
		parts = append(parts, "country=="+country)
	}
	return strings.Join(parts, ";")
}

func (c *Client) retryOptions() service.RetryOptions {
	return service.RetryOptions{
		MaxAttempts:  c.config.RetryAttempts,
		InitialDelay: c.config.RetryDelay,
		MaxDelay:     30 * time.Second,
		Multiplier:   2.0,
	}
}

// metricValue converts a metric cell from the API's untyped row format.
func metricValue(v any) (decimal.Decimal, error) {
	switch n := v.(type) {
	case float64:
		return decimal.NewFromFloat(n), nil
	case string:
		d, err := decimal.NewFromString(n)
		if err != nil {
			return decimal.Zero, fmt.Errorf("unexpected metric value %q: %w", n, err)
		}
		return d, nil
	default:
		return decimal.Zero, fmt.Errorf("unexpected metric value type %T", v)
	}
}
