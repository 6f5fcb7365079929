// Package fanart fetches supplementary artwork from fanart.tv. The
// provider is strictly additive: an unconfigured or failing client is
// treated as "no art", never as an error.
package fanart

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/sidecarr/sidecarr/internal/config"
)

// Client is a fanart.tv API client keyed by tvdb series id.
type Client struct {
	httpClient *http.Client
	config     config.FanartConfig
	logger     zerolog.Logger
}

// NewClient creates a new fanart.tv client.
func NewClient(cfg config.FanartConfig, logger zerolog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
		config: cfg,
		logger: logger.With().Str("component", "fanart").Logger(),
	}
}

// Name returns the provider name.
func (c *Client) Name() string {
	return "fanart"
}

// IsConfigured returns true if the API key is set.
func (c *Client) IsConfigured() bool {
	return c.config.APIKey != ""
}

// GetShowArt fetches the artwork collections for a show. It returns
// (nil, nil) when the provider is unconfigured; any transport or
// decode failure is logged and returned so the caller can downgrade it.
func (c *Client) GetShowArt(ctx context.Context, tvdbID int) (*ShowArt, error) {
	if !c.IsConfigured() {
		return nil, nil
	}

	reqURL := fmt.Sprintf("%s/tv/%d?api_key=%s", c.config.BaseURL, tvdbID, c.config.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Int("tvdbId", tvdbID).Msg("Fanart request failed")
		return nil, fmt.Errorf("fanart request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Error().Int("status", resp.StatusCode).Int("tvdbId", tvdbID).Msg("Fanart API error")
		return nil, fmt.Errorf("fanart API error: status %d", resp.StatusCode)
	}

	var art ShowArt
	if err := json.NewDecoder(resp.Body).Decode(&art); err != nil {
		return nil, fmt.Errorf("failed to decode fanart response: %w", err)
	}

	c.logger.Debug().
		Int("tvdbId", tvdbID).
		Int("banners", len(art.TVBanner)).
		Int("logos", len(art.HDTVLogo)).
		Msg("Got show art")

	return &art, nil
}
