package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/sidecarr/sidecarr/internal/config"
)

var (
	ErrAPIKeyMissing   = errors.New("TMDB API key is not configured")
	ErrSeriesNotFound  = errors.New("series not found")
	ErrSeasonNotFound  = errors.New("season not found")
	ErrEpisodeNotFound = errors.New("episode not found")
	ErrAPIError        = errors.New("TMDB API error")
)

// Client is a TMDB API client.
type Client struct {
	httpClient *http.Client
	config     config.TMDBConfig
	logger     zerolog.Logger
}

// NewClient creates a new TMDB client.
func NewClient(cfg config.TMDBConfig, logger zerolog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
		config: cfg,
		logger: logger.With().Str("component", "tmdb").Logger(),
	}
}

// Name returns the provider name.
func (c *Client) Name() string {
	return "tmdb"
}

// IsConfigured returns true if the API key is set.
func (c *Client) IsConfigured() bool {
	return c.config.APIKey != ""
}

// Locale returns the provider's configured locale.
func (c *Client) Locale() string {
	return c.config.Locale
}

// FindByTvdbID resolves a tvdb series id to the TMDB-native id via the
// /find cross-reference endpoint. Zero matches means the series exists
// in the tvdb namespace but is not linked on TMDB.
func (c *Client) FindByTvdbID(ctx context.Context, tvdbID int) (int, error) {
	if !c.IsConfigured() {
		return 0, ErrAPIKeyMissing
	}

	endpoint := fmt.Sprintf("%s/find/%d", c.config.BaseURL, tvdbID)
	params := url.Values{}
	params.Set("api_key", c.config.APIKey)
	params.Set("external_source", "tvdb_id")

	var response FindResponse
	if err := c.doRequest(ctx, endpoint, params, &response); err != nil {
		return 0, err
	}

	if len(response.TVResults) == 0 {
		return 0, ErrSeriesNotFound
	}

	tmdbID := response.TVResults[0].ID

	c.logger.Debug().
		Int("tvdbId", tvdbID).
		Int("tmdbId", tmdbID).
		Msg("Resolved tvdb id")

	return tmdbID, nil
}

// GetSeries fetches a series record with credits, external ids,
// content ratings and videos appended in one round trip.
func (c *Client) GetSeries(ctx context.Context, id int) (*TVDetails, error) {
	if !c.IsConfigured() {
		return nil, ErrAPIKeyMissing
	}

	endpoint := fmt.Sprintf("%s/tv/%d", c.config.BaseURL, id)
	params := url.Values{}
	params.Set("api_key", c.config.APIKey)
	params.Set("append_to_response", "credits,external_ids,content_ratings,videos")
	params.Set("language", c.config.Locale)

	var details TVDetails
	if err := c.doRequest(ctx, endpoint, params, &details); err != nil {
		return nil, err
	}

	c.logger.Debug().
		Int("id", id).
		Str("title", details.Name).
		Int("seasons", len(details.Seasons)).
		Msg("Got TV series details")

	return &details, nil
}

// GetSeason fetches one season's episode list.
func (c *Client) GetSeason(ctx context.Context, seriesID, seasonNumber int) (*SeasonDetails, error) {
	if !c.IsConfigured() {
		return nil, ErrAPIKeyMissing
	}

	endpoint := fmt.Sprintf("%s/tv/%d/season/%d", c.config.BaseURL, seriesID, seasonNumber)
	params := url.Values{}
	params.Set("api_key", c.config.APIKey)
	params.Set("language", c.config.Locale)

	var details SeasonDetails
	if err := c.doRequest(ctx, endpoint, params, &details); err != nil {
		if errors.Is(err, ErrSeriesNotFound) {
			return nil, ErrSeasonNotFound
		}
		return nil, err
	}

	c.logger.Debug().
		Int("seriesId", seriesID).
		Int("seasonNumber", seasonNumber).
		Int("episodes", len(details.Episodes)).
		Msg("Got season details")

	return &details, nil
}

// GetEpisode fetches a single episode with credits and external ids
// appended in the same round trip.
func (c *Client) GetEpisode(ctx context.Context, seriesID, season, episode int) (*EpisodeDetails, error) {
	if !c.IsConfigured() {
		return nil, ErrAPIKeyMissing
	}

	endpoint := fmt.Sprintf("%s/tv/%d/season/%d/episode/%d", c.config.BaseURL, seriesID, season, episode)
	params := url.Values{}
	params.Set("api_key", c.config.APIKey)
	params.Set("append_to_response", "credits,external_ids")
	params.Set("language", c.config.Locale)

	var details EpisodeDetails
	if err := c.doRequest(ctx, endpoint, params, &details); err != nil {
		if errors.Is(err, ErrSeriesNotFound) {
			return nil, ErrEpisodeNotFound
		}
		return nil, err
	}

	c.logger.Debug().
		Int("seriesId", seriesID).
		Int("season", season).
		Int("episode", episode).
		Msg("Got episode details")

	return &details, nil
}

// SearchSeries searches for TV series by free-text query.
func (c *Client) SearchSeries(ctx context.Context, query string) ([]TVResult, error) {
	if !c.IsConfigured() {
		return nil, ErrAPIKeyMissing
	}

	endpoint := fmt.Sprintf("%s/search/tv", c.config.BaseURL)
	params := url.Values{}
	params.Set("api_key", c.config.APIKey)
	params.Set("query", query)
	params.Set("language", c.config.Locale)

	var response SearchTVResponse
	if err := c.doRequest(ctx, endpoint, params, &response); err != nil {
		return nil, err
	}

	c.logger.Debug().
		Str("query", query).
		Int("results", len(response.Results)).
		Msg("TV search completed")

	return response.Results, nil
}

// GetImageURL returns a full image URL for a given path and size.
// Size options: "w92", "w154", "w185", "w300", "w500", "original"
func (c *Client) GetImageURL(path string, size string) string {
	if path == "" {
		return ""
	}
	return fmt.Sprintf("%s/%s%s", c.config.ImageBaseURL, size, path)
}

// doRequest performs an HTTP GET request and decodes the JSON response.
func (c *Client) doRequest(ctx context.Context, endpoint string, params url.Values, result interface{}) error {
	reqURL := endpoint
	if len(params) > 0 {
		reqURL = fmt.Sprintf("%s?%s", endpoint, params.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("url", endpoint).Msg("HTTP request failed")
		return fmt.Errorf("%w: %v", ErrAPIError, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errResp ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil {
			c.logger.Error().
				Int("status", resp.StatusCode).
				Str("message", errResp.StatusMessage).
				Msg("TMDB API error")
		}

		switch resp.StatusCode {
		case http.StatusNotFound:
			return ErrSeriesNotFound
		case http.StatusUnauthorized:
			return fmt.Errorf("%w: invalid API key", ErrAPIError)
		default:
			return fmt.Errorf("%w: status %d", ErrAPIError, resp.StatusCode)
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrAPIError, err)
	}

	return nil
}
