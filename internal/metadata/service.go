package metadata

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/sidecarr/sidecarr/internal/library/tv"
	"github.com/sidecarr/sidecarr/internal/metadata/fanart"
	"github.com/sidecarr/sidecarr/internal/metadata/tmdb"
)

// seasonFetchWorkers bounds concurrent season listing requests against
// the provider.
const seasonFetchWorkers = 4

// Service aggregates the primary and secondary providers into
// canonical series and episode records.
type Service struct {
	tmdb   TMDBClient
	fanart FanartClient
	daily  DailySeriesChecker
	finder SeriesFinder
	logger zerolog.Logger
}

// NewService creates the aggregation service. The daily checker and
// local finder are optional.
func NewService(tmdbClient TMDBClient, fanartClient FanartClient, daily DailySeriesChecker, finder SeriesFinder, logger zerolog.Logger) *Service {
	return &Service{
		tmdb:   tmdbClient,
		fanart: fanartClient,
		daily:  daily,
		finder: finder,
		logger: logger.With().Str("component", "metadata").Logger(),
	}
}

// GetSeriesInfo resolves a catalog id into the canonical series record
// and its full episode list. Artwork from the secondary provider is
// fetched concurrently with the show, and a secondary failure only
// degrades the result, it never fails the lookup.
func (s *Service) GetSeriesInfo(ctx context.Context, tvdbID int) (*tv.Series, []tv.Episode, error) {
	tmdbID, err := s.tmdb.FindByTvdbID(ctx, tvdbID)
	if err != nil {
		return nil, nil, s.wrapProviderError(tvdbID, err)
	}

	artCh := make(chan *fanart.ShowArt, 1)
	go func() {
		artCh <- s.fetchShowArt(ctx, tvdbID)
	}()

	show, err := s.tmdb.GetSeries(ctx, tmdbID)
	if err != nil {
		return nil, nil, s.wrapProviderError(tvdbID, err)
	}

	episodes, err := s.fetchEpisodes(ctx, tmdbID, show.Seasons)
	if err != nil {
		return nil, nil, &ProviderError{TvdbID: tvdbID, Err: err}
	}

	art := <-artCh
	opts := MapOptions{
		Locale:   s.tmdb.Locale(),
		Daily:    s.isDaily(ctx, tvdbID),
		ImageURL: s.tmdb.GetImageURL,
	}
	series := MapSeries(show, art, opts)
	if series.TvdbID == 0 {
		series.TvdbID = tvdbID
	}
	s.logger.Debug().
		Int("tvdbId", tvdbID).
		Int("tmdbId", tmdbID).
		Int("episodes", len(episodes)).
		Msg("Resolved series")
	return series, episodes, nil
}

// GetEpisodeInfo fetches the detailed record for one episode, with
// credits and external ids.
func (s *Service) GetEpisodeInfo(ctx context.Context, tmdbID, season, episode int) (*tv.Episode, error) {
	details, err := s.tmdb.GetEpisode(ctx, tmdbID, season, episode)
	if err != nil {
		if errors.Is(err, tmdb.ErrEpisodeNotFound) {
			return nil, &EpisodeNotFoundError{TmdbID: tmdbID, Season: season, Episode: episode}
		}
		return nil, &ProviderError{Err: err}
	}
	opts := MapOptions{Locale: s.tmdb.Locale(), ImageURL: s.tmdb.GetImageURL}
	mapped := MapEpisode(details, opts)
	return &mapped, nil
}

// SearchSeries resolves a free-text query into series records. A
// "tvdb:" or "tvdbid:" prefix bypasses text search and looks up by
// catalog id; a malformed id yields an empty result, not an error.
func (s *Service) SearchSeries(ctx context.Context, query string) ([]*tv.Series, error) {
	lower := strings.ToLower(strings.TrimSpace(query))
	for _, prefix := range []string{"tvdbid:", "tvdb:"} {
		if !strings.HasPrefix(lower, prefix) {
			continue
		}
		id, err := strconv.Atoi(strings.TrimSpace(lower[len(prefix):]))
		if err != nil || id <= 0 {
			return nil, nil
		}
		return s.searchByTvdbID(ctx, id)
	}

	results, err := s.tmdb.SearchSeries(ctx, query)
	if err != nil {
		return nil, &ProviderError{Err: err}
	}
	var out []*tv.Series
	for _, result := range results {
		series, err := s.lookupResult(ctx, result)
		if err != nil {
			s.logger.Warn().Err(err).Int("tmdbId", result.ID).Msg("Skipping search result")
			continue
		}
		out = append(out, series)
	}
	return out, nil
}

func (s *Service) searchByTvdbID(ctx context.Context, tvdbID int) ([]*tv.Series, error) {
	if s.finder != nil {
		if existing, err := s.finder.FindByTvdbID(ctx, tvdbID); err == nil && existing != nil {
			return []*tv.Series{existing}, nil
		}
	}
	series, _, err := s.GetSeriesInfo(ctx, tvdbID)
	if err != nil {
		if errors.Is(err, tmdb.ErrSeriesNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return []*tv.Series{series}, nil
}

// lookupResult expands a search hit into a full record. Known series
// come from the local catalog, the rest get a detail fetch and a
// secondary art lookup.
func (s *Service) lookupResult(ctx context.Context, result tmdb.TVResult) (*tv.Series, error) {
	if s.finder != nil {
		if existing, err := s.finder.FindByTmdbID(ctx, result.ID); err == nil && existing != nil {
			return existing, nil
		}
	}
	show, err := s.tmdb.GetSeries(ctx, result.ID)
	if err != nil {
		return nil, err
	}
	tvdbID := 0
	if show.ExternalIDs != nil {
		tvdbID = show.ExternalIDs.TvdbID
	}
	var art *fanart.ShowArt
	if tvdbID > 0 {
		art = s.fetchShowArt(ctx, tvdbID)
	}
	opts := MapOptions{
		Locale:   s.tmdb.Locale(),
		Daily:    s.isDaily(ctx, tvdbID),
		ImageURL: s.tmdb.GetImageURL,
	}
	return MapSeries(show, art, opts), nil
}

// fetchEpisodes lists every season's episodes with a bounded worker
// pool and returns them in season, then episode order.
func (s *Service) fetchEpisodes(ctx context.Context, tmdbID int, seasons []tmdb.Season) ([]tv.Episode, error) {
	if len(seasons) == 0 {
		return nil, nil
	}
	opts := MapOptions{Locale: s.tmdb.Locale(), ImageURL: s.tmdb.GetImageURL}

	type seasonResult struct {
		index    int
		episodes []tv.Episode
		err      error
	}
	sem := make(chan struct{}, seasonFetchWorkers)
	results := make([]seasonResult, len(seasons))
	var wg sync.WaitGroup
	for i, season := range seasons {
		wg.Add(1)
		go func(i, number int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			details, err := s.tmdb.GetSeason(ctx, tmdbID, number)
			if err != nil {
				results[i] = seasonResult{index: i, err: err}
				return
			}
			eps := make([]tv.Episode, 0, len(details.Episodes))
			for j := range details.Episodes {
				eps = append(eps, MapEpisode(&details.Episodes[j], opts))
			}
			results[i] = seasonResult{index: i, episodes: eps}
		}(i, season.SeasonNumber)
	}
	wg.Wait()

	var episodes []tv.Episode
	for _, result := range results {
		if result.err != nil {
			return nil, result.err
		}
		episodes = append(episodes, result.episodes...)
	}
	sort.SliceStable(episodes, func(i, j int) bool {
		if episodes[i].SeasonNumber != episodes[j].SeasonNumber {
			return episodes[i].SeasonNumber < episodes[j].SeasonNumber
		}
		return episodes[i].EpisodeNumber < episodes[j].EpisodeNumber
	})
	return episodes, nil
}

func (s *Service) fetchShowArt(ctx context.Context, tvdbID int) *fanart.ShowArt {
	art, err := s.fanart.GetShowArt(ctx, tvdbID)
	if err != nil {
		s.logger.Warn().Err(err).Int("tvdbId", tvdbID).Msg("Secondary art lookup failed")
		return nil
	}
	return art
}

func (s *Service) isDaily(ctx context.Context, tvdbID int) bool {
	if s.daily == nil || tvdbID <= 0 {
		return false
	}
	daily, err := s.daily.IsDailySeries(ctx, tvdbID)
	if err != nil {
		s.logger.Warn().Err(err).Int("tvdbId", tvdbID).Msg("Daily series lookup failed")
		return false
	}
	return daily
}

func (s *Service) wrapProviderError(tvdbID int, err error) error {
	if errors.Is(err, tmdb.ErrSeriesNotFound) {
		return &SeriesNotFoundError{TvdbID: tvdbID}
	}
	if errors.Is(err, tmdb.ErrAPIKeyMissing) {
		return err
	}
	return &ProviderError{TvdbID: tvdbID, Err: err}
}
