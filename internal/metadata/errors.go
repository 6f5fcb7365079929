package metadata

import (
	"fmt"

	"github.com/sidecarr/sidecarr/internal/metadata/tmdb"
)

// SeriesNotFoundError indicates the provider has no series for the given
// catalog id.
type SeriesNotFoundError struct {
	TvdbID int
}

func (e *SeriesNotFoundError) Error() string {
	return fmt.Sprintf("series with tvdb id %d was not found", e.TvdbID)
}

func (e *SeriesNotFoundError) Unwrap() error {
	return tmdb.ErrSeriesNotFound
}

// EpisodeNotFoundError indicates the provider has the series but not the
// requested episode.
type EpisodeNotFoundError struct {
	TmdbID  int
	Season  int
	Episode int
}

func (e *EpisodeNotFoundError) Error() string {
	return fmt.Sprintf("episode %dx%d of series %d was not found", e.Season, e.Episode, e.TmdbID)
}

func (e *EpisodeNotFoundError) Unwrap() error {
	return tmdb.ErrEpisodeNotFound
}

// ProviderError wraps a transient or unexpected provider failure, keeping
// the identifier that was being resolved.
type ProviderError struct {
	TvdbID int
	Err    error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider request for tvdb id %d failed: %v", e.TvdbID, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
