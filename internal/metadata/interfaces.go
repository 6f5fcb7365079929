package metadata

import (
	"context"

	"github.com/sidecarr/sidecarr/internal/library/tv"
	"github.com/sidecarr/sidecarr/internal/metadata/fanart"
	"github.com/sidecarr/sidecarr/internal/metadata/tmdb"
)

// TMDBClient defines the interface for primary provider operations.
type TMDBClient interface {
	Name() string
	IsConfigured() bool
	Locale() string
	FindByTvdbID(ctx context.Context, tvdbID int) (int, error)
	GetSeries(ctx context.Context, id int) (*tmdb.TVDetails, error)
	GetSeason(ctx context.Context, seriesID, seasonNumber int) (*tmdb.SeasonDetails, error)
	GetEpisode(ctx context.Context, seriesID, season, episode int) (*tmdb.EpisodeDetails, error)
	SearchSeries(ctx context.Context, query string) ([]tmdb.TVResult, error)
	GetImageURL(path string, size string) string
}

// FanartClient defines the interface for the secondary art provider.
type FanartClient interface {
	Name() string
	IsConfigured() bool
	GetShowArt(ctx context.Context, tvdbID int) (*fanart.ShowArt, error)
}

// DailySeriesChecker reports whether a series airs daily. Keyed by the
// catalog (tvdb) id.
type DailySeriesChecker interface {
	IsDailySeries(ctx context.Context, tvdbID int) (bool, error)
}

// SeriesFinder looks up already-known series in the local catalog.
type SeriesFinder interface {
	FindByTvdbID(ctx context.Context, tvdbID int) (*tv.Series, error)
	FindByTmdbID(ctx context.Context, tmdbID int) (*tv.Series, error)
}
