package tv

import "time"

// SeriesStatus is the airing status of a series.
type SeriesStatus string

const (
	StatusContinuing SeriesStatus = "continuing"
	StatusEnded      SeriesStatus = "ended"
	StatusUpcoming   SeriesStatus = "upcoming"
)

// SeriesType classifies how a series is numbered and scheduled.
type SeriesType string

const (
	TypeStandard SeriesType = "standard"
	TypeDaily    SeriesType = "daily"
	TypeAnime    SeriesType = "anime"
)

// CoverType is the artwork category vocabulary.
type CoverType string

const (
	CoverPoster     CoverType = "poster"
	CoverBanner     CoverType = "banner"
	CoverFanart     CoverType = "fanart"
	CoverClearArt   CoverType = "clearart"
	CoverClearLogo  CoverType = "clearlogo"
	CoverLandscape  CoverType = "landscape"
	CoverScreenshot CoverType = "screenshot"
	CoverHeadshot   CoverType = "headshot"
)

// Image is a single piece of artwork with its category.
type Image struct {
	CoverType CoverType `json:"coverType"`
	URL       string    `json:"url"`
}

// Ratings holds a vote count and average. A zero Votes value means no
// rating is known; Value is only meaningful when Votes > 0.
type Ratings struct {
	Votes int     `json:"votes"`
	Value float64 `json:"value"`
}

// HasValue reports whether a rating is actually present.
func (r Ratings) HasValue() bool {
	return r.Votes > 0
}

// Actor is a cast member with billing order.
type Actor struct {
	Name      string `json:"name"`
	Character string `json:"character,omitempty"`
	Order     int    `json:"order"`
	ImageURL  string `json:"imageUrl,omitempty"`
}

// CrewMember is a crew credit with job and department.
type CrewMember struct {
	Name       string `json:"name"`
	Job        string `json:"job,omitempty"`
	Department string `json:"department,omitempty"`
	ImageURL   string `json:"imageUrl,omitempty"`
}

// Series is the canonical merged series record produced by the
// metadata mapper and consumed by the nfo render engine.
type Series struct {
	ID            int64        `json:"id"`
	TvdbID        int          `json:"tvdbId,omitempty"`
	TmdbID        int          `json:"tmdbId,omitempty"`
	ImdbID        string       `json:"imdbId,omitempty"`
	Title         string       `json:"title"`
	OriginalTitle string       `json:"originalTitle,omitempty"`
	CleanTitle    string       `json:"cleanTitle,omitempty"`
	SortTitle     string       `json:"sortTitle,omitempty"`
	TitleSlug     string       `json:"titleSlug,omitempty"`
	Overview      string       `json:"overview,omitempty"`
	Year          int          `json:"year,omitempty"`
	FirstAired    *time.Time   `json:"firstAired,omitempty"`
	LastAired     *time.Time   `json:"lastAired,omitempty"`
	Status        SeriesStatus `json:"status"`
	SeriesType    SeriesType   `json:"seriesType"`
	Certification string       `json:"certification,omitempty"`
	Genres        []string     `json:"genres,omitempty"`
	Network       string       `json:"network,omitempty"`
	Runtime       int          `json:"runtime,omitempty"`
	Ratings       Ratings      `json:"ratings"`
	TrailerURL    string       `json:"trailerUrl,omitempty"`
	Actors        []Actor      `json:"actors,omitempty"`
	Crew          []CrewMember `json:"crew,omitempty"`
	Images        []Image      `json:"images,omitempty"`
	Seasons       []Season     `json:"seasons,omitempty"`
	Path          string       `json:"path,omitempty"`
	Monitored     bool         `json:"monitored"`
}

// Season is a canonical season record.
type Season struct {
	SeasonNumber int     `json:"seasonNumber"`
	Name         string  `json:"name,omitempty"`
	Images       []Image `json:"images,omitempty"`
	Monitored    bool    `json:"monitored"`
}

// Episode is a canonical episode record. The credit and external id
// fields are only populated by the detailed per-episode lookup.
type Episode struct {
	SeriesID      int64      `json:"seriesId,omitempty"`
	TmdbID        int        `json:"tmdbId,omitempty"`
	TvdbID        int        `json:"tvdbId,omitempty"`
	ImdbID        string     `json:"imdbId,omitempty"`
	TvRageID      int        `json:"tvRageId,omitempty"`
	SeasonNumber  int        `json:"seasonNumber"`
	EpisodeNumber int        `json:"episodeNumber"`
	Title         string     `json:"title"`
	Overview      string     `json:"overview,omitempty"`
	AirDate       string     `json:"airDate,omitempty"`
	AirDateUTC    *time.Time `json:"airDateUtc,omitempty"`
	Ratings       Ratings    `json:"ratings"`
	Images        []Image      `json:"images,omitempty"`
	Actors        []Actor      `json:"actors,omitempty"`
	Crew          []CrewMember `json:"crew,omitempty"`

	// Special-episode display ordering hints, season zero only.
	AiredAfterSeason   *int `json:"airedAfterSeason,omitempty"`
	AiredBeforeSeason  *int `json:"airedBeforeSeason,omitempty"`
	AiredBeforeEpisode *int `json:"airedBeforeEpisode,omitempty"`
}

// EpisodeFile is an on-disk media file and the episodes it contains.
// Multi-episode files carry more than one episode.
type EpisodeFile struct {
	Path         string    `json:"path"`
	RelativePath string    `json:"relativePath,omitempty"`
	Episodes     []Episode `json:"episodes"`
}

// Screenshot returns the first screenshot image of the file's first
// episode, or nil when none is available.
func (f *EpisodeFile) Screenshot() *Image {
	if len(f.Episodes) == 0 {
		return nil
	}
	for i := range f.Episodes[0].Images {
		if f.Episodes[0].Images[i].CoverType == CoverScreenshot {
			return &f.Episodes[0].Images[i]
		}
	}
	return nil
}
