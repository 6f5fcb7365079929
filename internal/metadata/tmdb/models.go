package tmdb

// FindResponse is the response from the TMDB /find endpoint.
type FindResponse struct {
	TVResults []TVResult `json:"tv_results"`
}

// SearchTVResponse is the response from TMDB TV search.
type SearchTVResponse struct {
	Page         int        `json:"page"`
	Results      []TVResult `json:"results"`
	TotalPages   int        `json:"total_pages"`
	TotalResults int        `json:"total_results"`
}

// TVResult is a TV series from TMDB search or find results.
type TVResult struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	OriginalName string  `json:"original_name"`
	Overview     string  `json:"overview"`
	FirstAirDate string  `json:"first_air_date"`
	PosterPath   *string `json:"poster_path"`
	BackdropPath *string `json:"backdrop_path"`
	VoteAverage  float64 `json:"vote_average"`
	VoteCount    int     `json:"vote_count"`
	Popularity   float64 `json:"popularity"`
}

// TVDetails is the detailed TV series info from TMDB, with the
// credits, external_ids, content_ratings and videos sub-resources
// appended in the same round trip.
type TVDetails struct {
	ID             int            `json:"id"`
	Name           string         `json:"name"`
	OriginalName   string         `json:"original_name"`
	Overview       string         `json:"overview"`
	FirstAirDate   string         `json:"first_air_date"`
	LastAirDate    string         `json:"last_air_date"`
	PosterPath     *string        `json:"poster_path"`
	BackdropPath   *string        `json:"backdrop_path"`
	VoteAverage    float64        `json:"vote_average"`
	VoteCount      int            `json:"vote_count"`
	Status         string         `json:"status"`
	Genres         []Genre        `json:"genres"`
	Networks       []Network      `json:"networks"`
	EpisodeRunTime []int          `json:"episode_run_time"`
	Seasons        []Season       `json:"seasons"`
	ExternalIDs    *ExternalIDs   `json:"external_ids,omitempty"`
	Credits        *Credits       `json:"credits,omitempty"`
	ContentRatings *RatingResults `json:"content_ratings,omitempty"`
	Videos         *VideoResults  `json:"videos,omitempty"`
}

// Genre represents a genre from TMDB.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Network represents a TV network from TMDB.
type Network struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	OriginCountry string `json:"origin_country"`
}

// Season represents a TV season stub from TMDB series details.
type Season struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Overview     string  `json:"overview"`
	AirDate      string  `json:"air_date"`
	EpisodeCount int     `json:"episode_count"`
	PosterPath   *string `json:"poster_path"`
	SeasonNumber int     `json:"season_number"`
}

// ExternalIDs contains external cross-references from TMDB.
type ExternalIDs struct {
	ImdbID   string `json:"imdb_id"`
	TvdbID   int    `json:"tvdb_id"`
	TvrageID int    `json:"tvrage_id"`
}

// Credits contains cast and crew lists from TMDB.
type Credits struct {
	Cast       []CastMember `json:"cast"`
	Crew       []CrewMember `json:"crew"`
	GuestStars []CastMember `json:"guest_stars,omitempty"`
}

// CastMember represents a cast member from TMDB credits.
type CastMember struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Character   string  `json:"character"`
	Order       int     `json:"order"`
	ProfilePath *string `json:"profile_path"`
}

// CrewMember represents a crew member from TMDB credits.
type CrewMember struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Job         string  `json:"job"`
	Department  string  `json:"department"`
	ProfilePath *string `json:"profile_path"`
}

// RatingResults wraps per-territory content ratings.
type RatingResults struct {
	Results []ContentRating `json:"results"`
}

// ContentRating is a single territory's content rating.
type ContentRating struct {
	Iso31661 string `json:"iso_3166_1"`
	Rating   string `json:"rating"`
}

// VideoResults wraps the appended videos sub-resource.
type VideoResults struct {
	Results []Video `json:"results"`
}

// Video represents a video (trailer, teaser, etc.) from TMDB.
type Video struct {
	Key      string `json:"key"`
	Site     string `json:"site"`
	Type     string `json:"type"`
	Name     string `json:"name"`
	Official bool   `json:"official"`
}

// SeasonDetails is the detailed season info from the
// /tv/{id}/season/{number} endpoint.
type SeasonDetails struct {
	ID           int              `json:"id"`
	Name         string           `json:"name"`
	Overview     string           `json:"overview"`
	AirDate      string           `json:"air_date"`
	PosterPath   *string          `json:"poster_path"`
	SeasonNumber int              `json:"season_number"`
	Episodes     []EpisodeDetails `json:"episodes"`
}

// EpisodeDetails is an episode record. Season listings carry the bare
// fields; the per-episode endpoint additionally appends credits and
// external ids.
type EpisodeDetails struct {
	ID            int          `json:"id"`
	Name          string       `json:"name"`
	Overview      string       `json:"overview"`
	AirDate       string       `json:"air_date"`
	EpisodeNumber int          `json:"episode_number"`
	SeasonNumber  int          `json:"season_number"`
	StillPath     *string      `json:"still_path"`
	VoteAverage   float64      `json:"vote_average"`
	VoteCount     int          `json:"vote_count"`
	ExternalIDs   *ExternalIDs `json:"external_ids,omitempty"`
	Credits       *Credits     `json:"credits,omitempty"`
}

// ErrorResponse is an error from the TMDB API.
type ErrorResponse struct {
	StatusCode    int    `json:"status_code"`
	StatusMessage string `json:"status_message"`
	Success       bool   `json:"success"`
}
