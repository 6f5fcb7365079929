package metadata

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/sidecarr/sidecarr/internal/library/tv"
	"github.com/sidecarr/sidecarr/internal/metadata/fanart"
	"github.com/sidecarr/sidecarr/internal/metadata/tmdb"
)

const defaultImageBase = "https://image.tmdb.org/t/p"

// MapOptions parameterizes the pure mapping functions. ImageURL builds
// a full artwork URL from a provider path and size; when nil a default
// builder against the public image host is used.
type MapOptions struct {
	Locale   string
	Daily    bool
	ImageURL func(path, size string) string
}

func (o MapOptions) imageURL(path string) string {
	if path == "" {
		return ""
	}
	if o.ImageURL != nil {
		return o.ImageURL(path, "original")
	}
	return defaultImageBase + "/original" + path
}

// MapSeries merges a provider show record and optional fanart into the
// canonical series record. It performs no I/O: the same inputs always
// produce the same record.
func MapSeries(show *tmdb.TVDetails, art *fanart.ShowArt, opts MapOptions) *tv.Series {
	series := &tv.Series{
		TmdbID:        show.ID,
		Title:         show.Name,
		CleanTitle:    tv.CleanSeriesTitle(show.Name),
		SortTitle:     tv.NormalizeSortTitle(show.Name),
		TitleSlug:     tv.TitleSlug(show.ID, show.Name),
		Overview:      show.Overview,
		Status:        mapSeriesStatus(show.Status),
		SeriesType:    tv.TypeStandard,
		Certification: mapCertification(show.ContentRatings),
		Ratings:       mapRatings(show.VoteCount, show.VoteAverage),
		Monitored:     true,
	}
	if show.OriginalName != show.Name {
		series.OriginalTitle = show.OriginalName
	}
	if opts.Daily {
		series.SeriesType = tv.TypeDaily
	}
	if show.ExternalIDs != nil {
		series.TvdbID = show.ExternalIDs.TvdbID
		series.ImdbID = show.ExternalIDs.ImdbID
	}
	if t := parseAirDate(show.FirstAirDate); t != nil {
		series.FirstAired = t
		series.Year = t.Year()
	}
	series.LastAired = parseAirDate(show.LastAirDate)
	if len(show.Networks) > 0 {
		series.Network = show.Networks[0].Name
	}
	if len(show.EpisodeRunTime) > 0 {
		total := 0
		for _, minutes := range show.EpisodeRunTime {
			total += minutes
		}
		series.Runtime = total / len(show.EpisodeRunTime)
	}
	for _, genre := range show.Genres {
		series.Genres = append(series.Genres, genre.Name)
	}
	if show.Videos != nil {
		series.TrailerURL = mapTrailer(show.Videos.Results)
	}
	if show.Credits != nil {
		series.Actors = mapActors(show.Credits.Cast, opts)
		series.Crew = mapCrew(show.Credits.Crew, opts)
	}
	series.Images = mapSeriesImages(show, art, opts)
	series.Seasons = mapSeasons(show.Seasons, art, opts)
	return series
}

// MapEpisode converts a provider episode record into the canonical
// form. Season listings carry the bare fields; records from the
// per-episode endpoint additionally map external ids and credits.
func MapEpisode(ep *tmdb.EpisodeDetails, opts MapOptions) tv.Episode {
	out := tv.Episode{
		TmdbID:        ep.ID,
		SeasonNumber:  ep.SeasonNumber,
		EpisodeNumber: ep.EpisodeNumber,
		Title:         ep.Name,
		Overview:      ep.Overview,
		AirDate:       ep.AirDate,
		AirDateUTC:    parseAirDate(ep.AirDate),
		Ratings:       mapRatings(ep.VoteCount, ep.VoteAverage),
	}
	if ep.StillPath != nil && *ep.StillPath != "" {
		out.Images = []tv.Image{{CoverType: tv.CoverScreenshot, URL: opts.imageURL(*ep.StillPath)}}
	}
	if ep.ExternalIDs != nil {
		out.TvdbID = ep.ExternalIDs.TvdbID
		out.ImdbID = ep.ExternalIDs.ImdbID
		out.TvRageID = ep.ExternalIDs.TvrageID
	}
	if ep.Credits != nil {
		cast := append([]tmdb.CastMember(nil), ep.Credits.Cast...)
		cast = append(cast, ep.Credits.GuestStars...)
		out.Actors = mapActors(cast, opts)
		out.Crew = mapCrew(ep.Credits.Crew, opts)
	}
	return out
}

// mapSeriesStatus collapses the provider's free-form status into the
// canonical three-value vocabulary. Unknown strings mean the show is
// still running.
func mapSeriesStatus(status string) tv.SeriesStatus {
	switch strings.ToLower(status) {
	case "ended", "canceled":
		return tv.StatusEnded
	case "upcoming":
		return tv.StatusUpcoming
	default:
		return tv.StatusContinuing
	}
}

// mapRatings keeps a zero vote count meaning "no rating known".
func mapRatings(votes int, value float64) tv.Ratings {
	if votes == 0 {
		return tv.Ratings{}
	}
	return tv.Ratings{Votes: votes, Value: value}
}

// mapCertification picks the ES territory rating first, rewritten onto
// the ES-* scale. Other territories are only consulted when the ES
// entry is absent or "NR"; an unrecognized ES token yields no
// certification at all.
func mapCertification(ratings *tmdb.RatingResults) string {
	if ratings == nil || len(ratings.Results) == 0 {
		return ""
	}
	if cert := findRating(ratings.Results, "ES"); cert != "" && !strings.EqualFold(cert, "NR") {
		return mapSpanishCertification(cert)
	}
	if cert := findRating(ratings.Results, "US"); cert != "" {
		return cert
	}
	return ratings.Results[0].Rating
}

func findRating(results []tmdb.ContentRating, territory string) string {
	for _, r := range results {
		if r.Iso31661 == territory {
			return r.Rating
		}
	}
	return ""
}

func mapSpanishCertification(rating string) string {
	switch strings.ToUpper(rating) {
	case "INFANTIL", "TP":
		return "ES-APTA"
	case "7":
		return "ES-7"
	case "10", "12", "13":
		return "ES-12"
	case "16":
		return "ES-16"
	case "18", "X":
		return "ES-18"
	default:
		return ""
	}
}

// mapTrailer returns a watch URL for the first trailer. A first
// trailer hosted elsewhere than YouTube or Vimeo yields no URL; later
// trailers are never considered.
func mapTrailer(videos []tmdb.Video) string {
	for _, v := range videos {
		if v.Type != "Trailer" {
			continue
		}
		switch v.Site {
		case "YouTube":
			return "https://www.youtube.com/watch?v=" + v.Key
		case "Vimeo":
			return "https://vimeo.com/" + v.Key
		}
		break
	}
	return ""
}

func mapActors(cast []tmdb.CastMember, opts MapOptions) []tv.Actor {
	if len(cast) == 0 {
		return nil
	}
	actors := make([]tv.Actor, 0, len(cast))
	for _, member := range cast {
		actor := tv.Actor{
			Name:      member.Name,
			Character: member.Character,
			Order:     member.Order,
		}
		if member.ProfilePath != nil {
			actor.ImageURL = opts.imageURL(*member.ProfilePath)
		}
		actors = append(actors, actor)
	}
	sort.SliceStable(actors, func(i, j int) bool { return actors[i].Order < actors[j].Order })
	return actors
}

func mapCrew(crew []tmdb.CrewMember, opts MapOptions) []tv.CrewMember {
	if len(crew) == 0 {
		return nil
	}
	out := make([]tv.CrewMember, 0, len(crew))
	for _, member := range crew {
		cm := tv.CrewMember{
			Name:       member.Name,
			Job:        member.Job,
			Department: member.Department,
		}
		if member.ProfilePath != nil {
			cm.ImageURL = opts.imageURL(*member.ProfilePath)
		}
		out = append(out, cm)
	}
	return out
}

// mapSeriesImages assembles show-level artwork: poster and fanart from
// the primary provider, banner, clearart, clearlogo and landscape from
// the secondary one when present.
func mapSeriesImages(show *tmdb.TVDetails, art *fanart.ShowArt, opts MapOptions) []tv.Image {
	var images []tv.Image
	if show.PosterPath != nil && *show.PosterPath != "" {
		images = append(images, tv.Image{CoverType: tv.CoverPoster, URL: opts.imageURL(*show.PosterPath)})
	}
	if show.BackdropPath != nil && *show.BackdropPath != "" {
		images = append(images, tv.Image{CoverType: tv.CoverFanart, URL: opts.imageURL(*show.BackdropPath)})
	}
	if art == nil {
		return images
	}
	lang := opts.Locale
	if best := fanart.BestArt(art.TVBanner, lang); best != nil {
		images = append(images, tv.Image{CoverType: tv.CoverBanner, URL: best.URL})
	}
	if best := fanart.BestArt(art.HDClearArt, lang); best != nil {
		images = append(images, tv.Image{CoverType: tv.CoverClearArt, URL: best.URL})
	}
	if best := fanart.BestArt(art.HDTVLogo, lang); best != nil {
		images = append(images, tv.Image{CoverType: tv.CoverClearLogo, URL: best.URL})
	}
	if best := fanart.BestArt(art.TVThumb, lang); best != nil {
		images = append(images, tv.Image{CoverType: tv.CoverLandscape, URL: best.URL})
	}
	return images
}

func mapSeasons(seasons []tmdb.Season, art *fanart.ShowArt, opts MapOptions) []tv.Season {
	if len(seasons) == 0 {
		return nil
	}
	out := make([]tv.Season, 0, len(seasons))
	for _, season := range seasons {
		mapped := tv.Season{
			SeasonNumber: season.SeasonNumber,
			Name:         season.Name,
			Monitored:    season.SeasonNumber > 0,
		}
		if season.PosterPath != nil && *season.PosterPath != "" {
			mapped.Images = append(mapped.Images, tv.Image{CoverType: tv.CoverPoster, URL: opts.imageURL(*season.PosterPath)})
		}
		if art != nil {
			key := strconv.Itoa(season.SeasonNumber)
			if best := fanart.BestArt(fanart.ForSeason(art.SeasonBanner, key), opts.Locale); best != nil {
				mapped.Images = append(mapped.Images, tv.Image{CoverType: tv.CoverBanner, URL: best.URL})
			}
			if best := fanart.BestArt(fanart.ForSeason(art.SeasonThumb, key), opts.Locale); best != nil {
				mapped.Images = append(mapped.Images, tv.Image{CoverType: tv.CoverLandscape, URL: best.URL})
			}
		}
		out = append(out, mapped)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].SeasonNumber < out[j].SeasonNumber })
	return out
}

func parseAirDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil
	}
	t = t.UTC()
	return &t
}

// SearchResultSummary is a compact one-line description used by the
// CLI search output.
func SearchResultSummary(s *tv.Series) string {
	year := ""
	if s.Year > 0 {
		year = fmt.Sprintf(" (%d)", s.Year)
	}
	return fmt.Sprintf("%s%s [tmdb:%d tvdb:%d]", s.Title, year, s.TmdbID, s.TvdbID)
}
