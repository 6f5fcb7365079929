package nfo

import (
	"fmt"

	"github.com/sidecarr/sidecarr/internal/library/tv"
)

const episodeGuideTemplate = "http://www.thetvdb.com/api/1D62F2F90030C444/series/%d/all/es.zip"

var writerJobs = map[string]bool{
	"Screenplay": true,
	"Story":      true,
	"Novel":      true,
	"Writer":     true,
}

// SeriesMetadata renders the tvshow.nfo document for a series.
// Returns nil when series metadata generation is switched off.
func (c *Consumer) SeriesMetadata(series *tv.Series) (*MetadataFileResult, error) {
	if !c.settings.SeriesMetadata {
		return nil, nil
	}

	c.logger.Debug().Str("title", series.Title).Msg("Generating tvshow.nfo")

	b := newXMLBuilder()
	b.start("tvshow")

	b.element("title", series.Title)
	b.element("showtitle", series.Title)
	b.element("sorttitle", series.SortTitle)

	if series.OriginalTitle != "" {
		b.element("originaltitle", series.OriginalTitle)
	}

	if series.Ratings.HasValue() {
		b.start("ratings")
		b.start("rating", attr("name", "themoviedb"), attr("max", "10"), attr("default", "true"))
		b.element("value", series.Ratings.Value)
		b.element("votes", series.Ratings.Votes)
		b.end("rating")
		b.end("ratings")

		b.element("rating", series.Ratings.Value)
	}

	for _, season := range series.Seasons {
		if season.Name == "" {
			continue
		}
		b.element("namedseason", season.Name, attr("number", fmt.Sprint(season.SeasonNumber)))
	}

	b.element("plot", series.Overview)

	var fanartImages []tv.Image
	for _, image := range series.Images {
		if image.CoverType == tv.CoverFanart {
			fanartImages = append(fanartImages, image)
			continue
		}
		writeThumb(b, image.URL, image.CoverType, nil)
	}
	if len(fanartImages) > 0 {
		b.start("fanart")
		for _, image := range fanartImages {
			writeThumb(b, image.URL, tv.CoverFanart, nil)
		}
		b.end("fanart")
	}

	for _, season := range series.Seasons {
		for _, image := range season.Images {
			number := season.SeasonNumber
			writeThumb(b, image.URL, image.CoverType, &number)
		}
	}

	b.element("mpaa", series.Certification)

	if series.Runtime > 0 {
		b.element("runtime", series.Runtime)
	}

	guideURL := fmt.Sprintf(episodeGuideTemplate, series.TvdbID)
	b.start("episodeguide")
	b.element("url", guideURL)
	b.end("episodeguide")
	b.element("episodeguideurl", guideURL)

	if series.TvdbID > 0 {
		b.element("uniqueid", series.TvdbID, attr("type", "tvdb"), attr("default", "false"))
		b.element("tvdbid", series.TvdbID)
	}
	if series.TmdbID > 0 {
		b.element("uniqueid", series.TmdbID, attr("type", "tmdb"), attr("default", "true"))
		b.element("tmdbid", series.TmdbID)
	}
	if series.ImdbID != "" {
		b.element("uniqueid", series.ImdbID, attr("type", "imdb"), attr("default", "false"))
		b.element("imdb_id", series.ImdbID)
	}

	for _, genre := range series.Genres {
		b.element("genre", genre)
	}

	if series.FirstAired != nil {
		b.element("premiered", series.FirstAired.Format("2006-01-02"))
		b.element("releasedate", series.FirstAired.Format("2006-01-02"))
	}

	switch series.Status {
	case tv.StatusContinuing:
		b.element("status", "Continuing")
	case tv.StatusEnded:
		b.element("status", "Ended")
		if series.LastAired != nil {
			b.element("enddate", series.LastAired.Format("2006-01-02"))
		}
	}

	b.element("studio", series.Network)

	if series.TrailerURL != "" {
		b.element("trailer", series.TrailerURL)
	}

	for _, actor := range series.Actors {
		if actor.Name == "" || actor.Character == "" {
			continue
		}
		b.start("actor")
		b.element("name", actor.Name)
		b.element("role", actor.Character)
		b.element("type", "Actor")
		b.element("order", actor.Order)
		if actor.ImageURL != "" {
			b.element("thumb", actor.ImageURL)
		}
		b.end("actor")
	}

	for _, crew := range series.Crew {
		if crew.Name == "" || crew.Job == "" {
			continue
		}
		b.start("actor")
		b.element("name", crew.Name)
		b.element("role", crew.Job)
		b.element("type", crew.Department)
		if crew.ImageURL != "" {
			b.element("thumb", crew.ImageURL)
		}
		b.end("actor")
	}

	for _, crew := range series.Crew {
		if writerJobs[crew.Job] && crew.Name != "" {
			b.element("credits", crew.Name)
		}
	}
	for _, crew := range series.Crew {
		if crew.Job == "Director" && crew.Name != "" {
			b.element("director", crew.Name)
		}
	}

	b.end("tvshow")

	contents, err := b.String()
	if err != nil {
		return nil, err
	}
	return &MetadataFileResult{RelativePath: "tvshow.nfo", Contents: contents}, nil
}
