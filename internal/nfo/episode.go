package nfo

import (
	"strings"

	"github.com/sidecarr/sidecarr/internal/library/tv"
	"github.com/sidecarr/sidecarr/internal/mediainfo"
)

// EpisodeMetadata renders the .nfo document for an episode file. A
// multi-episode file yields one episodedetails document per episode,
// joined by a newline. Returns nil when episode metadata generation
// is switched off.
func (c *Consumer) EpisodeMetadata(series *tv.Series, file *tv.EpisodeFile, info *mediainfo.MediaInfo) (*MetadataFileResult, error) {
	if !c.settings.EpisodeMetadata {
		return nil, nil
	}

	c.logger.Debug().Str("path", file.RelativePath).Msg("Generating episode metadata")

	docs := make([]string, 0, len(file.Episodes))
	for i := range file.Episodes {
		doc, err := c.renderEpisode(series, &file.Episodes[i], info)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	contents := strings.Trim(strings.Join(docs, "\n"), "\n")
	return &MetadataFileResult{
		RelativePath: episodeMetadataFilename(file.RelativePath),
		Contents:     contents,
	}, nil
}

func (c *Consumer) renderEpisode(series *tv.Series, episode *tv.Episode, info *mediainfo.MediaInfo) (string, error) {
	b := newXMLBuilder()
	b.start("episodedetails")

	b.element("title", episode.Title)
	b.element("showtitle", series.Title)

	if episode.Ratings.HasValue() {
		b.start("ratings")
		b.start("rating", attr("name", "tmdb"), attr("max", "10"), attr("default", "true"))
		b.element("value", episode.Ratings.Value)
		b.element("votes", episode.Ratings.Votes)
		b.end("rating")
		b.end("ratings")
	}

	b.element("season", episode.SeasonNumber)
	b.element("episode", episode.EpisodeNumber)

	if episode.SeasonNumber == 0 && episode.AiredAfterSeason != nil {
		b.element("displayafterseason", *episode.AiredAfterSeason)
	} else if episode.SeasonNumber == 0 && episode.AiredBeforeSeason != nil {
		b.element("displayseason", *episode.AiredBeforeSeason)
		displayEpisode := -1
		if episode.AiredBeforeEpisode != nil {
			displayEpisode = *episode.AiredBeforeEpisode
		}
		b.element("displayepisode", displayEpisode)
	}

	b.element("plot", episode.Overview)

	if info != nil && info.Runtime > 0 {
		b.element("runtime", int(info.Runtime.Minutes()))
	}

	if len(episode.Images) == 0 {
		b.element("thumb", "")
	} else {
		for _, image := range episode.Images {
			writeThumb(b, image.URL, image.CoverType, nil)
		}
	}

	b.element("mpaa", series.Certification)

	if episode.TmdbID > 0 {
		b.element("uniqueid", episode.TmdbID, attr("type", "tmdb"), attr("default", "true"))
		b.element("tmdbid", episode.TmdbID)
	}
	if episode.ImdbID != "" {
		b.element("uniqueid", episode.ImdbID, attr("type", "imdb"), attr("default", "false"))
		b.element("imdb_id", episode.ImdbID)
	}
	if episode.TvdbID > 0 {
		b.element("uniqueid", episode.TvdbID, attr("type", "tvdb"), attr("default", "false"))
		b.element("tvdbid", episode.TvdbID)
	}
	if episode.TvRageID > 0 {
		b.element("uniqueid", episode.TvRageID, attr("type", "tvrage"), attr("default", "false"))
		b.element("tvrageid", episode.TvRageID)
	}

	for _, genre := range series.Genres {
		b.element("genre", genre)
	}

	for _, crew := range episode.Crew {
		if writerJobs[crew.Job] && crew.Name != "" {
			b.element("credits", crew.Name)
		}
	}
	for _, crew := range episode.Crew {
		if crew.Job == "Director" && crew.Name != "" {
			b.element("director", crew.Name)
		}
	}

	for _, actor := range episode.Actors {
		if actor.Name == "" || actor.Character == "" {
			continue
		}
		b.start("actor")
		b.element("name", actor.Name)
		b.element("role", actor.Character)
		b.element("order", actor.Order)
		if actor.ImageURL != "" {
			b.element("thumb", actor.ImageURL)
		}
		b.end("actor")
	}

	for _, crew := range episode.Crew {
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

	b.element("aired", episode.AirDate)
	b.element("studio", series.Network)

	if info != nil {
		writeFileInfo(b, info)
	}

	b.end("episodedetails")
	return b.String()
}

func writeFileInfo(b *xmlBuilder, info *mediainfo.MediaInfo) {
	b.start("fileinfo")
	b.start("streamdetails")

	b.start("video")
	aspect := 0
	if info.Height > 0 {
		aspect = info.Width / info.Height
	}
	b.element("aspect", aspect)
	b.element("bitrate", info.VideoBitrate)
	b.element("codec", info.VideoCodec)
	b.element("framerate", info.FrameRate)
	b.element("height", info.Height)
	b.element("scantype", info.ScanType)
	b.element("width", info.Width)
	if info.Runtime > 0 {
		b.element("duration", int(info.Runtime.Minutes()))
		b.element("durationinseconds", int(info.Runtime.Seconds()))
	}
	b.end("video")

	b.start("audio")
	b.element("bitrate", info.AudioBitrate)
	b.element("channels", info.AudioChannels)
	b.element("codec", info.AudioCodec)
	b.element("language", strings.Join(info.AudioLanguages, "/"))
	b.end("audio")

	if len(info.SubtitleLanguages) > 0 {
		b.start("subtitle")
		b.element("language", strings.Join(info.SubtitleLanguages, "/"))
		b.end("subtitle")
	}

	b.end("streamdetails")
	b.end("fileinfo")
}
