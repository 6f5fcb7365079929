package nfo

import (
	"encoding/xml"
	"fmt"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sidecarr/sidecarr/internal/library/tv"
)

// SeriesImages returns the show-level artwork to download, one file
// per cover type, named after the cover type.
func (c *Consumer) SeriesImages(series *tv.Series) []ImageFileResult {
	if !c.settings.SeriesImages {
		return nil
	}

	var results []ImageFileResult
	for _, image := range series.Images {
		destination := string(image.CoverType) + imageExtension(image.URL)
		results = append(results, ImageFileResult{RelativePath: destination, URL: image.URL})
	}
	return results
}

// SeasonImages returns one artifact per season artwork. Season zero
// uses the specials naming.
func (c *Consumer) SeasonImages(series *tv.Series, season tv.Season) []ImageFileResult {
	if !c.settings.SeasonImages {
		return nil
	}

	var results []ImageFileResult
	for _, image := range season.Images {
		filename := fmt.Sprintf("season%02d-%s.jpg", season.SeasonNumber, image.CoverType)
		if season.SeasonNumber == 0 {
			filename = fmt.Sprintf("season-specials-%s.jpg", image.CoverType)
		}
		results = append(results, ImageFileResult{RelativePath: filename, URL: image.URL})
	}
	return results
}

// EpisodeImages returns the episode thumb artifact, derived from the
// first episode's screenshot.
func (c *Consumer) EpisodeImages(series *tv.Series, file *tv.EpisodeFile) []ImageFileResult {
	if !c.settings.EpisodeImages {
		return nil
	}

	screenshot := file.Screenshot()
	if screenshot == nil {
		c.logger.Debug().Str("path", file.RelativePath).Msg("Episode screenshot not available")
		return nil
	}

	return []ImageFileResult{
		{RelativePath: episodeImageFilename(file.RelativePath), URL: screenshot.URL},
	}
}

func episodeMetadataFilename(episodeFilePath string) string {
	ext := filepath.Ext(episodeFilePath)
	return strings.TrimSuffix(episodeFilePath, ext) + ".nfo"
}

func episodeImageFilename(episodeFilePath string) string {
	ext := filepath.Ext(episodeFilePath)
	return strings.TrimSuffix(episodeFilePath, ext) + "-thumb.jpg"
}

func imageExtension(url string) string {
	if ext := path.Ext(strings.SplitN(url, "?", 2)[0]); ext != "" {
		return ext
	}
	return ".jpg"
}

// previewSize picks the downscaled variant for a cover type.
func previewSize(coverType tv.CoverType) string {
	switch coverType {
	case tv.CoverPoster, tv.CoverHeadshot:
		return "/w185/"
	case tv.CoverBanner, tv.CoverClearArt, tv.CoverFanart, tv.CoverLandscape, tv.CoverClearLogo, tv.CoverScreenshot:
		return "/w300/"
	default:
		return ""
	}
}

// writeThumb emits a thumb element carrying the full-size URL plus a
// preview attribute pointing at a downscaled variant. Fanart and
// screenshots carry no aspect attribute.
func writeThumb(b *xmlBuilder, url string, coverType tv.CoverType, season *int) {
	preview := url
	if size := previewSize(coverType); size != "" {
		preview = strings.ReplaceAll(preview, "/original/", size)
	}
	preview = strings.ReplaceAll(preview, "/fanart/", "/preview/")

	attrs := []xml.Attr{}
	if preview != "" {
		attrs = append(attrs, attr("preview", preview))
	}
	if coverType != tv.CoverFanart && coverType != tv.CoverScreenshot {
		attrs = append(attrs, attr("aspect", string(coverType)))
	}
	if season != nil {
		attrs = append(attrs, attr("type", "season"), attr("season", strconv.Itoa(*season)))
	}
	b.element("thumb", url, attrs...)
}
