package nfo

import (
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/sidecarr/sidecarr/internal/library/scanner"
	"github.com/sidecarr/sidecarr/internal/library/tv"
)

// maxNfoSize is the ceiling for files the detector will read.
const maxNfoSize = 10 * 1024 * 1024

var (
	nfoRootTagRegex   = regexp.MustCompile(`<(movie|tvshow|episodedetails|artist|album|musicvideo)>`)
	seriesImagesRegex = regexp.MustCompile(`(?i)^(poster|banner|fanart|clearart|landscape|clearlogo)\.(?:png|jpg)`)
	seasonImagesRegex = regexp.MustCompile(`(?i)^season(\d{2,}|-all|-specials)-(poster|banner|fanart|landscape)\.(?:png|jpg)`)
	episodeImageRegex = regexp.MustCompile(`(?i)-thumb\.(?:png|jpg)`)
)

// Detector recognizes Kodi (XBMC) metadata files on disk, as opposed
// to plain-text .nfo files holding release notes or URLs.
type Detector struct {
	logger zerolog.Logger
}

// NewDetector creates a detector.
func NewDetector(logger zerolog.Logger) *Detector {
	return &Detector{logger: logger}
}

// IsNfoFile reports whether the file at path is a metadata document.
// Files over 10MB are rejected without reading.
func (d *Detector) IsNfoFile(path string) bool {
	stat, err := os.Stat(path)
	if err != nil {
		d.logger.Debug().Err(err).Str("path", path).Msg("Unable to stat nfo candidate")
		return false
	}
	if stat.Size() > maxNfoSize {
		return false
	}

	content, err := os.ReadFile(path)
	if err != nil {
		d.logger.Debug().Err(err).Str("path", path).Msg("Unable to read nfo candidate")
		return false
	}
	return nfoRootTagRegex.Match(content)
}

// FindMetadataFile classifies a file under the series folder as one of
// the sidecar artifact types, or returns nil when it is none of them.
func (c *Consumer) FindMetadataFile(series *tv.Series, path string) *MetadataFile {
	filename := filepath.Base(path)
	relativePath := relativeTo(series.Path, path)

	if seriesImagesRegex.MatchString(filename) {
		return &MetadataFile{Type: TypeSeriesImage, RelativePath: relativePath}
	}

	if match := seasonImagesRegex.FindStringSubmatch(filename); match != nil {
		seasonToken := match[1]
		metadata := &MetadataFile{Type: TypeSeasonImage, RelativePath: relativePath}
		if strings.Contains(seasonToken, "specials") {
			metadata.SeasonNumber = 0
			return metadata
		}
		number, err := strconv.Atoi(seasonToken)
		if err != nil {
			return nil
		}
		metadata.SeasonNumber = number
		return metadata
	}

	if episodeImageRegex.MatchString(filename) {
		return &MetadataFile{Type: TypeEpisodeImage, RelativePath: relativePath}
	}

	if strings.EqualFold(filename, "tvshow.nfo") {
		return &MetadataFile{Type: TypeSeriesMetadata, RelativePath: relativePath}
	}

	parsed := scanner.ParseFilename(filename)
	if parsed != nil &&
		!parsed.FullSeason &&
		strings.EqualFold(filepath.Ext(filename), ".nfo") &&
		c.detector.IsNfoFile(path) {
		return &MetadataFile{Type: TypeEpisodeMetadata, RelativePath: relativePath}
	}

	return nil
}

func relativeTo(base, path string) string {
	rel, err := filepath.Rel(base, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return filepath.Base(path)
	}
	return rel
}
