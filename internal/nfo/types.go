package nfo

import "github.com/rs/zerolog"

// MetadataType classifies a sidecar artifact.
type MetadataType string

const (
	TypeSeriesMetadata  MetadataType = "seriesMetadata"
	TypeEpisodeMetadata MetadataType = "episodeMetadata"
	TypeSeriesImage     MetadataType = "seriesImage"
	TypeSeasonImage     MetadataType = "seasonImage"
	TypeEpisodeImage    MetadataType = "episodeImage"
)

// MetadataFile describes a sidecar file found on disk.
type MetadataFile struct {
	Type         MetadataType `json:"type"`
	RelativePath string       `json:"relativePath"`
	SeasonNumber int          `json:"seasonNumber,omitempty"`
}

// MetadataFileResult is a sidecar document to write: a relative path
// and its full contents.
type MetadataFileResult struct {
	RelativePath string `json:"relativePath"`
	Contents     string `json:"contents"`
}

// ImageFileResult is an image artifact to fetch: a relative path and
// the source URL to download it from.
type ImageFileResult struct {
	RelativePath string `json:"relativePath"`
	URL          string `json:"url"`
}

// Consumer renders Kodi (XBMC) sidecar artifacts from canonical
// series and episode records.
type Consumer struct {
	settings Settings
	detector *Detector
	logger   zerolog.Logger
}

// NewConsumer creates a sidecar consumer with the given switches.
func NewConsumer(settings Settings, logger zerolog.Logger) *Consumer {
	log := logger.With().Str("component", "nfo").Logger()
	return &Consumer{
		settings: settings,
		detector: NewDetector(log),
		logger:   log,
	}
}

// Name identifies the sidecar dialect.
func (c *Consumer) Name() string {
	return "Kodi (XBMC) / Emby"
}
