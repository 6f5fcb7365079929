package nfo

import "github.com/sidecarr/sidecarr/internal/config"

// Settings controls which sidecar artifacts get generated. Each switch
// is independent.
type Settings struct {
	SeriesMetadata  bool
	EpisodeMetadata bool
	SeriesImages    bool
	SeasonImages    bool
	EpisodeImages   bool
}

// DefaultSettings enables every artifact.
func DefaultSettings() Settings {
	return Settings{
		SeriesMetadata:  true,
		EpisodeMetadata: true,
		SeriesImages:    true,
		SeasonImages:    true,
		EpisodeImages:   true,
	}
}

// SettingsFromConfig maps the configured switches.
func SettingsFromConfig(cfg config.MetadataConfig) Settings {
	return Settings{
		SeriesMetadata:  cfg.SeriesMetadata,
		EpisodeMetadata: cfg.EpisodeMetadata,
		SeriesImages:    cfg.SeriesImages,
		SeasonImages:    cfg.SeasonImages,
		EpisodeImages:   cfg.EpisodeImages,
	}
}
