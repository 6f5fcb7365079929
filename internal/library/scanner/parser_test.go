package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFilename(t *testing.T) {
	tests := []struct {
		filename   string
		title      string
		season     int
		episodes   []int
		fullSeason bool
	}{
		{"The.Wire.S01E03.720p.BluRay.mkv", "The Wire", 1, []int{3}, false},
		{"Breaking Bad - S05E14 - Ozymandias.mkv", "Breaking Bad", 5, []int{14}, false},
		{"show.s02e01e02.mkv", "show", 2, []int{1, 2}, false},
		{"Show.S01E01-E02.HDTV.mkv", "Show", 1, []int{1, 2}, false},
		{"Show.1x05.mkv", "Show", 1, []int{5}, false},
		{"Show.S03.1080p.WEB-DL", "Show", 3, nil, true},
		{"Show.Season.2.Complete", "Show", 2, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			parsed := ParseFilename(tt.filename)
			require.NotNil(t, parsed)
			assert.Equal(t, tt.title, parsed.Title)
			assert.Equal(t, tt.season, parsed.Season)
			assert.Equal(t, tt.episodes, parsed.Episodes)
			assert.Equal(t, tt.fullSeason, parsed.FullSeason)
		})
	}
}

func TestParseFilenameNotAnEpisode(t *testing.T) {
	assert.Nil(t, ParseFilename("The.Matrix.1999.1080p.mkv"))
	assert.Nil(t, ParseFilename("random-notes.txt"))
}

func TestIsVideoFile(t *testing.T) {
	assert.True(t, IsVideoFile("episode.mkv"))
	assert.True(t, IsVideoFile("EPISODE.MP4"))
	assert.False(t, IsVideoFile("episode.nfo"))
	assert.False(t, IsVideoFile("episode.srt"))
}

func TestIsSampleFile(t *testing.T) {
	assert.True(t, IsSampleFile("show.s01e01.sample.mkv"))
	assert.False(t, IsSampleFile("show.s01e01.mkv"))
}
