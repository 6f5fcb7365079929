package nfo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestIsNfoFile(t *testing.T) {
	detector := NewDetector(zerolog.Nop())

	path := writeTempFile(t, "episode.nfo", "<episodedetails><title>Pilot</title></episodedetails>")
	assert.True(t, detector.IsNfoFile(path))

	path = writeTempFile(t, "tvshow.nfo", "<tvshow><title>Show</title></tvshow>")
	assert.True(t, detector.IsNfoFile(path))

	path = writeTempFile(t, "release.nfo", "ripped by somebody, greets to the scene")
	assert.False(t, detector.IsNfoFile(path))

	path = writeTempFile(t, "url.nfo", "https://www.thetvdb.com/series/the-wire")
	assert.False(t, detector.IsNfoFile(path))
}

func TestIsNfoFileRejectsHugeFiles(t *testing.T) {
	detector := NewDetector(zerolog.Nop())

	path := filepath.Join(t.TempDir(), "huge.nfo")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, f.Truncate(maxNfoSize+1))
	require.NoError(t, f.Close())

	assert.False(t, detector.IsNfoFile(path))
}

func TestIsNfoFileMissing(t *testing.T) {
	detector := NewDetector(zerolog.Nop())
	assert.False(t, detector.IsNfoFile(filepath.Join(t.TempDir(), "missing.nfo")))
}

func TestIsNfoFileRoundTrip(t *testing.T) {
	consumer := newTestConsumer(DefaultSettings())

	rendered, err := consumer.SeriesMetadata(testSeries())
	require.NoError(t, err)
	path := writeTempFile(t, "tvshow.nfo", rendered.Contents)
	assert.True(t, consumer.detector.IsNfoFile(path))

	episodeResult, err := consumer.EpisodeMetadata(testSeries(), testEpisodeFile(), nil)
	require.NoError(t, err)
	path = writeTempFile(t, "episode.nfo", episodeResult.Contents)
	assert.True(t, consumer.detector.IsNfoFile(path))
}

func TestFindMetadataFile(t *testing.T) {
	consumer := newTestConsumer(DefaultSettings())
	series := testSeries()
	series.Path = "/tv/Game of Thrones"

	tests := []struct {
		name     string
		path     string
		wantType MetadataType
		season   int
	}{
		{"series poster", "/tv/Game of Thrones/poster.jpg", TypeSeriesImage, 0},
		{"series clearlogo", "/tv/Game of Thrones/clearlogo.png", TypeSeriesImage, 0},
		{"season image", "/tv/Game of Thrones/season01-banner.jpg", TypeSeasonImage, 1},
		{"specials image", "/tv/Game of Thrones/season-specials-poster.jpg", TypeSeasonImage, 0},
		{"episode thumb", "/tv/Game of Thrones/Season 1/Game.of.Thrones.S01E01-thumb.jpg", TypeEpisodeImage, 0},
		{"series nfo", "/tv/Game of Thrones/tvshow.nfo", TypeSeriesMetadata, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found := consumer.FindMetadataFile(series, tt.path)
			require.NotNil(t, found)
			assert.Equal(t, tt.wantType, found.Type)
			assert.Equal(t, tt.season, found.SeasonNumber)
		})
	}
}

func TestFindMetadataFileEpisodeNfo(t *testing.T) {
	consumer := newTestConsumer(DefaultSettings())

	dir := t.TempDir()
	series := testSeries()
	series.Path = dir

	path := filepath.Join(dir, "Game.of.Thrones.S01E01.nfo")
	require.NoError(t, os.WriteFile(path, []byte("<episodedetails></episodedetails>"), 0o644))

	found := consumer.FindMetadataFile(series, path)
	require.NotNil(t, found)
	assert.Equal(t, TypeEpisodeMetadata, found.Type)

	// A scene notes file with the same name is not metadata.
	require.NoError(t, os.WriteFile(path, []byte("greets to the scene"), 0o644))
	assert.Nil(t, consumer.FindMetadataFile(series, path))
}

func TestFindMetadataFileUnrelated(t *testing.T) {
	consumer := newTestConsumer(DefaultSettings())
	series := testSeries()
	series.Path = "/tv/Game of Thrones"

	assert.Nil(t, consumer.FindMetadataFile(series, "/tv/Game of Thrones/Season 1/Game.of.Thrones.S01E01.mkv"))
	assert.Nil(t, consumer.FindMetadataFile(series, "/tv/Game of Thrones/notes.txt"))
}
