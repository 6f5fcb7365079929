package mediainfo

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/vansante/go-ffprobe.v2"
)

func TestProbe(t *testing.T) {
	svc := NewService(zerolog.Nop())
	svc.probe = func(_ context.Context, _ string, _ ...string) (*ffprobe.ProbeData, error) {
		return &ffprobe.ProbeData{
			Format: &ffprobe.Format{
				FormatName:      "matroska,webm",
				DurationSeconds: 2580.5,
			},
			Streams: []*ffprobe.Stream{
				{
					CodecType:    "video",
					CodecName:    "hevc",
					Width:        1920,
					Height:       1080,
					BitRate:      "5000000",
					AvgFrameRate: "24000/1001",
					FieldOrder:   "progressive",
				},
				{
					CodecType: "audio",
					CodecName: "eac3",
					Channels:  6,
					BitRate:   "640000",
					TagList:   ffprobe.Tags{"language": "eng"},
				},
				{
					CodecType: "audio",
					CodecName: "aac",
					Channels:  2,
					TagList:   ffprobe.Tags{"language": "spa"},
				},
				{
					CodecType: "subtitle",
					CodecName: "subrip",
					TagList:   ffprobe.Tags{"language": "spa"},
				},
			},
		}, nil
	}

	info, err := svc.Probe(context.Background(), "/media/show.s01e01.mkv")
	require.NoError(t, err)

	assert.Equal(t, "HEVC", info.VideoCodec)
	assert.Equal(t, 1920, info.Width)
	assert.Equal(t, 1080, info.Height)
	assert.Equal(t, 5000000, info.VideoBitrate)
	assert.InDelta(t, 23.976, info.FrameRate, 0.001)
	assert.Equal(t, "progressive", info.ScanType)
	assert.Equal(t, "EAC3", info.AudioCodec)
	assert.Equal(t, 6, info.AudioChannels)
	assert.Equal(t, []string{"eng", "spa"}, info.AudioLanguages)
	assert.Equal(t, []string{"spa"}, info.SubtitleLanguages)
	assert.Equal(t, 2580, int(info.Runtime.Seconds()))
}

func TestProbeError(t *testing.T) {
	svc := NewService(zerolog.Nop())
	svc.probe = func(_ context.Context, _ string, _ ...string) (*ffprobe.ProbeData, error) {
		return nil, errors.New("no such file")
	}

	_, err := svc.Probe(context.Background(), "/missing.mkv")
	assert.Error(t, err)
}

func TestNormalizeVideoCodec(t *testing.T) {
	assert.Equal(t, "HEVC", NormalizeVideoCodec("hevc"))
	assert.Equal(t, "H.264", NormalizeVideoCodec("h264"))
	assert.Equal(t, "x265", NormalizeVideoCodec("x265 encoder"))
	assert.Equal(t, "weird", NormalizeVideoCodec("weird"))
}

func TestNormalizeAudioCodec(t *testing.T) {
	assert.Equal(t, "EAC3", NormalizeAudioCodec("eac3"))
	assert.Equal(t, "DTS-HD MA", NormalizeAudioCodec("DTS-HD MA"))
	assert.Equal(t, "AAC", NormalizeAudioCodec("aac"))
}

func TestParseFrameRate(t *testing.T) {
	assert.InDelta(t, 23.976, parseFrameRate("24000/1001"), 0.001)
	assert.Equal(t, 25.0, parseFrameRate("25/1"))
	assert.Equal(t, 0.0, parseFrameRate("bad/0"))
}
