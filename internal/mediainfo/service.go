package mediainfo

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/vansante/go-ffprobe.v2"
)

// probeFunc is the ffprobe entry point, injectable for tests.
type probeFunc func(ctx context.Context, path string, extraOpts ...string) (*ffprobe.ProbeData, error)

// Service probes media files with ffprobe.
type Service struct {
	probe  probeFunc
	logger zerolog.Logger
}

// NewService creates a new mediainfo service.
func NewService(logger zerolog.Logger) *Service {
	return &Service{
		probe:  ffprobe.ProbeURL,
		logger: logger.With().Str("component", "mediainfo").Logger(),
	}
}

// Probe extracts stream details from a media file.
func (s *Service) Probe(ctx context.Context, path string) (*MediaInfo, error) {
	data, err := s.probe(ctx, path)
	if err != nil {
		s.logger.Warn().Err(err).Str("path", path).Msg("ffprobe failed")
		return nil, err
	}
	return buildMediaInfo(data), nil
}

func buildMediaInfo(data *ffprobe.ProbeData) *MediaInfo {
	info := &MediaInfo{}
	if data == nil {
		return info
	}

	if data.Format != nil {
		info.ContainerFormat = data.Format.FormatName
		if data.Format.DurationSeconds > 0 {
			info.Runtime = time.Duration(data.Format.DurationSeconds * float64(time.Second))
		}
	}

	if video := data.FirstVideoStream(); video != nil {
		info.VideoCodec = NormalizeVideoCodec(video.CodecName)
		info.VideoBitrate = parseBitrate(video.BitRate)
		info.Width = video.Width
		info.Height = video.Height
		info.FrameRate = parseFrameRate(video.AvgFrameRate)
		info.ScanType = scanType(video.FieldOrder)
	}

	if audio := data.FirstAudioStream(); audio != nil {
		info.AudioCodec = NormalizeAudioCodec(audio.CodecName)
		info.AudioBitrate = parseBitrate(audio.BitRate)
		info.AudioChannels = audio.Channels
	}

	for _, stream := range data.StreamType(ffprobe.StreamAudio) {
		if lang := streamLanguage(stream); lang != "" {
			info.AudioLanguages = appendUnique(info.AudioLanguages, lang)
		}
	}
	for _, stream := range data.StreamType(ffprobe.StreamSubtitle) {
		if lang := streamLanguage(stream); lang != "" {
			info.SubtitleLanguages = appendUnique(info.SubtitleLanguages, lang)
		}
	}

	return info
}

func streamLanguage(stream ffprobe.Stream) string {
	lang, err := stream.TagList.GetString("language")
	if err != nil || lang == "und" {
		return ""
	}
	return lang
}

func parseBitrate(raw string) int {
	bitrate, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return bitrate
}

// parseFrameRate converts an ffprobe rational like "24000/1001" to
// frames per second.
func parseFrameRate(raw string) float64 {
	parts := strings.SplitN(raw, "/", 2)
	if len(parts) != 2 {
		fps, _ := strconv.ParseFloat(raw, 64)
		return fps
	}
	num, err1 := strconv.ParseFloat(parts[0], 64)
	den, err2 := strconv.ParseFloat(parts[1], 64)
	if err1 != nil || err2 != nil || den == 0 {
		return 0
	}
	return num / den
}

func scanType(fieldOrder string) string {
	switch strings.ToLower(fieldOrder) {
	case "", "progressive", "unknown":
		return "progressive"
	default:
		return "interlaced"
	}
}

func appendUnique(list []string, value string) []string {
	for _, existing := range list {
		if existing == value {
			return list
		}
	}
	return append(list, value)
}
