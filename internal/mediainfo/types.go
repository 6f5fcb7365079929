package mediainfo

import (
	"strings"
	"time"
)

// MediaInfo holds stream details probed from a media file.
type MediaInfo struct {
	// Video
	VideoCodec   string  `json:"videoCodec"`
	VideoBitrate int     `json:"videoBitrate"`
	FrameRate    float64 `json:"frameRate"`
	Width        int     `json:"width"`
	Height       int     `json:"height"`
	ScanType     string  `json:"scanType"`

	// Audio
	AudioCodec     string   `json:"audioCodec"`
	AudioBitrate   int      `json:"audioBitrate"`
	AudioChannels  int      `json:"audioChannels"`
	AudioLanguages []string `json:"audioLanguages"`

	// Subtitles
	SubtitleLanguages []string `json:"subtitleLanguages"`

	// Container
	ContainerFormat string        `json:"containerFormat"`
	Runtime         time.Duration `json:"runtime"`
}

// VideoCodecMap maps raw codec names to standard display names.
var VideoCodecMap = map[string]string{
	"hevc":   "HEVC",
	"h265":   "HEVC",
	"h.265":  "HEVC",
	"x265":   "x265",
	"h264":   "H.264",
	"h.264":  "H.264",
	"avc":    "H.264",
	"x264":   "x264",
	"av1":    "AV1",
	"vp9":    "VP9",
	"vp8":    "VP8",
	"mpeg2":  "MPEG2",
	"mpeg-2": "MPEG2",
	"vc1":    "VC-1",
	"xvid":   "XviD",
	"divx":   "DivX",
}

// AudioCodecMap maps raw audio codec names to standard display names.
var AudioCodecMap = map[string]string{
	"dts-hd ma":     "DTS-HD MA",
	"dts-hd master": "DTS-HD MA",
	"dts-hd":        "DTS-HD",
	"dts":           "DTS",
	"truehd":        "TrueHD",
	"dolby truehd":  "TrueHD",
	"e-ac-3":        "EAC3",
	"eac3":          "EAC3",
	"ac3":           "AC3",
	"ac-3":          "AC3",
	"dolby digital": "AC3",
	"aac":           "AAC",
	"he-aac":        "HE-AAC",
	"flac":          "FLAC",
	"opus":          "Opus",
	"mp3":           "MP3",
	"pcm":           "PCM",
	"vorbis":        "Vorbis",
}

// NormalizeVideoCodec normalizes a video codec name to its standard form.
func NormalizeVideoCodec(codec string) string {
	lower := normalizeString(codec)

	if containsAny(lower, "x264") {
		return "x264"
	}
	if containsAny(lower, "x265") {
		return "x265"
	}

	if normalized, ok := VideoCodecMap[lower]; ok {
		return normalized
	}
	for key, value := range VideoCodecMap {
		if containsAny(lower, key) {
			return value
		}
	}
	return codec
}

// NormalizeAudioCodec normalizes an audio codec name to its standard form.
func NormalizeAudioCodec(codec string) string {
	lower := normalizeString(codec)

	if normalized, ok := AudioCodecMap[lower]; ok {
		return normalized
	}
	for key, value := range AudioCodecMap {
		if containsAny(lower, key) {
			return value
		}
	}
	return codec
}

func normalizeString(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func containsAny(s string, substrs ...string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
