package scanner

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// ParsedEpisode is an episode file parsed from a filename. A file can
// carry several consecutive episodes; FullSeason marks a season pack
// with no episode numbering at all.
type ParsedEpisode struct {
	Title      string `json:"title"`
	Season     int    `json:"season"`
	Episodes   []int  `json:"episodes,omitempty"`
	FullSeason bool   `json:"fullSeason,omitempty"`
	FilePath   string `json:"filePath"`
}

var (
	// Show.S01E02, Show.S01E02E03, Show.S01E02-E04
	tvPatternSE = regexp.MustCompile(`(?i)^(.+?)[\.\s_-]+[Ss](\d{1,2})((?:[-\.\s_]*[Ee]\d{1,3})+)[\.\s_-]*(.*)$`)
	// Show.1x02
	tvPatternX = regexp.MustCompile(`(?i)^(.+?)[\.\s_-]+(\d{1,2})[xX](\d{1,3})[\.\s_-]*(.*)$`)
	// Show.S01 with no episode number
	tvPatternSeasonPack = regexp.MustCompile(`(?i)^(.+?)[\.\s_-]+[Ss](\d{1,2})(?:[\.\s_-]|$)(.*)$`)
	// Show.Season.1
	tvPatternSeasonSpelled = regexp.MustCompile(`(?i)^(.+?)[\.\s_-]+[Ss]eason[\.\s_-]+(\d{1,2})(?:[\.\s_-]|$)(.*)$`)

	episodeNumberPattern = regexp.MustCompile(`(?i)[Ee](\d{1,3})`)
	cleanupPattern       = regexp.MustCompile(`[\.\s_-]+`)
)

// ParseFilename parses an episode filename into structured data.
// Returns nil when the name does not look like a TV episode file.
func ParseFilename(filename string) *ParsedEpisode {
	ext := filepath.Ext(filename)
	name := strings.TrimSuffix(filename, ext)

	if match := tvPatternSE.FindStringSubmatch(name); match != nil {
		parsed := &ParsedEpisode{
			Title:    cleanTitle(match[1]),
			FilePath: filename,
		}
		parsed.Season, _ = strconv.Atoi(match[2])
		for _, num := range episodeNumberPattern.FindAllStringSubmatch(match[3], -1) {
			episode, _ := strconv.Atoi(num[1])
			parsed.Episodes = append(parsed.Episodes, episode)
		}
		return parsed
	}

	if match := tvPatternX.FindStringSubmatch(name); match != nil {
		parsed := &ParsedEpisode{
			Title:    cleanTitle(match[1]),
			FilePath: filename,
		}
		parsed.Season, _ = strconv.Atoi(match[2])
		episode, _ := strconv.Atoi(match[3])
		parsed.Episodes = []int{episode}
		return parsed
	}

	if match := tvPatternSeasonPack.FindStringSubmatch(name); match != nil {
		parsed := &ParsedEpisode{
			Title:      cleanTitle(match[1]),
			FullSeason: true,
			FilePath:   filename,
		}
		parsed.Season, _ = strconv.Atoi(match[2])
		return parsed
	}

	if match := tvPatternSeasonSpelled.FindStringSubmatch(name); match != nil {
		parsed := &ParsedEpisode{
			Title:      cleanTitle(match[1]),
			FullSeason: true,
			FilePath:   filename,
		}
		parsed.Season, _ = strconv.Atoi(match[2])
		return parsed
	}

	return nil
}

func cleanTitle(title string) string {
	return strings.TrimSpace(cleanupPattern.ReplaceAllString(title, " "))
}
