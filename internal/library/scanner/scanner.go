package scanner

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// ScanError records a path that could not be scanned.
type ScanError struct {
	Path  string `json:"path"`
	Error string `json:"error"`
}

// ScanResult contains the episode files found under a series folder.
type ScanResult struct {
	RootPath   string          `json:"rootPath"`
	Episodes   []ParsedEpisode `json:"episodes"`
	Errors     []ScanError     `json:"errors"`
	TotalFiles int             `json:"totalFiles"`
	Skipped    int             `json:"skipped"`
}

// Service provides episode file discovery over a series folder.
type Service struct {
	logger zerolog.Logger
}

// NewService creates a new scanner service.
func NewService(logger zerolog.Logger) *Service {
	return &Service{
		logger: logger.With().Str("component", "scanner").Logger(),
	}
}

// ScanFolder walks a series folder and parses every episode file it
// finds. Samples and season packs are skipped, unreadable paths are
// recorded and the walk continues.
func (s *Service) ScanFolder(ctx context.Context, folderPath string) (*ScanResult, error) {
	result := &ScanResult{
		RootPath: folderPath,
		Episodes: make([]ParsedEpisode, 0),
		Errors:   make([]ScanError, 0),
	}

	s.logger.Info().Str("path", folderPath).Msg("Starting folder scan")

	err := filepath.WalkDir(folderPath, func(path string, d os.DirEntry, walkErr error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if walkErr != nil {
			result.Errors = append(result.Errors, ScanError{Path: path, Error: walkErr.Error()})
			return nil //nolint:nilerr // Record error but continue scanning
		}
		if d.IsDir() || !IsVideoFile(d.Name()) {
			return nil
		}
		if IsSampleFile(d.Name()) {
			result.Skipped++
			return nil
		}
		result.TotalFiles++

		parsed := ParseFilename(d.Name())
		if parsed == nil || parsed.FullSeason {
			result.Skipped++
			return nil
		}
		parsed.FilePath = path
		result.Episodes = append(result.Episodes, *parsed)
		return nil
	})
	if err != nil {
		return result, err
	}

	s.logger.Info().
		Str("path", folderPath).
		Int("totalFiles", result.TotalFiles).
		Int("episodes", len(result.Episodes)).
		Int("errors", len(result.Errors)).
		Int("skipped", result.Skipped).
		Msg("Folder scan completed")

	return result, nil
}
