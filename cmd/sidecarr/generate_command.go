package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/sidecarr/sidecarr/internal/library/scanner"
	"github.com/sidecarr/sidecarr/internal/library/tv"
	"github.com/sidecarr/sidecarr/internal/mediainfo"
	"github.com/sidecarr/sidecarr/internal/metadata"
	"github.com/sidecarr/sidecarr/internal/nfo"
)

func newGenerateCommand(ctx *commandContext) *cobra.Command {
	var tvdbID int
	var seriesPath string
	var dryRun bool
	var downloadImages bool
	var probeFiles bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate Kodi sidecar files for a series folder",
		RunE: func(cmd *cobra.Command, args []string) error {
			defer ctx.close()

			if tvdbID <= 0 {
				return errors.New("a positive --tvdb-id is required")
			}

			svc, err := ctx.metadataService()
			if err != nil {
				return err
			}
			consumer, err := ctx.consumer()
			if err != nil {
				return err
			}
			log, err := ctx.logger()
			if err != nil {
				return err
			}

			gen := &generator{
				svc:            svc,
				consumer:       consumer,
				probe:          nil,
				log:            log,
				out:            cmd.OutOrStdout(),
				dryRun:         dryRun,
				downloadImages: downloadImages,
			}
			if probeFiles {
				gen.probe = mediainfo.NewService(log)
			}
			return gen.run(cmd.Context(), tvdbID, seriesPath)
		},
	}

	cmd.Flags().IntVar(&tvdbID, "tvdb-id", 0, "Series catalog (tvdb) id")
	cmd.Flags().StringVar(&seriesPath, "path", "", "Series folder to scan for episode files")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print artifacts instead of writing them")
	cmd.Flags().BoolVar(&downloadImages, "download-images", false, "Download image artifacts next to the metadata")
	cmd.Flags().BoolVar(&probeFiles, "probe", true, "Probe episode files with ffprobe for stream details")

	return cmd
}

type generator struct {
	svc            *metadata.Service
	consumer       *nfo.Consumer
	probe          *mediainfo.Service
	log            zerolog.Logger
	out            io.Writer
	dryRun         bool
	downloadImages bool
}

func (g *generator) run(ctx context.Context, tvdbID int, seriesPath string) error {
	series, episodes, err := g.svc.GetSeriesInfo(ctx, tvdbID)
	if err != nil {
		return err
	}
	if seriesPath != "" {
		if abs, absErr := filepath.Abs(seriesPath); absErr == nil {
			seriesPath = abs
		}
		series.Path = seriesPath
	}

	result, err := g.consumer.SeriesMetadata(series)
	if err != nil {
		return err
	}
	if result != nil {
		if err := g.writeMetadata(seriesPath, result); err != nil {
			return err
		}
	}

	var images []nfo.ImageFileResult
	images = append(images, g.consumer.SeriesImages(series)...)
	for _, season := range series.Seasons {
		images = append(images, g.consumer.SeasonImages(series, season)...)
	}

	if seriesPath != "" {
		episodeImages, err := g.generateEpisodeArtifacts(ctx, series, episodes, seriesPath)
		if err != nil {
			return err
		}
		images = append(images, episodeImages...)
	}

	return g.handleImages(seriesPath, images)
}

// generateEpisodeArtifacts scans the series folder and emits one .nfo
// per episode file, plus its thumb artifact.
func (g *generator) generateEpisodeArtifacts(ctx context.Context, series *tv.Series, episodes []tv.Episode, seriesPath string) ([]nfo.ImageFileResult, error) {
	scan, err := scanner.NewService(g.log).ScanFolder(ctx, seriesPath)
	if err != nil {
		return nil, err
	}

	var images []nfo.ImageFileResult
	for _, parsed := range scan.Episodes {
		file := g.buildEpisodeFile(ctx, series, episodes, parsed, seriesPath)
		if len(file.Episodes) == 0 {
			g.log.Warn().Str("path", parsed.FilePath).Msg("No matching episodes, skipping file")
			continue
		}

		var info *mediainfo.MediaInfo
		if g.probe != nil {
			if probed, probeErr := g.probe.Probe(ctx, parsed.FilePath); probeErr == nil {
				info = probed
			}
		}

		result, err := g.consumer.EpisodeMetadata(series, file, info)
		if err != nil {
			return nil, err
		}
		if result != nil {
			if err := g.writeMetadata(seriesPath, result); err != nil {
				return nil, err
			}
		}
		images = append(images, g.consumer.EpisodeImages(series, file)...)
	}
	return images, nil
}

// buildEpisodeFile resolves the parsed numbering against the canonical
// episode list, upgrading each hit to the detailed per-episode record
// when the provider has one.
func (g *generator) buildEpisodeFile(ctx context.Context, series *tv.Series, episodes []tv.Episode, parsed scanner.ParsedEpisode, seriesPath string) *tv.EpisodeFile {
	relative, err := filepath.Rel(seriesPath, parsed.FilePath)
	if err != nil {
		relative = filepath.Base(parsed.FilePath)
	}
	file := &tv.EpisodeFile{Path: parsed.FilePath, RelativePath: relative}

	for _, number := range parsed.Episodes {
		listed := findEpisode(episodes, parsed.Season, number)
		if listed == nil {
			continue
		}
		detailed, err := g.svc.GetEpisodeInfo(ctx, series.TmdbID, parsed.Season, number)
		if err != nil {
			g.log.Warn().Err(err).
				Int("season", parsed.Season).
				Int("episode", number).
				Msg("Detailed episode lookup failed, using season listing")
			file.Episodes = append(file.Episodes, *listed)
			continue
		}
		file.Episodes = append(file.Episodes, *detailed)
	}
	return file
}

func findEpisode(episodes []tv.Episode, season, number int) *tv.Episode {
	for i := range episodes {
		if episodes[i].SeasonNumber == season && episodes[i].EpisodeNumber == number {
			return &episodes[i]
		}
	}
	return nil
}

func (g *generator) writeMetadata(basePath string, result *nfo.MetadataFileResult) error {
	if g.dryRun || basePath == "" {
		fmt.Fprintf(g.out, "--- %s ---\n%s\n", result.RelativePath, result.Contents)
		return nil
	}
	target := filepath.Join(basePath, result.RelativePath)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(target, []byte(result.Contents), 0o644); err != nil {
		return err
	}
	g.log.Info().Str("path", target).Msg("Wrote metadata file")
	return nil
}

func (g *generator) handleImages(basePath string, images []nfo.ImageFileResult) error {
	if len(images) == 0 {
		return nil
	}
	if g.dryRun || basePath == "" || !g.downloadImages {
		for _, image := range images {
			fmt.Fprintf(g.out, "image: %s <- %s\n", image.RelativePath, image.URL)
		}
		return nil
	}

	client := &http.Client{Timeout: 60 * time.Second}
	for _, image := range images {
		if err := downloadImage(client, basePath, image); err != nil {
			g.log.Warn().Err(err).Str("url", image.URL).Msg("Image download failed")
			continue
		}
		g.log.Info().Str("path", image.RelativePath).Msg("Downloaded image")
	}
	return nil
}

func downloadImage(client *http.Client, basePath string, image nfo.ImageFileResult) error {
	resp, err := client.Get(image.URL)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	target := filepath.Join(basePath, image.RelativePath)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	f, err := os.Create(target)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = io.Copy(f, resp.Body)
	return err
}
