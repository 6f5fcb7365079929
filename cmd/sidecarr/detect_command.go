package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sidecarr/sidecarr/internal/library/tv"
	"github.com/sidecarr/sidecarr/internal/nfo"
)

func newDetectCommand(ctx *commandContext) *cobra.Command {
	var seriesPath string

	cmd := &cobra.Command{
		Use:   "detect <file>...",
		Short: "Classify files as Kodi sidecar artifacts",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defer ctx.close()

			consumer, err := ctx.consumer()
			if err != nil {
				return err
			}

			base := seriesPath
			if base == "" {
				base = filepath.Dir(args[0])
			}
			series := &tv.Series{Path: base}

			for _, path := range args {
				found := consumer.FindMetadataFile(series, path)
				if found == nil {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: not a sidecar file\n", path)
					continue
				}
				if found.Type == nfo.TypeSeasonImage {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (season %d)\n", path, found.Type, found.SeasonNumber)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", path, found.Type)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&seriesPath, "path", "", "Series folder the files belong to")
	return cmd
}
