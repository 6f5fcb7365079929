package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sidecarr/sidecarr/internal/metadata"
)

func newSearchCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search for a series by title, or by id with a tvdb: prefix",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defer ctx.close()

			svc, err := ctx.metadataService()
			if err != nil {
				return err
			}

			query := strings.Join(args, " ")
			results, err := svc.SearchSeries(cmd.Context(), query)
			if err != nil {
				return err
			}
			if len(results) == 0 {
				return errors.New("no series found")
			}
			for _, series := range results {
				fmt.Fprintln(cmd.OutOrStdout(), metadata.SearchResultSummary(series))
			}
			return nil
		},
	}
}
