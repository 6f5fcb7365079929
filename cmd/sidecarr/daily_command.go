package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sidecarr/sidecarr/internal/dailyseries"
)

func newDailyCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "daily",
		Short: "Manage the list of daily-airing series",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newDailyAddCommand(ctx))
	cmd.AddCommand(newDailyRemoveCommand(ctx))
	cmd.AddCommand(newDailyListCommand(ctx))
	return cmd
}

func dailyStore(ctx *commandContext) (*dailyseries.Store, error) {
	db, err := ctx.openDatabase()
	if err != nil {
		return nil, err
	}
	log, err := ctx.logger()
	if err != nil {
		return nil, err
	}
	return dailyseries.NewStore(db.Conn(), log), nil
}

func newDailyAddCommand(ctx *commandContext) *cobra.Command {
	var title string

	cmd := &cobra.Command{
		Use:   "add <tvdb-id>",
		Short: "Mark a series as daily",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defer ctx.close()

			tvdbID, err := strconv.Atoi(strings.TrimSpace(args[0]))
			if err != nil || tvdbID <= 0 {
				return errors.New("a positive tvdb id is required")
			}
			store, err := dailyStore(ctx)
			if err != nil {
				return err
			}
			return store.Add(cmd.Context(), tvdbID, title)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Series title, for readability in listings")
	return cmd
}

func newDailyRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <tvdb-id>",
		Short: "Unmark a daily series",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defer ctx.close()

			tvdbID, err := strconv.Atoi(strings.TrimSpace(args[0]))
			if err != nil || tvdbID <= 0 {
				return errors.New("a positive tvdb id is required")
			}
			store, err := dailyStore(ctx)
			if err != nil {
				return err
			}
			return store.Remove(cmd.Context(), tvdbID)
		},
	}
}

func newDailyListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List daily series",
		RunE: func(cmd *cobra.Command, args []string) error {
			defer ctx.close()

			store, err := dailyStore(ctx)
			if err != nil {
				return err
			}
			ids, err := store.All(cmd.Context())
			if err != nil {
				return err
			}
			for _, id := range ids {
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}
			return nil
		},
	}
}
