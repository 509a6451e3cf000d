package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"karasync/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect and manage run history",
	}

	historyCmd.AddCommand(newHistoryListCommand(ctx))
	historyCmd.AddCommand(newHistoryClearCommand(ctx))
	historyCmd.AddCommand(newHistoryExcludeCommand(ctx))
	historyCmd.AddCommand(newHistoryExclusionsCommand(ctx))

	return historyCmd
}

// withHistory opens the configured history store for the duration of fn.
func (c *commandContext) withHistory(fn func(*history.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	if !cfg.History.Enabled {
		return errors.New("run history is disabled in the configuration")
	}
	store, err := history.Open(cfg.Paths.HistoryDir)
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer store.Close()
	return fn(store)
}

func newHistoryListCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded synchronization runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withHistory(func(store *history.Store) error {
				runs, err := store.ListRuns(cmd.Context(), limit)
				if err != nil {
					return err
				}
				if jsonOutput {
					return writeJSON(cmd, runs)
				}
				if len(runs) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No runs recorded")
					return nil
				}

				headers := []string{"When", "Song", "Lines", "Matched", "Offset", "Output"}
				aligns := []columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignRight, alignLeft}
				rows := make([][]string, 0, len(runs))
				for _, run := range runs {
					offset := "-"
					if run.OffsetApplied {
						offset = fmt.Sprintf("%.2fs", run.GlobalOffset)
					}
					rows = append(rows, []string{
						run.CreatedAt.Local().Format("2006-01-02 15:04"),
						songLabel(run.Title, run.Artist),
						fmt.Sprintf("%d", run.LineCount),
						fmt.Sprintf("%d/%d", run.MatchedWords, run.WordCount),
						offset,
						run.OutputPath,
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(headers, rows, aligns))
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of runs to show")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit runs as JSON")
	return cmd
}

func newHistoryClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all recorded runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withHistory(func(store *history.Store) error {
				removed, err := store.ClearRuns(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %d runs\n", removed)
				return nil
			})
		},
	}
}

func newHistoryExcludeCommand(ctx *commandContext) *cobra.Command {
	var artist string

	cmd := &cobra.Command{
		Use:   "exclude <title>",
		Short: "Never synchronize a song again",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withHistory(func(store *history.Store) error {
				title := args[0]
				if err := store.AddExclusion(cmd.Context(), title, artist); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Excluded %s\n", songLabel(title, artist))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&artist, "artist", "", "Song artist")
	return cmd
}

func newHistoryExclusionsCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "exclusions",
		Short: "List excluded songs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withHistory(func(store *history.Store) error {
				exclusions, err := store.Exclusions(cmd.Context())
				if err != nil {
					return err
				}
				if jsonOutput {
					return writeJSON(cmd, exclusions)
				}
				if len(exclusions) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No exclusions")
					return nil
				}

				headers := []string{"Song", "Key", "Added"}
				aligns := []columnAlignment{alignLeft, alignLeft, alignLeft}
				rows := make([][]string, 0, len(exclusions))
				for _, ex := range exclusions {
					rows = append(rows, []string{
						songLabel(ex.Title, ex.Artist),
						ex.SongKey,
						ex.AddedAt.Local().Format("2006-01-02 15:04"),
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(headers, rows, aligns))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit exclusions as JSON")
	return cmd
}
