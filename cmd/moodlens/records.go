package main

import (
	"errors"
	"fmt"

	"moodlens/internal/store"

	"github.com/spf13/cobra"
)

const timeLayout = "2006-01-02 15:04"

var entriesCmd = &cobra.Command{
	Use:   "entries",
	Short: "Manage journal entries",
	Long:  `List, show and delete stored journal entries.`,
}

var listEntriesCmd = &cobra.Command{
	Use:   "list",
	Short: "List journal entries, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		entries, err := a.records.ListEntries(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list entries: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(entries) == 0 {
			fmt.Fprintln(out, "No entries found.")
			return nil
		}
		fmt.Fprintln(out, "ID | Mood | Created At | Summary")
		fmt.Fprintln(out, "------------------------------------------------------------")
		for _, e := range entries {
			fmt.Fprintf(out, "%s | %s | %s | %s\n", e.ID, e.DominantEmotion, e.CreatedAt.Local().Format(timeLayout), e.Summary)
		}
		return nil
	},
}

var showEntryCmd = &cobra.Command{
	Use:   "show [entry-id]",
	Short: "Show a journal entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		e, err := a.records.GetEntry(cmd.Context(), args[0])
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("entry not found: %s", args[0])
		}
		if err != nil {
			return fmt.Errorf("failed to get entry: %w", err)
		}
		return printJSON(cmd.OutOrStdout(), e)
	},
}

var deleteEntryCmd = &cobra.Command{
	Use:   "delete [entry-id]",
	Short: "Delete a journal entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		if err := a.records.DeleteEntry(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("failed to delete entry: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted entry %s\n", args[0])
		return nil
	},
}

var checkinsCmd = &cobra.Command{
	Use:   "checkins",
	Short: "Manage mood check-ins",
	Long:  `List, show and delete stored check-ins.`,
}

var listCheckInsCmd = &cobra.Command{
	Use:   "list",
	Short: "List check-ins, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		checkIns, err := a.records.ListCheckIns(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list check-ins: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(checkIns) == 0 {
			fmt.Fprintln(out, "No check-ins found.")
			return nil
		}
		fmt.Fprintln(out, "ID | Score | Mood | Created At")
		fmt.Fprintln(out, "------------------------------------------------------------")
		for _, c := range checkIns {
			fmt.Fprintf(out, "%s | %d | %s | %s\n", c.ID, c.MoodScore, c.DominantEmotion, c.CreatedAt.Local().Format(timeLayout))
		}
		return nil
	},
}

var showCheckInCmd = &cobra.Command{
	Use:   "show [check-in-id]",
	Short: "Show a check-in",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		c, err := a.records.GetCheckIn(cmd.Context(), args[0])
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("check-in not found: %s", args[0])
		}
		if err != nil {
			return fmt.Errorf("failed to get check-in: %w", err)
		}
		return printJSON(cmd.OutOrStdout(), c)
	},
}

var deleteCheckInCmd = &cobra.Command{
	Use:   "delete [check-in-id]",
	Short: "Delete a check-in",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		if err := a.records.DeleteCheckIn(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("failed to delete check-in: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted check-in %s\n", args[0])
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show entry counts, top mood, streak and average check-in score",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		stats, err := a.insights.Stats(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), stats)
	},
}

var trendCmd = &cobra.Command{
	Use:   "trend",
	Short: "Show average emotion scores per day",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		points, err := a.insights.Trend(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), points)
	},
}
