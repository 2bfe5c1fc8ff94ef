package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// NewEventsCommand creates the events command group for the scoring ledger.
func NewEventsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Record and undo scoring events",
	}

	var scorer, assist string
	add := &cobra.Command{
		Use:   "add <game-id> <home|away>",
		Short: "Record a goal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			side, err := parseSide(args[1])
			if err != nil {
				return WrapExitError(ExitCommandError, "invalid side", err)
			}

			a, err := openApp(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer a.Close()

			ev, err := a.engine.AddGameEvent(cmd.Context(), args[0], side, scorer, assist)
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to record goal", err)
			}
			f := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			if rootOpts.Format == "json" {
				return f.Success(ev)
			}
			return nil
		},
	}
	add.Flags().StringVar(&scorer, "scorer", "", "scorer player id")
	add.Flags().StringVar(&assist, "assist", "", "assist player id")

	undo := &cobra.Command{
		Use:   "undo <game-id> <home|away>",
		Short: "Remove the most recent goal for one side",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			side, err := parseSide(args[1])
			if err != nil {
				return WrapExitError(ExitCommandError, "invalid side", err)
			}

			a, err := openApp(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.engine.RemoveLastGameEvent(cmd.Context(), args[0], side); err != nil {
				return WrapExitError(ExitCommandError, "failed to undo goal", err)
			}
			return nil
		},
	}

	list := &cobra.Command{
		Use:   "list <game-id>",
		Short: "List a game's scoring ledger in order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer a.Close()

			g, ok := a.engine.Game(args[0])
			if !ok {
				return NewExitError(ExitFailure, fmt.Sprintf("no game with id %s", args[0]))
			}
			f := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			if rootOpts.Format == "json" {
				return f.Success(g.Events)
			}
			for _, ev := range g.Events {
				ts := time.UnixMilli(ev.Timestamp).Format("15:04:05")
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %-4s %s scorer=%s assist=%s\n", ts, ev.Side, ev.Kind, ev.ScorerID, ev.AssistID)
			}
			return nil
		},
	}

	cmd.AddCommand(add, undo, list)
	return cmd
}
