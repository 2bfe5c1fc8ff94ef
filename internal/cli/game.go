package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/holloway/touchline/internal/engine"
)

// gameFlags binds the shared fixture metadata flags.
func gameFlags(cmd *cobra.Command, params *engine.GameParams) {
	cmd.Flags().StringVar(&params.Opponent, "opponent", "", "opponent name")
	cmd.Flags().StringVar(&params.Date, "date", "", "game date (2006-01-02)")
	cmd.Flags().StringVar(&params.Time, "time", "", "kick-off time (15:04)")
	cmd.Flags().BoolVar(&params.IsHome, "home", true, "playing at home")
	cmd.Flags().StringVar(&params.Season, "season", "", "season tag")
	cmd.Flags().StringVar(&params.Competition, "competition", "", "competition tag")
}

// NewGameCommand creates the game command group.
func NewGameCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Manage fixtures",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List fixtures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer a.Close()

			games := a.engine.Games()
			f := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			if rootOpts.Format == "json" {
				return f.Success(games)
			}
			for _, g := range games {
				fmt.Fprintf(cmd.OutOrStdout(), "%-36s  %s %s  vs %-20s %d-%d\n",
					g.ID, g.Date, g.Time, g.Opponent, g.HomeScore, g.AwayScore)
			}
			return nil
		},
	}

	var addParams engine.GameParams
	add := &cobra.Command{
		Use:   "add",
		Short: "Add a fixture with a fresh all-bench lineup",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer a.Close()

			g, err := a.engine.AddGame(cmd.Context(), addParams)
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to add game", err)
			}
			f := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			if rootOpts.Format == "json" {
				return f.Success(g)
			}
			return f.Successf("added game %s vs %s", g.ID, g.Opponent)
		},
	}
	gameFlags(add, &addParams)

	var editParams engine.GameParams
	edit := &cobra.Command{
		Use:   "edit <game-id>",
		Short: "Edit fixture metadata and clear the finished flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer a.Close()

			// Unset flags keep the stored value.
			if g, ok := a.engine.Game(args[0]); ok {
				if !cmd.Flags().Changed("opponent") {
					editParams.Opponent = g.Opponent
				}
				if !cmd.Flags().Changed("date") {
					editParams.Date = g.Date
				}
				if !cmd.Flags().Changed("time") {
					editParams.Time = g.Time
				}
				if !cmd.Flags().Changed("home") {
					editParams.IsHome = g.IsHome
				}
				if !cmd.Flags().Changed("season") {
					editParams.Season = g.Season
				}
				if !cmd.Flags().Changed("competition") {
					editParams.Competition = g.Competition
				}
			}

			if err := a.engine.UpdateGameSettings(cmd.Context(), args[0], editParams); err != nil {
				return WrapExitError(ExitCommandError, "failed to edit game", err)
			}
			return nil
		},
	}
	gameFlags(edit, &editParams)

	remove := &cobra.Command{
		Use:   "remove <game-id>",
		Short: "Delete a fixture",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.engine.DeleteGame(cmd.Context(), args[0]); err != nil {
				return WrapExitError(ExitCommandError, "failed to remove game", err)
			}
			return nil
		},
	}

	show := &cobra.Command{
		Use:   "show <game-id>",
		Short: "Print one fixture with its lineup and ledger",
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
				return f.Success(g)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s vs %s (%s)\n", g.Date, g.Time, g.Opponent, homeAway(g.IsHome))
			fmt.Fprintf(out, "score %d-%d, clock %s (%ds elapsed)\n", g.HomeScore, g.AwayScore, g.TimerStatus, g.TimerElapsedSeconds)
			for _, entry := range g.Lineup {
				fmt.Fprintf(out, "  %-36s %-10s %4ds on:%d off:%d\n",
					entry.PlayerID, entry.Location, entry.PlaytimeSeconds, entry.SubbedOnCount, entry.SubbedOffCount)
			}
			return nil
		},
	}

	cmd.AddCommand(list, add, edit, remove, show)
	return cmd
}

func homeAway(isHome bool) string {
	if isHome {
		return "home"
	}
	return "away"
}
