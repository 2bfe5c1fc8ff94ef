package cli

import (
	"github.com/spf13/cobra"

	"github.com/holloway/touchline/internal/team"
)

// NewLineupCommand creates the lineup command group for in-game moves.
func NewLineupCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lineup",
		Short: "Move players within a game's lineup",
	}

	var x, y float64
	move := &cobra.Command{
		Use:   "move <game-id> <player-id> <from> <to>",
		Short: "Move a player between bench, field and inactive",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parseLineupLocation(args[2])
			if err != nil {
				return WrapExitError(ExitCommandError, "invalid source location", err)
			}
			to, err := parseLineupLocation(args[3])
			if err != nil {
				return WrapExitError(ExitCommandError, "invalid target location", err)
			}

			a, err := openApp(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer a.Close()

			var pos *team.Position
			if to == team.LocationField && (cmd.Flags().Changed("x") || cmd.Flags().Changed("y")) {
				pos = &team.Position{X: x, Y: y}
			}
			if err := a.engine.MovePlayerInGame(cmd.Context(), args[0], args[1], from, to, pos); err != nil {
				return WrapExitError(ExitCommandError, "failed to move player", err)
			}
			return nil
		},
	}
	move.Flags().Float64Var(&x, "x", 0, "field position x")
	move.Flags().Float64Var(&y, "y", 0, "field position y")

	reset := &cobra.Command{
		Use:   "reset <game-id>",
		Short: "Replace the lineup with a fresh bench-only state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer a.Close()

			if _, err := a.engine.ResetGameLineup(cmd.Context(), args[0]); err != nil {
				return WrapExitError(ExitCommandError, "failed to reset lineup", err)
			}
			return nil
		},
	}

	cmd.AddCommand(move, reset)
	return cmd
}
