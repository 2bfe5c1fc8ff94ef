package cli

import (
	"github.com/spf13/cobra"
)

// NewClockCommand creates the clock command group: match clock control and
// manual per-player timer control.
func NewClockCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clock",
		Short: "Control the match clock and player timers",
	}

	start := &cobra.Command{
		Use:   "start <game-id>",
		Short: "Start the match clock",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.engine.StartGameTimer(cmd.Context(), args[0]); err != nil {
				return WrapExitError(ExitCommandError, "failed to start clock", err)
			}
			return nil
		},
	}

	stop := &cobra.Command{
		Use:   "stop <game-id>",
		Short: "Stop the match clock, finalizing all player timers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.engine.StopGameTimer(cmd.Context(), args[0]); err != nil {
				return WrapExitError(ExitCommandError, "failed to stop clock", err)
			}
			return nil
		},
	}

	finish := &cobra.Command{
		Use:   "finish <game-id>",
		Short: "Stop the clock and mark the game finished",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.engine.MarkGameFinished(cmd.Context(), args[0]); err != nil {
				return WrapExitError(ExitCommandError, "failed to finish game", err)
			}
			return nil
		},
	}

	elapsed := &cobra.Command{
		Use:   "elapsed <game-id>",
		Short: "Print the effective elapsed time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer a.Close()

			f := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			return f.Successf("%s", a.engine.GameClockElapsed(args[0]))
		},
	}

	playerStart := &cobra.Command{
		Use:   "player-start <game-id> <player-id>",
		Short: "Manually arm one player's timer",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.engine.StartPlayerTimer(cmd.Context(), args[0], args[1]); err != nil {
				return WrapExitError(ExitCommandError, "failed to start player timer", err)
			}
			return nil
		},
	}

	playerStop := &cobra.Command{
		Use:   "player-stop <game-id> <player-id>",
		Short: "Finalize one player's timer",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.engine.StopPlayerTimer(cmd.Context(), args[0], args[1]); err != nil {
				return WrapExitError(ExitCommandError, "failed to stop player timer", err)
			}
			return nil
		},
	}

	cmd.AddCommand(start, stop, finish, elapsed, playerStart, playerStop)
	return cmd
}
