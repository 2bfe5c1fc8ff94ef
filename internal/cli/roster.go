package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/holloway/touchline/internal/team"
)

// NewRosterCommand creates the roster command group.
func NewRosterCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roster",
		Short: "Manage the player roster",
	}

	cmd.AddCommand(
		newRosterListCommand(rootOpts),
		newRosterAddCommand(rootOpts),
		newRosterRemoveCommand(rootOpts),
		newRosterEditCommand(rootOpts),
		newRosterMoveCommand(rootOpts),
		newRosterSwapCommand(rootOpts),
		newRosterFindCommand(rootOpts),
	)
	return cmd
}

func newRosterListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List players sorted by name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer a.Close()

			players := team.SortPlayersByName(a.engine.Players())
			f := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			if rootOpts.Format == "json" {
				return f.Success(players)
			}
			for _, p := range players {
				fmt.Fprintf(cmd.OutOrStdout(), "%-36s  #%-3d %-10s %s\n", p.ID, p.JerseyNumber, p.Location, p.Name())
			}
			return nil
		},
	}
}

func newRosterAddCommand(rootOpts *RootOptions) *cobra.Command {
	var number int

	cmd := &cobra.Command{
		Use:   "add <first-name> <last-name>",
		Short: "Add a player to the roster",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer a.Close()

			p, err := a.engine.AddPlayer(cmd.Context(), args[0], args[1], number)
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to add player", err)
			}
			f := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			if rootOpts.Format == "json" {
				return f.Success(p)
			}
			return f.Successf("added %s (%s)", p.Name(), p.ID)
		},
	}

	cmd.Flags().IntVar(&number, "number", 0, "jersey number")
	return cmd
}

func newRosterRemoveCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <player-id>",
		Short: "Remove a player, cascading over lineups, events and templates",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.engine.DeletePlayer(cmd.Context(), args[0]); err != nil {
				return WrapExitError(ExitCommandError, "failed to remove player", err)
			}
			return nil
		},
	}
}

func newRosterEditCommand(rootOpts *RootOptions) *cobra.Command {
	var first, last string
	var number int

	cmd := &cobra.Command{
		Use:   "edit <player-id>",
		Short: "Edit a player's name or jersey number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer a.Close()

			// Unset flags keep the current value.
			var current team.Player
			for _, p := range a.engine.Players() {
				if p.ID == args[0] {
					current = p
					break
				}
			}
			if !cmd.Flags().Changed("first") {
				first = current.FirstName
			}
			if !cmd.Flags().Changed("last") {
				last = current.LastName
			}
			if !cmd.Flags().Changed("number") {
				number = current.JerseyNumber
			}

			if err := a.engine.UpdatePlayer(cmd.Context(), args[0], first, last, number); err != nil {
				return WrapExitError(ExitCommandError, "failed to edit player", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&first, "first", "", "first name")
	cmd.Flags().StringVar(&last, "last", "", "last name")
	cmd.Flags().IntVar(&number, "number", 0, "jersey number")
	return cmd
}

func newRosterMoveCommand(rootOpts *RootOptions) *cobra.Command {
	var x, y float64

	cmd := &cobra.Command{
		Use:   "move <player-id> <bench|field>",
		Short: "Set a player's ad-hoc location and position",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := parseRosterLocation(args[1])
			if err != nil {
				return WrapExitError(ExitCommandError, "invalid location", err)
			}

			a, err := openApp(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer a.Close()

			var pos *team.Position
			if loc == team.LocationField && (cmd.Flags().Changed("x") || cmd.Flags().Changed("y")) {
				pos = &team.Position{X: x, Y: y}
			}
			if err := a.engine.MovePlayer(cmd.Context(), args[0], loc, pos); err != nil {
				return WrapExitError(ExitCommandError, "failed to move player", err)
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&x, "x", 0, "field position x")
	cmd.Flags().Float64Var(&y, "y", 0, "field position y")
	return cmd
}

func newRosterSwapCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "swap <player-id> <player-id>",
		Short: "Swap two players' ad-hoc placement",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.engine.SwapPlayers(cmd.Context(), args[0], args[1]); err != nil {
				return WrapExitError(ExitCommandError, "failed to swap players", err)
			}
			return nil
		},
	}
}

func newRosterFindCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "find <query>",
		Short: "Fuzzy-search players by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer a.Close()

			matches := a.engine.FindPlayers(args[0])
			f := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			if rootOpts.Format == "json" {
				return f.Success(matches)
			}
			for _, p := range matches {
				fmt.Fprintf(cmd.OutOrStdout(), "%-36s  #%-3d %s\n", p.ID, p.JerseyNumber, p.Name())
			}
			return nil
		},
	}
}

func parseRosterLocation(s string) (team.Location, error) {
	switch team.Location(s) {
	case team.LocationBench, team.LocationField:
		return team.Location(s), nil
	default:
		return "", fmt.Errorf("%q is not bench or field", s)
	}
}

func parseLineupLocation(s string) (team.Location, error) {
	switch team.Location(s) {
	case team.LocationBench, team.LocationField, team.LocationInactive:
		return team.Location(s), nil
	default:
		return "", fmt.Errorf("%q is not bench, field or inactive", s)
	}
}

func parseSide(s string) (team.Side, error) {
	switch team.Side(s) {
	case team.SideHome, team.SideAway:
		return team.Side(s), nil
	default:
		return "", fmt.Errorf("%q is not home or away", s)
	}
}
