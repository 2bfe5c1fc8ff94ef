package cli

import (
	"github.com/spf13/cobra"
)

// NewTeamCommand creates the team command group.
func NewTeamCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "team",
		Short: "Show or edit the team identity",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the team name and logo reference",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer a.Close()

			f := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			if rootOpts.Format == "json" {
				return f.Success(map[string]string{
					"name": a.engine.TeamName(),
					"logo": a.engine.TeamLogo(),
				})
			}
			return f.Successf("%s", a.engine.TeamName())
		},
	}

	name := &cobra.Command{
		Use:   "name <name>",
		Short: "Set the team name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.engine.SetTeamName(cmd.Context(), args[0]); err != nil {
				return WrapExitError(ExitCommandError, "failed to save team name", err)
			}
			return nil
		},
	}

	logo := &cobra.Command{
		Use:   "logo <reference>",
		Short: "Set the team logo reference",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.engine.SetTeamLogo(cmd.Context(), args[0]); err != nil {
				return WrapExitError(ExitCommandError, "failed to save team logo", err)
			}
			return nil
		},
	}

	cmd.AddCommand(show, name, logo)
	return cmd
}
