package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/holloway/touchline/internal/team"
)

// NewTemplateCommand creates the template command group: named roster-wide
// lineup snapshots, plus YAML export/import for sharing them.
func NewTemplateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Save, load and share lineup templates",
	}

	save := &cobra.Command{
		Use:   "save <name>",
		Short: "Snapshot the current ad-hoc lineup under a name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.engine.SaveLineup(cmd.Context(), args[0]); err != nil {
				return WrapExitError(ExitCommandError, "failed to save template", err)
			}
			return nil
		},
	}

	load := &cobra.Command{
		Use:   "load <name>",
		Short: "Apply a saved template to the roster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer a.Close()

			ok, err := a.engine.LoadLineup(cmd.Context(), args[0])
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to load template", err)
			}
			if !ok {
				return NewExitError(ExitFailure, fmt.Sprintf("no template named %q", args[0]))
			}
			return nil
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List saved templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer a.Close()

			lineups := a.engine.SavedLineups()
			f := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			if rootOpts.Format == "json" {
				return f.Success(lineups)
			}
			for _, sl := range lineups {
				fmt.Fprintf(cmd.OutOrStdout(), "%-30s %d players\n", sl.Name, len(sl.Entries))
			}
			return nil
		},
	}

	del := &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a saved template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.engine.DeleteSavedLineup(cmd.Context(), args[0]); err != nil {
				return WrapExitError(ExitCommandError, "failed to delete template", err)
			}
			return nil
		},
	}

	export := &cobra.Command{
		Use:   "export <name> <file>",
		Short: "Write a saved template to a YAML file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer a.Close()

			sl, ok := a.engine.SavedLineup(args[0])
			if !ok {
				return NewExitError(ExitFailure, fmt.Sprintf("no template named %q", args[0]))
			}
			data, err := yaml.Marshal(sl)
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to encode template", err)
			}
			if err := os.WriteFile(args[1], data, 0o644); err != nil {
				return WrapExitError(ExitCommandError, "failed to write template file", err)
			}
			return nil
		},
	}

	imp := &cobra.Command{
		Use:   "import <file>",
		Short: "Read a template from a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to read template file", err)
			}
			var sl team.SavedLineup
			if err := yaml.Unmarshal(data, &sl); err != nil {
				return WrapExitError(ExitCommandError, "failed to parse template file", err)
			}

			a, err := openApp(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.engine.ImportSavedLineup(cmd.Context(), sl); err != nil {
				return WrapExitError(ExitCommandError, "failed to import template", err)
			}
			return nil
		},
	}

	cmd.AddCommand(save, load, list, del, export, imp)
	return cmd
}
