package app

import (
	"github.com/spf13/cobra"
)

// NewEditCommand creates the edit command.
func (a *App) NewEditCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "edit <path> <value>",
		GroupID: "review",
		Short:   "Edit a field of the enriched document",
		Long: `Edit replaces the value at the given field path in the enriched
document. The new value is coerced to match the type of the value it
replaces: editing a number field with parseable numeric text keeps it a
number, editing a boolean with "true" or "false" keeps it a boolean, and
anything else becomes a string. The diff is recomputed afterward.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.Session()
			if err != nil {
				return err
			}

			path, value := args[0], args[1]
			if err := s.StartEdit(path); err != nil {
				return err
			}
			s.UpdateEdit(value)
			if err := s.CommitEdit(); err != nil {
				return err
			}

			if err := a.SaveSession(s); err != nil {
				return err
			}

			cmd.Printf("Edited %s\n", path)
			return nil
		},
	}
}

// NewRemoveCommand creates the remove command.
func (a *App) NewRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <path>...",
		GroupID: "review",
		Short:   "Remove fields from the enriched document",
		Long: `Remove deletes each given field path from the enriched document and
recomputes the diff. Removing a path that does not resolve is a no-op.
Array elements are addressed with bracketed indexes (e.g. images.[2]).`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.Session()
			if err != nil {
				return err
			}

			for _, path := range args {
				if err := s.RemoveField(path); err != nil {
					return err
				}
				cmd.Printf("Removed %s\n", path)
			}

			return a.SaveSession(s)
		},
	}
}
