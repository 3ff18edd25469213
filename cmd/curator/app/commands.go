package app

import (
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/agentstation/curator/pkg/differ"
	"github.com/agentstation/curator/pkg/document"
	"github.com/agentstation/curator/pkg/review"
)

// titleCaser renders state and kind labels for display.
var titleCaser = cases.Title(language.English)

// label renders a lowercase state or kind value as a display label.
func label(s string) string {
	return titleCaser.String(s)
}

// NewDiffCommand creates the diff command.
func (a *App) NewDiffCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "diff",
		GroupID: "review",
		Short:   "Show the diff between the original and enriched documents",
		Long: `Diff walks the enriched document against the original and classifies
every field as new, modified, or unchanged. Nested objects are compared
field by field; arrays are compared as whole values.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.Session()
			if err != nil {
				return err
			}

			tree := s.Diff()
			cmd.Print(tree.String())

			summary := tree.Summary()
			cmd.Printf("\n%d new, %d modified, %d unchanged\n",
				summary.New, summary.Modified, summary.Unchanged)
			return nil
		},
	}
}

// NewPendingCommand creates the pending command.
func (a *App) NewPendingCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "pending",
		GroupID: "review",
		Short:   "List changed fields still awaiting a decision",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.Session()
			if err != nil {
				return err
			}

			pending := s.PendingFields()
			if len(pending) == 0 {
				cmd.Println("All fields decided. Run 'curator export' to produce the final document.")
				return nil
			}

			_, enriched := s.Documents()
			for _, path := range pending {
				kind, _ := s.DiffKind(path)
				cmd.Printf("%-10s %s", label(string(kind)), path)

				if v, ok := document.GetAt(enriched, document.ParseKey(path)); ok {
					cmd.Printf("  %s", v.JSON())
				}
				if kind == differ.KindModified {
					if orig, ok := s.OriginalValue(path); ok {
						cmd.Printf("  (was %s)", orig.JSON())
					}
				}
				cmd.Println()
			}

			cmd.Printf("\n%d field(s) pending\n", len(pending))
			return nil
		},
	}
}

// NewResetCommand creates the reset command.
func (a *App) NewResetCommand() *cobra.Command {
	var discard bool

	cmd := &cobra.Command{
		Use:     "reset",
		GroupID: "session",
		Short:   "Clear all decisions in the current review",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if discard {
				if err := a.RemoveSessionFile(); err != nil {
					return err
				}
				cmd.Println("Review session discarded.")
				return nil
			}

			s, err := a.Session()
			if err != nil {
				return err
			}

			s.Reset()
			if err := a.SaveSession(s); err != nil {
				return err
			}

			cmd.Println("All decisions cleared.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&discard, "discard", false, "delete the session file entirely")
	return cmd
}

// NewVersionCommand creates the version command.
func (a *App) NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("curator %s\n", a.version)
			if a.config.Verbose {
				cmd.Printf("  commit:   %s\n", a.commit)
				cmd.Printf("  built:    %s\n", a.date)
				cmd.Printf("  built by: %s\n", a.builtBy)
			}
		},
	}
}

// stateLabel renders a validation state for display.
func stateLabel(state review.State) string {
	return label(string(state))
}
