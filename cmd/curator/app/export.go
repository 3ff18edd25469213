package app

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/curator/pkg/errors"
)

// NewExportCommand creates the export command.
func (a *App) NewExportCommand() *cobra.Command {
	var (
		output string
		force  bool
	)

	cmd := &cobra.Command{
		Use:     "export",
		GroupID: "review",
		Short:   "Export the final reconciled document",
		Long: `Export merges the reviewer's decisions into the final document:
approved changes keep their enriched values, declined modifications
revert to the original, and declined additions are dropped.

Export requires every changed field to be decided. Use --force to
export anyway, treating still-pending fields as approved.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.Session()
			if err != nil {
				return err
			}

			var final string
			if force {
				doc := s.Generate()
				if final, err = doc.JSONIndent("", "  "); err != nil {
					return err
				}
			} else {
				doc, err := s.Export()
				if err != nil {
					if errors.IsNotReady(err) {
						cmd.PrintErrln(err.Error())
						cmd.PrintErrln("Decide the remaining fields or re-run with --force.")
					}
					return err
				}
				if final, err = doc.JSONIndent("", "  "); err != nil {
					return err
				}
			}

			if output == "" || output == "-" {
				cmd.Println(final)
				return nil
			}

			if err := os.WriteFile(output, []byte(final+"\n"), sessionFilePermissions); err != nil {
				return errors.WrapIO("write", output, err)
			}

			cmd.Printf("Exported to %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the document to a file instead of stdout")
	cmd.Flags().BoolVar(&force, "force", false, "export with pending fields treated as approved")
	return cmd
}
