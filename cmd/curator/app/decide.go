package app

import (
	"github.com/agentstation/utc"
	"github.com/spf13/cobra"

	"github.com/agentstation/curator/pkg/review"
)

// NewApproveCommand creates the approve command.
func (a *App) NewApproveCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "approve <path>...",
		GroupID: "review",
		Short:   "Approve enriched values for one or more fields",
		Long: `Approve records an approval for each given field path. Approved fields
keep their enriched values in the exported document. Paths use dot
notation; array elements use bracketed indexes (e.g. images.[0]).`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.decide(cmd, args, review.DecisionApprove)
		},
	}
}

// NewDeclineCommand creates the decline command.
func (a *App) NewDeclineCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "decline <path>...",
		GroupID: "review",
		Short:   "Decline enriched values for one or more fields",
		Long: `Decline records a rejection for each given field path. A declined
modified field reverts to its original value in the exported document;
a declined new field is omitted entirely.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.decide(cmd, args, review.DecisionDecline)
		},
	}
}

// decide applies one decision type to each path and persists the session.
func (a *App) decide(cmd *cobra.Command, paths []string, dt review.DecisionType) error {
	s, err := a.Session()
	if err != nil {
		return err
	}

	for _, path := range paths {
		d := review.Decision{
			Type:      dt,
			FieldPath: path,
			DecidedAt: utc.Now(),
		}
		if err := s.Decide(d); err != nil {
			return err
		}

		state, _ := d.State()
		cmd.Printf("%s %s\n", stateLabel(state), path)
	}

	if err := a.SaveSession(s); err != nil {
		return err
	}

	if remaining := len(s.PendingFields()); remaining > 0 {
		cmd.Printf("%d field(s) still pending\n", remaining)
	} else {
		cmd.Println("All fields decided. Run 'curator export' to produce the final document.")
	}
	return nil
}
