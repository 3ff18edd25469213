package app

import (
	"os"

	"github.com/spf13/cobra"

	curator "github.com/agentstation/curator"
	"github.com/agentstation/curator/pkg/document"
	"github.com/agentstation/curator/pkg/enrich"
	"github.com/agentstation/curator/pkg/errors"
	"github.com/agentstation/curator/pkg/upstream"
)

// NewFetchCommand creates the fetch command.
func (a *App) NewFetchCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "fetch <url>",
		GroupID: "session",
		Short:   "Fetch a document pair from the enrichment backend",
		Long: `Fetch asks the enrichment backend to scrape the given product page and
run its extraction pipeline, then starts a fresh review session from the
resulting (original, enriched) document pair. Any previous session is
replaced; a failed fetch leaves it untouched.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.config.BackendURL == "" {
				return &errors.ConfigError{
					Component: "fetch",
					Message:   "backend URL required - set backend_url in the config file or BACKEND_URL",
				}
			}

			var opts []upstream.Option
			if a.config.BackendAPIKey != "" {
				opts = append(opts, upstream.WithAPIKey(a.config.BackendAPIKey))
			}
			client := upstream.New(a.config.BackendURL, opts...)

			pair, err := client.Fetch(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return a.startSession(cmd, pair)
		},
	}
}

// NewEnrichCommand creates the enrich command.
func (a *App) NewEnrichCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "enrich <file>",
		GroupID: "session",
		Short:   "Propose an enriched document with Gemini",
		Long: `Enrich reads an original product document from a JSON file, asks Gemini
to fill in or infer missing schema.org properties, and starts a fresh
review session from the (original, proposal) pair.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return errors.WrapIO("read", args[0], err)
			}

			original, err := document.Parse(data)
			if err != nil {
				return errors.WrapParse("json", args[0], err)
			}

			var opts []enrich.Option
			if a.config.GeminiModel != "" {
				opts = append(opts, enrich.WithModel(a.config.GeminiModel))
			}

			enricher, err := enrich.New(cmd.Context(), a.config.GeminiAPIKey, opts...)
			if err != nil {
				return err
			}

			proposal, err := enricher.Propose(cmd.Context(), original)
			if err != nil {
				return err
			}

			return a.startSession(cmd, &upstream.Pair{
				Original: original,
				Enriched: proposal,
			})
		},
	}
}

// startSession begins a fresh review from a document pair, replacing any
// previous session.
func (a *App) startSession(cmd *cobra.Command, pair *upstream.Pair) error {
	s, err := curator.New(
		curator.WithPair(pair),
		curator.WithIgnoreKeys(a.config.IgnoreKeys...),
		curator.WithLogger(a.logger),
	)
	if err != nil {
		return err
	}

	a.SetSession(s)
	if err := a.SaveSession(s); err != nil {
		return err
	}

	summary := s.Diff().Summary()
	cmd.Printf("Review session started: %d new, %d modified, %d unchanged field(s)\n",
		summary.New, summary.Modified, summary.Unchanged)

	if pending := len(s.PendingFields()); pending > 0 {
		cmd.Printf("%d field(s) to review. Run 'curator pending' to list them.\n", pending)
	}
	return nil
}
