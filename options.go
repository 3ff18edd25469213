package curator

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/curator/pkg/document"
	"github.com/agentstation/curator/pkg/errors"
	"github.com/agentstation/curator/pkg/upstream"
)

// Option is a function that configures a Session
type Option func(*config) error

// config holds session construction settings
type config struct {
	original   *document.Value
	enriched   *document.Value
	sourceURL  string
	ignoreKeys []string
	logger     *zerolog.Logger
}

// WithDocuments configures the document pair under review.
func WithDocuments(original, enriched document.Value) Option {
	return func(c *config) error {
		c.original = &original
		c.enriched = &enriched
		return nil
	}
}

// WithPair configures the document pair from a fetched upstream pair.
func WithPair(pair *upstream.Pair) Option {
	return func(c *config) error {
		if pair == nil {
			return errors.ErrNoDocuments
		}
		c.original = &pair.Original
		c.enriched = &pair.Enriched
		c.sourceURL = pair.SourceURL
		return nil
	}
}

// WithIgnoreKeys configures keys the diff engine skips at every depth.
func WithIgnoreKeys(keys ...string) Option {
	return func(c *config) error {
		c.ignoreKeys = append(c.ignoreKeys, keys...)
		return nil
	}
}

// WithLogger configures the logger used for session events.
func WithLogger(logger *zerolog.Logger) Option {
	return func(c *config) error {
		c.logger = logger
		return nil
	}
}
