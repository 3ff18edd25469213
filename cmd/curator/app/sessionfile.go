package app

import (
	"fmt"
	"os"

	"github.com/agentstation/utc"
	"github.com/goccy/go-yaml"

	curator "github.com/agentstation/curator"
	"github.com/agentstation/curator/pkg/document"
	"github.com/agentstation/curator/pkg/errors"
	"github.com/agentstation/curator/pkg/review"
	"github.com/agentstation/curator/pkg/upstream"
)

const sessionFilePermissions = 0o644

// sessionFile is the on-disk form of a review session. The documents are
// stored as raw JSON so key order and number literals survive the round
// trip through YAML.
type sessionFile struct {
	SourceURL string                  `yaml:"source_url,omitempty"`
	SavedAt   string                  `yaml:"saved_at"`
	Original  string                  `yaml:"original"`
	Enriched  string                  `yaml:"enriched"`
	Decisions map[string]review.State `yaml:"decisions,omitempty"`
}

// loadSessionFile reconstructs the review session persisted at the
// configured session file path.
func (a *App) loadSessionFile() (curator.Session, error) {
	path := a.config.SessionFile

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: no review session at %s (run 'curator fetch' first)", errors.ErrNoDocuments, path)
		}
		return nil, errors.WrapIO("read", path, err)
	}

	var sf sessionFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, errors.WrapParse("yaml", path, err)
	}

	original, err := document.Parse([]byte(sf.Original))
	if err != nil {
		return nil, errors.WrapParse("json", path+" (original)", err)
	}
	enriched, err := document.Parse([]byte(sf.Enriched))
	if err != nil {
		return nil, errors.WrapParse("json", path+" (enriched)", err)
	}

	pair := &upstream.Pair{
		Original:  original,
		Enriched:  enriched,
		SourceURL: sf.SourceURL,
	}

	opts := []curator.Option{
		curator.WithPair(pair),
		curator.WithIgnoreKeys(a.config.IgnoreKeys...),
		curator.WithLogger(a.logger),
	}

	s, err := curator.New(opts...)
	if err != nil {
		return nil, err
	}

	if len(sf.Decisions) > 0 {
		s.RestoreDecisions(sf.Decisions)
	}

	a.logger.Debug().
		Str("path", path).
		Int("decisions", len(sf.Decisions)).
		Msg("review session loaded")

	return s, nil
}

// SaveSession persists the current review session to the configured
// session file.
func (a *App) SaveSession(s curator.Session) error {
	path := a.config.SessionFile

	original, enriched := s.Documents()

	now := utc.Now()
	sf := sessionFile{
		SourceURL: s.SourceURL(),
		SavedAt:   now.String(),
		Original:  original.JSON(),
		Enriched:  enriched.JSON(),
		Decisions: s.Decisions(),
	}

	data, err := yaml.Marshal(sf)
	if err != nil {
		return errors.WrapIO("encode", path, err)
	}

	if err := os.WriteFile(path, data, sessionFilePermissions); err != nil {
		return errors.WrapIO("write", path, err)
	}

	a.logger.Debug().Str("path", path).Msg("review session saved")
	return nil
}

// RemoveSessionFile deletes the persisted session file, if present.
func (a *App) RemoveSessionFile() error {
	err := os.Remove(a.config.SessionFile)
	if err != nil && !os.IsNotExist(err) {
		return errors.WrapIO("remove", a.config.SessionFile, err)
	}
	return nil
}
