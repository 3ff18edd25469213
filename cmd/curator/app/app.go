// Package app provides the application context and dependency management
// for the curator CLI. It centralizes configuration, logging, and the
// review session lifecycle behind one struct the commands share.
package app

import (
	"sync"

	"github.com/rs/zerolog"

	curator "github.com/agentstation/curator"
	"github.com/agentstation/curator/pkg/errors"
)

// App represents the curator application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Review session (lazy-loaded from the session file)
	mu      sync.RWMutex
	session curator.Session
}

// New creates a new App instance with the given version information.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, &errors.ConfigError{Component: "app", Message: "loading configuration", Err: err}
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// Session returns the active review session, loading it from the session
// file on first use. Commands that need an existing review call this;
// fetch creates a fresh session instead.
func (a *App) Session() (curator.Session, error) {
	a.mu.RLock()
	if a.session != nil {
		s := a.session
		a.mu.RUnlock()
		return s, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.session != nil {
		return a.session, nil
	}

	s, err := a.loadSessionFile()
	if err != nil {
		return nil, err
	}

	a.session = s
	return s, nil
}

// SetSession replaces the active review session.
func (a *App) SetSession(s curator.Session) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.session = s
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithSession sets a custom review session (useful for testing).
func WithSession(s curator.Session) Option {
	return func(a *App) error {
		a.session = s
		return nil
	}
}
