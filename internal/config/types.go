package config

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"

	"github.com/nibzard/todolist/internal/todo"
)

// Default values.
const (
	DefaultTitle       = "Simple To-Do List"
	DefaultSubtitle    = "Manage your daily tasks efficiently"
	DefaultPlaceholder = "What needs to be done?"
	DefaultIDScheme    = todo.IDSchemeSequence
	DefaultDateFormat  = todo.DefaultDateLayout
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
)

// Config holds the full configuration for todolist.
type Config struct {
	// Header and input text
	Title       string `toml:"title"`
	Subtitle    string `toml:"subtitle"`
	Placeholder string `toml:"placeholder"`

	// Task identity and display
	IDScheme   string `toml:"id_scheme"`
	DateFormat string `toml:"date_format"`

	// Session log directory. Empty disables file logging for the TUI.
	LogDir string `toml:"log_dir"`

	// Logging configuration
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	LogTimestamps bool   `toml:"log_timestamps"`
	LogCaller     bool   `toml:"log_caller"`
}

// setDefaults fills cfg with built-in defaults.
func setDefaults(cfg *Config) {
	cfg.Title = DefaultTitle
	cfg.Subtitle = DefaultSubtitle
	cfg.Placeholder = DefaultPlaceholder
	cfg.IDScheme = DefaultIDScheme
	cfg.DateFormat = DefaultDateFormat
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
}

// Default returns a config holding only the built-in defaults.
func Default() *Config {
	cfg := &Config{}
	setDefaults(cfg)
	return cfg
}

// NewManager builds a task manager using the configured id scheme and
// date layout.
func (c *Config) NewManager(opts ...todo.Option) (*todo.Manager, error) {
	ids, err := todo.NewIDGenerator(c.IDScheme)
	if err != nil {
		return nil, err
	}
	base := []todo.Option{
		todo.WithIDGenerator(ids),
		todo.WithDateLayout(c.DateFormat),
	}
	return todo.New(append(base, opts...)...), nil
}

// WriteTOML encodes the effective configuration.
func (c *Config) WriteTOML(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}
