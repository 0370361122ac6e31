package config

import "os"

// loadFromEnv overrides config from environment variables.
func loadFromEnv(cfg *Config) {
	if v := os.Getenv("TODOLIST_TITLE"); v != "" {
		cfg.Title = v
	}
	if v := os.Getenv("TODOLIST_SUBTITLE"); v != "" {
		cfg.Subtitle = v
	}
	if v := os.Getenv("TODOLIST_PLACEHOLDER"); v != "" {
		cfg.Placeholder = v
	}
	if v := os.Getenv("TODOLIST_ID_SCHEME"); v != "" {
		cfg.IDScheme = v
	}
	if v := os.Getenv("TODOLIST_DATE_FORMAT"); v != "" {
		cfg.DateFormat = v
	}
	if v := os.Getenv("TODOLIST_LOG_DIR"); v != "" {
		cfg.LogDir = v
	}

	// Logging configuration
	if v := os.Getenv("TODOLIST_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("TODOLIST_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	if v := os.Getenv("TODOLIST_LOG_TIMESTAMPS"); v != "" {
		cfg.LogTimestamps = boolFromString(v)
	}
	if v := os.Getenv("TODOLIST_LOG_CALLER"); v != "" {
		cfg.LogCaller = boolFromString(v)
	}
}
