package config

import "flag"

// parseFlags defines and parses CLI flags.
func parseFlags(cfg *Config, fs *flag.FlagSet, args []string) error {
	if fs == nil {
		fs = flag.NewFlagSet("todolist", flag.ContinueOnError)
	}

	fs.StringVar(&cfg.Title, "title", cfg.Title, "Header title")
	fs.StringVar(&cfg.IDScheme, "id-scheme", cfg.IDScheme, "Task id scheme (sequence|uuid)")
	fs.StringVar(&cfg.DateFormat, "date-format", cfg.DateFormat, "Go time layout for task creation labels")
	fs.StringVar(&cfg.LogDir, "log-dir", cfg.LogDir, "Session log directory (empty disables file logging)")

	// Logging
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug|info|warn|error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (text|json|logfmt)")
	fs.BoolVar(&cfg.LogTimestamps, "log-timestamps", cfg.LogTimestamps, "Include timestamps in log output")
	fs.BoolVar(&cfg.LogCaller, "log-caller", cfg.LogCaller, "Include caller location in log output")

	return fs.Parse(args)
}
