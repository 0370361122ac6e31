package config

// ExampleConfig returns an example configuration showing all available options.
func ExampleConfig() string {
	return `# todolist configuration file
# Values can be overridden by TODOLIST_* environment variables or CLI flags

# Header shown above the list
title = "Simple To-Do List"
subtitle = "Manage your daily tasks efficiently"

# Placeholder shown in the empty input
placeholder = "What needs to be done?"

# Task id scheme: "sequence" (T1, T2, ...) or "uuid" (time-ordered UUIDv7)
id_scheme = "sequence"

# Go time layout for the creation label of each task
date_format = "1/2/2006, 3:04:05 PM"

# Session log directory (supports ~ expansion and %VAR% on Windows).
# Leave empty to disable file logging in the terminal UI.
# log_dir = "~/.todolist/logs"

# Logging
log_level = "info"
log_format = "text"
log_timestamps = false
log_caller = false
`
}
