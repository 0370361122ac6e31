// Package config builds the effective todolist settings.
//
// A Config starts from built-in defaults, then takes values from the user
// file, the project file, TODOLIST_* environment variables and finally the
// global CLI flags, each layer overriding the one before it.
//
// The user file is ~/.todolist/todolist.toml, or todolist/todolist.toml under
// the OS config directory (%APPDATA%, ~/Library/Application Support or
// $XDG_CONFIG_HOME). The project file is todolist.toml or .todolist.toml in
// the working directory. Unknown keys in either file are an error.
//
// Besides the header texts, the config picks the task id scheme and the
// creation date layout, and NewManager turns those into a todo.Manager.
package config
