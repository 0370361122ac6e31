// Package cmd implements the CLI command structure for todolist.
package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nibzard/todolist/internal/config"
	"github.com/nibzard/todolist/internal/events"
	"github.com/nibzard/todolist/internal/logging"
	"github.com/nibzard/todolist/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

// streams bundles the standard streams so commands can be tested.
type streams struct {
	in  io.Reader
	out io.Writer
	err io.Writer
}

// Run executes the todolist CLI.
func Run(ctx context.Context, args []string) error {
	return run(ctx, args, streams{in: os.Stdin, out: os.Stdout, err: os.Stderr})
}

func run(ctx context.Context, args []string, s streams) error {
	fs := flag.NewFlagSet("todolist", flag.ContinueOnError)
	fs.SetOutput(s.err)
	fs.Usage = func() {
		printUsage(fs, s.err)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")

	cfg, err := config.Load(fs, args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *help {
		printUsage(fs, s.out)
		return nil
	}
	if *showVersion {
		return versionCommand(s.out)
	}

	// No args or a leading flag means the default "tui" command.
	subcommand := "tui"
	remainingArgs := fs.Args()
	if len(remainingArgs) > 0 && !strings.HasPrefix(remainingArgs[0], "-") {
		subcommand = remainingArgs[0]
		remainingArgs = remainingArgs[1:]
	}

	switch subcommand {
	case "tui":
		return tuiCommand(ctx, cfg, remainingArgs)
	case "replay":
		return replayCommand(cfg, remainingArgs, s)
	case "config":
		return configCommand(cfg, remainingArgs, s.out)
	case "version":
		return versionCommand(s.out)
	case "help":
		printUsage(fs, s.out)
		return nil
	default:
		fmt.Fprintf(s.err, "Unknown command: %s\n", subcommand)
		printUsage(fs, s.err)
		return fmt.Errorf("unknown command: %s", subcommand)
	}
}

// tuiCommand launches the interactive list.
func tuiCommand(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected arguments: %v", args)
	}

	manager, err := cfg.NewManager()
	if err != nil {
		return err
	}

	// The alt screen owns stdout, so logs go to a session file or nowhere.
	logger := logging.Discard()
	if cfg.LogDir != "" {
		session, err := logging.OpenSessionLog(cfg.LogDir)
		if err != nil {
			return fmt.Errorf("opening session log: %w", err)
		}
		defer session.Close()
		logger = logging.New(session.Writer(), loggerOptions(cfg))
	}

	return ui.RunTUI(ctx, cfg, manager, logger)
}

// replayCommand applies an event script and prints the final snapshot.
func replayCommand(cfg *config.Config, args []string, s streams) error {
	fs := flag.NewFlagSet("todolist replay", flag.ContinueOnError)
	fs.SetOutput(s.err)
	asJSON := fs.Bool("json", false, "Print the final snapshot as JSON")

	if err := fs.Parse(args); err != nil {
		return err
	}

	remaining := fs.Args()
	if len(remaining) > 1 {
		return fmt.Errorf("unexpected arguments: %v", remaining[1:])
	}

	input := s.in
	source := "stdin"
	if len(remaining) == 1 && remaining[0] != "-" {
		source = remaining[0]
		f, err := os.Open(source)
		if err != nil {
			return fmt.Errorf("open event script: %w", err)
		}
		defer f.Close()
		input = f
	}

	manager, err := cfg.NewManager()
	if err != nil {
		return err
	}
	logger := logging.New(s.err, loggerOptions(cfg))

	applied, err := events.Replay(input, manager, logger)
	if err != nil {
		return fmt.Errorf("replay %s: %w", source, err)
	}
	logger.Info("replay finished", "source", source, "events", applied)

	snapshot := manager.Snapshot()
	if *asJSON {
		enc := json.NewEncoder(s.out)
		enc.SetIndent("", "  ")
		return enc.Encode(snapshot)
	}
	return ui.RenderSnapshot(s.out, cfg.Title, snapshot)
}

// configCommand prints the effective configuration, or an example file.
func configCommand(cfg *config.Config, args []string, w io.Writer) error {
	fs := flag.NewFlagSet("todolist config", flag.ContinueOnError)
	example := fs.Bool("example", false, "Print an example config file instead")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	if *example {
		_, err := io.WriteString(w, config.ExampleConfig())
		return err
	}

	files := config.ConfigFiles()
	if len(files) == 0 {
		fmt.Fprintln(w, "# No config files found; showing defaults with env and flag overrides")
	}
	for _, f := range files {
		fmt.Fprintf(w, "# Loaded from %s\n", f)
	}
	return cfg.WriteTOML(w)
}

func versionCommand(w io.Writer) error {
	fmt.Fprintf(w, "todolist %s\n", Version)
	return nil
}

func loggerOptions(cfg *config.Config) logging.Options {
	return logging.Options{
		Level:      cfg.LogLevel,
		Format:     cfg.LogFormat,
		Timestamps: cfg.LogTimestamps,
		Caller:     cfg.LogCaller,
		Prefix:     "todolist",
	}
}

// printUsage prints usage information.
func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "todolist - an in-memory to-do list for the terminal")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  todolist [options] [command]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  tui                 Launch the terminal UI (default command)")
	fmt.Fprintln(w, "  replay [file|-]     Apply a JSON Lines event script and print the result")
	fmt.Fprintln(w, "  config              Show the effective configuration")
	fmt.Fprintln(w, "  version             Show version information")
	fmt.Fprintln(w, "  help                Show this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Global Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Replay Options:")
	fmt.Fprintln(w, "  -json")
	fmt.Fprintln(w, "        Print the final snapshot as JSON")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Config Options:")
	fmt.Fprintln(w, "  -example")
	fmt.Fprintln(w, "        Print an example config file")
}
