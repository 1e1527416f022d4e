package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joshuapare/valuecore/cmd/storeview/logger"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rawArgs := os.Args[1:]
	debugMode := false
	args := make([]string, 0, len(rawArgs))
	for _, arg := range rawArgs {
		if arg == "--debug" || arg == "-d" {
			debugMode = true
		} else {
			args = append(args, arg)
		}
	}

	if err := logger.Init(logger.Options{Enabled: debugMode, Level: slog.LevelDebug}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to init logging: %v\n", err)
	}

	if len(args) < 1 || args[0] == "--help" || args[0] == "-h" {
		printUsage()
		if len(args) < 1 {
			os.Exit(1)
		}
		os.Exit(0)
	}
	if args[0] == "--version" || args[0] == "-v" {
		fmt.Printf("storeview %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built: %s\n", date)
		os.Exit(0)
	}

	path := args[0]
	format := "textual"
	var refresh time.Duration
	for _, arg := range args[1:] {
		switch {
		case arg == "--json":
			format = "json"
		case arg == "--xml":
			format = "xml"
		case arg == "--binary":
			format = "binary"
		case len(arg) > len("--refresh="):
			if arg[:len("--refresh=")] == "--refresh=" {
				if d, err := time.ParseDuration(arg[len("--refresh="):]); err == nil {
					refresh = d
				}
			}
		}
	}

	logger.Info("starting storeview", "path", path, "format", format, "refresh", refresh, "debug", debugMode)

	if _, err := os.Stat(path); err != nil {
		logger.Error("source file not found", "path", path, "error", err)
		fmt.Fprintf(os.Stderr, "Error: file not found: %s\n", path)
		os.Exit(1)
	}

	m, err := NewModel(path, format, refresh)
	if err != nil {
		logger.Error("failed to load source", "path", path, "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := m.Close(); err != nil {
			logger.Warn("error closing source", "error", err)
		}
	}()

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}

	logger.Info("storeview exited normally")
}

func printUsage() {
	fmt.Println("storeview - read-only browser for typed value containers")
	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("  storeview <file> [options]")
	fmt.Println()
	fmt.Println("OPTIONS:")
	fmt.Println("  --json, --xml, --binary   Input encoding (default: textual envelope)")
	fmt.Println("  --refresh=<duration>      Auto-refresh from the source file (e.g. --refresh=2s)")
	fmt.Println("  -d, --debug               Enable debug logging to ~/.storeview/logs/")
	fmt.Println("  -h, --help                Show this help message")
	fmt.Println("  -v, --version             Show version information")
	fmt.Println()
	fmt.Println("NAVIGATION:")
	fmt.Println("  up/k, down/j   move cursor")
	fmt.Println("  enter/l        descend into a container or array")
	fmt.Println("  backspace/h    go to parent")
	fmt.Println("  r              refresh from source (root level only)")
	fmt.Println("  c              copy selected value to clipboard")
	fmt.Println("  ?              toggle help")
	fmt.Println("  q              quit")
}
