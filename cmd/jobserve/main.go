/*
Package main implements the job-title completion server and CLI application.

jobserve answers typed prefixes with ranked whole-word completions from a
fixed vocabulary of previously observed job-title words, most frequent
first. It loads the prefix index the jobindex tool publishes and serves it
read-only for the lifetime of the process: lookups never mutate state and
run lock-free at any concurrency.

The default mode is a msgpack IPC server over stdin/stdout. Completion
requests are processed synchronously with microsecond timing information
included in responses.

Send a completion request:

	{"id": "req1", "p": "acc", "l": 10}

Receive suggestions with frequency ranking:

	{"id": "req1", "s": [{"w": "account", "r": 1, "f": 42}], "c": 1, "t": 95}

Health and stats ops are available through the op field:

	{"id": "h1", "op": "health"}
	{"id": "s1", "op": "stats"}

# CLI Mode

CLI mode provides an interactive interface for testing and debugging
completion behavior. It reads prefixes from stdin and displays ranked
suggestions with frequency information.

	jobserve -c -limit 10

With -live the CLI answers from a Patricia trie built over the word
frequencies instead of the precomputed table. Both give the same
frequency-descending order; live mode exists to debug the index itself.

# Startup

The service refuses to start without its artifacts: a missing or corrupt
prefix index is a fatal initialization error, never a silently empty
vocabulary.

# Command Line Flags

	-data string
	    Directory containing the published index artifacts (default "data/")
	-config string
	    Path to the TOML config file (default "config.toml")
	-d  Enable debug mode with detailed logging
	-c  Run in CLI mode instead of server mode
	-live
	    CLI mode only: serve from the live trie completer
	-limit int
	    Number of suggestions to return in CLI mode
	-no-filter
	    Disable input filtering for debugging
	-version
	    Show current version
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/jobserve/jobserve/internal/cli"
	"github.com/jobserve/jobserve/pkg/config"
	"github.com/jobserve/jobserve/pkg/server"
	"github.com/jobserve/jobserve/pkg/suggest"
)

const (
	Version = "1.0.0"
	AppName = "jobserve"
	gh      = "https://github.com/jobserve/jobserve"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main calls other packages to initialize the server or CLI inputs.
// main() does not implement logic for them and only manages the flow.
func main() {
	sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	dataDir := flag.String("data", "data/", "Directory containing the index artifacts")
	configPath := flag.String("config", "config.toml", "Path to the TOML config file")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	liveMode := flag.Bool("live", false, "CLI mode: answer from the live trie completer instead of the table")
	limit := flag.Int("limit", 0, "Number of suggestions to return in CLI mode (0 = config default)")
	noFilter := flag.Bool("no-filter", false, "Disable input filtering (DBG only)")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	cfg, err := config.InitConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Startup precondition: the table must load completely or the process
	// must not serve at all.
	table, err := suggest.LoadTable(cfg.IndexPath(*dataDir), cfg.FreqsPath(*dataDir))
	if err != nil {
		log.Fatalf("Failed to load index artifacts from %s: %v", *dataDir, err)
	}
	log.Debugf("Table loaded from %s", *dataDir)

	cliLimit := *limit
	if cliLimit < 1 {
		cliLimit = cfg.Server.DefaultLimit
	}

	if *cliMode {
		log.SetReportTimestamp(false)

		var suggester suggest.Suggester = table
		if *liveMode {
			log.Debug("CLI running against the live trie completer")
			suggester = suggest.NewCompleterFromFrequencies(table.Frequencies())
		}

		inputHandler := cli.NewInputHandler(suggester, cfg.Server.MinPrefix, cfg.Server.MaxPrefix, cliLimit, *noFilter)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	showStartupInfo(*dataDir, table)

	srv := server.NewServer(table, cfg)
	if err := srv.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// printVersion displays a styled version banner.
func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ jobserve ] Ranked word completions for job titles")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
	logger.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(dataDir string, table *suggest.Table) {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	stats := table.Stats()

	println("==========")
	println(" jobserve ")
	println("==========")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", pid)
	log.Infof("data dir: ( %s )", dataDir)
	log.Infof("vocabulary: %d words, %d prefixes", stats["totalWords"], stats["prefixes"])
	log.Info("status: ready")
	println("==========")

	log.SetLevel(currentLevel)
}
