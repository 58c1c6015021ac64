// Copyright 2025 The WordServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the wordseek search server and interactive CLI.

wordseek indexes plain-text files in memory and answers ranked TF-IDF
searches, prefix autocompletion and spelling suggestions. The index can be
saved to a Huffman-compressed file and loaded back later; loading re-reads
every source file, so saved indexes stay valid only while the sources do.

# Usage

Start the IPC server with a few documents:

	wordseek notes/ml.txt notes/dl.txt

Reload a saved index and enable debug logging:

	wordseek -load index.huf -d

Run the interactive CLI:

	wordseek -c -limit 5 notes/*.txt

# Configuration

Runtime configuration is read from a TOML file, created with defaults when
missing:

	[engine]
	max_suggestions = 5
	max_edit_distance = 2
	default_limit = 10
	load_workers = 4

	[cli]
	default_limit = 10
	show_scores = true

	[server]
	max_limit = 64
	max_query = 256

# IPC Protocol

The server reads MessagePack requests from stdin and writes one MessagePack
response per request to stdout. Logs always go to stderr.

	{"id": "r1", "op": "search", "q": "deep learning", "l": 5}
	{"id": "r1", "status": "ok", "r": [{"id": "dl.txt", "s": 1.1}], "c": 1, "t": 48}

See package server for the full set of operations.

# Command Line Flags

	-c  Run the interactive CLI instead of the IPC server
	-d  Enable debug logging
	-config string
	    Path to a config file (default ~/.config/wordseek/config.toml)
	-limit int
	    Number of search results in CLI mode (default from config)
	-load string
	    Index file to load at startup
	-version
	    Show current version

Any remaining arguments are added as documents, named by their file name.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/bastiangx/wordseek/internal/cli"
	"github.com/bastiangx/wordseek/internal/logger"
	"github.com/bastiangx/wordseek/pkg/config"
	"github.com/bastiangx/wordseek/pkg/engine"
	"github.com/bastiangx/wordseek/pkg/server"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.1.0"
	AppName = "wordseek"
	gh      = "https://github.com/bastiangx/wordseek"
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

// main wires config, engine and the chosen front end together.
func main() {
	sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	configPath := flag.String("config", "", "Path to config file")
	limit := flag.Int("limit", 0, "Number of search results in CLI mode (default from config)")
	indexPath := flag.String("load", "", "Index file to load at startup")

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

	appConfig, usedPath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(usedPath))

	engineLogger := logger.NewWithConfig("engine", log.GetLevel(), *debugMode, *debugMode, log.TextFormatter)
	opts := append(engine.OptionsFromConfig(appConfig.Engine), engine.WithLogger(engineLogger))
	searchEngine := engine.New(opts...)

	if *indexPath != "" {
		if err := searchEngine.LoadIndex(*indexPath); err != nil {
			log.Fatalf("Failed to load index: %v", err)
		}
		log.Debugf("Loaded index %s", *indexPath)
	}
	for _, path := range flag.Args() {
		if err := searchEngine.AddDocument(filepath.Base(path), path); err != nil {
			log.Errorf("Skipping %s: %v", path, err)
		}
	}

	// CLI would be mainly used for testing and dbg purposes.
	if *cliMode {
		log.SetReportTimestamp(false)
		cliConfig := appConfig.CLI
		if *limit > 0 {
			cliConfig.DefaultLimit = *limit
		}
		log.Debug("Input info:", "limit", cliConfig.DefaultLimit, "scores", cliConfig.ShowScores)

		inputHandler := cli.NewInputHandler(searchEngine, cliConfig)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(searchEngine, appConfig)
	showStartupInfo(searchEngine.Stats())

	if err := srv.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func printVersion() {
	banner := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	banner.SetStyles(styles)

	banner.Print("")
	banner.Print("[ wordseek ] in-process text search with autocomplete and spelling hints")
	banner.Print("", "version", Version)
	banner.Print("")
	banner.Print("use -h or --help to see available options")
	banner.Print("Github Repo", "gh", gh)
}

// showStartupInfo prints basic init info to stderr; stdout belongs to IPC.
func showStartupInfo(stats engine.Stats) {
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	log.Infof("%s %s", AppName, Version)
	log.Infof("Process ID: [ %d ]", os.Getpid())
	log.Infof("documents: %d, terms: %d", stats.Documents, stats.Terms)
	log.Info("status: ready")

	log.SetLevel(currentLevel)
}
