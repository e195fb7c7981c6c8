// Copyright 2025 The WordServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the wordmatch server, IPC and CLI [DBG] application.

wordmatch answers "which words start with this?" for a static word list. The
list is read once from a newline-delimited text file and indexed by its first
one and two characters, so a lookup only scans the words sharing the query's
leading characters. Results keep the word list's order.

# Usage

Start the HTTP server with default settings:

	wordmatch

Use a custom word list and address, with debug logging:

	wordmatch -words /path/to/wordlist.txt -addr :8080 -d

Run in CLI mode for interactive testing:

	wordmatch -c -page 10

Serve msgpack IPC over stdin/stdout:

	wordmatch -ipc

# HTTP

	POST /api/input-match   {"input": "ap"}  ->  {"matches": ["apple", "apply", "ape"]}
	GET  /api/wordlist                        ->  {"wordList": [...]}
	GET  /health

Blank or non-string input gets a 400 with {"error": "Invalid input provided."}.

# Configuration

Runtime configuration lives in a TOML file (YAML works too, by extension):

	[server]
	addr = "127.0.0.1:3000"
	max_body_bytes = 65536

	[words]
	path = "data/wordlist.txt"
	engine = "bucket"
	lazy = false

	[cli]
	page_size = 10

The default config file is created if it doesn't exist. Flags override it.

# Command Line Flags

	-config string   Path to a config file
	-words string    Word list file
	-addr string     HTTP listen address
	-engine string   Match engine: bucket or trie
	-lazy            Load the word list on first request
	-page int        Matches per page in CLI mode
	-d               Enable debug mode with detailed logging
	-c               Run in CLI mode instead of server mode
	-ipc             Serve msgpack over stdin/stdout
	-reset-config    Overwrite the config file with defaults and exit
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/wordmatch/internal/cli"
	"github.com/bastiangx/wordmatch/internal/logger"
	"github.com/bastiangx/wordmatch/internal/utils"
	"github.com/bastiangx/wordmatch/pkg/api"
	"github.com/bastiangx/wordmatch/pkg/config"
	"github.com/bastiangx/wordmatch/pkg/dictionary"
	"github.com/bastiangx/wordmatch/pkg/server"
	"github.com/bastiangx/wordmatch/pkg/suggest"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.1.0-beta"
	AppName = "wordmatch"
	gh      = "https://github.com/bastiangx/wordmatch"
)

// sigHandler is a simple handler for OS signals to exit normally.
// Used by the stdin-driven modes, which can't be interrupted through a context.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main calls other packages to initialize the server, IPC or CLI inputs.
// main() does not implement logic for them and only manages the flow.
func main() {
	defaultConfig := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	configPath := flag.String("config", "", "Path to a TOML or YAML config file")
	wordsPath := flag.String("words", defaultConfig.Words.Path, "Newline-delimited word list file")
	addr := flag.String("addr", defaultConfig.Server.Addr, "HTTP listen address")
	engine := flag.String("engine", defaultConfig.Words.Engine, "Match engine: bucket or trie")
	lazy := flag.Bool("lazy", defaultConfig.Words.Lazy, "Load the word list on first request")
	pageSize := flag.Int("page", defaultConfig.CLI.PageSize, "Matches per page in CLI mode")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	ipcMode := flag.Bool("ipc", false, "Serve msgpack IPC over stdin/stdout")
	resetConfig := flag.Bool("reset-config", false, "Overwrite the config file with defaults and exit")

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

	appConfig, activeConfigPath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(activeConfigPath))

	if *resetConfig {
		target := config.GetActiveConfigPath(activeConfigPath)
		if err := config.RebuildConfigFile(target); err != nil {
			log.Fatalf("Failed to rebuild config at %s: %v", target, err)
		}
		log.Print("Config reset to defaults", "path", target)
		return
	}

	// Explicit flags win over the config file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "words":
			appConfig.Words.Path = *wordsPath
		case "addr":
			appConfig.Server.Addr = *addr
		case "engine":
			appConfig.Words.Engine = *engine
		case "lazy":
			appConfig.Words.Lazy = *lazy
		case "page":
			appConfig.CLI.PageSize = *pageSize
		}
	})
	appConfig.Validate()

	matchEngine, err := suggest.ParseEngine(appConfig.Words.Engine)
	if err != nil {
		log.Fatalf("Invalid engine: %v", err)
	}

	resolvedWords := appConfig.Words.Path
	if pathResolver, err := utils.NewPathResolver(); err != nil {
		log.Warnf("Failed to initialize path resolver: %v", err)
	} else {
		resolvedWords = pathResolver.GetWordListPath(appConfig.Words.Path)
	}
	log.Debugf("Init completer: words=[%s], engine=[%s], lazy=[%t]", resolvedWords, matchEngine, appConfig.Words.Lazy)

	completer := newCompleter(resolvedWords, matchEngine, appConfig.Words.Lazy)

	// CLI would be mainly used for testing and dbg purposes.
	if *cliMode {
		sigHandler()
		log.SetReportTimestamp(false)
		inputHandler := cli.NewInputHandler(completer, appConfig.CLI.PageSize)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		log.Debug("CLI closed", "queries", inputHandler.RequestCount())
		return
	}

	if *ipcMode {
		sigHandler()
		log.Debug("spawning IPC")
		srv := server.NewServer(completer)
		if err := srv.Start(); err != nil {
			log.Fatalf("IPC server failed: %v", err)
		}
		log.Debug("IPC server stopped", "requests", srv.RequestCount())
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	httpLogger := logger.New("http")
	handler := api.NewHandler(completer, httpLogger, appConfig.Server.MaxBodyBytes)
	err = api.Serve(ctx, appConfig.Server, handler.Routes(), httpLogger, func(bound string) {
		showStartupInfo(bound, resolvedWords, completer)
	})
	if err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// newCompleter loads the word list now, or defers it to the first request.
func newCompleter(path string, engine suggest.Engine, lazy bool) *suggest.Completer {
	loader := dictionary.NewLoader(path)
	if lazy {
		return suggest.NewLazyCompleter(loader.Load, engine)
	}

	words, err := loader.Load()
	if err != nil {
		log.Fatalf("Failed to load word list: %v", err)
	}
	log.Debug("Completer init done", "words", len(words))
	return suggest.NewCompleter(words, engine)
}

// printVersion renders the version banner with lipgloss styles.
func printVersion() {
	banner := logger.NewWithConfig("", log.InfoLevel, false, false, log.TextFormatter)

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	banner.SetStyles(styles)

	banner.Print("")
	banner.Print("[ wordmatch ] Serves prefix matches from a word list")
	banner.Print("", "version", Version)
	banner.Print("")
	banner.Print("use -h or --help to see available options")
	banner.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(addr, wordsPath string, completer *suggest.Completer) {
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	stats := completer.Stats()
	println("===========")
	println(" wordmatch ")
	println("===========")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", os.Getpid())
	log.Infof("words: ( %s )", wordsPath)
	log.Infof("engine: %s", completer.Engine())
	if completer.Ready() {
		log.Infof("loaded: %s words", utils.FormatWithCommas(stats["totalWords"]))
	} else {
		log.Info("loaded: on first request")
	}
	log.Infof("listening: http://%s", addr)
	log.Info("status: ready")
	println("===========")
	println("Press Ctrl+C to exit")

	log.SetLevel(currentLevel)
}
