// Copyright 2026 The Volttron TEC Authors
// SPDX-License-Identifier: Apache-2.0

// tec-console is a terminal operator console for a VOLTTRON-based
// transactive energy platform. It talks to the supervisory backend
// over HTTP: browse and control agents, edit stored configurations,
// drive the experiment lifecycle, and tail the platform log with
// syntax highlighting.
//
// Usage:
//
//	tec-console [--config path] [--backend url] [--poll interval]
//	tec-console --print-log
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/pflag"

	"github.com/DanyBoi22/Volttron-TEC/lib/config"
	"github.com/DanyBoi22/Volttron-TEC/lib/consoleui"
	"github.com/DanyBoi22/Volttron-TEC/lib/highlight"
	"github.com/DanyBoi22/Volttron-TEC/lib/platform"
	"github.com/DanyBoi22/Volttron-TEC/lib/version"
)

func main() {
	var (
		configPath  string
		backendURL  string
		pollFlag    string
		logOutput   string
		printLog    bool
		showVersion bool
	)

	pflag.StringVar(&configPath, "config", "", "path to config file (or set "+config.EnvVar+")")
	pflag.StringVar(&backendURL, "backend", "", "backend base URL (overrides config)")
	pflag.StringVar(&pollFlag, "poll", "", "log poll interval, e.g. 10s (overrides config; 0 disables)")
	pflag.StringVar(&logOutput, "log-output", "", "append JSON logs to this file")
	pflag.BoolVar(&printLog, "print-log", false, "fetch the platform log, print it highlighted, and exit")
	pflag.BoolVar(&showVersion, "version", false, "print version and exit")
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [options]\n\noptions:\n", os.Args[0])
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if showVersion {
		version.Print("tec-console")
		os.Exit(0)
	}

	if err := run(configPath, backendURL, pollFlag, logOutput, printLog); err != nil {
		fmt.Fprintf(os.Stderr, "tec-console: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, backendURL, pollFlag, logOutput string, printLog bool) error {
	configuration, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if backendURL != "" {
		configuration.Backend.URL = backendURL
	}
	if pollFlag != "" {
		configuration.Log.PollInterval = pollFlag
	}
	if err := configuration.Validate(); err != nil {
		return err
	}

	pollInterval, err := configuration.Log.PollDuration()
	if err != nil {
		return err
	}
	level, err := configuration.Log.SlogLevel()
	if err != nil {
		return err
	}

	client, err := platform.NewClient(platform.ClientConfig{BaseURL: configuration.Backend.URL})
	if err != nil {
		return err
	}

	if printLog {
		return printPlatformLog(client)
	}

	tuiHandler := consoleui.NewTUILogHandler(level)
	handlers := []slog.Handler{tuiHandler}

	if logOutput != "" {
		logFile, err := os.OpenFile(logOutput, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("opening log output: %w", err)
		}
		defer logFile.Close()
		handlers = append(handlers, slog.NewJSONHandler(logFile, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	logger := slog.New(fanout(handlers...))
	slog.SetDefault(logger)

	store := consoleui.NewStore()
	controller := consoleui.NewController(client, logger)
	model := consoleui.NewModel(store, controller, consoleui.DefaultTheme, consoleui.DefaultKeyMap, pollInterval, logger)

	program := tea.NewProgram(model, tea.WithAltScreen())
	tuiHandler.SetProgram(program)

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running console: %w", err)
	}
	return nil
}

// printPlatformLog implements --print-log: one fetch, highlighted
// output on stdout, no TUI. The color profile is forced to ANSI-256 so
// output is identical whether stdout is a terminal or a pipe.
func printPlatformLog(client *platform.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	raw, err := client.GetLog(ctx)
	if err != nil {
		return err
	}

	lipglossRenderer := lipgloss.NewRenderer(os.Stdout, termenv.WithProfile(termenv.ANSI256))
	renderer := highlight.NewTerminalRenderer(highlight.DefaultStyles(lipglossRenderer))
	fmt.Println(renderer.Document(raw))
	return nil
}
