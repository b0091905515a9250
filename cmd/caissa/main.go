// Copyright (c) 2024-2026 Caissa Contributors. MIT License. See LICENSE.

// Command caissa is the process entry point: it parses flags, applies
// them over internal/config's defaults/config-file settings, and then
// either runs a one-shot diagnostic (perft, version) or starts the
// XBoard/CECP protocol loop for a GUI to drive.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/caissa-dev/caissa/internal/config"
	"github.com/caissa-dev/caissa/internal/logging"
	"github.com/caissa-dev/caissa/internal/movegen"
	"github.com/caissa-dev/caissa/internal/position"
	"github.com/caissa-dev/caissa/internal/xboard"
)

var out = message.NewPrinter(language.English)

// logLevels maps the flag-friendly level names to go-logging's numeric
// levels (0=CRITICAL .. 5=DEBUG), mirroring internal/config/logconfig.go's
// numbering.
var logLevels = map[string]int{
	"critical": 0,
	"error":    1,
	"warning":  2,
	"notice":   3,
	"info":     4,
	"debug":    5,
}

func main() {
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "", "standard log level\n(critical|error|warning|notice|info|debug)")
	searchLogLvl := flag.String("searchloglvl", "", "search log level\n(critical|error|warning|notice|info|debug)")
	perft := flag.Int("perft", 0, "runs perft to the given depth on -fen (or the start position) and exits")
	fen := flag.String("fen", position.StartFEN, "FEN used by -perft")
	doProfile := flag.Bool("profile", false, "capture a CPU profile of this run to ./profile/")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	config.ConfFile = *configFile
	config.Setup()

	if lvl, found := logLevels[*logLvl]; found {
		config.LogLevel = lvl
	}
	if lvl, found := logLevels[*searchLogLvl]; found {
		config.SearchLogLevel = lvl
	}
	// loggers are package-level vars created at import time with the
	// pre-Setup default level; re-fetch now that flags/config are applied.
	logging.GetLog()

	if *doProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("./profile")).Stop()
	}

	if *perft != 0 {
		runPerft(*fen, *perft)
		return
	}

	xboard.NewHandler().Loop()
}

func runPerft(fen string, depth int) {
	b, err := position.NewBoardFEN(fen)
	if err != nil {
		fmt.Println("invalid -fen:", err)
		os.Exit(1)
	}
	for d := 1; d <= depth; d++ {
		start := time.Now()
		nodes := movegen.Perft(b, d)
		elapsed := time.Since(start)
		out.Printf("perft(%d) = %d  (%s)\n", d, nodes, elapsed)
	}
}

func printVersionInfo() {
	out.Printf("Caissa %s\n", engineVersionForCLI)
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
}

// engineVersionForCLI mirrors internal/xboard's local version constant;
// kept separate since cmd/caissa must not import xboard's unexported
// identity helper just to print a banner.
const engineVersionForCLI = "0.1"
