// Copyright (c) 2024-2026 Caissa Contributors. MIT License. See LICENSE.

// Package logging is a thin helper around "github.com/op/go-logging" that
// reduces the boilerplate needed in every other package to grab a
// preconfigured logger. Loggers are lazily backed by a stdout formatter and
// a level read from internal/config, so they pick up config/flag changes
// made during process startup.
package logging

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	goLogging "github.com/op/go-logging"

	"github.com/caissa-dev/caissa/internal/config"
)

var (
	standardLog *goLogging.Logger
	searchLog   *goLogging.Logger
	testLog     *goLogging.Logger
	xboardLog   *goLogging.Logger
	xboardFile  *os.File

	standardFormat = goLogging.MustStringFormatter(
		`%{time:15:04:05.000} %{shortpkg:-8.8s}:%{shortfile:-14.14s} %{level:-7.7s}:  %{message}`)

	xboardLogFilePath string
)

func init() {
	programName, _ := os.Executable()
	exePath := filepath.Dir(programName)
	exeName := strings.TrimSuffix(filepath.Base(programName), ".exe")
	xboardLogFilePath = exePath + "/../logs/" + exeName + "_xboard.log"

	standardLog = goLogging.MustGetLogger("standard")
	searchLog = goLogging.MustGetLogger("search")
	testLog = goLogging.MustGetLogger("test")
	xboardLog = goLogging.MustGetLogger("xboard")
}

// GetLog returns the standard logger, configured with a stdout backend at
// the level from config.LogLevel.
func GetLog() *goLogging.Logger {
	backend := goLogging.NewLogBackend(os.Stdout, "", stdLogFlags)
	formatted := goLogging.NewBackendFormatter(backend, standardFormat)
	leveled := goLogging.AddModuleLevel(formatted)
	leveled.SetLevel(goLogging.Level(config.LogLevel), "")
	standardLog.SetBackend(leveled)
	return standardLog
}

// GetSearchLog returns the logger used by the search package for verbose,
// per-node tracing. Kept separate from the standard logger so search
// tracing can be enabled without flooding the rest of the engine's log.
func GetSearchLog() *goLogging.Logger {
	backend := goLogging.NewLogBackend(os.Stdout, "", stdLogFlags)
	formatted := goLogging.NewBackendFormatter(backend, standardFormat)
	leveled := goLogging.AddModuleLevel(formatted)
	leveled.SetLevel(goLogging.Level(config.SearchLogLevel), "")
	searchLog.SetBackend(leveled)
	return searchLog
}

// GetTestLog returns a logger meant for use from _test.go files.
func GetTestLog() *goLogging.Logger {
	backend := goLogging.NewLogBackend(os.Stdout, "", stdLogFlags)
	formatted := goLogging.NewBackendFormatter(backend, standardFormat)
	leveled := goLogging.AddModuleLevel(formatted)
	leveled.SetLevel(goLogging.Level(config.TestLogLevel), "")
	testLog.SetBackend(leveled)
	return testLog
}

// GetXboardLog returns a logger dedicated to raw XBoard/CECP protocol
// traffic, mirroring every line to stdout and, if the logs directory is
// writable, to a log file next to the executable.
func GetXboardLog() *goLogging.Logger {
	xboardFormat := goLogging.MustStringFormatter(`%{time:15:04:05.000} XBOARD %{message}`)

	stdoutBackend := goLogging.AddModuleLevel(
		goLogging.NewBackendFormatter(goLogging.NewLogBackend(os.Stdout, "", stdLogFlags), xboardFormat))
	stdoutBackend.SetLevel(goLogging.DEBUG, "")

	var err error
	xboardFile, err = os.OpenFile(xboardLogFilePath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.Println("xboard logfile could not be created:", err)
		xboardLog.SetBackend(stdoutBackend)
		return xboardLog
	}
	fileBackend := goLogging.AddModuleLevel(
		goLogging.NewBackendFormatter(goLogging.NewLogBackend(xboardFile, "", stdLogFlags), xboardFormat))
	fileBackend.SetLevel(goLogging.DEBUG, "")
	xboardLog.SetBackend(goLogging.SetBackend(stdoutBackend, fileBackend))
	return xboardLog
}

const stdLogFlags = log.Lmsgprefix
