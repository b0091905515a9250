// Copyright (c) 2024-2026 Caissa Contributors. MIT License. See LICENSE.

// Package config holds globally available configuration values, either set
// by defaults, read from a TOML config file, or overridden by command line
// flags in cmd/caissa.
package config

import (
	"fmt"
	"log"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"
)

var (
	// ConfFile holds the path to the config file (relative to the working
	// directory). Must be set before Setup() is called.
	ConfFile = "./config.toml"

	// LogLevel is the standard log level, overridable by cmd line or file.
	LogLevel = 5

	// SearchLogLevel is the search-trace log level.
	SearchLogLevel = 5

	// TestLogLevel is the log level used from _test.go files.
	TestLogLevel = 5

	// Settings is the global configuration, populated by Setup().
	Settings conf

	initialized = false
)

type conf struct {
	Log      logConfiguration
	Search   searchConfiguration
	Eval     evalConfiguration
	Protocol protocolConfiguration
}

// Setup reads the configuration file (if present) and applies defaults to
// numeric settings the file leaves at zero; the search and evaluation
// on/off switches are always set to true, whatever the file says.
// Idempotent.
func Setup() {
	if initialized {
		return
	}
	if _, err := toml.DecodeFile(ConfFile, &Settings); err != nil {
		log.Println("Config file not found, using defaults. (", err, ")")
	}
	setupLogLvl()
	setupSearch()
	setupEval()
	initialized = true
}

// String renders the current configuration using reflection, mirroring the
// teacher engine's diagnostic dump for search/eval tuning sessions.
func (c *conf) String() string {
	var b strings.Builder
	dumpSection(&b, "Search Config", &c.Search)
	dumpSection(&b, "Evaluation Config", &c.Eval)
	dumpSection(&b, "Protocol Config", &c.Protocol)
	return b.String()
}

func dumpSection(b *strings.Builder, title string, section interface{}) {
	b.WriteString(title + ":\n")
	v := reflect.ValueOf(section).Elem()
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)
		b.WriteString(fmt.Sprintf("%-2d: %-22s %-6s = %v\n", i, t.Field(i).Name, f.Type(), f.Interface()))
	}
}
