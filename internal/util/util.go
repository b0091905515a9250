// Copyright (c) 2024-2026 Caissa Contributors. MIT License. See LICENSE.

// Package util collects small, dependency-light helpers shared across the
// engine: branch-free numeric helpers, timing/memory diagnostics and a few
// character classifiers used by the FEN and move-string parsers.
package util

import (
	"fmt"
	"runtime"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var out = message.NewPrinter(language.English)

// Abs is a branch-free absolute value for int.
func Abs(n int) int {
	y := n >> 63
	return (n ^ y) - y
}

// Abs16 is a branch-free absolute value for int16.
func Abs16(n int16) int16 {
	y := n >> 15
	return (n ^ y) - y
}

// Abs32 is a branch-free absolute value for int32.
func Abs32(n int32) int32 {
	y := n >> 31
	return (n ^ y) - y
}

// Min returns the smaller of x and y.
func Min(x, y int) int {
	if x < y {
		return x
	}
	return y
}

// Max returns the bigger of x and y.
func Max(x, y int) int {
	if x > y {
		return x
	}
	return y
}

// Clamp restricts v to the closed interval [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// TimeTrack logs the elapsed time since start under name. Usage:
// defer util.TimeTrack(time.Now(), "perft")
func TimeTrack(start time.Time, name string) {
	elapsed := time.Since(start)
	_, _ = out.Printf("%s took %d ns\n", name, elapsed.Nanoseconds())
}

// Nps computes nodes per second, guarding against a zero-duration search.
func Nps(nodes uint64, duration time.Duration) uint64 {
	return uint64(int64(nodes) * time.Second.Nanoseconds() / (duration.Nanoseconds() + 1))
}

// MemStat returns a locale-formatted snapshot of heap usage and GC activity.
func MemStat() string {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	return out.Sprintf("Alloc: %d TotalAlloc: %d HeapAlloc: %d HeapObjects: %d NumGC: %d",
		mem.Alloc, mem.TotalAlloc, mem.HeapAlloc, mem.HeapObjects, mem.NumGC)
}

// GcWithStats forces a GC cycle and reports memory stats before and after,
// plus how long collection took.
func GcWithStats() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("before: %s ", MemStat()))
	start := time.Now()
	runtime.GC()
	b.WriteString(fmt.Sprintf("GC took: %d ms ", time.Since(start).Milliseconds()))
	b.WriteString(fmt.Sprintf("after: %s", MemStat()))
	return b.String()
}

// IsAlpha reports whether l is an ASCII letter.
func IsAlpha(l byte) bool {
	return (l >= 'a' && l <= 'z') || (l >= 'A' && l <= 'Z')
}

// IsLower reports whether l is a lower-case ASCII letter.
func IsLower(l byte) bool {
	return l >= 'a' && l <= 'z'
}

// IsDigit reports whether l is an ASCII digit.
func IsDigit(l byte) bool {
	return l >= '0' && l <= '9'
}
