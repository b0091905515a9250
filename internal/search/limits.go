// Copyright (c) 2024-2026 Caissa Contributors. MIT License. See LICENSE.

package search

import (
	"time"

	. "github.com/caissa-dev/caissa/internal/types"
)

// Limits describes how a single search should be bounded: a time control,
// a fixed depth or node budget, or "search forever until stopped".
type Limits struct {
	Infinite bool
	Ponder   bool
	Mate     int

	Depth int
	Nodes uint64
	Moves MoveList

	TimeControl bool
	WhiteTime   time.Duration
	BlackTime   time.Duration
	WhiteInc    time.Duration
	BlackInc    time.Duration
	MoveTime    time.Duration
	MovesToGo   int
}

// NewLimits returns an empty Limits ready for the caller to fill in.
func NewLimits() *Limits {
	return &Limits{}
}
