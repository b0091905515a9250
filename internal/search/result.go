// Copyright (c) 2024-2026 Caissa Contributors. MIT License. See LICENSE.

package search

import (
	"time"

	. "github.com/caissa-dev/caissa/internal/types"
)

// Result summarizes one completed (or stopped-early) search.
type Result struct {
	BestMove   Move
	PonderMove Move
	BestValue  Value

	SearchDepth int
	ExtraDepth  int
	SearchTime  time.Duration
	NodesVisited uint64
}
