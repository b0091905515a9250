// Copyright (c) 2024-2026 Caissa Contributors. MIT License. See LICENSE.

package search

import (
	. "github.com/caissa-dev/caissa/internal/types"
)

// Statistics are counters kept alongside the search, not essential to its
// correctness but useful for judging move-ordering quality and how often
// each pruning technique fires.
type Statistics struct {
	BestMoveChanges      uint64
	AspirationResearches uint64

	BetaCuts    uint64
	BetaCuts1st uint64

	RfpPrunings  uint64
	NmpPrunings  uint64
	LmrReductions uint64
	LmrResearches uint64
	LmpPrunings  uint64
	PvsResearches uint64

	CheckExtensions uint64

	TTHit      uint64
	TTMiss     uint64
	TTMoveUsed uint64
	TTCuts     uint64

	QSStandpatCuts uint64
	QSSeePrunings  uint64

	LeafPositionsEvaluated uint64
	Checkmates             uint64
	Stalemates             uint64

	CurrentIterationDepth   int
	CurrentSearchDepth      int
	CurrentExtraSearchDepth int
	CurrentBestRootMove     Move
	CurrentBestRootValue    Value
}

func (s *Statistics) String() string {
	return out.Sprintf("%+v", *s)
}
