// Copyright (c) 2024-2026 Caissa Contributors. MIT License. See LICENSE.

// Package weights holds the evaluator's tunable numbers: the piece-square
// tables and every positional term's bonus/malus magnitude. Separating
// these from internal/config (which only holds the on/off switches for
// each term) means a tuning run can swap in a new Weights value without
// touching which terms are active.
package weights

import (
	. "github.com/caissa-dev/caissa/internal/types"
)

// Weights bundles every numeric constant the evaluator's term functions
// read. Two-phase terms carry separate middlegame/endgame magnitudes; the
// evaluator interpolates between them using the position's game phase.
type Weights struct {
	Tempo int16

	MobilityBonus int16

	BishopPairBonus      int16
	MinorBehindPawnBonus int16
	BishopPawnMalus      int16
	BishopCenterAimBonus int16
	BishopBlockedMalus   int16
	RookOnQueenFileBonus int16
	RookOnOpenFileBonus  int16
	RookOnSeventhBonus   int16
	RookTrappedMalus     int16
	KnightOutpostBonus   int16

	KingCastlePawnShieldBonus int16
	KingRingAttacksBonus      int16
	KingDangerMalus           int16
	KingDefenderBonus         int16

	PawnIsolatedMidMalus  int16
	PawnIsolatedEndMalus  int16
	PawnDoubledMidMalus   int16
	PawnDoubledEndMalus   int16
	PawnPassedMidBonus    int16
	PawnPassedEndBonus    int16
	PawnPhalanxMidBonus   int16
	PawnPhalanxEndBonus   int16
	PawnSupportedMidBonus int16
	PawnSupportedEndBonus int16

	// PinnedPieceMalus is subtracted per pinned officer in the middlegame,
	// and at half weight in the endgame.
	PinnedPieceMalus int16

	Pawn   [SqLength]Value
	PawnEg [SqLength]Value

	Knight   [SqLength]Value
	KnightEg [SqLength]Value

	Bishop   [SqLength]Value
	BishopEg [SqLength]Value

	Rook   [SqLength]Value
	RookEg [SqLength]Value

	Queen   [SqLength]Value
	QueenEg [SqLength]Value

	King   [SqLength]Value
	KingEg [SqLength]Value

	// PassedPawnBonus is indexed by the pawn's rank relative to its own
	// side (1 = its starting rank, 6 = one step from promotion); indices 0
	// and 7 are unused, since no pawn stands on its back or promotion rank.
	PassedPawnBonus [8]int16
}

// Default is the weight set used unless config names another; every
// magnitude below is carried over unchanged from the teacher engine's
// evalConfiguration defaults and piece-square tables.
var Default = Weights{
	Tempo: 34,

	MobilityBonus: 5,

	BishopPairBonus:      20,
	MinorBehindPawnBonus: 15,
	BishopPawnMalus:      5,
	BishopCenterAimBonus: 20,
	BishopBlockedMalus:   40,
	RookOnQueenFileBonus: 6,
	RookOnOpenFileBonus:  25,
	RookOnSeventhBonus:   20,
	RookTrappedMalus:     40,
	KnightOutpostBonus:   20,

	KingCastlePawnShieldBonus: 15,
	KingRingAttacksBonus:      10,
	KingDangerMalus:           8,
	KingDefenderBonus:         4,

	PawnIsolatedMidMalus:  10,
	PawnIsolatedEndMalus:  20,
	PawnDoubledMidMalus:   10,
	PawnDoubledEndMalus:   20,
	PawnPassedMidBonus:    20,
	PawnPassedEndBonus:    40,
	PawnPhalanxMidBonus:   5,
	PawnPhalanxEndBonus:   3,
	PawnSupportedMidBonus: 5,
	PawnSupportedEndBonus: 8,

	PinnedPieceMalus: 12,

	Pawn: [SqLength]Value{
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 5, 5, 5, 5, 5, 5, 0,
		5, 5, 10, 30, 30, 10, 5, 5,
		0, 0, 0, 30, 30, 0, 0, 0,
		5, -5, -10, 0, 0, -10, -5, 5,
		5, 10, 10, -30, -30, 10, 10, 5,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	PawnEg: [SqLength]Value{
		0, 0, 0, 0, 0, 0, 0, 0,
		90, 90, 90, 90, 90, 90, 90, 90,
		40, 50, 50, 60, 60, 50, 50, 40,
		20, 30, 30, 40, 40, 30, 30, 20,
		10, 10, 20, 20, 20, 10, 10, 10,
		5, 10, 10, 10, 10, 10, 10, 5,
		5, 10, 10, 10, 10, 10, 10, 5,
		0, 0, 0, 0, 0, 0, 0, 0,
	},

	Knight: [SqLength]Value{
		-50, -40, -30, -30, -30, -30, -40, -50,
		-40, -20, 0, 0, 0, 0, -20, -40,
		-30, 0, 10, 15, 15, 10, 0, -30,
		-30, 5, 15, 20, 20, 15, 5, -30,
		-30, 0, 15, 20, 20, 15, 0, -30,
		-30, 5, 10, 15, 15, 10, 5, -30,
		-40, -20, 0, 5, 5, 0, -20, -40,
		-50, -25, -20, -30, -30, -20, -25, -50,
	},
	KnightEg: [SqLength]Value{
		-50, -40, -30, -30, -30, -30, -40, -50,
		-40, -20, 0, 0, 0, 0, -20, -40,
		-30, 0, 10, 15, 15, 10, 0, -30,
		-30, 0, 15, 20, 20, 15, 0, -30,
		-30, 0, 15, 20, 20, 15, 0, -30,
		-30, 0, 10, 15, 15, 10, 0, -30,
		-40, -20, 0, 0, 0, 0, -20, -40,
		-50, -40, -20, -30, -30, -20, -40, -50,
	},

	Bishop: [SqLength]Value{
		-20, -10, -10, -10, -10, -10, -10, -20,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 5, 10, 10, 5, 0, -10,
		-10, 5, 5, 10, 10, 5, 5, -10,
		-10, 0, 10, 10, 10, 10, 0, -10,
		-10, 10, 10, 10, 10, 10, 10, -10,
		-10, 5, 0, 0, 0, 0, 5, -10,
		-20, -10, -40, -10, -10, -40, -10, -20,
	},
	BishopEg: [SqLength]Value{
		-20, -10, -10, -10, -10, -10, -10, -20,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-10, 0, 5, 10, 10, 5, 0, -10,
		-10, 0, 5, 10, 10, 5, 0, -10,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-20, -10, -10, -10, -10, -10, -10, -20,
	},

	Rook: [SqLength]Value{
		5, 5, 5, 5, 5, 5, 5, 5,
		10, 10, 10, 10, 10, 10, 10, 10,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		-15, -10, 15, 15, 15, 15, -10, -15,
	},
	RookEg: [SqLength]Value{
		5, 5, 5, 5, 5, 5, 5, 5,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
	},

	Queen: [SqLength]Value{
		-20, -10, -10, -5, -5, -10, -10, -20,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-5, 0, 2, 2, 2, 2, 0, -5,
		-5, 0, 5, 5, 5, 5, 0, -5,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-20, -10, -10, -5, -5, -10, -10, -20,
	},
	QueenEg: [SqLength]Value{
		-20, -10, -10, -5, -5, -10, -10, -20,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-5, 0, 5, 5, 5, 5, 0, -5,
		-5, 0, 5, 5, 5, 5, 0, -5,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-20, -10, -10, -5, -5, -10, -10, -20,
	},

	King: [SqLength]Value{
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-20, -30, -30, -40, -40, -30, -30, -20,
		-10, -20, -20, -30, -30, -30, -20, -10,
		0, 0, -20, -20, -20, -20, 0, 0,
		20, 50, 0, -20, -20, 0, 50, 20,
	},
	KingEg: [SqLength]Value{
		-50, -30, -30, -20, -20, -30, -30, -50,
		-30, -20, -10, 0, 0, -10, -20, -30,
		-30, -10, 20, 30, 30, 20, -10, -30,
		-30, -10, 30, 40, 40, 30, -10, -30,
		-30, -10, 30, 40, 40, 30, -10, -30,
		-30, -10, 20, 30, 30, 20, -10, -30,
		-30, -30, 0, 0, 0, 0, -30, -30,
		-50, -30, -30, -30, -30, -30, -30, -50,
	},

	PassedPawnBonus: [8]int16{0, 10, 15, 25, 40, 60, 90, 0},
}

// PST returns the middlegame/endgame piece-square values for piece type pt
// on sq from c's perspective: the tables above are laid out rank-8-first
// (index 0 = a8) in White's orientation, so White looks up the vertically
// mirrored square and Black indexes the table directly.
func (w *Weights) PST(c Color, pt PieceType, sq Square) (mg, eg Value) {
	look := sq
	if c == White {
		look = sq.Mirror()
	}
	switch pt {
	case Pawn:
		return w.Pawn[look], w.PawnEg[look]
	case Knight:
		return w.Knight[look], w.KnightEg[look]
	case Bishop:
		return w.Bishop[look], w.BishopEg[look]
	case Rook:
		return w.Rook[look], w.RookEg[look]
	case Queen:
		return w.Queen[look], w.QueenEg[look]
	case King:
		return w.King[look], w.KingEg[look]
	default:
		return 0, 0
	}
}

// ByName resolves a config.Settings.Eval.WeightSet value to a Weights
// instance. Only "default" is registered today; an unknown name falls
// back to it rather than erroring, since a missing weight set should
// degrade gracefully mid-game instead of crashing the engine.
func ByName(name string) *Weights {
	switch name {
	default:
		return &Default
	}
}
