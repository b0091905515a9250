// Copyright (c) 2024-2026 Caissa Contributors. MIT License. See LICENSE.

package evaluator

import (
	"github.com/caissa-dev/caissa/internal/attacks"
	"github.com/caissa-dev/caissa/internal/config"
	. "github.com/caissa-dev/caissa/internal/types"
)

// evaluatePawns scores pawn structure for both colors from White's point
// of view, checking the pawn cache first since pawn structure changes far
// less often than the rest of the position.
func (e *Evaluator) evaluatePawns() Score {
	if e.pawnCache != nil {
		if s, ok := e.pawnCache.get(e.position.PawnKey()); ok {
			return s
		}
	}

	var s Score
	s.Add(e.pawnStructure(White))
	sub := e.pawnStructure(Black)
	s.Sub(sub)

	if e.pawnCache != nil {
		e.pawnCache.put(e.position.PawnKey(), s)
	}
	return s
}

// pawnStructure scores one color's pawns in isolation: isolated, doubled,
// passed, phalanx and supported pawns each carry their own bonus/malus.
func (e *Evaluator) pawnStructure(us Color) Score {
	var s Score
	them := us.Flip()
	ourPawns := e.position.PiecesBb(us, Pawn)
	theirPawns := e.position.PiecesBb(them, Pawn)
	w := e.weights

	remaining := ourPawns
	for remaining != BbZero {
		var sq Square
		sq, remaining = remaining.PopLSB()
		file := sq.FileOf()

		adjacentFiles := attacks.FlankMask(sq)

		if config.Settings.Eval.UseIsolatedPawn && adjacentFiles&ourPawns == BbZero {
			s.MidGame -= w.PawnIsolatedMidMalus
			s.EndGame -= w.PawnIsolatedEndMalus
		}

		if config.Settings.Eval.UseDoubledPawn {
			filePawns := attacks.FileMask(sq) & ourPawns
			if filePawns.PopCount() > 1 {
				s.MidGame -= w.PawnDoubledMidMalus
				s.EndGame -= w.PawnDoubledEndMalus
			}
		}

		if config.Settings.Eval.UsePassedPawn && attacks.PassedPawnMask(us, sq)&theirPawns == BbZero {
			distance := int(sq.RankOf())
			if us == Black {
				distance = 7 - distance
			}
			s.MidGame += w.PawnPassedMidBonus + w.PassedPawnBonus[distance]
			s.EndGame += w.PawnPassedEndBonus + w.PassedPawnBonus[distance]
		}

		if config.Settings.Eval.UsePawnPhalanx {
			phalanxMask := Bitboard(0)
			if file > FileA {
				phalanxMask |= Square(sq - 1).Bb()
			}
			if file < FileH {
				phalanxMask |= Square(sq + 1).Bb()
			}
			if phalanxMask&ourPawns != BbZero {
				s.MidGame += w.PawnPhalanxMidBonus
				s.EndGame += w.PawnPhalanxEndBonus
			}
		}

		if config.Settings.Eval.UsePawnSupport {
			if attacks.PawnAttacks(them, sq)&ourPawns != BbZero {
				s.MidGame += w.PawnSupportedMidBonus
				s.EndGame += w.PawnSupportedEndBonus
			}
		}
	}

	return s
}
