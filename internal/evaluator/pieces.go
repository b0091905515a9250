// Copyright (c) 2024-2026 Caissa Contributors. MIT License. See LICENSE.

package evaluator

import (
	"github.com/caissa-dev/caissa/internal/attacks"
	"github.com/caissa-dev/caissa/internal/config"
	. "github.com/caissa-dev/caissa/internal/types"
)

// evalPiece scores every piece of type pt belonging to us: knight/bishop
// outpost and pawn-shelter terms, the bishop pair bonus, and rook
// file/trapped terms. Pawns and kings have their own dedicated evaluators.
func (e *Evaluator) evalPiece(us Color, pt PieceType) Score {
	var s Score
	pieces := e.position.PiecesBb(us, pt)
	if pieces == BbZero {
		return s
	}
	w := e.weights

	switch pt {
	case Knight:
		for pieces != BbZero {
			var sq Square
			sq, pieces = pieces.PopLSB()
			s.Add(e.knightEval(us, sq))
		}
	case Bishop:
		if config.Settings.Eval.UseBishopPair && pieces.PopCount() > 1 {
			s.MidGame += w.BishopPairBonus
			s.EndGame += w.BishopPairBonus
		}
		for pieces != BbZero {
			var sq Square
			sq, pieces = pieces.PopLSB()
			s.Add(e.bishopEval(us, sq))
		}
	case Rook:
		for pieces != BbZero {
			var sq Square
			sq, pieces = pieces.PopLSB()
			s.Add(e.rookEval(us, sq))
		}
	case Queen:
		// no dedicated queen term yet: its mobility already flows through
		// the shared mobility bonus computed in evaluate().
	}
	return s
}

// knightEval scores a knight on sq for us: a small bonus for sheltering
// behind one of our own pawns, and (if enabled) an outpost bonus for
// sitting on a square no enemy pawn can ever attack, defended by one of
// ours.
func (e *Evaluator) knightEval(us Color, sq Square) Score {
	var s Score
	them := us.Flip()
	w := e.weights

	if behindPawn(e.position.PiecesBb(us, Pawn), us, sq) {
		s.MidGame += w.MinorBehindPawnBonus
	}

	if config.Settings.Eval.UseKnightOutpost && e.isOutpost(us, them, sq) {
		s.MidGame += w.KnightOutpostBonus
		s.EndGame += w.KnightOutpostBonus / 2
	}
	return s
}

// bishopEval scores a bishop on sq for us: minor-behind-pawn shelter,
// a same-colored-pawns malus that bites harder in the endgame, a bonus
// for aiming at the center, and a malus for a back-rank bishop that has
// no legal moves at all (boxed in by its own pawns).
func (e *Evaluator) bishopEval(us Color, sq Square) Score {
	var s Score
	w := e.weights

	if behindPawn(e.position.PiecesBb(us, Pawn), us, sq) {
		s.MidGame += w.MinorBehindPawnBonus
	}

	ownPawns := e.position.PiecesBb(us, Pawn)
	if isLightSquare(sq) {
		s.EndGame -= w.BishopPawnMalus * int16((ownPawns & lightSquares).PopCount())
	} else {
		s.EndGame -= w.BishopPawnMalus * int16((ownPawns &^ lightSquares).PopCount())
	}

	centerAim := attacks.SlidingAttacks(Bishop, sq, e.allPieces) & centerSquares
	s.MidGame += w.BishopCenterAimBonus * int16(centerAim.PopCount())

	homeRank := Rank1
	if us == Black {
		homeRank = Rank8
	}
	if sq.RankOf() == homeRank {
		mobility := attacks.SlidingAttacks(Bishop, sq, e.allPieces) &^ e.position.OccupiedBy(us)
		if mobility == BbZero {
			s.MidGame -= w.BishopBlockedMalus
			s.EndGame -= w.BishopBlockedMalus
		}
	}
	return s
}

// rookEval scores a rook on sq for us: bonus for sharing a file with our
// queen or for standing on an open/semi-open file, malus for being boxed
// in on the far side of our own uncastled king.
func (e *Evaluator) rookEval(us Color, sq Square) Score {
	var s Score
	w := e.weights

	if attacks.FileMask(sq)&e.position.PiecesBb(us, Queen) != BbZero {
		s.MidGame += w.RookOnQueenFileBonus
		s.EndGame += w.RookOnQueenFileBonus
	}

	if config.Settings.Eval.UseRookOpenFile && attacks.FileMask(sq)&e.position.PiecesBb(us, Pawn) == BbZero {
		s.MidGame += w.RookOnOpenFileBonus
	}

	seventhRank := Rank7
	if us == Black {
		seventhRank = Rank2
	}
	if config.Settings.Eval.UseRookOnSeventh && sq.RankOf() == seventhRank {
		s.MidGame += w.RookOnSeventhBonus
		s.EndGame += w.RookOnSeventhBonus
	}

	if config.Settings.Eval.UseTrappedPieceMalus {
		kingSq := e.position.KingSquare(us)
		if sq.RankOf() == kingSq.RankOf() {
			if kingSq.FileOf() >= FileE && sq > kingSq {
				s.MidGame -= w.RookTrappedMalus
			} else if kingSq.FileOf() <= FileD && sq < kingSq {
				s.MidGame -= w.RookTrappedMalus
			}
		}
	}
	return s
}

// behindPawn reports whether sq, from us's perspective, sits directly
// behind one of our own pawns - shelter that keeps a minor piece safer.
func behindPawn(ourPawns Bitboard, us Color, sq Square) bool {
	back := us.Flip().PawnPushDirection()
	shifted := ourPawns.Shift(back)
	return shifted.Has(sq)
}

// isOutpost reports whether sq can never be attacked by an enemy pawn and
// is currently defended by one of our own - the classic knight/bishop
// outpost square.
func (e *Evaluator) isOutpost(us, them Color, sq Square) bool {
	guardedApproach := attacks.FlankMask(sq) & attacks.ForwardFieldMask(us, sq)
	if guardedApproach&e.position.PiecesBb(them, Pawn) != BbZero {
		return false
	}
	return attacks.PawnAttacks(them, sq)&e.position.PiecesBb(us, Pawn) != BbZero
}

var (
	centerSquares Bitboard
	lightSquares  Bitboard
)

func init() {
	for _, sq := range []Square{SqD4, SqE4, SqD5, SqE5} {
		centerSquares = centerSquares.Put(sq)
	}
	for sq := SqA1; sq <= SqH8; sq++ {
		if (int(sq.FileOf())+int(sq.RankOf()))%2 == 1 {
			lightSquares = lightSquares.Put(sq)
		}
	}
}

// isLightSquare reports whether sq is a light square.
func isLightSquare(sq Square) bool {
	return lightSquares.Has(sq)
}
