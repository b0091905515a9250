// Copyright (c) 2024-2026 Caissa Contributors. MIT License. See LICENSE.

package search

import (
	"github.com/caissa-dev/caissa/internal/attacks"
	"github.com/caissa-dev/caissa/internal/position"
	. "github.com/caissa-dev/caissa/internal/types"
)

// see runs a static exchange evaluation of move on p: the net material
// gained after every piece that can recapture on move's target square
// does so, least valuable attacker first, until one side declines
// because continuing would lose material. Returns the result in
// centipawns from the moving side's perspective.
func see(p *position.Board, move Move) Value {
	if move.IsEnPassant() {
		return Value(Pawn.Value())
	}

	var gain [32]Value
	ply := 0
	toSquare := move.To(p.SideToMove())
	fromSquare := move.From(p.SideToMove())
	movedPiece := move.MovingPiece()
	nextPlayer := p.SideToMove()

	occupied := p.Occupied()
	attackerSets := p.AttackerSets()
	remainingAttacks := attacks.AttacksTo(attackerSets, toSquare, White, occupied) |
		attacks.AttacksTo(attackerSets, toSquare, Black, occupied)

	gain[ply] = Value(p.PieceAt(toSquare).TypeOf().Value())

	for {
		ply++
		nextPlayer = nextPlayer.Flip()

		if move.IsPromotion() {
			gain[ply] = Value(move.Promotion().Value()) - Value(Pawn.Value()) - gain[ply-1]
		} else {
			gain[ply] = Value(movedPiece.Value()) - gain[ply-1]
		}
		if max16(-gain[ply-1], gain[ply]) < 0 {
			break
		}

		remainingAttacks = remainingAttacks &^ fromSquare.Bb()
		occupied = occupied &^ fromSquare.Bb()

		remainingAttacks |= attacks.RevealedAttacks(attackerSets, toSquare, White, occupied) |
			attacks.RevealedAttacks(attackerSets, toSquare, Black, occupied)

		fromSquare = leastValuableAttacker(p, remainingAttacks, nextPlayer)
		if fromSquare == SqNone {
			break
		}
		movedPiece = p.PieceAt(fromSquare).TypeOf()
	}

	ply--
	for ply > 0 {
		gain[ply-1] = -max16(-gain[ply-1], gain[ply])
		ply--
	}
	return gain[0]
}

func leastValuableAttacker(p *position.Board, bb Bitboard, c Color) Square {
	for _, pt := range [6]PieceType{Pawn, Knight, Bishop, Rook, Queen, King} {
		if candidates := bb & p.PiecesBb(c, pt); candidates != BbZero {
			sq, _ := candidates.PopLSB()
			return sq
		}
	}
	return SqNone
}

func max16(a, b Value) Value {
	if a > b {
		return a
	}
	return b
}
