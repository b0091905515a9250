// Copyright (c) 2024-2026 Caissa Contributors. MIT License. See LICENSE.

package evaluator

import (
	"github.com/caissa-dev/caissa/internal/attacks"
	"github.com/caissa-dev/caissa/internal/config"
	. "github.com/caissa-dev/caissa/internal/types"
)

// evalKing scores king safety for us: a pawn-shield bonus for our pawns
// in front of the king wherever it stands, and (when UseKingSafety is on) a term
// comparing how many squares around the king are attacked versus
// defended, plus a bonus for our own pieces pressuring the enemy king
// ring.
func (e *Evaluator) evalKing(us Color) Score {
	var s Score
	them := us.Flip()
	w := e.weights
	kingSq := e.position.KingSquare(us)

	if config.Settings.Eval.UsePawnShield {
		shield := attacks.KingAttacks(kingSq) & attacks.ForwardFieldMask(us, kingSq)
		count := int16((shield & e.position.PiecesBb(us, Pawn)).PopCount())
		s.MidGame += count * w.KingCastlePawnShieldBonus
	}

	if config.Settings.Eval.UseKingSafety {
		ourRing := attacks.KingAttacks(kingSq)
		enemyAttacks := e.attackedBy(them) & ourRing
		ourDefence := e.attackedBy(us) & ourRing
		enemyCount := enemyAttacks.PopCount()
		ourCount := ourDefence.PopCount()
		if enemyCount > ourCount {
			malus := int16(enemyCount-ourCount) * w.KingDangerMalus
			s.MidGame -= malus
			s.EndGame -= malus
		} else {
			bonus := int16(ourCount-enemyCount) * w.KingDefenderBonus
			s.MidGame += bonus
			s.EndGame += bonus
		}

		if config.Settings.Eval.UseKingRingAttacks {
			theirKingSq := e.position.KingSquare(them)
			if e.attackedBy(us)&attacks.KingAttacks(theirKingSq) != BbZero {
				s.MidGame += w.KingRingAttacksBonus
				s.EndGame += w.KingRingAttacksBonus
			}
		}
	}
	return s
}

// attackedBy returns every square attacked by any of c's pieces (pawns
// included), used by the king-safety term. Computed on demand rather than
// cached across the whole board, since only the two king rings are
// queried per evaluation.
func (e *Evaluator) attackedBy(c Color) Bitboard {
	var attacked Bitboard
	occ := e.allPieces

	pawns := e.position.PiecesBb(c, Pawn)
	for pawns != BbZero {
		var sq Square
		sq, pawns = pawns.PopLSB()
		attacked |= attacks.PawnAttacks(c, sq)
	}
	knights := e.position.PiecesBb(c, Knight)
	for knights != BbZero {
		var sq Square
		sq, knights = knights.PopLSB()
		attacked |= attacks.KnightAttacks(sq)
	}
	bishops := e.position.PiecesBb(c, Bishop) | e.position.PiecesBb(c, Queen)
	for bishops != BbZero {
		var sq Square
		sq, bishops = bishops.PopLSB()
		attacked |= attacks.SlidingAttacks(Bishop, sq, occ)
	}
	rooks := e.position.PiecesBb(c, Rook) | e.position.PiecesBb(c, Queen)
	for rooks != BbZero {
		var sq Square
		sq, rooks = rooks.PopLSB()
		attacked |= attacks.SlidingAttacks(Rook, sq, occ)
	}
	attacked |= attacks.KingAttacks(e.position.KingSquare(c))
	return attacked
}
