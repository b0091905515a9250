// Copyright (c) 2024-2026 Caissa Contributors. MIT License. See LICENSE.

package attacks

import (
	. "github.com/caissa-dev/caissa/internal/types"
)

// AttackerSets bundles the seven piece bitboards (by color and type) an
// attacks query needs. The position package builds one of these from its
// own bitboards; attacks stays free of any position.Position dependency so
// that position can in turn depend on attacks without an import cycle.
type AttackerSets struct {
	Pawns, Knights, Bishops, Rooks, Queens, Kings [2]Bitboard
}

// AttacksTo returns every square, from the given color's pieces, that
// attacks sq under the supplied occupancy. Sliding attacks are computed in
// the "reverse" direction: sq is treated as the slider's origin and the
// result is intersected with the actual piece bitboards, which is
// equivalent to but cheaper than attacking from every candidate piece.
func AttacksTo(set *AttackerSets, sq Square, byColor Color, occupied Bitboard) Bitboard {
	return (PawnAttacks(byColor.Flip(), sq) & set.Pawns[byColor]) |
		(KnightAttacks(sq) & set.Knights[byColor]) |
		(KingAttacks(sq) & set.Kings[byColor]) |
		(SlidingAttacks(Rook, sq, occupied) & (set.Rooks[byColor] | set.Queens[byColor])) |
		(SlidingAttacks(Bishop, sq, occupied) & (set.Bishops[byColor] | set.Queens[byColor]))
}

// IsSquareAttacked is a boolean convenience wrapper around AttacksTo for
// the common "is this square attacked at all" check used by is_in_check
// and castling legality.
func IsSquareAttacked(set *AttackerSets, sq Square, byColor Color, occupied Bitboard) bool {
	return AttacksTo(set, sq, byColor, occupied) != BbZero
}

// PinnedPieces returns every square holding a piece of color us that is
// pinned to its own king: an enemy slider attacks the king's square along
// a rank, file or diagonal with exactly one piece — one of ours — sitting
// in between. Moving that piece (other than along the pin line) would
// expose the king to check.
func PinnedPieces(set *AttackerSets, kingSq Square, us Color, occupied Bitboard) Bitboard {
	them := us.Flip()
	ownOccupied := set.Pawns[us] | set.Knights[us] | set.Bishops[us] | set.Rooks[us] | set.Queens[us] | set.Kings[us]

	snipers := (SlidingAttacks(Rook, kingSq, BbZero) & (set.Rooks[them] | set.Queens[them])) |
		(SlidingAttacks(Bishop, kingSq, BbZero) & (set.Bishops[them] | set.Queens[them]))

	var pinned Bitboard
	for snipers != BbZero {
		var sniperSq Square
		sniperSq, snipers = snipers.PopLSB()
		between := Between(kingSq, sniperSq) & occupied
		if between.PopCount() == 1 {
			pinned |= between & ownOccupied
		}
	}
	return pinned
}

// RevealedAttacks returns sliding attacks on sq from byColor's rooks,
// bishops and queens given a post-move occupancy — used to detect
// discovered attacks/checks uncovered by a moving piece.
func RevealedAttacks(set *AttackerSets, sq Square, byColor Color, occupied Bitboard) Bitboard {
	return (SlidingAttacks(Rook, sq, occupied) & (set.Rooks[byColor] | set.Queens[byColor]) & occupied) |
		(SlidingAttacks(Bishop, sq, occupied) & (set.Bishops[byColor] | set.Queens[byColor]) & occupied)
}
