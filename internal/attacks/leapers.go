// Copyright (c) 2024-2026 Caissa Contributors. MIT License. See LICENSE.

package attacks

import (
	. "github.com/caissa-dev/caissa/internal/types"
)

var (
	kingAttacks   [SqLength]Bitboard
	knightAttacks [SqLength]Bitboard
	pawnAttacks   [2][SqLength]Bitboard
	pawnPushes    [2][SqLength]Bitboard

	kingDirections   = [8]Direction{North, Northeast, East, Southeast, South, Southwest, West, Northwest}
	knightOffsets    = [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	pawnAttackDirs   = [2][2]Direction{{Northwest, Northeast}, {Southwest, Southeast}}
)

func initLeapers() {
	for sq := SqA1; sq <= SqH8; sq++ {
		var king, knight Bitboard
		for _, d := range kingDirections {
			if to := sq.To(d); to.IsValid() {
				king = king.Put(to)
			}
		}
		kingAttacks[sq] = king

		sf, sr := int(sq.FileOf()), int(sq.RankOf())
		for _, off := range knightOffsets {
			f, r := sf+off[0], sr+off[1]
			if f < 0 || f > 7 || r < 0 || r > 7 {
				continue
			}
			knight = knight.Put(SquareOf(File(f), Rank(r)))
		}
		knightAttacks[sq] = knight

		for c := White; c <= Black; c++ {
			var atk Bitboard
			for _, d := range pawnAttackDirs[c] {
				if to := sq.To(d); to.IsValid() {
					atk = atk.Put(to)
				}
			}
			pawnAttacks[c][sq] = atk
			if to := sq.To(c.PawnPushDirection()); to.IsValid() {
				pawnPushes[c][sq] = to.Bb()
			}
		}
	}
}

// KingAttacks returns the squares a king on sq attacks.
func KingAttacks(sq Square) Bitboard {
	return kingAttacks[sq]
}

// KnightAttacks returns the squares a knight on sq attacks.
func KnightAttacks(sq Square) Bitboard {
	return knightAttacks[sq]
}

// PawnAttacks returns the squares a pawn of color c on sq attacks
// diagonally (not including straight pushes).
func PawnAttacks(c Color, sq Square) Bitboard {
	return pawnAttacks[c][sq]
}

// PawnSinglePush returns the square directly ahead of sq for color c, used
// by the evaluator (move generation computes pushes inline instead).
func PawnSinglePush(c Color, sq Square) Bitboard {
	return pawnPushes[c][sq]
}

// AttacksBb dispatches to the leaper tables for king/knight and to the
// magic tables for sliders. Pawn attacks are intentionally excluded: the
// caller must use PawnAttacks, since a pawn's attack set has no single
// "occupancy independent" form shared with the other piece types.
func AttacksBb(pt PieceType, sq Square, occupied Bitboard) Bitboard {
	switch pt {
	case King:
		return kingAttacks[sq]
	case Knight:
		return knightAttacks[sq]
	case Bishop, Rook, Queen:
		return SlidingAttacks(pt, sq, occupied)
	default:
		panic("AttacksBb: unsupported piece type")
	}
}
