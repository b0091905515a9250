// Copyright (c) 2024-2026 Caissa Contributors. MIT License. See LICENSE.

package attacks

import (
	. "github.com/caissa-dev/caissa/internal/types"
)

var (
	rankMask    [SqLength]Bitboard
	fileMask    [SqLength]Bitboard
	flankMask   [SqLength]Bitboard
	forwardMask [2][SqLength]Bitboard
	betweenMask [SqLength][SqLength]Bitboard
)

// initBetween fills betweenMask[a][b] with every square strictly between a
// and b along a shared rank, file or diagonal (empty if they don't share
// one), used by the evaluator's pin detection: a piece is pinned when
// exactly one piece sits in the squares between an enemy slider and the
// king it attacks along that line.
func initBetween() {
	dirs := [8]Direction{North, South, East, West, Northeast, Northwest, Southeast, Southwest}
	for sq := SqA1; sq <= SqH8; sq++ {
		for _, d := range dirs {
			var line Bitboard
			cur := sq
			for {
				next := cur.To(d)
				if next == SqNone {
					break
				}
				cur = next
				betweenMask[sq][cur] = line
				line = line.Put(cur)
			}
		}
	}
}

func initMasks() {
	for sq := SqA1; sq <= SqH8; sq++ {
		rankMask[sq] = sq.RankOf().Bb()
		fileMask[sq] = sq.FileOf().Bb()

		var flank Bitboard
		f := sq.FileOf()
		if f > FileA {
			flank |= File(f - 1).Bb()
		}
		if f < FileH {
			flank |= File(f + 1).Bb()
		}
		flankMask[sq] = flank

		var whiteForward, blackForward Bitboard
		for r := int(sq.RankOf()) + 1; r < 8; r++ {
			whiteForward |= Rank(r).Bb()
		}
		for r := int(sq.RankOf()) - 1; r >= 0; r-- {
			blackForward |= Rank(r).Bb()
		}
		forwardMask[White][sq] = whiteForward
		forwardMask[Black][sq] = blackForward
	}
}

// RankMask returns a bitboard of every square on sq's rank.
func RankMask(sq Square) Bitboard {
	return rankMask[sq]
}

// FileMask returns a bitboard of every square on sq's file.
func FileMask(sq Square) Bitboard {
	return fileMask[sq]
}

// FlankMask returns a bitboard of the files adjacent to sq's file (not
// including sq's own file), used for isolated/passed pawn detection.
func FlankMask(sq Square) Bitboard {
	return flankMask[sq]
}

// ForwardFieldMask returns every square strictly ahead of sq from color
// c's perspective, spanning all files, used for passed-pawn and king-
// safety evaluation terms.
func ForwardFieldMask(c Color, sq Square) Bitboard {
	return forwardMask[c][sq]
}

// PassedPawnMask returns the set of squares that must be free of enemy
// pawns for the pawn on sq (color c) to be passed: its own file and both
// flank files, all strictly ahead.
func PassedPawnMask(c Color, sq Square) Bitboard {
	return (fileMask[sq] | flankMask[sq]) & forwardMask[c][sq]
}

// Between returns every square strictly between a and b if they share a
// rank, file or diagonal, or BbZero if they don't line up at all.
func Between(a, b Square) Bitboard {
	return betweenMask[a][b]
}
