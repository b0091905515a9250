// Copyright (c) 2024-2026 Caissa Contributors. MIT License. See LICENSE.

package types

import (
	"fmt"

	"github.com/caissa-dev/caissa/internal/assert"
)

// Square is a single square on the board, 0..63 little-endian rank-file:
// square 0 is a1, square 7 is h1, square 56 is a8.
type Square uint8

//noinspection GoUnusedConst
const (
	SqA1 Square = iota
	SqB1
	SqC1
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1
	SqA2
	SqB2
	SqC2
	SqD2
	SqE2
	SqF2
	SqG2
	SqH2
	SqA3
	SqB3
	SqC3
	SqD3
	SqE3
	SqF3
	SqG3
	SqH3
	SqA4
	SqB4
	SqC4
	SqD4
	SqE4
	SqF4
	SqG4
	SqH4
	SqA5
	SqB5
	SqC5
	SqD5
	SqE5
	SqF5
	SqG5
	SqH5
	SqA6
	SqB6
	SqC6
	SqD6
	SqE6
	SqF6
	SqG6
	SqH6
	SqA7
	SqB7
	SqC7
	SqD7
	SqE7
	SqF7
	SqG7
	SqH7
	SqA8
	SqB8
	SqC8
	SqD8
	SqE8
	SqF8
	SqG8
	SqH8
	SqNone
)

// IsValid reports whether sq is one of the 64 board squares.
func (sq Square) IsValid() bool {
	return sq < SqNone
}

// FileOf returns the file of sq.
func (sq Square) FileOf() File {
	return File(sq & 7)
}

// RankOf returns the rank of sq.
func (sq Square) RankOf() Rank {
	return Rank(sq >> 3)
}

// Mirror flips sq vertically (rank r <-> rank 7-r, file unchanged), used to
// look up a rank-8-first piece-square table from White's perspective.
func (sq Square) Mirror() Square {
	return sq ^ 0x38
}

// SquareOf builds a square from a file and rank, returning SqNone if either
// is out of range.
func SquareOf(f File, r Rank) Square {
	if !f.IsValid() || !r.IsValid() {
		return SqNone
	}
	return Square(int(r)<<3 + int(f))
}

// MakeSquare parses a two-character square string like "e4". Returns
// SqNone on malformed input.
func MakeSquare(s string) Square {
	if assert.DEBUG {
		assert.Assert(len(s) == 2, "square string %q is not 2 characters long", s)
	}
	if len(s) != 2 {
		return SqNone
	}
	f := File(s[0] - 'a')
	r := Rank(s[1] - '1')
	if !f.IsValid() || !r.IsValid() {
		return SqNone
	}
	return SquareOf(f, r)
}

// String returns the square's algebraic name, e.g. "e4", or "-" if invalid.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return sq.FileOf().String() + sq.RankOf().String()
}

// Bb returns the singleton bitboard for this square.
func (sq Square) Bb() Bitboard {
	return sqBb[sq]
}

// To steps one square in direction d, returning SqNone if that would leave
// the board or wrap around a file edge.
func (sq Square) To(d Direction) Square {
	switch d {
	case North, South:
		// fallthrough to range check below
	case East, Northeast, Southeast:
		if sq.FileOf() == FileH {
			return SqNone
		}
	case West, Northwest, Southwest:
		if sq.FileOf() == FileA {
			return SqNone
		}
	default:
		panic(fmt.Sprintf("invalid direction %d", d))
	}
	next := int(sq) + int(d)
	if next < 0 || next >= SqLength {
		return SqNone
	}
	return Square(next)
}

// Distance returns the Chebyshev (king-move) distance between two squares.
func (sq Square) Distance(other Square) int {
	df := int(sq.FileOf()) - int(other.FileOf())
	dr := int(sq.RankOf()) - int(other.RankOf())
	if df < 0 {
		df = -df
	}
	if dr < 0 {
		dr = -dr
	}
	if df > dr {
		return df
	}
	return dr
}
