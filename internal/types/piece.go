// Copyright (c) 2024-2026 Caissa Contributors. MIT License. See LICENSE.

package types

import "strings"

// Piece is a colored piece kind. Twelve piece kinds are indexed 2..13 with
// the low bit encoding color (even = white, odd = black); 0 denotes empty.
// The encoding lets color-agnostic code compute the enemy kind by XOR 1
// and index paired tables (piece-square tables, attack tables) directly
// by Piece without first splitting into color and type.
type Piece int8

//noinspection GoUnusedConst
const (
	PieceNone Piece = 0

	WhitePawn Piece = 2
	BlackPawn Piece = 3

	WhiteKnight Piece = 4
	BlackKnight Piece = 5

	WhiteBishop Piece = 6
	BlackBishop Piece = 7

	WhiteRook Piece = 8
	BlackRook Piece = 9

	WhiteQueen Piece = 10
	BlackQueen Piece = 11

	WhiteKing Piece = 12
	BlackKing Piece = 13

	PieceLength = 14
)

// MakePiece combines a color and piece type into a Piece.
func MakePiece(c Color, pt PieceType) Piece {
	if pt == PtNone {
		return PieceNone
	}
	return Piece(int(pt)<<1 | int(c))
}

// ColorOf returns the color of p. Undefined for PieceNone.
func (p Piece) ColorOf() Color {
	return Color(p & 1)
}

// TypeOf returns the piece type of p, independent of color.
func (p Piece) TypeOf() PieceType {
	return PieceType(p >> 1)
}

// Enemy returns the piece of the same type and the opposite color.
func (p Piece) Enemy() Piece {
	return p ^ 1
}

// IsValid reports whether p is one of the twelve colored piece kinds.
func (p Piece) IsValid() bool {
	return p >= WhitePawn && p < PieceLength
}

// Value returns the material value of p's piece type.
func (p Piece) Value() int {
	return p.TypeOf().Value()
}

const whitePieceChars = "-PNBRQK"
const blackPieceChars = "-pnbrqk"

// String returns the FEN piece letter: uppercase for white, lowercase for
// black, "-" for PieceNone.
func (p Piece) String() string {
	if p == PieceNone {
		return "-"
	}
	pt := p.TypeOf()
	if p.ColorOf() == White {
		return string(whitePieceChars[pt])
	}
	return string(blackPieceChars[pt])
}

// PieceFromChar parses a single FEN piece letter, returning PieceNone if
// the letter is not a recognized piece.
func PieceFromChar(c byte) Piece {
	if idx := strings.IndexByte(whitePieceChars, c); idx > 0 {
		return MakePiece(White, PieceType(idx))
	}
	if idx := strings.IndexByte(blackPieceChars, c); idx > 0 {
		return MakePiece(Black, PieceType(idx))
	}
	return PieceNone
}
