// Copyright (c) 2024-2026 Caissa Contributors. MIT License. See LICENSE.

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPieceEncoding(t *testing.T) {
	// low bit encodes color: even = white, odd = black
	assert.Equal(t, White, WhitePawn.ColorOf())
	assert.Equal(t, Black, BlackPawn.ColorOf())
	assert.Equal(t, White, WhiteKing.ColorOf())
	assert.Equal(t, Black, BlackKing.ColorOf())
	assert.Equal(t, 0, int(WhitePawn)%2)
	assert.Equal(t, 1, int(BlackPawn)%2)
}

func TestPieceEnemy(t *testing.T) {
	assert.Equal(t, BlackPawn, WhitePawn.Enemy())
	assert.Equal(t, WhiteQueen, BlackQueen.Enemy())
}

func TestMakePiece(t *testing.T) {
	assert.Equal(t, WhiteKnight, MakePiece(White, Knight))
	assert.Equal(t, BlackRook, MakePiece(Black, Rook))
	assert.Equal(t, PieceNone, MakePiece(White, PtNone))
}

func TestPieceTypeOf(t *testing.T) {
	for _, p := range []Piece{WhitePawn, BlackPawn, WhiteKnight, BlackKnight,
		WhiteBishop, BlackBishop, WhiteRook, BlackRook, WhiteQueen, BlackQueen,
		WhiteKing, BlackKing} {
		assert.True(t, p.TypeOf().IsValid())
	}
	assert.Equal(t, Pawn, WhitePawn.TypeOf())
	assert.Equal(t, King, BlackKing.TypeOf())
}

func TestPieceString(t *testing.T) {
	assert.Equal(t, "P", WhitePawn.String())
	assert.Equal(t, "p", BlackPawn.String())
	assert.Equal(t, "K", WhiteKing.String())
	assert.Equal(t, "-", PieceNone.String())
}

func TestPieceFromChar(t *testing.T) {
	assert.Equal(t, WhiteQueen, PieceFromChar('Q'))
	assert.Equal(t, BlackKnight, PieceFromChar('n'))
	assert.Equal(t, PieceNone, PieceFromChar('x'))
}
