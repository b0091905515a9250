// Copyright (c) 2024-2026 Caissa Contributors. MIT License. See LICENSE.

package zobrist

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/caissa-dev/caissa/internal/types"
)

func TestKeysAreDeterministic(t *testing.T) {
	assert.Equal(t, PieceSquare(WhitePawn, SqE4), PieceSquare(WhitePawn, SqE4))
	assert.Equal(t, SideToMove(), SideToMove())
}

func TestKeysAreDistinctAcrossSquaresAndPieces(t *testing.T) {
	assert.NotEqual(t, PieceSquare(WhitePawn, SqE4), PieceSquare(WhitePawn, SqE5))
	assert.NotEqual(t, PieceSquare(WhitePawn, SqE4), PieceSquare(BlackPawn, SqE4))
}

func TestCastlingKeysDistinct(t *testing.T) {
	assert.NotEqual(t, Castling(CastlingNone), Castling(CastlingAny))
	assert.NotEqual(t, Castling(CastlingWhiteOO), Castling(CastlingBlackOO))
}

func TestXorIsSelfInverse(t *testing.T) {
	k := PieceSquare(WhiteKnight, SqF3) ^ SideToMove()
	restored := k ^ SideToMove()
	assert.Equal(t, PieceSquare(WhiteKnight, SqF3), restored)
}
