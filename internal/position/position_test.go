// Copyright (c) 2024-2026 Caissa Contributors. MIT License. See LICENSE.

package position

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/caissa-dev/caissa/internal/types"
)

func TestNewBoardStartPosition(t *testing.T) {
	b := NewBoard()
	assert.Equal(t, SqA1.Bb()|SqH1.Bb()|SqA8.Bb()|SqH8.Bb(), b.piecesBb[White][Rook]|b.piecesBb[Black][Rook])
	assert.Equal(t, SqB1.Bb()|SqG1.Bb()|SqB8.Bb()|SqG8.Bb(), b.piecesBb[White][Knight]|b.piecesBb[Black][Knight])
	assert.Equal(t, SqC1.Bb()|SqF1.Bb()|SqC8.Bb()|SqF8.Bb(), b.piecesBb[White][Bishop]|b.piecesBb[Black][Bishop])
	assert.Equal(t, SqD1.Bb()|SqD8.Bb(), b.piecesBb[White][Queen]|b.piecesBb[Black][Queen])
	assert.Equal(t, SqE1.Bb()|SqE8.Bb(), b.piecesBb[White][King]|b.piecesBb[Black][King])
	assert.Equal(t, Rank2Bb|Rank7Bb, b.piecesBb[White][Pawn]|b.piecesBb[Black][Pawn])
	assert.Equal(t, White, b.SideToMove())
	assert.Equal(t, CastlingAny, b.CastlingRights())
	assert.False(t, b.HasEnPassant())
	assert.Equal(t, SqE1, b.KingSquare(White))
	assert.Equal(t, SqE8, b.KingSquare(Black))
}

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		StartFEN,
		"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3",
		"8/8/8/4k3/8/8/4K3/8 w - - 0 1",
		"rnbq1rk1/ppp1bppp/4pn2/3p4/2PP4/2N1PN2/PP3PPP/R1BQKB1R w KQ - 0 7",
	}
	for _, fen := range fens {
		b, err := NewBoardFEN(fen)
		assert.NoError(t, err)
		assert.Equal(t, fen, b.FEN())
	}
}

func TestInvalidFENRejected(t *testing.T) {
	_, err := NewBoardFEN("not a fen")
	assert.Error(t, err)
}

func TestDoUndoMoveNormal(t *testing.T) {
	// a black pawn on d4 can capture en passant after e2e4
	b, _ := NewBoardFEN("rnbqkbnr/ppp1pppp/8/8/3p4/8/PPPPPPPP/RNBQKBNR w KQkq - 0 3")
	key := b.ZobristKey()
	m := MakeDoublePush(White, SqE2, SqE4)
	b.DoMove(m)
	assert.Equal(t, PieceNone, b.PieceAt(SqE2))
	assert.Equal(t, WhitePawn, b.PieceAt(SqE4))
	assert.Equal(t, Black, b.SideToMove())
	assert.True(t, b.HasEnPassant())
	assert.Equal(t, SqE3, b.EnPassantSquare())

	b.UndoMove()
	assert.Equal(t, WhitePawn, b.PieceAt(SqE2))
	assert.Equal(t, PieceNone, b.PieceAt(SqE4))
	assert.Equal(t, White, b.SideToMove())
	assert.False(t, b.HasEnPassant())
	assert.Equal(t, key, b.ZobristKey())
}

func TestDoUndoMoveCapture(t *testing.T) {
	b, _ := NewBoardFEN("rnbqkbnr/pppp1ppp/8/4p3/3P4/8/PPP1PPPP/RNBQKBNR w KQkq - 0 2")
	key := b.ZobristKey()
	m := MakeCapture(White, SqD4, SqE5, Pawn, Pawn)
	b.DoMove(m)
	assert.Equal(t, WhitePawn, b.PieceAt(SqE5))
	assert.Equal(t, PieceNone, b.PieceAt(SqD4))
	assert.Equal(t, 0, b.HalfMoveClock())

	b.UndoMove()
	assert.Equal(t, BlackPawn, b.PieceAt(SqE5))
	assert.Equal(t, WhitePawn, b.PieceAt(SqD4))
	assert.Equal(t, key, b.ZobristKey())
}

func TestDoUndoEnPassant(t *testing.T) {
	b, _ := NewBoardFEN("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	key := b.ZobristKey()
	m := MakeEnPassant(White, SqE5, SqD6)
	b.DoMove(m)
	assert.Equal(t, WhitePawn, b.PieceAt(SqD6))
	assert.Equal(t, PieceNone, b.PieceAt(SqD5))
	assert.Equal(t, PieceNone, b.PieceAt(SqE5))
	assert.False(t, b.HasEnPassant())

	b.UndoMove()
	assert.Equal(t, BlackPawn, b.PieceAt(SqD5))
	assert.Equal(t, WhitePawn, b.PieceAt(SqE5))
	assert.Equal(t, PieceNone, b.PieceAt(SqD6))
	assert.Equal(t, key, b.ZobristKey())
}

func TestDoUndoCastleKingSide(t *testing.T) {
	b, _ := NewBoardFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	key := b.ZobristKey()
	m := MakeCastle(White, SqE1, SqG1, FlagCastleOO)
	b.DoMove(m)
	assert.Equal(t, WhiteKing, b.PieceAt(SqG1))
	assert.Equal(t, WhiteRook, b.PieceAt(SqF1))
	assert.Equal(t, PieceNone, b.PieceAt(SqE1))
	assert.Equal(t, PieceNone, b.PieceAt(SqH1))
	assert.False(t, b.CastlingRights().Has(CastlingWhite))

	b.UndoMove()
	assert.Equal(t, WhiteKing, b.PieceAt(SqE1))
	assert.Equal(t, WhiteRook, b.PieceAt(SqH1))
	assert.Equal(t, key, b.ZobristKey())
	assert.True(t, b.CastlingRights().Has(CastlingWhite))
}

func TestDoUndoPromotion(t *testing.T) {
	b, _ := NewBoardFEN("1n2k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	key := b.ZobristKey()
	m := MakePromotion(White, SqA7, SqB8, Queen, Knight)
	b.DoMove(m)
	assert.Equal(t, WhiteQueen, b.PieceAt(SqB8))
	assert.Equal(t, PieceNone, b.PieceAt(SqA7))

	b.UndoMove()
	assert.Equal(t, WhitePawn, b.PieceAt(SqA7))
	assert.Equal(t, BlackKnight, b.PieceAt(SqB8))
	assert.Equal(t, key, b.ZobristKey())
}

func TestIsInCheck(t *testing.T) {
	b, _ := NewBoardFEN("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	assert.True(t, b.IsInCheck())

	b2 := NewBoard()
	assert.False(t, b2.IsInCheck())
}

func TestDoNullMove(t *testing.T) {
	b := NewBoard()
	key := b.ZobristKey()
	b.DoNullMove()
	assert.Equal(t, Black, b.SideToMove())
	b.UndoNullMove()
	assert.Equal(t, White, b.SideToMove())
	assert.Equal(t, key, b.ZobristKey())
}

func TestEnPassantOnlySetWhenCapturable(t *testing.T) {
	// no black pawn adjacent to d4/d5 double push target, so no en
	// passant square should be recorded even though d2-d4 is a double push
	b, _ := NewBoardFEN("4k3/8/8/8/8/8/3P4/4K3 w - - 0 1")
	b.DoMove(MakeDoublePush(White, SqD2, SqD4))
	assert.False(t, b.HasEnPassant())
}
