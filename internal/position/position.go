// Copyright (c) 2024-2026 Caissa Contributors. MIT License. See LICENSE.

// Package position holds the board representation: twelve per-color/type
// bitboards, a mailbox array for O(1) piece lookup, and the four parallel
// history stacks that let every make-move be undone exactly. All mutation
// goes through DoMove/UndoMove so the zobrist key, material counters and
// history stay consistent with the board.
package position

import (
	"fmt"
	"strings"

	"github.com/op/go-logging"

	"github.com/caissa-dev/caissa/internal/assert"
	"github.com/caissa-dev/caissa/internal/attacks"
	myLogging "github.com/caissa-dev/caissa/internal/logging"
	. "github.com/caissa-dev/caissa/internal/types"
	"github.com/caissa-dev/caissa/internal/zobrist"
)

var log *logging.Logger

// StartFEN is the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

type historyEntry struct {
	move            Move
	capturedPiece   Piece
	castlingRights  CastlingRights
	enPassantSquare Square
	halfMoveClock   int
	zobristKey      zobrist.Key
}

// Board is the complete mutable chess position: twelve bitboards (one per
// piece kind), side to move, castling rights, en passant target, halfmove
// clock/counter, and the parallel history stacks DoMove/UndoMove rely on.
type Board struct {
	zobristKey zobrist.Key

	mailbox         [SqLength]Piece
	piecesBb        [2][PtLength]Bitboard
	occupiedBb      [2]Bitboard
	kingSquare      [2]Square
	castlingRights  CastlingRights
	enPassantSquare Square // SqA1 (0) is the "no en passant target" sentinel
	sideToMove      Color
	halfMoveClock   int
	fullMoveNumber  int

	material [2]int
	pawnKey  zobrist.Key

	historyCounter int
	history        [MaxPly]historyEntry
}

// NewBoard returns a Board set up for the standard starting position.
func NewBoard() *Board {
	b, err := NewBoardFEN(StartFEN)
	if err != nil {
		panic("invalid built-in start FEN: " + err.Error())
	}
	return b
}

// NewBoardFEN parses fen into a new Board.
func NewBoardFEN(fen string) (*Board, error) {
	if log == nil {
		log = myLogging.GetLog()
	}
	b := &Board{enPassantSquare: SqA1}
	if err := b.setFEN(fen); err != nil {
		return nil, err
	}
	return b, nil
}

// SideToMove returns whose turn it is.
func (b *Board) SideToMove() Color {
	return b.sideToMove
}

// PieceAt returns the piece on sq, or PieceNone.
func (b *Board) PieceAt(sq Square) Piece {
	return b.mailbox[sq]
}

// PiecesBb returns the bitboard of pieces of type pt and color c.
func (b *Board) PiecesBb(c Color, pt PieceType) Bitboard {
	return b.piecesBb[c][pt]
}

// OccupiedBy returns every square occupied by color c.
func (b *Board) OccupiedBy(c Color) Bitboard {
	return b.occupiedBb[c]
}

// Occupied returns every occupied square on the board.
func (b *Board) Occupied() Bitboard {
	return b.occupiedBb[White] | b.occupiedBb[Black]
}

// KingSquare returns the square of color c's king.
func (b *Board) KingSquare(c Color) Square {
	return b.kingSquare[c]
}

// CastlingRights returns the current castling rights mask.
func (b *Board) CastlingRights() CastlingRights {
	return b.castlingRights
}

// EnPassantSquare returns the current en passant target square, or SqA1
// (the sentinel reused for "none" — 0 is never itself a legal en passant
// target, so the aliasing is safe).
func (b *Board) EnPassantSquare() Square {
	return b.enPassantSquare
}

// HasEnPassant reports whether an en passant capture is currently available.
func (b *Board) HasEnPassant() bool {
	return b.enPassantSquare != SqA1
}

// HalfMoveClock returns the halfmove clock since the last capture or pawn move.
func (b *Board) HalfMoveClock() int {
	return b.halfMoveClock
}

// FullMoveNumber returns the game's full-move counter.
func (b *Board) FullMoveNumber() int {
	return b.fullMoveNumber
}

// ZobristKey returns the board's current Zobrist hash.
func (b *Board) ZobristKey() zobrist.Key {
	return b.zobristKey
}

// PawnKey returns a Zobrist hash of only the pawn placement (both colors),
// used to key the evaluator's pawn structure cache: pawn structure changes
// far less often than the full position, so keying on it alone gives the
// cache a much higher hit rate than keying on ZobristKey would.
func (b *Board) PawnKey() zobrist.Key {
	return b.pawnKey
}

// Material returns the simple material sum (in centipawns) for color c.
func (b *Board) Material(c Color) int {
	return b.material[c]
}

// Ply returns the number of moves applied since the board was created,
// i.e. the current depth of the history stack.
func (b *Board) Ply() int {
	return b.historyCounter
}

// GamePhase sums GamePhaseValue() over every officer on the board (pawns
// and kings contribute nothing), clamped to GamePhaseMax so a position
// that somehow exceeds the opening count (never happens with legal
// material, but promotions can create extra queens) still interpolates
// cleanly.
func (b *Board) GamePhase() int {
	phase := 0
	for _, c := range [2]Color{White, Black} {
		for _, pt := range [4]PieceType{Knight, Bishop, Rook, Queen} {
			phase += b.piecesBb[c][pt].PopCount() * pt.GamePhaseValue()
		}
	}
	if phase > GamePhaseMax {
		phase = GamePhaseMax
	}
	return phase
}

// GamePhaseFactor returns GamePhase as a fraction of GamePhaseMax: 1.0 in
// the opening, trending to 0.0 as material is traded off towards the
// endgame.
func (b *Board) GamePhaseFactor() float64 {
	return float64(b.GamePhase()) / float64(GamePhaseMax)
}

// HasInsufficientMaterial reports whether neither side has enough material
// left to force a checkmate (king vs king, king+minor vs king, or king+
// minor vs king+minor). It does not rule out a helpmate the defending side
// could blunder into, matching common engine practice.
func (b *Board) HasInsufficientMaterial() bool {
	white := b.material[White] - King.Value()
	black := b.material[Black] - King.Value()
	if white+black == 0 {
		return true
	}
	if b.piecesBb[White][Pawn] == BbZero && b.piecesBb[Black][Pawn] == BbZero {
		if white < Rook.Value() && black < Rook.Value() {
			return true
		}
	}
	return false
}

// attackerSets packages this board's piece bitboards into the shape the
// attacks package's pure functions expect.
func (b *Board) attackerSets() *attacks.AttackerSets {
	return &attacks.AttackerSets{
		Pawns:   [2]Bitboard{b.piecesBb[White][Pawn], b.piecesBb[Black][Pawn]},
		Knights: [2]Bitboard{b.piecesBb[White][Knight], b.piecesBb[Black][Knight]},
		Bishops: [2]Bitboard{b.piecesBb[White][Bishop], b.piecesBb[Black][Bishop]},
		Rooks:   [2]Bitboard{b.piecesBb[White][Rook], b.piecesBb[Black][Rook]},
		Queens:  [2]Bitboard{b.piecesBb[White][Queen], b.piecesBb[Black][Queen]},
		Kings:   [2]Bitboard{b.piecesBb[White][King], b.piecesBb[Black][King]},
	}
}

// AttackerSets exposes this board's piece bitboards in the shape the
// attacks package's pure functions expect, for callers (e.g. search's
// static exchange evaluation) that need direct access to attacks queries
// this package doesn't already wrap.
func (b *Board) AttackerSets() *attacks.AttackerSets {
	return b.attackerSets()
}

// IsAttacked reports whether sq is attacked by any piece of color by.
func (b *Board) IsAttacked(sq Square, by Color) bool {
	return attacks.IsSquareAttacked(b.attackerSets(), sq, by, b.Occupied())
}

// IsInCheck reports whether the side to move's king is currently attacked.
func (b *Board) IsInCheck() bool {
	return b.IsAttacked(b.kingSquare[b.sideToMove], b.sideToMove.Flip())
}

// PinnedPieces returns every square holding a piece of color c that is
// pinned to c's own king by an enemy slider.
func (b *Board) PinnedPieces(c Color) Bitboard {
	return attacks.PinnedPieces(b.attackerSets(), b.kingSquare[c], c, b.Occupied())
}

// GivesCheck reports whether mover's opponent would be in check after m,
// without mutating the board (used by the check-extension search rule and
// by move ordering's "promising quiet" heuristic).
func (b *Board) GivesCheck(m Move) bool {
	mover := b.sideToMove
	b.DoMove(m)
	inCheck := b.IsAttacked(b.kingSquare[mover.Flip()], mover)
	b.UndoMove()
	return inCheck
}

func (b *Board) putPiece(piece Piece, sq Square) {
	if assert.DEBUG {
		assert.Assert(b.mailbox[sq] == PieceNone, "putPiece: square %s already occupied", sq)
	}
	c, pt := piece.ColorOf(), piece.TypeOf()
	b.mailbox[sq] = piece
	if pt == King {
		b.kingSquare[c] = sq
	}
	b.piecesBb[c][pt] = b.piecesBb[c][pt].Put(sq)
	b.occupiedBb[c] = b.occupiedBb[c].Put(sq)
	b.zobristKey ^= zobrist.PieceSquare(piece, sq)
	b.material[c] += pt.Value()
	if pt == Pawn {
		b.pawnKey ^= zobrist.PieceSquare(piece, sq)
	}
}

func (b *Board) removePiece(sq Square) Piece {
	piece := b.mailbox[sq]
	if assert.DEBUG {
		assert.Assert(piece != PieceNone, "removePiece: square %s is empty", sq)
	}
	c, pt := piece.ColorOf(), piece.TypeOf()
	b.mailbox[sq] = PieceNone
	b.piecesBb[c][pt] = b.piecesBb[c][pt].Remove(sq)
	b.occupiedBb[c] = b.occupiedBb[c].Remove(sq)
	b.zobristKey ^= zobrist.PieceSquare(piece, sq)
	b.material[c] -= pt.Value()
	if pt == Pawn {
		b.pawnKey ^= zobrist.PieceSquare(piece, sq)
	}
	return piece
}

func (b *Board) movePiece(from, to Square) {
	b.putPiece(b.removePiece(from), to)
}

func (b *Board) setCastlingRights(cr CastlingRights) {
	b.zobristKey ^= zobrist.Castling(b.castlingRights)
	b.castlingRights = cr
	b.zobristKey ^= zobrist.Castling(b.castlingRights)
}

func (b *Board) clearEnPassant() {
	if b.enPassantSquare != SqA1 {
		b.zobristKey ^= zobrist.EnPassant(b.enPassantSquare)
		b.enPassantSquare = SqA1
	}
}

func (b *Board) setEnPassant(sq Square) {
	b.clearEnPassant()
	b.enPassantSquare = sq
	b.zobristKey ^= zobrist.EnPassant(sq)
}

// castlingRightsLostBy returns which castling rights a move touching sq
// invalidates: moving the king loses both of that color's rights, moving
// or capturing a rook from its home corner loses that single right.
func castlingRightsLostBy(sq Square) CastlingRights {
	switch sq {
	case SqE1:
		return CastlingWhite
	case SqE8:
		return CastlingBlack
	case SqA1:
		return CastlingWhiteOOO
	case SqH1:
		return CastlingWhiteOO
	case SqA8:
		return CastlingBlackOOO
	case SqH8:
		return CastlingBlackOO
	default:
		return CastlingNone
	}
}

// DoMove applies m to the board. The caller must have generated m against
// this exact position; DoMove does not validate legality beyond the debug
// assertions below.
func (b *Board) DoMove(m Move) {
	mover := b.sideToMove
	from := m.From(mover)
	to := m.To(mover)

	if assert.DEBUG {
		assert.Assert(b.mailbox[from] != PieceNone, "DoMove: no piece on %s", from)
		assert.Assert(b.mailbox[from].ColorOf() == mover, "DoMove: piece on %s does not belong to side to move", from)
	}

	h := &b.history[b.historyCounter]
	h.move = m
	h.capturedPiece = PieceNone
	h.castlingRights = b.castlingRights
	h.enPassantSquare = b.enPassantSquare
	h.halfMoveClock = b.halfMoveClock
	h.zobristKey = b.zobristKey
	b.historyCounter++

	switch {
	case m.IsCastleOO() || m.IsCastleOOO():
		b.doCastle(mover, m)
	case m.IsEnPassant():
		b.doEnPassant(mover, from, to)
	case m.IsPromotion():
		b.doPromotion(mover, m, from, to)
	default:
		b.doNormal(mover, from, to)
	}

	b.fullMoveNumber += int(mover)
	b.sideToMove = mover.Flip()
	b.zobristKey ^= zobrist.SideToMove()
}

func (b *Board) doNormal(mover Color, from, to Square) {
	movingPiece := b.mailbox[from]
	captured := b.mailbox[to]
	b.history[b.historyCounter-1].capturedPiece = captured

	if lost := castlingRightsLostBy(from) | castlingRightsLostBy(to); lost != CastlingNone {
		b.setCastlingRights(b.castlingRights.Remove(lost))
	}
	b.clearEnPassant()

	switch {
	case captured != PieceNone:
		b.removePiece(to)
		b.halfMoveClock = 0
	case movingPiece.TypeOf() == Pawn:
		b.halfMoveClock = 0
		if from.Distance(to) == 2 {
			epSq := to.To(mover.Flip().PawnPushDirection())
			if adjacentEnemyPawn(b, epSq, mover) {
				b.setEnPassant(epSq)
			}
		}
	default:
		b.halfMoveClock++
	}
	b.movePiece(from, to)
}

// adjacentEnemyPawn reports whether an enemy pawn stands beside the
// double-pushed pawn such that it could capture en passant onto epSq next
// move. The en passant square is only recorded when this holds, which
// keeps the zobrist key (and therefore the transposition table and
// repetition history) from churning on an en passant target that could
// never actually be captured.
func adjacentEnemyPawn(b *Board, epSq Square, mover Color) bool {
	enemyPawns := b.piecesBb[mover.Flip()][Pawn]
	return attacks.PawnAttacks(mover, epSq)&enemyPawns != BbZero
}

func (b *Board) doCastle(mover Color, m Move) {
	from := m.From(mover)
	to := m.To(mover)
	b.movePiece(from, to)
	switch to {
	case SqG1:
		b.movePiece(SqH1, SqF1)
	case SqC1:
		b.movePiece(SqA1, SqD1)
	case SqG8:
		b.movePiece(SqH8, SqF8)
	case SqC8:
		b.movePiece(SqA8, SqD8)
	default:
		panic(fmt.Sprintf("doCastle: invalid castle destination %s", to))
	}
	b.setCastlingRights(b.castlingRights.Remove(AllRights(mover)))
	b.clearEnPassant()
	b.halfMoveClock++
}

func (b *Board) doEnPassant(mover Color, from, to Square) {
	capSq := to.To(mover.Flip().PawnPushDirection())
	b.history[b.historyCounter-1].capturedPiece = b.mailbox[capSq]
	b.removePiece(capSq)
	b.movePiece(from, to)
	b.clearEnPassant()
	b.halfMoveClock = 0
}

func (b *Board) doPromotion(mover Color, m Move, from, to Square) {
	captured := b.mailbox[to]
	b.history[b.historyCounter-1].capturedPiece = captured
	if captured != PieceNone {
		b.removePiece(to)
	}
	if lost := castlingRightsLostBy(from) | castlingRightsLostBy(to); lost != CastlingNone {
		b.setCastlingRights(b.castlingRights.Remove(lost))
	}
	b.removePiece(from)
	b.putPiece(MakePiece(mover, m.Promotion()), to)
	b.clearEnPassant()
	b.halfMoveClock = 0
}

// UndoMove reverts the most recently applied move. Panics if called on a
// board with an empty history; pairing every UndoMove with a preceding
// DoMove is the caller's responsibility.
func (b *Board) UndoMove() {
	if assert.DEBUG {
		assert.Assert(b.historyCounter > 0, "UndoMove: history is empty")
	}
	b.historyCounter--
	h := &b.history[b.historyCounter]
	m := h.move
	b.sideToMove = b.sideToMove.Flip()
	mover := b.sideToMove
	b.fullMoveNumber -= int(mover)

	from := m.From(mover)
	to := m.To(mover)

	switch {
	case m.IsCastleOO() || m.IsCastleOOO():
		b.movePiece(to, from)
		switch to {
		case SqG1:
			b.movePiece(SqF1, SqH1)
		case SqC1:
			b.movePiece(SqD1, SqA1)
		case SqG8:
			b.movePiece(SqF8, SqH8)
		case SqC8:
			b.movePiece(SqD8, SqA8)
		}
	case m.IsEnPassant():
		b.movePiece(to, from)
		capSq := to.To(mover.Flip().PawnPushDirection())
		b.putPiece(MakePiece(mover.Flip(), Pawn), capSq)
	case m.IsPromotion():
		b.removePiece(to)
		b.putPiece(MakePiece(mover, Pawn), from)
		if h.capturedPiece != PieceNone {
			b.putPiece(h.capturedPiece, to)
		}
	default:
		b.movePiece(to, from)
		if h.capturedPiece != PieceNone {
			b.putPiece(h.capturedPiece, to)
		}
	}

	b.castlingRights = h.castlingRights
	b.enPassantSquare = h.enPassantSquare
	b.halfMoveClock = h.halfMoveClock
	b.zobristKey = h.zobristKey
}

// DoNullMove flips the side to move without making a move, for null-move
// pruning. The en passant target is cleared, since no pawn that could be
// captured en passant remains capturable after a null move.
func (b *Board) DoNullMove() {
	h := &b.history[b.historyCounter]
	h.move = MoveNone
	h.capturedPiece = PieceNone
	h.castlingRights = b.castlingRights
	h.enPassantSquare = b.enPassantSquare
	h.halfMoveClock = b.halfMoveClock
	h.zobristKey = b.zobristKey
	b.historyCounter++

	b.clearEnPassant()
	b.sideToMove = b.sideToMove.Flip()
	b.zobristKey ^= zobrist.SideToMove()
}

// UndoNullMove reverts DoNullMove.
func (b *Board) UndoNullMove() {
	b.historyCounter--
	h := &b.history[b.historyCounter]
	b.sideToMove = b.sideToMove.Flip()
	b.castlingRights = h.castlingRights
	b.enPassantSquare = h.enPassantSquare
	b.halfMoveClock = h.halfMoveClock
	b.zobristKey = h.zobristKey
}

// LastMove returns the most recently applied move, or MoveNone if the
// history is empty.
func (b *Board) LastMove() Move {
	if b.historyCounter == 0 {
		return MoveNone
	}
	return b.history[b.historyCounter-1].move
}

// LastCapturedPiece returns the piece captured by the most recently
// applied move, or PieceNone.
func (b *Board) LastCapturedPiece() Piece {
	if b.historyCounter == 0 {
		return PieceNone
	}
	return b.history[b.historyCounter-1].capturedPiece
}

// HistoryKeyAt returns the Zobrist key stored at history depth i (0 is the
// position before the first move), used by the repetition package to walk
// the full game history without the position package depending on it.
func (b *Board) HistoryKeyAt(i int) zobrist.Key {
	return b.history[i].zobristKey
}

// String renders the board as an 8x8 grid with rank 8 on top, plus the
// side to move, castling rights and en passant target, for debugging.
func (b *Board) String() string {
	var sb strings.Builder
	for r := Rank8; ; r-- {
		sb.WriteString(r.String())
		sb.WriteString(" ")
		for f := FileA; f <= FileH; f++ {
			sb.WriteString(b.mailbox[SquareOf(f, r)].String())
			sb.WriteString(" ")
		}
		sb.WriteString("\n")
		if r == Rank1 {
			break
		}
	}
	sb.WriteString("  a b c d e f g h\n")
	ep := "-"
	if b.HasEnPassant() {
		ep = b.enPassantSquare.String()
	}
	sb.WriteString(fmt.Sprintf("side=%s castling=%s ep=%s halfmove=%d fullmove=%d\n",
		b.sideToMove, b.castlingRights, ep, b.halfMoveClock, b.fullMoveNumber))
	return sb.String()
}
