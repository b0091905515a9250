// Copyright (c) 2024-2026 Caissa Contributors. MIT License. See LICENSE.

package types

import "strings"

// Move packs a chess move into 32 bits so that move lists stay dense and
// can be sorted for move ordering by plain integer comparison, descending.
// The heuristic bits sit above every other field, so the order is: the PV
// move first, then promising-tagged moves, then the second killer, then the
// first killer, then captures (by captured piece type, then promotion, then
// the cheaper moving piece), then the remaining quiet moves. Killer- and
// promising-tagged quiets therefore sort above every capture.
//
// Bit layout, lowest bit first:
//
//	bits  0- 5  from square, inverted (XOR 0x3F) when the mover is Black
//	bits  6-11  to square, same inversion rule
//	bits 12-15  moving piece type, inverted (15 - pt) so that a pawn
//	            (the least valuable, most "promising" attacker under
//	            MVV-LVA) produces the highest sort value
//	bits 16-19  special-move flags: en passant, short/long castle, double push
//	bits 20-23  promotion piece type, 0 if none
//	bits 24-26  captured piece type, 0 if none, which makes a capture
//	            outrank a quiet move that carries no heuristic bit
//	bits 27-30  heuristic bits: killer 1, killer 2, promising quiet, PV move
//	bit  31     never set, so every Move is non-negative as a Go int32
//
// The inversion rules only affect sort order; the accessor methods always
// return true square/piece values regardless of mover color.
type Move int32

// MoveNone is the sentinel for "no move": from==to==a1, which can never be
// a legal move, so the all-zero bit pattern is a safe sentinel.
const MoveNone Move = 0

const (
	fromShift  = 0
	toShift    = 6
	pieceShift = 12
	flagsShift = 16
	promoShift = 20
	captShift  = 24
	heurShift  = 27

	sixBitMask   = 0x3F
	fourBitMask  = 0xF
	threeBitMask = 0x7
)

// MoveMask strips the heuristic bits, leaving the canonical move used for
// equality comparisons and transposition table lookups.
const MoveMask Move = 0x07FFFFFF

// Special-move flag bits, packed into the flags nibble.
const (
	FlagEnPassant  = 1 << 0
	FlagCastleOO   = 1 << 1
	FlagCastleOOO  = 1 << 2
	FlagDoublePush = 1 << 3
)

// Heuristic flag bits, packed into bits 27-30.
const (
	FlagKiller1  = 1 << 0
	FlagKiller2  = 1 << 1
	FlagPromising = 1 << 2
	FlagPVMove   = 1 << 3
)

func invertSquare(sq Square, mover Color) Square {
	if mover == Black {
		return Square(uint8(sq) ^ sixBitMask)
	}
	return sq
}

// MakeMove builds a Move with no capture, no promotion and no special
// flags set.
func MakeMove(mover Color, from, to Square, piece PieceType) Move {
	return MakeMoveFull(mover, from, to, piece, PtNone, 0, PtNone)
}

// MakeCapture builds a capturing Move.
func MakeCapture(mover Color, from, to Square, piece, captured PieceType) Move {
	return MakeMoveFull(mover, from, to, piece, PtNone, 0, captured)
}

// MakePromotion builds a (possibly capturing) promotion Move.
func MakePromotion(mover Color, from, to Square, promo, captured PieceType) Move {
	return MakeMoveFull(mover, from, to, Pawn, promo, 0, captured)
}

// MakeEnPassant builds an en passant capture.
func MakeEnPassant(mover Color, from, to Square) Move {
	return MakeMoveFull(mover, from, to, Pawn, PtNone, FlagEnPassant, Pawn)
}

// MakeDoublePush builds a pawn double-push move.
func MakeDoublePush(mover Color, from, to Square) Move {
	return MakeMoveFull(mover, from, to, Pawn, PtNone, FlagDoublePush, PtNone)
}

// MakeCastle builds a castling move. side must be FlagCastleOO or
// FlagCastleOOO.
func MakeCastle(mover Color, from, to Square, side int) Move {
	return MakeMoveFull(mover, from, to, King, PtNone, side, PtNone)
}

// MakeMoveFull builds a Move from every field explicitly; the more
// specific MakeXxx constructors above are thin wrappers around it.
func MakeMoveFull(mover Color, from, to Square, piece, promo PieceType, flags int, captured PieceType) Move {
	invFrom := invertSquare(from, mover)
	invTo := invertSquare(to, mover)
	invPiece := fourBitMask - int(piece)
	m := Move(int(invFrom)&sixBitMask) << fromShift
	m |= Move(int(invTo)&sixBitMask) << toShift
	m |= Move(invPiece&fourBitMask) << pieceShift
	m |= Move(flags&fourBitMask) << flagsShift
	m |= Move(int(promo)&fourBitMask) << promoShift
	m |= Move(int(captured)&threeBitMask) << captShift
	return m
}

// Mover must be supplied by the caller (from the position's side to move
// when the move was generated) to undo the square inversion; Move itself
// does not store which side played it.

// From returns the origin square, undoing the color-dependent inversion.
func (m Move) From(mover Color) Square {
	raw := Square((m >> fromShift) & sixBitMask)
	return invertSquare(raw, mover)
}

// To returns the destination square, undoing the color-dependent inversion.
func (m Move) To(mover Color) Square {
	raw := Square((m >> toShift) & sixBitMask)
	return invertSquare(raw, mover)
}

// MovingPiece returns the moving piece's type.
func (m Move) MovingPiece() PieceType {
	inv := int(m>>pieceShift) & fourBitMask
	return PieceType(fourBitMask - inv)
}

// Promotion returns the promotion piece type, or PtNone.
func (m Move) Promotion() PieceType {
	return PieceType(int(m>>promoShift) & fourBitMask)
}

// IsPromotion reports whether this move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Promotion() != PtNone
}

// Captured returns the captured piece's type, or PtNone if this move is
// not a capture.
func (m Move) Captured() PieceType {
	return PieceType(int(m>>captShift) & threeBitMask)
}

// IsCapture reports whether this move captures a piece (including en
// passant).
func (m Move) IsCapture() bool {
	return m.Captured() != PtNone
}

func (m Move) flags() int {
	return int(m>>flagsShift) & fourBitMask
}

// IsEnPassant reports whether this move is an en passant capture.
func (m Move) IsEnPassant() bool {
	return m.flags()&FlagEnPassant != 0
}

// IsCastleOO reports whether this move is a king-side castle.
func (m Move) IsCastleOO() bool {
	return m.flags()&FlagCastleOO != 0
}

// IsCastleOOO reports whether this move is a queen-side castle.
func (m Move) IsCastleOOO() bool {
	return m.flags()&FlagCastleOOO != 0
}

// IsCastle reports whether this move castles either side.
func (m Move) IsCastle() bool {
	return m.IsCastleOO() || m.IsCastleOOO()
}

// IsDoublePush reports whether this move is a pawn double push.
func (m Move) IsDoublePush() bool {
	return m.flags()&FlagDoublePush != 0
}

func (m Move) heuristics() int {
	return int(m>>heurShift) & fourBitMask
}

func (m Move) withHeuristic(bit int) Move {
	canonical := m & MoveMask
	current := m.heuristics()
	return canonical | Move((current|bit)&fourBitMask)<<heurShift
}

// WithKiller1 marks m as the first killer move at the current ply.
func (m Move) WithKiller1() Move { return m.withHeuristic(FlagKiller1) }

// WithKiller2 marks m as the second killer move at the current ply.
func (m Move) WithKiller2() Move { return m.withHeuristic(FlagKiller2) }

// WithPromising marks m as a promising quiet move (e.g. one that gives
// check or advances a passed pawn).
func (m Move) WithPromising() Move { return m.withHeuristic(FlagPromising) }

// WithPVMove marks m as the principal variation move, which must sort
// above everything else.
func (m Move) WithPVMove() Move { return m.withHeuristic(FlagPVMove) }

// IsKiller reports whether either killer bit is set.
func (m Move) IsKiller() bool {
	return m.heuristics()&(FlagKiller1|FlagKiller2) != 0
}

// IsPVMove reports whether the PV bit is set.
func (m Move) IsPVMove() bool {
	return m.heuristics()&FlagPVMove != 0
}

// Canonical strips the heuristic bits, returning the value used for move
// equality and transposition table storage.
func (m Move) Canonical() Move {
	return m & MoveMask
}

// Equals compares two moves ignoring heuristic bits.
func (m Move) Equals(other Move) bool {
	return m.Canonical() == other.Canonical()
}

// UCI renders the move in long algebraic notation (e.g. "e2e4", "e7e8q"),
// the form expected inside XBoard's "usermove" command.
func (m Move) UCI(mover Color) string {
	if m == MoveNone {
		return "0000"
	}
	var sb strings.Builder
	sb.WriteString(m.From(mover).String())
	sb.WriteString(m.To(mover).String())
	if promo := m.Promotion(); promo != PtNone {
		sb.WriteString(strings.ToLower(promo.Char()))
	}
	return sb.String()
}
