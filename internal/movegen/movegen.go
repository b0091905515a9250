// Copyright (c) 2024-2026 Caissa Contributors. MIT License. See LICENSE.

// Package movegen generates pseudo-legal and legal moves for a position:
// one generator per piece kind (pawns handled specially for pushes,
// double pushes, promotions and en passant; knights/bishops/rooks/queens
// via the shared attacks tables; king moves plus castling), followed by a
// make/unmake legality filter. It also implements perft for move
// generator correctness testing.
package movegen

import (
	"github.com/op/go-logging"

	"github.com/caissa-dev/caissa/internal/attacks"
	myLogging "github.com/caissa-dev/caissa/internal/logging"
	"github.com/caissa-dev/caissa/internal/position"
	. "github.com/caissa-dev/caissa/internal/types"
)

var log *logging.Logger

// Mode selects which subset of moves GeneratePseudoLegal produces.
type Mode int

const (
	GenCaptures Mode = 1 << iota
	GenQuiets
)

// GenAll generates every pseudo-legal move, captures and quiets alike.
const GenAll = GenCaptures | GenQuiets

// Generator carries per-ply move-ordering state (two killer moves and the
// PV move), which it tags onto the moves it generates.
type Generator struct {
	killer1, killer2 Move
	pvMove           Move
}

// NewGenerator returns a ready-to-use move generator.
func NewGenerator() *Generator {
	if log == nil {
		log = myLogging.GetLog()
	}
	return &Generator{}
}

// SetPVMove marks m so GeneratePseudoLegal/GenerateLegal tag it with the
// PV heuristic bit wherever it appears in the generated list.
func (g *Generator) SetPVMove(m Move) {
	g.pvMove = m.Canonical()
}

// StoreKiller records m as a killer move for the current ply, bumping the
// previous first killer down to second slot.
func (g *Generator) StoreKiller(m Move) {
	canonical := m.Canonical()
	if g.killer1 == canonical {
		return
	}
	g.killer2 = g.killer1
	g.killer1 = canonical
}

// GeneratePseudoLegal appends every pseudo-legal move for b's side to
// move into ml. Pseudo-legal here means every rule except "does this
// leave my own king in check" has been applied; castling additionally
// already checks the king's path is not attacked, since that check is
// cheap to make at generation time and failing it is common enough to be
// worth avoiding a wasted make/unmake.
func (g *Generator) GeneratePseudoLegal(b *position.Board, mode Mode, ml *MoveList) {
	g.generatePawnMoves(b, mode, ml)
	g.generateOfficerMoves(b, mode, ml)
	g.generateKingMoves(b, mode, ml)
	if mode&GenQuiets != 0 {
		g.generateCastling(b, ml)
	}
	g.tagHeuristics(ml)
}

func (g *Generator) tagHeuristics(ml *MoveList) {
	for i := 0; i < ml.Len(); i++ {
		m := ml.At(i)
		canonical := m.Canonical()
		switch {
		case canonical == g.pvMove:
			ml.Set(i, m.WithPVMove())
		case canonical == g.killer1:
			ml.Set(i, m.WithKiller1())
		case canonical == g.killer2:
			ml.Set(i, m.WithKiller2())
		}
	}
}

// GenerateLegal returns every legal move for b's side to move: the
// pseudo-legal list filtered by a make/unmake/IsInCheck probe per move.
func (g *Generator) GenerateLegal(b *position.Board, mode Mode) *MoveList {
	pseudo := NewMoveList(MaxMoves)
	g.GeneratePseudoLegal(b, mode, pseudo)
	legal := NewMoveList(MaxMoves)
	mover := b.SideToMove()
	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.At(i)
		b.DoMove(m)
		stillLegal := !b.IsAttacked(b.KingSquare(mover), mover.Flip())
		b.UndoMove()
		if stillLegal {
			legal.PushBack(m)
		}
	}
	return legal
}

// HasLegalMove reports whether b's side to move has at least one legal
// move, short-circuiting as soon as one is found. Used for mate/stalemate
// detection without paying for a full legal move list.
func (g *Generator) HasLegalMove(b *position.Board) bool {
	pseudo := NewMoveList(MaxMoves)
	g.GeneratePseudoLegal(b, GenAll, pseudo)
	mover := b.SideToMove()
	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.At(i)
		b.DoMove(m)
		stillLegal := !b.IsAttacked(b.KingSquare(mover), mover.Flip())
		b.UndoMove()
		if stillLegal {
			return true
		}
	}
	return false
}

func (g *Generator) generatePawnMoves(b *position.Board, mode Mode, ml *MoveList) {
	mover := b.SideToMove()
	pawns := b.PiecesBb(mover, Pawn)
	opponentPieces := b.OccupiedBy(mover.Flip())
	occupied := b.Occupied()
	push := mover.PawnPushDirection()
	// the rank a pawn lands on when promoting: one push beyond the rank it
	// promotes from.
	promoRank := mover.PawnPromoRank().Bb().Shift(push)

	if mode&GenCaptures != 0 {
		for _, dir := range [2]Direction{push + West, push + East} {
			captures := pawns.Shift(dir) & opponentPieces
			for captures != BbZero {
				var to Square
				to, captures = captures.PopLSB()
				from := to.To(-dir)
				captured := b.PieceAt(to).TypeOf()
				if to.Bb()&promoRank != 0 {
					g.pushPromotions(ml, mover, from, to, captured)
				} else {
					ml.PushBack(MakeCapture(mover, from, to, Pawn, captured))
				}
			}
		}
		if b.HasEnPassant() {
			epSq := b.EnPassantSquare()
			attackers := attacks.PawnAttacks(mover.Flip(), epSq) & pawns
			for attackers != BbZero {
				var from Square
				from, attackers = attackers.PopLSB()
				ml.PushBack(MakeEnPassant(mover, from, epSq))
			}
		}
	}

	if mode&GenQuiets != 0 {
		singlePush := pawns.Shift(push) &^ occupied
		startRankPawns := pawns & mover.PawnStartRank().Bb()
		doublePushCandidates := startRankPawns.Shift(push) &^ occupied
		doublePush := doublePushCandidates.Shift(push) &^ occupied

		promoPush := singlePush & promoRank
		for promoPush != BbZero {
			var to Square
			to, promoPush = promoPush.PopLSB()
			from := to.To(-push)
			g.pushPromotions(ml, mover, from, to, PtNone)
		}

		quietPush := singlePush &^ promoRank
		for quietPush != BbZero {
			var to Square
			to, quietPush = quietPush.PopLSB()
			from := to.To(-push)
			ml.PushBack(MakeMove(mover, from, to, Pawn))
		}

		for doublePush != BbZero {
			var to Square
			to, doublePush = doublePush.PopLSB()
			from := to.To(-push).To(-push)
			ml.PushBack(MakeDoublePush(mover, from, to))
		}
	}
}

func (g *Generator) pushPromotions(ml *MoveList, mover Color, from, to Square, captured PieceType) {
	ml.PushBack(MakePromotion(mover, from, to, Queen, captured))
	ml.PushBack(MakePromotion(mover, from, to, Knight, captured))
	ml.PushBack(MakePromotion(mover, from, to, Rook, captured))
	ml.PushBack(MakePromotion(mover, from, to, Bishop, captured))
}

func (g *Generator) generateOfficerMoves(b *position.Board, mode Mode, ml *MoveList) {
	mover := b.SideToMove()
	occupied := b.Occupied()
	ownPieces := b.OccupiedBy(mover)
	opponentPieces := b.OccupiedBy(mover.Flip())

	for _, pt := range [4]PieceType{Knight, Bishop, Rook, Queen} {
		pieces := b.PiecesBb(mover, pt)
		for pieces != BbZero {
			var from Square
			from, pieces = pieces.PopLSB()
			targets := attacks.AttacksBb(pt, from, occupied) &^ ownPieces
			if mode&GenCaptures != 0 {
				captures := targets & opponentPieces
				for captures != BbZero {
					var to Square
					to, captures = captures.PopLSB()
					ml.PushBack(MakeCapture(mover, from, to, pt, b.PieceAt(to).TypeOf()))
				}
			}
			if mode&GenQuiets != 0 {
				quiets := targets &^ opponentPieces
				for quiets != BbZero {
					var to Square
					to, quiets = quiets.PopLSB()
					ml.PushBack(MakeMove(mover, from, to, pt))
				}
			}
		}
	}
}

func (g *Generator) generateKingMoves(b *position.Board, mode Mode, ml *MoveList) {
	mover := b.SideToMove()
	from := b.KingSquare(mover)
	ownPieces := b.OccupiedBy(mover)
	opponentPieces := b.OccupiedBy(mover.Flip())
	targets := attacks.KingAttacks(from) &^ ownPieces

	if mode&GenCaptures != 0 {
		captures := targets & opponentPieces
		for captures != BbZero {
			var to Square
			to, captures = captures.PopLSB()
			ml.PushBack(MakeCapture(mover, from, to, King, b.PieceAt(to).TypeOf()))
		}
	}
	if mode&GenQuiets != 0 {
		quiets := targets &^ opponentPieces
		for quiets != BbZero {
			var to Square
			to, quiets = quiets.PopLSB()
			ml.PushBack(MakeMove(mover, from, to, King))
		}
	}
}

func (g *Generator) generateCastling(b *position.Board, ml *MoveList) {
	mover := b.SideToMove()
	cr := b.CastlingRights()
	occupied := b.Occupied()
	opponent := mover.Flip()

	if mover == White {
		if cr.Has(CastlingWhiteOO) && occupied&(SqF1.Bb()|SqG1.Bb()) == BbZero &&
			!b.IsAttacked(SqE1, opponent) && !b.IsAttacked(SqF1, opponent) && !b.IsAttacked(SqG1, opponent) {
			ml.PushBack(MakeCastle(White, SqE1, SqG1, FlagCastleOO))
		}
		if cr.Has(CastlingWhiteOOO) && occupied&(SqB1.Bb()|SqC1.Bb()|SqD1.Bb()) == BbZero &&
			!b.IsAttacked(SqE1, opponent) && !b.IsAttacked(SqD1, opponent) && !b.IsAttacked(SqC1, opponent) {
			ml.PushBack(MakeCastle(White, SqE1, SqC1, FlagCastleOOO))
		}
		return
	}
	if cr.Has(CastlingBlackOO) && occupied&(SqF8.Bb()|SqG8.Bb()) == BbZero &&
		!b.IsAttacked(SqE8, opponent) && !b.IsAttacked(SqF8, opponent) && !b.IsAttacked(SqG8, opponent) {
		ml.PushBack(MakeCastle(Black, SqE8, SqG8, FlagCastleOO))
	}
	if cr.Has(CastlingBlackOOO) && occupied&(SqB8.Bb()|SqC8.Bb()|SqD8.Bb()) == BbZero &&
		!b.IsAttacked(SqE8, opponent) && !b.IsAttacked(SqD8, opponent) && !b.IsAttacked(SqC8, opponent) {
		ml.PushBack(MakeCastle(Black, SqE8, SqC8, FlagCastleOOO))
	}
}

// Perft counts the leaf nodes of the legal move tree to depth, the
// standard move-generator correctness benchmark: known-correct counts
// exist for a handful of reference positions at each depth.
func Perft(b *position.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	g := NewGenerator()
	legal := g.GenerateLegal(b, GenAll)
	if depth == 1 {
		return uint64(legal.Len())
	}
	var nodes uint64
	for i := 0; i < legal.Len(); i++ {
		b.DoMove(legal.At(i))
		nodes += Perft(b, depth-1)
		b.UndoMove()
	}
	return nodes
}

// PerftDivide runs Perft one ply deep and then recurses, returning the
// node count contributed by each root move in UCI notation — the
// standard way to localize a move generator bug against a reference
// engine's per-move perft output.
func PerftDivide(b *position.Board, depth int) map[string]uint64 {
	mover := b.SideToMove()
	g := NewGenerator()
	legal := g.GenerateLegal(b, GenAll)
	result := make(map[string]uint64, legal.Len())
	for i := 0; i < legal.Len(); i++ {
		m := legal.At(i)
		b.DoMove(m)
		result[m.UCI(mover)] = Perft(b, depth-1)
		b.UndoMove()
	}
	return result
}
