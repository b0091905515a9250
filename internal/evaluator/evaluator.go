// Copyright (c) 2024-2026 Caissa Contributors. MIT License. See LICENSE.

// Package evaluator scores a chess position in centipawns from the
// perspective of the side to move, combining material, piece-square
// tables, pawn structure, mobility, piece-specific terms and king safety.
package evaluator

import (
	"strings"

	goLogging "github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/caissa-dev/caissa/internal/attacks"
	"github.com/caissa-dev/caissa/internal/config"
	"github.com/caissa-dev/caissa/internal/evaluator/weights"
	"github.com/caissa-dev/caissa/internal/logging"
	"github.com/caissa-dev/caissa/internal/position"
	. "github.com/caissa-dev/caissa/internal/types"
)

var out = message.NewPrinter(language.English)

// Evaluator holds the scratch state for one Evaluate call: the position
// being scored, its cached game-phase factor, and the weight set and
// pawn cache carried across calls.
type Evaluator struct {
	log *goLogging.Logger

	weights   *weights.Weights
	pawnCache *pawnCache

	position        *position.Board
	gamePhaseFactor float64
	us, them        Color
	allPieces       Bitboard
}

// lazyEvalThreshold returns the early-exit cutoff used once cheap terms
// (material, PST, tempo) are computed: higher in the opening, where a
// clearly winning material/PST score is unlikely to be overturned by the
// remaining positional terms, and equal to the configured base in a bare
// endgame where every term still matters. Computed per call rather than
// once at package init, since config.Settings is only populated once
// config.Setup() runs - which happens well after package-level init().
func lazyEvalThreshold(gamePhaseFactor float64) int16 {
	base := config.Settings.Eval.LazyEvalThreshold
	return base + int16(float64(base)*gamePhaseFactor)
}

// New creates an Evaluator using the weight set named in config.
func New() *Evaluator {
	e := &Evaluator{
		log:     logging.GetLog(),
		weights: weights.ByName(config.Settings.Eval.WeightSet),
	}
	if config.Settings.Eval.UsePawnCache {
		e.pawnCache = newPawnCache(config.Settings.Eval.PawnCacheSizeMB)
	}
	return e
}

// initEval primes the scratch fields Evaluate's term functions read. Split
// out from Evaluate so term functions can be exercised directly in tests
// against a position that has already been primed.
func (e *Evaluator) initEval(p *position.Board) {
	e.position = p
	e.gamePhaseFactor = p.GamePhaseFactor()
	e.us = p.SideToMove()
	e.them = e.us.Flip()
	e.allPieces = p.Occupied()
}

// Evaluate scores p in centipawns from the perspective of the side to
// move.
func (e *Evaluator) Evaluate(p *position.Board) Value {
	e.initEval(p)

	if p.HasInsufficientMaterial() {
		return ValueDraw
	}

	var s Score

	if config.Settings.Eval.UsePieceEval {
		s.MidGame = int16(p.Material(White) - p.Material(Black))
		s.EndGame = s.MidGame
	}

	mg, eg := e.psqTerm()
	s.MidGame += mg
	s.EndGame += eg

	if config.Settings.Eval.UseTempo {
		s.MidGame += e.weights.Tempo * int16(e.us.Sign())
		s.EndGame += e.weights.Tempo * int16(e.us.Sign())
	}

	if config.Settings.Eval.UseLazyEval {
		value := Value(s.Interpolate(e.gamePhaseFactor))
		if int16(value)*int16(e.us.Sign()) > lazyEvalThreshold(e.gamePhaseFactor) {
			return e.finalize(value)
		}
	}

	if config.Settings.Eval.UsePawnEval {
		s.Add(e.evaluatePawns())
	}

	if config.Settings.Eval.UseMobility {
		wm, bm := e.mobility(White), e.mobility(Black)
		diff := int16(wm-bm) * e.weights.MobilityBonus
		s.MidGame += diff
		s.EndGame += diff
	}

	if config.Settings.Eval.UsePieceEval {
		for _, pt := range [4]PieceType{Knight, Bishop, Rook, Queen} {
			s.Add(e.evalPiece(White, pt))
			s.Sub(e.evalPiece(Black, pt))
		}
	}

	if config.Settings.Eval.UseKingSafety || config.Settings.Eval.UsePawnShield {
		s.Add(e.evalKing(White))
		s.Sub(e.evalKing(Black))
	}

	s.Add(e.pinTerm(White))
	s.Sub(e.pinTerm(Black))

	return e.finalize(Value(s.Interpolate(e.gamePhaseFactor)))
}

// finalize orients a White-relative value to the side to move.
func (e *Evaluator) finalize(whiteRelative Value) Value {
	return Value(int16(whiteRelative) * int16(e.us.Sign()))
}

// psqTerm sums the piece-square table values for every piece on the
// board, White minus Black, for both game phases.
func (e *Evaluator) psqTerm() (mg, eg Value) {
	for c := White; c <= Black; c++ {
		sign := Value(c.Sign())
		for pt := Pawn; pt <= King; pt++ {
			pieces := e.position.PiecesBb(c, pt)
			for pieces != BbZero {
				var sq Square
				sq, pieces = pieces.PopLSB()
				m, en := e.weights.PST(c, pt, sq)
				mg += sign * m
				eg += sign * en
			}
		}
	}
	return mg, eg
}

// mobility counts the squares c's knights, bishops, rooks and queens
// attack that aren't occupied by c's own pieces.
func (e *Evaluator) mobility(c Color) int {
	count := 0
	own := e.position.OccupiedBy(c)

	knights := e.position.PiecesBb(c, Knight)
	for knights != BbZero {
		var sq Square
		sq, knights = knights.PopLSB()
		count += (attacks.KnightAttacks(sq) &^ own).PopCount()
	}
	bishops := e.position.PiecesBb(c, Bishop)
	for bishops != BbZero {
		var sq Square
		sq, bishops = bishops.PopLSB()
		count += (attacks.SlidingAttacks(Bishop, sq, e.allPieces) &^ own).PopCount()
	}
	rooks := e.position.PiecesBb(c, Rook)
	for rooks != BbZero {
		var sq Square
		sq, rooks = rooks.PopLSB()
		count += (attacks.SlidingAttacks(Rook, sq, e.allPieces) &^ own).PopCount()
	}
	queens := e.position.PiecesBb(c, Queen)
	for queens != BbZero {
		var sq Square
		sq, queens = queens.PopLSB()
		both := attacks.SlidingAttacks(Rook, sq, e.allPieces) | attacks.SlidingAttacks(Bishop, sq, e.allPieces)
		count += (both &^ own).PopCount()
	}
	return count
}

// Report renders a human-readable breakdown of the last Evaluate call,
// for diagnostics.
func (e *Evaluator) Report() string {
	var b strings.Builder
	b.WriteString("Evaluation Report\n")
	b.WriteString("=============================================\n")
	if e.position != nil {
		b.WriteString(out.Sprintf("Position: %s\n", e.position.FEN()))
		b.WriteString(out.Sprintf("Game phase factor: %f\n", e.gamePhaseFactor))
		b.WriteString(out.Sprintf("Eval value: %s (from the view of %s)\n", e.Evaluate(e.position), e.us))
	}
	return b.String()
}

// pinTerm applies a malus per officer of c pinned to c's own king: a
// pinned piece's effective mobility and tactical value are both reduced,
// worth more in the middlegame where tactics are sharper.
func (e *Evaluator) pinTerm(c Color) Score {
	pinned := e.position.PinnedPieces(c)
	pinned &^= e.position.PiecesBb(c, Pawn)
	n := int16(pinned.PopCount())
	return Score{MidGame: -n * e.weights.PinnedPieceMalus, EndGame: -n * e.weights.PinnedPieceMalus / 2}
}
