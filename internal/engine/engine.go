// Copyright (c) 2024-2026 Caissa Contributors. MIT License. See LICENSE.

// Package engine wires the board, move generator and search behind the
// small inbound RPC table a protocol adapter (internal/xboard) drives:
// Init, Think, MakeMove, UnmakeMove, SetPosition and Clear. The engine
// itself never parses protocol text or FEN on the adapter's behalf beyond
// what SetPosition/Init accept directly; that conversion is the adapter's
// job, per the layering the core/adapter split is built around.
package engine

import (
	"strings"
	"time"

	goLogging "github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/caissa-dev/caissa/internal/config"
	myLogging "github.com/caissa-dev/caissa/internal/logging"
	"github.com/caissa-dev/caissa/internal/movegen"
	"github.com/caissa-dev/caissa/internal/position"
	"github.com/caissa-dev/caissa/internal/search"
	. "github.com/caissa-dev/caissa/internal/types"
)

var out = message.NewPrinter(language.English)

// Status classifies the outcome of an inbound call per the three-tier
// error model: a call either succeeds, names an illegal/unknown input (the
// adapter's fault, core state unchanged), or the core itself never
// reports failure beyond that — internal invariant violations panic
// instead of returning a Status, since they are unrecoverable.
type Status int

const (
	StatusOK Status = iota
	StatusIllegal
	StatusUnknown
)

// abortOnToken lists the inbound-message first tokens that must interrupt
// a running Think call, per the concurrency model's abort-inducing event
// list. Anything else read from the inbound channel while thinking is
// informational (clock updates, protocol options) and is simply drained.
var abortOnToken = map[string]bool{
	"?":        true,
	"quit":     true,
	"force":    true,
	"result":   true,
	"usermove": true,
	"undo":     true,
	"remove":   true,
}

// Engine owns the single board the core operates on, the search engine
// backing it, and a move generator used for legality checks and UCI-text
// move lookup. One Engine is constructed per running process.
type Engine struct {
	log *goLogging.Logger

	board   *position.Board
	mySearch *search.Search
	myMoveGen *movegen.Generator

	inbound <-chan string
	plies   int // moves applied via MakeMove since the last SetPosition/Clear
}

// New returns a ready-to-use Engine set to the standard starting position.
// Init or SetPosition should be called before Think if a different
// position or inbound channel is needed.
func New() *Engine {
	e := &Engine{
		log:       myLogging.GetLog(),
		mySearch:  search.New(),
		myMoveGen: movegen.NewGenerator(),
	}
	_ = e.SetPosition(position.StartFEN)
	return e
}

// Init constructs the engine's starting position and wires the
// single-consumer inbound message channel Think polls for abort-inducing
// adapter events while it's running.
func (e *Engine) Init(fen string, inbound <-chan string) error {
	e.inbound = inbound
	return e.SetPosition(fen)
}

// SetPosition resets the board to fen, clears the transposition table and
// repetition history (a new position invalidates both) and re-seeds the
// repetition table with the new starting key. Returns an error (and
// leaves the engine's prior position untouched) if fen is malformed.
func (e *Engine) SetPosition(fen string) error {
	b, err := position.NewBoardFEN(fen)
	if err != nil {
		return err
	}
	e.board = b
	e.mySearch.NewGame()
	e.mySearch.PushHistory(e.board)
	e.plies = 0
	return nil
}

// Clear resets the engine to the standard initial position.
func (e *Engine) Clear() {
	_ = e.SetPosition(position.StartFEN)
}

// Board returns the engine's current board, for adapters that need to
// inspect it directly (e.g. to print a FEN or check side to move) without
// the engine having to re-expose every position.Board accessor itself.
func (e *Engine) Board() *position.Board {
	return e.board
}

// MoveFromUCI converts long algebraic move text to an encoded Move legal
// in the current position, or MoveNone if the text is malformed or names
// no legal move. Used by the adapter to turn "usermove e2e4" into the
// argument MakeMove expects.
func (e *Engine) MoveFromUCI(uciMove string) Move {
	return e.myMoveGen.GetMoveFromUci(e.board, uciMove)
}

// MakeMove applies m to the board if it is legal in the current position,
// updating the Zobrist-keyed repetition history in lockstep. Returns
// StatusIllegal and leaves the board untouched if m is not a legal move
// here.
func (e *Engine) MakeMove(m Move) Status {
	if m == MoveNone {
		return StatusIllegal
	}
	legal := e.myMoveGen.GenerateLegal(e.board, movegen.GenAll)
	found := false
	for i := 0; i < legal.Len(); i++ {
		if legal.At(i).Equals(m) {
			found = true
			break
		}
	}
	if !found {
		return StatusIllegal
	}
	e.board.DoMove(m)
	e.mySearch.PushHistory(e.board)
	e.plies++
	return StatusOK
}

// UnmakeMove reverses the last move applied via MakeMove. Returns
// StatusIllegal without touching the board if there is no move made
// through this engine left to take back (the adapter's "undo" must not be
// allowed to unmake a move the engine never applied, e.g. one already
// present in a freshly set FEN).
func (e *Engine) UnmakeMove() Status {
	if e.plies == 0 {
		return StatusIllegal
	}
	e.mySearch.PopHistory()
	e.board.UndoMove()
	e.plies--
	return StatusOK
}

// Think runs iterative deepening to maxDepth plies (0 = no depth limit,
// bounded only by config.Settings.Search.MaxSearchDepth), budgeting timeMs
// milliseconds of wall time (0 = no time control). aspirationWindow, when
// positive, is the half-width in centipawns of the aspiration window used
// once the iteration depth passes 3; 0 (or less) leaves the aspiration
// settings in config.Settings.Search unchanged for this call.
//
// While the search runs, Think drains the inbound channel (set by Init):
// an abort-inducing message (see abortOnToken) stops the search early, as
// spec'd by the adapter-poll concurrency model; anything else is logged
// and ignored. Think always returns the best move found by the last fully
// or partially completed iteration, even if stopped early.
func (e *Engine) Think(aspirationWindow, timeMs, maxDepth int) (Move, Value) {
	limits := *search.NewLimits()
	limits.Depth = maxDepth
	if timeMs > 0 {
		limits.TimeControl = true
		limits.MoveTime = time.Duration(timeMs) * time.Millisecond
	}
	restoreAspiration := e.overrideAspirationWindow(aspirationWindow)
	defer restoreAspiration()

	e.mySearch.StartSearch(e.board, limits)

	ticker := time.NewTicker(5 * time.Millisecond)
	defer ticker.Stop()
	for e.mySearch.IsSearching() {
		select {
		case msg, ok := <-e.inbound:
			if !ok {
				e.inbound = nil
				continue
			}
			e.handleInboundDuringThink(msg)
		case <-ticker.C:
		}
	}

	result := e.mySearch.LastResult()
	return result.BestMove, result.BestValue
}

// overrideAspirationWindow applies this Think call's aspiration window
// (0 = leave config.Settings.Search alone) and returns a func restoring
// the prior values; the core is single-threaded so mutating the global
// search config around one synchronous Think call is safe.
func (e *Engine) overrideAspirationWindow(window int) func() {
	if window <= 0 {
		return func() {}
	}
	prevUse := config.Settings.Search.UseAspiration
	prevWindow := config.Settings.Search.AspirationWindow
	config.Settings.Search.UseAspiration = true
	config.Settings.Search.AspirationWindow = window
	return func() {
		config.Settings.Search.UseAspiration = prevUse
		config.Settings.Search.AspirationWindow = prevWindow
	}
}

func (e *Engine) handleInboundDuringThink(msg string) {
	fields := strings.Fields(msg)
	if len(fields) == 0 {
		return
	}
	if abortOnToken[fields[0]] {
		e.mySearch.StopSearch()
		return
	}
	e.log.Debugf("think: ignoring non-abort inbound message %q", msg)
}

// GameResult reports whether the current position already ends the game
// (checkmate, stalemate, the 50-move rule, threefold repetition or
// insufficient material) and, if so, a human-readable PGN-style result
// string the adapter can forward verbatim.
func (e *Engine) GameResult() (over bool, description string) {
	legal := e.myMoveGen.GenerateLegal(e.board, movegen.GenAll)
	if legal.Len() == 0 {
		if e.board.IsInCheck() {
			if e.board.SideToMove() == White {
				return true, "0-1 {Black mates}"
			}
			return true, "1-0 {White mates}"
		}
		return true, "1/2-1/2 {Stalemate}"
	}
	if e.board.HalfMoveClock() >= 100 {
		return true, "1/2-1/2 {50-move rule}"
	}
	if e.mySearch.RepetitionCount(e.board) >= 3 {
		return true, "1/2-1/2 {Threefold repetition}"
	}
	if e.board.HasInsufficientMaterial() {
		return true, "1/2-1/2 {Insufficient material}"
	}
	return false, ""
}

// Report returns a diagnostic dump of the engine's current position and
// last search statistics, for diagnostics and logging.
func (e *Engine) Report() string {
	stats := e.mySearch.Statistics()
	return out.Sprintf("fen=%q nodes=%d depth=%d/%d\n%s",
		e.board.FEN(), e.mySearch.NodesVisited(),
		stats.CurrentSearchDepth, stats.CurrentExtraSearchDepth, stats.String())
}
