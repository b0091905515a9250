// Copyright (c) 2024-2026 Caissa Contributors. MIT License. See LICENSE.

// Package search implements iterative-deepening alpha-beta search with
// principal variation search, null-move pruning, late move reductions,
// reverse futility pruning, a transposition table and a quiescence search
// gated by static exchange evaluation.
package search

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	goLogging "github.com/op/go-logging"
	"golang.org/x/sync/semaphore"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/caissa-dev/caissa/internal/config"
	"github.com/caissa-dev/caissa/internal/evaluator"
	"github.com/caissa-dev/caissa/internal/logging"
	"github.com/caissa-dev/caissa/internal/movegen"
	"github.com/caissa-dev/caissa/internal/position"
	"github.com/caissa-dev/caissa/internal/repetition"
	"github.com/caissa-dev/caissa/internal/transpositiontable"
	. "github.com/caissa-dev/caissa/internal/types"
)

var out = message.NewPrinter(language.English)

// rootMove pairs a root move with its last completed-iteration score, so
// iterativeDeepening can re-sort the root move list before each new
// iteration: searching the previously-best move first both narrows the
// aspiration window immediately and guarantees that even a search
// interrupted mid-iteration returns a move at least as good as the prior
// iteration's best.
type rootMove struct {
	move  Move
	value Value
}

// Search drives a single position's alpha-beta search. One Search is
// reused across moves of the same game; NewGame resets the parts of its
// state (transposition table, history) that must not leak between games.
type Search struct {
	log *goLogging.Logger

	tt   *transpositiontable.TtTable
	eval *evaluator.Evaluator
	rep  *repetition.Table

	mg [MaxDepth]*movegen.Generator

	position *position.Board
	limits   Limits

	rootMoves []rootMove

	isRunning *semaphore.Weighted

	stopFlag     atomic.Bool
	searching    atomic.Bool
	startTime    time.Time
	timeLimit    time.Duration
	nodesVisited uint64

	statistics Statistics

	wg         sync.WaitGroup
	lastResult Result
}

// New creates a ready-to-use Search with its own transposition table and
// evaluator, sized per config.Settings.
func New() *Search {
	s := &Search{
		log:       logging.GetLog(),
		eval:      evaluator.New(),
		rep:       repetition.New(),
		isRunning: semaphore.NewWeighted(1),
	}
	for i := range s.mg {
		s.mg[i] = movegen.NewGenerator()
	}
	if config.Settings.Search.UseTT {
		size := config.Settings.Search.TTSizeMB
		if size == 0 {
			size = 64
		}
		s.tt = transpositiontable.NewTtTable(size)
	}
	return s
}

// NewGame clears all per-game state: the transposition table and the
// repetition history. Call this between games, not between moves of the
// same game.
func (s *Search) NewGame() {
	if s.tt != nil {
		s.tt.Clear()
	}
	s.rep.Reset()
}

// IsSearching reports whether a search is currently running.
func (s *Search) IsSearching() bool {
	return s.searching.Load()
}

// StopSearch requests the running search stop at its next checkStop call
// and returns once it has. A no-op if no search is running.
func (s *Search) StopSearch() {
	s.stopFlag.Store(true)
	s.wg.Wait()
}

// LastResult returns the most recently completed (or stopped) search's
// result.
func (s *Search) LastResult() Result {
	return s.lastResult
}

// Statistics returns a pointer to the running search's statistics.
func (s *Search) Statistics() *Statistics {
	return &s.statistics
}

// NodesVisited returns the node count of the most recent search so far.
func (s *Search) NodesVisited() uint64 {
	return atomic.LoadUint64(&s.nodesVisited)
}

// PushHistory pushes b's current key onto the repetition table before a game
// move is played outside the search (e.g. by the engine applying an
// opponent's move); the search itself pushes/pops independently as it
// descends so repetition draws are detected inside the search tree too.
func (s *Search) PushHistory(b *position.Board) {
	s.rep.Push(b.ZobristKey())
}

// PopHistory undoes the most recent PushHistory, used by the engine when a
// game move made outside the search is taken back (e.g. the adapter's
// "undo"/"remove" commands).
func (s *Search) PopHistory() {
	s.rep.Pop()
}

// RepetitionCount returns how many times b's current key has occurred so
// far in the pushed game history, including b itself if it was pushed.
func (s *Search) RepetitionCount(b *position.Board) int {
	return s.rep.Count(b.ZobristKey())
}

// StartSearch begins searching b under sl, running iterative deepening
// in a background goroutine. Call StopSearch (or let a time limit expire)
// and then LastResult to retrieve the outcome.
func (s *Search) StartSearch(b *position.Board, sl Limits) {
	s.wg.Wait() // make sure a previous search has fully stopped
	if !s.isRunning.TryAcquire(1) {
		s.log.Error("StartSearch called while a search is already running")
		return
	}
	s.position = b
	s.limits = sl
	s.stopFlag.Store(false)
	s.searching.Store(true)
	s.startTime = time.Now()
	s.timeLimit = s.setupTimeControl(b, sl)
	s.statistics = Statistics{}
	s.nodesVisited = 0

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer s.isRunning.Release(1)
		defer s.searching.Store(false)
		s.lastResult = s.run(b)
	}()
}

// WaitWhileSearching blocks the calling goroutine until no search is
// running, without requesting a stop — unlike StopSearch, which also sets
// the abort flag.
func (s *Search) WaitWhileSearching() {
	_ = s.isRunning.Acquire(context.Background(), 1)
	s.isRunning.Release(1)
}

// SearchSync runs a search to completion on the calling goroutine and
// returns its result directly — used by tests and by any caller that
// doesn't need the async StartSearch/StopSearch protocol.
func (s *Search) SearchSync(b *position.Board, sl Limits) Result {
	if !s.isRunning.TryAcquire(1) {
		s.log.Error("SearchSync called while a search is already running")
		return s.lastResult
	}
	defer s.isRunning.Release(1)
	s.position = b
	s.limits = sl
	s.stopFlag.Store(false)
	s.searching.Store(true)
	s.startTime = time.Now()
	s.timeLimit = s.setupTimeControl(b, sl)
	s.statistics = Statistics{}
	s.nodesVisited = 0
	defer s.searching.Store(false)
	s.lastResult = s.run(b)
	return s.lastResult
}

func (s *Search) setupTimeControl(b *position.Board, sl Limits) time.Duration {
	if !sl.TimeControl {
		return 0
	}
	if sl.MoveTime > 0 {
		return sl.MoveTime
	}
	myTime, myInc := sl.WhiteTime, sl.WhiteInc
	if b.SideToMove() == Black {
		myTime, myInc = sl.BlackTime, sl.BlackInc
	}
	movesToGo := sl.MovesToGo
	if movesToGo <= 0 {
		movesToGo = 30
	}
	budget := myTime/time.Duration(movesToGo) + myInc/2
	if budget <= 0 {
		budget = time.Duration(config.Settings.Search.DefaultMoveTimeMs) * time.Millisecond
	}
	return budget
}

func (s *Search) run(b *position.Board) Result {
	if s.tt != nil {
		s.tt.AgeEntries()
	}
	if s.rep.IsRepetition(b.ZobristKey(), 2) || b.HalfMoveClock() >= 100 {
		return Result{BestValue: ValueDraw}
	}
	return *s.iterativeDeepening(b)
}

// iterativeDeepening searches b one ply deeper each iteration until the
// time/depth/node budget runs out, re-sorting root moves between
// iterations so the next one starts with the best move found so far.
func (s *Search) iterativeDeepening(b *position.Board) *Result {
	legal := s.mg[0].GenerateLegal(b, movegen.GenAll)
	if legal.Len() == 0 {
		if b.IsInCheck() {
			s.statistics.Checkmates++
			return &Result{BestValue: -ValueCheckMate}
		}
		s.statistics.Stalemates++
		return &Result{BestValue: ValueDraw}
	}

	s.rootMoves = make([]rootMove, legal.Len())
	for i := 0; i < legal.Len(); i++ {
		s.rootMoves[i] = rootMove{move: legal.At(i)}
	}

	maxDepth := config.Settings.Search.MaxSearchDepth
	if s.limits.Depth > 0 && s.limits.Depth < maxDepth {
		maxDepth = s.limits.Depth
	}

	var bestValue Value
	for depth := 1; depth <= maxDepth; depth++ {
		s.statistics.CurrentIterationDepth = depth
		s.statistics.CurrentSearchDepth = depth

		if config.Settings.Search.UseAspiration && depth > 3 {
			bestValue = s.aspirationSearch(b, depth, bestValue)
		} else {
			bestValue = s.rootSearch(b, depth, ValueMin, ValueMax)
		}

		if s.checkStop() {
			break
		}

		sortRootMoves(s.rootMoves)
		s.statistics.CurrentBestRootMove = s.rootMoves[0].move
		s.statistics.CurrentBestRootValue = s.rootMoves[0].value

		if len(s.rootMoves) == 1 {
			break
		}
		if bestValue.IsCheckMateValue() {
			break
		}
	}

	sortRootMoves(s.rootMoves)
	return &Result{
		BestMove:     s.rootMoves[0].move,
		BestValue:    s.rootMoves[0].value,
		SearchDepth:  s.statistics.CurrentSearchDepth,
		ExtraDepth:   s.statistics.CurrentExtraSearchDepth,
		SearchTime:   time.Since(s.startTime),
		NodesVisited: s.NodesVisited(),
	}
}

// aspirationSearch re-runs rootSearch with a narrow window around the
// previous iteration's score, widening (and eventually falling back to a
// full window) whenever the result falls outside it — cheaper than a full
// [-inf,+inf] window on every iteration since most iterations' best value
// barely moves from the last one.
func (s *Search) aspirationSearch(b *position.Board, depth int, previous Value) Value {
	window := Value(config.Settings.Search.AspirationWindow)
	alpha := previous - window
	beta := previous + window

	for widen := 0; widen <= config.Settings.Search.AspirationMaxWiden; widen++ {
		value := s.rootSearch(b, depth, alpha, beta)
		if s.checkStop() {
			return value
		}
		if value <= alpha {
			s.statistics.AspirationResearches++
			alpha -= window << (widen + 1)
			if alpha < ValueMin {
				alpha = ValueMin
			}
			continue
		}
		if value >= beta {
			s.statistics.AspirationResearches++
			beta += window << (widen + 1)
			if beta > ValueMax {
				beta = ValueMax
			}
			continue
		}
		return value
	}
	return s.rootSearch(b, depth, ValueMin, ValueMax)
}

// rootSearch runs one principal-variation search pass over every root
// move at the given depth, updating each rootMove's value in place.
func (s *Search) rootSearch(b *position.Board, depth int, alpha, beta Value) Value {
	best := ValueMin
	for i := range s.rootMoves {
		m := s.rootMoves[i].move
		s.mg[0].SetPVMove(m)

		b.DoMove(m)
		s.rep.Push(b.ZobristKey())

		var value Value
		if i == 0 {
			value = -s.negamax(b, depth-1, 1, -beta, -alpha, true)
		} else {
			value = -s.negamax(b, depth-1, 1, -alpha-1, -alpha, true)
			if value > alpha && value < beta {
				s.statistics.PvsResearches++
				value = -s.negamax(b, depth-1, 1, -beta, -alpha, true)
			}
		}

		s.rep.Pop()
		b.UndoMove()

		if s.checkStop() {
			return best
		}

		s.rootMoves[i].value = value
		if value > best {
			best = value
		}
		if value > alpha {
			alpha = value
		}
	}
	return best
}

func sortRootMoves(moves []rootMove) {
	for i := 1; i < len(moves); i++ {
		tmp := moves[i]
		j := i
		for j > 0 && moves[j-1].value < tmp.value {
			moves[j] = moves[j-1]
			j--
		}
		moves[j] = tmp
	}
}

// checkStop reads the stop flag on every call, and checks the time/node
// budget only when the node count is a multiple of 2048 (checking every
// node would make the time.Since call a measurable fraction of total
// search cost).
func (s *Search) checkStop() bool {
	if s.stopFlag.Load() {
		return true
	}
	if atomic.LoadUint64(&s.nodesVisited)&2047 != 0 {
		return false
	}
	if s.limits.Nodes > 0 && s.NodesVisited() >= s.limits.Nodes {
		s.stopFlag.Store(true)
		return true
	}
	if s.timeLimit > 0 && time.Since(s.startTime) >= s.timeLimit {
		s.stopFlag.Store(true)
		return true
	}
	return false
}
