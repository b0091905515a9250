// Copyright (c) 2024-2026 Caissa Contributors. MIT License. See LICENSE.

package search

import (
	"sync/atomic"

	"github.com/caissa-dev/caissa/internal/config"
	"github.com/caissa-dev/caissa/internal/movegen"
	"github.com/caissa-dev/caissa/internal/position"
	"github.com/caissa-dev/caissa/internal/transpositiontable"
	. "github.com/caissa-dev/caissa/internal/types"
)

// negamax searches b to depth plies (ply is how deep into the tree this
// call already is, counted from the root) using fail-soft alpha-beta with
// principal variation search, null-move pruning, reverse futility
// pruning, late move reductions and a transposition table probe/store at
// every node.
func (s *Search) negamax(b *position.Board, depth, ply int, alpha, beta Value, doNull bool) Value {
	if s.checkStop() {
		return alpha
	}

	if ply > 0 && (s.rep.IsRepetition(b.ZobristKey(), 2) || b.HalfMoveClock() >= 100) {
		return ValueDraw
	}

	// mate distance pruning: a mate found closer to the root is always at
	// least as good as one found further away, so once alpha/beta already
	// exceed what's reachable by mating in the remaining plies there is
	// nothing left to prove.
	if config.Settings.Search.UseMDP {
		matingValue := ValueCheckMate - Value(ply)
		if matingValue < beta {
			beta = matingValue
			if alpha >= matingValue {
				return matingValue
			}
		}
		matedValue := -ValueCheckMate + Value(ply)
		if matedValue > alpha {
			alpha = matedValue
			if beta <= matedValue {
				return matedValue
			}
		}
	}

	if ply >= MaxDepth-1 {
		return s.eval.Evaluate(b)
	}
	if ply > s.statistics.CurrentExtraSearchDepth {
		s.statistics.CurrentExtraSearchDepth = ply
	}

	inCheck := b.IsInCheck()
	if depth <= 0 && !inCheck {
		if config.Settings.Search.UseQuiescence {
			return s.quiescence(b, ply, alpha, beta)
		}
		return s.eval.Evaluate(b)
	}
	if inCheck && config.Settings.Search.UseCheckExt {
		depth++
		s.statistics.CheckExtensions++
	}

	var ttMove Move
	key := b.ZobristKey()
	if s.tt != nil {
		if entry := s.tt.Probe(key); entry != nil {
			s.statistics.TTHit++
			ttMove = entry.Move()
			if config.Settings.Search.UseTTValue && int(entry.Depth()) >= depth {
				ttValue := transpositiontable.ValueFromTT(entry.Value(), ply)
				switch entry.ValueType() {
				case ValueTypeExact:
					return ttValue
				case ValueTypeAlpha:
					if ttValue <= alpha {
						s.statistics.TTCuts++
						return alpha
					}
				case ValueTypeBeta:
					if ttValue >= beta {
						s.statistics.TTCuts++
						return beta
					}
				}
			}
		} else {
			s.statistics.TTMiss++
		}
	}

	staticEval := s.eval.Evaluate(b)

	if !inCheck && ply > 0 {
		if config.Settings.Search.UseRFP && depth <= 3 {
			margin := Value(config.Settings.Search.RfpMargin * depth)
			if staticEval-margin >= beta {
				s.statistics.RfpPrunings++
				return staticEval - margin
			}
		}

		if config.Settings.Search.UseNullMove && doNull && depth >= config.Settings.Search.NmpDepth &&
			staticEval >= beta && hasNonPawnMaterial(b) {
			reduction := config.Settings.Search.NmpReduction
			b.DoNullMove()
			s.rep.Push(b.ZobristKey())
			value := -s.negamax(b, depth-1-reduction, ply+1, -beta, -beta+1, false)
			s.rep.Pop()
			b.UndoNullMove()
			if s.checkStop() {
				return alpha
			}
			if value >= beta {
				s.statistics.NmpPrunings++
				return beta
			}
		}
	}

	if config.Settings.Search.UseTTMove && ttMove != MoveNone {
		s.mg[ply].SetPVMove(ttMove)
		s.statistics.TTMoveUsed++
	} else {
		s.mg[ply].SetPVMove(MoveNone)
	}
	moves := s.mg[ply].GenerateLegal(b, movegen.GenAll)
	if moves.Len() == 0 {
		if inCheck {
			return -ValueCheckMate + Value(ply)
		}
		return ValueDraw
	}
	moves.Sort()

	best := ValueMin
	var bestMove Move
	raisedAlpha := false
	movesSearched := 0

	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		givesCheck := b.GivesCheck(m)
		isQuiet := !m.IsCapture() && !m.IsPromotion()

		if config.Settings.Search.UseLmp && ply > 0 && !inCheck && isQuiet && !givesCheck &&
			depth <= 3 && movesSearched >= config.Settings.Search.LmpThreshold {
			s.statistics.LmpPrunings++
			continue
		}

		b.DoMove(m)
		s.rep.Push(b.ZobristKey())
		atomic.AddUint64(&s.nodesVisited, 1)
		movesSearched++

		reduction := 0
		if config.Settings.Search.UseLmr && !inCheck && isQuiet && !givesCheck &&
			depth >= config.Settings.Search.LmrDepth && movesSearched > config.Settings.Search.LmrMovesSearched {
			reduction = 1
			s.statistics.LmrReductions++
		}

		var value Value
		switch {
		case movesSearched == 1:
			value = -s.negamax(b, depth-1, ply+1, -beta, -alpha, true)
		default:
			value = -s.negamax(b, depth-1-reduction, ply+1, -alpha-1, -alpha, true)
			if reduction > 0 && value > alpha {
				s.statistics.LmrResearches++
				value = -s.negamax(b, depth-1, ply+1, -alpha-1, -alpha, true)
			}
			if value > alpha && value < beta {
				s.statistics.PvsResearches++
				value = -s.negamax(b, depth-1, ply+1, -beta, -alpha, true)
			}
		}

		s.rep.Pop()
		b.UndoMove()

		if s.checkStop() {
			return alpha
		}

		if value > best {
			best = value
			bestMove = m
		}
		if value > alpha {
			alpha = value
			raisedAlpha = true
		}
		if alpha >= beta {
			s.statistics.BetaCuts++
			if i == 0 {
				s.statistics.BetaCuts1st++
			}
			if isQuiet && config.Settings.Search.UseKiller {
				s.mg[ply].StoreKiller(m)
			}
			break
		}
	}

	if s.tt != nil {
		valueType := ValueTypeAlpha
		switch {
		case alpha >= beta:
			valueType = ValueTypeBeta
		case raisedAlpha:
			valueType = ValueTypeExact
		}
		s.tt.Put(key, bestMove, int8(depth), transpositiontable.ValueToTT(best, ply), valueType, staticEval)
	}

	return best
}

// quiescence extends the search past the nominal depth limit through
// capturing sequences only, so the static evaluation is never trusted at
// a position where an obvious recapture is pending. Checks are always
// searched quiescently too (inCheck escapes aren't optional). There is no
// ply limit: plies past MaxDepth reuse the last move generator, and the
// recursion ends because the capture sequences on the board run out.
func (s *Search) quiescence(b *position.Board, ply int, alpha, beta Value) Value {
	if s.checkStop() {
		return alpha
	}
	atomic.AddUint64(&s.nodesVisited, 1)

	inCheck := b.IsInCheck()
	var standPat Value
	if !inCheck {
		standPat = s.eval.Evaluate(b)
		if config.Settings.Search.UseQSStandpat {
			if standPat >= beta {
				s.statistics.QSStandpatCuts++
				return beta
			}
			if standPat > alpha {
				alpha = standPat
			}
		}
	}

	mode := movegen.GenCaptures
	if inCheck {
		mode = movegen.GenAll
	}
	moves := s.mg[min(ply, MaxDepth-1)].GenerateLegal(b, mode)
	if moves.Len() == 0 {
		if inCheck {
			return -ValueCheckMate + Value(ply)
		}
		return standPat
	}
	moves.Sort()

	best := standPat
	if inCheck {
		best = ValueMin
	}

	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)

		if !inCheck && config.Settings.Search.UseSEE && m.IsCapture() {
			if gain := see(b, m); gain < Value(config.Settings.Search.SeeThreshold) {
				s.statistics.QSSeePrunings++
				continue
			}
		}

		b.DoMove(m)
		atomic.AddUint64(&s.nodesVisited, 1)
		value := -s.quiescence(b, ply+1, -beta, -alpha)
		b.UndoMove()

		if s.checkStop() {
			return alpha
		}

		if value > best {
			best = value
		}
		if value > alpha {
			alpha = value
		}
		if alpha >= beta {
			s.statistics.BetaCuts++
			break
		}
	}
	return best
}

func hasNonPawnMaterial(b *position.Board) bool {
	us := b.SideToMove()
	return b.PiecesBb(us, Knight) != BbZero || b.PiecesBb(us, Bishop) != BbZero ||
		b.PiecesBb(us, Rook) != BbZero || b.PiecesBb(us, Queen) != BbZero
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
