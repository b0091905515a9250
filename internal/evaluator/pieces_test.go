// Copyright (c) 2024-2026 Caissa Contributors. MIT License. See LICENSE.

package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/caissa-dev/caissa/internal/position"
	. "github.com/caissa-dev/caissa/internal/types"
)

func TestBishopPairBonusAppliesOnlyWithTwoBishops(t *testing.T) {
	single, err := position.NewBoardFEN("4k3/8/8/8/8/2B5/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	pair, err := position.NewBoardFEN("4k3/8/8/8/8/2B2B2/8/4K3 w - - 0 1")
	assert.NoError(t, err)

	e := New()
	e.initEval(single)
	soloScore := e.evalPiece(White, Bishop)

	e.initEval(pair)
	pairScore := e.evalPiece(White, Bishop)

	assert.Greater(t, pairScore.MidGame, soloScore.MidGame)
}

func TestKnightOutpostBonusOnGuardedSquare(t *testing.T) {
	// white knight on d5, guarded by the c4 pawn, with no black pawn able
	// to ever challenge d5 (both c and e files are empty of black pawns).
	b, err := position.NewBoardFEN("4k3/8/8/3N4/2P5/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	e := New()
	e.initEval(b)
	s := e.knightEval(White, SqD5)
	assert.Greater(t, s.MidGame, int16(0))
}

func TestRookOnOpenFileBonus(t *testing.T) {
	b, err := position.NewBoardFEN("4k3/8/8/8/8/8/8/3RK3 w - - 0 1")
	assert.NoError(t, err)
	e := New()
	e.initEval(b)
	s := e.rookEval(White, SqD1)
	assert.Greater(t, s.MidGame, int16(0))
}
