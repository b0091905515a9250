// Copyright (c) 2024-2026 Caissa Contributors. MIT License. See LICENSE.

package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/caissa-dev/caissa/internal/config"
	"github.com/caissa-dev/caissa/internal/evaluator/weights"
	"github.com/caissa-dev/caissa/internal/position"
	. "github.com/caissa-dev/caissa/internal/types"
)

func init() {
	config.Setup()
}

func TestEvaluateStartPositionIsSymmetric(t *testing.T) {
	// after 1.e4 e5 the position is fully symmetric again: every material
	// and positional term cancels, leaving only the side-to-move tempo
	// bonus (spec scenario: eval == the tempo constant exactly).
	b := position.NewBoard()
	b.DoMove(MakeMove(White, SqE2, SqE4, Pawn))
	b.DoMove(MakeMove(Black, SqE7, SqE5, Pawn))
	e := New()
	v := e.Evaluate(b)
	assert.Equal(t, Value(weights.Default.Tempo), v)
}

func TestEvaluateMaterialAdvantage(t *testing.T) {
	b, err := position.NewBoardFEN("4k3/8/8/8/8/8/8/RR2K3 w - - 0 1")
	assert.NoError(t, err)
	e := New()
	v := e.Evaluate(b)
	assert.Greater(t, int(v), 500)
}

func TestEvaluateInsufficientMaterialIsDraw(t *testing.T) {
	b, err := position.NewBoardFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	e := New()
	assert.Equal(t, ValueDraw, e.Evaluate(b))
}

func TestEvaluateSideToMoveFlipsScoreSign(t *testing.T) {
	// white is heavily ahead on material: the side to move's score should
	// read strongly positive when white is to move and strongly negative
	// when black is to move, since it's always from the mover's view.
	white, err := position.NewBoardFEN("4k3/8/8/8/8/8/8/RR2K3 w - - 0 1")
	assert.NoError(t, err)
	black, err := position.NewBoardFEN("4k3/8/8/8/8/8/8/RR2K3 b - - 0 1")
	assert.NoError(t, err)
	e := New()
	vWhite := e.Evaluate(white)
	vBlack := e.Evaluate(black)
	assert.Greater(t, int(vWhite), 0)
	assert.Less(t, int(vBlack), 0)
}

func TestPawnCacheHitMatchesMiss(t *testing.T) {
	b := position.NewBoard()
	e := New()
	e.initEval(b)
	first := e.evaluatePawns()
	second := e.evaluatePawns()
	assert.Equal(t, first, second)
}

func TestMobilityIsZeroWithNoOfficers(t *testing.T) {
	b, err := position.NewBoardFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	e := New()
	e.initEval(b)
	assert.Equal(t, 0, e.mobility(White))
	assert.Equal(t, 0, e.mobility(Black))
}

func TestPinTermPenalizesPinnedOfficer(t *testing.T) {
	// white rook on e1 pins the black knight on e5 to the black king on e8.
	b, err := position.NewBoardFEN("4k3/8/8/4n3/8/8/8/4RK2 w - - 0 1")
	assert.NoError(t, err)
	e := New()
	e.initEval(b)
	s := e.pinTerm(Black)
	assert.Less(t, s.MidGame, int16(0))
}
