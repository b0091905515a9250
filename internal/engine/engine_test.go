// Copyright (c) 2024-2026 Caissa Contributors. MIT License. See LICENSE.

package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/caissa-dev/caissa/internal/config"
	"github.com/caissa-dev/caissa/internal/position"
	. "github.com/caissa-dev/caissa/internal/types"
)

func init() {
	config.Setup()
}

func TestNewStartsAtInitialPosition(t *testing.T) {
	e := New()
	assert.Equal(t, position.StartFEN, e.Board().FEN())
}

func TestSetPositionRejectsMalformedFEN(t *testing.T) {
	e := New()
	err := e.SetPosition("not a fen")
	assert.Error(t, err)
	// the prior position must survive a rejected SetPosition.
	assert.Equal(t, position.StartFEN, e.Board().FEN())
}

func TestMakeMoveThenUnmakeMoveRestoresPosition(t *testing.T) {
	e := New()
	before := e.Board().FEN()
	m := e.MoveFromUCI("e2e4")
	assert.NotEqual(t, MoveNone, m)
	assert.Equal(t, StatusOK, e.MakeMove(m))
	assert.NotEqual(t, before, e.Board().FEN())
	assert.Equal(t, StatusOK, e.UnmakeMove())
	assert.Equal(t, before, e.Board().FEN())
}

func TestMakeMoveRejectsIllegalMove(t *testing.T) {
	e := New()
	m := MakeMove(White, SqE2, SqE5, Pawn)
	assert.Equal(t, StatusIllegal, e.MakeMove(m))
}

func TestUnmakeMoveRejectsWhenNothingToUndo(t *testing.T) {
	e := New()
	assert.Equal(t, StatusIllegal, e.UnmakeMove())
}

func TestThinkFindsMateInOne(t *testing.T) {
	e := New()
	err := e.SetPosition("6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1")
	assert.NoError(t, err)
	m, score := e.Think(0, 0, 3)
	assert.NotEqual(t, MoveNone, m)
	assert.True(t, score.IsCheckMateValue())
}

func TestThinkRespectsAbortOnInboundMessage(t *testing.T) {
	ch := make(chan string, 1)
	e := New()
	assert.NoError(t, e.Init(position.StartFEN, ch))
	ch <- "?"
	m, _ := e.Think(0, 0, 64)
	assert.NotEqual(t, MoveNone, m)
}

func TestGameResultDetectsStalemate(t *testing.T) {
	e := New()
	assert.NoError(t, e.SetPosition("7k/8/6Q1/8/8/8/8/6K1 b - - 0 1"))
	over, desc := e.GameResult()
	assert.True(t, over)
	assert.Contains(t, desc, "Stalemate")
}

func TestClearResetsToStartingPosition(t *testing.T) {
	e := New()
	m := e.MoveFromUCI("e2e4")
	assert.Equal(t, StatusOK, e.MakeMove(m))
	e.Clear()
	assert.Equal(t, position.StartFEN, e.Board().FEN())
}
