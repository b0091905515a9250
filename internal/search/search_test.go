// Copyright (c) 2024-2026 Caissa Contributors. MIT License. See LICENSE.

package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/caissa-dev/caissa/internal/config"
	"github.com/caissa-dev/caissa/internal/position"
	. "github.com/caissa-dev/caissa/internal/types"
)

func init() {
	config.Setup()
}

func depthLimited(depth int) Limits {
	return Limits{Depth: depth}
}

func TestSearchFindsMateInOne(t *testing.T) {
	// classic back-rank mate: black's own pawns block every escape square
	// and the rook delivers mate along the open back rank.
	b, err := position.NewBoardFEN("6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1")
	assert.NoError(t, err)
	s := New()
	result := s.SearchSync(b, depthLimited(3))
	assert.True(t, result.BestValue.IsCheckMateValue())
	assert.Greater(t, int(result.BestValue), 0)
}

func TestSearchPrefersWinningCapture(t *testing.T) {
	b, err := position.NewBoardFEN("4k3/8/8/3q4/8/8/3R4/4K3 w - - 0 1")
	assert.NoError(t, err)
	s := New()
	result := s.SearchSync(b, depthLimited(4))
	assert.Equal(t, SqD2, result.BestMove.From(White))
	assert.Equal(t, SqD5, result.BestMove.To(White))
}

func TestSearchReturnsStalemateAsDraw(t *testing.T) {
	b, err := position.NewBoardFEN("7k/8/6Q1/8/8/8/8/6K1 b - - 0 1")
	assert.NoError(t, err)
	s := New()
	result := s.SearchSync(b, depthLimited(2))
	assert.Equal(t, ValueDraw, result.BestValue)
}

func TestSearchRespectsDepthLimit(t *testing.T) {
	b := position.NewBoard()
	s := New()
	result := s.SearchSync(b, depthLimited(2))
	assert.Equal(t, 2, result.SearchDepth)
}

func TestSearchStopSearchHaltsAsyncSearch(t *testing.T) {
	b := position.NewBoard()
	s := New()
	s.StartSearch(b, Limits{Infinite: true})
	time.Sleep(20 * time.Millisecond)
	assert.True(t, s.IsSearching())
	s.StopSearch()
	assert.False(t, s.IsSearching())
}

func TestNewGameClearsTranspositionTable(t *testing.T) {
	b := position.NewBoard()
	s := New()
	s.SearchSync(b, depthLimited(3))
	assert.Greater(t, s.NodesVisited(), uint64(0))
	s.NewGame()
	if s.tt != nil {
		assert.Equal(t, uint64(0), s.tt.Len())
	}
}
