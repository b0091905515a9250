// Copyright (c) 2024-2026 Caissa Contributors. MIT License. See LICENSE.

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoveListPushAndSort(t *testing.T) {
	ml := NewMoveList(4)
	quiet := MakeMove(White, SqG1, SqF3, Knight)
	capture := MakeCapture(White, SqG1, SqF3, Knight, Queen)
	pv := quiet.WithPVMove()

	ml.PushBack(quiet)
	ml.PushBack(capture)
	ml.PushBack(pv)
	ml.Sort()

	assert.Equal(t, 3, ml.Len())
	assert.Equal(t, pv, ml.At(0))
	assert.Equal(t, capture, ml.At(1))
	assert.Equal(t, quiet, ml.At(2))
}

func TestMoveListFilter(t *testing.T) {
	ml := NewMoveList(4)
	ml.PushBack(MakeMove(White, SqE2, SqE4, Pawn))
	ml.PushBack(MakeCapture(White, SqE4, SqD5, Pawn, Pawn))
	ml.Filter(func(m Move) bool { return m.IsCapture() })
	assert.Equal(t, 1, ml.Len())
	assert.True(t, ml.At(0).IsCapture())
}

func TestMoveListContainsIgnoresHeuristicBits(t *testing.T) {
	ml := NewMoveList(2)
	m := MakeMove(White, SqB1, SqC3, Knight)
	ml.PushBack(m)
	assert.True(t, ml.Contains(m.WithPVMove()))
}

func TestMoveListClear(t *testing.T) {
	ml := NewMoveList(2)
	ml.PushBack(MoveNone)
	ml.Clear()
	assert.Equal(t, 0, ml.Len())
}
