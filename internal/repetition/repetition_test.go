// Copyright (c) 2024-2026 Caissa Contributors. MIT License. See LICENSE.

package repetition

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/caissa-dev/caissa/internal/zobrist"
)

func TestPushCountsOccurrences(t *testing.T) {
	tb := New()
	var k zobrist.Key = 42

	tb.Push(k)
	assert.Equal(t, 1, tb.Count(k))
	assert.False(t, tb.IsRepetition(k, 2))

	tb.Push(100)
	tb.Push(k)
	assert.Equal(t, 2, tb.Count(k))
	assert.True(t, tb.IsRepetition(k, 2))
	assert.False(t, tb.IsRepetition(k, 3))

	tb.Push(100)
	tb.Push(k)
	assert.Equal(t, 3, tb.Count(k))
	assert.True(t, tb.IsRepetition(k, 3))
}

func TestPopUndoesPush(t *testing.T) {
	tb := New()
	tb.Push(1)
	tb.Push(2)
	tb.Push(1)
	assert.Equal(t, 2, tb.Count(1))

	tb.Pop()
	assert.Equal(t, 1, tb.Count(1))
	assert.Equal(t, 2, tb.Len())

	tb.Pop()
	tb.Pop()
	assert.Equal(t, 0, tb.Count(1))
	assert.Equal(t, 0, tb.Len())
}

func TestReset(t *testing.T) {
	tb := New()
	tb.Push(1)
	tb.Push(2)
	tb.Reset()
	assert.Equal(t, 0, tb.Len())
	assert.Equal(t, 0, tb.Count(1))
}
