// Copyright (c) 2024-2026 Caissa Contributors. MIT License. See LICENSE.

package evaluator

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestPawnCacheEntrySize(t *testing.T) {
	assert.EqualValues(t, pawnCacheEntrySize, unsafe.Sizeof(pawnCacheEntry{}))
}

func TestPawnCacheMissThenHit(t *testing.T) {
	pc := newPawnCache(1)
	_, ok := pc.get(42)
	assert.False(t, ok)

	pc.put(42, Score{MidGame: 5, EndGame: 7})
	got, ok := pc.get(42)
	assert.True(t, ok)
	assert.Equal(t, Score{MidGame: 5, EndGame: 7}, got)
}

func TestPawnCacheZeroSizeNeverStores(t *testing.T) {
	pc := newPawnCache(0)
	pc.put(42, Score{MidGame: 1})
	_, ok := pc.get(42)
	assert.False(t, ok)
}

func TestPawnCacheClearResetsCounters(t *testing.T) {
	pc := newPawnCache(1)
	pc.put(1, Score{MidGame: 1})
	pc.get(1)
	pc.clear()
	assert.Equal(t, uint64(0), pc.entries)
	assert.Equal(t, uint64(0), pc.hits)
}
