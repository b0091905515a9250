// Copyright (c) 2024-2026 Caissa Contributors. MIT License. See LICENSE.

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitboardPopCount(t *testing.T) {
	assert.Equal(t, 0, BbZero.PopCount())
	assert.Equal(t, 64, BbAll.PopCount())
	assert.Equal(t, 1, BbOne.PopCount())
}

func TestBitboardPutRemoveHas(t *testing.T) {
	b := BbZero.Put(SqE4)
	assert.True(t, b.Has(SqE4))
	assert.False(t, b.Has(SqE5))
	b = b.Remove(SqE4)
	assert.False(t, b.Has(SqE4))
}

func TestBitboardLSBAndPop(t *testing.T) {
	b := SqE4.Bb() | SqA1.Bb() | SqH8.Bb()
	sq, rest := b.PopLSB()
	assert.Equal(t, SqA1, sq)
	assert.False(t, rest.Has(SqA1))
	assert.True(t, rest.Has(SqE4))
}

func TestBitboardShift(t *testing.T) {
	rank1 := Rank1Bb
	assert.Equal(t, Rank2Bb, rank1.Shift(North))
	assert.Equal(t, BbZero, Rank8Bb.Shift(North))
	fileA := FileABb
	assert.Equal(t, BbZero, fileA.Shift(West))
}

func TestFileAndRankBb(t *testing.T) {
	assert.Equal(t, FileABb, FileA.Bb())
	assert.Equal(t, Rank1Bb, Rank1.Bb())
	assert.True(t, FileA.Bb().Has(SqA1))
	assert.True(t, FileA.Bb().Has(SqA8))
	assert.False(t, FileA.Bb().Has(SqB1))
}
