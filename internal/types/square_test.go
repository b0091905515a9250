// Copyright (c) 2024-2026 Caissa Contributors. MIT License. See LICENSE.

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSquareEncoding(t *testing.T) {
	assert.Equal(t, SqA1, Square(0))
	assert.Equal(t, SqH1, Square(7))
	assert.Equal(t, SqA8, Square(56))
	assert.Equal(t, FileA, SqA1.FileOf())
	assert.Equal(t, Rank1, SqA1.RankOf())
	assert.Equal(t, FileH, SqH1.FileOf())
	assert.Equal(t, Rank8, SqA8.RankOf())
}

func TestMakeSquare(t *testing.T) {
	assert.Equal(t, SqE4, MakeSquare("e4"))
	assert.Equal(t, SqA1, MakeSquare("a1"))
	assert.Equal(t, SqH8, MakeSquare("h8"))
}

func TestSquareString(t *testing.T) {
	assert.Equal(t, "e4", SqE4.String())
	assert.Equal(t, "-", SqNone.String())
}

func TestSquareTo(t *testing.T) {
	assert.Equal(t, SqE5, SqE4.To(North))
	assert.Equal(t, SqNone, SqH1.To(East))
	assert.Equal(t, SqNone, SqA1.To(West))
	assert.Equal(t, SqNone, SqA8.To(North))
}

func TestSquareDistance(t *testing.T) {
	assert.Equal(t, 0, SqE4.Distance(SqE4))
	assert.Equal(t, 1, SqE4.Distance(SqE5))
	assert.Equal(t, 7, SqA1.Distance(SqH8))
}
