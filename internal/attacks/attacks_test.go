// Copyright (c) 2024-2026 Caissa Contributors. MIT License. See LICENSE.

package attacks

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/caissa-dev/caissa/internal/types"
)

func TestKnightAttacksCornerAndCenter(t *testing.T) {
	assert.Equal(t, 2, KnightAttacks(SqA1).PopCount())
	assert.Equal(t, 8, KnightAttacks(SqE4).PopCount())
}

func TestKingAttacksCornerAndCenter(t *testing.T) {
	assert.Equal(t, 3, KingAttacks(SqA1).PopCount())
	assert.Equal(t, 8, KingAttacks(SqE4).PopCount())
}

func TestPawnAttacks(t *testing.T) {
	assert.True(t, PawnAttacks(White, SqE4).Has(SqD5))
	assert.True(t, PawnAttacks(White, SqE4).Has(SqF5))
	assert.Equal(t, 1, PawnAttacks(White, SqA4).PopCount())
	assert.True(t, PawnAttacks(Black, SqE4).Has(SqD3))
}

func TestMagicBishopMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		sq := Square(rng.Intn(64))
		occ := Bitboard(rng.Uint64())
		want := slidingAttack(&bishopDirections, sq, occ)
		got := SlidingAttacks(Bishop, sq, occ)
		assert.Equal(t, want, got, "bishop attacks mismatch at %s occ=%x", sq, uint64(occ))
	}
}

func TestMagicRookMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 500; i++ {
		sq := Square(rng.Intn(64))
		occ := Bitboard(rng.Uint64())
		want := slidingAttack(&rookDirections, sq, occ)
		got := SlidingAttacks(Rook, sq, occ)
		assert.Equal(t, want, got, "rook attacks mismatch at %s occ=%x", sq, uint64(occ))
	}
}

func TestQueenAttacksIsUnionOfBishopAndRook(t *testing.T) {
	occ := SqD4.Bb() | SqD6.Bb() | SqB4.Bb()
	bishop := SlidingAttacks(Bishop, SqD4, occ)
	rook := SlidingAttacks(Rook, SqD4, occ)
	queen := SlidingAttacks(Queen, SqD4, occ)
	assert.Equal(t, bishop|rook, queen)
}

func TestPassedPawnMask(t *testing.T) {
	mask := PassedPawnMask(White, SqE4)
	assert.True(t, mask.Has(SqE5))
	assert.True(t, mask.Has(SqD6))
	assert.True(t, mask.Has(SqF7))
	assert.False(t, mask.Has(SqE4))
	assert.False(t, mask.Has(SqE3))
}

func TestFlankMaskEdgeFiles(t *testing.T) {
	assert.Equal(t, FileBBb, FlankMask(SqA4))
	assert.Equal(t, FileGBb, FlankMask(SqH4))
}
