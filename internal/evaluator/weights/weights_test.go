// Copyright (c) 2024-2026 Caissa Contributors. MIT License. See LICENSE.

package weights

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/caissa-dev/caissa/internal/types"
)

func TestPSTWhiteMirroredBlackDirect(t *testing.T) {
	w := &Default
	// e1 (White's king start) is mirrored to the last PST row; e8 (Black's
	// king start) indexes that same last row directly, so both read the
	// same values.
	mgWhite, egWhite := w.PST(White, King, SqE1)
	mgBlack, egBlack := w.PST(Black, King, SqE8)
	assert.Equal(t, mgWhite, mgBlack)
	assert.Equal(t, egWhite, egBlack)
}

func TestPSTUnknownPieceTypeReturnsZero(t *testing.T) {
	w := &Default
	mg, eg := w.PST(White, PtNone, SqE4)
	assert.Equal(t, Value(0), mg)
	assert.Equal(t, Value(0), eg)
}

func TestByNameFallsBackToDefault(t *testing.T) {
	assert.Same(t, &Default, ByName("nonexistent"))
	assert.Same(t, &Default, ByName("default"))
}

func TestPassedPawnBonusIncreasesTowardPromotion(t *testing.T) {
	w := &Default
	for i := 1; i < 6; i++ {
		assert.LessOrEqual(t, w.PassedPawnBonus[i], w.PassedPawnBonus[i+1])
	}
}
