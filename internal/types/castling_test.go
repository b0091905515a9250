// Copyright (c) 2024-2026 Caissa Contributors. MIT License. See LICENSE.

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCastlingRightsAddRemoveHas(t *testing.T) {
	var cr CastlingRights
	cr = cr.Add(CastlingWhiteOO)
	assert.True(t, cr.Has(CastlingWhiteOO))
	assert.False(t, cr.Has(CastlingWhiteOOO))
	cr = cr.Remove(CastlingWhiteOO)
	assert.False(t, cr.Has(CastlingWhiteOO))
}

func TestCastlingRightsString(t *testing.T) {
	assert.Equal(t, "-", CastlingNone.String())
	assert.Equal(t, "KQkq", CastlingAny.String())
	assert.Equal(t, "Kq", (CastlingWhiteOO | CastlingBlackOOO).String())
}

func TestKingQueenSideRights(t *testing.T) {
	assert.Equal(t, CastlingWhiteOO, KingSideRights(White))
	assert.Equal(t, CastlingBlackOOO, QueenSideRights(Black))
	assert.Equal(t, CastlingWhite, AllRights(White))
}
