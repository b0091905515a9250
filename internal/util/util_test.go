// Copyright (c) 2024-2026 Caissa Contributors. MIT License. See LICENSE.

package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAbs(t *testing.T) {
	assert.Equal(t, 5, Abs(-5))
	assert.Equal(t, 5, Abs(5))
	assert.Equal(t, 0, Abs(0))
	assert.Equal(t, int16(5), Abs16(-5))
	assert.Equal(t, int32(5), Abs32(-5))
}

func TestMinMax(t *testing.T) {
	assert.Equal(t, -5, Min(-5, -3))
	assert.Equal(t, -3, Max(-5, -3))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, Clamp(-5, 0, 10))
	assert.Equal(t, 10, Clamp(15, 0, 10))
	assert.Equal(t, 4, Clamp(4, 0, 10))
}

func TestNps(t *testing.T) {
	nps := Nps(1_000_000, time.Second)
	assert.InDelta(t, 1_000_000, nps, 10)
}

func TestCharClassifiers(t *testing.T) {
	assert.True(t, IsAlpha('a'))
	assert.True(t, IsAlpha('Z'))
	assert.False(t, IsAlpha('5'))
	assert.True(t, IsLower('a'))
	assert.False(t, IsLower('A'))
	assert.True(t, IsDigit('5'))
	assert.False(t, IsDigit('a'))
}
