// Copyright (c) 2024-2026 Caissa Contributors. MIT License. See LICENSE.

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueString(t *testing.T) {
	assert.Equal(t, "cp 34", Value(34).String())
	assert.Equal(t, "cp -34", Value(-34).String())
	assert.Equal(t, "N/A", ValueNA.String())
}

func TestValueCheckMate(t *testing.T) {
	mateIn3 := ValueCheckMate - 5
	assert.True(t, mateIn3.IsCheckMateValue())
	assert.False(t, Value(500).IsCheckMateValue())
	assert.Contains(t, mateIn3.String(), "mate")
}

func TestValueIsValid(t *testing.T) {
	assert.True(t, Value(0).IsValid())
	assert.True(t, ValueMax.IsValid())
	assert.False(t, (ValueMax + 1).IsValid())
}
