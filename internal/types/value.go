// Copyright (c) 2024-2026 Caissa Contributors. MIT License. See LICENSE.

package types

import (
	"strconv"
	"strings"

	"github.com/caissa-dev/caissa/internal/util"
)

// Value is a score in centipawns from the side-to-move's perspective.
type Value int16

//noinspection GoUnusedConst
const (
	ValueZero Value = 0
	ValueDraw Value = 0

	ValueInfinite Value = 15_000
	ValueNA       Value = -ValueInfinite - 1

	ValueMax Value = 10_000
	ValueMin Value = -ValueMax

	ValueCheckMate          Value = ValueMax
	ValueCheckMateThreshold Value = ValueCheckMate - Value(MaxDepth) - 1
)

// IsValid reports whether v is within the representable [min,max] range.
func (v Value) IsValid() bool {
	return v >= ValueMin && v <= ValueMax
}

// IsCheckMateValue reports whether v encodes a forced mate (as opposed to
// a material/positional score).
func (v Value) IsCheckMateValue() bool {
	abs := util.Abs16(int16(v))
	return abs > int16(ValueCheckMateThreshold) && abs <= int16(ValueCheckMate)
}

// ValueType classifies a search value stored in the transposition table:
// an exact score, or a bound produced by an alpha or beta cutoff.
type ValueType int8

const (
	ValueTypeNone ValueType = iota
	ValueTypeExact
	ValueTypeAlpha // upper bound: true value <= stored value
	ValueTypeBeta  // lower bound: true value >= stored value
)

// String renders a centipawn score ("cp 34"), a mate score ("mate 3" or
// "mate -2"), or "N/A".
func (v Value) String() string {
	var sb strings.Builder
	switch {
	case v == ValueNA:
		sb.WriteString("N/A")
	case v.IsCheckMateValue():
		sb.WriteString("mate ")
		if v < ValueZero {
			sb.WriteString("-")
		}
		pliesToMate := int(ValueCheckMate) - int(util.Abs16(int16(v)))
		sb.WriteString(strconv.Itoa((pliesToMate + 1) / 2))
	default:
		sb.WriteString("cp ")
		sb.WriteString(strconv.Itoa(int(v)))
	}
	return sb.String()
}
