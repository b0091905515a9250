// Copyright (c) 2024-2026 Caissa Contributors. MIT License. See LICENSE.

package types

import (
	"fmt"
	"strings"
)

// MoveList is a dense, reusable list of packed moves. Because a Move's
// integer value already encodes its move-ordering priority (PV bit,
// promising bit, killer 2, killer 1, then the captured piece, in that
// order of significance), a MoveList sorts by plain descending integer
// comparison.
type MoveList []Move

// NewMoveList returns an empty MoveList with the given starting capacity.
func NewMoveList(capacity int) *MoveList {
	ml := make(MoveList, 0, capacity)
	return &ml
}

// Len returns the number of moves.
func (ml *MoveList) Len() int {
	return len(*ml)
}

// PushBack appends m to the end of the list.
func (ml *MoveList) PushBack(m Move) {
	*ml = append(*ml, m)
}

// At returns the move at index i.
func (ml *MoveList) At(i int) Move {
	return (*ml)[i]
}

// Set overwrites the move at index i, typically to attach heuristic bits
// discovered after the list was generated.
func (ml *MoveList) Set(i int, m Move) {
	(*ml)[i] = m
}

// Clear empties the list while retaining its backing array, so it can be
// reused across plies without triggering garbage collection.
func (ml *MoveList) Clear() {
	*ml = (*ml)[:0]
}

// Clone deep-copies the list.
func (ml *MoveList) Clone() *MoveList {
	dst := make(MoveList, len(*ml))
	copy(dst, *ml)
	return &dst
}

// Filter keeps only the moves for which keep returns true, reusing the
// backing array.
func (ml *MoveList) Filter(keep func(m Move) bool) {
	out := (*ml)[:0]
	for _, m := range *ml {
		if keep(m) {
			out = append(out, m)
		}
	}
	*ml = out
}

// Sort orders the list by descending integer value, a stable insertion
// sort: move lists here are short (a few dozen moves at most) and often
// nearly sorted already from incremental heuristic updates, so insertion
// sort beats a general-purpose sort in practice.
func (ml *MoveList) Sort() {
	s := *ml
	for i := 1; i < len(s); i++ {
		tmp := s[i]
		j := i
		for j > 0 && s[j-1] < tmp {
			s[j] = s[j-1]
			j--
		}
		s[j] = tmp
	}
}

// Contains reports whether m (compared canonically) is present.
func (ml *MoveList) Contains(m Move) bool {
	for _, x := range *ml {
		if x.Equals(m) {
			return true
		}
	}
	return false
}

// String renders every move in UCI form, for diagnostics.
func (ml *MoveList) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("MoveList: [%d] { ", len(*ml)))
	for i, m := range *ml {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(fmt.Sprintf("%08x", uint32(m)))
	}
	sb.WriteString(" }")
	return sb.String()
}
