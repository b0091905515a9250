// Copyright (c) 2024-2026 Caissa Contributors. MIT License. See LICENSE.

package transpositiontable

import (
	. "github.com/caissa-dev/caissa/internal/types"
	"github.com/caissa-dev/caissa/internal/zobrist"
)

// Entry is one slot of the transposition table. The move field stores the
// full canonical Move rather than the 16-bit truncation an engine with a
// narrower move encoding could get away with, so an Entry is 24 bytes
// rather than the 16 a move-free-of-capture-data encoding would allow;
// still compact enough to keep a hundreds-of-megabytes table cache-friendly.
type Entry struct {
	key   zobrist.Key // 64-bit Zobrist key, verified on every probe
	move  Move        // canonical move (heuristic bits stripped)
	eval  int16       // static evaluation at this node, ValueNA if unknown
	value int16       // search value, ply-relative if it encodes a mate
	vmeta uint16      // depth 7-bit | valueType 2-bit | age 3-bit, packed
}

const (
	// EntrySize is the size in bytes of one Entry.
	EntrySize = 24

	ageMask    = uint16(0b0000_0000_0000_0111)
	vtypeMask  = uint16(0b0000_0000_0001_1000)
	vtypeShift = uint16(3)
	depthMask  = uint16(0b0000_1111_1110_0000)
	depthShift = uint16(5)
)

func (e *Entry) decreaseAge() {
	if e.Age() > 0 {
		e.vmeta--
	}
}

func (e *Entry) increaseAge() {
	if e.Age() < 7 {
		e.vmeta++
	}
}

// Key returns the full 64-bit Zobrist key stored in this entry.
func (e *Entry) Key() zobrist.Key { return e.key }

// Move returns the canonical best/refutation move found for this position,
// or MoveNone if none was stored.
func (e *Entry) Move() Move { return e.move }

// Value returns the stored search value, still in ply-relative form if it
// encodes a mate; callers probing the table must un-adjust it with
// ValueFromTT before using it at the current search ply.
func (e *Entry) Value() Value { return Value(e.value) }

// Eval returns the static evaluation recorded for this position, or
// ValueNA if none was stored.
func (e *Entry) Eval() Value { return Value(e.eval) }

// Depth returns the depth this entry's value was searched to.
func (e *Entry) Depth() int8 { return int8((e.vmeta & depthMask) >> depthShift) }

// Age returns the entry's age (0..7): each AgeEntries call raises it by
// one and each probe hit lowers it by one.
func (e *Entry) Age() int8 { return int8(e.vmeta & ageMask) }

// ValueType reports whether Value() is exact or a search-window bound.
func (e *Entry) ValueType() ValueType { return ValueType((e.vmeta & vtypeMask) >> vtypeShift) }

// ValueToTT converts a value produced at search ply ply into the
// ply-independent form stored in the table: a mate score is rebased from
// "plies to mate from the search root" to "plies to mate from this node"
// so that two different nodes that both mate in, say, one ply, store the
// same key-independent score and a later probe at a different ply can
// re-derive its own root-relative value from it.
func ValueToTT(v Value, ply int) Value {
	switch {
	case v == ValueNA:
		return v
	case v.IsCheckMateValue() && v > 0:
		return v + Value(ply)
	case v.IsCheckMateValue() && v < 0:
		return v - Value(ply)
	default:
		return v
	}
}

// ValueFromTT is the inverse of ValueToTT, re-relativizing a stored mate
// score to the ply it is being probed at.
func ValueFromTT(v Value, ply int) Value {
	switch {
	case v == ValueNA:
		return v
	case v.IsCheckMateValue() && v > 0:
		return v - Value(ply)
	case v.IsCheckMateValue() && v < 0:
		return v + Value(ply)
	default:
		return v
	}
}
