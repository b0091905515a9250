// Copyright (c) 2024-2026 Caissa Contributors. MIT License. See LICENSE.

package transpositiontable

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"

	"github.com/caissa-dev/caissa/internal/position"
	. "github.com/caissa-dev/caissa/internal/types"
	"github.com/caissa-dev/caissa/internal/zobrist"
)

func TestEntrySize(t *testing.T) {
	e := Entry{}
	assert.EqualValues(t, 24, unsafe.Sizeof(e))
	assert.EqualValues(t, EntrySize, unsafe.Sizeof(e))
}

func TestNewTtTablePowerOfTwoSizing(t *testing.T) {
	tt := NewTtTable(2)
	assert.Equal(t, uint64(65_536), tt.maxNumberOfEntries)

	tt = NewTtTable(64)
	assert.Equal(t, uint64(2_097_152), tt.maxNumberOfEntries)

	// 100 MB fits the same power of 2 as some size below it whenever the
	// next power of 2 up needs more than 100 MB of entries.
	tt = NewTtTable(100)
	assert.Equal(t, uint64(4_194_304), tt.maxNumberOfEntries)
}

func TestProbeMissOnEmptyTable(t *testing.T) {
	tt := NewTtTable(4)
	b := position.NewBoard()
	assert.Nil(t, tt.Probe(b.ZobristKey()))
}

func TestPutAndProbe(t *testing.T) {
	tt := NewTtTable(4)
	move := MakeMove(White, SqE2, SqE4, Pawn)

	tt.Put(111, move, 4, Value(111), ValueTypeAlpha, ValueNA)
	assert.EqualValues(t, 1, tt.Len())
	assert.EqualValues(t, 1, tt.Stats.numberOfPuts)

	e := tt.Probe(111)
	assert.EqualValues(t, 111, e.Key())
	assert.Equal(t, move.Canonical(), e.Move())
	assert.EqualValues(t, 111, e.Value())
	assert.EqualValues(t, 4, e.Depth())
	assert.Equal(t, ValueTypeAlpha, e.ValueType())
	assert.EqualValues(t, 0, e.Age())
}

func TestProbeDecreasesAgeThenFloorsAtZero(t *testing.T) {
	tt := NewTtTable(4)
	move := MakeMove(White, SqE2, SqE4, Pawn)
	tt.Put(111, move, 4, Value(1), ValueTypeExact, ValueNA)
	tt.data[tt.hash(111)].vmeta |= 3 // seed a non-zero age directly, as the teacher's test does

	e := tt.Probe(111)
	assert.EqualValues(t, 2, e.Age())
	e = tt.Probe(111)
	assert.EqualValues(t, 1, e.Age())
	e = tt.Probe(111)
	assert.EqualValues(t, 0, e.Age())
	e = tt.Probe(111)
	assert.EqualValues(t, 0, e.Age(), "age must never go below zero")
}

func TestPutUpdatesSameKey(t *testing.T) {
	tt := NewTtTable(4)
	move := MakeMove(White, SqE2, SqE4, Pawn)

	tt.Put(111, move, 4, Value(111), ValueTypeAlpha, ValueNA)
	tt.Put(111, move, 5, Value(112), ValueTypeBeta, Value(7))
	assert.EqualValues(t, 1, tt.Len())
	assert.EqualValues(t, 2, tt.Stats.numberOfPuts)
	assert.EqualValues(t, 1, tt.Stats.numberOfUpdates)
	assert.EqualValues(t, 0, tt.Stats.numberOfCollisions)

	e := tt.Probe(111)
	assert.EqualValues(t, 112, e.Value())
	assert.EqualValues(t, 5, e.Depth())
	assert.Equal(t, ValueTypeBeta, e.ValueType())
	assert.EqualValues(t, 7, e.Eval())
}

func TestPutCollisionOnlyOverwritesWhenDeeper(t *testing.T) {
	tt := NewTtTable(4)
	move := MakeMove(White, SqE2, SqE4, Pawn)

	tt.Put(111, move, 6, Value(113), ValueTypeExact, ValueNA)

	shallow := zobrist.Key(111 + tt.maxNumberOfEntries)
	tt.Put(shallow, move, 4, Value(114), ValueTypeBeta, ValueNA)
	assert.EqualValues(t, 1, tt.Len(), "shallower collision must not evict the deeper entry")
	assert.EqualValues(t, 1, tt.Stats.numberOfCollisions)
	assert.EqualValues(t, 0, tt.Stats.numberOfOverwrites)
	assert.Nil(t, tt.Probe(shallow))

	deeper := zobrist.Key(111 + 2*tt.maxNumberOfEntries)
	tt.Put(deeper, move, 7, Value(115), ValueTypeExact, ValueNA)
	assert.EqualValues(t, 2, tt.Stats.numberOfCollisions)
	assert.EqualValues(t, 1, tt.Stats.numberOfOverwrites)
	e := tt.Probe(deeper)
	assert.NotNil(t, e)
	assert.EqualValues(t, 115, e.Value())
}

func TestClearEmptiesTable(t *testing.T) {
	tt := NewTtTable(1)
	move := MakeMove(White, SqE2, SqE4, Pawn)
	tt.Put(5, move, 1, Value(1), ValueTypeExact, ValueNA)
	assert.EqualValues(t, 1, tt.Len())

	tt.Clear()
	assert.EqualValues(t, 0, tt.Len())
	assert.Nil(t, tt.Probe(5))
}

func TestAgeEntries(t *testing.T) {
	tt := NewTtTable(1)
	move := MakeMove(White, SqE2, SqE4, Pawn)
	tt.Put(5, move, 1, Value(1), ValueTypeExact, ValueNA)

	tt.AgeEntries()
	tt.AgeEntries()
	assert.EqualValues(t, 2, tt.data[tt.hash(5)].Age())
}

func TestValueToTTAndBackRoundTripsMateScores(t *testing.T) {
	mateIn2 := ValueCheckMate - 4 // plies-to-mate form at ply 0
	stored := ValueToTT(mateIn2, 3)
	assert.Equal(t, mateIn2+3, stored)
	assert.Equal(t, mateIn2, ValueFromTT(stored, 3))

	matedIn2 := -ValueCheckMate + 4
	storedNeg := ValueToTT(matedIn2, 3)
	assert.Equal(t, matedIn2-3, storedNeg)
	assert.Equal(t, matedIn2, ValueFromTT(storedNeg, 3))
}

func TestValueToTTLeavesOrdinaryScoresUnchanged(t *testing.T) {
	assert.Equal(t, Value(37), ValueToTT(Value(37), 5))
	assert.Equal(t, ValueNA, ValueToTT(ValueNA, 5))
}
