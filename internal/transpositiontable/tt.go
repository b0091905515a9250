// Copyright (c) 2024-2026 Caissa Contributors. MIT License. See LICENSE.

// Package transpositiontable implements the search's transposition table:
// a fixed-capacity, hash-addressed cache of previously searched positions
// keyed by their Zobrist hash. The table is a flat array, never a pointer
// graph — a probe that lands on a different key is a collision, not a
// chain to follow, and the entry there is either verified or overwritten.
//
// TtTable is not safe for concurrent use; Resize and Clear in particular
// must never run while a search thread is probing or storing.
package transpositiontable

import (
	"math"
	"unsafe"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/caissa-dev/caissa/internal/logging"
	. "github.com/caissa-dev/caissa/internal/types"
	"github.com/caissa-dev/caissa/internal/util"
	"github.com/caissa-dev/caissa/internal/zobrist"
)

var out = message.NewPrinter(language.English)

// MaxSizeInMB bounds how large a table Resize will honor.
const MaxSizeInMB = 65_536

// TtTable is the transposition table itself. Create with NewTtTable.
type TtTable struct {
	log                *logging.Logger
	data               []Entry
	sizeInByte         uint64
	hashKeyMask        uint64
	maxNumberOfEntries uint64
	numberOfEntries    uint64
	Stats              Stats
}

// Stats accumulates usage counters for UCI/XBoard diagnostics and tuning.
type Stats struct {
	numberOfPuts       uint64
	numberOfCollisions uint64
	numberOfOverwrites uint64
	numberOfUpdates    uint64
	numberOfProbes     uint64
	numberOfHits       uint64
	numberOfMisses     uint64
}

// NewTtTable creates a table sized to fit within sizeInMByte megabytes. The
// actual entry count is rounded down to a power of two so addressing can
// use a bitmask instead of a modulo.
func NewTtTable(sizeInMByte int) *TtTable {
	tt := &TtTable{log: myLogging.GetLog()}
	tt.Resize(sizeInMByte)
	return tt
}

// Resize rebuilds the table for a new memory budget. All entries are lost.
func (tt *TtTable) Resize(sizeInMByte int) {
	if sizeInMByte > MaxSizeInMB {
		tt.log.Error(out.Sprintf("requested TT size %d MB reduced to max %d MB", sizeInMByte, MaxSizeInMB))
		sizeInMByte = MaxSizeInMB
	}

	tt.sizeInByte = uint64(sizeInMByte) * MB
	if tt.sizeInByte == 0 {
		tt.maxNumberOfEntries = 0
	} else {
		tt.maxNumberOfEntries = 1 << uint64(math.Floor(math.Log2(float64(tt.sizeInByte/EntrySize))))
	}
	tt.hashKeyMask = tt.maxNumberOfEntries - 1
	tt.sizeInByte = tt.maxNumberOfEntries * EntrySize

	tt.data = make([]Entry, tt.maxNumberOfEntries)
	tt.numberOfEntries = 0
	tt.Stats = Stats{}

	tt.log.Info(out.Sprintf("TT resized to %d MByte, %d entries of %d bytes (requested %d MB)",
		tt.sizeInByte/MB, tt.maxNumberOfEntries, unsafe.Sizeof(Entry{}), sizeInMByte))
	tt.log.Debug(util.MemStat())
}

// Clear empties the table without changing its size.
func (tt *TtTable) Clear() {
	tt.data = make([]Entry, tt.maxNumberOfEntries)
	tt.numberOfEntries = 0
	tt.Stats = Stats{}
}

func (tt *TtTable) hash(key zobrist.Key) uint64 {
	return uint64(key) & tt.hashKeyMask
}

// Probe returns a pointer to the entry for key, or nil on a miss or
// collision. A hit lowers the entry's age by one, offsetting the rise that
// AgeEntries applies. The caller must un-relativize a mate score found in
// the entry with ValueFromTT before using it.
func (tt *TtTable) Probe(key zobrist.Key) *Entry {
	if tt.maxNumberOfEntries == 0 {
		return nil
	}
	tt.Stats.numberOfProbes++
	e := &tt.data[tt.hash(key)]
	if e.key == key {
		e.decreaseAge()
		tt.Stats.numberOfHits++
		return e
	}
	tt.Stats.numberOfMisses++
	return nil
}

// minDepthAdvantage is the smallest depth margin a colliding entry must
// exceed the stored one by before it is allowed to evict it, per the
// "replace if key matches, else only on a clearly deeper search" policy.
const minDepthAdvantage = 0

// Put stores a search result for key. value must already be in
// ply-relative form (ValueToTT) if it encodes a mate. A hash collision
// with a different key only overwrites when depth is clearly greater, or
// equal and the existing entry has aged; same-key entries are always
// refreshed since a stale move there is still better than none.
func (tt *TtTable) Put(key zobrist.Key, move Move, depth int8, value Value, valueType ValueType, eval Value) {
	if tt.maxNumberOfEntries == 0 {
		return
	}

	e := &tt.data[tt.hash(key)]
	tt.Stats.numberOfPuts++

	switch {
	case e.key == 0:
		tt.numberOfEntries++
		tt.store(e, key, move, depth, value, valueType, eval)

	case e.key != key:
		tt.Stats.numberOfCollisions++
		if depth > e.Depth()+minDepthAdvantage || (depth == e.Depth() && e.Age() > 1) {
			tt.Stats.numberOfOverwrites++
			tt.store(e, key, move, depth, value, valueType, eval)
		}

	default:
		tt.Stats.numberOfUpdates++
		if move != MoveNone {
			e.move = move.Canonical()
		}
		if eval != ValueNA {
			e.eval = int16(eval)
		}
		if value != ValueNA {
			e.value = int16(value)
			e.vmeta = uint16(depth)<<depthShift | uint16(valueType)<<vtypeShift
		}
	}
}

func (tt *TtTable) store(e *Entry, key zobrist.Key, move Move, depth int8, value Value, valueType ValueType, eval Value) {
	e.key = key
	e.move = move.Canonical()
	e.eval = int16(eval)
	e.value = int16(value)
	e.vmeta = uint16(depth)<<depthShift | uint16(valueType)<<vtypeShift
}

// Hashfull returns how full the table is, in permille, per the UCI/XBoard
// "hashfull" reporting convention.
func (tt *TtTable) Hashfull() int {
	if tt.maxNumberOfEntries == 0 {
		return 0
	}
	return int((1000 * tt.numberOfEntries) / tt.maxNumberOfEntries)
}

// Len returns the number of occupied entries.
func (tt *TtTable) Len() uint64 { return tt.numberOfEntries }

// AgeEntries increments every occupied entry's age by one generation,
// called once per search start so Put's collision policy prefers entries
// from the current search over leftovers from prior ones.
func (tt *TtTable) AgeEntries() {
	if tt.numberOfEntries == 0 {
		return
	}
	for i := range tt.data {
		if tt.data[i].key != 0 {
			tt.data[i].increaseAge()
		}
	}
}

// String renders table occupancy and probe statistics for diagnostics.
func (tt *TtTable) String() string {
	return out.Sprintf(
		"TT: size %d MB entries %d/%d (%d%%) puts %d updates %d collisions %d overwrites %d "+
			"probes %d hits %d (%d%%) misses %d (%d%%)",
		tt.sizeInByte/MB, tt.numberOfEntries, tt.maxNumberOfEntries, tt.Hashfull()/10,
		tt.Stats.numberOfPuts, tt.Stats.numberOfUpdates, tt.Stats.numberOfCollisions, tt.Stats.numberOfOverwrites,
		tt.Stats.numberOfProbes, tt.Stats.numberOfHits, (tt.Stats.numberOfHits*100)/(1+tt.Stats.numberOfProbes),
		tt.Stats.numberOfMisses, (tt.Stats.numberOfMisses*100)/(1+tt.Stats.numberOfProbes))
}
