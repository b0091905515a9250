// Copyright (c) 2024-2026 Caissa Contributors. MIT License. See LICENSE.

package evaluator

import (
	"math"

	goLogging "github.com/op/go-logging"

	"github.com/caissa-dev/caissa/internal/logging"
	. "github.com/caissa-dev/caissa/internal/types"
	"github.com/caissa-dev/caissa/internal/zobrist"
)

// pawnCacheMaxSizeMB bounds how large a pawn cache resize will honor.
const pawnCacheMaxSizeMB = 1_024

// pawnCacheEntrySize is the size in bytes of one pawnCacheEntry: an 8-byte
// key plus a 4-byte Score, padded to the key's 8-byte alignment.
const pawnCacheEntrySize = 16

type pawnCacheEntry struct {
	key   zobrist.Key
	score Score
}

// pawnCache is a flat, hash-addressed cache of pawn structure scores keyed
// by Board.PawnKey(): the same fixed-capacity direct-mapped layout the
// transposition table uses, sized much smaller since pawn structure churns
// far less than the full position.
type pawnCache struct {
	log *goLogging.Logger

	data               []pawnCacheEntry
	maxNumberOfEntries uint64
	hashKeyMask        uint64

	hits    uint64
	misses  uint64
	entries uint64
	replace uint64
}

func newPawnCache(sizeInMByte int) *pawnCache {
	pc := &pawnCache{log: logging.GetLog()}
	pc.resize(sizeInMByte)
	return pc
}

func (pc *pawnCache) resize(sizeInMByte int) {
	if sizeInMByte > pawnCacheMaxSizeMB {
		pc.log.Warningf("pawn cache size %d MB reduced to max %d MB", sizeInMByte, pawnCacheMaxSizeMB)
		sizeInMByte = pawnCacheMaxSizeMB
	}
	sizeInByte := uint64(sizeInMByte) * MB
	if sizeInByte == 0 {
		pc.maxNumberOfEntries = 0
	} else {
		pc.maxNumberOfEntries = 1 << uint64(math.Floor(math.Log2(float64(sizeInByte/pawnCacheEntrySize))))
	}
	pc.hashKeyMask = pc.maxNumberOfEntries - 1
	pc.data = make([]pawnCacheEntry, pc.maxNumberOfEntries)
	pc.hits, pc.misses, pc.entries, pc.replace = 0, 0, 0, 0
}

func (pc *pawnCache) hash(key zobrist.Key) uint64 {
	return uint64(key) & pc.hashKeyMask
}

// get returns the cached score for key, or (Score{}, false) on a miss.
func (pc *pawnCache) get(key zobrist.Key) (Score, bool) {
	if pc.maxNumberOfEntries == 0 {
		return Score{}, false
	}
	e := &pc.data[pc.hash(key)]
	if e.key == key {
		pc.hits++
		return e.score, true
	}
	pc.misses++
	return Score{}, false
}

// put stores score under key, replacing whatever previously hashed there.
func (pc *pawnCache) put(key zobrist.Key, score Score) {
	if pc.maxNumberOfEntries == 0 {
		return
	}
	e := &pc.data[pc.hash(key)]
	if e.key == 0 {
		pc.entries++
	} else if e.key != key {
		pc.replace++
	}
	e.key = key
	e.score = score
}

func (pc *pawnCache) clear() {
	pc.data = make([]pawnCacheEntry, pc.maxNumberOfEntries)
	pc.hits, pc.misses, pc.entries, pc.replace = 0, 0, 0, 0
}
