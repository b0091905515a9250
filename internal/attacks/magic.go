// Copyright (c) 2024-2026 Caissa Contributors. MIT License. See LICENSE.

// Package attacks precomputes every attack/mask table the engine needs:
// fancy magic bitboards for bishops and rooks, leaping-piece tables for
// king/knight/pawn, and the rank/file/flank/forward-field masks the
// evaluator uses for pawn-structure terms. Everything here is immutable
// after init() runs; callers never mutate a returned bitboard slot.
package attacks

import (
	. "github.com/caissa-dev/caissa/internal/types"
)

// magic holds the fancy-magic parameters for one square of one sliding
// piece type, following Stockfish's approach: a blocker mask, a magic
// multiplier, the right-shift amount derived from the mask's population
// count, and a slice view into the shared flat attack table.
type magic struct {
	mask   Bitboard
	number Bitboard
	shift  uint
	table  []Bitboard
}

func (m *magic) index(occupied Bitboard) uint {
	occ := occupied & m.mask
	occ *= m.number
	return uint(occ >> m.shift)
}

var (
	bishopMagics     [SqLength]magic
	rookMagics       [SqLength]magic
	bishopAttackFlat []Bitboard
	rookAttackFlat   []Bitboard

	bishopDirections = [4]Direction{Northeast, Southeast, Southwest, Northwest}
	rookDirections   = [4]Direction{North, East, South, West}
)

// bishopTableSize and rookTableSize are the sums, over all 64 squares, of
// 2^popcount(mask) for each piece type — the exact flat-table sizes needed
// once masks are known. Stockfish's published constants for this layout.
const (
	bishopTableSize = 5248
	rookTableSize   = 102400
)

func init() {
	bishopAttackFlat = make([]Bitboard, bishopTableSize)
	rookAttackFlat = make([]Bitboard, rookTableSize)
	initMagics(bishopAttackFlat, &bishopMagics, &bishopDirections)
	initMagics(rookAttackFlat, &rookMagics, &rookDirections)
	initLeapers()
	initMasks()
	initBetween()
}

// slidingAttack ray-traces the true attack bitboard for sq along
// directions, stopping at (and including) the first blocker.
func slidingAttack(directions *[4]Direction, sq Square, occupied Bitboard) Bitboard {
	var attack Bitboard
	for _, d := range directions {
		s := sq
		for {
			next := s.To(d)
			if !next.IsValid() {
				break
			}
			s = next
			attack = attack.Put(s)
			if occupied.Has(s) {
				break
			}
		}
	}
	return attack
}

// initMagics computes blocker masks, searches for collision-free magic
// multipliers, and fills the flat attack table for every square of one
// sliding piece type. Taken from Stockfish's init_magics(), adapted to
// Go's slice semantics for the per-square table views.
func initMagics(table []Bitboard, magics *[SqLength]magic, directions *[4]Direction) {
	// Seeds chosen by Stockfish to find a valid magic quickly for each rank.
	seeds := [8]uint64{728, 10316, 55013, 32803, 12281, 15100, 16645, 255}

	var occupancy [4096]Bitboard
	var reference [4096]Bitboard
	var epoch [4096]int
	cnt := 0
	size := 0

	for sq := SqA1; sq <= SqH8; sq++ {
		edges := ((Rank1Bb | Rank8Bb) &^ sq.RankOf().Bb()) | ((FileABb | FileHBb) &^ sq.FileOf().Bb())

		m := &magics[sq]
		m.mask = slidingAttack(directions, sq, BbZero) &^ edges
		m.shift = uint(64 - m.mask.PopCount())

		if sq == SqA1 {
			m.table = table
		} else {
			m.table = magics[sq-1].table[size:]
		}

		b := BbZero
		size = 0
		for {
			occupancy[size] = b
			reference[size] = slidingAttack(directions, sq, b)
			size++
			b = (b - m.mask) & m.mask
			if b == 0 {
				break
			}
		}

		rng := newPrnG(seeds[sq.RankOf()])
		for i := 0; i < size; {
			for m.number = 0; ; {
				m.number = Bitboard(rng.sparseRand())
				if ((m.number * m.mask) >> 56).PopCount() >= 6 {
					continue
				}
				break
			}
			cnt++
			for i = 0; i < size; i++ {
				idx := m.index(occupancy[i])
				if epoch[idx] < cnt {
					epoch[idx] = cnt
					m.table[idx] = reference[i]
				} else if m.table[idx] != reference[i] {
					break
				}
			}
		}
	}
}

// SlidingAttacks returns the attack bitboard of a bishop, rook or queen on
// sq given the current board occupancy, via the precomputed magic tables.
func SlidingAttacks(pt PieceType, sq Square, occupied Bitboard) Bitboard {
	switch pt {
	case Bishop:
		m := &bishopMagics[sq]
		return m.table[m.index(occupied)]
	case Rook:
		m := &rookMagics[sq]
		return m.table[m.index(occupied)]
	case Queen:
		mb := &bishopMagics[sq]
		mr := &rookMagics[sq]
		return mb.table[mb.index(occupied)] | mr.table[mr.index(occupied)]
	default:
		panic("SlidingAttacks: piece type is not a slider")
	}
}

// prnG is Sebastiano Vigna's xorshift64star PRNG, used only at
// init-time to search for magic multipliers, exactly as Stockfish uses it.
type prnG struct {
	s uint64
}

func newPrnG(seed uint64) *prnG {
	return &prnG{s: seed}
}

func (r *prnG) rand64() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

// sparseRand biases output toward a low population count, which is what
// makes a magic multiplier candidate likely to succeed quickly.
func (r *prnG) sparseRand() uint64 {
	return r.rand64() & r.rand64() & r.rand64()
}
