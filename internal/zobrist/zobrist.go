// Copyright (c) 2024-2026 Caissa Contributors. MIT License. See LICENSE.

// Package zobrist computes and incrementally maintains Zobrist hash keys
// for board positions. Keys are randomized once per process at package
// init; persisting them across runs is never required since a hash only
// needs to be stable within a single process's transposition table and
// repetition history.
package zobrist

import (
	"math/rand"

	. "github.com/caissa-dev/caissa/internal/types"
)

// Key is a 64-bit Zobrist hash.
type Key uint64

var (
	pieceSquare [PieceLength][SqLength]Key
	enPassant   [SqLength]Key
	castling    [CastlingLength]Key
	sideToMove  Key
)

func init() {
	// Fixed seed: reproducible hashes within a process are all that is
	// required, and a fixed seed makes perft/search output deterministic
	// across runs for debugging.
	rng := rand.New(rand.NewSource(0x5A7B1057))
	for p := Piece(0); p < PieceLength; p++ {
		for sq := SqA1; sq <= SqH8; sq++ {
			pieceSquare[p][sq] = Key(rng.Uint64())
		}
	}
	for sq := SqA1; sq <= SqH8; sq++ {
		enPassant[sq] = Key(rng.Uint64())
	}
	for cr := CastlingRights(0); cr < CastlingLength; cr++ {
		castling[cr] = Key(rng.Uint64())
	}
	sideToMove = Key(rng.Uint64())
}

// PieceSquare returns the key for piece p standing on sq.
func PieceSquare(p Piece, sq Square) Key {
	return pieceSquare[p][sq]
}

// EnPassant returns the key for an en passant target on sq. Callers must
// only XOR this in when an en passant target is actually set (square 0 is
// the sentinel for "none" and must never be hashed in).
func EnPassant(sq Square) Key {
	return enPassant[sq]
}

// Castling returns the key for a given castling-rights mask.
func Castling(cr CastlingRights) Key {
	return castling[cr]
}

// SideToMove returns the key XORed in whenever it is Black's move.
func SideToMove() Key {
	return sideToMove
}
